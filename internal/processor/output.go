package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// outputPath resolves where the chapter list goes; "" means nowhere.
func (p *implProcessor) outputPath(req Request) string {
	path := req.Output
	if path == "" {
		path = p.cfg.Output.Path
	}
	switch path {
	case "-":
		return ""
	case "":
		return filepath.Join(req.Dir, p.cfg.Output.FileName)
	default:
		return path
	}
}

// writeOutput replaces path with text through a temp file in the same
// directory so readers never see a half-written list
func (p *implProcessor) writeOutput(ctx context.Context, path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".chapters-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer p.cleanupTempFile(ctx, tmp.Name())

	if _, err := tmp.WriteString(text + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move to output: %w", err)
	}

	p.logger.Info(ctx, "Chapter list written: %s", path)
	return nil
}

// cleanupTempFile removes a leftover temp file; after a successful rename
// there is nothing to remove
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
