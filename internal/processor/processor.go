package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/config"
	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/timestamp"
)

// Process orchestrates the entire generation pipeline
func (p *implProcessor) Process(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()

	// Step 1: Collect and order the audio files
	files, err := p.Files(ctx, req)
	if err != nil {
		return Result{}, err
	}

	// Step 2: Chapter names
	transforms := req.Transforms.Transforms()
	derive := req.DeriveNames || len(transforms) > 0

	var mismatch *chapters.MismatchError
	if len(req.Names) > 0 || !derive {
		if err := chapters.CheckCount(req.Names, files); err != nil {
			if !errors.As(err, &mismatch) {
				return Result{}, fmt.Errorf("chapter names: %w", err)
			}
			p.logger.Warn(ctx, "Chapter names do not match files: %v", mismatch)
			if req.Confirm != nil && !req.Confirm(ctx, mismatch) {
				return Result{}, fmt.Errorf("%w: %v", ErrCancelled, mismatch)
			}
		}
	}

	names := req.Names
	if derive {
		// transforms must see every label, including file-name fallbacks
		names = chapters.Fill(names, files)
	}
	names = chapters.Apply(names, transforms...)

	// Step 3: Accumulate durations
	p.logger.Info(ctx, "Reading durations of %d files (offset %s)", len(files), timestamp.Format(req.Offset))
	entries, err := timestamp.Generate(ctx, p.resolver, files, names, req.Offset)
	if err != nil {
		return Result{}, fmt.Errorf("generate timestamps: %w", err)
	}

	res := Result{
		Files:    files,
		Entries:  entries,
		Text:     timestamp.Render(entries),
		Mismatch: mismatch,
	}

	// Step 4: Write the chapter list
	res.OutputPath = p.outputPath(req)
	if res.OutputPath != "" {
		if err := p.writeOutput(ctx, res.OutputPath, res.Text); err != nil {
			return Result{}, fmt.Errorf("write output: %w", err)
		}
	}

	p.logger.Info(ctx, "Generated %d chapters in %s", len(entries), time.Since(startTime).Round(time.Millisecond))
	return res, nil
}

// Files scans req.Dir and orders the audio files as Process would.
func (p *implProcessor) Files(ctx context.Context, req Request) ([]library.AudioFile, error) {
	files, err := library.Scan(req.Dir, p.cfg.Library.Extensions)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", req.Dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, req.Dir)
	}
	p.logger.Debug(ctx, "Found %d audio files in %s", len(files), req.Dir)

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = p.cfg.Library.SortBy
	}
	switch sortBy {
	case config.SortByName:
		// Scan already sorted by name
	case config.SortByModTime:
		library.SortByModTime(files)
	default:
		return nil, fmt.Errorf("unknown sort %q", sortBy)
	}

	if len(req.Order) > 0 {
		if files, err = library.ApplyOrder(files, req.Order); err != nil {
			return nil, fmt.Errorf("apply order: %w", err)
		}
	}

	if req.Reorder != nil {
		if files, err = req.Reorder(ctx, files); err != nil {
			return nil, fmt.Errorf("reorder: %w", err)
		}
	}

	return files, nil
}
