package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration runs ffprobe against the file and returns the container duration.
// Every failure is returned as a *LoadError.
func (r *implResolver) Duration(ctx context.Context, file library.AudioFile) (float64, error) {
	// -v error: only real problems on stderr
	// -show_entries format=duration: skip stream and tag sections
	// --: file names starting with "-" are not options
	args := []string{
		"-v", "error",
		"-hide_banner",
		"-show_entries", "format=duration",
		"-of", "json",
		"--", file.Path,
	}

	r.logger.Debug(ctx, "Probing duration: %s", file.Path)

	out, err := r.executor.Execute(ctx, r.binary, args...)
	if err != nil {
		return 0, &LoadError{Name: file.Name, Err: err}
	}

	seconds, err := parseDuration(out)
	if err != nil {
		return 0, &LoadError{Name: file.Name, Err: err}
	}

	r.logger.Debug(ctx, "Duration of %s: %.3fs", file.Name, seconds)
	return seconds, nil
}

func parseDuration(out string) (float64, error) {
	var parsed ffprobeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	raw := strings.TrimSpace(parsed.Format.Duration)
	if raw == "" || raw == "N/A" {
		return 0, errors.New("no duration reported")
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	return seconds, nil
}
