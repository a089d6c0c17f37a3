package timestamp

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/probe"
)

// Entry is one line of the chapter list.
type Entry struct {
	Offset float64
	Label  string
}

func (e Entry) String() string {
	return Format(e.Offset) + " - " + e.Label
}

// Generate returns one Entry per file, in file order. The label of entry i
// is names[i] when present and non-blank, otherwise the file name without
// its extension. Durations are resolved one file at a time; the first
// failure aborts the run and no entries are returned.
func Generate(ctx context.Context, r probe.Resolver, files []library.AudioFile, names []string, start float64) ([]Entry, error) {
	entries := make([]Entry, 0, len(files))
	elapsed := start

	for i, file := range files {
		entries = append(entries, Entry{Offset: elapsed, Label: label(i, file, names)})

		d, err := r.Duration(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("resolve duration %d/%d: %w", i+1, len(files), err)
		}
		elapsed += d
	}

	return entries, nil
}

func label(i int, file library.AudioFile, names []string) string {
	if i < len(names) {
		if name := strings.TrimSpace(names[i]); name != "" {
			return name
		}
	}
	return chapters.StripExtension(file.Name)
}

// Lines renders each entry as "<time> - <label>".
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Render joins the rendered entries with newlines.
func Render(entries []Entry) string {
	return strings.Join(Lines(entries), "\n")
}
