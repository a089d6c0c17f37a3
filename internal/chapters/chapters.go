// Package chapters turns user text and file names into chapter labels.
package chapters

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

// ErrNoNames is returned by CheckCount when audio files have no chapter
// names at all. Unlike a count mismatch it stops the run; callers that want
// file-name labels ask for them with Fill.
var ErrNoNames = errors.New("no chapter names given")

// MismatchError reports that the number of chapter names differs from the
// number of audio files. It is a warning: missing labels fall back to file
// names and extra names are ignored.
type MismatchError struct {
	Names int
	Files int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d chapter names for %d audio files", e.Names, e.Files)
}

// ParseNames splits text into one chapter name per non-blank line.
func ParseNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

// StripExtension removes the final extension from a file name.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Derive returns a chapter name for each file: its name without extension.
func Derive(files []library.AudioFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = StripExtension(f.Name)
	}
	return names
}

// CheckCount returns ErrNoNames when there are files but no names, and a
// *MismatchError when the counts otherwise differ.
func CheckCount(names []string, files []library.AudioFile) error {
	switch {
	case len(names) == len(files):
		return nil
	case len(names) == 0:
		return fmt.Errorf("%w for %d audio files", ErrNoNames, len(files))
	default:
		return &MismatchError{Names: len(names), Files: len(files)}
	}
}

// Fill returns exactly one name per file: names[i] when present and
// non-blank, otherwise the file name without its extension. Extra names
// are dropped.
func Fill(names []string, files []library.AudioFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			out[i] = names[i]
			continue
		}
		out[i] = StripExtension(f.Name)
	}
	return out
}
