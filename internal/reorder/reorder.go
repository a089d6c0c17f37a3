// Package reorder is an interactive terminal screen for putting chapter
// files in order by hand.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

// ErrAborted is returned when the user leaves the screen without confirming.
var ErrAborted = errors.New("reorder aborted")

// Run shows files on the terminal and returns them in the order the user
// confirmed. The screen draws on stderr so stdout stays clean for output.
func Run(ctx context.Context, files []library.AudioFile) ([]library.AudioFile, error) {
	if len(files) < 2 {
		return files, nil
	}

	p := tea.NewProgram(newModel(files), tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run reorder screen: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	if m.aborted || !m.done {
		return nil, ErrAborted
	}
	return m.files, nil
}
