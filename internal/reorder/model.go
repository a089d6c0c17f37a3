package reorder

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

type model struct {
	files   []library.AudioFile
	cursor  int
	grabbed bool
	done    bool
	aborted bool
}

func newModel(files []library.AudioFile) model {
	return model{files: files}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		m.done = true
		return m, tea.Quit

	case " ":
		// space picks a file up; arrows then carry it
		m.grabbed = !m.grabbed

	case "up", "k":
		if m.grabbed {
			m.move(m.cursor - 1)
		} else if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.grabbed {
			m.move(m.cursor + 1)
		} else if m.cursor < len(m.files)-1 {
			m.cursor++
		}

	case "shift+up", "K":
		m.move(m.cursor - 1)

	case "shift+down", "J":
		m.move(m.cursor + 1)

	case "home", "g":
		if m.grabbed {
			m.move(0)
		} else {
			m.cursor = 0
		}

	case "end", "G":
		if m.grabbed {
			m.move(len(m.files) - 1)
		} else if len(m.files) > 0 {
			m.cursor = len(m.files) - 1
		}
	}

	return m, nil
}

func (m *model) move(to int) {
	if to < 0 || to >= len(m.files) || to == m.cursor {
		return
	}
	files, err := library.Move(m.files, m.cursor, to)
	if err != nil {
		return
	}
	m.files = files
	m.cursor = to
}

func (m model) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Chapter order (%d files)", len(m.files))))
	b.WriteString("\n\n")

	for i, f := range m.files {
		idx := indexStyle.Render(fmt.Sprintf("%d.", i+1))
		line := itemStyle.Render(f.Name)
		if i == m.cursor {
			style := selectedStyle
			marker := "> "
			if m.grabbed {
				style = grabbedStyle
				marker = "≡ "
			}
			line = style.Render(marker + f.Name)
		}
		fmt.Fprintf(&b, "%s %s\n", idx, line)
	}

	b.WriteString(helpStyle.Render("↑/↓ select • space grab/drop • shift+↑/↓ move • enter confirm • q cancel"))
	b.WriteString("\n")
	return b.String()
}
