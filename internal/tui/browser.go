package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
)

// Browser is a bubbletea model for navigating a vfs tree with the arrow
// keys: enter descends into the selected directory, esc moves back up to
// the parent, q quits.
type Browser struct {
	dir      *vfs.Directory
	cursor   int
	keyMap   KeyMap
	quitting bool
}

// NewBrowser creates a browser rooted at dir.
func NewBrowser(dir *vfs.Directory) Browser {
	return Browser{
		dir:    dir,
		keyMap: DefaultKeyMap(),
	}
}

// Browse runs the browser until the user quits.
func Browse(dir *vfs.Directory) error {
	p := tea.NewProgram(NewBrowser(dir))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	children := b.dir.Children()

	switch {
	case key.Matches(keyMsg, b.keyMap.Quit):
		b.quitting = true
		return b, tea.Quit

	case key.Matches(keyMsg, b.keyMap.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(keyMsg, b.keyMap.Down):
		if b.cursor < len(children)-1 {
			b.cursor++
		}

	case key.Matches(keyMsg, b.keyMap.Select):
		if b.cursor < len(children) {
			if dir, ok := children[b.cursor].(*vfs.Directory); ok {
				b.dir = dir
				b.cursor = 0
			}
		}

	case key.Matches(keyMsg, b.keyMap.Back):
		if parent := b.dir.Parent(); parent != nil {
			b.dir = parent
			b.cursor = 0
		}
	}

	return b, nil
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.quitting {
		return ""
	}

	var view strings.Builder
	view.WriteString(TitleStyle.Render(absolutePath(b.dir)))
	view.WriteString("\n")

	children := b.dir.Children()
	if len(children) == 0 {
		view.WriteString(UnselectedStyle.Render("  (empty)"))
		view.WriteString("\n")
	}

	for i, child := range children {
		label := entryLabel(child)

		if i == b.cursor {
			view.WriteString(SelectedStyle.Render("> " + label))
		} else {
			view.WriteString(UnselectedStyle.Render("  " + label))
		}
		view.WriteString("\n")
	}

	view.WriteString(HelpStyle.Render(b.keyMap.HelpText()))
	view.WriteString("\n")
	return view.String()
}

func entryLabel(node vfs.Node) string {
	if _, ok := node.(*vfs.Directory); ok {
		return node.Name() + "/"
	}
	return fmt.Sprintf("%s (%dB)", node.Name(), node.Size())
}

// absolutePath rebuilds the path of dir by walking parent references.
func absolutePath(dir *vfs.Directory) string {
	if dir.Parent() == nil {
		return "/"
	}

	var names []string
	for d := dir; d.Parent() != nil; d = d.Parent() {
		names = append(names, d.Name())
	}

	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(names[i])
	}
	return b.String()
}
