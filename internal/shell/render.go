package shell

import (
	"fmt"
	"strings"

	"github.com/mibnrashid/NinjaFiles2/internal/tui"
	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
)

// Renderer formats shell output. With color disabled every method returns
// plain text, which is also what the tests assert against.
type Renderer struct {
	colored bool
}

// NewRenderer creates a renderer. colored enables lipgloss styling.
func NewRenderer(colored bool) *Renderer {
	return &Renderer{colored: colored}
}

// Prompt renders the shell prompt for the given absolute path.
func (r *Renderer) Prompt(path, suffix string) string {
	if r.colored {
		return tui.PromptStyle.Render(path) + suffix
	}
	return path + suffix
}

// Errorf renders an error line.
func (r *Renderer) Errorf(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if r.colored {
		return tui.ErrorStyle.Render(msg)
	}
	return msg
}

// Listing renders directory entries on a single space-separated line:
// directories as "name/", files as "name (NB)".
func (r *Renderer) Listing(entries []vfs.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.entry(e))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) entry(e vfs.Entry) string {
	if e.IsDir {
		if r.colored {
			return tui.DirectoryStyle.Render(e.Name + "/")
		}
		return e.Name + "/"
	}

	label := fmt.Sprintf("%s (%dB)", e.Name, e.Size)
	if r.colored {
		return tui.FileStyle.Render(label)
	}
	return label
}
