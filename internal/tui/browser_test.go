package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
)

func browserFixture(t *testing.T) *vfs.FileSystem {
	t.Helper()
	fs := vfs.New()
	for _, res := range fs.MakeDirectories([]string{"docs", "src"}, false) {
		require.NoError(t, res.Err)
	}
	require.NoError(t, fs.WriteFile("hello", "docs/readme.md"))
	return fs
}

func keyMsg(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func update(t *testing.T, b Browser, msg tea.Msg) Browser {
	t.Helper()
	model, _ := b.Update(msg)
	next, ok := model.(Browser)
	require.True(t, ok)
	return next
}

func TestBrowser_ViewListsChildren(t *testing.T) {
	fs := browserFixture(t)
	b := NewBrowser(fs.Root())

	view := b.View()
	assert.Contains(t, view, "docs/")
	assert.Contains(t, view, "src/")
	assert.Contains(t, view, "/")
}

func TestBrowser_CursorMoves(t *testing.T) {
	fs := browserFixture(t)
	b := NewBrowser(fs.Root())

	b = update(t, b, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, b.cursor)

	// Clamped at the last entry.
	b = update(t, b, keyMsg(tea.KeyDown))
	b = update(t, b, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, b.cursor)

	b = update(t, b, keyMsg(tea.KeyUp))
	assert.Equal(t, 0, b.cursor)
	b = update(t, b, keyMsg(tea.KeyUp))
	assert.Equal(t, 0, b.cursor)
}

func TestBrowser_EnterDescendsAndEscAscends(t *testing.T) {
	fs := browserFixture(t)
	b := NewBrowser(fs.Root())

	// Cursor starts on "docs"; enter descends into it.
	b = update(t, b, keyMsg(tea.KeyEnter))
	assert.Contains(t, b.View(), "readme.md (5B)")

	// Enter on a file is a no-op.
	b = update(t, b, keyMsg(tea.KeyEnter))
	assert.Contains(t, b.View(), "readme.md (5B)")

	b = update(t, b, keyMsg(tea.KeyEsc))
	assert.Contains(t, b.View(), "docs/")
}

func TestBrowser_EscAtRootStays(t *testing.T) {
	fs := browserFixture(t)
	b := NewBrowser(fs.Root())

	b = update(t, b, keyMsg(tea.KeyEsc))
	assert.Contains(t, b.View(), "docs/")
}

func TestBrowser_QuitReturnsQuitCmd(t *testing.T) {
	fs := browserFixture(t)
	b := NewBrowser(fs.Root())

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	next, ok := model.(Browser)
	require.True(t, ok)
	assert.Equal(t, "", next.View(), "quitting browser renders nothing")
}

func TestBrowser_EmptyDirectory(t *testing.T) {
	fs := vfs.New()
	b := NewBrowser(fs.Root())
	assert.Contains(t, b.View(), "(empty)")
}
