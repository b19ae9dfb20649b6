package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newInput returns an unfocused single-line field holding value, with the
// cursor at its end.
func newInput(value string, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	in.Blur()
	return in
}

// editInput forwards msg to in and reports whether the value changed.
func editInput(in *textinput.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return in.Value() != before, cmd
}
