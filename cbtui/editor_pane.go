package cbtui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/session"
)

// EditorPane wraps a textarea as the single editable text buffer. It uses
// pointer receivers so the session controller and the BubbleTea models
// mutate one shared buffer rather than diverging copies.
type EditorPane struct {
	textarea textarea.Model
	language string
	visible  bool
	width    int
	height   int
}

// NewEditorPane creates the editor buffer; hidden until a file loads.
func NewEditorPane(width, height int) *EditorPane {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(width)
	ta.SetHeight(height - EditorStatusLines)
	return &EditorPane{
		textarea: ta,
		width:    width,
		height:   height,
	}
}

var _ session.TextBuffer = (*EditorPane)(nil)

// Text implements session.TextBuffer.
func (p *EditorPane) Text() string {
	return p.textarea.Value()
}

// SetText implements session.TextBuffer.
func (p *EditorPane) SetText(text string) {
	p.textarea.SetValue(text)
}

// SetLanguage implements session.TextBuffer. The terminal buffer has no
// highlighter; the language shows in the status line under the buffer.
func (p *EditorPane) SetLanguage(id string) {
	p.language = id
}

// SetVisible implements session.TextBuffer.
func (p *EditorPane) SetVisible(visible bool) {
	p.visible = visible
}

func (p *EditorPane) Language() string {
	return p.language
}

func (p *EditorPane) Visible() bool {
	return p.visible
}

func (p *EditorPane) Focus() tea.Cmd {
	return p.textarea.Focus()
}

func (p *EditorPane) Blur() {
	p.textarea.Blur()
}

func (p *EditorPane) Focused() bool {
	return p.textarea.Focused()
}

// Update delegates to the textarea; key messages become edits when focused.
func (p *EditorPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	return cmd
}

// View renders the buffer with a language status line beneath it.
func (p *EditorPane) View() string {
	if !p.visible {
		return ""
	}
	return p.textarea.View() + "\n" + p.statusLine()
}

func (p *EditorPane) statusLine() string {
	language := p.language
	if language == "" {
		language = "plain text"
	}
	return renderRGBColor(fmt.Sprintf(" %s ", language), SilverColor)
}

// SetSize updates the pane dimensions.
func (p *EditorPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.textarea.SetWidth(width)
	p.textarea.SetHeight(height - EditorStatusLines)
}
