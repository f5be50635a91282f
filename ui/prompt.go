package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt is a single-line free-text input. It reads one line including
// embedded spaces; the submitted value is whitespace-trimmed and may be empty.
// Esc cancels the whole pending action.
type Prompt struct {
	textinput textinput.Model
	Title     string
	Submitted bool
	Canceled  bool

	width, height int
}

// NewPrompt creates a prompt with the given label and pre-filled initial
// value.
func NewPrompt(title, initialValue string) *Prompt {
	ti := textinput.New()
	ti.SetValue(initialValue)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &Prompt{
		textinput: ti,
		Title:     title,
	}
}

func (p *Prompt) SetSize(width, height int) {
	p.width = width
	p.height = height
	if width > 10 {
		p.textinput.Width = width - 10
	}
}

// Init returns the cursor blink command for the underlying text input.
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// HandleKeyPress processes a key press and updates the state accordingly.
// Returns true if the prompt is finished, either submitted or canceled.
func (p *Prompt) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		p.Canceled = true
		return true
	case tea.KeyEnter:
		p.Submitted = true
		return true
	default:
		p.textinput, _ = p.textinput.Update(msg)
		return false
	}
}

// Update forwards non-key messages (cursor blinks) to the text input.
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return cmd
}

// Value returns the trimmed input value.
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.textinput.Value())
}

func (p *Prompt) String() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(p.textinput.View())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("(Enter to submit, Esc to cancel)"))

	if p.width == 0 || p.height == 0 {
		return b.String()
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Left, lipgloss.Top, b.String())
}
