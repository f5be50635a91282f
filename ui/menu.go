package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"iwmenu/keys"
)

// Menu is a vertical selection list. The last item is by convention the
// Back/Quit entry; pressing the back key selects it no matter where the
// highlight sits. Each submenu display constructs a fresh Menu, so the
// highlight never persists across showings except through startIndex.
type Menu struct {
	title    string
	items    []string
	selected int

	width, height int
}

// NewMenu creates a menu over the given labels. startIndex sets the initial
// highlight; out-of-range values fall back to 0.
func NewMenu(title string, items []string, startIndex int) *Menu {
	if startIndex < 0 || startIndex >= len(items) {
		startIndex = 0
	}
	return &Menu{
		title:    title,
		items:    items,
		selected: startIndex,
	}
}

func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the currently highlighted index.
func (m *Menu) Selected() int {
	return m.selected
}

// HandleKeyPress processes one key press. It returns the chosen index and true
// once a choice is made; navigation keys return (-1, false). The highlight
// wraps around both ends of the list, and the back key always chooses the
// final item.
func (m *Menu) HandleKeyPress(msg tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyUp]):
		m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyDown]):
		m.selected = (m.selected + 1) % len(m.items)
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEnter]):
		return m.selected, true
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyBack]):
		return len(m.items) - 1, true
	}
	return -1, false
}

func (m *Menu) String() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := fmt.Sprintf("%d) %s", i+1, item)
		if m.width > 3 {
			label = runewidth.Truncate(label, m.width-3, "")
		}
		if i == m.selected {
			b.WriteString("  " + selectedStyle.Render(label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ to navigate, Enter to select, q to go back"))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())
}
