package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"iwmenu/iwctl"
	"iwmenu/keys"
	"iwmenu/log"
)

// PlaceholderCommand is shown as the invocation when no command was run, e.g.
// on local validation errors.
const PlaceholderCommand = "N/A"

// reservedRows is the number of screen rows not available for output text:
// title, command line, separator and the footer.
const reservedRows = 4

// Output is the shared result screen. Every action lands here: it shows the
// title, the literal invocation, the captured stdout and stderr with terminal
// escapes stripped, and blocks until a key press dismisses it.
type Output struct {
	title      string
	invocation string
	lines      []string

	width, height int
}

// NewOutput creates an output screen. Pass PlaceholderCommand as the
// invocation when no command was executed.
func NewOutput(title, invocation, stdout, stderr string) *Output {
	return &Output{
		title:      title,
		invocation: invocation,
		lines:      buildLines(iwctl.StripEscapes(stdout), iwctl.StripEscapes(stderr)),
	}
}

// NewErrorOutput creates an output screen for a local validation failure. The
// action was aborted before any command ran.
func NewErrorOutput(message string) *Output {
	return &Output{
		title:      "Error",
		invocation: PlaceholderCommand,
		lines:      buildLines("", message),
	}
}

// buildLines concatenates stdout lines and, when stderr text exists, a blank
// separator, a literal "stderr:" marker and the stderr lines.
func buildLines(stdout, stderr string) []string {
	var lines []string
	if stdout != "" {
		lines = append(lines, splitLines(stdout)...)
	}
	if stderr != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "stderr:")
		lines = append(lines, splitLines(stderr)...)
	}
	return lines
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func (o *Output) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// HandleKeyPress dismisses the screen on any key. The copy key additionally
// places the invocation string on the system clipboard first.
func (o *Output) HandleKeyPress(msg tea.KeyMsg) bool {
	if key.Matches(msg, keys.GlobalkeyBindings[keys.KeyCopy]) && o.invocation != PlaceholderCommand {
		if err := clipboard.WriteAll(o.invocation); err != nil {
			log.WarningLog.Printf("failed to copy invocation to clipboard: %v", err)
		}
	}
	return true
}

func (o *Output) String() string {
	var b strings.Builder

	width := o.width
	if width <= 0 {
		width = 80
	}

	b.WriteString(headerStyle.Render(truncateRow(o.title, width)))
	b.WriteString("\n")

	cmdLine := "$ " + o.invocation
	if runewidth.StringWidth(cmdLine) >= width {
		cmdLine = runewidth.Truncate(cmdLine, width-4, "") + "..."
	}
	b.WriteString(cmdStyle.Render(cmdLine))
	b.WriteString("\n\n")

	maxLines := len(o.lines)
	if o.height > reservedRows && maxLines > o.height-reservedRows {
		// The truncation marker occupies one of the output rows.
		maxLines = o.height - reservedRows - 1
	}
	for _, line := range o.lines[:maxLines] {
		b.WriteString(truncateRow(line, width))
		b.WriteString("\n")
	}

	if omitted := len(o.lines) - maxLines; omitted > 0 {
		b.WriteString(footerStyle.Render(fmt.Sprintf("... output truncated (%d more lines) ...", omitted)))
		b.WriteString("\n")
	}

	b.WriteString(selectedStyle.Render("Press any key to go back, c to copy the command"))
	return b.String()
}

func truncateRow(s string, width int) string {
	if width <= 1 {
		return s
	}
	return runewidth.Truncate(s, width-1, "")
}
