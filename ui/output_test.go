package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		stderr   string
		expected []string
	}{
		{
			name:     "stdout only",
			stdout:   "line1\nline2\n",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "stderr only gets marker without separator",
			stderr:   "boom\n",
			expected: []string{"stderr:", "boom"},
		},
		{
			name:     "stderr after stdout separated by blank line",
			stdout:   "ok\n",
			stderr:   "warning\n",
			expected: []string{"ok", "", "stderr:", "warning"},
		},
		{
			name:     "both empty",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildLines(tt.stdout, tt.stderr))
		})
	}
}

func TestOutput_StripsEscapeSequences(t *testing.T) {
	o := NewOutput("Station - Show", "iwctl station wlan0 show", "\x1b[1;90mwlan0\x1b[0m connected\n", "\x1b[31merr\x1b[0m\n")

	view := o.String()
	assert.Contains(t, view, "wlan0 connected")
	assert.Contains(t, view, "err")
	assert.NotContains(t, view, "\x1b[1;90m")
	assert.NotContains(t, view, "\x1b[31m")
}

func TestOutput_TruncatesToHeight(t *testing.T) {
	var stdout strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&stdout, "line %d\n", i)
	}
	o := NewOutput("Devices - List", "iwctl device list", stdout.String(), "")
	o.SetSize(80, 10)

	// 10 rows minus the reserved header/footer rows and the truncation
	// marker leaves 5 output lines.
	view := o.String()
	assert.Contains(t, view, "line 4")
	assert.NotContains(t, view, "line 5")
	assert.Contains(t, view, "... output truncated (15 more lines) ...")
}

func TestOutput_NoTruncationMarkerWhenEverythingFits(t *testing.T) {
	o := NewOutput("Adapters - List", "iwctl adapter list", "one\ntwo\n", "")
	o.SetSize(80, 24)

	assert.NotContains(t, o.String(), "output truncated")
}

func TestErrorOutput(t *testing.T) {
	o := NewErrorOutput("No network name.")

	view := o.String()
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "$ "+PlaceholderCommand)
	assert.Contains(t, view, "stderr:")
	assert.Contains(t, view, "No network name.")
}

func TestOutput_AnyKeyDismisses(t *testing.T) {
	o := NewOutput("title", "iwctl version", "out\n", "")
	if !o.HandleKeyPress(keyMsg("x")) {
		t.Error("key press did not dismiss the output screen")
	}
}
