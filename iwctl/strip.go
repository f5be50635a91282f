package iwctl

import "github.com/charmbracelet/x/ansi"

// StripEscapes removes terminal escape sequences from s. iwctl colorizes its
// output; rendered inside another full-screen program the raw sequences would
// leak as ^[[0m noise, so both captured streams are stripped before display.
// Stripping is idempotent and leaves plain text untouched.
func StripEscapes(s string) string {
	return ansi.Strip(s)
}
