// Package iwctl invokes the iwctl command line tool and captures its output.
// Nothing here interprets the wireless subcommands; argument vectors are
// assembled by the caller and passed through opaque.
package iwctl

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// executable is the name the external tool is looked up by on PATH.
const executable = "iwctl"

// ExitCodeNotFound is reported when the executable cannot be located or
// started, mirroring the shell's "command not found" status. It is
// distinguishable from anything a started process can report about itself
// through this package.
const ExitCodeNotFound = 127

// Result is the captured outcome of one invocation. A non-zero exit code is a
// normal, reportable result rather than an error.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs one iwctl invocation. The app model holds a Runner so tests can
// substitute a fake without touching PATH.
type Runner func(args ...string) Result

// Run executes iwctl with the given arguments and captures stdout, stderr and
// the exit status. It blocks until the process exits; invocations are
// user-initiated and interactive, so there is no timeout. Nothing is written
// to the child's stdin.
func Run(args ...string) Result {
	cmd := exec.Command(executable, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Could not locate or start the executable at all.
			return Result{
				Stderr:   "iwctl not found in PATH. Please install iwd / iwctl.",
				ExitCode: ExitCodeNotFound,
			}
		}
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
}

// Invocation returns the literal command line for display, e.g.
// "iwctl station wlan0 scan".
func Invocation(args ...string) string {
	if len(args) == 0 {
		return executable
	}
	return executable + " " + strings.Join(args, " ")
}
