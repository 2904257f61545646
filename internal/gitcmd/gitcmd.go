package gitcmd

import (
	"fmt"
	"os/exec"
	"strings"
)

// binary is a var so tests can point Run at something other than git.
var binary = "git"

// CommandError reports a git invocation that exited non-zero or could not
// be started. Output holds whatever git wrote to stderr.
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Run executes git with the given arguments and returns its raw stdout.
// It blocks until the process exits. A non-zero exit or a missing git
// binary yields a *CommandError.
func Run(args ...string) ([]byte, error) {
	cmd := exec.Command(binary, args...)
	out, err := cmd.Output()
	if err != nil {
		cmdErr := &CommandError{Args: args, ExitCode: -1, Err: err}
		if exitErr, ok := err.(*exec.ExitError); ok {
			cmdErr.ExitCode = exitErr.ExitCode()
			cmdErr.Output = string(exitErr.Stderr)
		}
		return nil, cmdErr
	}
	return out, nil
}
