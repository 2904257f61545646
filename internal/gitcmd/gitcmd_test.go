package gitcmd

import (
	"errors"
	"os/exec"
	"testing"
)

func withBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	old := binary
	binary = name
	t.Cleanup(func() { binary = old })
}

func TestRunCapturesStdout(t *testing.T) {
	withBinary(t, "echo")
	out, err := Run("hello")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("Run output = %q, want %q", got, "hello\n")
	}
}

func TestRunMissingBinary(t *testing.T) {
	old := binary
	binary = "linescope-no-such-binary"
	t.Cleanup(func() { binary = old })

	_, err := Run("status")
	if err == nil {
		t.Fatal("Run with missing binary: want error, got nil")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if cmdErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for unstartable command", cmdErr.ExitCode)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	withBinary(t, "false")
	_, err := Run()
	if err == nil {
		t.Fatal("Run of false: want error, got nil")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if cmdErr.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", cmdErr.ExitCode)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Args:     []string{"rev-parse", "HEAD"},
		ExitCode: 128,
		Output:   "fatal: not a git repository\n",
		Err:      errors.New("exit status 128"),
	}
	got := err.Error()
	want := "git rev-parse HEAD: exit status 128: fatal: not a git repository"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCommandErrorMessageNoStderr(t *testing.T) {
	err := &CommandError{
		Args: []string{"blame", "--porcelain", "a.go"},
		Err:  errors.New("exit status 1"),
	}
	got := err.Error()
	want := "git blame --porcelain a.go: exit status 1"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
