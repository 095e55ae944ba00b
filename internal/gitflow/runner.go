// Package gitflow binds a task id to a source-control branch workflow:
// starting a task branch off the trunk, finishing it with a no-fast-forward
// merge back, and reporting status. All git work happens through a fixed
// external git executable; failures surface the captured stderr and halt
// the sequence with no rollback, leaving git's own state as the source of
// truth for recovery.
package gitflow

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/crooy/mdtasks/internal/debug"
)

// Runner executes one git invocation and returns its captured stdout.
// A non-zero exit yields a *CommandError carrying the captured stderr.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CommandError reports a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + ": " + stderr
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs git as a blocking subprocess.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	debug.Logf("git %s", strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
