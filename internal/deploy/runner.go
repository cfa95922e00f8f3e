package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	deployerrors "github.com/savaki/gcf-deployer/internal/errors"
)

// Runner executes an external command and reports its exit code.
// A non-zero exit code is not an error; err is set only when the command could not be run.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (int, error)
}

// ExecRunner runs commands with os/exec, passing stdio through unmodified.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				return code, nil
			}
			// killed by a signal: report 128+signal like a shell does
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
				return 128 + int(status.Signal()), nil
			}
			return 1, nil
		}
		return 1, fmt.Errorf("%w: %s: %w", deployerrors.ErrRunnerFailed, name, err)
	}

	return 0, nil
}
