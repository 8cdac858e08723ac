package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"scipion-installer/internal/logger"
)

// Runner hands assembled command text to the system shell.
type Runner struct {
	DryRun bool
	// Shell runs the command text with -c.
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner bound to the process's standard streams.
func NewRunner(dry bool) *Runner {
	return &Runner{
		DryRun: dry,
		Shell:  "/bin/sh",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes command as a single shell invocation so that && chains stop at
// the first failure. In dry-run mode the command is printed and nothing runs.
// There is no timeout; only ctx cancellation stops the shell.
func (r *Runner) Run(ctx context.Context, command string) error {
	command = TrimSeparator(command)

	if r.DryRun {
		fmt.Fprintln(r.Stdout, command)
		return nil
	}

	logger.Debug("[DEBUG] Running command:\n%s\n", command)
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return Wrap(err, "Something went wrong running: \n %s", command)
	}
	return nil
}
