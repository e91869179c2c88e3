package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// Executor runs a command line to completion and reports its exit code.
// A non-nil error means the command could not be started or waited on.
type Executor interface {
	Run(ctx context.Context, command string) (int, error)
}

// ShellExecutor runs commands through the platform shell with the terminal
// attached, so the user can answer whatever the scaffolding tool asks.
type ShellExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// NewShellExecutor creates an executor wired to the process's own streams
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts command and waits for it to exit.
// Interrupts are left to the child while it runs; the parent keeps going so
// it can report how the child ended.
func (e *ShellExecutor) Run(ctx context.Context, command string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	name, args := shellCommand(command)
	cmd := exec.Command(name, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to start %q: %w", command, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to wait for %q: %w", command, err)
}

// DryRunExecutor prints commands instead of running them
type DryRunExecutor struct {
	Out io.Writer
}

func (e *DryRunExecutor) Run(ctx context.Context, command string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	fmt.Fprintf(e.Out, "$ %s\n", command)
	return 0, nil
}
