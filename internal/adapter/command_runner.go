package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

const waitDelay = 2 * time.Second

// CommandRequest describes an external process invocation.
type CommandRequest struct {
	Dir  string
	Name string
	Args []string
	// Env entries are appended to the current process environment.
	Env []string
	// Stdout, when set, receives standard output as it is produced in
	// addition to the buffered copy in CommandResult.
	Stdout io.Writer
}

// CommandResult is the outcome of a finished process.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Output returns stdout and stderr combined.
func (r CommandResult) Output() string {
	return r.Stdout + r.Stderr
}

// CommandRunner abstracts process execution for testability.
type CommandRunner interface {
	// Run executes the command and waits for it. A non-zero exit code is not
	// an error; err is only set when the process could not run to completion.
	Run(ctx context.Context, req CommandRequest) (CommandResult, error)
}

// LocalCommandRunner implements CommandRunner with os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes the requested command.
func (r *LocalCommandRunner) Run(ctx context.Context, req CommandRequest) (CommandResult, error) {
	// #nosec G204 - the command is the configured go toolchain or a test binary it produced
	cmd := exec.CommandContext(ctx, req.Name, req.Args...)
	cmd.Dir = req.Dir
	// Children of a killed process may keep the output pipes open.
	cmd.WaitDelay = waitDelay

	if len(req.Env) > 0 {
		cmd.Env = append(os.Environ(), req.Env...)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	if req.Stdout != nil {
		cmd.Stdout = io.MultiWriter(&stdout, req.Stdout)
	}

	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1

	return result, fmt.Errorf("exec %s: %w", req.Name, err)
}
