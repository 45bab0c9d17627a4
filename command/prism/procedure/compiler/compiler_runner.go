package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

type Execution struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

type Runner interface {
	Run(ctx context.Context, executable string, args []string, directory string) (*Execution, error)
}

type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return new(ExecRunner)
}

// Run waits for the process. A non-zero exit is reported in the execution,
// not as an error; errors mean the process could not be run to completion.
func (r *ExecRunner) Run(ctx context.Context, executable string, args []string, directory string) (*Execution, error) {
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = directory

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	execution := &Execution{
		ExitCode: 0,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		execution.ExitCode = exitErr.ExitCode()
		return execution, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	return execution, nil
}
