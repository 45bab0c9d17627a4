package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

var (
	ErrRootMissing = errors.New("compiler root is not configured")
	ErrLaunch      = errors.New("unable to launch compiler")
)

type Status string

const (
	StatusSuccess           Status = "success"
	StatusCompilationFailed Status = "compilation failed"
)

type Result struct {
	Source      *shader.Source
	Output      string
	Status      Status
	ExitCode    int
	Diagnostics string
	Duration    time.Duration
}

func (r *Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

type Compiler struct {
	Executable string
	Flags      []string
	Timeout    time.Duration
	Runner     Runner
}

func New(config *Config, runner Runner) (*Compiler, error) {
	root, err := ResolveRoot(config)
	if err != nil {
		return nil, err
	}

	// * resolve executable
	executable := DefaultExecutable
	if config.Executable != nil && *config.Executable != "" {
		executable = *config.Executable
	}
	if !filepath.IsAbs(executable) {
		executable = filepath.Join(root, executable)
	}

	// * anchor relative roots to the working directory
	executable, err = filepath.Abs(executable)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve compiler path: %w", err)
	}

	// * resolve flags
	flags := []string{DefaultFlag}
	if len(config.Flags) > 0 {
		flags = make([]string, 0, len(config.Flags))
		for _, flag := range config.Flags {
			flags = append(flags, *flag)
		}
	}

	compiler := &Compiler{
		Executable: executable,
		Flags:      flags,
		Timeout:    0,
		Runner:     runner,
	}
	if config.Timeout != nil {
		if *config.Timeout < 0 {
			return nil, fmt.Errorf("compiler timeout must not be negative, got %s", *config.Timeout)
		}
		compiler.Timeout = *config.Timeout
	}

	return compiler, nil
}

// ResolveRoot returns the configured root, or the value of the configured
// environment variable.
func ResolveRoot(config *Config) (string, error) {
	if config.Root != nil && *config.Root != "" {
		return *config.Root, nil
	}

	environment := DefaultEnvironment
	if config.Environment != nil && *config.Environment != "" {
		environment = *config.Environment
	}

	value, ok := os.LookupEnv(environment)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: set %s or compiler.root", ErrRootMissing, environment)
	}

	return value, nil
}

// Arguments are relative to the source directory, which is the working
// directory of the compiler process.
func (r *Compiler) Arguments(source *shader.Source) []string {
	args := make([]string, 0, len(r.Flags)+3)
	args = append(args, r.Flags...)
	args = append(args, source.Name, OutputFlag, source.Output)
	return args
}

func (r *Compiler) Compile(ctx context.Context, source *shader.Source) (*Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	started := time.Now()
	execution, err := r.Runner.Run(ctx, r.Executable, r.Arguments(source), source.Directory)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", source.Name, err)
	}

	result := &Result{
		Source:      source,
		Output:      source.Output,
		Status:      StatusSuccess,
		ExitCode:    execution.ExitCode,
		Diagnostics: "",
		Duration:    time.Since(started),
	}

	// * capture diagnostics on failure
	if execution.ExitCode != 0 {
		result.Status = StatusCompilationFailed
		result.Diagnostics = Diagnostics(execution)
	}

	return result, nil
}

func Diagnostics(execution *Execution) string {
	parts := make([]string, 0, 2)
	for _, stream := range [][]byte{execution.Stdout, execution.Stderr} {
		if text := strings.TrimSpace(string(stream)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
