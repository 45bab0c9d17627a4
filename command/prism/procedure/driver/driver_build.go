package driver

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.scnd.dev/open/prism/command/prism/procedure/compiler"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
	"go.scnd.dev/open/prism/command/prism/procedure/spirv"
)

// Build compiles every shader source in the directory, one at a time.
// Compilation failures are collected in the report; failing to launch the
// compiler aborts the run.
func (r *Driver) Build(ctx context.Context) (*Report, error) {
	s, ctx := r.Layer.With(ctx)
	defer s.End()
	s.Variable("directory", r.Directory)

	// * discover sources
	sources, err := shader.Scan(r.Directory)
	if err != nil {
		return nil, s.Error("unable to scan shader sources", err)
	}
	s.Variable("sources", len(sources))

	report := &Report{
		Results: make([]*compiler.Result, 0, len(sources)),
	}

	for _, source := range sources {
		fmt.Fprintf(r.Out, "output: %s\n", source.Output)

		// * drop artifact left by a previous build
		if err := os.Remove(source.OutputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return report, s.Error(fmt.Sprintf("unable to remove stale %s", source.Output), err)
		}

		result, err := r.Compiler.Compile(ctx, source)
		if err != nil {
			return report, s.Error(fmt.Sprintf("unable to compile %s", source.Name), err)
		}

		// * verify produced artifact
		if result.Succeeded() {
			Verify(result)
		}

		if r.Instrument != nil {
			r.Instrument.CompileRecord(ctx, result.Duration, string(source.Stage), string(result.Status))
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

// Verify downgrades a zero-exit result whose artifact is missing or is not
// a SPIR-V module.
func Verify(result *compiler.Result) {
	if _, err := spirv.Inspect(result.Source.OutputPath); err != nil {
		result.Status = compiler.StatusCompilationFailed
		result.Diagnostics = fmt.Sprintf("compiler exited cleanly but %s is unusable: %v", result.Output, err)
	}
}
