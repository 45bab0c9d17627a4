package driver

import (
	"context"
	"fmt"
	"io"

	"go.scnd.dev/open/prism"
	"go.scnd.dev/open/prism/command/prism/procedure/compiler"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

type Compiler interface {
	Compile(ctx context.Context, source *shader.Source) (*compiler.Result, error)
}

type Driver struct {
	Directory  string
	Compiler   Compiler
	Out        io.Writer
	Layer      prism.Layer
	Instrument prism.Instrument
}

func New(directory string, compiler Compiler, out io.Writer, layer prism.Layer, instrument prism.Instrument) *Driver {
	return &Driver{
		Directory:  directory,
		Compiler:   compiler,
		Out:        out,
		Layer:      layer,
		Instrument: instrument,
	}
}

type Report struct {
	Results []*compiler.Result
}

func (r *Report) Succeeded() []*compiler.Result {
	return r.filter(true)
}

func (r *Report) Failed() []*compiler.Result {
	return r.filter(false)
}

func (r *Report) filter(succeeded bool) []*compiler.Result {
	results := make([]*compiler.Result, 0)
	for _, result := range r.Results {
		if result.Succeeded() == succeeded {
			results = append(results, result)
		}
	}
	return results
}

func (r *Report) Summary() string {
	return fmt.Sprintf("compiled %d shaders, %d succeeded, %d failed", len(r.Results), len(r.Succeeded()), len(r.Failed()))
}
