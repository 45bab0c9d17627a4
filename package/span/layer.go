package span

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/prism"
)

type Layer struct {
	Prism  prism.Prism `json:"-"`
	Name   string      `json:"name,omitempty"`
	Type   string      `json:"type,omitempty"`
	Caller *Caller     `json:"caller,omitempty"`
}

func NewLayer(prism prism.Prism, name string, typ string) *Layer {
	caller := NewCaller()

	return &Layer{
		Prism:  prism,
		Name:   name,
		Type:   typ,
		Caller: caller,
	}
}

func (r *Layer) With(ctx context.Context) (prism.Span, context.Context) {
	parent, ok := ctx.Value(ContextKeySpan).(*Span)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	var layer *Layer
	if r.Name != "" {
		layer = r
	}

	// * resolve prism from layer or context
	plg := r.Prism
	if plg == nil {
		plg = FromContext(ctx)
	}

	var tracingSpan trace.Span
	if plg != nil && plg.Tracer() != nil {
		ctx, tracingSpan = plg.Tracer().Start(ctx, name)
		tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))
	}

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     layer,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if ok {
		s.Path = append(slices.Clone(parent.Path), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	return &Wrapper{Span: s}, context.WithValue(ctx, ContextKeySpan, s)
}
