package span

import (
	"context"

	"go.scnd.dev/open/prism"
)

type ContextKey struct {
	Name string
}

var (
	ContextKeyPrism = ContextKey{
		Name: "prism",
	}
	ContextKeySpan = ContextKey{
		Name: "prism.span",
	}
)

func NewContext(prism prism.Prism, ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyPrism, prism)
}

func FromContext(ctx context.Context) prism.Prism {
	p, ok := ctx.Value(ContextKeyPrism).(prism.Prism)
	if !ok {
		return nil
	}

	return p
}

// Current returns the innermost span attached to ctx, or nil.
func Current(ctx context.Context) *Span {
	s, _ := ctx.Value(ContextKeySpan).(*Span)
	return s
}
