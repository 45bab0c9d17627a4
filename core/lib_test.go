package core

import (
	"context"
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/prism"
	"go.scnd.dev/open/prism/package/span"
	"go.uber.org/fx/fxtest"
)

func TestNewInstanceLayer(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	instance, err := New(lc, &prism.Config{
		AppName: gut.Ptr("prism"),
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	require.Equal(t, "prism", *instance.Config().AppName)
	require.NotNil(t, instance.Instrument())

	s, ctx := instance.Layer("build", "subcommand").With(context.Background())
	defer s.End()
	require.True(t, s.Trace().SpanContext().IsValid())
	require.NotNil(t, span.Current(ctx))
}
