package span_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/prism/package/span"
)

var errCause = errors.New("cause")

func TestLayerWithNestsChildren(t *testing.T) {
	layer := span.NewLayer(nil, "driver", "procedure")

	outer, ctx := layer.With(context.Background())
	inner, ctx := layer.With(ctx)
	inner.End()
	outer.End()

	current := span.Current(ctx)
	require.NotNil(t, current)
	require.Len(t, current.Path, 1)

	parent := outer.(*span.Wrapper).Span
	require.Len(t, parent.Children, 1)
	require.Same(t, current, parent.Children[0])
	require.NotNil(t, parent.Ended)
	require.Equal(t, "procedure", parent.Layer.Type)
}

func TestSpanErrorChainsMessages(t *testing.T) {
	layer := span.NewLayer(nil, "build", "subcommand")
	s, ctx := layer.With(context.Background())
	defer s.End()
	child, _ := layer.With(ctx)
	defer child.End()

	err := child.Error("unable to resolve compiler", errCause)
	err = s.Error("build failed", err)

	require.ErrorIs(t, err, errCause)
	require.Equal(t, "build failed: unable to resolve compiler: cause", err.Error())

	var spanErr *span.Error
	require.True(t, errors.As(err, &spanErr))
	require.Len(t, spanErr.Items, 2)
	require.Equal(t, "unable to resolve compiler", *spanErr.Message())
	require.Contains(t, spanErr.Items[0].Trace.String(), "span_test.TestSpanErrorChainsMessages")
}

func TestSpanErrorWithoutCause(t *testing.T) {
	s, _ := span.NewLayer(nil, "", "").With(context.Background())
	defer s.End()

	err := s.Error("nothing to publish", nil)
	require.EqualError(t, err, "nothing to publish")
	require.NoError(t, errors.Unwrap(err))
}

func TestWrapperTraceIsNeverNil(t *testing.T) {
	s, _ := span.NewLayer(nil, "list", "subcommand").With(context.Background())
	defer s.End()

	require.NotNil(t, s.Trace())
	require.False(t, s.Trace().IsRecording())
	s.Variable("directory", "/tmp")
}
