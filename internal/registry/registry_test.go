package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwind/clientstate/internal/testutil"
)

func TestRegistry_RegisterAndDispatch(t *testing.T) {
	r := New(testutil.MakeNoopLogger())

	r.Register("ping", func(ctx context.Context, args ...string) (string, error) {
		return "pong", nil
	})

	out, err := r.Dispatch(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestRegistry_DispatchUnbound(t *testing.T) {
	r := New(testutil.MakeNoopLogger())

	_, err := r.Dispatch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotBound)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := New(testutil.MakeNoopLogger())

	r.Register("greet", func(ctx context.Context, args ...string) (string, error) {
		return "first", nil
	})
	r.Register("greet", func(ctx context.Context, args ...string) (string, error) {
		return "second", nil
	})

	out, err := r.Dispatch(context.Background(), "greet")
	require.NoError(t, err)
	assert.Equal(t, "second", out)
}

func TestRegistry_Lookup(t *testing.T) {
	r := New(testutil.MakeNoopLogger())

	_, ok := r.Lookup("greet")
	assert.False(t, ok)

	r.Register("greet", func(ctx context.Context, args ...string) (string, error) {
		return "", nil
	})

	h, ok := r.Lookup("greet")
	require.True(t, ok)
	assert.NotNil(t, h)
}

func TestRegistry_Names(t *testing.T) {
	r := New(testutil.MakeNoopLogger())
	noop := func(ctx context.Context, args ...string) (string, error) { return "", nil }

	r.Register("b", noop)
	r.Register("a", noop)
	r.Register("c", noop)

	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}

func TestRegistry_DebugFlag(t *testing.T) {
	r := New(testutil.MakeNoopLogger())

	assert.False(t, r.Debug())
	r.SetDebug(true)
	assert.True(t, r.Debug())
	r.SetDebug(false)
	assert.False(t, r.Debug())
}

func TestRegistry_HandlerErrorPropagates(t *testing.T) {
	r := New(testutil.MakeNoopLogger())
	handlerErr := errors.New("boom")

	r.Register("fail", func(ctx context.Context, args ...string) (string, error) {
		return "", handlerErr
	})

	_, err := r.Dispatch(context.Background(), "fail")
	assert.ErrorIs(t, err, handlerErr)
}
