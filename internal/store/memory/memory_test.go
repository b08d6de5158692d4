package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwind/clientstate/internal/model"
)

func TestSetAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Get of a key that doesn't exist yet
	_, err := s.Get(ctx, "autopilotPaused_1234")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, s.Set(ctx, "autopilotPaused_1234", "true"))

	value, err := s.Get(ctx, "autopilotPaused_1234")
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	// Overwrite
	require.NoError(t, s.Set(ctx, "autopilotPaused_1234", "false"))
	value, err = s.Get(ctx, "autopilotPaused_1234")
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestRemove(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "soundMuted_1234", "1"))
	require.NoError(t, s.Remove(ctx, "soundMuted_1234"))

	_, err := s.Get(ctx, "soundMuted_1234")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Removing an absent key is a no-op
	require.NoError(t, s.Remove(ctx, "soundMuted_1234"))
}

func TestKeys(t *testing.T) {
	s := New()
	ctx := context.Background()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "a_1", "x"))
	require.NoError(t, s.Set(ctx, "b_1", "y"))
	require.NoError(t, s.Set(ctx, "c", "z"))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a_1", "b_1", "c"}, keys)
}
