package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("missing key is unset, not an error", func(t *testing.T) {
		val, found, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyAuth, "true"))
		val, found, err := s.Get(ctx, KeyAuth)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "true", val)
	})

	t.Run("remove makes the key unset again", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyLogo, "data:image/png;base64,AAAA"))
		require.NoError(t, s.Remove(ctx, KeyLogo))
		_, found, err := s.Get(ctx, KeyLogo)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
