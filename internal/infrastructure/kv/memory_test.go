package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "k", []byte("v1")))
	b, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), b)

	// Save replaces
	require.NoError(t, s.Save(ctx, "k", []byte("v2")))
	b, _, _ = s.Load(ctx, "k")
	assert.Equal(t, []byte("v2"), b)

	require.NoError(t, s.Delete(ctx, "k"))
	_, found, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is fine
	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "k", []byte("abc")))

	b, _, _ := s.Load(ctx, "k")
	b[0] = 'X'

	fresh, _, _ := s.Load(ctx, "k")
	assert.Equal(t, []byte("abc"), fresh)
}
