package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientSetGetDel(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	_, err := client.Get(ctx, "missing")
	assert.Equal(t, ErrKeyNotFound, err)

	require.NoError(t, client.Set(ctx, "k", "v", 0))
	value, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	require.NoError(t, client.Del(ctx, "k"))
	_, err = client.Get(ctx, "k")
	assert.Equal(t, ErrKeyNotFound, err)
}

func TestMemoryClientTTLExpiry(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	require.NoError(t, client.Set(ctx, "short", "v", 10*time.Millisecond))

	value, err := client.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	time.Sleep(20 * time.Millisecond)
	_, err = client.Get(ctx, "short")
	assert.Equal(t, ErrKeyNotFound, err)
}

func TestMemoryClientKeys(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	require.NoError(t, client.Set(ctx, "notes_v1:wex", "a", 0))
	require.NoError(t, client.Set(ctx, "notes_v1:dat", "b", 0))
	require.NoError(t, client.Set(ctx, "demand_v1:1", "c", 0))

	keys, err := client.Keys(ctx, "notes_v1:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"notes_v1:wex", "notes_v1:dat"}, keys)
}
