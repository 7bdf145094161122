package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/storage"
)

func TestVectorCache_PutGet(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	ctx := context.Background()
	id := core.IDFromContent("en:chocolate-spreads")
	entry := &core.VectorEntry{
		Model:     "text-embedding-3-small",
		Vector:    []float32{0.5, -0.5, 0.25},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	require.NoError(t, cache.Put(ctx, id, entry))

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entry.Model, got.Model)
	assert.Equal(t, entry.Vector, got.Vector)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
}

func TestVectorCache_GetMiss(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	_, err = cache.Get(context.Background(), core.IDFromContent("never stored"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVectorCache_PutReplaces(t *testing.T) {
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	ctx := context.Background()
	id := core.IDFromContent("spreads")

	require.NoError(t, cache.Put(ctx, id, &core.VectorEntry{Model: "old", Vector: []float32{1}}))
	require.NoError(t, cache.Put(ctx, id, &core.VectorEntry{Model: "new", Vector: []float32{2}}))

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Model)
	assert.Equal(t, []float32{2}, got.Vector)
}

func TestNewVectorCache_NilBackend(t *testing.T) {
	_, err := NewVectorCache(nil)
	assert.ErrorIs(t, err, storage.ErrBackendRequired)
}
