package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoltCache(t *testing.T) *BoltLocalCache {
	t.Helper()

	cache, err := NewBoltLocalCache(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := cache.Close(); err != nil {
			t.Logf("failed to close local cache: %v", err)
		}
	})

	return cache
}

func TestBoltLocalCacheGetMissing(t *testing.T) {
	cache := setupBoltCache(t)

	value, found, err := cache.Get(UserIDKey)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestBoltLocalCacheSetOverwrites(t *testing.T) {
	cache := setupBoltCache(t)

	require.NoError(t, cache.Set(WardrobeItemsKey, `[{"id":"1"}]`))
	require.NoError(t, cache.Set(WardrobeItemsKey, `[]`))

	value, found, err := cache.Get(WardrobeItemsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestBoltLocalCachePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.bolt")

	cache, err := NewBoltLocalCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Set(UserIDKey, "user-1"))
	require.NoError(t, cache.Close())

	reopened, err := NewBoltLocalCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(UserIDKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "user-1", value)
}
