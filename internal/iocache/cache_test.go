package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.sqlite")
	cache, err := New(path, time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get("distribution")
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`{"stations":[]}`)
	require.NoError(t, cache.Set("distribution", payload))

	got, ok, err := cache.Get("distribution")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestCacheOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.sqlite")
	cache, err := New(path, time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Set("k", []byte("one")))
	require.NoError(t, cache.Set("k", []byte("two")))

	got, ok, err := cache.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)
}

func TestCacheExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.sqlite")
	// Already-expired TTL: every entry is stale on arrival.
	cache, err := New(path, -time.Second)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Set("k", []byte("v")))

	_, ok, err := cache.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.sqlite")

	cache, err := New(path, time.Hour)
	require.NoError(t, err)
	require.NoError(t, cache.Set("k", []byte("v")))
	require.NoError(t, cache.Close())

	cache, err = New(path, time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	got, ok, err := cache.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}
