package cache_test

import (
	"testing"
	"time"

	"github.com/wetland/storefront-service/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("alpha"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("alpha"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestOverwrite(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("alpha"))
	c.Set("a", []byte("beta"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("beta"), got)
	assert.Equal(t, 1, c.Size())
}

func TestEviction(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("alpha"))
	c.Set("b", []byte("beta"))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", []byte("gamma"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestExpiration(t *testing.T) {
	c := cache.NewLRUCache(2, 10*time.Millisecond)

	c.Set("a", []byte("alpha"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestDelete(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("alpha"))
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	c.Delete("missing")
	assert.Equal(t, 0, c.Size())
}
