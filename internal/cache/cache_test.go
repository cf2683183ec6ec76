package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	c.Set("k", "v", time.Minute)
	assert.Equal(t, "v", c.Get("k"))
	assert.Nil(t, c.Get("missing"))
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	c, err := NewWithClock(10, func() time.Time { return now })
	require.NoError(t, err)

	c.Set("k", "v", 20*time.Second)
	assert.Equal(t, "v", c.Get("k"))

	// Just inside the window
	now = now.Add(19 * time.Second)
	assert.Equal(t, "v", c.Get("k"))

	// Past the window the entry is gone for good
	now = now.Add(2 * time.Second)
	assert.Nil(t, c.Get("k"))
	now = now.Add(-10 * time.Second)
	assert.Nil(t, c.Get("k"))
}

func TestDelete(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	c.Set("k", "v", time.Minute)
	c.Delete("k")
	assert.Nil(t, c.Get("k"))
}

func TestClear(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Clear()
	assert.Nil(t, c.Get("a"))
	assert.Nil(t, c.Get("b"))
}

func TestCapacityEviction(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("c", 3, time.Minute)

	// Oldest entry was evicted by the LRU
	assert.Nil(t, c.Get("a"))
	assert.Equal(t, 2, c.Get("b"))
	assert.Equal(t, 3, c.Get("c"))
}
