package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Set("k", []byte("body"), time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, []byte("body"), got)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Set("k", []byte("body"), 20*time.Millisecond)

	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("k")
	require.False(t, ok, "entry should drop after TTL")
}

func TestOverwriteResetsTTL(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Set("k", []byte("old"), 20*time.Millisecond)
	c.Set("k", []byte("new"), time.Minute)

	time.Sleep(40 * time.Millisecond)

	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, []byte("new"), got)
}

func TestDeleteAndClear(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	require.False(t, ok)
}
