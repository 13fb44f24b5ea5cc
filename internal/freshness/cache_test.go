package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheObserve(t *testing.T) {
	c := NewCache()
	t0 := time.Unix(100, 0)

	assert.True(t, c.Observe("a.css", t0), "first observation")
	assert.False(t, c.Observe("a.css", t0), "same mtime")
	assert.False(t, c.Observe("a.css", t0.Add(-time.Second)), "older mtime")
	assert.True(t, c.Observe("a.css", t0.Add(time.Nanosecond)), "strictly newer")
	assert.True(t, c.Observe("b.css", t0), "independent path")

	got, ok := c.Get("a.css")
	assert.True(t, ok)
	assert.True(t, got.Equal(t0.Add(time.Nanosecond)))
	assert.Equal(t, 2, c.Len())
}

func TestCacheNeverRecordsOlder(t *testing.T) {
	c := NewCache()
	c.Observe("a.css", time.Unix(200, 0))
	c.Observe("a.css", time.Unix(100, 0))

	got, _ := c.Get("a.css")
	assert.True(t, got.Equal(time.Unix(200, 0)))
}

func TestCacheForget(t *testing.T) {
	c := NewCache()
	t0 := time.Unix(100, 0)
	c.Observe("a.css", t0)

	c.Forget("a.css")
	c.Forget("missing.css")

	_, ok := c.Get("a.css")
	assert.False(t, ok)
	assert.True(t, c.Observe("a.css", t0), "same mtime after forget")
}
