// Package freshness decides when a stylesheet's declaration file must be regenerated.
package freshness

import (
	"sync"
	"time"
)

// Cache records the last observed modification time per stylesheet path.
// Entries are never evicted; the cache grows with the number of distinct
// stylesheets seen during the process lifetime.
type Cache struct {
	mu     sync.Mutex
	mtimes map[string]time.Time
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		mtimes: make(map[string]time.Time),
	}
}

// Observe reports whether path is new or its mtime is strictly newer than the
// recorded one. When it is, mtime is recorded before Observe returns, so a
// concurrent Observe with the same mtime reports false.
func (c *Cache) Observe(path string, mtime time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.mtimes[path]
	if ok && !mtime.After(last) {
		return false
	}
	c.mtimes[path] = mtime
	return true
}

// Get returns the recorded mtime for path.
func (c *Cache) Get(path string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mtime, ok := c.mtimes[path]
	return mtime, ok
}

// Len returns the number of tracked paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.mtimes)
}

// Forget drops the entry for path, so the next Observe treats it as new.
func (c *Cache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.mtimes, path)
}
