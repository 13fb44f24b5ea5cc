package instances

import (
	"sort"
	"sync"
)

// Tracker is an in-process Invalidator that records which source files a
// build has processed.
type Tracker struct {
	mu    sync.Mutex
	files map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{files: make(map[string]bool)}
}

// MarkProcessed records that path was processed by the latest build.
func (t *Tracker) MarkProcessed(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.files[path] = true
}

// MarkUnprocessed flags path for reprocessing. Unknown paths are added.
func (t *Tracker) MarkUnprocessed(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.files[path] = false
}

// Processed reports whether path is known and processed.
func (t *Tracker) Processed(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.files[path]
}

// Pending returns the paths flagged for reprocessing, sorted.
func (t *Tracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var pending []string
	for path, done := range t.files {
		if !done {
			pending = append(pending, path)
		}
	}
	sort.Strings(pending)
	return pending
}

// Reset forgets every path.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.files)
}
