// Package instances lets the loader tell a downstream compiler instance that a
// source file must be processed again.
package instances

import (
	"sort"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// ErrUnknownInstance is returned when an invalidation names an instance that
// was never registered.
var ErrUnknownInstance = zerr.New("unknown compiler instance")

// Invalidator is implemented by compiler instances that keep per-file
// bookkeeping.
//
//go:generate mockgen -destination=mocks/mock_invalidator.go -package=mocks -source=registry.go
type Invalidator interface {
	// MarkUnprocessed flags path so its next build re-checks it.
	MarkUnprocessed(path string)
}

// Registry maps instance names to invalidators.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]Invalidator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]Invalidator)}
}

// Register adds or replaces the invalidator for name.
func (r *Registry) Register(name string, inv Invalidator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = inv
}

// Unregister removes name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, name)
}

// Lookup returns the invalidator registered for name.
func (r *Registry) Lookup(name string) (Invalidator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.instances[name]
	return inv, ok
}

// Invalidate marks path unprocessed in the instance registered as name.
func (r *Registry) Invalidate(name, path string) error {
	inv, ok := r.Lookup(name)
	if !ok {
		err := zerr.With(zerr.Wrap(ErrUnknownInstance, "invalidating "+path), "instance", name)
		return zerr.With(err, "registered", strings.Join(r.Names(), ","))
	}
	inv.MarkUnprocessed(path)
	return nil
}

// Names returns the registered instance names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.instances))
	for name := range r.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
