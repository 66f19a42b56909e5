// Package registry keeps named *dropbox.Client instances for applications that wire their dependencies at
// startup.  A Registry is an ordinary value; there is no package-level state.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c2fo/dropbox"
	"github.com/c2fo/dropbox/config"
)

// DefaultName is the name FromConfig registers under.
const DefaultName = "dropbox"

// ErrNotRegistered is returned by Client for an unknown name.
const ErrNotRegistered = dropbox.Error("dropbox client not registered")

// Factory builds a client the first time it is asked for.
type Factory func() (*dropbox.Client, error)

type entry struct {
	once    sync.Once
	factory Factory
	client  *dropbox.Client
	err     error
}

func (e *entry) get() (*dropbox.Client, error) {
	e.once.Do(func() {
		if e.factory != nil {
			e.client, e.err = e.factory()
		}
	})
	return e.client, e.err
}

// Registry maps names to clients.  The zero value is an empty registry.  It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New initializer for Registry struct.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register stores a ready client under name, replacing any previous entry.
func (r *Registry) Register(name string, c *dropbox.Client) {
	e := &entry{client: c}
	e.once.Do(func() {})

	r.mu.Lock()
	r.put(name, e)
	r.mu.Unlock()
}

// Provide stores a factory under name.  The factory runs at most once, on the first Client call for name, and
// its client or error is returned to every later caller.
func (r *Registry) Provide(name string, f Factory) {
	r.mu.Lock()
	r.put(name, &entry{factory: f})
	r.mu.Unlock()
}

// put must be called with mu held.
func (r *Registry) put(name string, e *entry) {
	if r.entries == nil {
		r.entries = make(map[string]*entry)
	}
	r.entries[name] = e
}

// Client returns the client registered under name.
func (r *Registry) Client(name string) (*dropbox.Client, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return e.get()
}

// Unregister removes name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.entries, name)
	r.mu.Unlock()
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for k := range r.entries {
		names = append(names, k)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// FromConfig provides DefaultName from cfg.  The configuration is validated when the client is first requested,
// so a missing token surfaces then as dropbox.ErrConfigurationMissing.
func (r *Registry) FromConfig(cfg *config.Config) {
	r.Provide(DefaultName, func() (*dropbox.Client, error) {
		return cfg.NewClient()
	})
}
