package component

import (
	"errors"
	"fmt"
	"sync"

	"github.com/randalmurphal/forward/engine"
)

var (
	// ErrEmptyName is returned when registering a component without a name.
	ErrEmptyName = errors.New("component name is empty")

	// ErrDuplicate is returned when a name is already registered.
	ErrDuplicate = errors.New("component already registered")
)

// Registry holds the components mounted into an application. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]*Component
	order []*Component // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Component)}
}

// Register adds c. Names must be unique.
func (r *Registry) Register(c *Component) error {
	if c == nil || c.Name() == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[c.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, c.Name())
	}
	r.byKey[c.Name()] = c
	r.order = append(r.order, c)
	return nil
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (*Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[name]
	return c, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, c := range r.order {
		names = append(names, c.Name())
	}
	return names
}

// Find implements engine.Loader by asking each component in registration
// order.
func (r *Registry) Find(name string) (string, error) {
	r.mu.RLock()
	components := append([]*Component(nil), r.order...)
	r.mu.RUnlock()

	for _, c := range components {
		if path, err := c.loader.Find(name); err == nil {
			return path, nil
		}
	}
	return "", &engine.NotFoundError{Name: name}
}
