package backend

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/plot"
)

// Factory creates a backend for a canvas of the given size.
// Factories are registered via Register() and called by New().
type Factory func(width, height int) (plot.DrawingBackend, error)

// OutputBackend is implemented by backends that produce a serialized
// document or image.
type OutputBackend interface {
	plot.DrawingBackend

	// WriteTo writes the rendered output to w.
	WriteTo(w io.Writer) (int64, error)

	// SaveToFile writes the rendered output to the named file.
	SaveToFile(path string) error
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages:
//
//	func init() {
//	    backend.Register("svg", func(w, h int) (plot.DrawingBackend, error) {
//	        return New(w, h), nil
//	    })
//	}
//
// Register panics if factory is nil or a backend with the same name is
// already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a backend by name for a width x height canvas.
// The error message includes a hint about forgotten imports.
func New(name string, width, height int) (plot.DrawingBackend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	b, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("backend: create %q: %w", name, err)
	}
	plot.Logger().Debug("backend: created", "name", name, "width", width, "height", height)
	return b, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, width, height int) plot.DrawingBackend {
	b, err := New(name, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Count returns the number of registered backends.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(factories)
}
