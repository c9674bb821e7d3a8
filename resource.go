package altecs

import (
	"fmt"
	"log/slog"
	"sync"
)

// ResourceRegistry maps host resources to the Applications loaded for them.
// One process hosts many resources behind a single set of host callbacks;
// each resource gets its own Application, registry and store.
type ResourceRegistry struct {
	mu   sync.RWMutex
	apps map[NativeHandle]*Application
	log  *slog.Logger
}

// NewResourceRegistry creates an empty registry. A nil logger uses
// slog.Default.
func NewResourceRegistry(log *slog.Logger) *ResourceRegistry {
	if log == nil {
		log = slog.Default()
	}
	return &ResourceRegistry{
		apps: make(map[NativeHandle]*Application),
		log:  log,
	}
}

// OnCreate runs load and stores the Application under resource.
// It reports false, storing nothing, if load fails or the resource already
// has an Application.
func (r *ResourceRegistry) OnCreate(resource NativeHandle, load func() (*Application, error)) bool {
	r.mu.RLock()
	_, exists := r.apps[resource]
	r.mu.RUnlock()
	if exists {
		r.log.Error("altecs: create resource", "resource", resource.String(), "err", ErrResourceExists)
		return false
	}

	app, err := load()
	if err != nil {
		r.log.Error("altecs: create resource", "resource", resource.String(), "err", err)
		return false
	}
	if app == nil {
		r.log.Error("altecs: create resource", "resource", resource.String(), "err", ErrLoaderFailed)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.apps[resource]; exists {
		r.log.Error("altecs: create resource", "resource", resource.String(), "err", ErrResourceExists)
		return false
	}
	r.apps[resource] = app
	return true
}

// Dispatch runs op against the Application of resource. The lock is not held
// while op runs, so op may reenter the registry through host callbacks.
func (r *ResourceRegistry) Dispatch(resource NativeHandle, op func(*Application) error) error {
	app, ok := r.Get(resource)
	if !ok {
		return fmt.Errorf("resource %s: %w", resource, ErrUnknownResource)
	}
	return op(app)
}

// OnDestroy removes and closes the Application of resource. It reports
// whether the resource was known.
func (r *ResourceRegistry) OnDestroy(resource NativeHandle) bool {
	r.mu.Lock()
	app, ok := r.apps[resource]
	delete(r.apps, resource)
	r.mu.Unlock()

	if ok {
		app.Close()
	}
	return ok
}

// Get returns the Application of resource.
func (r *ResourceRegistry) Get(resource NativeHandle) (*Application, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[resource]
	return app, ok
}

// Len returns the number of loaded resources.
func (r *ResourceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.apps)
}
