package altecs

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// ComponentID is a unique identifier for a component type.
// Valid IDs range from 0 to 254.
type ComponentID uint8

// MaxComponents is the maximum number of component types supported.
const MaxComponents = 255

// componentRegistry assigns ComponentIDs to component types. IDs are shared by
// every World in the process, so a type keeps its ID across Applications.
type componentRegistry struct {
	mu    sync.RWMutex
	ids   map[reflect.Type]ComponentID
	types [MaxComponents]reflect.Type
	next  int
}

var components = &componentRegistry{ids: make(map[reflect.Type]ComponentID)}

// registerComponentType registers a component type and returns its ID.
// Types are registered on first use; Register pins an ID up front.
func registerComponentType(t reflect.Type) ComponentID {
	components.mu.RLock()
	id, ok := components.ids[t]
	components.mu.RUnlock()
	if ok {
		return id
	}

	components.mu.Lock()
	defer components.mu.Unlock()
	if id, ok := components.ids[t]; ok {
		return id
	}
	if components.next >= MaxComponents {
		panic(fmt.Sprintf("altecs: component limit exceeded (max %d types)", MaxComponents))
	}
	id = ComponentID(components.next)
	components.next++
	components.ids[t] = id
	components.types[id] = t
	return id
}

// componentID returns the ComponentID for type T, registering it if needed.
func componentID[T any]() ComponentID {
	return registerComponentType(reflect.TypeFor[T]())
}

// ComponentType returns the reflect.Type of the component with the given ID,
// or nil if no type holds it.
func ComponentType(id ComponentID) reflect.Type {
	components.mu.RLock()
	defer components.mu.RUnlock()
	return components.types[id]
}

// ComponentName returns the name of the component type with the given ID.
func ComponentName(id ComponentID) string {
	if t := ComponentType(id); t != nil {
		return t.Name()
	}
	return ""
}

// RegisteredComponentCount returns the number of registered component types.
func RegisteredComponentCount() int {
	components.mu.RLock()
	defer components.mu.RUnlock()
	return components.next
}

// Attachable is implemented by components that need initialization logic
// when attached to an entity.
type Attachable interface {
	Attach(w *World, id EntityID)
}

// Detachable is implemented by components that need cleanup logic when
// detached from an entity or when the entity is destroyed.
type Detachable interface {
	Detach(w *World, id EntityID)
}

// Add attaches a component to a live or pending entity.
// If a component of this type already exists, it is replaced and detached.
// Facet components are attached only by the object registry; adding one is
// refused with ErrFacetManaged.
func Add[T any](w *World, id EntityID, component *T) error {
	if w == nil || component == nil {
		return nil
	}

	cid := componentID[T]()
	if isFacetComponent(cid) {
		return fmt.Errorf("add %s to %s: %w", ComponentName(cid), id, ErrFacetManaged)
	}

	w.mu.Lock()
	rec, err := w.recordLocked(id)
	if err != nil {
		w.mu.Unlock()
		return err
	}
	old := rec.components[cid]
	rec.components[cid] = unsafe.Pointer(component)
	rec.mask.Set(cid)
	alive := rec.state == stateAlive
	w.mu.Unlock()

	if old != nil {
		if d, ok := any((*T)(old)).(Detachable); ok {
			d.Detach(w, id)
		}
	}
	// Pending entities run their hooks when Maintain makes them alive.
	if alive {
		if a, ok := any(component).(Attachable); ok {
			a.Attach(w, id)
		}
	}
	return nil
}

// Remove detaches a component from an entity.
// If the component implements Detachable, its Detach method is called.
// Facets cannot be removed individually; they go away with the entity.
func Remove[T any](w *World, id EntityID) {
	if w == nil {
		return
	}

	cid := componentID[T]()
	if isFacetComponent(cid) {
		w.log.Warn("altecs: facets are removed with their entity", "component", ComponentName(cid), "entity", id.String())
		return
	}

	w.mu.Lock()
	rec, err := w.recordLocked(id)
	if err != nil || rec.components[cid] == nil {
		w.mu.Unlock()
		return
	}
	ptr := rec.components[cid]
	rec.components[cid] = nil
	rec.mask.Clear(cid)
	alive := rec.state == stateAlive
	w.mu.Unlock()

	if alive {
		if d, ok := any((*T)(ptr)).(Detachable); ok {
			d.Detach(w, id)
		}
	}
}

// Get retrieves a component from an entity.
// Returns nil if the entity does not exist or lacks the component. An entity
// despawned during the current tick stays readable until Maintain runs.
func Get[T any](w *World, id EntityID) *T {
	if w == nil {
		return nil
	}

	cid := componentID[T]()

	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	if err != nil {
		return nil
	}
	return (*T)(rec.components[cid])
}

// Has checks if a component type is present on an entity.
func Has[T any](w *World, id EntityID) bool {
	if w == nil {
		return false
	}

	cid := componentID[T]()

	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	return err == nil && rec.mask.Has(cid)
}

// componentPointer splits a component value into its ID and pointer.
// The value must be a non-nil pointer to a struct or named type.
func componentPointer(c any) (ComponentID, unsafe.Pointer, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return 0, nil, fmt.Errorf("component %T: must be a non-nil pointer", c)
	}
	return registerComponentType(v.Type().Elem()), v.UnsafePointer(), nil
}

// callAttach runs the Attach hook of the component stored at ptr.
func callAttach(w *World, id EntityID, cid ComponentID, ptr unsafe.Pointer) {
	t := ComponentType(cid)
	if t == nil {
		return
	}
	if a, ok := reflect.NewAt(t, ptr).Interface().(Attachable); ok {
		a.Attach(w, id)
	}
}

// callDetach runs the Detach hook of the component stored at ptr.
func callDetach(w *World, id EntityID, cid ComponentID, ptr unsafe.Pointer) {
	t := ComponentType(cid)
	if t == nil {
		return
	}
	if d, ok := reflect.NewAt(t, ptr).Interface().(Detachable); ok {
		d.Detach(w, id)
	}
}
