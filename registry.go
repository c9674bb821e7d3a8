package altecs

import (
	"fmt"
	"sync"
)

// objectRef is the reverse entry of a registered object.
type objectRef struct {
	handle NativeHandle
	kind   ObjectKind
}

// ObjectRegistry maps host object handles to entities, one map per kind.
// Within a kind the mapping is a bijection over live objects, and an entity
// appears in at most one kind map.
//
// Lock order is registry first, then World.
type ObjectRegistry struct {
	mu      sync.RWMutex
	w       *World
	api     BaseObjectAPI
	byKind  [kindCount]map[NativeHandle]EntityID
	reverse map[EntityID]objectRef
}

func newObjectRegistry(w *World, api BaseObjectAPI, cfg RegistryConfig) *ObjectRegistry {
	r := &ObjectRegistry{
		w:       w,
		api:     api,
		reverse: make(map[EntityID]objectRef, cfg.total()),
	}
	for k := range kindCount {
		r.byKind[k] = make(map[NativeHandle]EntityID, cfg.capacity(k))
	}
	return r
}

// reserve regrows the maps that are still empty to the capacities in cfg.
func (r *ObjectRegistry) reserve(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range kindCount {
		if len(r.byKind[k]) == 0 {
			r.byKind[k] = make(map[NativeHandle]EntityID, cfg.capacity(k))
		}
	}
	if len(r.reverse) == 0 {
		r.reverse = make(map[EntityID]objectRef, cfg.total())
	}
}

// Register creates an entity for a host object of the given kind and
// attaches the facets of that kind, each wrapping handle.
func (r *ObjectRegistry) Register(kind ObjectKind, handle NativeHandle) (EntityID, error) {
	if !kind.Valid() {
		return EntityID{}, fmt.Errorf("register %s: %w", kind, ErrUnknownObjectType)
	}
	if handle.IsNil() {
		return EntityID{}, fmt.Errorf("register %s: %w", kind, ErrNilHandle)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byKind[kind][handle]; ok {
		return EntityID{}, fmt.Errorf("register %s %s (held by %s): %w", kind, handle, id, ErrDuplicateHandle)
	}
	facets, err := newFacets(kind, handle, r.w)
	if err != nil {
		return EntityID{}, err
	}
	id := r.w.spawnNative(facets)
	r.byKind[kind][handle] = id
	r.reverse[id] = objectRef{handle: handle, kind: kind}
	return id, nil
}

// Resolve returns the entity registered for handle under kind.
func (r *ObjectRegistry) Resolve(kind ObjectKind, handle NativeHandle) (EntityID, error) {
	if !kind.Valid() {
		return EntityID{}, fmt.Errorf("resolve %s: %w", kind, ErrUnknownObjectType)
	}

	r.mu.RLock()
	id, ok := r.byKind[kind][handle]
	r.mu.RUnlock()
	if !ok {
		return EntityID{}, fmt.Errorf("resolve %s %s: %w", kind, handle, ErrNotFound)
	}
	return id, nil
}

// Unregister removes the mapping for handle and schedules its entity for
// removal at the next World.Maintain. It returns the entity id.
func (r *ObjectRegistry) Unregister(kind ObjectKind, handle NativeHandle) (EntityID, error) {
	if !kind.Valid() {
		return EntityID{}, fmt.Errorf("unregister %s: %w", kind, ErrUnknownObjectType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKind[kind][handle]
	if !ok {
		return EntityID{}, fmt.Errorf("unregister %s %s: %w", kind, handle, ErrNotFound)
	}
	delete(r.byKind[kind], handle)
	delete(r.reverse, id)
	r.w.despawnNative(id)
	return id, nil
}

// Kind reads the host's type tag for handle and checks it is mirrored.
func (r *ObjectRegistry) Kind(handle NativeHandle) (ObjectKind, error) {
	if handle.IsNil() {
		return 0, ErrNilHandle
	}
	kind := r.api.BaseObjectType(handle)
	switch kind {
	case KindPlayer, KindVehicle, KindBlip, KindVoiceChannel, KindCollisionShape, KindCheckpoint:
		return kind, nil
	default:
		return kind, fmt.Errorf("object %s has type tag %d: %w", handle, uint8(kind), ErrUnknownObjectType)
	}
}

// ResolveAny resolves a handle of any mirrored kind by reading the host's
// type tag and looking in that kind's map.
func (r *ObjectRegistry) ResolveAny(handle NativeHandle) (EntityID, ObjectKind, error) {
	kind, err := r.Kind(handle)
	if err != nil {
		return EntityID{}, kind, err
	}
	id, err := r.Resolve(kind, handle)
	return id, kind, err
}

// ResolveEntity resolves a handle that the host reports as a networked
// entity. Only players and vehicles are admitted.
func (r *ObjectRegistry) ResolveEntity(handle NativeHandle) (EntityID, ObjectKind, error) {
	kind, err := r.Kind(handle)
	if err != nil {
		return EntityID{}, kind, err
	}
	switch kind {
	case KindPlayer, KindVehicle:
		id, err := r.Resolve(kind, handle)
		return id, kind, err
	default:
		return EntityID{}, kind, fmt.Errorf("object %s is a %s: %w", handle, kind, ErrNotEntity)
	}
}

// Handle returns the host handle and kind registered for id.
func (r *ObjectRegistry) Handle(id EntityID) (NativeHandle, ObjectKind, bool) {
	r.mu.RLock()
	ref, ok := r.reverse[id]
	r.mu.RUnlock()
	return ref.handle, ref.kind, ok
}

// Len returns the number of registered objects of kind.
func (r *ObjectRegistry) Len(kind ObjectKind) int {
	if !kind.Valid() {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKind[kind])
}

// Each calls fn for every registered object of kind. The order is unspecified.
func (r *ObjectRegistry) Each(kind ObjectKind, fn func(id EntityID, handle NativeHandle)) {
	if !kind.Valid() {
		return
	}
	r.mu.RLock()
	snapshot := make(map[NativeHandle]EntityID, len(r.byKind[kind]))
	for h, id := range r.byKind[kind] {
		snapshot[h] = id
	}
	r.mu.RUnlock()

	for h, id := range snapshot {
		fn(id, h)
	}
}

// toHost converts entity references in v back into host handles.
func (r *ObjectRegistry) toHost(v MValue) (MValue, error) {
	return mapValue(v, func(ref MValue) (MValue, error) {
		switch ref := ref.(type) {
		case EntityValue:
			h, _, ok := r.Handle(ref.ID)
			if !ok {
				return nil, fmt.Errorf("%s: %w", ref.ID, ErrNotNative)
			}
			return ObjectValue{Handle: h}, nil
		default:
			return ref, nil
		}
	})
}

// fromHost resolves host handles in v to entity references.
func (r *ObjectRegistry) fromHost(v MValue) (MValue, error) {
	return mapValue(v, func(ref MValue) (MValue, error) {
		switch ref := ref.(type) {
		case ObjectValue:
			id, _, err := r.ResolveAny(ref.Handle)
			if err != nil {
				return nil, err
			}
			return EntityValue{ID: id}, nil
		default:
			return ref, nil
		}
	})
}
