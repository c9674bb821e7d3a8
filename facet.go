package altecs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// facet is the common part of every facet component: the host handle it
// forwards to and the World used to resolve object references it returns.
// Both are set once when the object is registered.
type facet struct {
	handle NativeHandle
	w      *World
}

// Handle returns the host handle the facet wraps.
func (f facet) Handle() NativeHandle {
	return f.handle
}

func (f facet) api() NativeAPI {
	return f.w.api
}

// resolve looks up a handle returned by the host under a known kind.
func (f facet) resolve(kind ObjectKind, h NativeHandle) (EntityID, bool) {
	if h.IsNil() {
		return EntityID{}, false
	}
	id, err := f.w.objects.Resolve(kind, h)
	if err != nil {
		f.w.log.Warn("altecs: facet returned an unregistered object", "kind", kind.String(), "handle", h.String(), "err", err)
		return EntityID{}, false
	}
	return id, true
}

// resolveEntity looks up a handle the host reports as a player or vehicle.
// A handle whose type tag is not a networked entity is fatal.
func (f facet) resolveEntity(h NativeHandle) (EntityID, bool) {
	if h.IsNil() {
		return EntityID{}, false
	}
	id, _, err := f.w.objects.ResolveEntity(h)
	switch {
	case err == nil:
		return id, true
	case errors.Is(err, ErrUnknownObjectType), errors.Is(err, ErrNotEntity):
		f.w.fatal(fmt.Errorf("entity reference from %s: %w", f.handle, err))
	default:
		f.w.log.Warn("altecs: facet returned an unregistered entity", "handle", h.String(), "err", err)
	}
	return EntityID{}, false
}

// handleOf returns the host handle of an entity argument.
func (f facet) handleOf(id EntityID) (NativeHandle, bool) {
	h, _, ok := f.w.objects.Handle(id)
	if !ok {
		f.w.log.Warn("altecs: entity argument has no host object", "entity", id.String())
	}
	return h, ok
}

// importValue resolves object references in a value read from the host.
// Unresolvable references are logged and yield NoneValue.
func (f facet) importValue(v MValue) MValue {
	out, err := f.w.objects.fromHost(v)
	if err != nil {
		f.w.log.Warn("altecs: value references an unresolvable object", "handle", f.handle.String(), "err", err)
		return NoneValue{}
	}
	return out
}

// exportValue converts entity references in a value sent to the host.
func (f facet) exportValue(v MValue) (MValue, error) {
	return f.w.objects.toHost(v)
}

// newFacets builds the facet set of an object of kind k.
func newFacets(k ObjectKind, h NativeHandle, w *World) ([]any, error) {
	base := facet{handle: h, w: w}
	switch k {
	case KindPlayer:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &WorldObject{base},
			&NetworkedEntity{base}, &Player{base},
		}, nil
	case KindVehicle:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &WorldObject{base},
			&NetworkedEntity{base}, &Vehicle{base},
		}, nil
	case KindBlip:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &WorldObject{base}, &Blip{base},
		}, nil
	case KindVoiceChannel:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &VoiceChannel{base},
		}, nil
	case KindCollisionShape:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &WorldObject{base}, &CollisionShape{base},
		}, nil
	case KindCheckpoint:
		return []any{
			&RefCountable{base}, &BaseObject{base}, &WorldObject{base},
			&CollisionShape{base}, &Checkpoint{base},
		}, nil
	default:
		return nil, fmt.Errorf("facets for type tag %d: %w", uint8(k), ErrUnknownObjectType)
	}
}

var facetMask = sync.OnceValue(func() Bitmask {
	return maskOf(
		componentID[RefCountable](),
		componentID[BaseObject](),
		componentID[WorldObject](),
		componentID[NetworkedEntity](),
		componentID[Player](),
		componentID[Vehicle](),
		componentID[Blip](),
		componentID[VoiceChannel](),
		componentID[CollisionShape](),
		componentID[Checkpoint](),
	)
})

func isFacetComponent(cid ComponentID) bool {
	m := facetMask()
	return m.Has(cid)
}

// RefCountable is attached to every host object.
type RefCountable struct{ facet }

func (f *RefCountable) RefCount() uint64 { return f.api().RefCount(f.handle) }
func (f *RefCountable) AddRef()          { f.api().AddRef(f.handle) }
func (f *RefCountable) RemoveRef()       { f.api().RemoveRef(f.handle) }

// BaseObject is attached to every host object. It exposes the object's type
// and its server-side meta data.
type BaseObject struct{ facet }

// Kind returns the object's kind as reported by the host.
func (f *BaseObject) Kind() ObjectKind {
	return f.api().BaseObjectType(f.handle)
}

func (f *BaseObject) HasMeta(key string) bool {
	return f.api().HasMetaData(f.handle, key)
}

// Meta returns the meta value stored under key with object references
// resolved to entities.
func (f *BaseObject) Meta(key string) MValue {
	return f.importValue(f.api().MetaData(f.handle, key))
}

// SetMeta stores v under key. Entity references in v must name host objects.
func (f *BaseObject) SetMeta(key string, v MValue) error {
	hv, err := f.exportValue(v)
	if err != nil {
		return fmt.Errorf("set meta %q: %w", key, err)
	}
	f.api().SetMetaData(f.handle, key, hv)
	return nil
}

func (f *BaseObject) DeleteMeta(key string) {
	f.api().DeleteMetaData(f.handle, key)
}

// WorldObject is attached to objects that have a position in the world.
type WorldObject struct{ facet }

func (f *WorldObject) Dimension() int32             { return f.api().Dimension(f.handle) }
func (f *WorldObject) SetDimension(dimension int32) { f.api().SetDimension(f.handle, dimension) }
func (f *WorldObject) Position() mgl32.Vec3         { return f.api().Position(f.handle) }
func (f *WorldObject) SetPosition(pos mgl32.Vec3)   { f.api().SetPosition(f.handle, pos) }
