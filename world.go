package altecs

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"unsafe"
)

type recordState uint8

const (
	// statePending entities are reserved by Spawn and become alive at Maintain.
	statePending recordState = iota
	stateAlive
)

// record is the storage slot of one entity.
type record struct {
	id     EntityID
	state  recordState
	doomed bool
	native bool
	mask   Bitmask

	components [MaxComponents]unsafe.Pointer
}

type commandKind uint8

const (
	cmdSpawn commandKind = iota
	cmdDespawn
)

type command struct {
	kind commandKind
	id   EntityID
}

// World is the entity store of one Application. It assigns EntityIDs, stores
// components per entity, and owns the ObjectRegistry mirroring host objects.
//
// Structural changes requested while a tick or event is running are buffered
// and applied by Maintain, so systems iterating the World never observe a
// half-created or half-destroyed entity.
type World struct {
	mu       sync.RWMutex
	alloc    entityAllocator
	records  []*record
	commands []command

	api     NativeAPI
	objects *ObjectRegistry

	// log and onFatal are replaced by the owning Application.
	log     *slog.Logger
	onFatal func(error)
}

// NewWorld creates an empty World whose object registry talks to api.
func NewWorld(api NativeAPI, cfg RegistryConfig) *World {
	w := &World{api: api, log: slog.Default()}
	w.objects = newObjectRegistry(w, api, cfg)
	return w
}

// fatal reports a broken host guarantee found outside event decoding.
// Without an owning Application it panics.
func (w *World) fatal(err error) {
	if w.onFatal != nil {
		w.onFatal(err)
		return
	}
	panic(err)
}

// API returns the NativeAPI the World forwards to.
func (w *World) API() NativeAPI {
	return w.api
}

// Objects returns the registry mapping host handles to entities.
func (w *World) Objects() *ObjectRegistry {
	return w.objects
}

// Spawn reserves a new entity carrying the given components.
// Each component must be a non-nil pointer and must not be a facet; Spawn
// panics otherwise. The id is usable immediately with
// Add and Get; the entity joins queries and its Attach hooks run at the next
// Maintain.
func (w *World) Spawn(components ...any) EntityID {
	rec := &record{state: statePending}
	for _, c := range components {
		cid, ptr, err := componentPointer(c)
		if err != nil {
			panic(fmt.Errorf("altecs: spawn: %w", err))
		}
		if isFacetComponent(cid) {
			panic(fmt.Errorf("altecs: spawn %s: %w", ComponentName(cid), ErrFacetManaged))
		}
		rec.components[cid] = ptr
		rec.mask.Set(cid)
	}

	w.mu.Lock()
	rec.id = w.alloc.allocate()
	w.storeLocked(rec)
	w.commands = append(w.commands, command{kind: cmdSpawn, id: rec.id})
	w.mu.Unlock()
	return rec.id
}

// Despawn schedules an entity for removal at the next Maintain.
// The entity stays readable until then. Entities mirroring host objects
// cannot be despawned; destroy the host object with Destroy instead.
func (w *World) Despawn(id EntityID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, err := w.recordLocked(id)
	if err != nil {
		return err
	}
	if rec.native {
		return fmt.Errorf("despawn %s: %w", id, ErrNativeBacked)
	}
	w.despawnLocked(rec)
	return nil
}

// Alive reports whether id refers to an entity that has been spawned and has
// not yet been removed by Maintain.
func (w *World) Alive(id EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	return err == nil && rec.state == stateAlive
}

// Doomed reports whether id is scheduled for removal at the next Maintain.
func (w *World) Doomed(id EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	return err == nil && rec.doomed
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, rec := range w.records {
		if rec != nil && rec.state == stateAlive {
			n++
		}
	}
	return n
}

// Pending returns the number of buffered structural changes.
func (w *World) Pending() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.commands)
}

// Maintain applies buffered spawns and despawns in the order they were
// requested. Hooks run outside the lock and may request further changes,
// which are applied in the same call.
func (w *World) Maintain() {
	for {
		w.mu.Lock()
		cmds := w.commands
		w.commands = nil
		w.mu.Unlock()
		if len(cmds) == 0 {
			return
		}
		for _, cmd := range cmds {
			switch cmd.kind {
			case cmdSpawn:
				w.applySpawn(cmd.id)
			case cmdDespawn:
				w.applyDespawn(cmd.id)
			}
		}
	}
}

func (w *World) applySpawn(id EntityID) {
	w.mu.Lock()
	rec, err := w.recordLocked(id)
	// An entity despawned before it became alive never joins the World.
	if err != nil || rec.state != statePending || rec.doomed {
		w.mu.Unlock()
		return
	}
	rec.state = stateAlive
	attached := rec.mask
	ptrs := rec.components
	w.mu.Unlock()

	attached.Each(func(cid ComponentID) {
		callAttach(w, id, cid, ptrs[cid])
	})
}

func (w *World) applyDespawn(id EntityID) {
	w.mu.Lock()
	rec, err := w.recordLocked(id)
	if err != nil {
		w.mu.Unlock()
		return
	}
	wasAlive := rec.state == stateAlive
	detached := rec.mask
	ptrs := rec.components
	w.records[id.index] = nil
	w.alloc.release(id)
	w.mu.Unlock()

	if wasAlive {
		detached.Each(func(cid ComponentID) {
			callDetach(w, id, cid, ptrs[cid])
		})
	}
}

// spawnNative creates an alive entity for a host object immediately.
// Host objects must be resolvable as soon as the host announces them.
func (w *World) spawnNative(facets []any) EntityID {
	rec := &record{state: stateAlive, native: true}
	for _, f := range facets {
		cid, ptr, err := componentPointer(f)
		if err != nil {
			panic("altecs: facet: " + err.Error())
		}
		rec.components[cid] = ptr
		rec.mask.Set(cid)
	}

	w.mu.Lock()
	rec.id = w.alloc.allocate()
	w.storeLocked(rec)
	w.mu.Unlock()
	return rec.id
}

// despawnNative schedules removal of an entity mirroring a host object.
func (w *World) despawnNative(id EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rec, err := w.recordLocked(id); err == nil {
		w.despawnLocked(rec)
	}
}

func (w *World) despawnLocked(rec *record) {
	if rec.doomed {
		return
	}
	rec.doomed = true
	w.commands = append(w.commands, command{kind: cmdDespawn, id: rec.id})
}

func (w *World) storeLocked(rec *record) {
	if int(rec.id.index) >= len(w.records) {
		w.records = slices.Grow(w.records, int(rec.id.index)+1-len(w.records))
		w.records = w.records[:rec.id.index+1]
	}
	w.records[rec.id.index] = rec
}

// recordLocked returns the record of id. The caller holds w.mu.
func (w *World) recordLocked(id EntityID) (*record, error) {
	if !w.alloc.valid(id) || int(id.index) >= len(w.records) || w.records[id.index] == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrEntityNotAlive)
	}
	return w.records[id.index], nil
}

// match returns the alive entities whose masks contain all of with and none
// of without, in index order.
func (w *World) match(with, without Bitmask) []EntityID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []EntityID
	for _, rec := range w.records {
		if rec == nil || rec.state != stateAlive {
			continue
		}
		if rec.mask.ContainsAll(with) && !rec.mask.ContainsAny(without) {
			out = append(out, rec.id)
		}
	}
	return out
}

// component returns the raw component pointer of id, or nil.
func (w *World) component(id EntityID, cid ComponentID) unsafe.Pointer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	if err != nil {
		return nil
	}
	return rec.components[cid]
}

// mask returns the component mask of an alive entity.
func (w *World) mask(id EntityID) (Bitmask, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	rec, err := w.recordLocked(id)
	if err != nil || rec.state != stateAlive {
		return Bitmask{}, false
	}
	return rec.mask, true
}
