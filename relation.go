package altecs

import (
	"cmp"
	"reflect"
	"slices"
)

// Ref is a weak reference to an entity. It never keeps the entity alive; Get
// reports false once the entity has been removed, even if its index has since
// been reused.
type Ref struct {
	target EntityID
}

// RefTo returns a reference to id.
func RefTo(id EntityID) Ref {
	return Ref{target: id}
}

// Get returns the referenced entity if it is still alive in w.
func (r Ref) Get(w *World) (EntityID, bool) {
	if r.target.IsZero() || !w.Alive(r.target) {
		return EntityID{}, false
	}
	return r.target, true
}

// ID returns the raw target id.
func (r Ref) ID() EntityID {
	return r.target
}

// Relation represents a reference from one entity to another.
// The type parameter T indicates what component the target entity must have.
//
// Usage:
//
//	type Passenger struct {
//	    Vehicle altecs.Relation[altecs.Vehicle]
//	}
type Relation[T any] struct {
	target EntityID
}

// Set sets the target entity for this relation.
// The target should have a component of type T, though this is validated
// when the relation is read, not at set time.
func (r *Relation[T]) Set(target EntityID) {
	r.target = target
}

// Clear removes the target reference.
func (r *Relation[T]) Clear() {
	r.target = EntityID{}
}

// Get returns the target entity, or false if it is unset or no longer alive.
func (r *Relation[T]) Get(w *World) (EntityID, bool) {
	if r.target.IsZero() {
		return EntityID{}, false
	}
	if !w.Alive(r.target) {
		r.target = EntityID{}
		return EntityID{}, false
	}
	return r.target, true
}

// Resolve returns the target's T component, or nil.
func (r *Relation[T]) Resolve(w *World) *T {
	id, ok := r.Get(w)
	if !ok {
		return nil
	}
	return Get[T](w, id)
}

// Valid returns true if the target exists and has the required component.
func (r *Relation[T]) Valid(w *World) bool {
	id, ok := r.Get(w)
	return ok && Has[T](w, id)
}

// Target returns the raw target id.
func (r *Relation[T]) Target() EntityID {
	return r.target
}

// TargetType returns the reflect.Type of the component the target must have.
func (r *Relation[T]) TargetType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (r *Relation[T]) relationTarget() EntityID {
	return r.target
}

// RelationSet represents a set of references to other entities.
// The type parameter T indicates what component target entities should have.
//
// Usage:
//
//	type VoiceRoom struct {
//	    Members altecs.RelationSet[altecs.Player]
//	}
type RelationSet[T any] struct {
	targets map[EntityID]struct{}
}

// Add adds an entity to the relation set.
func (rs *RelationSet[T]) Add(target EntityID) {
	if target.IsZero() {
		return
	}
	if rs.targets == nil {
		rs.targets = make(map[EntityID]struct{})
	}
	rs.targets[target] = struct{}{}
}

// Remove removes an entity from the relation set.
func (rs *RelationSet[T]) Remove(target EntityID) {
	delete(rs.targets, target)
}

// Has checks if an entity is in the relation set.
func (rs *RelationSet[T]) Has(target EntityID) bool {
	_, ok := rs.targets[target]
	return ok
}

// Clear removes all entities from the relation set.
func (rs *RelationSet[T]) Clear() {
	rs.targets = nil
}

// Len returns the number of entities in the relation set.
func (rs *RelationSet[T]) Len() int {
	return len(rs.targets)
}

// All returns the members that are still alive in w, in index order.
// Dead members are dropped from the set.
func (rs *RelationSet[T]) All(w *World) []EntityID {
	out := make([]EntityID, 0, len(rs.targets))
	for id := range rs.targets {
		if w.Alive(id) {
			out = append(out, id)
		} else {
			delete(rs.targets, id)
		}
	}
	slices.SortFunc(out, func(a, b EntityID) int {
		return cmp.Compare(a.index, b.index)
	})
	return out
}

// TargetType returns the reflect.Type of the component targets should have.
func (rs *RelationSet[T]) TargetType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (rs *RelationSet[T]) relationTargets(w *World) []EntityID {
	return rs.All(w)
}

// relationSource is implemented by *Relation[T].
type relationSource interface {
	TargetType() reflect.Type
	relationTarget() EntityID
}

// relationSetSource is implemented by *RelationSet[T].
type relationSetSource interface {
	TargetType() reflect.Type
	relationTargets(w *World) []EntityID
}
