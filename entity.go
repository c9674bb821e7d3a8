package altecs

import "fmt"

// EntityID identifies an entity in a World.
// The generation is bumped every time an index is recycled, so an id held after
// its entity was destroyed never aliases a newer entity. The zero value is invalid.
type EntityID struct {
	index      uint32
	generation uint32
}

// Index returns the slot index of the entity.
func (id EntityID) Index() uint32 {
	return id.index
}

// Generation returns the generation of the entity.
func (id EntityID) Generation() uint32 {
	return id.generation
}

// IsZero reports whether id is the invalid zero id.
func (id EntityID) IsZero() bool {
	return id.generation == 0
}

// String returns a string representation of the entity id.
func (id EntityID) String() string {
	return fmt.Sprintf("EntityID(%d:%d)", id.index, id.generation)
}

// entityAllocator hands out entity ids and recycles indices through a free list.
// Generations start at 1 so the zero EntityID is never issued.
type entityAllocator struct {
	generations []uint32
	free        []uint32
	live        int
}

// allocate returns a fresh id.
func (a *entityAllocator) allocate() EntityID {
	a.live++
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		return EntityID{index: index, generation: a.generations[index]}
	}

	index := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	return EntityID{index: index, generation: 1}
}

// release frees the index of id for reuse. It reports false if id was stale.
func (a *entityAllocator) release(id EntityID) bool {
	if !a.valid(id) {
		return false
	}
	a.generations[id.index]++
	if a.generations[id.index] == 0 {
		// Wrapped: skip generation 0 so the zero id stays invalid.
		a.generations[id.index] = 1
	}
	a.free = append(a.free, id.index)
	a.live--
	return true
}

// valid reports whether id is the current generation of its index.
func (a *entityAllocator) valid(id EntityID) bool {
	return !id.IsZero() &&
		int(id.index) < len(a.generations) &&
		a.generations[id.index] == id.generation
}
