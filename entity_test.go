package altecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorRecyclesWithNewGeneration(t *testing.T) {
	var a entityAllocator

	first := a.allocate()
	second := a.allocate()
	assert.Equal(t, uint32(0), first.Index())
	assert.Equal(t, uint32(1), second.Index())
	assert.Equal(t, uint32(1), first.Generation())
	assert.False(t, first.IsZero())

	require.True(t, a.release(first))
	assert.False(t, a.valid(first))
	assert.False(t, a.release(first), "stale ids are not released twice")

	reused := a.allocate()
	assert.Equal(t, first.Index(), reused.Index())
	assert.Equal(t, uint32(2), reused.Generation())
	assert.NotEqual(t, first, reused)
	assert.Equal(t, 2, a.live)
}

func TestAllocatorSkipsGenerationZero(t *testing.T) {
	var a entityAllocator
	id := a.allocate()
	a.generations[id.index] = ^uint32(0)
	id.generation = ^uint32(0)

	require.True(t, a.release(id))
	next := a.allocate()
	assert.Equal(t, uint32(1), next.Generation())
	assert.False(t, next.IsZero())
}

func TestZeroEntityIsInvalid(t *testing.T) {
	var a entityAllocator
	a.allocate()
	assert.False(t, a.valid(EntityID{}))
	assert.True(t, EntityID{}.IsZero())
}

func TestBitmask(t *testing.T) {
	var m Bitmask
	assert.True(t, m.IsZero())

	m.Set(3)
	m.Set(64)
	m.Set(200)
	assert.True(t, m.Has(64))
	assert.False(t, m.Has(65))
	assert.Equal(t, 3, m.Count())

	var seen []ComponentID
	m.Each(func(id ComponentID) { seen = append(seen, id) })
	assert.Equal(t, []ComponentID{3, 64, 200}, seen)

	assert.True(t, m.ContainsAll(maskOf(3, 200)))
	assert.False(t, m.ContainsAll(maskOf(3, 4)))
	assert.True(t, m.ContainsAny(maskOf(4, 200)))
	assert.False(t, m.ContainsAny(maskOf(4, 5)))

	m.Clear(64)
	assert.False(t, m.Has(64))
	assert.Equal(t, maskOf(3, 200, 7), m.Or(maskOf(7)))
	assert.Equal(t, maskOf(200), m.AndNot(maskOf(3)))
}
