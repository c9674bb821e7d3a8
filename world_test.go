package altecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct{ HP int }

type armour struct{ Points int }

type hooked struct {
	attached int
	detached int
}

func (h *hooked) Attach(*World, EntityID) { h.attached++ }
func (h *hooked) Detach(*World, EntityID) { h.detached++ }

func newTestWorld() *World {
	return NewWorld(nil, DefaultConfig().Registry)
}

func TestSpawnIsDeferred(t *testing.T) {
	w := newTestWorld()
	h := &hooked{}

	id := w.Spawn(&health{HP: 10}, h)
	assert.False(t, w.Alive(id))
	assert.Equal(t, 1, w.Pending())
	assert.Equal(t, 10, Get[health](w, id).HP, "pending entities are readable")
	assert.Zero(t, Count[health](w))
	assert.Zero(t, h.attached)

	w.Maintain()
	assert.True(t, w.Alive(id))
	assert.Equal(t, 1, Count[health](w))
	assert.Equal(t, 1, h.attached)
	assert.Equal(t, 1, w.Len())
}

func TestDespawnIsDeferred(t *testing.T) {
	w := newTestWorld()
	h := &hooked{}
	id := w.Spawn(&health{HP: 5}, h)
	w.Maintain()

	require.NoError(t, w.Despawn(id))
	require.NoError(t, w.Despawn(id), "despawning twice is harmless")
	assert.True(t, w.Doomed(id))
	assert.True(t, w.Alive(id))
	assert.NotNil(t, Get[health](w, id))

	w.Maintain()
	assert.False(t, w.Alive(id))
	assert.Nil(t, Get[health](w, id))
	assert.Equal(t, 1, h.detached)
	assert.ErrorIs(t, w.Despawn(id), ErrEntityNotAlive)

	next := w.Spawn()
	assert.Equal(t, id.Index(), next.Index())
	assert.NotEqual(t, id.Generation(), next.Generation())
}

func TestSpawnAndDespawnInOneTick(t *testing.T) {
	w := newTestWorld()
	h := &hooked{}
	id := w.Spawn(h)
	require.NoError(t, w.Despawn(id))

	w.Maintain()
	assert.False(t, w.Alive(id))
	assert.Zero(t, h.attached)
	assert.Zero(t, h.detached)
}

func TestHooksMayRequestChanges(t *testing.T) {
	w := newTestWorld()
	var child EntityID
	w.Spawn(&spawner{child: &child})

	w.Maintain()
	assert.True(t, w.Alive(child))
	assert.Zero(t, w.Pending())
}

type spawner struct{ child *EntityID }

func (s *spawner) Attach(w *World, _ EntityID) {
	*s.child = w.Spawn(&health{})
}

func TestAddReplaceRemove(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn()
	w.Maintain()

	first := &hooked{}
	require.NoError(t, Add(w, id, first))
	assert.Equal(t, 1, first.attached)
	assert.True(t, Has[hooked](w, id))

	second := &hooked{}
	require.NoError(t, Add(w, id, second))
	assert.Equal(t, 1, first.detached)
	assert.Same(t, second, Get[hooked](w, id))

	Remove[hooked](w, id)
	assert.False(t, Has[hooked](w, id))
	assert.Equal(t, 1, second.detached)

	Remove[hooked](w, id)
	assert.Equal(t, 1, second.detached)
}

func TestAddToDeadEntity(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn()
	w.Maintain()
	require.NoError(t, w.Despawn(id))
	w.Maintain()

	assert.ErrorIs(t, Add(w, id, &health{}), ErrEntityNotAlive)
	assert.False(t, Has[health](w, id))
}

func TestQueries(t *testing.T) {
	w := newTestWorld()
	both := w.Spawn(&health{HP: 1}, &armour{Points: 2})
	onlyHealth := w.Spawn(&health{HP: 3})
	w.Spawn(&armour{})
	w.Maintain()

	var seen []EntityID
	Each(w, func(id EntityID, h *health) { seen = append(seen, id) })
	assert.Equal(t, []EntityID{both, onlyHealth}, seen)

	seen = nil
	Each2(w, func(id EntityID, h *health, a *armour) { seen = append(seen, id) })
	assert.Equal(t, []EntityID{both}, seen)

	assert.Equal(t, []EntityID{onlyHealth}, Query(w, MaskOf[health](), MaskOf[armour]()))
	assert.Equal(t, 2, Count[armour](w))
}

func TestEachSkipsRemovedComponents(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(&health{})
	b := w.Spawn(&health{})
	w.Maintain()

	var seen []EntityID
	Each(w, func(id EntityID, _ *health) {
		seen = append(seen, id)
		Remove[health](w, b)
	})
	assert.Equal(t, []EntityID{a}, seen)
}

func TestSpawnPanicsOnNonPointer(t *testing.T) {
	w := newTestWorld()
	assert.Panics(t, func() { w.Spawn(health{}) })
}
