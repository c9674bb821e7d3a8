package altecs_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
)

type rental struct {
	Car altecs.Relation[altecs.Vehicle]
}

type crew struct {
	Members altecs.RelationSet[altecs.Player]
}

type rentalLoop struct {
	Rental *rental
	Car    *altecs.Vehicle `altecs:"rel"`
	plates *[]string
}

func (l *rentalLoop) Run() { *l.plates = append(*l.plates, l.Car.LicensePlateText()) }

type crewLoop struct {
	Crew    *crew
	Members []*altecs.Player `altecs:"rel"`
	names   *[]string
}

func (l *crewLoop) Run() {
	for _, p := range l.Members {
		*l.names = append(*l.names, p.Name())
	}
}

type brokenRelation struct {
	Car *altecs.Vehicle `altecs:"rel"`
}

func (*brokenRelation) Run() {}

func TestRelationInjection(t *testing.T) {
	var plates []string
	loop := &rentalLoop{plates: &plates}
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("rentals").Loop(loop, 0, altecs.Default).Build())
	})
	w := f.world()

	car, err := w.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	require.NoError(t, err)
	altecs.Get[altecs.Vehicle](w, car).SetLicensePlateText("RENT")

	r := &rental{}
	r.Car.Set(car)
	w.Spawn(r)
	w.Spawn(&rental{})

	f.tick(0)
	assert.Equal(t, []string{"RENT"}, plates, "rentals without a car are skipped")
	assert.Nil(t, loop.Car)

	require.NoError(t, w.Destroy(car))
	f.tick(0)
	f.tick(0)
	assert.Len(t, plates, 1)
	_, ok := r.Car.Get(w)
	assert.False(t, ok)
	assert.True(t, r.Car.Target().IsZero(), "a dead target is cleared on access")
}

func TestRelationSetInjection(t *testing.T) {
	var names []string
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("crews").Loop(&crewLoop{names: &names}, 0, altecs.Default).Build())
	})
	w := f.world()

	_, alice := f.player(t, "alice")
	bobH, bob := f.player(t, "bob")
	c := &crew{}
	c.Members.Add(bob)
	c.Members.Add(alice)
	c.Members.Add(altecs.EntityID{})
	w.Spawn(c)
	assert.Equal(t, 2, c.Members.Len())

	f.tick(0)
	assert.Equal(t, []string{"alice", "bob"}, names, "members come in index order")

	f.host.Destroy(bobH)
	f.tick(0)
	assert.Equal(t, []string{"alice", "bob", "alice"}, names)
	assert.False(t, c.Members.Has(bob))
}

func TestRelationNeedsSource(t *testing.T) {
	host, _ := newWorld(t)
	_, err := altecs.NewBuilder(nil).
		Bundle(altecs.NewBundle("broken").Loop(&brokenRelation{}, 0, altecs.Default).Build()).
		Build(host)
	assert.ErrorContains(t, err, "no preceding component field")
}

func TestRelationAccessors(t *testing.T) {
	_, w := newWorld(t)
	target := w.Spawn(&score{Points: 3})
	w.Maintain()

	var rel altecs.Relation[score]
	_, ok := rel.Get(w)
	assert.False(t, ok)

	rel.Set(target)
	assert.True(t, rel.Valid(w))
	assert.Equal(t, 3, rel.Resolve(w).Points)

	var other altecs.Relation[frozen]
	other.Set(target)
	assert.False(t, other.Valid(w), "the target lacks the component")

	ref := altecs.RefTo(target)
	id, ok := ref.Get(w)
	require.True(t, ok)
	assert.Equal(t, target, id)

	require.NoError(t, w.Despawn(target))
	w.Maintain()
	_, ok = ref.Get(w)
	assert.False(t, ok)
	assert.Nil(t, rel.Resolve(w))
	assert.Equal(t, target, ref.ID())
}
