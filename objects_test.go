package altecs_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
)

func TestCreateVehicleIsAliveAtOnce(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()

	id, err := w.CreateVehicle(altecs.Hash("adder"), mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1})
	require.NoError(t, err)
	assert.True(t, w.Alive(id))
	assert.Equal(t, altecs.Hash("adder"), altecs.Get[altecs.NetworkedEntity](w, id).Model())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, altecs.Get[altecs.WorldObject](w, id).Position())

	require.NoError(t, w.Destroy(id))
	assert.True(t, w.Doomed(id))
	f.tick(0)
	assert.False(t, w.Alive(id))
	assert.Zero(t, altecs.Count[altecs.Vehicle](w))

	assert.ErrorIs(t, w.Destroy(id), altecs.ErrNotNative)
}

func TestCreateShapes(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()

	sphere, err := w.CreateColShapeSphere(mgl32.Vec3{}, 5)
	require.NoError(t, err)
	cp, err := w.CreateCheckpoint(1, mgl32.Vec3{10, 0, 0}, 2, 4, color.RGBA{R: 255, A: 255})
	require.NoError(t, err)
	vc, err := w.CreateVoiceChannel(true, 25)
	require.NoError(t, err)

	assert.True(t, altecs.Get[altecs.CollisionShape](w, sphere).IsPointIn(mgl32.Vec3{1, 1, 1}))
	assert.False(t, altecs.Get[altecs.CollisionShape](w, sphere).IsPointIn(mgl32.Vec3{10, 0, 0}))
	assert.Equal(t, float32(2), altecs.Get[altecs.Checkpoint](w, cp).Radius())
	assert.True(t, altecs.Has[altecs.CollisionShape](w, cp))
	assert.Equal(t, float32(25), altecs.Get[altecs.VoiceChannel](w, vc).MaxDistance())
	assert.Equal(t, 2, altecs.Count[altecs.CollisionShape](w))
}

func TestCreateBlip(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	_, player := f.player(t, "alice")
	vehicle, err := w.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	require.NoError(t, err)

	global, err := w.CreateBlip(altecs.EntityID{}, 1, mgl32.Vec3{})
	require.NoError(t, err)
	assert.True(t, altecs.Get[altecs.Blip](w, global).IsGlobal())

	personal, err := w.CreateBlip(player, 1, mgl32.Vec3{})
	require.NoError(t, err)
	blip := altecs.Get[altecs.Blip](w, personal)
	assert.False(t, blip.IsGlobal())
	target, ok := blip.Target()
	require.True(t, ok)
	assert.Equal(t, player, target)

	_, err = w.CreateBlip(vehicle, 1, mgl32.Vec3{})
	assert.ErrorIs(t, err, altecs.ErrNotNative)
}

func TestEmitClient(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	ph, player := f.player(t, "alice")
	vehicle, err := w.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	require.NoError(t, err)
	vh, _, _ := w.Objects().Handle(vehicle)

	require.NoError(t, w.EmitClient(player, "car", "yours", vehicle))
	require.NoError(t, w.EmitAllClients("hello", 1))

	emits := f.host.Emits()
	require.Len(t, emits, 2)
	assert.Equal(t, ph, emits[0].Target)
	assert.Equal(t, "car", emits[0].Name)
	assert.Equal(t, []altecs.MValue{altecs.StringValue("yours"), altecs.ObjectValue{Handle: vh}}, emits[0].Args)
	assert.True(t, emits[1].Target.IsNil())
	assert.Equal(t, []altecs.MValue{altecs.IntValue(1)}, emits[1].Args)

	assert.ErrorIs(t, w.EmitClient(vehicle, "car"), altecs.ErrNotNative)
	assert.ErrorIs(t, w.EmitAllClients("bad", struct{}{}), altecs.ErrUnsupportedValue)

	stray := w.Spawn()
	f.tick(0)
	assert.ErrorIs(t, w.EmitAllClients("bad", stray), altecs.ErrNotNative)
}

func TestCreateWithoutRuntime(t *testing.T) {
	_, w := newWorld(t)
	_, err := w.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	assert.ErrorIs(t, err, altecs.ErrObjectNotCreated)
}

func TestEntityReferenceWithUnknownTagIsFatal(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	ph, player := f.player(t, "alice")
	p := altecs.Get[altecs.Player](w, player)
	o, _ := f.host.Object(ph)

	vehicle, err := w.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	require.NoError(t, err)
	o.AimingAt, _, _ = w.Objects().Handle(vehicle)
	id, ok := p.EntityAimingAt()
	require.True(t, ok)
	assert.Equal(t, vehicle, id)
	assert.Empty(t, f.fatals)

	o.AimingAt = f.host.Spawn(altecs.ObjectKind(42), nil)
	_, ok = p.EntityAimingAt()
	assert.False(t, ok)
	require.Len(t, f.fatals, 1)
	assert.Equal(t, "facet", f.fatals[0].Op)
	assert.Equal(t, f.res, f.fatals[0].Resource)
	assert.ErrorIs(t, f.fatals[0], altecs.ErrUnknownObjectType)

	o.AimingAt = f.host.Spawn(altecs.KindBlip, nil)
	_, ok = p.EntityAimingAt()
	assert.False(t, ok)
	require.Len(t, f.fatals, 2)
	assert.ErrorIs(t, f.fatals[1], altecs.ErrNotEntity)
}

func TestFacetWarningsCarryResource(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	vc, err := w.CreateVoiceChannel(false, 10)
	require.NoError(t, err)
	stray := w.Spawn()
	f.tick(0)

	altecs.Get[altecs.VoiceChannel](w, vc).AddPlayer(stray)

	var line string
	for _, l := range f.host.Logs() {
		if l.Level == "warning" && strings.Contains(l.Msg, "entity argument has no host object") {
			line = l.Msg
		}
	}
	assert.Contains(t, line, "resource="+f.res.String())
	assert.Contains(t, line, "entity="+stray.String())
}
