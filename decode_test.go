package altecs_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
	"github.com/oriumgames/altecs/hosttest"
)

type decodeFixture struct {
	host    *hosttest.Host
	world   *altecs.World
	decoder *altecs.Decoder
}

func newDecodeFixture(t *testing.T) *decodeFixture {
	t.Helper()
	host, w := newWorld(t)
	return &decodeFixture{host: host, world: w, decoder: altecs.NewDecoder(host, w.Objects(), nil)}
}

func (f *decodeFixture) register(t *testing.T, kind altecs.ObjectKind, h altecs.NativeHandle) altecs.EntityID {
	t.Helper()
	id, err := f.world.Objects().Register(kind, h)
	require.NoError(t, err)
	return id
}

func (f *decodeFixture) decode(ev *hosttest.Event) (altecs.Event, error) {
	return f.decoder.Decode(f.host.Record(ev))
}

func TestDecodePlayerConnect(t *testing.T) {
	f := newDecodeFixture(t)
	h := f.host.Connect("alice")
	id := f.register(t, altecs.KindPlayer, h)

	ev, err := f.decode(hosttest.PlayerConnect(h).Text(altecs.FieldReason, "joined"))
	require.NoError(t, err)
	assert.Equal(t, &altecs.EventPlayerConnect{Target: id, Reason: "joined"}, ev)

	subject, ok := altecs.Subject(ev)
	assert.True(t, ok)
	assert.Equal(t, id, subject)
}

func TestDecodeUnknownTypeIsDropped(t *testing.T) {
	f := newDecodeFixture(t)
	f.decoder.LogUnknown(false)

	ev, err := f.decode(hosttest.NewEvent(altecs.EventTypeFire))
	assert.NoError(t, err)
	assert.Nil(t, ev)

	ev, err = f.decode(hosttest.NewEvent(altecs.EventType(999)))
	assert.NoError(t, err)
	assert.Nil(t, ev)
	assert.Zero(t, f.world.Len())
}

func TestDecodeUnresolvedHandleIsFatal(t *testing.T) {
	f := newDecodeFixture(t)
	h := f.host.Connect("ghost")

	_, err := f.decode(hosttest.PlayerConnect(h))
	var de *altecs.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, altecs.EventTypePlayerConnect, de.Type)
	assert.Equal(t, altecs.FieldTarget, de.Field)
	assert.Equal(t, h, de.Handle)
	assert.ErrorIs(t, err, altecs.ErrNotFound)
}

func TestDecodeOptionalKiller(t *testing.T) {
	f := newDecodeFixture(t)
	victim := f.register(t, altecs.KindPlayer, f.host.Connect("victim"))
	vh := f.host.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	vehicle := f.register(t, altecs.KindVehicle, vh)
	vicH, _, _ := f.world.Objects().Handle(victim)

	ev, err := f.decode(hosttest.PlayerDeath(vicH, 0, 7))
	require.NoError(t, err)
	death := ev.(*altecs.EventPlayerDeath)
	assert.False(t, death.HasKiller)
	assert.Equal(t, uint32(7), death.Weapon)

	ev, err = f.decode(hosttest.PlayerDeath(vicH, vh, 7))
	require.NoError(t, err)
	death = ev.(*altecs.EventPlayerDeath)
	assert.True(t, death.HasKiller)
	assert.Equal(t, vehicle, death.Killer)
}

func TestDecodeCollisionShapeAcceptsCheckpoints(t *testing.T) {
	f := newDecodeFixture(t)
	ph := f.host.Connect("alice")
	player := f.register(t, altecs.KindPlayer, ph)
	ch := f.host.Spawn(altecs.KindCheckpoint, nil)
	cp := f.register(t, altecs.KindCheckpoint, ch)
	bh := f.host.Spawn(altecs.KindBlip, nil)
	f.register(t, altecs.KindBlip, bh)

	ev, err := f.decode(hosttest.CollisionShape(ch, ph, true))
	require.NoError(t, err)
	assert.Equal(t, &altecs.EventCollisionShape{Target: cp, Entity: player, State: true}, ev)

	_, err = f.decode(hosttest.CollisionShape(bh, ph, true))
	assert.ErrorIs(t, err, altecs.ErrUnknownObjectType)
}

func TestDecodeScriptArgsResolveObjects(t *testing.T) {
	f := newDecodeFixture(t)
	ph := f.host.Connect("alice")
	player := f.register(t, altecs.KindPlayer, ph)

	ev, err := f.decode(hosttest.ClientScript(ph, "hello",
		altecs.StringValue("hi"),
		altecs.ListValue{altecs.ObjectValue{Handle: ph}},
	))
	require.NoError(t, err)
	script := ev.(*altecs.EventClientScript)
	assert.Equal(t, "hello", script.Name)
	assert.Equal(t, []altecs.MValue{
		altecs.StringValue("hi"),
		altecs.ListValue{altecs.EntityValue{ID: player}},
	}, script.Args)

	_, err = f.decode(hosttest.ServerScript("x", altecs.ObjectValue{Handle: 0x9999}))
	assert.Error(t, err)
}

func TestDecodeEnterVehicle(t *testing.T) {
	f := newDecodeFixture(t)
	ph := f.host.Connect("alice")
	player := f.register(t, altecs.KindPlayer, ph)
	vh := f.host.CreateVehicle(1, mgl32.Vec3{}, mgl32.Vec3{})
	vehicle := f.register(t, altecs.KindVehicle, vh)

	ev, err := f.decode(hosttest.EnterVehicle(vh, ph, 1))
	require.NoError(t, err)
	assert.Equal(t, &altecs.EventPlayerEnterVehicle{Vehicle: vehicle, Player: player, Seat: 1}, ev)

	subject, ok := altecs.Subject(ev)
	assert.True(t, ok)
	assert.Equal(t, player, subject)
}

func TestDecodeConsoleCommand(t *testing.T) {
	f := newDecodeFixture(t)
	ev, err := f.decode(hosttest.ConsoleCommand("veh", "alice", "adder"))
	require.NoError(t, err)
	assert.Equal(t, &altecs.EventConsoleCommand{Name: "veh", Args: []string{"alice", "adder"}}, ev)

	_, ok := altecs.Subject(ev)
	assert.False(t, ok)
}
