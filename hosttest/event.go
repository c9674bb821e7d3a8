package hosttest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oriumgames/altecs"
)

// Event is a host event record. Build one with NewEvent or the typed
// constructors and deliver it with Host.Fire.
type Event struct {
	Type    altecs.EventType
	Objects map[altecs.EventField]altecs.NativeHandle
	Strings map[altecs.EventField]string
	Lists   map[altecs.EventField][]string
	Uints   map[altecs.EventField]uint64
	Bools   map[altecs.EventField]bool
	Vectors map[altecs.EventField]mgl32.Vec3
	Values  map[altecs.EventField]altecs.MValue
	Args    map[altecs.EventField][]altecs.MValue
}

// NewEvent creates an empty record of type typ.
func NewEvent(typ altecs.EventType) *Event {
	return &Event{
		Type:    typ,
		Objects: make(map[altecs.EventField]altecs.NativeHandle),
		Strings: make(map[altecs.EventField]string),
		Lists:   make(map[altecs.EventField][]string),
		Uints:   make(map[altecs.EventField]uint64),
		Bools:   make(map[altecs.EventField]bool),
		Vectors: make(map[altecs.EventField]mgl32.Vec3),
		Values:  make(map[altecs.EventField]altecs.MValue),
		Args:    make(map[altecs.EventField][]altecs.MValue),
	}
}

func (e *Event) Object(f altecs.EventField, h altecs.NativeHandle) *Event {
	e.Objects[f] = h
	return e
}

func (e *Event) Text(f altecs.EventField, s string) *Event {
	e.Strings[f] = s
	return e
}

func (e *Event) StringList(f altecs.EventField, s ...string) *Event {
	e.Lists[f] = s
	return e
}

func (e *Event) Uint(f altecs.EventField, v uint64) *Event {
	e.Uints[f] = v
	return e
}

func (e *Event) Bool(f altecs.EventField, v bool) *Event {
	e.Bools[f] = v
	return e
}

func (e *Event) Vector(f altecs.EventField, v mgl32.Vec3) *Event {
	e.Vectors[f] = v
	return e
}

func (e *Event) Value(f altecs.EventField, v altecs.MValue) *Event {
	e.Values[f] = v
	return e
}

func (e *Event) ValueList(f altecs.EventField, v ...altecs.MValue) *Event {
	e.Args[f] = v
	return e
}

// PlayerConnect builds a connect record for player.
func PlayerConnect(player altecs.NativeHandle) *Event {
	return NewEvent(altecs.EventTypePlayerConnect).Object(altecs.FieldTarget, player)
}

// PlayerDisconnect builds a disconnect record for player.
func PlayerDisconnect(player altecs.NativeHandle, reason string) *Event {
	return NewEvent(altecs.EventTypePlayerDisconnect).
		Object(altecs.FieldTarget, player).
		Text(altecs.FieldReason, reason)
}

// PlayerDeath builds a death record. killer may be the nil handle.
func PlayerDeath(player, killer altecs.NativeHandle, weapon uint32) *Event {
	return NewEvent(altecs.EventTypePlayerDeath).
		Object(altecs.FieldTarget, player).
		Object(altecs.FieldKiller, killer).
		Uint(altecs.FieldWeapon, uint64(weapon))
}

// ClientScript builds a client script record sent by player.
func ClientScript(player altecs.NativeHandle, name string, args ...altecs.MValue) *Event {
	return NewEvent(altecs.EventTypeClientScript).
		Object(altecs.FieldTarget, player).
		Text(altecs.FieldName, name).
		ValueList(altecs.FieldArgs, args...)
}

// ServerScript builds a server script record.
func ServerScript(name string, args ...altecs.MValue) *Event {
	return NewEvent(altecs.EventTypeServerScript).
		Text(altecs.FieldName, name).
		ValueList(altecs.FieldArgs, args...)
}

// ConsoleCommand builds a console command record.
func ConsoleCommand(name string, args ...string) *Event {
	return NewEvent(altecs.EventTypeConsoleCommand).
		Text(altecs.FieldName, name).
		StringList(altecs.FieldArgs, args...)
}

// EnterVehicle builds an enter-vehicle record.
func EnterVehicle(vehicle, player altecs.NativeHandle, seat uint8) *Event {
	return NewEvent(altecs.EventTypePlayerEnterVehicle).
		Object(altecs.FieldTarget, vehicle).
		Object(altecs.FieldPlayer, player).
		Uint(altecs.FieldSeat, uint64(seat))
}

// CollisionShape builds an enter or leave record for entity and shape.
func CollisionShape(shape, entity altecs.NativeHandle, entered bool) *Event {
	return NewEvent(altecs.EventTypeColShape).
		Object(altecs.FieldTarget, shape).
		Object(altecs.FieldEntity, entity).
		Bool(altecs.FieldState, entered)
}

// EventAPI

func (h *Host) event(raw altecs.NativeHandle) *Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ev, ok := h.events[raw]; ok {
		return ev
	}
	return NewEvent(altecs.EventTypeNone)
}

func (h *Host) EventType(raw altecs.NativeHandle) altecs.EventType { return h.event(raw).Type }

func (h *Host) EventObject(raw altecs.NativeHandle, f altecs.EventField) altecs.NativeHandle {
	return h.event(raw).Objects[f]
}

func (h *Host) EventString(raw altecs.NativeHandle, f altecs.EventField) string {
	return h.event(raw).Strings[f]
}

func (h *Host) EventStrings(raw altecs.NativeHandle, f altecs.EventField) []string {
	return h.event(raw).Lists[f]
}

func (h *Host) EventUint(raw altecs.NativeHandle, f altecs.EventField) uint64 {
	return h.event(raw).Uints[f]
}

func (h *Host) EventBool(raw altecs.NativeHandle, f altecs.EventField) bool {
	return h.event(raw).Bools[f]
}

func (h *Host) EventVector3(raw altecs.NativeHandle, f altecs.EventField) mgl32.Vec3 {
	return h.event(raw).Vectors[f]
}

func (h *Host) EventValue(raw altecs.NativeHandle, f altecs.EventField) altecs.MValue {
	if v, ok := h.event(raw).Values[f]; ok {
		return v
	}
	return altecs.NoneValue{}
}

func (h *Host) EventValues(raw altecs.NativeHandle, f altecs.EventField) []altecs.MValue {
	return h.event(raw).Args[f]
}
