package altecs

import (
	"fmt"
	"log/slog"
)

// Decoder turns host event records into Events, resolving every object the
// record references through an ObjectRegistry.
type Decoder struct {
	api        EventAPI
	objects    *ObjectRegistry
	log        *slog.Logger
	logUnknown bool
}

// NewDecoder creates a decoder reading records through api.
// A nil logger uses slog.Default.
func NewDecoder(api EventAPI, objects *ObjectRegistry, log *slog.Logger) *Decoder {
	if log == nil {
		log = slog.Default()
	}
	return &Decoder{api: api, objects: objects, log: log, logUnknown: true}
}

// LogUnknown sets whether records with an unknown type tag are logged.
func (d *Decoder) LogUnknown(enabled bool) {
	d.logUnknown = enabled
}

// fieldReader reads the fields of one record and remembers the first
// resolution failure, so the per-type branches stay linear.
type fieldReader struct {
	d   *Decoder
	raw NativeHandle
	typ EventType
	err error
}

func (r *fieldReader) fail(f EventField, h NativeHandle, err error) {
	if r.err == nil {
		r.err = &DecodeError{Type: r.typ, Field: f, Handle: h, Err: err}
	}
}

// object resolves a reference of a known kind.
func (r *fieldReader) object(f EventField, kind ObjectKind) EntityID {
	h := r.d.api.EventObject(r.raw, f)
	if h.IsNil() {
		r.fail(f, h, ErrNilHandle)
		return EntityID{}
	}
	id, err := r.d.objects.Resolve(kind, h)
	if err != nil {
		r.fail(f, h, err)
	}
	return id
}

// entity resolves a reference that may be a player or a vehicle.
func (r *fieldReader) entity(f EventField) EntityID {
	h := r.d.api.EventObject(r.raw, f)
	if h.IsNil() {
		r.fail(f, h, ErrNilHandle)
		return EntityID{}
	}
	id, _, err := r.d.objects.ResolveEntity(h)
	if err != nil {
		r.fail(f, h, err)
	}
	return id
}

// optionalEntity is entity for fields the host may leave empty.
func (r *fieldReader) optionalEntity(f EventField) (EntityID, bool) {
	if r.d.api.EventObject(r.raw, f).IsNil() {
		return EntityID{}, false
	}
	return r.entity(f), true
}

// shape resolves a collision shape reference; checkpoints are collision
// shapes with their own map.
func (r *fieldReader) shape(f EventField) EntityID {
	h := r.d.api.EventObject(r.raw, f)
	kind, err := r.d.objects.Kind(h)
	if err != nil {
		r.fail(f, h, err)
		return EntityID{}
	}
	switch kind {
	case KindCollisionShape, KindCheckpoint:
	default:
		r.fail(f, h, fmt.Errorf("object is a %s: %w", kind, ErrUnknownObjectType))
		return EntityID{}
	}
	id, err := r.d.objects.Resolve(kind, h)
	if err != nil {
		r.fail(f, h, err)
	}
	return id
}

func (r *fieldReader) str(f EventField) string    { return r.d.api.EventString(r.raw, f) }
func (r *fieldReader) number(f EventField) uint64 { return r.d.api.EventUint(r.raw, f) }
func (r *fieldReader) flag(f EventField) bool     { return r.d.api.EventBool(r.raw, f) }

// value reads an MValue and resolves the objects nested in it.
func (r *fieldReader) value(f EventField) MValue {
	v, err := r.d.objects.fromHost(r.d.api.EventValue(r.raw, f))
	if err != nil {
		r.fail(f, 0, err)
		return NoneValue{}
	}
	return v
}

func (r *fieldReader) values(f EventField) []MValue {
	raw := r.d.api.EventValues(r.raw, f)
	out := make([]MValue, len(raw))
	for i, v := range raw {
		mv, err := r.d.objects.fromHost(v)
		if err != nil {
			r.fail(f, 0, fmt.Errorf("argument %d: %w", i, err))
			return nil
		}
		out[i] = mv
	}
	return out
}

// Decode reads the host event record raw.
//
// Records with a type tag that has no Event are logged and decode to a nil
// Event and a nil error. A record referencing an object that cannot be
// resolved returns a *DecodeError; the host has broken its ordering guarantee
// and the error is fatal.
func (d *Decoder) Decode(raw NativeHandle) (Event, error) {
	typ := d.api.EventType(raw)
	r := &fieldReader{d: d, raw: raw, typ: typ}

	var ev Event
	switch typ {
	case EventTypePlayerConnect:
		ev = &EventPlayerConnect{
			Target: r.object(FieldTarget, KindPlayer),
			Reason: r.str(FieldReason),
		}
	case EventTypePlayerDisconnect:
		ev = &EventPlayerDisconnect{
			Target: r.object(FieldTarget, KindPlayer),
			Reason: r.str(FieldReason),
		}
	case EventTypeClientScript:
		ev = &EventClientScript{
			Target: r.object(FieldTarget, KindPlayer),
			Name:   r.str(FieldName),
			Args:   r.values(FieldArgs),
		}
	case EventTypeServerScript:
		ev = &EventServerScript{
			Name: r.str(FieldName),
			Args: r.values(FieldArgs),
		}
	case EventTypeSyncedMetaChange:
		ev = &EventSyncedMetaChange{
			Target:   r.entity(FieldTarget),
			Key:      r.str(FieldKey),
			Value:    r.value(FieldValue),
			OldValue: r.value(FieldOldValue),
		}
	case EventTypeStreamSyncedMetaChange:
		ev = &EventStreamSyncedMetaChange{
			Target:   r.entity(FieldTarget),
			Key:      r.str(FieldKey),
			Value:    r.value(FieldValue),
			OldValue: r.value(FieldOldValue),
		}
	case EventTypeGlobalMetaChange:
		ev = &EventGlobalMetaChange{
			Key:      r.str(FieldKey),
			Value:    r.value(FieldValue),
			OldValue: r.value(FieldOldValue),
		}
	case EventTypeGlobalSyncedMetaChange:
		ev = &EventGlobalSyncedMetaChange{
			Key:      r.str(FieldKey),
			Value:    r.value(FieldValue),
			OldValue: r.value(FieldOldValue),
		}
	case EventTypePlayerDamage:
		e := &EventPlayerDamage{
			Target: r.object(FieldTarget, KindPlayer),
			Damage: uint16(r.number(FieldDamage)),
			Weapon: uint32(r.number(FieldWeapon)),
		}
		e.Attacker, e.HasAttacker = r.optionalEntity(FieldAttacker)
		ev = e
	case EventTypePlayerDeath:
		e := &EventPlayerDeath{
			Target: r.object(FieldTarget, KindPlayer),
			Weapon: uint32(r.number(FieldWeapon)),
		}
		e.Killer, e.HasKiller = r.optionalEntity(FieldKiller)
		ev = e
	case EventTypeExplosion:
		ev = &EventExplosion{
			Source:        r.object(FieldSource, KindPlayer),
			ExplosionType: uint8(r.number(FieldExplosionType)),
			Position:      d.api.EventVector3(raw, FieldPosition),
			ExplosionFX:   uint32(r.number(FieldExplosionFX)),
		}
	case EventTypeWeaponDamage:
		e := &EventWeaponDamage{
			Source:     r.object(FieldSource, KindPlayer),
			Weapon:     uint32(r.number(FieldWeapon)),
			Damage:     uint16(r.number(FieldDamage)),
			ShotOffset: d.api.EventVector3(raw, FieldShotOffset),
			BodyPart:   uint8(r.number(FieldBodyPart)),
		}
		e.Target, e.HasTarget = r.optionalEntity(FieldTarget)
		ev = e
	case EventTypeColShape:
		ev = &EventCollisionShape{
			Target: r.shape(FieldTarget),
			Entity: r.entity(FieldEntity),
			State:  r.flag(FieldState),
		}
	case EventTypePlayerEnterVehicle:
		ev = &EventPlayerEnterVehicle{
			Vehicle: r.object(FieldTarget, KindVehicle),
			Player:  r.object(FieldPlayer, KindPlayer),
			Seat:    uint8(r.number(FieldSeat)),
		}
	case EventTypePlayerLeaveVehicle:
		ev = &EventPlayerLeaveVehicle{
			Vehicle: r.object(FieldTarget, KindVehicle),
			Player:  r.object(FieldPlayer, KindPlayer),
			Seat:    uint8(r.number(FieldSeat)),
		}
	case EventTypePlayerChangeVehicleSeat:
		ev = &EventPlayerChangeVehicleSeat{
			Vehicle: r.object(FieldTarget, KindVehicle),
			Player:  r.object(FieldPlayer, KindPlayer),
			OldSeat: uint8(r.number(FieldOldSeat)),
			NewSeat: uint8(r.number(FieldNewSeat)),
		}
	case EventTypeRemoveEntity:
		ev = &EventRemoveEntity{Target: r.entity(FieldTarget)}
	case EventTypeDataNodeReceived:
		ev = &EventDataNodeReceived{
			Name: r.str(FieldName),
			JSON: r.str(FieldJSON),
		}
	case EventTypeConsoleCommand:
		ev = &EventConsoleCommand{
			Name: r.str(FieldName),
			Args: d.api.EventStrings(raw, FieldArgs),
		}
	default:
		if d.logUnknown {
			d.log.Warn("altecs: unknown event type", "type", typ, "tag", uint16(typ))
		}
		return nil, nil
	}

	if r.err != nil {
		return nil, r.err
	}
	return ev, nil
}
