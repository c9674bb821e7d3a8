package altecs

import "github.com/go-gl/mathgl/mgl32"

// Event is a decoded host event. Object references are carried as EntityIDs;
// events never expose host handles.
//
// Bundle handlers receive events by declaring a method with a single pointer
// argument of the event type they want, for example
//
//	func (h *Greeter) HandleConnect(ev *altecs.EventPlayerConnect)
type Event interface {
	Type() EventType
	event()
}

// EventPlayerConnect is emitted when a player connects.
type EventPlayerConnect struct {
	Target EntityID
	Reason string
}

// EventPlayerDisconnect is emitted when a player disconnects.
// The player entity is still alive while the event is handled.
type EventPlayerDisconnect struct {
	Target EntityID
	Reason string
}

// EventClientScript is emitted when a client sends a script event.
type EventClientScript struct {
	Target EntityID
	Name   string
	Args   []MValue
}

// EventServerScript is emitted when a server resource emits a script event.
type EventServerScript struct {
	Name string
	Args []MValue
}

// EventSyncedMetaChange is emitted when synced meta of an entity changes.
type EventSyncedMetaChange struct {
	Target   EntityID
	Key      string
	Value    MValue
	OldValue MValue
}

// EventStreamSyncedMetaChange is emitted when stream synced meta of an entity changes.
type EventStreamSyncedMetaChange struct {
	Target   EntityID
	Key      string
	Value    MValue
	OldValue MValue
}

// EventGlobalMetaChange is emitted when global meta changes.
type EventGlobalMetaChange struct {
	Key      string
	Value    MValue
	OldValue MValue
}

// EventGlobalSyncedMetaChange is emitted when global synced meta changes.
type EventGlobalSyncedMetaChange struct {
	Key      string
	Value    MValue
	OldValue MValue
}

// EventPlayerDamage is emitted when a player takes damage.
type EventPlayerDamage struct {
	Target      EntityID
	Attacker    EntityID
	HasAttacker bool
	Damage      uint16
	Weapon      uint32
}

// EventPlayerDeath is emitted when a player dies.
type EventPlayerDeath struct {
	Target    EntityID
	Killer    EntityID
	HasKiller bool
	Weapon    uint32
}

// EventExplosion is emitted when a player causes an explosion.
type EventExplosion struct {
	Source        EntityID
	ExplosionType uint8
	Position      mgl32.Vec3
	ExplosionFX   uint32
}

// EventWeaponDamage is emitted when a player's weapon hits something.
type EventWeaponDamage struct {
	Source     EntityID
	Target     EntityID
	HasTarget  bool
	Weapon     uint32
	Damage     uint16
	ShotOffset mgl32.Vec3
	BodyPart   uint8
}

// EventCollisionShape is emitted when an entity enters or leaves a collision
// shape or checkpoint.
type EventCollisionShape struct {
	Target EntityID
	Entity EntityID
	// State is true when the entity entered the shape.
	State bool
}

// EventPlayerEnterVehicle is emitted when a player enters a vehicle.
type EventPlayerEnterVehicle struct {
	Vehicle EntityID
	Player  EntityID
	Seat    uint8
}

// EventPlayerLeaveVehicle is emitted when a player leaves a vehicle.
type EventPlayerLeaveVehicle struct {
	Vehicle EntityID
	Player  EntityID
	Seat    uint8
}

// EventPlayerChangeVehicleSeat is emitted when a player changes seats.
type EventPlayerChangeVehicleSeat struct {
	Vehicle EntityID
	Player  EntityID
	OldSeat uint8
	NewSeat uint8
}

// EventRemoveEntity is emitted before a player or vehicle is removed.
type EventRemoveEntity struct {
	Target EntityID
}

// EventDataNodeReceived is emitted when the host receives a data node.
type EventDataNodeReceived struct {
	Name string
	JSON string
}

// EventConsoleCommand is emitted when a command is typed into the server console.
type EventConsoleCommand struct {
	Name string
	Args []string
}

func (*EventPlayerConnect) Type() EventType           { return EventTypePlayerConnect }
func (*EventPlayerDisconnect) Type() EventType        { return EventTypePlayerDisconnect }
func (*EventClientScript) Type() EventType            { return EventTypeClientScript }
func (*EventServerScript) Type() EventType            { return EventTypeServerScript }
func (*EventSyncedMetaChange) Type() EventType        { return EventTypeSyncedMetaChange }
func (*EventStreamSyncedMetaChange) Type() EventType  { return EventTypeStreamSyncedMetaChange }
func (*EventGlobalMetaChange) Type() EventType        { return EventTypeGlobalMetaChange }
func (*EventGlobalSyncedMetaChange) Type() EventType  { return EventTypeGlobalSyncedMetaChange }
func (*EventPlayerDamage) Type() EventType            { return EventTypePlayerDamage }
func (*EventPlayerDeath) Type() EventType             { return EventTypePlayerDeath }
func (*EventExplosion) Type() EventType               { return EventTypeExplosion }
func (*EventWeaponDamage) Type() EventType            { return EventTypeWeaponDamage }
func (*EventCollisionShape) Type() EventType          { return EventTypeColShape }
func (*EventPlayerEnterVehicle) Type() EventType      { return EventTypePlayerEnterVehicle }
func (*EventPlayerLeaveVehicle) Type() EventType      { return EventTypePlayerLeaveVehicle }
func (*EventPlayerChangeVehicleSeat) Type() EventType { return EventTypePlayerChangeVehicleSeat }
func (*EventRemoveEntity) Type() EventType            { return EventTypeRemoveEntity }
func (*EventDataNodeReceived) Type() EventType        { return EventTypeDataNodeReceived }
func (*EventConsoleCommand) Type() EventType          { return EventTypeConsoleCommand }

func (*EventPlayerConnect) event()           {}
func (*EventPlayerDisconnect) event()        {}
func (*EventClientScript) event()            {}
func (*EventServerScript) event()            {}
func (*EventSyncedMetaChange) event()        {}
func (*EventStreamSyncedMetaChange) event()  {}
func (*EventGlobalMetaChange) event()        {}
func (*EventGlobalSyncedMetaChange) event()  {}
func (*EventPlayerDamage) event()            {}
func (*EventPlayerDeath) event()             {}
func (*EventExplosion) event()               {}
func (*EventWeaponDamage) event()            {}
func (*EventCollisionShape) event()          {}
func (*EventPlayerEnterVehicle) event()      {}
func (*EventPlayerLeaveVehicle) event()      {}
func (*EventPlayerChangeVehicleSeat) event() {}
func (*EventRemoveEntity) event()            {}
func (*EventDataNodeReceived) event()        {}
func (*EventConsoleCommand) event()          {}
