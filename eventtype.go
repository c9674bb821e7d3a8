package altecs

import "strconv"

// EventType is the host's event type tag.
type EventType uint16

const (
	EventTypeNone EventType = iota
	EventTypePlayerConnect
	EventTypePlayerDisconnect
	EventTypeResourceStart
	EventTypeResourceStop
	EventTypeResourceError
	EventTypeServerScript
	EventTypeClientScript
	EventTypeSyncedMetaChange
	EventTypeStreamSyncedMetaChange
	EventTypeGlobalMetaChange
	EventTypeGlobalSyncedMetaChange
	EventTypePlayerDamage
	EventTypePlayerDeath
	EventTypeFire
	EventTypeExplosion
	EventTypeStartProjectile
	EventTypeWeaponDamage
	EventTypeVehicleDestroy
	EventTypeCheckpoint
	EventTypeColShape
	EventTypePlayerEnterVehicle
	EventTypePlayerLeaveVehicle
	EventTypePlayerChangeVehicleSeat
	EventTypeRemoveEntity
	EventTypeDataNodeReceived
	EventTypeConsoleCommand
)

var eventTypeNames = [...]string{
	EventTypeNone:                    "None",
	EventTypePlayerConnect:           "PlayerConnect",
	EventTypePlayerDisconnect:        "PlayerDisconnect",
	EventTypeResourceStart:           "ResourceStart",
	EventTypeResourceStop:            "ResourceStop",
	EventTypeResourceError:           "ResourceError",
	EventTypeServerScript:            "ServerScript",
	EventTypeClientScript:            "ClientScript",
	EventTypeSyncedMetaChange:        "SyncedMetaChange",
	EventTypeStreamSyncedMetaChange:  "StreamSyncedMetaChange",
	EventTypeGlobalMetaChange:        "GlobalMetaChange",
	EventTypeGlobalSyncedMetaChange:  "GlobalSyncedMetaChange",
	EventTypePlayerDamage:            "PlayerDamage",
	EventTypePlayerDeath:             "PlayerDeath",
	EventTypeFire:                    "Fire",
	EventTypeExplosion:               "Explosion",
	EventTypeStartProjectile:         "StartProjectile",
	EventTypeWeaponDamage:            "WeaponDamage",
	EventTypeVehicleDestroy:          "VehicleDestroy",
	EventTypeCheckpoint:              "Checkpoint",
	EventTypeColShape:                "ColShape",
	EventTypePlayerEnterVehicle:      "PlayerEnterVehicle",
	EventTypePlayerLeaveVehicle:      "PlayerLeaveVehicle",
	EventTypePlayerChangeVehicleSeat: "PlayerChangeVehicleSeat",
	EventTypeRemoveEntity:            "RemoveEntity",
	EventTypeDataNodeReceived:        "DataNodeReceived",
	EventTypeConsoleCommand:          "ConsoleCommand",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// EventField names a field of a host event record.
type EventField uint8

const (
	FieldTarget EventField = iota
	FieldPlayer
	FieldAttacker
	FieldKiller
	FieldSource
	FieldEntity
	FieldName
	FieldReason
	FieldKey
	FieldValue
	FieldOldValue
	FieldArgs
	FieldDamage
	FieldWeapon
	FieldExplosionType
	FieldPosition
	FieldExplosionFX
	FieldShotOffset
	FieldBodyPart
	FieldState
	FieldSeat
	FieldOldSeat
	FieldNewSeat
	FieldJSON
)

var eventFieldNames = [...]string{
	FieldTarget:        "Target",
	FieldPlayer:        "Player",
	FieldAttacker:      "Attacker",
	FieldKiller:        "Killer",
	FieldSource:        "Source",
	FieldEntity:        "Entity",
	FieldName:          "Name",
	FieldReason:        "Reason",
	FieldKey:           "Key",
	FieldValue:         "Value",
	FieldOldValue:      "OldValue",
	FieldArgs:          "Args",
	FieldDamage:        "Damage",
	FieldWeapon:        "Weapon",
	FieldExplosionType: "ExplosionType",
	FieldPosition:      "Position",
	FieldExplosionFX:   "ExplosionFX",
	FieldShotOffset:    "ShotOffset",
	FieldBodyPart:      "BodyPart",
	FieldState:         "State",
	FieldSeat:          "Seat",
	FieldOldSeat:       "OldSeat",
	FieldNewSeat:       "NewSeat",
	FieldJSON:          "JSON",
}

func (f EventField) String() string {
	if int(f) < len(eventFieldNames) {
		return eventFieldNames[f]
	}
	return "EventField(" + strconv.Itoa(int(f)) + ")"
}
