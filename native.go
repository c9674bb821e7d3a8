package altecs

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// NativeAPI is the host's engine API as seen by altecs.
// Every method takes the handle of the object it operates on; altecs never
// interprets a handle beyond using it as a map key and passing it back here.
//
// A host shim implements NativeAPI over the host's C API. hosttest.Host is an
// in-memory implementation for tests.
type NativeAPI interface {
	CoreAPI
	EventAPI
	RefCountableAPI
	BaseObjectAPI
	WorldObjectAPI
	EntityAPI
	PlayerAPI
	VehicleAPI
	CollisionShapeAPI
	CheckpointAPI
	BlipAPI
	VoiceChannelAPI
}

// ResourceInfo describes a resource the host asks a runtime to create.
type ResourceInfo struct {
	// Name is the resource name from the server configuration.
	Name string
	// Path is the resource directory.
	Path string
	// Main is the entry file declared by the resource.
	Main string
}

// CoreAPI holds the host's process-wide calls.
//
// Object constructors return the new object's handle, or the nil handle when the
// host refused to create it. The host invokes the object-create callback
// synchronously before the constructor returns.
type CoreAPI interface {
	RegisterScriptRuntime(resourceType string, rt ScriptRuntime) bool
	Resource(resource NativeHandle) ResourceInfo

	// TriggerClientEvent sends a script event to target, or to every player
	// when target is the nil handle.
	TriggerClientEvent(target NativeHandle, name string, args []MValue)

	CreateVehicle(model uint32, pos, rot mgl32.Vec3) NativeHandle
	CreateColShapeSphere(pos mgl32.Vec3, radius float32) NativeHandle
	CreateColShapeCube(start, end mgl32.Vec3) NativeHandle
	CreateColShapeRectangle(x1, y1, x2, y2, z float32) NativeHandle
	CreateColShapeCircle(pos mgl32.Vec3, radius float32) NativeHandle
	CreateColShapeCylinder(pos mgl32.Vec3, radius, height float32) NativeHandle
	CreateCheckpoint(typ uint8, pos mgl32.Vec3, radius, height float32, c color.RGBA) NativeHandle
	CreateBlip(target NativeHandle, typ uint8, pos mgl32.Vec3) NativeHandle
	CreateVoiceChannel(spatial bool, maxDistance float32) NativeHandle
	DestroyBaseObject(h NativeHandle)

	LogInfo(msg string)
	LogWarning(msg string)
	LogError(msg string)
	LogDebug(msg string)
	LogColored(msg string)
}

// EventAPI reads the fields of a host event record.
// Object fields return the nil handle when the host left them empty.
type EventAPI interface {
	EventType(ev NativeHandle) EventType
	EventObject(ev NativeHandle, f EventField) NativeHandle
	EventString(ev NativeHandle, f EventField) string
	EventStrings(ev NativeHandle, f EventField) []string
	EventUint(ev NativeHandle, f EventField) uint64
	EventBool(ev NativeHandle, f EventField) bool
	EventVector3(ev NativeHandle, f EventField) mgl32.Vec3
	EventValue(ev NativeHandle, f EventField) MValue
	EventValues(ev NativeHandle, f EventField) []MValue
}

// RefCountableAPI is the host's reference counting interface.
type RefCountableAPI interface {
	RefCount(h NativeHandle) uint64
	AddRef(h NativeHandle)
	RemoveRef(h NativeHandle)
}

// BaseObjectAPI is implemented by every host object.
type BaseObjectAPI interface {
	// BaseObjectType returns the secondary type tag of h. Tags outside the
	// mirrored kinds are returned as-is.
	BaseObjectType(h NativeHandle) ObjectKind
	HasMetaData(h NativeHandle, key string) bool
	MetaData(h NativeHandle, key string) MValue
	SetMetaData(h NativeHandle, key string, v MValue)
	DeleteMetaData(h NativeHandle, key string)
}

// WorldObjectAPI is implemented by objects placed in the world.
type WorldObjectAPI interface {
	Dimension(h NativeHandle) int32
	SetDimension(h NativeHandle, dimension int32)
	Position(h NativeHandle) mgl32.Vec3
	SetPosition(h NativeHandle, pos mgl32.Vec3)
}

// EntityAPI is implemented by networked entities (players and vehicles).
type EntityAPI interface {
	EntityID(h NativeHandle) uint16
	NetworkOwner(h NativeHandle) NativeHandle
	Rotation(h NativeHandle) mgl32.Vec3
	SetRotation(h NativeHandle, rot mgl32.Vec3)
	Model(h NativeHandle) uint32
	HasSyncedMetaData(h NativeHandle, key string) bool
	SyncedMetaData(h NativeHandle, key string) MValue
	SetSyncedMetaData(h NativeHandle, key string, v MValue)
	DeleteSyncedMetaData(h NativeHandle, key string)
	HasStreamSyncedMetaData(h NativeHandle, key string) bool
	StreamSyncedMetaData(h NativeHandle, key string) MValue
	SetStreamSyncedMetaData(h NativeHandle, key string, v MValue)
	DeleteStreamSyncedMetaData(h NativeHandle, key string)
}

// PlayerAPI is the host's player interface.
type PlayerAPI interface {
	PlayerIsConnected(h NativeHandle) bool
	PlayerPing(h NativeHandle) uint32
	PlayerIP(h NativeHandle) string
	PlayerSpawn(h NativeHandle, pos mgl32.Vec3, delay time.Duration)
	PlayerDespawn(h NativeHandle)
	PlayerName(h NativeHandle) string
	PlayerSocialID(h NativeHandle) uint64
	PlayerHwidHash(h NativeHandle) uint64
	PlayerHwidExHash(h NativeHandle) uint64
	PlayerAuthToken(h NativeHandle) string
	PlayerHealth(h NativeHandle) uint16
	PlayerSetHealth(h NativeHandle, health uint16)
	PlayerMaxHealth(h NativeHandle) uint16
	PlayerSetMaxHealth(h NativeHandle, health uint16)
	PlayerSetDateTime(h NativeHandle, t time.Time)
	PlayerSetWeather(h NativeHandle, weather uint32)
	PlayerGiveWeapon(h NativeHandle, weapon uint32, ammo int32, selectWeapon bool)
	PlayerRemoveWeapon(h NativeHandle, weapon uint32)
	PlayerRemoveAllWeapons(h NativeHandle)
	PlayerCurrentWeapon(h NativeHandle) uint32
	PlayerSetCurrentWeapon(h NativeHandle, weapon uint32)
	PlayerIsDead(h NativeHandle) bool
	PlayerArmor(h NativeHandle) uint16
	PlayerSetArmor(h NativeHandle, armor uint16)
	PlayerAimPosition(h NativeHandle) mgl32.Vec3
	PlayerIsInVehicle(h NativeHandle) bool
	PlayerVehicle(h NativeHandle) NativeHandle
	PlayerSeat(h NativeHandle) uint8
	PlayerEntityAimingAt(h NativeHandle) NativeHandle
	PlayerKick(h NativeHandle, reason string)
	PlayerSetModel(h NativeHandle, model uint32)
}

// VehicleAPI is the host's vehicle interface.
type VehicleAPI interface {
	VehicleDriver(h NativeHandle) NativeHandle
	VehiclePrimaryColor(h NativeHandle) uint8
	VehicleSetPrimaryColor(h NativeHandle, c uint8)
	VehicleSecondaryColor(h NativeHandle) uint8
	VehicleSetSecondaryColor(h NativeHandle, c uint8)
	VehicleNeonColor(h NativeHandle) color.RGBA
	VehicleSetNeonColor(h NativeHandle, c color.RGBA)
	VehicleLicensePlateText(h NativeHandle) string
	VehicleSetLicensePlateText(h NativeHandle, text string)
	VehicleIsEngineOn(h NativeHandle) bool
	VehicleSetEngineOn(h NativeHandle, on bool)
	VehicleLockState(h NativeHandle) uint8
	VehicleSetLockState(h NativeHandle, state uint8)
	VehicleDirtLevel(h NativeHandle) uint8
	VehicleSetDirtLevel(h NativeHandle, level uint8)
	VehicleEngineHealth(h NativeHandle) int32
	VehicleSetEngineHealth(h NativeHandle, health int32)
	VehicleBodyHealth(h NativeHandle) uint32
	VehicleSetBodyHealth(h NativeHandle, health uint32)
	VehicleIsDestroyed(h NativeHandle) bool
}

// CollisionShapeAPI is the host's collision shape interface.
type CollisionShapeAPI interface {
	ColShapeType(h NativeHandle) uint8
	ColShapeIsEntityIn(h NativeHandle, entity NativeHandle) bool
	ColShapeIsPointIn(h NativeHandle, pos mgl32.Vec3) bool
}

// CheckpointAPI is the host's checkpoint interface.
type CheckpointAPI interface {
	CheckpointType(h NativeHandle) uint8
	CheckpointHeight(h NativeHandle) float32
	CheckpointRadius(h NativeHandle) float32
	CheckpointColor(h NativeHandle) color.RGBA
}

// BlipAPI is the host's blip interface.
type BlipAPI interface {
	BlipIsGlobal(h NativeHandle) bool
	BlipTarget(h NativeHandle) NativeHandle
	BlipAttachedTo(h NativeHandle) NativeHandle
	BlipType(h NativeHandle) uint8
	BlipSetSprite(h NativeHandle, sprite uint16)
	BlipSetColor(h NativeHandle, c uint8)
	BlipSetRoute(h NativeHandle, state bool)
	BlipSetRouteColor(h NativeHandle, c uint8)
}

// VoiceChannelAPI is the host's voice channel interface.
type VoiceChannelAPI interface {
	VoiceChannelIsSpatial(h NativeHandle) bool
	VoiceChannelMaxDistance(h NativeHandle) float32
	VoiceChannelHasPlayer(h NativeHandle, player NativeHandle) bool
	VoiceChannelAddPlayer(h NativeHandle, player NativeHandle)
	VoiceChannelRemovePlayer(h NativeHandle, player NativeHandle)
	VoiceChannelIsPlayerMuted(h NativeHandle, player NativeHandle) bool
	VoiceChannelMutePlayer(h NativeHandle, player NativeHandle)
	VoiceChannelUnmutePlayer(h NativeHandle, player NativeHandle)
}
