// Package hosttest provides an in-memory host for testing altecs modules.
//
// A Host implements altecs.NativeAPI over plain Go maps and drives a
// registered ScriptRuntime the way a real server does: object constructors
// announce the new object to every created resource before they return, and
// Destroy announces the removal before the object disappears.
package hosttest

import (
	"image/color"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/oriumgames/altecs"
)

// Object is the host-side state of one object. Tests may read and modify it
// directly through Host.Object.
type Object struct {
	Handle altecs.NativeHandle
	Kind   altecs.ObjectKind

	Refs             uint64
	Meta             map[string]altecs.MValue
	SyncedMeta       map[string]altecs.MValue
	StreamSyncedMeta map[string]altecs.MValue

	Dimension    int32
	Position     mgl32.Vec3
	Rotation     mgl32.Vec3
	Model        uint32
	NetworkOwner altecs.NativeHandle
	NetworkID    uint16

	// Player
	Name          string
	Connected     bool
	Ping          uint32
	IP            string
	SocialID      uint64
	HwidHash      uint64
	HwidExHash    uint64
	AuthToken     string
	Health        uint16
	MaxHealth     uint16
	Armor         uint16
	Weapons       map[uint32]int32
	CurrentWeapon uint32
	Dead          bool
	AimPosition   mgl32.Vec3
	Vehicle       altecs.NativeHandle
	Seat          uint8
	AimingAt      altecs.NativeHandle
	Weather       uint32
	DateTime      time.Time
	Spawned       bool
	SpawnDelay    time.Duration
	KickReason    string

	// Vehicle
	Driver         altecs.NativeHandle
	PrimaryColor   uint8
	SecondaryColor uint8
	NeonColor      color.RGBA
	Plate          string
	EngineOn       bool
	LockState      uint8
	DirtLevel      uint8
	EngineHealth   int32
	BodyHealth     uint32
	Destroyed      bool

	// Collision shape and checkpoint
	ShapeType uint8
	Radius    float32
	Height    float32
	Corner    mgl32.Vec3
	Inside    map[altecs.NativeHandle]bool
	Color     color.RGBA

	// Checkpoint
	CheckpointType uint8

	// Blip
	Global     bool
	Target     altecs.NativeHandle
	AttachedTo altecs.NativeHandle
	BlipType   uint8
	Sprite     uint16
	BlipColor  uint8
	Route      bool
	RouteColor uint8

	// Voice channel
	Spatial     bool
	MaxDistance float32
	Members     map[altecs.NativeHandle]bool // value is the muted flag
}

// Shape types reported by ColShapeType.
const (
	ShapeSphere uint8 = iota
	ShapeCylinder
	ShapeCircle
	ShapeCuboid
	ShapeRectangle
	ShapeCheckpoint
)

// LogLine is one line written to the host console.
type LogLine struct {
	Level string
	Msg   string
}

// Emit is one TriggerClientEvent call.
type Emit struct {
	Target altecs.NativeHandle
	Name   string
	Args   []altecs.MValue
}

// Host is an in-memory altecs.NativeAPI.
type Host struct {
	mu sync.Mutex

	next      altecs.NativeHandle
	objects   map[altecs.NativeHandle]*Object
	events    map[altecs.NativeHandle]*Event
	resources map[altecs.NativeHandle]altecs.ResourceInfo
	created   []altecs.NativeHandle

	runtime     altecs.ScriptRuntime
	runtimeType string
	logs        []LogLine
	emits       []Emit
}

var _ altecs.NativeAPI = (*Host)(nil)

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		next:      0x1000,
		objects:   make(map[altecs.NativeHandle]*Object),
		events:    make(map[altecs.NativeHandle]*Event),
		resources: make(map[altecs.NativeHandle]altecs.ResourceInfo),
	}
}

func (h *Host) alloc() altecs.NativeHandle {
	h.next += 0x10
	return h.next
}

// obj returns the object of handle, or an empty one if it does not exist.
func (h *Host) obj(handle altecs.NativeHandle) *Object {
	h.mu.Lock()
	defer h.mu.Unlock()
	if o, ok := h.objects[handle]; ok {
		return o
	}
	return &Object{}
}

// Object returns the host-side state of handle.
func (h *Host) Object(handle altecs.NativeHandle) (*Object, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[handle]
	return o, ok
}

// Objects returns the number of live host objects.
func (h *Host) Objects() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.objects)
}

// Runtime returns the registered ScriptRuntime.
func (h *Host) Runtime() altecs.ScriptRuntime {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runtime
}

// RuntimeType returns the resource type the runtime registered for.
func (h *Host) RuntimeType() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runtimeType
}

// Logs returns the lines written to the console so far.
func (h *Host) Logs() []LogLine {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.logs)
}

// Emits returns the client events triggered so far.
func (h *Host) Emits() []Emit {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.emits)
}

// AddResource declares a resource without creating it.
func (h *Host) AddResource(info altecs.ResourceInfo) altecs.NativeHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := h.alloc()
	h.resources[res] = info
	return res
}

// CreateResource asks the runtime to create res. On success the resource
// receives object notifications from then on.
func (h *Host) CreateResource(res altecs.NativeHandle) bool {
	ok := h.Runtime().Create(res)
	if ok {
		h.mu.Lock()
		h.created = append(h.created, res)
		h.mu.Unlock()
	}
	return ok
}

// StartResource creates and starts a resource declared with AddResource.
func (h *Host) StartResource(info altecs.ResourceInfo) (altecs.NativeHandle, bool) {
	res := h.AddResource(info)
	if !h.CreateResource(res) {
		return res, false
	}
	return res, h.Runtime().Start(res)
}

// StopResource stops and destroys res.
func (h *Host) StopResource(res altecs.NativeHandle) bool {
	rt := h.Runtime()
	ok := rt.Stop(res)
	rt.Destroy(res)
	h.mu.Lock()
	h.created = slices.DeleteFunc(h.created, func(r altecs.NativeHandle) bool { return r == res })
	h.mu.Unlock()
	return ok
}

func (h *Host) createdResources() []altecs.NativeHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.created)
}

// Tick ticks every created resource.
func (h *Host) Tick() {
	rt := h.Runtime()
	for _, res := range h.createdResources() {
		rt.OnTick(res)
	}
}

// Record stores an event record without delivering it. The record stays
// readable through the EventAPI until the host is discarded.
func (h *Host) Record(ev *Event) altecs.NativeHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	raw := h.alloc()
	h.events[raw] = ev
	return raw
}

// Fire delivers an event record to every created resource and returns the
// record's handle.
func (h *Host) Fire(ev *Event) altecs.NativeHandle {
	raw := h.Record(ev)

	rt := h.Runtime()
	for _, res := range h.createdResources() {
		rt.OnEvent(res, raw)
	}

	h.mu.Lock()
	delete(h.events, raw)
	h.mu.Unlock()
	return raw
}

// Spawn adds an object of any kind tag and announces it to every created
// resource. Tags outside the mirrored kinds are announced too; the runtime
// is expected to ignore them.
func (h *Host) Spawn(kind altecs.ObjectKind, init func(o *Object)) altecs.NativeHandle {
	h.mu.Lock()
	handle := h.alloc()
	o := &Object{
		Handle:           handle,
		Kind:             kind,
		Refs:             1,
		Meta:             make(map[string]altecs.MValue),
		SyncedMeta:       make(map[string]altecs.MValue),
		StreamSyncedMeta: make(map[string]altecs.MValue),
		Weapons:          make(map[uint32]int32),
		Inside:           make(map[altecs.NativeHandle]bool),
		Members:          make(map[altecs.NativeHandle]bool),
		NetworkID:        uint16(handle >> 4),
	}
	if init != nil {
		init(o)
	}
	h.objects[handle] = o
	h.mu.Unlock()

	if rt := h.Runtime(); rt != nil {
		for _, res := range h.createdResources() {
			rt.OnCreateBaseObject(res, handle)
		}
	}
	return handle
}

// Connect spawns a connected player called name.
func (h *Host) Connect(name string) altecs.NativeHandle {
	return h.Spawn(altecs.KindPlayer, func(o *Object) {
		o.Name = name
		o.Connected = true
		o.Health = 200
		o.MaxHealth = 200
		o.IP = "127.0.0.1"
	})
}

// Destroy announces the removal of handle to every created resource and
// then drops the object.
func (h *Host) Destroy(handle altecs.NativeHandle) {
	if _, ok := h.Object(handle); !ok {
		return
	}
	if rt := h.Runtime(); rt != nil {
		for _, res := range h.createdResources() {
			rt.OnRemoveBaseObject(res, handle)
		}
	}
	h.mu.Lock()
	delete(h.objects, handle)
	h.mu.Unlock()
}

// CoreAPI

func (h *Host) RegisterScriptRuntime(resourceType string, rt altecs.ScriptRuntime) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.runtime != nil {
		return false
	}
	h.runtime = rt
	h.runtimeType = resourceType
	return true
}

func (h *Host) Resource(res altecs.NativeHandle) altecs.ResourceInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resources[res]
}

func (h *Host) TriggerClientEvent(target altecs.NativeHandle, name string, args []altecs.MValue) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emits = append(h.emits, Emit{Target: target, Name: name, Args: args})
}

func (h *Host) CreateVehicle(model uint32, pos, rot mgl32.Vec3) altecs.NativeHandle {
	return h.Spawn(altecs.KindVehicle, func(o *Object) {
		o.Model = model
		o.Position = pos
		o.Rotation = rot
		o.EngineHealth = 1000
		o.BodyHealth = 1000
	})
}

func (h *Host) CreateColShapeSphere(pos mgl32.Vec3, radius float32) altecs.NativeHandle {
	return h.shape(ShapeSphere, pos, radius, 0, mgl32.Vec3{})
}

func (h *Host) CreateColShapeCube(start, end mgl32.Vec3) altecs.NativeHandle {
	return h.shape(ShapeCuboid, start, 0, 0, end)
}

func (h *Host) CreateColShapeRectangle(x1, y1, x2, y2, z float32) altecs.NativeHandle {
	return h.shape(ShapeRectangle, mgl32.Vec3{x1, y1, z}, 0, 0, mgl32.Vec3{x2, y2, z})
}

func (h *Host) CreateColShapeCircle(pos mgl32.Vec3, radius float32) altecs.NativeHandle {
	return h.shape(ShapeCircle, pos, radius, 0, mgl32.Vec3{})
}

func (h *Host) CreateColShapeCylinder(pos mgl32.Vec3, radius, height float32) altecs.NativeHandle {
	return h.shape(ShapeCylinder, pos, radius, height, mgl32.Vec3{})
}

func (h *Host) shape(typ uint8, pos mgl32.Vec3, radius, height float32, corner mgl32.Vec3) altecs.NativeHandle {
	return h.Spawn(altecs.KindCollisionShape, func(o *Object) {
		o.ShapeType = typ
		o.Position = pos
		o.Radius = radius
		o.Height = height
		o.Corner = corner
	})
}

func (h *Host) CreateCheckpoint(typ uint8, pos mgl32.Vec3, radius, height float32, c color.RGBA) altecs.NativeHandle {
	return h.Spawn(altecs.KindCheckpoint, func(o *Object) {
		o.ShapeType = ShapeCheckpoint
		o.CheckpointType = typ
		o.Position = pos
		o.Radius = radius
		o.Height = height
		o.Color = c
	})
}

func (h *Host) CreateBlip(target altecs.NativeHandle, typ uint8, pos mgl32.Vec3) altecs.NativeHandle {
	return h.Spawn(altecs.KindBlip, func(o *Object) {
		o.Global = target.IsNil()
		o.Target = target
		o.BlipType = typ
		o.Position = pos
	})
}

func (h *Host) CreateVoiceChannel(spatial bool, maxDistance float32) altecs.NativeHandle {
	return h.Spawn(altecs.KindVoiceChannel, func(o *Object) {
		o.Spatial = spatial
		o.MaxDistance = maxDistance
	})
}

func (h *Host) DestroyBaseObject(handle altecs.NativeHandle) {
	h.Destroy(handle)
}

func (h *Host) log(level, msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs = append(h.logs, LogLine{Level: level, Msg: msg})
}

func (h *Host) LogInfo(msg string)    { h.log("info", msg) }
func (h *Host) LogWarning(msg string) { h.log("warning", msg) }
func (h *Host) LogError(msg string)   { h.log("error", msg) }
func (h *Host) LogDebug(msg string)   { h.log("debug", msg) }
func (h *Host) LogColored(msg string) { h.log("colored", msg) }

// RefCountableAPI

func (h *Host) RefCount(handle altecs.NativeHandle) uint64 { return h.obj(handle).Refs }
func (h *Host) AddRef(handle altecs.NativeHandle)          { h.update(handle, func(o *Object) { o.Refs++ }) }
func (h *Host) RemoveRef(handle altecs.NativeHandle) {
	h.update(handle, func(o *Object) {
		if o.Refs > 0 {
			o.Refs--
		}
	})
}

// update runs fn on an existing object under the lock.
func (h *Host) update(handle altecs.NativeHandle, fn func(o *Object)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if o, ok := h.objects[handle]; ok {
		fn(o)
	}
}

// BaseObjectAPI

// unknownKind is reported for handles the host does not know.
const unknownKind altecs.ObjectKind = 0xff

func (h *Host) BaseObjectType(handle altecs.NativeHandle) altecs.ObjectKind {
	o, ok := h.Object(handle)
	if !ok {
		return unknownKind
	}
	return o.Kind
}

func (h *Host) HasMetaData(handle altecs.NativeHandle, key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[handle]
	if !ok {
		return false
	}
	_, ok = o.Meta[key]
	return ok
}

func (h *Host) MetaData(handle altecs.NativeHandle, key string) altecs.MValue {
	return lookup(h, handle, func(o *Object) map[string]altecs.MValue { return o.Meta }, key)
}

func (h *Host) SetMetaData(handle altecs.NativeHandle, key string, v altecs.MValue) {
	h.update(handle, func(o *Object) { o.Meta[key] = v })
}

func (h *Host) DeleteMetaData(handle altecs.NativeHandle, key string) {
	h.update(handle, func(o *Object) { delete(o.Meta, key) })
}

func lookup(h *Host, handle altecs.NativeHandle, m func(o *Object) map[string]altecs.MValue, key string) altecs.MValue {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[handle]
	if !ok {
		return altecs.NoneValue{}
	}
	v, ok := m(o)[key]
	if !ok {
		return altecs.NoneValue{}
	}
	return v
}

// WorldObjectAPI

func (h *Host) Dimension(handle altecs.NativeHandle) int32 { return h.obj(handle).Dimension }
func (h *Host) SetDimension(handle altecs.NativeHandle, dimension int32) {
	h.update(handle, func(o *Object) { o.Dimension = dimension })
}
func (h *Host) Position(handle altecs.NativeHandle) mgl32.Vec3 { return h.obj(handle).Position }
func (h *Host) SetPosition(handle altecs.NativeHandle, pos mgl32.Vec3) {
	h.update(handle, func(o *Object) { o.Position = pos })
}

// EntityAPI

func (h *Host) EntityID(handle altecs.NativeHandle) uint16 { return h.obj(handle).NetworkID }
func (h *Host) NetworkOwner(handle altecs.NativeHandle) altecs.NativeHandle {
	return h.obj(handle).NetworkOwner
}
func (h *Host) Rotation(handle altecs.NativeHandle) mgl32.Vec3 { return h.obj(handle).Rotation }
func (h *Host) SetRotation(handle altecs.NativeHandle, rot mgl32.Vec3) {
	h.update(handle, func(o *Object) { o.Rotation = rot })
}
func (h *Host) Model(handle altecs.NativeHandle) uint32 { return h.obj(handle).Model }

func (h *Host) HasSyncedMetaData(handle altecs.NativeHandle, key string) bool {
	return !isNone(h.SyncedMetaData(handle, key))
}

func (h *Host) SyncedMetaData(handle altecs.NativeHandle, key string) altecs.MValue {
	return lookup(h, handle, func(o *Object) map[string]altecs.MValue { return o.SyncedMeta }, key)
}

func (h *Host) SetSyncedMetaData(handle altecs.NativeHandle, key string, v altecs.MValue) {
	h.update(handle, func(o *Object) { o.SyncedMeta[key] = v })
}

func (h *Host) DeleteSyncedMetaData(handle altecs.NativeHandle, key string) {
	h.update(handle, func(o *Object) { delete(o.SyncedMeta, key) })
}

func (h *Host) HasStreamSyncedMetaData(handle altecs.NativeHandle, key string) bool {
	return !isNone(h.StreamSyncedMetaData(handle, key))
}

func (h *Host) StreamSyncedMetaData(handle altecs.NativeHandle, key string) altecs.MValue {
	return lookup(h, handle, func(o *Object) map[string]altecs.MValue { return o.StreamSyncedMeta }, key)
}

func (h *Host) SetStreamSyncedMetaData(handle altecs.NativeHandle, key string, v altecs.MValue) {
	h.update(handle, func(o *Object) { o.StreamSyncedMeta[key] = v })
}

func (h *Host) DeleteStreamSyncedMetaData(handle altecs.NativeHandle, key string) {
	h.update(handle, func(o *Object) { delete(o.StreamSyncedMeta, key) })
}

func isNone(v altecs.MValue) bool {
	_, ok := v.(altecs.NoneValue)
	return ok
}

// PlayerAPI

func (h *Host) PlayerIsConnected(p altecs.NativeHandle) bool { return h.obj(p).Connected }
func (h *Host) PlayerPing(p altecs.NativeHandle) uint32      { return h.obj(p).Ping }
func (h *Host) PlayerIP(p altecs.NativeHandle) string        { return h.obj(p).IP }

func (h *Host) PlayerSpawn(p altecs.NativeHandle, pos mgl32.Vec3, delay time.Duration) {
	h.update(p, func(o *Object) {
		o.Spawned = true
		o.Dead = false
		o.Position = pos
		o.SpawnDelay = delay
		o.Health = o.MaxHealth
	})
}

func (h *Host) PlayerDespawn(p altecs.NativeHandle) {
	h.update(p, func(o *Object) { o.Spawned = false })
}

func (h *Host) PlayerName(p altecs.NativeHandle) string       { return h.obj(p).Name }
func (h *Host) PlayerSocialID(p altecs.NativeHandle) uint64   { return h.obj(p).SocialID }
func (h *Host) PlayerHwidHash(p altecs.NativeHandle) uint64   { return h.obj(p).HwidHash }
func (h *Host) PlayerHwidExHash(p altecs.NativeHandle) uint64 { return h.obj(p).HwidExHash }
func (h *Host) PlayerAuthToken(p altecs.NativeHandle) string  { return h.obj(p).AuthToken }
func (h *Host) PlayerHealth(p altecs.NativeHandle) uint16     { return h.obj(p).Health }
func (h *Host) PlayerMaxHealth(p altecs.NativeHandle) uint16  { return h.obj(p).MaxHealth }
func (h *Host) PlayerArmor(p altecs.NativeHandle) uint16      { return h.obj(p).Armor }
func (h *Host) PlayerIsDead(p altecs.NativeHandle) bool       { return h.obj(p).Dead }

func (h *Host) PlayerSetHealth(p altecs.NativeHandle, health uint16) {
	h.update(p, func(o *Object) { o.Health = health })
}

func (h *Host) PlayerSetMaxHealth(p altecs.NativeHandle, health uint16) {
	h.update(p, func(o *Object) { o.MaxHealth = health })
}

func (h *Host) PlayerSetArmor(p altecs.NativeHandle, armor uint16) {
	h.update(p, func(o *Object) { o.Armor = armor })
}

func (h *Host) PlayerSetDateTime(p altecs.NativeHandle, t time.Time) {
	h.update(p, func(o *Object) { o.DateTime = t })
}

func (h *Host) PlayerSetWeather(p altecs.NativeHandle, weather uint32) {
	h.update(p, func(o *Object) { o.Weather = weather })
}

func (h *Host) PlayerGiveWeapon(p altecs.NativeHandle, weapon uint32, ammo int32, selectWeapon bool) {
	h.update(p, func(o *Object) {
		o.Weapons[weapon] += ammo
		if selectWeapon {
			o.CurrentWeapon = weapon
		}
	})
}

func (h *Host) PlayerRemoveWeapon(p altecs.NativeHandle, weapon uint32) {
	h.update(p, func(o *Object) { delete(o.Weapons, weapon) })
}

func (h *Host) PlayerRemoveAllWeapons(p altecs.NativeHandle) {
	h.update(p, func(o *Object) { clear(o.Weapons) })
}

func (h *Host) PlayerCurrentWeapon(p altecs.NativeHandle) uint32 { return h.obj(p).CurrentWeapon }

func (h *Host) PlayerSetCurrentWeapon(p altecs.NativeHandle, weapon uint32) {
	h.update(p, func(o *Object) { o.CurrentWeapon = weapon })
}

func (h *Host) PlayerAimPosition(p altecs.NativeHandle) mgl32.Vec3 { return h.obj(p).AimPosition }
func (h *Host) PlayerIsInVehicle(p altecs.NativeHandle) bool       { return !h.obj(p).Vehicle.IsNil() }
func (h *Host) PlayerVehicle(p altecs.NativeHandle) altecs.NativeHandle {
	return h.obj(p).Vehicle
}
func (h *Host) PlayerSeat(p altecs.NativeHandle) uint8 { return h.obj(p).Seat }
func (h *Host) PlayerEntityAimingAt(p altecs.NativeHandle) altecs.NativeHandle {
	return h.obj(p).AimingAt
}

func (h *Host) PlayerKick(p altecs.NativeHandle, reason string) {
	h.update(p, func(o *Object) {
		o.KickReason = reason
		o.Connected = false
	})
}

func (h *Host) PlayerSetModel(p altecs.NativeHandle, model uint32) {
	h.update(p, func(o *Object) { o.Model = model })
}

// VehicleAPI

func (h *Host) VehicleDriver(v altecs.NativeHandle) altecs.NativeHandle { return h.obj(v).Driver }
func (h *Host) VehiclePrimaryColor(v altecs.NativeHandle) uint8         { return h.obj(v).PrimaryColor }
func (h *Host) VehicleSecondaryColor(v altecs.NativeHandle) uint8       { return h.obj(v).SecondaryColor }
func (h *Host) VehicleNeonColor(v altecs.NativeHandle) color.RGBA       { return h.obj(v).NeonColor }
func (h *Host) VehicleLicensePlateText(v altecs.NativeHandle) string    { return h.obj(v).Plate }
func (h *Host) VehicleIsEngineOn(v altecs.NativeHandle) bool            { return h.obj(v).EngineOn }
func (h *Host) VehicleLockState(v altecs.NativeHandle) uint8            { return h.obj(v).LockState }
func (h *Host) VehicleDirtLevel(v altecs.NativeHandle) uint8            { return h.obj(v).DirtLevel }
func (h *Host) VehicleEngineHealth(v altecs.NativeHandle) int32         { return h.obj(v).EngineHealth }
func (h *Host) VehicleBodyHealth(v altecs.NativeHandle) uint32          { return h.obj(v).BodyHealth }
func (h *Host) VehicleIsDestroyed(v altecs.NativeHandle) bool           { return h.obj(v).Destroyed }

func (h *Host) VehicleSetPrimaryColor(v altecs.NativeHandle, c uint8) {
	h.update(v, func(o *Object) { o.PrimaryColor = c })
}

func (h *Host) VehicleSetSecondaryColor(v altecs.NativeHandle, c uint8) {
	h.update(v, func(o *Object) { o.SecondaryColor = c })
}

func (h *Host) VehicleSetNeonColor(v altecs.NativeHandle, c color.RGBA) {
	h.update(v, func(o *Object) { o.NeonColor = c })
}

func (h *Host) VehicleSetLicensePlateText(v altecs.NativeHandle, text string) {
	h.update(v, func(o *Object) { o.Plate = text })
}

func (h *Host) VehicleSetEngineOn(v altecs.NativeHandle, on bool) {
	h.update(v, func(o *Object) { o.EngineOn = on })
}

func (h *Host) VehicleSetLockState(v altecs.NativeHandle, state uint8) {
	h.update(v, func(o *Object) { o.LockState = state })
}

func (h *Host) VehicleSetDirtLevel(v altecs.NativeHandle, level uint8) {
	h.update(v, func(o *Object) { o.DirtLevel = level })
}

func (h *Host) VehicleSetEngineHealth(v altecs.NativeHandle, health int32) {
	h.update(v, func(o *Object) { o.EngineHealth = health })
}

func (h *Host) VehicleSetBodyHealth(v altecs.NativeHandle, health uint32) {
	h.update(v, func(o *Object) { o.BodyHealth = health })
}

// CollisionShapeAPI

func (h *Host) ColShapeType(c altecs.NativeHandle) uint8 { return h.obj(c).ShapeType }

func (h *Host) ColShapeIsEntityIn(c altecs.NativeHandle, entity altecs.NativeHandle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[c]
	return ok && o.Inside[entity]
}

func (h *Host) ColShapeIsPointIn(c altecs.NativeHandle, pos mgl32.Vec3) bool {
	o := h.obj(c)
	switch o.ShapeType {
	case ShapeSphere:
		return pos.Sub(o.Position).Len() <= o.Radius
	case ShapeCircle:
		return pos.Vec2().Sub(o.Position.Vec2()).Len() <= o.Radius
	case ShapeCylinder, ShapeCheckpoint:
		return pos.Vec2().Sub(o.Position.Vec2()).Len() <= o.Radius &&
			pos.Z() >= o.Position.Z() && pos.Z() <= o.Position.Z()+o.Height
	case ShapeCuboid:
		return within(pos.X(), o.Position.X(), o.Corner.X()) &&
			within(pos.Y(), o.Position.Y(), o.Corner.Y()) &&
			within(pos.Z(), o.Position.Z(), o.Corner.Z())
	case ShapeRectangle:
		return within(pos.X(), o.Position.X(), o.Corner.X()) &&
			within(pos.Y(), o.Position.Y(), o.Corner.Y())
	default:
		return false
	}
}

func within(v, a, b float32) bool {
	return v >= min(a, b) && v <= max(a, b)
}

// CheckpointAPI

func (h *Host) CheckpointType(c altecs.NativeHandle) uint8       { return h.obj(c).CheckpointType }
func (h *Host) CheckpointHeight(c altecs.NativeHandle) float32   { return h.obj(c).Height }
func (h *Host) CheckpointRadius(c altecs.NativeHandle) float32   { return h.obj(c).Radius }
func (h *Host) CheckpointColor(c altecs.NativeHandle) color.RGBA { return h.obj(c).Color }

// BlipAPI

func (h *Host) BlipIsGlobal(b altecs.NativeHandle) bool                  { return h.obj(b).Global }
func (h *Host) BlipTarget(b altecs.NativeHandle) altecs.NativeHandle     { return h.obj(b).Target }
func (h *Host) BlipAttachedTo(b altecs.NativeHandle) altecs.NativeHandle { return h.obj(b).AttachedTo }
func (h *Host) BlipType(b altecs.NativeHandle) uint8                     { return h.obj(b).BlipType }

func (h *Host) BlipSetSprite(b altecs.NativeHandle, sprite uint16) {
	h.update(b, func(o *Object) { o.Sprite = sprite })
}

func (h *Host) BlipSetColor(b altecs.NativeHandle, c uint8) {
	h.update(b, func(o *Object) { o.BlipColor = c })
}

func (h *Host) BlipSetRoute(b altecs.NativeHandle, state bool) {
	h.update(b, func(o *Object) { o.Route = state })
}

func (h *Host) BlipSetRouteColor(b altecs.NativeHandle, c uint8) {
	h.update(b, func(o *Object) { o.RouteColor = c })
}

// VoiceChannelAPI

func (h *Host) VoiceChannelIsSpatial(v altecs.NativeHandle) bool      { return h.obj(v).Spatial }
func (h *Host) VoiceChannelMaxDistance(v altecs.NativeHandle) float32 { return h.obj(v).MaxDistance }

func (h *Host) VoiceChannelHasPlayer(v altecs.NativeHandle, p altecs.NativeHandle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[v]
	if !ok {
		return false
	}
	_, ok = o.Members[p]
	return ok
}

func (h *Host) VoiceChannelAddPlayer(v altecs.NativeHandle, p altecs.NativeHandle) {
	h.update(v, func(o *Object) {
		if _, ok := o.Members[p]; !ok {
			o.Members[p] = false
		}
	})
}

func (h *Host) VoiceChannelRemovePlayer(v altecs.NativeHandle, p altecs.NativeHandle) {
	h.update(v, func(o *Object) { delete(o.Members, p) })
}

func (h *Host) VoiceChannelIsPlayerMuted(v altecs.NativeHandle, p altecs.NativeHandle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[v]
	return ok && o.Members[p]
}

func (h *Host) VoiceChannelMutePlayer(v altecs.NativeHandle, p altecs.NativeHandle) {
	h.update(v, func(o *Object) {
		if _, ok := o.Members[p]; ok {
			o.Members[p] = true
		}
	})
}

func (h *Host) VoiceChannelUnmutePlayer(v altecs.NativeHandle, p altecs.NativeHandle) {
	h.update(v, func(o *Object) {
		if _, ok := o.Members[p]; ok {
			o.Members[p] = false
		}
	})
}

// Handles returns the handles of live objects of kind, in creation order.
func (h *Host) Handles(kind altecs.ObjectKind) []altecs.NativeHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []altecs.NativeHandle
	for _, handle := range slices.Sorted(maps.Keys(h.objects)) {
		if h.objects[handle].Kind == kind {
			out = append(out, handle)
		}
	}
	return out
}
