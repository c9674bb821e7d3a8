package altecs

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// NetworkedEntity is attached to players and vehicles.
type NetworkedEntity struct{ facet }

// ID returns the host's network id of the entity.
func (f *NetworkedEntity) ID() uint16 { return f.api().EntityID(f.handle) }

// NetworkOwner returns the player that syncs the entity, if any.
func (f *NetworkedEntity) NetworkOwner() (EntityID, bool) {
	return f.resolve(KindPlayer, f.api().NetworkOwner(f.handle))
}

func (f *NetworkedEntity) Rotation() mgl32.Vec3       { return f.api().Rotation(f.handle) }
func (f *NetworkedEntity) SetRotation(rot mgl32.Vec3) { f.api().SetRotation(f.handle, rot) }
func (f *NetworkedEntity) Model() uint32              { return f.api().Model(f.handle) }

func (f *NetworkedEntity) HasSyncedMeta(key string) bool {
	return f.api().HasSyncedMetaData(f.handle, key)
}

func (f *NetworkedEntity) SyncedMeta(key string) MValue {
	return f.importValue(f.api().SyncedMetaData(f.handle, key))
}

func (f *NetworkedEntity) SetSyncedMeta(key string, v MValue) error {
	hv, err := f.exportValue(v)
	if err != nil {
		return fmt.Errorf("set synced meta %q: %w", key, err)
	}
	f.api().SetSyncedMetaData(f.handle, key, hv)
	return nil
}

func (f *NetworkedEntity) DeleteSyncedMeta(key string) {
	f.api().DeleteSyncedMetaData(f.handle, key)
}

func (f *NetworkedEntity) HasStreamSyncedMeta(key string) bool {
	return f.api().HasStreamSyncedMetaData(f.handle, key)
}

func (f *NetworkedEntity) StreamSyncedMeta(key string) MValue {
	return f.importValue(f.api().StreamSyncedMetaData(f.handle, key))
}

func (f *NetworkedEntity) SetStreamSyncedMeta(key string, v MValue) error {
	hv, err := f.exportValue(v)
	if err != nil {
		return fmt.Errorf("set stream synced meta %q: %w", key, err)
	}
	f.api().SetStreamSyncedMetaData(f.handle, key, hv)
	return nil
}

func (f *NetworkedEntity) DeleteStreamSyncedMeta(key string) {
	f.api().DeleteStreamSyncedMetaData(f.handle, key)
}

// Player is attached to connected players.
type Player struct{ facet }

func (f *Player) IsConnected() bool     { return f.api().PlayerIsConnected(f.handle) }
func (f *Player) Ping() uint32          { return f.api().PlayerPing(f.handle) }
func (f *Player) IP() string            { return f.api().PlayerIP(f.handle) }
func (f *Player) Name() string          { return f.api().PlayerName(f.handle) }
func (f *Player) SocialID() uint64      { return f.api().PlayerSocialID(f.handle) }
func (f *Player) HwidHash() uint64      { return f.api().PlayerHwidHash(f.handle) }
func (f *Player) HwidExHash() uint64    { return f.api().PlayerHwidExHash(f.handle) }
func (f *Player) AuthToken() string     { return f.api().PlayerAuthToken(f.handle) }
func (f *Player) Health() uint16        { return f.api().PlayerHealth(f.handle) }
func (f *Player) MaxHealth() uint16     { return f.api().PlayerMaxHealth(f.handle) }
func (f *Player) Armor() uint16         { return f.api().PlayerArmor(f.handle) }
func (f *Player) IsDead() bool          { return f.api().PlayerIsDead(f.handle) }
func (f *Player) IsInVehicle() bool     { return f.api().PlayerIsInVehicle(f.handle) }
func (f *Player) Seat() uint8           { return f.api().PlayerSeat(f.handle) }
func (f *Player) CurrentWeapon() uint32 { return f.api().PlayerCurrentWeapon(f.handle) }
func (f *Player) AimPosition() mgl32.Vec3 {
	return f.api().PlayerAimPosition(f.handle)
}

// Spawn respawns the player at pos after delay.
func (f *Player) Spawn(pos mgl32.Vec3, delay time.Duration) {
	f.api().PlayerSpawn(f.handle, pos, delay)
}

func (f *Player) Despawn()                       { f.api().PlayerDespawn(f.handle) }
func (f *Player) SetHealth(health uint16)        { f.api().PlayerSetHealth(f.handle, health) }
func (f *Player) SetMaxHealth(health uint16)     { f.api().PlayerSetMaxHealth(f.handle, health) }
func (f *Player) SetArmor(armor uint16)          { f.api().PlayerSetArmor(f.handle, armor) }
func (f *Player) SetDateTime(t time.Time)        { f.api().PlayerSetDateTime(f.handle, t) }
func (f *Player) SetWeather(weather uint32)      { f.api().PlayerSetWeather(f.handle, weather) }
func (f *Player) RemoveWeapon(weapon uint32)     { f.api().PlayerRemoveWeapon(f.handle, weapon) }
func (f *Player) RemoveAllWeapons()              { f.api().PlayerRemoveAllWeapons(f.handle) }
func (f *Player) SetCurrentWeapon(weapon uint32) { f.api().PlayerSetCurrentWeapon(f.handle, weapon) }
func (f *Player) Kick(reason string)             { f.api().PlayerKick(f.handle, reason) }
func (f *Player) SetModel(model uint32)          { f.api().PlayerSetModel(f.handle, model) }

func (f *Player) GiveWeapon(weapon uint32, ammo int32, selectWeapon bool) {
	f.api().PlayerGiveWeapon(f.handle, weapon, ammo, selectWeapon)
}

// Vehicle returns the vehicle the player is in.
func (f *Player) Vehicle() (EntityID, bool) {
	return f.resolve(KindVehicle, f.api().PlayerVehicle(f.handle))
}

// EntityAimingAt returns the player or vehicle the player is aiming at.
func (f *Player) EntityAimingAt() (EntityID, bool) {
	return f.resolveEntity(f.api().PlayerEntityAimingAt(f.handle))
}

// Emit sends a script event to this player's client.
func (f *Player) Emit(name string, args ...any) error {
	return f.w.emit(f.handle, name, args)
}

// Vehicle is attached to vehicles.
type Vehicle struct{ facet }

// Driver returns the player in the driver seat.
func (f *Vehicle) Driver() (EntityID, bool) {
	return f.resolve(KindPlayer, f.api().VehicleDriver(f.handle))
}

func (f *Vehicle) PrimaryColor() uint8          { return f.api().VehiclePrimaryColor(f.handle) }
func (f *Vehicle) SetPrimaryColor(c uint8)      { f.api().VehicleSetPrimaryColor(f.handle, c) }
func (f *Vehicle) SecondaryColor() uint8        { return f.api().VehicleSecondaryColor(f.handle) }
func (f *Vehicle) SetSecondaryColor(c uint8)    { f.api().VehicleSetSecondaryColor(f.handle, c) }
func (f *Vehicle) NeonColor() color.RGBA        { return f.api().VehicleNeonColor(f.handle) }
func (f *Vehicle) SetNeonColor(c color.RGBA)    { f.api().VehicleSetNeonColor(f.handle, c) }
func (f *Vehicle) LicensePlateText() string     { return f.api().VehicleLicensePlateText(f.handle) }
func (f *Vehicle) IsEngineOn() bool             { return f.api().VehicleIsEngineOn(f.handle) }
func (f *Vehicle) SetEngineOn(on bool)          { f.api().VehicleSetEngineOn(f.handle, on) }
func (f *Vehicle) LockState() uint8             { return f.api().VehicleLockState(f.handle) }
func (f *Vehicle) SetLockState(state uint8)     { f.api().VehicleSetLockState(f.handle, state) }
func (f *Vehicle) DirtLevel() uint8             { return f.api().VehicleDirtLevel(f.handle) }
func (f *Vehicle) SetDirtLevel(level uint8)     { f.api().VehicleSetDirtLevel(f.handle, level) }
func (f *Vehicle) EngineHealth() int32          { return f.api().VehicleEngineHealth(f.handle) }
func (f *Vehicle) SetEngineHealth(h int32)      { f.api().VehicleSetEngineHealth(f.handle, h) }
func (f *Vehicle) BodyHealth() uint32           { return f.api().VehicleBodyHealth(f.handle) }
func (f *Vehicle) SetBodyHealth(h uint32)       { f.api().VehicleSetBodyHealth(f.handle, h) }
func (f *Vehicle) IsDestroyed() bool            { return f.api().VehicleIsDestroyed(f.handle) }
func (f *Vehicle) SetLicensePlateText(s string) { f.api().VehicleSetLicensePlateText(f.handle, s) }
