package altecs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// CollisionShape is attached to collision shapes and checkpoints.
type CollisionShape struct{ facet }

// Type returns the host's shape type.
func (f *CollisionShape) Type() uint8 { return f.api().ColShapeType(f.handle) }

// IsEntityIn reports whether the player or vehicle id is inside the shape.
func (f *CollisionShape) IsEntityIn(id EntityID) bool {
	h, ok := f.handleOf(id)
	return ok && f.api().ColShapeIsEntityIn(f.handle, h)
}

func (f *CollisionShape) IsPointIn(pos mgl32.Vec3) bool {
	return f.api().ColShapeIsPointIn(f.handle, pos)
}

// Checkpoint is attached to checkpoints, alongside CollisionShape.
type Checkpoint struct{ facet }

func (f *Checkpoint) Type() uint8       { return f.api().CheckpointType(f.handle) }
func (f *Checkpoint) Height() float32   { return f.api().CheckpointHeight(f.handle) }
func (f *Checkpoint) Radius() float32   { return f.api().CheckpointRadius(f.handle) }
func (f *Checkpoint) Color() color.RGBA { return f.api().CheckpointColor(f.handle) }

// Blip is attached to map blips.
type Blip struct{ facet }

func (f *Blip) IsGlobal() bool          { return f.api().BlipIsGlobal(f.handle) }
func (f *Blip) BlipType() uint8         { return f.api().BlipType(f.handle) }
func (f *Blip) SetSprite(sprite uint16) { f.api().BlipSetSprite(f.handle, sprite) }
func (f *Blip) SetColor(c uint8)        { f.api().BlipSetColor(f.handle, c) }
func (f *Blip) SetRoute(state bool)     { f.api().BlipSetRoute(f.handle, state) }
func (f *Blip) SetRouteColor(c uint8)   { f.api().BlipSetRouteColor(f.handle, c) }

// Target returns the player the blip is shown to, if it is not global.
func (f *Blip) Target() (EntityID, bool) {
	return f.resolve(KindPlayer, f.api().BlipTarget(f.handle))
}

// AttachedTo returns the entity the blip follows.
func (f *Blip) AttachedTo() (EntityID, bool) {
	return f.resolveEntity(f.api().BlipAttachedTo(f.handle))
}

// VoiceChannel is attached to voice channels. Players are passed as entities
// and translated to their host handles.
type VoiceChannel struct{ facet }

func (f *VoiceChannel) IsSpatial() bool      { return f.api().VoiceChannelIsSpatial(f.handle) }
func (f *VoiceChannel) MaxDistance() float32 { return f.api().VoiceChannelMaxDistance(f.handle) }

func (f *VoiceChannel) HasPlayer(player EntityID) bool {
	h, ok := f.handleOf(player)
	return ok && f.api().VoiceChannelHasPlayer(f.handle, h)
}

func (f *VoiceChannel) AddPlayer(player EntityID) {
	if h, ok := f.handleOf(player); ok {
		f.api().VoiceChannelAddPlayer(f.handle, h)
	}
}

func (f *VoiceChannel) RemovePlayer(player EntityID) {
	if h, ok := f.handleOf(player); ok {
		f.api().VoiceChannelRemovePlayer(f.handle, h)
	}
}

func (f *VoiceChannel) IsPlayerMuted(player EntityID) bool {
	h, ok := f.handleOf(player)
	return ok && f.api().VoiceChannelIsPlayerMuted(f.handle, h)
}

func (f *VoiceChannel) MutePlayer(player EntityID) {
	if h, ok := f.handleOf(player); ok {
		f.api().VoiceChannelMutePlayer(f.handle, h)
	}
}

func (f *VoiceChannel) UnmutePlayer(player EntityID) {
	if h, ok := f.handleOf(player); ok {
		f.api().VoiceChannelUnmutePlayer(f.handle, h)
	}
}
