package altecs

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// The host announces every object it creates through OnCreateBaseObject
// before the constructor returns, so the constructors below find the new
// entity in the registry right away.

// CreateVehicle asks the host to create a vehicle and returns its entity.
func (w *World) CreateVehicle(model uint32, pos, rot mgl32.Vec3) (EntityID, error) {
	return w.created("vehicle", KindVehicle, w.api.CreateVehicle(model, pos, rot))
}

// CreateColShapeSphere creates a spherical collision shape.
func (w *World) CreateColShapeSphere(pos mgl32.Vec3, radius float32) (EntityID, error) {
	return w.created("sphere", KindCollisionShape, w.api.CreateColShapeSphere(pos, radius))
}

// CreateColShapeCube creates a box-shaped collision shape between two corners.
func (w *World) CreateColShapeCube(start, end mgl32.Vec3) (EntityID, error) {
	return w.created("cube", KindCollisionShape, w.api.CreateColShapeCube(start, end))
}

// CreateColShapeRectangle creates an infinitely high rectangle at height z.
func (w *World) CreateColShapeRectangle(x1, y1, x2, y2, z float32) (EntityID, error) {
	return w.created("rectangle", KindCollisionShape, w.api.CreateColShapeRectangle(x1, y1, x2, y2, z))
}

// CreateColShapeCircle creates an infinitely high circle.
func (w *World) CreateColShapeCircle(pos mgl32.Vec3, radius float32) (EntityID, error) {
	return w.created("circle", KindCollisionShape, w.api.CreateColShapeCircle(pos, radius))
}

// CreateColShapeCylinder creates a cylinder standing on pos.
func (w *World) CreateColShapeCylinder(pos mgl32.Vec3, radius, height float32) (EntityID, error) {
	return w.created("cylinder", KindCollisionShape, w.api.CreateColShapeCylinder(pos, radius, height))
}

// CreateCheckpoint creates a checkpoint. Checkpoints are also collision
// shapes and fire EventCollisionShape.
func (w *World) CreateCheckpoint(typ uint8, pos mgl32.Vec3, radius, height float32, c color.RGBA) (EntityID, error) {
	return w.created("checkpoint", KindCheckpoint, w.api.CreateCheckpoint(typ, pos, radius, height, c))
}

// CreateBlip creates a blip. A zero target creates a global blip; otherwise
// the blip is only shown to the target player.
func (w *World) CreateBlip(target EntityID, typ uint8, pos mgl32.Vec3) (EntityID, error) {
	var th NativeHandle
	if !target.IsZero() {
		h, kind, ok := w.objects.Handle(target)
		if !ok || kind != KindPlayer {
			return EntityID{}, fmt.Errorf("create blip for %s: %w", target, ErrNotNative)
		}
		th = h
	}
	return w.created("blip", KindBlip, w.api.CreateBlip(th, typ, pos))
}

// CreateVoiceChannel creates a voice channel.
func (w *World) CreateVoiceChannel(spatial bool, maxDistance float32) (EntityID, error) {
	return w.created("voice channel", KindVoiceChannel, w.api.CreateVoiceChannel(spatial, maxDistance))
}

func (w *World) created(what string, kind ObjectKind, h NativeHandle) (EntityID, error) {
	if h.IsNil() {
		return EntityID{}, fmt.Errorf("create %s: %w", what, ErrObjectNotCreated)
	}
	id, err := w.objects.Resolve(kind, h)
	if err != nil {
		return EntityID{}, fmt.Errorf("create %s %s: %w: %w", what, h, ErrObjectNotCreated, err)
	}
	return id, nil
}

// Destroy asks the host to destroy the object mirrored by id. The entity is
// removed at the next Maintain after the host confirms the removal.
func (w *World) Destroy(id EntityID) error {
	h, _, ok := w.objects.Handle(id)
	if !ok {
		return fmt.Errorf("destroy %s: %w", id, ErrNotNative)
	}
	w.api.DestroyBaseObject(h)
	return nil
}

// EmitClient sends a script event to one player's client.
func (w *World) EmitClient(target EntityID, name string, args ...any) error {
	h, kind, ok := w.objects.Handle(target)
	if !ok || kind != KindPlayer {
		return fmt.Errorf("emit %s to %s: %w", name, target, ErrNotNative)
	}
	return w.emit(h, name, args)
}

// EmitAllClients sends a script event to every connected client.
func (w *World) EmitAllClients(name string, args ...any) error {
	return w.emit(0, name, args)
}

// emit boxes args, turns entity references back into host handles and
// triggers the client event.
func (w *World) emit(target NativeHandle, name string, args []any) error {
	values, err := Values(args...)
	if err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}
	for i, v := range values {
		hv, err := w.objects.toHost(v)
		if err != nil {
			return fmt.Errorf("emit %s: argument %d: %w", name, i, err)
		}
		values[i] = hv
	}
	w.api.TriggerClientEvent(target, name, values)
	return nil
}
