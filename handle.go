package altecs

import "strconv"

// NativeHandle is an opaque reference to an object owned by the host.
// It is compared by value and passed back to the NativeAPI; it is never
// dereferenced. The zero handle is the host's null reference.
type NativeHandle uint64

// IsNil reports whether h is the null handle.
func (h NativeHandle) IsNil() bool {
	return h == 0
}

// String returns the handle formatted as a hexadecimal address.
func (h NativeHandle) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}

// ObjectKind is the host's base object type tag.
// Only the kinds below are mirrored; any other tag is unrecognised.
type ObjectKind uint8

const (
	KindPlayer ObjectKind = iota
	KindVehicle
	KindBlip
	KindVoiceChannel
	KindCollisionShape
	KindCheckpoint

	// kindCount is the number of mirrored kinds.
	kindCount
)

// Valid reports whether k is one of the mirrored kinds.
func (k ObjectKind) Valid() bool {
	return k < kindCount
}

// IsEntity reports whether objects of kind k are networked entities.
func (k ObjectKind) IsEntity() bool {
	return k == KindPlayer || k == KindVehicle
}

// String returns the string representation of the kind.
func (k ObjectKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindVehicle:
		return "Vehicle"
	case KindBlip:
		return "Blip"
	case KindVoiceChannel:
		return "VoiceChannel"
	case KindCollisionShape:
		return "CollisionShape"
	case KindCheckpoint:
		return "Checkpoint"
	default:
		return "ObjectKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Facets returns the facet set attached to objects of kind k, in attach order.
// It returns nil for unrecognised kinds.
func (k ObjectKind) Facets() []Facet {
	switch k {
	case KindPlayer:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetWorldObject, FacetNetworkedEntity, FacetPlayer}
	case KindVehicle:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetWorldObject, FacetNetworkedEntity, FacetVehicle}
	case KindBlip:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetWorldObject, FacetBlip}
	case KindVoiceChannel:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetVoiceChannel}
	case KindCollisionShape:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetWorldObject, FacetCollisionShape}
	case KindCheckpoint:
		return []Facet{FacetRefCountable, FacetBaseObject, FacetWorldObject, FacetCollisionShape, FacetCheckpoint}
	default:
		return nil
	}
}

// Facet names one native interface mirrored as a component.
type Facet uint8

const (
	FacetRefCountable Facet = iota
	FacetBaseObject
	FacetWorldObject
	FacetNetworkedEntity
	FacetPlayer
	FacetVehicle
	FacetBlip
	FacetVoiceChannel
	FacetCollisionShape
	FacetCheckpoint
)

// String returns the string representation of the facet.
func (f Facet) String() string {
	switch f {
	case FacetRefCountable:
		return "RefCountable"
	case FacetBaseObject:
		return "BaseObject"
	case FacetWorldObject:
		return "WorldObject"
	case FacetNetworkedEntity:
		return "NetworkedEntity"
	case FacetPlayer:
		return "Player"
	case FacetVehicle:
		return "Vehicle"
	case FacetBlip:
		return "Blip"
	case FacetVoiceChannel:
		return "VoiceChannel"
	case FacetCollisionShape:
		return "CollisionShape"
	case FacetCheckpoint:
		return "Checkpoint"
	default:
		return "Facet(" + strconv.Itoa(int(f)) + ")"
	}
}
