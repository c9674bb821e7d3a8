package altecs

import (
	"strings"
)

// Tag constants
const (
	tagName = "altecs"
)

// Tag modifiers
const (
	modOpt = "opt" // Optional (nil if missing)
	modRel = "rel" // Relation traversal
	modRes = "res" // Resource injection
	modInj = "inj" // Application-wide injection
)

// InjectKind represents how a system field is filled before the system runs.
type InjectKind int

const (
	// InjectWorld indicates a *World field
	InjectWorld InjectKind = iota
	// InjectApplication indicates an *Application field
	InjectApplication
	// InjectEntity indicates an EntityID field receiving the current entity
	InjectEntity
	// InjectComponent indicates a component field
	InjectComponent
	// InjectRelation indicates a relation traversal field
	InjectRelation
	// InjectRelationSlice indicates a relation set traversal field (slice)
	InjectRelationSlice
	// InjectResource indicates a bundle resource field
	InjectResource
	// InjectInjection indicates an application-wide injection field
	InjectInjection
	// InjectPhantomWith indicates a With[T] phantom type
	InjectPhantomWith
	// InjectPhantomWithout indicates a Without[T] phantom type
	InjectPhantomWithout
	// InjectPayload indicates a field left to the system
	InjectPayload
)

// String returns the string representation of InjectKind.
func (k InjectKind) String() string {
	switch k {
	case InjectWorld:
		return "World"
	case InjectApplication:
		return "Application"
	case InjectEntity:
		return "Entity"
	case InjectComponent:
		return "Component"
	case InjectRelation:
		return "Relation"
	case InjectRelationSlice:
		return "RelationSlice"
	case InjectResource:
		return "Resource"
	case InjectInjection:
		return "Injection"
	case InjectPhantomWith:
		return "PhantomWith"
	case InjectPhantomWithout:
		return "PhantomWithout"
	case InjectPayload:
		return "Payload"
	default:
		return "Unknown"
	}
}

// TagInfo holds parsed tag information.
type TagInfo struct {
	Optional bool // altecs:"opt"
	Relation bool // altecs:"rel"
	Resource bool // altecs:"res"
	Inject   bool // altecs:"inj"
}

// parseTag parses an altecs struct tag.
func parseTag(tag string) TagInfo {
	info := TagInfo{}
	if tag == "" {
		return info
	}

	for part := range strings.SplitSeq(tag, ",") {
		switch strings.TrimSpace(part) {
		case modOpt:
			info.Optional = true
		case modRel:
			info.Relation = true
		case modRes:
			info.Resource = true
		case modInj:
			info.Inject = true
		}
	}

	return info
}
