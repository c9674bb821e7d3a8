package altecs

import (
	"reflect"
)

// With is a phantom type that indicates a component must exist for the system to run.
// The component is not injected into the field; it is only used for filtering.
//
// Usage:
//
//	type ReviveSystem struct {
//	    Entity altecs.EntityID
//	    _      altecs.With[altecs.Player] // Only run for players
//	}
type With[T any] struct{}

// Without is a phantom type that indicates a component must NOT exist for the system to run.
//
// Usage:
//
//	type AfkSystem struct {
//	    Player *altecs.Player
//	    _      altecs.Without[Admin] // Skip admins
//	}
type Without[T any] struct{}

// PhantomTypeInfo provides component type information for phantom types.
type PhantomTypeInfo interface {
	ComponentType() reflect.Type
	IsWithout() bool
}

func (With[T]) ComponentType() reflect.Type    { return reflect.TypeFor[T]() }
func (With[T]) IsWithout() bool                { return false }
func (Without[T]) ComponentType() reflect.Type { return reflect.TypeFor[T]() }
func (Without[T]) IsWithout() bool             { return true }

var phantomTypeInfoType = reflect.TypeFor[PhantomTypeInfo]()

// getPhantomInfo extracts component type and kind from a phantom type.
func getPhantomInfo(t reflect.Type) (compType reflect.Type, isWithout bool, ok bool) {
	if !t.Implements(phantomTypeInfoType) {
		return nil, false, false
	}
	v := reflect.New(t).Elem().Interface().(PhantomTypeInfo)
	return v.ComponentType(), v.IsWithout(), true
}
