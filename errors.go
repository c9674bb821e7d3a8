package altecs

import (
	"errors"
	"fmt"
)

// Registry and decoding errors
var (
	ErrNotFound          = errors.New("handle not registered")
	ErrDuplicateHandle   = errors.New("handle already registered")
	ErrUnknownObjectType = errors.New("unrecognised object type")
	ErrNotEntity         = errors.New("object is not a networked entity")
	ErrNilHandle         = errors.New("nil handle")
)

// Store errors
var (
	ErrEntityNotAlive = errors.New("entity is not alive")
	ErrNotNative      = errors.New("entity is not backed by a native object")
	ErrNativeBacked   = errors.New("entity is backed by a native object")
	ErrFacetManaged   = errors.New("facet components are managed by the object registry")
)

// Host and resource errors
var (
	ErrUnknownResource  = errors.New("unknown resource")
	ErrResourceExists   = errors.New("resource already created")
	ErrObjectNotCreated = errors.New("host did not create the object")
	ErrLoaderFailed     = errors.New("module loader failed")
	ErrModuleNotFound   = errors.New("module not found")
	ErrUnsupportedValue = errors.New("unsupported value type")
	ErrSystemPanic      = errors.New("system panicked")
)

// FatalError reports a host protocol violation at the Runtime boundary.
// The host has broken an ordering or lifetime guarantee, so the registry can no
// longer be trusted and the process is expected to terminate after logging it.
type FatalError struct {
	// Op is the callback that detected the violation.
	Op string
	// Resource is the resource handle the callback was invoked for.
	Resource NativeHandle
	// Err is the underlying cause.
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("altecs: fatal in %s (resource %s): %v", e.Op, e.Resource, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// DecodeError reports an event record that referenced an object which cannot
// be resolved. It is always fatal.
type DecodeError struct {
	Type   EventType
	Field  EventField
	Handle NativeHandle
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: field %s: handle %s: %v", e.Type, e.Field, e.Handle, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
