package altecs

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ValueKind is the type tag of an MValue.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueNil
	ValueBool
	ValueInt
	ValueUint
	ValueDouble
	ValueString
	ValueList
	ValueDict
	ValueBaseObject
	ValueVector3
	ValueRGBA
	ValueByteArray
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "None"
	case ValueNil:
		return "Nil"
	case ValueBool:
		return "Bool"
	case ValueInt:
		return "Int"
	case ValueUint:
		return "Uint"
	case ValueDouble:
		return "Double"
	case ValueString:
		return "String"
	case ValueList:
		return "List"
	case ValueDict:
		return "Dict"
	case ValueBaseObject:
		return "BaseObject"
	case ValueVector3:
		return "Vector3"
	case ValueRGBA:
		return "RGBA"
	case ValueByteArray:
		return "ByteArray"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MValue is a boxed value exchanged with the host: script event arguments,
// meta data, and client event payloads. The set of implementations is closed.
//
// Object references cross the host boundary as ObjectValue and are resolved to
// EntityValue before they reach user code; EmitClient converts them back.
type MValue interface {
	Kind() ValueKind
	String() string
	mvalue()
}

type (
	// NoneValue is an absent value.
	NoneValue struct{}
	// NilValue is an explicit null.
	NilValue struct{}
	// BoolValue is a boolean.
	BoolValue bool
	// IntValue is a signed 64-bit integer.
	IntValue int64
	// UintValue is an unsigned 64-bit integer.
	UintValue uint64
	// DoubleValue is a 64-bit float.
	DoubleValue float64
	// StringValue is a string.
	StringValue string
	// ListValue is an ordered list of values.
	ListValue []MValue
	// DictValue maps string keys to values.
	DictValue map[string]MValue
	// Vector3Value is a position or direction.
	Vector3Value mgl32.Vec3
	// RGBAValue is a color.
	RGBAValue color.RGBA
	// ByteArrayValue is raw bytes.
	ByteArrayValue []byte
	// ObjectValue is a base object reference as the host delivers it.
	ObjectValue struct{ Handle NativeHandle }
	// EntityValue is a base object reference resolved to a local entity.
	EntityValue struct{ ID EntityID }
)

func (NoneValue) Kind() ValueKind      { return ValueNone }
func (NilValue) Kind() ValueKind       { return ValueNil }
func (BoolValue) Kind() ValueKind      { return ValueBool }
func (IntValue) Kind() ValueKind       { return ValueInt }
func (UintValue) Kind() ValueKind      { return ValueUint }
func (DoubleValue) Kind() ValueKind    { return ValueDouble }
func (StringValue) Kind() ValueKind    { return ValueString }
func (ListValue) Kind() ValueKind      { return ValueList }
func (DictValue) Kind() ValueKind      { return ValueDict }
func (Vector3Value) Kind() ValueKind   { return ValueVector3 }
func (RGBAValue) Kind() ValueKind      { return ValueRGBA }
func (ByteArrayValue) Kind() ValueKind { return ValueByteArray }
func (ObjectValue) Kind() ValueKind    { return ValueBaseObject }
func (EntityValue) Kind() ValueKind    { return ValueBaseObject }

func (NoneValue) mvalue()      {}
func (NilValue) mvalue()       {}
func (BoolValue) mvalue()      {}
func (IntValue) mvalue()       {}
func (UintValue) mvalue()      {}
func (DoubleValue) mvalue()    {}
func (StringValue) mvalue()    {}
func (ListValue) mvalue()      {}
func (DictValue) mvalue()      {}
func (Vector3Value) mvalue()   {}
func (RGBAValue) mvalue()      {}
func (ByteArrayValue) mvalue() {}
func (ObjectValue) mvalue()    {}
func (EntityValue) mvalue()    {}

// String renders values the way the host console prints them.
func (NoneValue) String() string        { return "" }
func (NilValue) String() string         { return "" }
func (v BoolValue) String() string      { return strconv.FormatBool(bool(v)) }
func (v IntValue) String() string       { return strconv.FormatInt(int64(v), 10) + "L" }
func (v UintValue) String() string      { return strconv.FormatUint(uint64(v), 10) + "uL" }
func (v DoubleValue) String() string    { return strconv.FormatFloat(float64(v), 'f', 1, 64) }
func (v StringValue) String() string    { return strconv.Quote(string(v)) }
func (v ByteArrayValue) String() string { return fmt.Sprintf("ByteArray(%d)", len(v)) }
func (v ObjectValue) String() string    { return "Object(" + v.Handle.String() + ")" }
func (v EntityValue) String() string    { return v.ID.String() }

func (v Vector3Value) String() string {
	return fmt.Sprintf("Vector3(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}

func (v RGBAValue) String() string {
	return fmt.Sprintf("RGBA(%d, %d, %d, %d)", v.R, v.G, v.B, v.A)
}

func (v ListValue) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v DictValue) String() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ValueOf boxes a plain Go value.
// MValues pass through unchanged; nil becomes NilValue.
func ValueOf(v any) (MValue, error) {
	switch v := v.(type) {
	case nil:
		return NilValue{}, nil
	case MValue:
		return v, nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(v), nil
	case int8:
		return IntValue(v), nil
	case int16:
		return IntValue(v), nil
	case int32:
		return IntValue(v), nil
	case int64:
		return IntValue(v), nil
	case uint:
		return UintValue(v), nil
	case uint8:
		return UintValue(v), nil
	case uint16:
		return UintValue(v), nil
	case uint32:
		return UintValue(v), nil
	case uint64:
		return UintValue(v), nil
	case float32:
		return DoubleValue(v), nil
	case float64:
		return DoubleValue(v), nil
	case string:
		return StringValue(v), nil
	case []byte:
		return ByteArrayValue(v), nil
	case mgl32.Vec3:
		return Vector3Value(v), nil
	case color.RGBA:
		return RGBAValue(v), nil
	case EntityID:
		return EntityValue{ID: v}, nil
	case []any:
		list := make(ListValue, len(v))
		for i, e := range v {
			mv, err := ValueOf(e)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = mv
		}
		return list, nil
	case map[string]any:
		dict := make(DictValue, len(v))
		for k, e := range v {
			mv, err := ValueOf(e)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			dict[k] = mv
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Values boxes each argument with ValueOf.
func Values(args ...any) ([]MValue, error) {
	out := make([]MValue, len(args))
	for i, a := range args {
		mv, err := ValueOf(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = mv
	}
	return out, nil
}

// mapValue rebuilds v with fn applied to every object reference, recursing into
// lists and dicts. Values without references are returned as-is.
func mapValue(v MValue, fn func(MValue) (MValue, error)) (MValue, error) {
	switch t := v.(type) {
	case ObjectValue, EntityValue:
		return fn(t)
	case ListValue:
		out := make(ListValue, len(t))
		for i, e := range t {
			mv, err := mapValue(e, fn)
			if err != nil {
				return nil, err
			}
			out[i] = mv
		}
		return out, nil
	case DictValue:
		out := make(DictValue, len(t))
		for k, e := range t {
			mv, err := mapValue(e, fn)
			if err != nil {
				return nil, err
			}
			out[k] = mv
		}
		return out, nil
	case nil:
		return NoneValue{}, nil
	default:
		return v, nil
	}
}
