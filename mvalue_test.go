package altecs

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		v    MValue
		want string
	}{
		{NoneValue{}, ""},
		{BoolValue(true), "true"},
		{IntValue(-3), "-3L"},
		{UintValue(3), "3uL"},
		{DoubleValue(1.25), "1.2"},
		{StringValue(`a "b"`), `"a \"b\""`},
		{Vector3Value{1, 2.5, -3}, "Vector3(1.00, 2.50, -3.00)"},
		{RGBAValue{R: 1, G: 2, B: 3, A: 255}, "RGBA(1, 2, 3, 255)"},
		{ByteArrayValue{1, 2}, "ByteArray(2)"},
		{ListValue{IntValue(1), StringValue("x")}, `[1L, "x"]`},
		{DictValue{"b": BoolValue(false), "a": IntValue(1)}, "{a: 1L, b: false}"},
		{ObjectValue{Handle: 0x10}, "Object(0x10)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.v.String())
	}
}

func TestValueOf(t *testing.T) {
	id := EntityID{index: 2, generation: 1}
	got, err := Values(nil, true, 7, uint8(1), float32(0.5), "s", mgl32.Vec3{1, 2, 3},
		color.RGBA{A: 1}, id, []any{1, "x"}, map[string]any{"k": 2}, []byte{9})
	require.NoError(t, err)
	assert.Equal(t, []MValue{
		NilValue{},
		BoolValue(true),
		IntValue(7),
		UintValue(1),
		DoubleValue(0.5),
		StringValue("s"),
		Vector3Value{1, 2, 3},
		RGBAValue{A: 1},
		EntityValue{ID: id},
		ListValue{IntValue(1), StringValue("x")},
		DictValue{"k": IntValue(2)},
		ByteArrayValue{9},
	}, got)

	v, err := ValueOf(StringValue("kept"))
	require.NoError(t, err)
	assert.Equal(t, StringValue("kept"), v)

	_, err = Values(1, struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	_, err = ValueOf([]any{make(chan int)})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestMapValueRecurses(t *testing.T) {
	in := DictValue{"list": ListValue{ObjectValue{Handle: 1}, IntValue(2)}}
	out, err := mapValue(in, func(MValue) (MValue, error) { return StringValue("obj"), nil })
	require.NoError(t, err)
	assert.Equal(t, DictValue{"list": ListValue{StringValue("obj"), IntValue(2)}}, out)
	assert.Equal(t, ObjectValue{Handle: 1}, in["list"].(ListValue)[0], "input is not modified")

	out, err = mapValue(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, NoneValue{}, out)
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint32(0xB779A091), Hash("adder"))
	assert.Equal(t, uint32(0x1B06D571), Hash("weapon_pistol"))
	assert.Equal(t, Hash("adder"), Hash("ADDER"))
	assert.Equal(t, uint32(0x705E61F2), Hash("mp_m_freemode_01"))
}
