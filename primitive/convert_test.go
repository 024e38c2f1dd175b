package primitive_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/dyn"
	"ssbh-bindings/primitive"
)

func TestSignedFromDynamic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       dyn.Value
		want     int16
		overflow bool
		fail     bool
	}{
		{name: "int", in: dyn.NewInt(-1), want: -1},
		{name: "max", in: dyn.NewInt(32767), want: 32767},
		{name: "bool", in: dyn.Bool(true), want: 1},
		{name: "above range", in: dyn.NewInt(32768), overflow: true, fail: true},
		{name: "huge", in: dyn.NewUint(1 << 63), overflow: true, fail: true},
		{name: "float", in: dyn.Float(1), fail: true},
		{name: "str", in: dyn.Str("1"), fail: true},
		{name: "none", in: dyn.None, fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.SignedFromDynamic[int16](tt.in, primitive.CategoryDefault)
			if !tt.fail {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var cerr *primitive.CoercionError
			require.True(t, errors.As(err, &cerr), spew.Sdump(err))
			assert.Equal(t, tt.overflow, cerr.Overflow)
			assert.Equal(t, primitive.KindInt16, cerr.Kind)
		})
	}
}

func TestUnsignedFromDynamic(t *testing.T) {
	t.Parallel()

	got, err := primitive.UnsignedFromDynamic[uint64](dyn.NewUint(1<<64-1), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<64-1), got)

	_, err = primitive.UnsignedFromDynamic[uint32](dyn.NewInt(-1), primitive.CategoryDefault)
	require.Error(t, err)
	assert.Equal(t, "value out of range for uint32", err.Error())

	_, err = primitive.UnsignedFromDynamic[uint8](dyn.Bool(true), primitive.CategoryExact)
	require.EqualError(t, err, "'bool' object cannot be interpreted as an integer")
}

func TestFloatFromDynamic(t *testing.T) {
	t.Parallel()

	got, err := primitive.FloatFromDynamic[float32](dyn.NewInt(3), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.Equal(t, float32(3), got)

	got, err = primitive.FloatFromDynamic[float32](dyn.Float(0.1), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), got)

	_, err = primitive.FloatFromDynamic[float64](dyn.NewInt(3), primitive.CategoryExact)
	require.EqualError(t, err, "must be real number, not int")

	_, err = primitive.FloatFromDynamic[float64](dyn.Str("3"), primitive.CategoryDefault)
	require.EqualError(t, err, "must be real number, not str")
}

func TestBoolAndStringFromDynamic(t *testing.T) {
	t.Parallel()

	b, err := primitive.BoolFromDynamic(dyn.Bool(true), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = primitive.BoolFromDynamic(dyn.NewInt(1), primitive.CategoryDefault)
	require.EqualError(t, err, "'int' object cannot be converted to 'bool'")

	s, err := primitive.StringFromDynamic(dyn.Str("Bone"), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.Equal(t, "Bone", s)

	_, err = primitive.StringFromDynamic(nil, primitive.CategoryDefault)
	require.EqualError(t, err, "'NoneType' object cannot be converted to 'str'")
}

func TestAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.Allowed(primitive.SourceInt, primitive.KindUint8, primitive.CategoryExact))
	assert.False(t, primitive.Allowed(primitive.SourceFloat, primitive.KindInt32, primitive.CategoryAll))
	assert.False(t, primitive.Allowed(primitive.SourceInt, primitive.KindFloat32, primitive.CategoryNone))
	assert.True(t, primitive.Allowed(primitive.SourceBool, primitive.KindFloat64, primitive.CategoryBoolFloat))
	assert.False(t, primitive.Allowed(primitive.SourceStr, primitive.KindBool, primitive.CategoryAll))
}

func TestSignedFromDynamic_NamedType(t *testing.T) {
	t.Parallel()

	type offset int8

	got, err := primitive.SignedFromDynamic[offset](dyn.NewInt(-128), primitive.CategoryDefault)
	require.NoError(t, err)
	assert.Equal(t, offset(-128), got)

	_, err = primitive.SignedFromDynamic[offset](dyn.NewInt(200), primitive.CategoryDefault)
	require.EqualError(t, err, "value out of range for int8")
}
