package dyn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/dyn"
)

func TestEqual(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	list := dyn.NewList(tok, dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7))
	arr, err := dyn.NewNDArray(dyn.Int64, []int{3}, []float64{-1, 3, 7})
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b dyn.Value
		want bool
	}{
		{"list and tuple", list, dyn.Tuple{dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7)}, true},
		{"list and array", list, arr, true},
		{"different length", list, dyn.Tuple{dyn.NewInt(-1)}, false},
		{"int and float", dyn.NewInt(2), dyn.Float(2), true},
		{"none", dyn.None, nil, true},
		{"none and zero", dyn.None, dyn.NewInt(0), false},
		{"str", dyn.Str("a"), dyn.Str("a"), true},
		{"str and list", dyn.Str("a"), dyn.NewList(tok, dyn.Str("a")), false},
		{"bool", dyn.Bool(true), dyn.Bool(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dyn.Equal(tok, tt.a, tt.b))
		})
	}
}

func TestInt_Range(t *testing.T) {
	n := dyn.NewUint(1 << 63)

	_, ok := n.Int64()
	assert.False(t, ok)

	u, ok := n.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<63), u)

	_, ok = dyn.NewInt(-1).Uint64()
	assert.False(t, ok)

	var zero dyn.Int
	v, ok := zero.Int64()
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestNDArray(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	_, err := dyn.NewNDArray(dyn.Float32, []int{2, 3}, []float64{1, 2})
	require.Error(t, err)

	arr, err := dyn.NewNDArray(dyn.Float32, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, arr.Shape())
	assert.Equal(t, 2, arr.Len(tok))

	row, ok := arr.At(tok, 1).(*dyn.NDArray)
	require.True(t, ok)
	assert.Equal(t, []int{3}, row.Shape())
	assert.Equal(t, dyn.Float(6), row.At(tok, 2))
}
