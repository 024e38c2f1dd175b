package mappy_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/dyn"
	"ssbh-bindings/mappy"
)

type entry struct {
	MeshObjectIndex uint64
	VertexAdjacency []int16
}

type root struct {
	Entries []entry
}

var (
	entryClass = dyn.NewClass("AdjEntryData",
		dyn.Slot{Name: "mesh_object_index", Required: true},
		dyn.Slot{Name: "vertex_adjacency", Default: dyn.EmptyList},
	)
	rootClass = dyn.NewClass("AdjData",
		dyn.Slot{Name: "entries", Default: dyn.EmptyList},
	)

	entryAdapter = mappy.Struct(entryToDynamic, entryToNative)
	rootAdapter  = mappy.Struct(rootToDynamic, rootToNative)
)

func entryToDynamic(tok *dyn.Token, in entry) *dyn.Object {
	obj := entryClass.Alloc(tok)
	mappy.SetField(tok, obj, "mesh_object_index", mappy.Uint[uint64](), in.MeshObjectIndex)
	mappy.SetField(tok, obj, "vertex_adjacency", mappy.Seq(mappy.Int[int16]()), in.VertexAdjacency)

	return obj
}

func entryToNative(tok *dyn.Token, v dyn.Value) (out entry, err error) {
	obj, err := mappy.ObjectOf(v, entryClass)
	if err != nil {
		return out, err
	}

	if out.MeshObjectIndex, err = mappy.Field(tok, obj, "mesh_object_index", mappy.Uint[uint64]()); err != nil {
		return out, err
	}

	if out.VertexAdjacency, err = mappy.Field(tok, obj, "vertex_adjacency", mappy.Seq(mappy.Int[int16]())); err != nil {
		return out, err
	}

	return out, nil
}

func rootToDynamic(tok *dyn.Token, in root) *dyn.Object {
	obj := rootClass.Alloc(tok)
	mappy.SetField(tok, obj, "entries", mappy.Seq(entryAdapter), in.Entries)

	return obj
}

func rootToNative(tok *dyn.Token, v dyn.Value) (out root, err error) {
	obj, err := mappy.ObjectOf(v, rootClass)
	if err != nil {
		return out, err
	}

	if out.Entries, err = mappy.Field(tok, obj, "entries", mappy.Seq(entryAdapter)); err != nil {
		return out, err
	}

	return out, nil
}

func TestStruct_RoundTrip(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	in := root{Entries: []entry{
		{MeshObjectIndex: 0, VertexAdjacency: []int16{-1, 3, 7}},
		{MeshObjectIndex: 1<<64 - 1, VertexAdjacency: []int16{}},
	}}

	got, err := rootAdapter.From(tok, rootAdapter.To(tok, in))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(in, got))
}

func TestSeq_NilBecomesEmptyList(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	a := mappy.Seq(mappy.Int[int16]())

	v := a.To(tok, nil)
	assert.Equal(t, "[]", dyn.Repr(tok, v))

	out, err := a.From(tok, v)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSeq_PermissiveWrite(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	a := mappy.Seq(mappy.Int[int16]())
	arr, err := dyn.NewNDArray(dyn.Int64, []int{3}, []float64{-1, 3, 7})
	require.NoError(t, err)

	inputs := []dyn.Value{
		dyn.NewList(tok, dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7)),
		dyn.Tuple{dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7)},
		arr,
	}

	for _, in := range inputs {
		out, err := a.From(tok, in)
		require.NoError(t, err, dyn.Repr(tok, in))
		assert.Equal(t, []int16{-1, 3, 7}, out)
	}

	for _, in := range []dyn.Value{dyn.Str("abc"), dyn.None, dyn.NewInt(1)} {
		_, err := a.From(tok, in)
		assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.TypeError), spew.Sdump(err))
	}
}

func TestStruct_ErrorPath(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	v := rootAdapter.To(tok, root{Entries: []entry{{}, {}}})

	second, err := v.(*dyn.Object).Get(tok, "entries")
	require.NoError(t, err)
	bad := second.(*dyn.List).At(tok, 1).(*dyn.Object)
	require.NoError(t, bad.Set(tok, "vertex_adjacency", dyn.Tuple{dyn.Str("x")}))

	_, err = rootAdapter.From(tok, v)
	err = mappy.AtRoot(err, "AdjData")
	require.EqualError(t, err, "AdjData.entries[1].vertex_adjacency[0]: 'str' object cannot be interpreted as an integer")

	exc := mappy.ToException(err)
	assert.Equal(t, dyn.TypeError, exc.Kind)
}

func TestUint_Negative(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	obj, err := entryClass.New(tok, dyn.Positional(dyn.NewInt(-3)))
	require.NoError(t, err)

	_, err = entryAdapter.From(tok, obj)
	require.Error(t, err)
	assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.ValueError))

	_, err = entryAdapter.From(tok, rootClass.Alloc(tok))
	require.EqualError(t, err, "expected AdjEntryData, got 'AdjData'")
}

func TestArray_Shape(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	vec4 := mappy.Array(mappy.Float[float32](), func(a *[4]float32) []float32 { return a[:] })
	mat4 := mappy.Array(vec4, func(a *[4][4]float32) [][4]float32 { return a[:] })

	identity := [4][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}

	got, err := mat4.From(tok, mat4.To(tok, identity))
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	flat := make([]float64, 0, 16)
	for _, row := range identity {
		for _, x := range row {
			flat = append(flat, float64(x))
		}
	}

	arr, err := dyn.NewNDArray(dyn.Float32, []int{4, 4}, flat)
	require.NoError(t, err)

	got, err = mat4.From(tok, arr)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	row := func(n int) dyn.Value {
		items := make([]dyn.Value, n)
		for i := range items {
			items[i] = dyn.Float(0)
		}
		return dyn.NewList(tok, items...)
	}

	tests := []struct {
		name string
		in   dyn.Value
		msg  string
	}{
		{"3x3", dyn.NewList(tok, row(3), row(3), row(3)), "expected a sequence of length 4, got 3"},
		{"4x3", dyn.NewList(tok, row(3), row(3), row(3), row(3)), "[0]: expected a sequence of length 4, got 3"},
		{"5x4", dyn.NewList(tok, row(4), row(4), row(4), row(4), row(4)), "expected a sequence of length 4, got 5"},
	}

	for _, tt := range tests {
		_, err := mat4.From(tok, tt.in)
		require.EqualError(t, err, tt.msg, tt.name)
		assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.ValueError), tt.name)
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	a := mappy.Optional(mappy.Uint[uint64]())
	assert.True(t, dyn.IsNone(a.To(tok, nil)))

	out, err := a.From(tok, dyn.None)
	require.NoError(t, err)
	assert.Nil(t, out)

	n := uint64(5)
	out, err = a.From(tok, a.To(tok, &n))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, n, *out)

	_, err = a.From(tok, dyn.Str("5"))
	assert.Error(t, err)
}

type billboard uint32

func TestEnum(t *testing.T) {
	t.Parallel()

	class := dyn.NewEnumClass("BillboardType")
	disabled := class.AddConst("Disabled", 0)
	class.AddConst("YAxisViewPointAligned", 4)
	other := dyn.NewEnumClass("Other")
	other.AddConst("Disabled", 0)

	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	a := mappy.Enum[billboard](class)
	assert.Same(t, disabled, a.To(tok, 0))
	assert.Equal(t, "BillboardType.YAxisViewPointAligned", dyn.Repr(tok, a.To(tok, 4)))
	assert.Equal(t, "9", dyn.Repr(tok, a.To(tok, 9)))

	got, err := a.From(tok, a.To(tok, 4))
	require.NoError(t, err)
	assert.Equal(t, billboard(4), got)

	got, err = a.From(tok, dyn.Str("YAxisViewPointAligned"))
	require.NoError(t, err)
	assert.Equal(t, billboard(4), got)

	_, err = a.From(tok, dyn.Str("Sideways"))
	assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.ValueError))

	_, err = a.From(tok, a.To(tok, 9))
	assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.TypeError))

	c, _ := other.Const("Disabled")
	_, err = a.From(tok, c)
	assert.True(t, dyn.IsKind(mappy.ToException(err), dyn.TypeError))
}

func ExampleSeq() {
	rt := dyn.NewRuntime()
	_ = rt.With(func(tok *dyn.Token) error {
		a := mappy.Seq(mappy.Float[float32]())

		out, err := a.From(tok, dyn.Tuple{dyn.NewInt(1), dyn.Float(0.5), dyn.Bool(true)})
		fmt.Println(out, err)

		_, err = a.From(tok, dyn.Tuple{dyn.NewInt(1), dyn.None})
		fmt.Println(err)
		return nil
	})
	// Output:
	// [1 0.5 1] <nil>
	// [1]: must be real number, not NoneType
}
