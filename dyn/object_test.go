package dyn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/dyn"
)

func entryClass() *dyn.Class {
	return dyn.NewClass("AdjEntryData",
		dyn.Slot{Name: "mesh_object_index", Required: true},
		dyn.Slot{Name: "vertex_adjacency", Default: dyn.EmptyList},
	)
}

func TestClass_New_Defaults(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	cls := entryClass()

	a, err := cls.New(tok, dyn.Positional(dyn.NewInt(3)))
	require.NoError(t, err)

	b, err := cls.New(tok, dyn.Positional(dyn.NewInt(3)))
	require.NoError(t, err)

	idx, err := a.Get(tok, "mesh_object_index")
	require.NoError(t, err)
	assert.True(t, dyn.Equal(tok, dyn.NewInt(3), idx))

	adjA, err := a.Get(tok, "vertex_adjacency")
	require.NoError(t, err)
	adjB, err := b.Get(tok, "vertex_adjacency")
	require.NoError(t, err)

	require.IsType(t, &dyn.List{}, adjA)
	assert.Equal(t, 0, adjA.(*dyn.List).Len(tok))

	// every instance gets its own list
	adjA.(*dyn.List).Append(tok, dyn.NewInt(1))
	assert.Equal(t, 0, adjB.(*dyn.List).Len(tok))
}

func TestClass_New_Errors(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	cls := entryClass()

	_, err := cls.New(tok, dyn.Args{})
	assert.True(t, dyn.IsKind(err, dyn.TypeError))
	assert.Contains(t, err.Error(), "'mesh_object_index'")

	_, err = cls.New(tok, dyn.Positional(dyn.NewInt(1), dyn.NewInt(2)))
	assert.True(t, dyn.IsKind(err, dyn.TypeError))

	_, err = cls.New(tok, dyn.Args{Pos: []dyn.Value{dyn.NewInt(1)}, Kw: map[string]dyn.Value{"bogus": dyn.None}})
	assert.True(t, dyn.IsKind(err, dyn.TypeError))

	_, err = cls.New(tok, dyn.Args{Pos: []dyn.Value{dyn.NewInt(1)}, Kw: map[string]dyn.Value{"mesh_object_index": dyn.NewInt(1)}})
	assert.True(t, dyn.IsKind(err, dyn.TypeError))
}

func TestObject_GetSet(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	obj, err := entryClass().New(tok, dyn.Args{Kw: map[string]dyn.Value{"mesh_object_index": dyn.NewInt(7)}})
	require.NoError(t, err)

	require.NoError(t, obj.Set(tok, "vertex_adjacency", dyn.Tuple{dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7)}))

	v, err := obj.Get(tok, "vertex_adjacency")
	require.NoError(t, err)
	assert.True(t, dyn.Equal(tok, dyn.Tuple{dyn.NewInt(-1), dyn.NewInt(3), dyn.NewInt(7)}, v))

	_, err = obj.Get(tok, "missing")
	assert.True(t, dyn.IsKind(err, dyn.AttributeError))
	assert.True(t, dyn.IsKind(obj.Set(tok, "missing", dyn.None), dyn.AttributeError))
}

func TestEnumClass(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	cls := dyn.NewEnumClass("BillboardType")
	cls.AddConst("Disabled", 0)
	cls.AddConst("XAxisViewPointAligned", 1)

	assert.True(t, cls.IsEnum())

	c, ok := cls.Const("XAxisViewPointAligned")
	require.True(t, ok)
	assert.Equal(t, "BillboardType.XAxisViewPointAligned", dyn.Repr(tok, c))
	assert.True(t, dyn.IsKind(c.Set(tok, "value", dyn.NewInt(5)), dyn.AttributeError))

	_, err := cls.New(tok, dyn.Args{})
	assert.True(t, dyn.IsKind(err, dyn.TypeError))
}

func TestObject_CallMethod(t *testing.T) {
	rt := dyn.NewRuntime()
	tok := rt.Acquire()
	defer tok.Release()

	cls := entryClass()
	cls.AddMethod("index", func(tok *dyn.Token, self *dyn.Object, _ dyn.Args) (dyn.Value, error) {
		return self.Get(tok, "mesh_object_index")
	})

	obj, err := cls.New(tok, dyn.Positional(dyn.NewInt(4)))
	require.NoError(t, err)

	v, err := obj.CallMethod(tok, "index", dyn.Args{})
	require.NoError(t, err)
	assert.Equal(t, "4", dyn.Repr(tok, v))
	assert.Equal(t, []string{"index"}, cls.MethodNames())

	_, err = obj.CallMethod(tok, "nope", dyn.Args{})
	assert.True(t, dyn.IsKind(err, dyn.AttributeError))
}

func TestClass_In(t *testing.T) {
	cls := entryClass().In("ssbh_data_py.adj_data")
	assert.Equal(t, "ssbh_data_py.adj_data.AdjEntryData", cls.QualifiedName())
	assert.Equal(t, "AdjEntryData", entryClass().QualifiedName())
}
