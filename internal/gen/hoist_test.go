package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoister(t *testing.T) {
	idents := newIdentSet()
	require.NoError(t, idents.add("skel_data", "mappyAdapter2"))

	h := newHoister("mappyAdapter", idents)

	assert.Equal(t, "BoneDataAdapter", h.adapter("BoneDataAdapter"))
	assert.Equal(t, "mappyAdapter1", h.adapter("mappy.Seq(BoneDataAdapter)"))
	assert.Equal(t, "mappyAdapter3", h.adapter("mappy.Uint[uint16]()"))
	assert.Equal(t, "mappyAdapter1", h.adapter("mappy.Seq(BoneDataAdapter)"))
	assert.Equal(t, "mappyAdapter4", h.adapter("mappy.Optional(mappy.Uint[uint64]())"))

	assert.Equal(t, []adapterVar{
		{Name: "mappyAdapter1", Expr: "mappy.Seq(BoneDataAdapter)"},
		{Name: "mappyAdapter3", Expr: "mappy.Uint[uint16]()"},
		{Name: "mappyAdapter4", Expr: "mappy.Optional(mappy.Uint[uint64]())"},
	}, h.vars)

	assert.ErrorIs(t, idents.add("other_data", "mappyAdapter3"), ErrDuplicateIdentifier)
}
