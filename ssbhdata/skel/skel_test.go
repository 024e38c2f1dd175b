package skel_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/ssbhdata/skel"
)

func translation(x, y, z float32) [4][4]float32 {
	return [4][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {x, y, z, 1}}
}

func TestCalculateRelativeTransform(t *testing.T) {
	t.Parallel()

	world := translation(1, 2, 3)

	got, err := skel.CalculateRelativeTransform(world, nil)
	require.NoError(t, err)
	assert.Equal(t, world, got)

	parent := translation(1, 1, 1)
	got, err = skel.CalculateRelativeTransform(world, &parent)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(translation(0, 1, 2), got, cmpopts.EquateApprox(0, 1e-6)))

	var singular [4][4]float32
	_, err = skel.CalculateRelativeTransform(world, &singular)
	assert.ErrorIs(t, err, skel.ErrSingular)
}

func TestCalculateWorldTransform(t *testing.T) {
	t.Parallel()

	zero := uint64(0)
	s := skel.SkelData{Bones: []skel.BoneData{
		{Name: "Trans", Transform: translation(1, 0, 0)},
		{Name: "Rot", Transform: translation(0, 2, 0), ParentIndex: &zero},
	}}

	world, err := s.CalculateWorldTransform(1)
	require.NoError(t, err)
	assert.Equal(t, translation(1, 2, 0), world)

	one := uint64(1)
	s.Bones[0].ParentIndex = &one
	_, err = s.CalculateWorldTransform(1)
	assert.ErrorIs(t, err, skel.ErrCycle)

	for _, parent := range []uint64{2, 1 << 63, math.MaxUint64} {
		s.Bones[0].ParentIndex = &parent
		_, err = s.CalculateWorldTransform(1)
		assert.ErrorIs(t, err, skel.ErrParentIndex, parent)
	}

	_, err = s.CalculateWorldTransform(2)
	assert.ErrorIs(t, err, skel.ErrBoneIndex)
}

func TestBillboardType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "YAxisViewPlaneAligned", skel.YAxisViewPlaneAligned.String())
	assert.Equal(t, "BillboardType(5)", skel.BillboardType(5).String())
	assert.False(t, skel.BillboardType(5).IsValid())

	var b skel.BillboardType
	require.NoError(t, b.UnmarshalText([]byte("Unk3")))
	assert.Equal(t, skel.Unk3, b)
	assert.Error(t, b.UnmarshalText([]byte("Sideways")))
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	zero := uint64(0)
	s := skel.SkelData{MajorVersion: 1, MinorVersion: 0, Bones: []skel.BoneData{
		{Name: "Trans", Transform: translation(1, 0, 0), BillboardType: skel.Disabled},
		{Name: "Rot", Transform: translation(0, 0.5, 0), ParentIndex: &zero, BillboardType: skel.XYAxisViewPlaneAligned},
	}}

	for _, name := range []string{"model.nusktb.json", "model.nusktb.yml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, s.WriteToFile(path))

		back, err := skel.FromFile(path)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(s, back), name)
	}

	err := s.WriteToFile(filepath.Join(t.TempDir(), "model.nusktb"))
	assert.Error(t, err)
}
