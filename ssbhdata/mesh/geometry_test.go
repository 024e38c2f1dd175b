package mesh_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/ssbhdata/mesh"
)

var scaleTranslate = [4][4]float32{
	{2, 0, 0, 0},
	{0, 2, 0, 0},
	{0, 0, 2, 0},
	{1, 2, 3, 1},
}

func TestTransformPoints(t *testing.T) {
	t.Parallel()

	got, err := mesh.TransformPoints([][]float32{{1, 1, 1}, {0, 0, 0, 7}}, scaleTranslate)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{3, 4, 5}, {1, 2, 3, 7}}, got)

	got, err = mesh.TransformVectors([][]float32{{1, 1, 1}}, scaleTranslate)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 2, 2}}, got)

	_, err = mesh.TransformPoints([][]float32{{1, 1}}, scaleTranslate)
	assert.ErrorIs(t, err, mesh.ErrComponents)
}

func TestCalculateSmoothNormals(t *testing.T) {
	t.Parallel()

	positions := [][]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	got, err := mesh.CalculateSmoothNormals(positions, []uint32{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}, got)

	_, err = mesh.CalculateSmoothNormals(positions, []uint32{0, 1})
	assert.ErrorIs(t, err, mesh.ErrIndexCount)

	_, err = mesh.CalculateSmoothNormals(positions, []uint32{0, 1, 3})
	assert.ErrorIs(t, err, mesh.ErrIndexRange)
}

func TestCalculateTangentsVec4(t *testing.T) {
	t.Parallel()

	positions := [][]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := [][]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	uvs := [][]float32{{0, 0}, {1, 0}, {0, 1}}

	got, err := mesh.CalculateTangentsVec4(positions, normals, uvs, []uint32{0, 1, 2})
	require.NoError(t, err)
	for _, tangent := range got {
		assert.Equal(t, [4]float32{1, 0, 0, 1}, tangent)
	}

	flipped := [][]float32{{0, 0}, {1, 0}, {0, -1}}
	got, err = mesh.CalculateTangentsVec4(positions, normals, flipped, []uint32{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(-1), got[0][3])

	_, err = mesh.CalculateTangentsVec4(positions, normals[:2], uvs, []uint32{0, 1, 2})
	assert.ErrorIs(t, err, mesh.ErrLength)

	short := [][]float32{{0, 0}, {1, 0}, {0, 1}}
	_, err = mesh.CalculateTangentsVec4(short, short, uvs, []uint32{0, 1, 2})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "positions: "), err.Error())

	_, err = mesh.CalculateTangentsVec4(positions, short, uvs, []uint32{0, 1, 2})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "normals: "), err.Error())
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	m := mesh.MeshData{MajorVersion: 1, MinorVersion: 10, Objects: []mesh.MeshObjectData{{
		Name:           "body",
		Subindex:       1,
		ParentBoneName: "Hip",
		VertexIndices:  []uint32{0, 1, 2},
		Positions:      []mesh.AttributeData{{Name: "Position0", Data: [][]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}},
		BoneInfluences: []mesh.BoneInfluence{{BoneName: "Hip", VertexWeights: []mesh.VertexWeight{{VertexIndex: 2, VertexWeight: 0.5}}}},
	}}}

	path := filepath.Join(t.TempDir(), "model.numshb.json")
	require.NoError(t, m.WriteToFile(path))

	back, err := mesh.FromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(m, back))
}
