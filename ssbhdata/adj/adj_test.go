package adj_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/ssbhdata/adj"
)

func le(values ...any) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}

	return buf.Bytes()
}

var twoEntries = le(
	uint32(2),
	int32(0), uint32(0),
	int32(3), uint32(4),
	[]int16{1, 2, -1, 5, 6},
)

func TestRead(t *testing.T) {
	t.Parallel()

	got, err := adj.Read(bytes.NewReader(twoEntries))
	require.NoError(t, err)

	want := adj.AdjData{Entries: []adj.AdjEntryData{
		{MeshObjectIndex: 0, VertexAdjacency: []int16{1, 2}},
		{MeshObjectIndex: 3, VertexAdjacency: []int16{-1, 5, 6}},
	}}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestWrite_Canonical(t *testing.T) {
	t.Parallel()

	padded := append(append([]byte{}, twoEntries...), 0xff)

	for name, in := range map[string][]byte{"canonical": twoEntries, "padded": padded} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := adj.Read(bytes.NewReader(in))
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, adj.Write(&out, data))
			assert.Equal(t, twoEntries, out.Bytes())
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, adj.ErrTruncated},
		{"missing headers", le(uint32(2), int32(0), uint32(0)), adj.ErrTruncated},
		{"odd offset", le(uint32(1), int32(0), uint32(1), []int16{1}), adj.ErrInvalidOffset},
		{"offset past end", le(uint32(1), int32(0), uint32(8), []int16{1}), adj.ErrInvalidOffset},
		{"decreasing offsets", le(uint32(2), int32(0), uint32(4), int32(1), uint32(0), []int16{1, 2}), adj.ErrInvalidOffset},
		{"negative index", le(uint32(1), int32(-1), uint32(0)), adj.ErrIndexRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := adj.Read(bytes.NewReader(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWrite_IndexRange(t *testing.T) {
	t.Parallel()

	err := adj.Write(&bytes.Buffer{}, adj.AdjData{Entries: []adj.AdjEntryData{{MeshObjectIndex: 1 << 31}}})
	assert.ErrorIs(t, err, adj.ErrIndexRange)
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "model.adjb")
	require.NoError(t, os.WriteFile(src, twoEntries, 0o600))

	data, err := adj.FromFile(src)
	require.NoError(t, err)

	for _, name := range []string{"copy.adjb", "copy.json", "copy.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, data.WriteToFile(path))

		back, err := adj.FromFile(path)
		require.NoError(t, err, name)
		assert.Empty(t, cmp.Diff(data, back), name)
	}

	written, err := os.ReadFile(filepath.Join(dir, "copy.adjb"))
	require.NoError(t, err)
	assert.Equal(t, twoEntries, written)

	canonical, err := os.ReadFile(filepath.Join(dir, "copy.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[{"mesh_object_index":0,"vertex_adjacency":[1,2]},{"mesh_object_index":3,"vertex_adjacency":[-1,5,6]}]}`, string(canonical))

	_, err = adj.FromFile(filepath.Join(dir, "missing.adjb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
