// Package adj holds the vertex adjacency family.
package adj

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"ssbh-bindings/ssbhdata/codec"
)

// AdjData is the root of an adjacency file.
type AdjData struct {
	Entries []AdjEntryData `json:"entries"`
}

// AdjEntryData holds the adjacency buffer of one mesh object.
type AdjEntryData struct {
	MeshObjectIndex uint64  `json:"mesh_object_index"`
	VertexAdjacency []int16 `json:"vertex_adjacency"`
}

var (
	ErrTruncated     = errors.New("unexpected end of file")
	ErrInvalidOffset = errors.New("invalid index buffer offset")
	ErrIndexRange    = errors.New("mesh object index out of range")
)

// FromFile reads an adjacency file. .json, .yaml and .yml files use the
// interchange format, every other path the binary layout.
func FromFile(path string) (AdjData, error) {
	var out AdjData

	if codec.FormatOf(path) != codec.FormatUnknown {
		if err := codec.ReadFile(path, &out); err != nil {
			return AdjData{}, err
		}

		return out, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return AdjData{}, err
	}
	defer f.Close()

	out, err = Read(bufio.NewReader(f))
	if err != nil {
		return AdjData{}, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// WriteToFile writes the adjacency data to path, see FromFile for the format.
func (a AdjData) WriteToFile(path string) (err error) {
	if codec.FormatOf(path) != codec.FormatUnknown {
		return codec.WriteFile(path, a)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if err := Write(w, a); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return w.Flush()
}
