// Package meshex holds the mesh extension family: per mesh object bounding
// spheres and draw flags.
package meshex

import (
	"ssbh-bindings/ssbhdata/codec"
)

type MeshExData struct {
	MeshObjectGroups []MeshObjectGroupData `json:"mesh_object_groups"`
}

// MeshObjectGroupData groups the mesh objects sharing a name. BoundingSphere
// is (x, y, z, radius).
type MeshObjectGroupData struct {
	BoundingSphere     [4]float32   `json:"bounding_sphere"`
	MeshObjectFullName string       `json:"mesh_object_full_name"`
	MeshObjectName     string       `json:"mesh_object_name"`
	EntryFlags         []EntryFlags `json:"entry_flags"`
}

type EntryFlags struct {
	DrawModel  bool `json:"draw_model"`
	CastShadow bool `json:"cast_shadow"`
}

func FromFile(path string) (MeshExData, error) {
	var out MeshExData
	if err := codec.ReadFile(path, &out); err != nil {
		return MeshExData{}, err
	}

	return out, nil
}

func (m MeshExData) WriteToFile(path string) error {
	return codec.WriteFile(path, m)
}
