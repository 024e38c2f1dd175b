// Package mesh holds the mesh family: vertex attributes, indices and skin
// weights per mesh object.
package mesh

import (
	"ssbh-bindings/ssbhdata/codec"
)

type MeshData struct {
	MajorVersion uint16           `json:"major_version"`
	MinorVersion uint16           `json:"minor_version"`
	Objects      []MeshObjectData `json:"objects"`
}

type MeshObjectData struct {
	Name               string          `json:"name"`
	Subindex           uint64          `json:"subindex"`
	ParentBoneName     string          `json:"parent_bone_name"`
	VertexIndices      []uint32        `json:"vertex_indices"`
	Positions          []AttributeData `json:"positions"`
	Normals            []AttributeData `json:"normals"`
	Binormals          []AttributeData `json:"binormals"`
	Tangents           []AttributeData `json:"tangents"`
	TextureCoordinates []AttributeData `json:"texture_coordinates"`
	ColorSets          []AttributeData `json:"color_sets"`
	BoneInfluences     []BoneInfluence `json:"bone_influences"`
}

// AttributeData is a named vertex attribute. Each row of Data holds the
// components of one vertex.
type AttributeData struct {
	Name string      `json:"name"`
	Data [][]float32 `json:"data"`
}

type BoneInfluence struct {
	BoneName      string         `json:"bone_name"`
	VertexWeights []VertexWeight `json:"vertex_weights"`
}

type VertexWeight struct {
	VertexIndex  uint32  `json:"vertex_index"`
	VertexWeight float32 `json:"vertex_weight"`
}

func FromFile(path string) (MeshData, error) {
	var out MeshData
	if err := codec.ReadFile(path, &out); err != nil {
		return MeshData{}, err
	}

	return out, nil
}

func (m MeshData) WriteToFile(path string) error {
	return codec.WriteFile(path, m)
}
