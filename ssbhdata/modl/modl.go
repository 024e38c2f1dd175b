// Package modl holds the model index family: the files and mesh object to
// material assignments that make up a model.
package modl

import (
	"ssbh-bindings/ssbhdata/codec"
)

type ModlData struct {
	MajorVersion      uint16          `json:"major_version"`
	MinorVersion      uint16          `json:"minor_version"`
	ModelName         string          `json:"model_name"`
	SkeletonFileName  string          `json:"skeleton_file_name"`
	MaterialFileNames []string        `json:"material_file_names"`
	AnimationFileName *string         `json:"animation_file_name"`
	MeshFileName      string          `json:"mesh_file_name"`
	Entries           []ModlEntryData `json:"entries"`
}

type ModlEntryData struct {
	MeshObjectName     string `json:"mesh_object_name"`
	MeshObjectSubindex uint64 `json:"mesh_object_subindex"`
	MaterialLabel      string `json:"material_label"`
}

func FromFile(path string) (ModlData, error) {
	var out ModlData
	if err := codec.ReadFile(path, &out); err != nil {
		return ModlData{}, err
	}

	return out, nil
}

func (m ModlData) WriteToFile(path string) error {
	return codec.WriteFile(path, m)
}
