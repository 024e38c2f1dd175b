// Package matl holds the material family: per material label the shader and
// its parameters, keyed by ParamId.
package matl

import (
	"ssbh-bindings/ssbhdata/codec"
)

type MatlData struct {
	MajorVersion uint16          `json:"major_version"`
	MinorVersion uint16          `json:"minor_version"`
	Entries      []MatlEntryData `json:"entries"`
}

type MatlEntryData struct {
	MaterialLabel    string                 `json:"material_label"`
	ShaderLabel      string                 `json:"shader_label"`
	BlendStates      []BlendStateParam      `json:"blend_states"`
	Floats           []FloatParam           `json:"floats"`
	Booleans         []BooleanParam         `json:"booleans"`
	Vectors          []Vector4Param         `json:"vectors"`
	RasterizerStates []RasterizerStateParam `json:"rasterizer_states"`
	Samplers         []SamplerParam         `json:"samplers"`
	Textures         []TextureParam         `json:"textures"`
}

type BlendStateParam struct {
	ParamID ParamId        `json:"param_id"`
	Data    BlendStateData `json:"data"`
}

type FloatParam struct {
	ParamID ParamId `json:"param_id"`
	Data    float32 `json:"data"`
}

type BooleanParam struct {
	ParamID ParamId `json:"param_id"`
	Data    bool    `json:"data"`
}

type Vector4Param struct {
	ParamID ParamId    `json:"param_id"`
	Data    [4]float32 `json:"data"`
}

type RasterizerStateParam struct {
	ParamID ParamId             `json:"param_id"`
	Data    RasterizerStateData `json:"data"`
}

type SamplerParam struct {
	ParamID ParamId     `json:"param_id"`
	Data    SamplerData `json:"data"`
}

// TextureParam names a texture file, without extension.
type TextureParam struct {
	ParamID ParamId `json:"param_id"`
	Data    string  `json:"data"`
}

type BlendStateData struct {
	SourceColor           BlendFactor `json:"source_color"`
	DestinationColor      BlendFactor `json:"destination_color"`
	AlphaSampleToCoverage bool        `json:"alpha_sample_to_coverage"`
}

type RasterizerStateData struct {
	FillMode  FillMode `json:"fill_mode"`
	CullMode  CullMode `json:"cull_mode"`
	DepthBias float32  `json:"depth_bias"`
}

// SamplerData describes texture sampling. A nil MaxAnisotropy disables
// anisotropic filtering.
type SamplerData struct {
	Wraps         WrapMode       `json:"wraps"`
	Wrapt         WrapMode       `json:"wrapt"`
	Wrapr         WrapMode       `json:"wrapr"`
	MinFilter     MinFilter      `json:"min_filter"`
	MagFilter     MagFilter      `json:"mag_filter"`
	BorderColor   [4]float32     `json:"border_color"`
	LodBias       float32        `json:"lod_bias"`
	MaxAnisotropy *MaxAnisotropy `json:"max_anisotropy"`
}

// FromFile reads a material file in the interchange format.
func FromFile(path string) (MatlData, error) {
	var out MatlData
	if err := codec.ReadFile(path, &out); err != nil {
		return MatlData{}, err
	}

	return out, nil
}

// WriteToFile writes the materials in the interchange format.
func (m MatlData) WriteToFile(path string) error {
	return codec.WriteFile(path, m)
}
