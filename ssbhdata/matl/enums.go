package matl

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidEnum = errors.New("invalid enum value")

//go:generate go tool stringer -type=ParamId -trimprefix=ParamId -output=paramid_string.go

// ParamId identifies a material parameter.
type ParamId uint64

const (
	ParamIdTexture0         ParamId = 0x5C
	ParamIdTexture1         ParamId = 0x5D
	ParamIdTexture2         ParamId = 0x5E
	ParamIdTexture3         ParamId = 0x5F
	ParamIdTexture4         ParamId = 0x60
	ParamIdSampler0         ParamId = 0x6C
	ParamIdSampler1         ParamId = 0x6D
	ParamIdSampler2         ParamId = 0x6E
	ParamIdSampler3         ParamId = 0x6F
	ParamIdSampler4         ParamId = 0x70
	ParamIdCustomVector0    ParamId = 0x98
	ParamIdCustomVector1    ParamId = 0x99
	ParamIdCustomVector2    ParamId = 0x9A
	ParamIdCustomVector3    ParamId = 0x9B
	ParamIdCustomFloat0     ParamId = 0xC0
	ParamIdCustomFloat1     ParamId = 0xC1
	ParamIdCustomFloat2     ParamId = 0xC2
	ParamIdCustomFloat3     ParamId = 0xC3
	ParamIdCustomBoolean0   ParamId = 0xE8
	ParamIdCustomBoolean1   ParamId = 0xE9
	ParamIdCustomBoolean2   ParamId = 0xEA
	ParamIdCustomBoolean3   ParamId = 0xEB
	ParamIdRasterizerState0 ParamId = 0x117
	ParamIdBlendState0      ParamId = 0x118
)

// ParamIds lists the variants in declaration order.
var ParamIds = []ParamId{
	ParamIdTexture0,
	ParamIdTexture1,
	ParamIdTexture2,
	ParamIdTexture3,
	ParamIdTexture4,
	ParamIdSampler0,
	ParamIdSampler1,
	ParamIdSampler2,
	ParamIdSampler3,
	ParamIdSampler4,
	ParamIdCustomVector0,
	ParamIdCustomVector1,
	ParamIdCustomVector2,
	ParamIdCustomVector3,
	ParamIdCustomFloat0,
	ParamIdCustomFloat1,
	ParamIdCustomFloat2,
	ParamIdCustomFloat3,
	ParamIdCustomBoolean0,
	ParamIdCustomBoolean1,
	ParamIdCustomBoolean2,
	ParamIdCustomBoolean3,
	ParamIdRasterizerState0,
	ParamIdBlendState0,
}

func (v ParamId) MarshalText() ([]byte, error) { return marshalEnum(v, ParamIds) }

func (v *ParamId) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, ParamIds) }

//go:generate go tool stringer -type=FillMode -trimprefix=FillMode -output=fillmode_string.go

// FillMode selects how polygons are rasterized.
type FillMode uint32

const (
	FillModeLine  FillMode = 0
	FillModeSolid FillMode = 1
)

// FillModes lists the variants in declaration order.
var FillModes = []FillMode{
	FillModeLine,
	FillModeSolid,
}

func (v FillMode) MarshalText() ([]byte, error) { return marshalEnum(v, FillModes) }

func (v *FillMode) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, FillModes) }

//go:generate go tool stringer -type=CullMode -trimprefix=CullMode -output=cullmode_string.go

// CullMode selects the culled polygon faces.
type CullMode uint32

const (
	CullModeBack     CullMode = 0
	CullModeFront    CullMode = 1
	CullModeDisabled CullMode = 2
)

// CullModes lists the variants in declaration order.
var CullModes = []CullMode{
	CullModeBack,
	CullModeFront,
	CullModeDisabled,
}

func (v CullMode) MarshalText() ([]byte, error) { return marshalEnum(v, CullModes) }

func (v *CullMode) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, CullModes) }

//go:generate go tool stringer -type=BlendFactor -trimprefix=BlendFactor -output=blendfactor_string.go

// BlendFactor is a source or destination blend factor.
type BlendFactor uint32

const (
	BlendFactorZero                     BlendFactor = 0
	BlendFactorOne                      BlendFactor = 1
	BlendFactorSourceAlpha              BlendFactor = 2
	BlendFactorDestinationAlpha         BlendFactor = 3
	BlendFactorSourceColor              BlendFactor = 4
	BlendFactorDestinationColor         BlendFactor = 5
	BlendFactorOneMinusSourceAlpha      BlendFactor = 6
	BlendFactorOneMinusDestinationAlpha BlendFactor = 7
	BlendFactorOneMinusSourceColor      BlendFactor = 8
	BlendFactorOneMinusDestinationColor BlendFactor = 9
	BlendFactorSourceAlphaSaturate      BlendFactor = 10
)

// BlendFactors lists the variants in declaration order.
var BlendFactors = []BlendFactor{
	BlendFactorZero,
	BlendFactorOne,
	BlendFactorSourceAlpha,
	BlendFactorDestinationAlpha,
	BlendFactorSourceColor,
	BlendFactorDestinationColor,
	BlendFactorOneMinusSourceAlpha,
	BlendFactorOneMinusDestinationAlpha,
	BlendFactorOneMinusSourceColor,
	BlendFactorOneMinusDestinationColor,
	BlendFactorSourceAlphaSaturate,
}

func (v BlendFactor) MarshalText() ([]byte, error) { return marshalEnum(v, BlendFactors) }

func (v *BlendFactor) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, BlendFactors) }

//go:generate go tool stringer -type=WrapMode -trimprefix=WrapMode -output=wrapmode_string.go

// WrapMode selects texture addressing outside [0, 1].
type WrapMode uint32

const (
	WrapModeRepeat         WrapMode = 0
	WrapModeClampToEdge    WrapMode = 1
	WrapModeMirroredRepeat WrapMode = 2
	WrapModeClampToBorder  WrapMode = 3
)

// WrapModes lists the variants in declaration order.
var WrapModes = []WrapMode{
	WrapModeRepeat,
	WrapModeClampToEdge,
	WrapModeMirroredRepeat,
	WrapModeClampToBorder,
}

func (v WrapMode) MarshalText() ([]byte, error) { return marshalEnum(v, WrapModes) }

func (v *WrapMode) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, WrapModes) }

//go:generate go tool stringer -type=MinFilter -trimprefix=MinFilter -output=minfilter_string.go

// MinFilter is the minification filter.
type MinFilter uint32

const (
	MinFilterNearest             MinFilter = 0
	MinFilterLinearMipmapLinear  MinFilter = 1
	MinFilterLinearMipmapLinear2 MinFilter = 2
)

// MinFilters lists the variants in declaration order.
var MinFilters = []MinFilter{
	MinFilterNearest,
	MinFilterLinearMipmapLinear,
	MinFilterLinearMipmapLinear2,
}

func (v MinFilter) MarshalText() ([]byte, error) { return marshalEnum(v, MinFilters) }

func (v *MinFilter) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, MinFilters) }

//go:generate go tool stringer -type=MagFilter -trimprefix=MagFilter -output=magfilter_string.go

// MagFilter is the magnification filter.
type MagFilter uint32

const (
	MagFilterNearest MagFilter = 0
	MagFilterLinear  MagFilter = 1
	MagFilterLinear2 MagFilter = 2
)

// MagFilters lists the variants in declaration order.
var MagFilters = []MagFilter{
	MagFilterNearest,
	MagFilterLinear,
	MagFilterLinear2,
}

func (v MagFilter) MarshalText() ([]byte, error) { return marshalEnum(v, MagFilters) }

func (v *MagFilter) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, MagFilters) }

//go:generate go tool stringer -type=MaxAnisotropy -trimprefix=MaxAnisotropy -output=maxanisotropy_string.go

// MaxAnisotropy is the anisotropic filtering level.
type MaxAnisotropy uint32

const (
	MaxAnisotropyOne     MaxAnisotropy = 1
	MaxAnisotropyTwo     MaxAnisotropy = 2
	MaxAnisotropyFour    MaxAnisotropy = 4
	MaxAnisotropyEight   MaxAnisotropy = 8
	MaxAnisotropySixteen MaxAnisotropy = 16
)

// MaxAnisotropys lists the variants in declaration order.
var MaxAnisotropys = []MaxAnisotropy{
	MaxAnisotropyOne,
	MaxAnisotropyTwo,
	MaxAnisotropyFour,
	MaxAnisotropyEight,
	MaxAnisotropySixteen,
}

func (v MaxAnisotropy) MarshalText() ([]byte, error) { return marshalEnum(v, MaxAnisotropys) }

func (v *MaxAnisotropy) UnmarshalText(text []byte) error { return unmarshalEnum(v, text, MaxAnisotropys) }

type enum interface {
	~uint32 | ~uint64
	fmt.Stringer
}

func marshalEnum[T enum](v T, all []T) ([]byte, error) {
	if !slices.Contains(all, v) {
		return nil, fmt.Errorf("%w: %T(%d)", ErrInvalidEnum, v, uint64(v))
	}

	return []byte(v.String()), nil
}

func unmarshalEnum[T enum](v *T, text []byte, all []T) error {
	for _, candidate := range all {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}

	return fmt.Errorf("%w: %T %q", ErrInvalidEnum, *v, text)
}
