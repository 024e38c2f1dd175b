package matl_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/ssbhdata/matl"
)

func TestEnums(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CustomVector3", matl.ParamIdCustomVector3.String())
	assert.Equal(t, "Nearest", matl.MinFilterNearest.String())
	assert.Equal(t, "Nearest", matl.MagFilterNearest.String())
	assert.Equal(t, "ParamId(1)", matl.ParamId(1).String())

	text, err := matl.ParamIdBlendState0.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "BlendState0", string(text))

	_, err = matl.ParamId(1).MarshalText()
	assert.ErrorIs(t, err, matl.ErrInvalidEnum)

	var w matl.WrapMode
	require.NoError(t, w.UnmarshalText([]byte("ClampToBorder")))
	assert.Equal(t, matl.WrapModeClampToBorder, w)
	assert.ErrorIs(t, w.UnmarshalText([]byte("WrapModeRepeat")), matl.ErrInvalidEnum)

	var a matl.MaxAnisotropy
	require.NoError(t, a.UnmarshalText([]byte("Sixteen")))
	assert.Equal(t, matl.MaxAnisotropy(16), a)
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	aniso := matl.MaxAnisotropyTwo
	m := matl.MatlData{MajorVersion: 1, MinorVersion: 6, Entries: []matl.MatlEntryData{{
		MaterialLabel: "skin",
		ShaderLabel:   "SFX_PBS_0100000008008269_opaque",
		Floats:        []matl.FloatParam{{ParamID: matl.ParamIdCustomFloat1, Data: 0.4}},
		Samplers: []matl.SamplerParam{{ParamID: matl.ParamIdSampler1, Data: matl.SamplerData{
			Wraps: matl.WrapModeRepeat, MinFilter: matl.MinFilterLinearMipmapLinear, MagFilter: matl.MagFilterLinear,
			BorderColor: [4]float32{1, 1, 1, 1}, MaxAnisotropy: &aniso,
		}}},
		Textures: []matl.TextureParam{{ParamID: matl.ParamIdTexture4, Data: "/common/shader/sfxpbs/default_normal"}},
	}, {
		MaterialLabel: "eye",
		ShaderLabel:   "SFX_PBS_010002000800824f_opaque",
	}}}

	for _, name := range []string{"model.numatb.json", "model.numatb.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, m.WriteToFile(path))

		back, err := matl.FromFile(path)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(m.Entries[0], back.Entries[0]), name)
		assert.Equal(t, "eye", back.Entries[1].MaterialLabel, name)
		assert.NotNil(t, back.Entries[1].Floats, name)
	}

	m.Entries[0].Textures[0].ParamID = 1
	assert.ErrorIs(t, m.WriteToFile(filepath.Join(t.TempDir(), "model.numatb.json")), matl.ErrInvalidEnum)
}
