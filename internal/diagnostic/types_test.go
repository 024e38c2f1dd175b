package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("unused_default", "default is never used", "skel_data", "BoneData.name")
	assert.False(t, d.HasErrors())

	d.AddError("field_not_found", "no native field \"transfrom\"", "skel_data", "BoneData.transfrom", "transform")

	var other Diagnostics
	other.AddError("unknown_type", "type \"Bone\" not found", "skel_data", "Bone")
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{"field_not_found", "unknown_type"}, d.Codes())
	assert.Equal(t,
		`[skel_data] BoneData.transfrom: [field_not_found] no native field "transfrom" (did you mean transform?); `+
			`[skel_data] Bone: [unknown_type] type "Bone" not found`,
		d.Error().Error())
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())

	var list List
	require.ErrorAs(t, d.Error(), &list)
	assert.Len(t, list, 2)
	assert.Equal(t, "[unknown_type] type \"Bone\" not found", Diagnostic{Code: "unknown_type", Message: "type \"Bone\" not found"}.String())
}
