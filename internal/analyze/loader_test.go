package analyze

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	skelPkg   = "ssbh-bindings/ssbhdata/skel"
	adjPkg    = "ssbh-bindings/ssbhdata/adj"
	meshexPkg = "ssbh-bindings/ssbhdata/meshex"
)

func fieldByName(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(skelPkg, adjPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, skelPkg)
	assert.Contains(t, graph.Packages, adjPkg)

	assert.Contains(t, graph.Types, TypeID{PkgPath: skelPkg, Name: "BoneData"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: adjPkg, Name: "AdjEntryData"})
}

func TestAnalyzer_FieldOrder(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(adjPkg)
	require.NoError(t, err)

	entry, err := analyzer.GetStruct(adjPkg, "AdjEntryData")
	require.NoError(t, err)

	var names []string
	for _, f := range entry.Fields {
		names = append(names, f.SlotName())
	}

	assert.Equal(t, []string{"mesh_object_index", "vertex_adjacency"}, names)
}

func TestAnalyzer_Containers(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(skelPkg)
	require.NoError(t, err)

	bone, err := analyzer.GetStruct(skelPkg, "BoneData")
	require.NoError(t, err)

	cases := map[string]ContainerEnum{
		"Name":          ContainerScalar,
		"Transform":     ContainerFixed,
		"ParentIndex":   ContainerOptional,
		"BillboardType": ContainerEnumerated,
	}

	for name, want := range cases {
		f := fieldByName(t, bone, name)
		assert.Equal(t, want, Dispatch(f.Type), "field %s: %s", name, spew.Sdump(f.Type.Kind))
	}

	transform := fieldByName(t, bone, "Transform").Type
	assert.Equal(t, TypeKindArray, transform.Kind)
	assert.EqualValues(t, 4, transform.Len)
	assert.EqualValues(t, 4, transform.ElemType.Len)

	skelData, err := analyzer.GetStruct(skelPkg, "SkelData")
	require.NoError(t, err)

	bones := fieldByName(t, skelData, "Bones").Type
	assert.Equal(t, ContainerSequence, Dispatch(bones))
	assert.Equal(t, ContainerNested, Dispatch(bones.ElemType))
}

func TestAnalyzer_EnumVariants(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(skelPkg)
	require.NoError(t, err)

	billboard := graph.GetType(TypeID{PkgPath: skelPkg, Name: "BillboardType"})
	require.NotNil(t, billboard)
	assert.Equal(t, TypeKindEnum, billboard.Kind)

	want := []Variant{
		{Name: "Disabled", GoName: "Disabled", Value: 0},
		{Name: "XAxisViewPointAligned", GoName: "XAxisViewPointAligned", Value: 1},
		{Name: "YAxisViewPointAligned", GoName: "YAxisViewPointAligned", Value: 2},
		{Name: "Unk3", GoName: "Unk3", Value: 3},
		{Name: "XYAxisViewPointAligned", GoName: "XYAxisViewPointAligned", Value: 4},
		{Name: "YAxisViewPlaneAligned", GoName: "YAxisViewPlaneAligned", Value: 6},
		{Name: "XYAxisViewPlaneAligned", GoName: "XYAxisViewPlaneAligned", Value: 8},
	}
	assert.Equal(t, want, billboard.Variants)
}

func TestVariantName(t *testing.T) {
	assert.Equal(t, "Nearest", variantName("MinFilter", "MinFilterNearest"))
	assert.Equal(t, "Disabled", variantName("BillboardType", "Disabled"))
	assert.Equal(t, "MinFilter", variantName("MinFilter", "MinFilter"))
	assert.Equal(t, "Mode3D", variantName("Mode", "Mode3D"))
	assert.Equal(t, "Modest", variantName("Mode", "Modest"))
}

func TestAnalyzer_GetStruct_Errors(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(skelPkg)
	require.NoError(t, err)

	_, err = analyzer.GetStruct(skelPkg, "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = analyzer.GetStruct(skelPkg, "BillboardType")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind: enum")
}

func TestAnalyzer_ExternalPackage(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(meshexPkg)
	require.NoError(t, err)

	group, err := analyzer.GetStruct(meshexPkg, "MeshObjectGroupData")
	require.NoError(t, err)

	sphere := fieldByName(t, group, "BoundingSphere").Type
	assert.Equal(t, ContainerFixed, Dispatch(sphere))
	assert.Equal(t, "[4]float32", NewTypeStringer().TypeString(sphere))
}

func TestAnalyzer_LoadPackages_Error(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages("ssbh-bindings/ssbhdata/does-not-exist")
	require.Error(t, err)
}
