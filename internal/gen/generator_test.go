package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/internal/analyze"
	"ssbh-bindings/internal/plan"
	"ssbh-bindings/internal/registry"
)

func skelPlan() *plan.Plan {
	return &plan.Plan{
		Module: "ssbh_data_py",
		Families: []*plan.Family{{
			Name:      "skel_data",
			Module:    "ssbh_data_py.skel_data",
			Package:   "ssbh-bindings/ssbhdata/skel",
			PkgName:   "skel",
			Error:     "SkelDataError",
			Root:      "SkelData",
			Functions: []registry.Function{{Name: "read_skel"}},
			Types: []*plan.Type{
				{
					Name:    "SkelData",
					GoType:  "skel.SkelData",
					Methods: []registry.Function{{Name: "save"}},
					Fields: []*plan.Field{
						{
							GoName: "MajorVersion", Slot: "major_version", Container: analyze.ContainerScalar,
							GoType: "uint16", Adapter: "mappy.Uint[uint16]()", PyType: "int", Value: "uint16(1)",
						},
						{
							GoName: "Bones", Slot: "bones", Container: analyze.ContainerSequence,
							GoType: "[]skel.BoneData", Adapter: "mappy.Seq(BoneDataAdapter)", PyType: "List[BoneData]",
							DefaultFunc: "dyn.EmptyList",
						},
					},
				},
				{
					Name:   "BoneData",
					GoType: "skel.BoneData",
					Fields: []*plan.Field{
						{
							GoName: "Name", Slot: "name", Container: analyze.ContainerScalar,
							GoType: "string", Adapter: "mappy.String[string]()", PyType: "str", Required: true,
						},
						{
							GoName: "Label", Slot: "label", Container: analyze.ContainerScalar,
							GoType: "string", Adapter: "mappy.String[string]()", PyType: "str", Value: `string("")`,
						},
						{
							GoName: "BillboardType", Slot: "billboard_type", Container: analyze.ContainerEnumerated,
							GoType: "skel.BillboardType", Adapter: "BillboardTypeAdapter", PyType: "BillboardType",
							Value: "skel.Disabled",
						},
					},
				},
			},
			Enums: []*plan.Enum{{
				Name:   "BillboardType",
				GoType: "skel.BillboardType",
				Variants: []analyze.Variant{
					{Name: "Disabled", Value: 0},
					{Name: "XAxisViewPointAligned", Value: 1},
				},
			}},
		}},
	}
}

func generate(t *testing.T, config GeneratorConfig, p *plan.Plan) string {
	t.Helper()

	files, err := NewGenerator(config).Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, config.Filename, files[0].Filename)

	return string(files[0].Content)
}

func TestGenerator_Generate(t *testing.T) {
	content := generate(t, DefaultGeneratorConfig(), skelPlan())

	assert.True(t, strings.HasPrefix(content, "// Code generated by ssbhgen. DO NOT EDIT.\n"))
	assert.Contains(t, content, "package bindings")
	assert.Contains(t, content, `"ssbh-bindings/dyn"`)
	assert.Contains(t, content, `"ssbh-bindings/mappy"`)
	assert.Contains(t, content, `"ssbh-bindings/ssbhdata/skel"`)

	// exception kind
	assert.Contains(t, content, `SkelDataError = dyn.NewExceptionKind("ssbh_data_py.skel_data", "SkelDataError", nil)`)

	// hoisted adapters, shared by identical spellings
	assert.Contains(t, content, "mappyAdapter1 = mappy.Uint[uint16]()")
	assert.Contains(t, content, "mappyAdapter2 = mappy.Seq(BoneDataAdapter)")
	assert.Contains(t, content, "mappyAdapter3 = mappy.String[string]()")
	assert.Equal(t, 1, strings.Count(content, "mappy.String[string]()"))
	assert.NotContains(t, content, "mappyAdapter4")

	// classes
	assert.Contains(t, content, `var SkelDataClass = dyn.NewClass("SkelData",`)
	assert.Contains(t, content, `dyn.Slot{Name: "major_version", Default: mappy.Default(mappyAdapter1, uint16(1))},`)
	assert.Contains(t, content, `dyn.Slot{Name: "bones", Default: dyn.EmptyList},`)
	assert.Contains(t, content, `dyn.Slot{Name: "name", Required: true},`)
	assert.Contains(t, content, `dyn.Slot{Name: "label", Default: mappy.Default(mappyAdapter3, string(""))},`)
	assert.Contains(t, content, `dyn.Slot{Name: "billboard_type", Default: mappy.Default(BillboardTypeAdapter, skel.Disabled)},`)
	assert.Contains(t, content, `).In("ssbh_data_py.skel_data")`)

	// enum
	assert.Contains(t, content, "var BillboardTypeAdapter = mappy.Enum[skel.BillboardType](BillboardTypeClass)")
	assert.Contains(t, content, `c := dyn.NewEnumClass("BillboardType").In("ssbh_data_py.skel_data")`)
	assert.Contains(t, content, `c.AddConst("XAxisViewPointAligned", int64(skel.XAxisViewPointAligned))`)

	// converters
	assert.Contains(t, content, "var BoneDataAdapter = mappy.Struct(BoneDataToDynamic, BoneDataToNative)")
	assert.Contains(t, content, "func SkelDataToDynamic(tok *dyn.Token, in skel.SkelData) *dyn.Object {")
	assert.Contains(t, content, `mappy.SetField(tok, obj, "bones", mappyAdapter2, in.Bones)`)
	assert.Contains(t, content, "func SkelDataToNative(tok *dyn.Token, v dyn.Value) (out skel.SkelData, err error) {")
	assert.Contains(t, content, `if out.Bones, err = mappy.Field(tok, obj, "bones", mappyAdapter2); err != nil {`)
	assert.Contains(t, content, "// BoneDataToNative converts an instance of BoneData into skel.BoneData.")

	// metadata
	assert.Contains(t, content, "var Families = []FamilyInfo{")
	assert.Contains(t, content, `Functions: []string{"read_skel"},`)
	assert.Contains(t, content, `Methods: []string{"save"},`)
	assert.Contains(t, content, `{Name: "bones", Type: "List[BoneData]"},`)
	assert.Contains(t, content, "{Class: BillboardTypeClass},")
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.GenerateComments = false
	config.PackageName = "other"

	content := generate(t, config, skelPlan())

	assert.Contains(t, content, "package other")
	assert.NotContains(t, content, "// SkelDataClass is")
	assert.NotContains(t, content, "// Families lists")
}

func TestGenerator_Generate_EmptyStruct(t *testing.T) {
	p := skelPlan()
	p.Families[0].Types = append(p.Families[0].Types, &plan.Type{Name: "Marker", GoType: "skel.Marker"})

	content := generate(t, DefaultGeneratorConfig(), p)

	assert.Contains(t, content, "_, err = mappy.ObjectOf(v, MarkerClass)")
	assert.Contains(t, content, `var MarkerClass = dyn.NewClass("Marker").In("ssbh_data_py.skel_data")`)
}

func TestGenerator_Generate_AdapterNames(t *testing.T) {
	p := skelPlan()
	p.Families[0].Error = "mappyAdapter1"

	content := generate(t, DefaultGeneratorConfig(), p)

	assert.Contains(t, content, `mappyAdapter1 = dyn.NewExceptionKind("ssbh_data_py.skel_data", "mappyAdapter1", nil)`)
	assert.Contains(t, content, "mappyAdapter2 = mappy.Uint[uint16]()")
	assert.NotContains(t, content, "mappyAdapter1 = mappy.")
}

func TestGenerator_Generate_Errors(t *testing.T) {
	t.Run("plan with errors", func(t *testing.T) {
		p := skelPlan()
		p.Diagnostics.AddError("type_not_found", "type \"Bone\" not found", "skel_data", "Bone")

		_, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
		require.ErrorIs(t, err, ErrPlanHasErrors)
		assert.Contains(t, err.Error(), "type_not_found")
	})

	t.Run("identifier clash between families", func(t *testing.T) {
		p := skelPlan()
		other := *p.Families[0]
		other.Name = "other_data"
		other.Error = "OtherDataError"
		p.Families = append(p.Families, &other)

		_, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
		require.ErrorIs(t, err, ErrDuplicateIdentifier)
		assert.Contains(t, err.Error(), "BillboardTypeClass")
	})

	t.Run("unformattable output", func(t *testing.T) {
		p := skelPlan()
		p.Families[0].Types[0].Fields[0].Adapter = "mappy.Uint[uint16]("

		config := DefaultGeneratorConfig()
		config.OutputDir = t.TempDir()

		_, err := NewGenerator(config).Generate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formatting code")
		assert.FileExists(t, filepath.Join(config.OutputDir, "zz_generated.mappy.unformatted.go"))
	})
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dir, dirPerm))

	sidecar := filepath.Join(dir, "zz_generated.mappy.unformatted.go")
	require.NoError(t, os.WriteFile(sidecar, []byte("broken"), filePerm))

	files := []GeneratedFile{
		{Filename: "zz_generated.mappy.go", Content: []byte("package bindings\n")},
		{Filename: "adj_data.pyi", Content: []byte("class AdjData:\n")},
	}
	require.NoError(t, WriteFiles(files, dir))

	got, err := os.ReadFile(filepath.Join(dir, "zz_generated.mappy.go"))
	require.NoError(t, err)
	assert.Equal(t, "package bindings\n", string(got))
	assert.FileExists(t, filepath.Join(dir, "adj_data.pyi"))
	assert.NoFileExists(t, sidecar)
}
