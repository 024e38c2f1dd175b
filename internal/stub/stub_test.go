package stub_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssbh-bindings/internal/analyze"
	"ssbh-bindings/internal/plan"
	"ssbh-bindings/internal/registry"
	"ssbh-bindings/internal/stub"
	"ssbh-bindings/ssbhdata/skel"
)

func skelFamily() *plan.Family {
	return &plan.Family{
		Name:    "skel_data",
		Module:  "ssbh_data_py.skel_data",
		Package: "ssbh-bindings/ssbhdata/skel",
		PkgName: "skel",
		Error:   "SkelDataError",
		Root:    "SkelData",
		Functions: []registry.Function{{
			Name:    "read_skel",
			Params:  []registry.Param{{Name: "path", Type: "str"}},
			Returns: "SkelData",
		}},
		Types: []*plan.Type{
			{
				Name: "SkelData",
				Fields: []*plan.Field{
					{Slot: "major_version", PyType: "int"},
					{Slot: "bones", PyType: "List[BoneData]"},
				},
				Methods: []registry.Function{{
					Name:    "save",
					Params:  []registry.Param{{Name: "path", Type: "str"}},
					Returns: "None",
				}},
			},
			{
				Name: "BoneData",
				Fields: []*plan.Field{
					{Slot: "name", PyType: "str", Required: true},
					{Slot: "parent_index", PyType: "Optional[int]", Required: true},
					{Slot: "billboard_type", PyType: "BillboardType"},
				},
			},
		},
		Enums: []*plan.Enum{{
			Name: "BillboardType",
			Variants: []analyze.Variant{
				{Name: "Disabled", Value: 0},
				{Name: "XAxisViewPointAligned", Value: 1},
			},
		}},
	}
}

const skelStub = `# File automatically generated by ssbhgen.
# Changes made to this file will not be saved.
from typing import List, Tuple, Any, Optional, Union, ClassVar


def read_skel(path: str) -> SkelData: ...


class SkelData:
    major_version: int
    bones: List[BoneData]

    def __init__(self) -> None: ...

    def save(self, path: str) -> None: ...


class BoneData:
    name: str
    parent_index: Optional[int]
    billboard_type: BillboardType

    def __init__(self, name: str, parent_index: Optional[int]) -> None: ...


class BillboardType:
    name: str
    value: int

    Disabled: ClassVar[BillboardType]
    XAxisViewPointAligned: ClassVar[BillboardType]
`

func TestRender(t *testing.T) {
	assert.Equal(t, skelStub, string(stub.Render(skelFamily())))
}

func TestGenerate(t *testing.T) {
	adj := &plan.Family{
		Name:  "adj_data",
		Types: []*plan.Type{{Name: "AdjData"}},
	}

	p := &plan.Plan{Families: []*plan.Family{skelFamily(), adj}}

	files, err := stub.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "skel_data.pyi", files[0].Filename)
	assert.Equal(t, stub.Render(skelFamily()), files[0].Content)
	assert.Equal(t, "adj_data.pyi", files[1].Filename)
	assert.Equal(t, stub.Header+"\n\nclass AdjData:\n    def __init__(self) -> None: ...\n", string(files[1].Content))
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Generate(ctx, &plan.Plan{Families: []*plan.Family{skelFamily()}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSchema(t *testing.T) {
	fam := skelFamily()
	assert.Equal(t, "skel_data.schema.json", stub.SchemaFilename(fam))

	data, err := stub.Schema(fam, reflect.TypeFor[*skel.SkelData]())
	require.NoError(t, err)

	var doc struct {
		Title string `json:"title"`
		Defs  map[string]struct {
			Properties map[string]struct {
				Type string `json:"type"`
				Enum []any  `json:"enum"`
			} `json:"properties"`
		} `json:"$defs"`
	}

	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ssbh_data_py.skel_data.SkelData", doc.Title)

	bone, ok := doc.Defs["BoneData"]
	require.True(t, ok, string(data))
	assert.Contains(t, bone.Properties, "transform")

	billboard := bone.Properties["billboard_type"]
	assert.Equal(t, "string", billboard.Type)
	assert.Equal(t, []any{"Disabled", "XAxisViewPointAligned"}, billboard.Enum)

	_, err = stub.Schema(fam, reflect.TypeFor[skel.BoneData]())
	assert.ErrorIs(t, err, stub.ErrRootMismatch)
}
