package main

import (
	"errors"
	"reflect"

	"ssbh-bindings/ssbhdata/adj"
	"ssbh-bindings/ssbhdata/matl"
	"ssbh-bindings/ssbhdata/mesh"
	"ssbh-bindings/ssbhdata/meshex"
	"ssbh-bindings/ssbhdata/modl"
	"ssbh-bindings/ssbhdata/skel"
)

var ErrNoRoot = errors.New("no native root type for family")

// roots maps family names to the native root types described by the schema command.
var roots = map[string]reflect.Type{
	"adj_data":    reflect.TypeFor[adj.AdjData](),
	"modl_data":   reflect.TypeFor[modl.ModlData](),
	"skel_data":   reflect.TypeFor[skel.SkelData](),
	"mesh_data":   reflect.TypeFor[mesh.MeshData](),
	"meshex_data": reflect.TypeFor[meshex.MeshExData](),
	"matl_data":   reflect.TypeFor[matl.MatlData](),
}
