package bindings

import (
	"ssbh-bindings/dyn"
	"ssbh-bindings/mappy"
	"ssbh-bindings/ssbhdata/adj"
	"ssbh-bindings/ssbhdata/matl"
	"ssbh-bindings/ssbhdata/mesh"
	"ssbh-bindings/ssbhdata/meshex"
	"ssbh-bindings/ssbhdata/modl"
	"ssbh-bindings/ssbhdata/skel"
)

// functions holds the module functions by "family.function".
var functions = map[string]dyn.Function{
	"adj_data.read_adj":       reader("read_adj", AdjDataError, adj.FromFile, AdjDataToDynamic),
	"modl_data.read_modl":     reader("read_modl", ModlDataError, modl.FromFile, ModlDataToDynamic),
	"skel_data.read_skel":     reader("read_skel", SkelDataError, skel.FromFile, SkelDataToDynamic),
	"mesh_data.read_mesh":     reader("read_mesh", MeshDataError, mesh.FromFile, MeshDataToDynamic),
	"meshex_data.read_meshex": reader("read_meshex", MeshExDataError, meshex.FromFile, MeshExDataToDynamic),
	"matl_data.read_matl":     reader("read_matl", MatlDataError, matl.FromFile, MatlDataToDynamic),

	"skel_data.calculate_relative_transform": calculateRelativeTransform,
	"mesh_data.transform_points":             transformRows("transform_points", mesh.TransformPoints),
	"mesh_data.transform_vectors":            transformRows("transform_vectors", mesh.TransformVectors),
	"mesh_data.calculate_smooth_normals":     calculateSmoothNormals,
	"mesh_data.calculate_tangents_vec4":      calculateTangentsVec4,
}

// methods holds the class methods by "Class.method".
var methods = map[string]dyn.Method{
	"AdjData.save":    saver(AdjDataError, AdjDataToNative, adj.AdjData.WriteToFile),
	"ModlData.save":   saver(ModlDataError, ModlDataToNative, modl.ModlData.WriteToFile),
	"SkelData.save":   saver(SkelDataError, SkelDataToNative, skel.SkelData.WriteToFile),
	"MeshData.save":   saver(MeshDataError, MeshDataToNative, mesh.MeshData.WriteToFile),
	"MeshExData.save": saver(MeshExDataError, MeshExDataToNative, meshex.MeshExData.WriteToFile),
	"MatlData.save":   saver(MatlDataError, MatlDataToNative, matl.MatlData.WriteToFile),

	"SkelData.calculate_world_transform": calculateWorldTransform,
}

// reader returns a module function reading a file into a new root object.
func reader[T any](name string, kind *dyn.ExceptionKind, read func(string) (T, error), to func(*dyn.Token, T) *dyn.Object) dyn.Function {
	return func(tok *dyn.Token, args dyn.Args) (dyn.Value, error) {
		if err := params(name, args, "path"); err != nil {
			return nil, err
		}

		path, err := arg(tok, args, 0, "path", pathAdapter)
		if err != nil {
			return nil, err
		}

		data, err := read(path)
		if err != nil {
			return nil, kind.Wrap(err)
		}

		return to(tok, data), nil
	}
}

// saver returns the save method of a root class: the object is mapped back
// to its native form and written to path.
func saver[T any](kind *dyn.ExceptionKind, from func(*dyn.Token, dyn.Value) (T, error), write func(T, string) error) dyn.Method {
	return func(tok *dyn.Token, self *dyn.Object, args dyn.Args) (dyn.Value, error) {
		if err := params("save", args, "path"); err != nil {
			return nil, err
		}

		path, err := arg(tok, args, 0, "path", pathAdapter)
		if err != nil {
			return nil, err
		}

		data, err := from(tok, self)
		if err != nil {
			return nil, mappy.ToException(mappy.AtRoot(err, self.Class().Name))
		}

		if err := write(data, path); err != nil {
			return nil, kind.Wrap(err)
		}

		return dyn.None, nil
	}
}

func calculateRelativeTransform(tok *dyn.Token, args dyn.Args) (dyn.Value, error) {
	if err := params("calculate_relative_transform", args, "world_transform", "parent_world_transform"); err != nil {
		return nil, err
	}

	world, err := arg(tok, args, 0, "world_transform", matrixAdapter)
	if err != nil {
		return nil, err
	}

	parent, err := arg(tok, args, 1, "parent_world_transform", mappy.Optional(matrixAdapter))
	if err != nil {
		return nil, err
	}

	out, err := skel.CalculateRelativeTransform(world, parent)
	if err != nil {
		return nil, dyn.ValueError.Wrap(err)
	}

	return matrixAdapter.To(tok, out), nil
}

// calculateWorldTransform locates bone in self.bones, by identity first and
// structural equality second, and accumulates the transforms of its parents.
func calculateWorldTransform(tok *dyn.Token, self *dyn.Object, args dyn.Args) (dyn.Value, error) {
	if err := params("calculate_world_transform", args, "bone"); err != nil {
		return nil, err
	}

	bone, _ := args.Lookup(0, "bone")
	if _, err := mappy.ObjectOf(bone, BoneDataClass); err != nil {
		return nil, mappy.ToException(mappy.AtRoot(err, "bone"))
	}

	s, err := SkelDataToNative(tok, self)
	if err != nil {
		return nil, mappy.ToException(mappy.AtRoot(err, self.Class().Name))
	}

	bones, err := self.Get(tok, "bones")
	if err != nil {
		return nil, err
	}

	index := -1

	seq, ok := bones.(dyn.Sequence)
	if !ok {
		return nil, dyn.TypeError.Errorf("bones: expected a sequence, got '%s'", bones.TypeName())
	}

	for i := range seq.Len(tok) {
		if seq.At(tok, i) == bone {
			index = i
			break
		}
	}

	for i := 0; index < 0 && i < seq.Len(tok); i++ {
		if dyn.Equal(tok, seq.At(tok, i), bone) {
			index = i
		}
	}

	if index < 0 {
		return nil, dyn.ValueError.New("bone is not part of the skeleton")
	}

	world, err := s.CalculateWorldTransform(index)
	if err != nil {
		return nil, dyn.ValueError.Wrap(err)
	}

	return matrixAdapter.To(tok, world), nil
}

func transformRows(name string, transform func([][]float32, [4][4]float32) ([][]float32, error)) dyn.Function {
	return func(tok *dyn.Token, args dyn.Args) (dyn.Value, error) {
		if err := params(name, args, "points", "transform"); err != nil {
			return nil, err
		}

		points, err := arg(tok, args, 0, "points", rowsAdapter)
		if err != nil {
			return nil, err
		}

		m, err := arg(tok, args, 1, "transform", matrixAdapter)
		if err != nil {
			return nil, err
		}

		out, err := transform(points, m)
		if err != nil {
			return nil, dyn.ValueError.Wrap(err)
		}

		return rowsAdapter.To(tok, out), nil
	}
}

func calculateSmoothNormals(tok *dyn.Token, args dyn.Args) (dyn.Value, error) {
	if err := params("calculate_smooth_normals", args, "positions", "vertex_indices"); err != nil {
		return nil, err
	}

	positions, err := arg(tok, args, 0, "positions", rowsAdapter)
	if err != nil {
		return nil, err
	}

	indices, err := arg(tok, args, 1, "vertex_indices", indicesAdapter)
	if err != nil {
		return nil, err
	}

	out, err := mesh.CalculateSmoothNormals(positions, indices)
	if err != nil {
		return nil, dyn.ValueError.Wrap(err)
	}

	return vec3Adapter.To(tok, out), nil
}

func calculateTangentsVec4(tok *dyn.Token, args dyn.Args) (dyn.Value, error) {
	names := []string{"positions", "normals", "uvs", "vertex_indices"}
	if err := params("calculate_tangents_vec4", args, names...); err != nil {
		return nil, err
	}

	var rows [3][][]float32

	for i := range rows {
		var err error
		if rows[i], err = arg(tok, args, i, names[i], rowsAdapter); err != nil {
			return nil, err
		}
	}

	indices, err := arg(tok, args, 3, "vertex_indices", indicesAdapter)
	if err != nil {
		return nil, err
	}

	out, err := mesh.CalculateTangentsVec4(rows[0], rows[1], rows[2], indices)
	if err != nil {
		return nil, dyn.ValueError.Wrap(err)
	}

	return vec4Adapter.To(tok, out), nil
}
