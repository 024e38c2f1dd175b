package bindings

import (
	"slices"
	"strings"

	"ssbh-bindings/dyn"
	"ssbh-bindings/mappy"
)

var (
	pathAdapter    = mappy.String[string]()
	matrixAdapter  = mappy.Array[[4][4]float32](mappy.Array[[4]float32](mappy.Float[float32](), func(a *[4]float32) []float32 { return a[:] }), func(a *[4][4]float32) [][4]float32 { return a[:] })
	rowsAdapter    = mappy.Seq(mappy.Seq(mappy.Float[float32]()))
	indicesAdapter = mappy.Seq(mappy.Uint[uint32]())
	vec3Adapter    = mappy.Seq(mappy.Array[[3]float32](mappy.Float[float32](), func(a *[3]float32) []float32 { return a[:] }))
	vec4Adapter    = mappy.Seq(mappy.Array[[4]float32](mappy.Float[float32](), func(a *[4]float32) []float32 { return a[:] }))
)

// params checks the call shape of fn against its parameter names: no extra
// positional arguments, no unknown or duplicated keywords, no missing
// parameter.
func params(fn string, args dyn.Args, names ...string) error {
	if len(args.Pos) > len(names) {
		return dyn.TypeError.Errorf("%s() takes %d positional arguments but %d were given", fn, len(names), len(args.Pos))
	}

	for name := range args.Kw {
		idx := slices.Index(names, name)
		if idx < 0 {
			return dyn.TypeError.Errorf("%s() got an unexpected keyword argument '%s'", fn, name)
		}

		if idx < len(args.Pos) {
			return dyn.TypeError.Errorf("%s() got multiple values for argument '%s'", fn, name)
		}
	}

	var missing []string

	for i, name := range names {
		if _, ok := args.Lookup(i, name); !ok {
			missing = append(missing, "'"+name+"'")
		}
	}

	if len(missing) > 0 {
		return dyn.TypeError.Errorf("%s() missing required arguments: %s", fn, strings.Join(missing, ", "))
	}

	return nil
}

// arg reads parameter i called name through a. Mapping errors are reported
// from the parameter name.
func arg[T any](tok *dyn.Token, args dyn.Args, i int, name string, a mappy.Adapter[T]) (T, error) {
	v, _ := args.Lookup(i, name)

	out, err := a.From(tok, v)
	if err != nil {
		return out, mappy.ToException(mappy.AtRoot(err, name))
	}

	return out, nil
}
