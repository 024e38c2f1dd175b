// Package bindings exposes the ssbhdata families to the dynamic runtime as
// the module ssbh_data_py.
//
// The classes, adapters and converters of every exposed type are generated
// from registry.yaml into zz_generated.mappy.go; the declaration stubs in
// stubs/ come from the same registry. This package adds the module functions
// and methods and translates every failure into a runtime exception:
//   - codec failures (parse, write, I/O) raise the exception of the family,
//     e.g. ssbh_data_py.adj_data.AdjDataError
//   - mapping failures raise TypeError or ValueError with the path of the
//     offending value
//   - invalid arguments of utility functions raise TypeError or ValueError
package bindings

//go:generate go run ssbh-bindings/cmd/ssbhgen mappy --registry registry.yaml --out .
//go:generate go run ssbh-bindings/cmd/ssbhgen stubs --registry registry.yaml --out stubs
//go:generate go run ssbh-bindings/cmd/ssbhgen schema --registry registry.yaml --out schema
