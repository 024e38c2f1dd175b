// Package mappy maps native Go values to and from the dynamic object model.
//
// Every exposed type has an Adapter: To converts a native value into freshly
// allocated dynamic objects and never fails, From reads a dynamic value back and
// reports the first mismatch as an *Error carrying the path of the offending
// element, e.g.
//
//	AdjData.entries[1].vertex_adjacency[0]: 'str' object cannot be interpreted as an integer
//
// Adapters compose: leaves (Int, Uint, Float, Bool, String) are wrapped by
// containers (Seq, Optional, Array, Enum) and struct adapters are sequences of
// Field / SetField calls in field declaration order. The struct adapters are
// generated by ssbhgen, see zz_generated.mappy.go in package bindings.
package mappy
