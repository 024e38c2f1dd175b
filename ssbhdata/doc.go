// Package ssbhdata holds the native data families exposed to scripts.
//
// Each family package (adj, modl, skel, mesh, meshex, matl) declares its root type
// with FromFile and WriteToFile. The binary adjacency layout is implemented in
// package adj; every family also reads and writes the JSON/YAML interchange
// format of package codec, selected by file extension.
package ssbhdata
