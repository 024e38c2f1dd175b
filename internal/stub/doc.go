// Package stub renders the declaration artifacts of a resolved plan: one
// .pyi stub per family, describing its free functions and classes for static
// analysis tooling, and a JSON Schema of the native root type describing the
// JSON/YAML interchange format.
package stub
