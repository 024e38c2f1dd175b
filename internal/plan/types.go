package plan

import (
	"ssbh-bindings/internal/analyze"
	"ssbh-bindings/internal/diagnostic"
	"ssbh-bindings/internal/registry"
)

// MappyPkg is the name generated code refers to the adapter package by.
const MappyPkg = "mappy"

// Plan is the output of resolution, consumed by the mapping and stub generators.
type Plan struct {
	// Module is the top-level runtime module, e.g. "ssbh_data_py".
	Module   string
	Families []*Family
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Family is one runtime submodule backed by one native package.
type Family struct {
	Name string
	// Module is the dotted module path, e.g. "ssbh_data_py.adj_data".
	Module  string
	Package string
	PkgName string
	Error   string
	Root    string

	Functions []registry.Function
	Types     []*Type
	Enums     []*Enum
}

// Type is an exposed struct with its fields in native order.
type Type struct {
	Name    string
	GoType  string
	Fields  []*Field
	Methods []registry.Function
}

// Field is one slot of an exposed struct.
type Field struct {
	GoName    string
	Slot      string
	Container analyze.ContainerEnum
	GoType    string
	// Adapter is a Go expression of type mappy.Adapter[GoType].
	Adapter string
	// PyType is the stub annotation, e.g. "List[int]".
	PyType   string
	Required bool
	// Value is the Go default value passed through Adapter, e.g. "uint16(1)".
	Value string
	// DefaultFunc is a dyn.DefaultFunc expression used instead of Value.
	DefaultFunc string
}

// Enum is an enum type exposed as a class of constants.
type Enum struct {
	Name     string
	GoType   string
	Variants []analyze.Variant
}

// Init returns the required fields in order.
func (t *Type) Init() []*Field {
	var out []*Field

	for _, f := range t.Fields {
		if f.Required {
			out = append(out, f)
		}
	}

	return out
}

// SlotNames returns the slot names in order.
func (t *Type) SlotNames() []string {
	out := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		out[i] = f.Slot
	}

	return out
}

// Type returns the exposed struct called name.
func (f *Family) Type(name string) (*Type, bool) {
	for _, t := range f.Types {
		if t.Name == name {
			return t, true
		}
	}

	return nil, false
}

// Family returns the family called name.
func (p *Plan) Family(name string) (*Family, bool) {
	for _, f := range p.Families {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}
