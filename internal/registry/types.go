package registry

import (
	"strings"
)

// File is a parsed registry.
type File struct {
	Version  string   `yaml:"version,omitempty"`
	Module   string   `yaml:"module"`
	Families []Family `yaml:"families"`
}

// Family is one submodule of the runtime module, backed by one native package.
type Family struct {
	// Name is the submodule name, e.g. "adj_data".
	Name string `yaml:"name"`
	// Package is the import path of the native package.
	Package string `yaml:"package"`
	// Root is the type returned by the family reader.
	Root string `yaml:"root"`
	// Error is the exception kind raised for codec failures.
	Error     string     `yaml:"error,omitempty"`
	Functions []Function `yaml:"functions,omitempty"`
	Types     []Type     `yaml:"types"`
}

// Function is a callable exposed to the runtime, either a module function or
// a method.
type Function struct {
	Name    string  `yaml:"name"`
	Params  []Param `yaml:"params,omitempty"`
	Returns string  `yaml:"returns,omitempty"`
}

// Param is one declared parameter of a Function.
type Param struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
}

// Type is an exposed struct.
type Type struct {
	Name string `yaml:"name"`
	// Init lists the required constructor parameters, in field order.
	Init []string `yaml:"init,omitempty"`
	// Defaults holds literal defaults of non-required scalar and enum fields.
	Defaults map[string]any `yaml:"defaults,omitempty"`
	// Fields, when present, must equal the native slot names in order.
	Fields  []string   `yaml:"fields,omitempty"`
	Methods []Function `yaml:"methods,omitempty"`
}

// Qualified returns the dotted module path of the family.
func (f *Family) Qualified(module string) string {
	return module + "." + f.Name
}

// Type returns the declared type called name.
func (f *Family) Type(name string) (*Type, bool) {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i], true
		}
	}

	return nil, false
}

// Signature renders the parameter list and return type, e.g.
// "(path: str) -> AdjData". self is prepended for methods.
func (fn *Function) Signature(self bool) string {
	params := make([]string, 0, len(fn.Params)+1)
	if self {
		params = append(params, "self")
	}

	for _, p := range fn.Params {
		param := p.Name + ": " + p.Type
		if p.Default != "" {
			param += " = " + p.Default
		}

		params = append(params, param)
	}

	return "(" + strings.Join(params, ", ") + ") -> " + fn.Returns
}

// IsRequired reports whether name is a constructor parameter.
func (t *Type) IsRequired(name string) bool {
	for _, n := range t.Init {
		if n == name {
			return true
		}
	}

	return false
}
