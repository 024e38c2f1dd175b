package bindings

import (
	"ssbh-bindings/dyn"
)

// Module is the name of the top-level runtime module.
const Module = "ssbh_data_py"

// FamilyInfo describes one generated submodule.
type FamilyInfo struct {
	// Name is the submodule name, e.g. "adj_data".
	Name string
	// Module is the dotted module path, e.g. "ssbh_data_py.adj_data".
	Module string
	// Error is raised for codec failures of the family.
	Error *dyn.ExceptionKind
	// Root is the class returned by the family reader.
	Root      *dyn.Class
	Functions []string
	Classes   []ClassInfo
}

// ClassInfo describes an exposed class. Slots is empty for enum classes.
type ClassInfo struct {
	Class   *dyn.Class
	Methods []string
	Slots   []SlotInfo
}

// SlotInfo is one field of an exposed class with its stub annotation.
type SlotInfo struct {
	Name string
	Type string
}

// Family returns the generated family called name.
func Family(name string) (*FamilyInfo, bool) {
	for i := range Families {
		if Families[i].Name == name {
			return &Families[i], true
		}
	}

	return nil, false
}
