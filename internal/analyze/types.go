package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"ssbh-bindings/internal/common"
)

// TypeID names a declared type: "ssbh-bindings/ssbhdata/adj" + "AdjData".
// Predeclared types have an empty PkgPath.
type TypeID struct {
	PkgPath string
	Name    string
}

func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

//go:generate go tool stringer -type=TypeKind -linecomment -output=typekind_string.go

// TypeKind classifies a TypeInfo.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota // unknown
	TypeKindBasic                    // basic
	TypeKindStruct                   // struct
	TypeKindPointer                  // pointer
	TypeKindSlice                    // slice
	TypeKindArray                    // array
	TypeKindEnum                     // enum
	TypeKindAlias                    // alias
	TypeKindExternal                 // external
)

// TypeInfo is a node of the type graph. Named types carry an ID; composite
// types (*T, []T, [N]T) point at their element.
type TypeInfo struct {
	ID   TypeID
	Kind TypeKind
	// Underlying is set for alias and enum kinds.
	Underlying *TypeInfo
	// ElemType is set for pointer, slice and array kinds.
	ElemType *TypeInfo
	Len      int64
	Fields   []FieldInfo
	// Variants lists the typed constants of an enum in declaration order.
	Variants []Variant
	GoType   types.Type
}

// Variant is a declared constant of an enum type. Name is the name seen by
// the runtime, GoName the constant identifier when it differs.
type Variant struct {
	Name   string
	GoName string
	Value  int64
}

// Ident returns the Go identifier of the constant.
func (v Variant) Ident() string {
	if v.GoName != "" {
		return v.GoName
	}

	return v.Name
}

func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Field returns the field called name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// FieldInfo is a struct field. Unexported fields are listed too so that the
// planner can reject types it cannot map losslessly.
type FieldInfo struct {
	Name     string
	Type     *TypeInfo
	Tag      reflect.StructTag
	Embedded bool
	Exported bool
}

// SlotName is the attribute name on the dynamic side: the `py` tag when
// present, the snake_case field name otherwise.
func (f *FieldInfo) SlotName() string {
	if tag := f.Tag.Get("py"); tag != "" && tag != "-" {
		name, _, _ := strings.Cut(tag, ",")
		return name
	}

	return common.SnakeCase(f.Name)
}

// Skipped reports whether the field is excluded with `py:"-"`.
func (f *FieldInfo) Skipped() bool {
	return f.Tag.Get("py") == "-"
}

// TypeGraph holds the named types of the loaded packages.
type TypeGraph struct {
	Types    map[TypeID]*TypeInfo
	Packages map[string]*PackageInfo
}

func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the named type id, nil when it was not loaded.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Struct returns the named struct id.
func (g *TypeGraph) Struct(id TypeID) (*TypeInfo, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}

	return info, nil
}

// PackageInfo is a loaded package with its exported named types in scope order.
type PackageInfo struct {
	Path  string
	Name  string
	Types []TypeID
}
