package analyze

import (
	"strconv"
	"strings"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "SkelData" for a root type
//   - "SkelData.bones" for a nested field
//   - "SkelData.bones[]" for a sequence field
//   - "SkelData.bones[].transform" for a field within sequence elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends a sequence indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	return p.suffix("[]")
}

// Index appends a fixed element indicator "[N]" to the path, N being the length.
func (p *TypePath) Index(n int64) *TypePath {
	return p.suffix("[" + strconv.FormatInt(n, 10) + "]")
}

func (p *TypePath) suffix(s string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders TypeInfo as Go type expressions.
type TypeStringer struct {
	// Qualifier returns the name a named type of pkgPath is referenced by, "" for
	// no qualification. A nil Qualifier leaves every name unqualified.
	Qualifier func(pkgPath string) string
}

// NewTypeStringer creates a new TypeStringer with unqualified names.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a Go type expression of t.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct:
		if t.IsNamed() {
			return s.name(t.ID)
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + s.elem(t)

	case TypeKindSlice:
		return "[]" + s.elem(t)

	case TypeKindArray:
		return "[" + strconv.FormatInt(t.Len, 10) + "]" + s.elem(t)

	case TypeKindAlias, TypeKindEnum:
		if t.IsNamed() {
			return s.name(t.ID)
		}
		return s.TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}
		return t.GoType.String()

	default:
		if t.GoType == nil {
			return "<unknown>"
		}
		return t.GoType.String()
	}
}

func (s *TypeStringer) elem(t *TypeInfo) string {
	if t.ElemType == nil {
		return "<unknown>"
	}

	return s.TypeString(t.ElemType)
}

func (s *TypeStringer) name(id TypeID) string {
	if s.Qualifier == nil {
		return id.Name
	}

	if q := s.Qualifier(id.PkgPath); q != "" {
		return q + "." + id.Name
	}

	return id.Name
}
