package analyze

import (
	"go/types"

	"ssbh-bindings/primitive"
)

//go:generate go tool stringer -type=ContainerEnum -output=container_string.go

// ContainerEnum is the shape of a field as seen by the mapping layer. It fully
// determines the adapter of the field.
type ContainerEnum int

const (
	ContainerUnknown ContainerEnum = iota
	ContainerScalar
	ContainerOptional
	ContainerSequence
	ContainerFixed
	ContainerNested
	ContainerEnumerated

	// ContainerTotal is a constant that represents the total number of containers defined
	ContainerTotal = int(iota)
)

// Dispatch returns the container kind of t. Pointers to pointers, maps,
// interfaces and external types are ContainerUnknown.
func Dispatch(t *TypeInfo) ContainerEnum {
	if t == nil {
		return ContainerUnknown
	}

	switch t.Kind {
	case TypeKindPointer:
		if t.ElemType == nil || t.ElemType.Kind == TypeKindPointer {
			return ContainerUnknown
		}

		if Dispatch(t.ElemType) == ContainerUnknown {
			return ContainerUnknown
		}

		return ContainerOptional

	case TypeKindSlice, TypeKindArray:
		if Dispatch(t.ElemType) == ContainerUnknown {
			return ContainerUnknown
		}

		if t.Kind == TypeKindArray {
			return ContainerFixed
		}

		return ContainerSequence

	case TypeKindEnum:
		return ContainerEnumerated

	case TypeKindStruct:
		if !t.IsNamed() {
			return ContainerUnknown
		}

		return ContainerNested

	case TypeKindBasic, TypeKindAlias:
		if ScalarKind(t) == 0 {
			return ContainerUnknown
		}

		return ContainerScalar

	default:
		return ContainerUnknown
	}
}

// ScalarKind returns the leaf kind of a basic type or of a named type over a
// basic type, or 0.
func ScalarKind(t *TypeInfo) primitive.KindEnum {
	for t != nil && t.Kind == TypeKindAlias {
		t = t.Underlying
	}

	if t == nil || t.Kind != TypeKindBasic {
		return 0
	}

	basic, ok := t.GoType.(*types.Basic)
	if !ok {
		return 0
	}

	return primitive.FromTypeName(basic.Name())
}
