package plan

import (
	"fmt"
	"strconv"

	"ssbh-bindings/internal/analyze"
	"ssbh-bindings/internal/match"
	"ssbh-bindings/internal/registry"
	"ssbh-bindings/primitive"
)

// defaultOf sets the construction default of a non-required field.
// Collections default to a fresh empty list, optionals to None, scalars and
// enums to the registry literal or their zero value, fixed arrays to zeros.
func (fr *familyResolver) defaultOf(decl *registry.Type, t *analyze.TypeInfo, field *Field, path string) {
	lit, has := decl.Defaults[field.Slot]

	switch field.Container {
	case analyze.ContainerSequence:
		field.DefaultFunc = "dyn.EmptyList"
	case analyze.ContainerOptional:
		field.DefaultFunc = "dyn.NoneDefault"
	case analyze.ContainerFixed:
		field.Value = field.GoType + "{}"
	case analyze.ContainerNested:
		fr.fail("nested_requires_init", path, nil, "nested field %s must be an init parameter", field.Slot)
		return
	case analyze.ContainerScalar:
		value, err := scalarLiteral(analyze.ScalarKind(t), field.GoType, lit, has)
		if err != nil {
			fr.fail("invalid_default", path, nil, "%v", err)
			return
		}

		field.Value = value

		return
	case analyze.ContainerEnumerated:
		field.Value = fr.enumLiteral(t, lit, has, path)
		return
	}

	if has {
		fr.fail("invalid_default", path, nil, "%s fields cannot have a literal default", field.Container)
	}
}

func scalarLiteral(kind primitive.KindEnum, goType string, lit any, has bool) (string, error) {
	if !has {
		switch {
		case kind.IsNumber():
			return goType + "(0)", nil
		case kind == primitive.KindBool:
			return goType + "(false)", nil
		default:
			return goType + `("")`, nil
		}
	}

	switch v := lit.(type) {
	case int:
		if !kind.IsNumber() || !inRange(kind, v) {
			break
		}

		return goType + "(" + strconv.Itoa(v) + ")", nil

	case float64:
		if !kind.IsFloat() {
			break
		}

		return goType + "(" + strconv.FormatFloat(v, 'g', -1, 64) + ")", nil

	case bool:
		if kind != primitive.KindBool {
			break
		}

		return goType + "(" + strconv.FormatBool(v) + ")", nil

	case string:
		if kind != primitive.KindString {
			break
		}

		return goType + "(" + strconv.Quote(v) + ")", nil
	}

	return "", fmt.Errorf("default %v is not a valid %s", lit, goType)
}

func inRange(kind primitive.KindEnum, v int) bool {
	switch {
	case kind.IsSigned():
		lo, hi := kind.SignedRange()
		return int64(v) >= lo && int64(v) <= hi
	case kind.IsUnsigned():
		return v >= 0 && uint64(v) <= kind.UnsignedMax()
	default:
		return true
	}
}

// enumLiteral returns the constant named by lit, or the zero valued variant
// (the first one when no variant is zero) when there is no literal.
func (fr *familyResolver) enumLiteral(t *analyze.TypeInfo, lit any, has bool, path string) string {
	constant := func(v analyze.Variant) string {
		return fr.out.PkgName + "." + v.Ident()
	}

	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.Name
	}

	if !has {
		for _, v := range t.Variants {
			if v.Value == 0 {
				return constant(v)
			}
		}

		return constant(t.Variants[0])
	}

	name, ok := lit.(string)
	if !ok {
		fr.fail("invalid_default", path, nil, "default %v of enum %s must be a variant name", lit, t.ID.Name)
		return ""
	}

	for _, v := range t.Variants {
		if v.Name == name {
			return constant(v)
		}
	}

	fr.fail("unknown_variant", path, match.Suggest(name, names, maxSuggestions), "%q is not a variant of %s", name, t.ID.Name)

	return ""
}
