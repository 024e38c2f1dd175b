package primitive

import (
	"fmt"
	"reflect"

	"ssbh-bindings/dyn"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// inRange reports lo <= v <= hi.
func inRange[T signed | unsigned](lo, v, hi T) bool {
	return lo <= v && v <= hi
}

type float interface {
	~float32 | ~float64
}

// CoercionError reports a dynamic value that cannot be read as a native leaf.
type CoercionError struct {
	Kind     KindEnum
	Got      string // dynamic type name
	Overflow bool   // right type, value out of the native range
}

func (e *CoercionError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("value out of range for %s", e.Kind.GoName())
	}

	switch {
	case e.Kind.IsInteger():
		return fmt.Sprintf("'%s' object cannot be interpreted as an integer", e.Got)
	case e.Kind.IsFloat():
		return fmt.Sprintf("must be real number, not %s", e.Got)
	case e.Kind == KindBool:
		return fmt.Sprintf("'%s' object cannot be converted to 'bool'", e.Got)
	default:
		return fmt.Sprintf("'%s' object cannot be converted to '%s'", e.Got, e.Kind.PyType())
	}
}

func typeName(v dyn.Value) string {
	if v == nil {
		return dyn.None.TypeName()
	}

	return v.TypeName()
}

var reflectKinds = map[reflect.Kind]KindEnum{
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
	reflect.Bool:    KindBool,
	reflect.String:  KindString,
}

// leafKind is KindOf for the underlying type, so named leaves keep their width.
func leafKind[T any]() KindEnum {
	if kind := KindOf[T](); kind != 0 {
		return kind
	}

	return reflectKinds[reflect.TypeFor[T]().Kind()]
}

func accept(v dyn.Value, kind KindEnum, allowed CategoryEnum) error {
	if !Allowed(SourceOf(v), kind, allowed) {
		return &CoercionError{Kind: kind, Got: typeName(v)}
	}

	return nil
}

// SignedToDynamic maps a signed integer onto an Int.
func SignedToDynamic[T signed](v T) dyn.Value { return dyn.NewInt(int64(v)) }

// UnsignedToDynamic maps an unsigned integer onto an Int.
func UnsignedToDynamic[T unsigned](v T) dyn.Value { return dyn.NewUint(uint64(v)) }

// FloatToDynamic maps a float onto a Float.
func FloatToDynamic[T float](v T) dyn.Value { return dyn.Float(float64(v)) }

// BoolToDynamic maps a bool onto a Bool.
func BoolToDynamic(v bool) dyn.Value { return dyn.Bool(v) }

// StringToDynamic maps a string onto a Str.
func StringToDynamic(v string) dyn.Value { return dyn.Str(v) }

// SignedFromDynamic reads a signed integer, checking the native range.
func SignedFromDynamic[T signed](v dyn.Value, allowed CategoryEnum) (T, error) {
	kind := leafKind[T]()

	if err := accept(v, kind, allowed); err != nil {
		return 0, err
	}

	var n int64

	switch vv := v.(type) {
	case dyn.Bool:
		if vv {
			n = 1
		}
	case dyn.Int:
		var ok bool
		if n, ok = vv.Int64(); !ok {
			return 0, &CoercionError{Kind: kind, Got: vv.TypeName(), Overflow: true}
		}
	}

	lo, hi := kind.SignedRange()
	if !inRange(lo, n, hi) {
		return 0, &CoercionError{Kind: kind, Got: v.TypeName(), Overflow: true}
	}

	return T(n), nil
}

// UnsignedFromDynamic reads an unsigned integer, rejecting negative values.
func UnsignedFromDynamic[T unsigned](v dyn.Value, allowed CategoryEnum) (T, error) {
	kind := leafKind[T]()

	if err := accept(v, kind, allowed); err != nil {
		return 0, err
	}

	var n uint64

	switch vv := v.(type) {
	case dyn.Bool:
		if vv {
			n = 1
		}
	case dyn.Int:
		var ok bool
		if n, ok = vv.Uint64(); !ok {
			return 0, &CoercionError{Kind: kind, Got: vv.TypeName(), Overflow: true}
		}
	}

	if !inRange(0, n, kind.UnsignedMax()) {
		return 0, &CoercionError{Kind: kind, Got: v.TypeName(), Overflow: true}
	}

	return T(n), nil
}

// FloatFromDynamic reads a float. Narrowing to float32 rounds.
func FloatFromDynamic[T float](v dyn.Value, allowed CategoryEnum) (T, error) {
	kind := leafKind[T]()

	if err := accept(v, kind, allowed); err != nil {
		return 0, err
	}

	switch vv := v.(type) {
	case dyn.Bool:
		if vv {
			return 1, nil
		}
		return 0, nil
	case dyn.Int:
		return T(vv.Float64()), nil
	default:
		return T(v.(dyn.Float)), nil
	}
}

// BoolFromDynamic reads a bool.
func BoolFromDynamic(v dyn.Value, allowed CategoryEnum) (bool, error) {
	if err := accept(v, KindBool, allowed); err != nil {
		return false, err
	}

	return bool(v.(dyn.Bool)), nil
}

// StringFromDynamic reads a string.
func StringFromDynamic(v dyn.Value, allowed CategoryEnum) (string, error) {
	if err := accept(v, KindString, allowed); err != nil {
		return "", err
	}

	return string(v.(dyn.Str)), nil
}
