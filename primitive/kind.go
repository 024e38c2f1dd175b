package primitive

import (
	"math"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the native scalar types that map onto dynamic scalars.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// SignedRange returns the inclusive bounds of a signed integer kind.
func (k KindEnum) SignedRange() (lo, hi int64) {
	lo = int64(-1) << (k.Bits() - 1)
	return lo, -(lo + 1)
}

// UnsignedMax returns the largest value of an unsigned integer kind.
func (k KindEnum) UnsignedMax() uint64 {
	return math.MaxUint64 >> (64 - k.Bits())
}

// GoName returns the Go spelling of the kind.
func (k KindEnum) GoName() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return ""
	}
}

// PyType returns the scalar type name used in declaration stubs.
func (k KindEnum) PyType() string {
	switch {
	case k.IsInteger():
		return "int"
	case k.IsFloat():
		return "float"
	case k == KindBool:
		return "bool"
	case k == KindString:
		return "str"
	default:
		return "Any"
	}
}

// FromTypeName returns the kind of a predeclared Go type name, or 0.
func FromTypeName(name string) KindEnum {
	switch name {
	case "byte":
		return KindUint8
	case "rune":
		return KindInt32
	}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.GoName() == name {
			return k
		}
	}

	return 0
}

// KindOf returns the kind of the type parameter, or 0 for non-scalar types.
func KindOf[T any]() KindEnum {
	var zero T

	switch any(zero).(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		return 0
	}
}
