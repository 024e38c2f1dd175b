package mappy

import (
	"ssbh-bindings/dyn"
	"ssbh-bindings/primitive"
)

// Adapter converts between a native type T and its dynamic form.
type Adapter[T any] struct {
	To   func(tok *dyn.Token, v T) dyn.Value
	From func(tok *dyn.Token, v dyn.Value) (T, error)
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type integer interface {
	signed | unsigned
}

// Int maps a signed integer onto an Int.
func Int[T signed]() Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, v T) dyn.Value { return primitive.SignedToDynamic(v) },
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			n, err := primitive.SignedFromDynamic[T](v, primitive.CategoryDefault)
			return n, fromCoercion(err)
		},
	}
}

// Uint maps an unsigned integer onto an Int. Negative values are out of range.
func Uint[T unsigned]() Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, v T) dyn.Value { return primitive.UnsignedToDynamic(v) },
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			n, err := primitive.UnsignedFromDynamic[T](v, primitive.CategoryDefault)
			return n, fromCoercion(err)
		},
	}
}

// Float maps a float onto a Float. Ints are accepted when reading.
func Float[T ~float32 | ~float64]() Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, v T) dyn.Value { return primitive.FloatToDynamic(v) },
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			f, err := primitive.FloatFromDynamic[T](v, primitive.CategoryDefault)
			return f, fromCoercion(err)
		},
	}
}

// Bool maps a bool onto a Bool.
func Bool[T ~bool]() Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, v T) dyn.Value { return primitive.BoolToDynamic(bool(v)) },
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			b, err := primitive.BoolFromDynamic(v, primitive.CategoryDefault)
			return T(b), fromCoercion(err)
		},
	}
}

// String maps a string onto a Str.
func String[T ~string]() Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, v T) dyn.Value { return primitive.StringToDynamic(string(v)) },
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			s, err := primitive.StringFromDynamic(v, primitive.CategoryDefault)
			return T(s), fromCoercion(err)
		},
	}
}
