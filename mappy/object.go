package mappy

import (
	"ssbh-bindings/dyn"
)

// ObjectOf returns v as an instance of exactly class.
func ObjectOf(v dyn.Value, class *dyn.Class) (*dyn.Object, error) {
	obj, ok := v.(*dyn.Object)
	if !ok || obj.Class() != class {
		return nil, typeErrorf("expected %s, got '%s'", class.Name, typeName(v))
	}

	return obj, nil
}

// Field reads the slot name of obj through a.
func Field[T any](tok *dyn.Token, obj *dyn.Object, name string, a Adapter[T]) (T, error) {
	v, err := obj.Get(tok, name)
	if err != nil {
		var zero T
		return zero, atField(typeErrorf("missing attribute '%s'", name), name)
	}

	out, err := a.From(tok, v)
	if err != nil {
		return out, atField(err, name)
	}

	return out, nil
}

// SetField writes v to the slot name of obj through a. The slot must exist.
func SetField[T any](tok *dyn.Token, obj *dyn.Object, name string, a Adapter[T], v T) {
	if err := obj.Set(tok, name, a.To(tok, v)); err != nil {
		panic("mappy: " + err.Error())
	}
}

// Struct builds the adapter of an exposed struct from its generated converters.
func Struct[T any](to func(*dyn.Token, T) *dyn.Object, from func(*dyn.Token, dyn.Value) (T, error)) Adapter[T] {
	return Adapter[T]{
		To:   func(tok *dyn.Token, v T) dyn.Value { return to(tok, v) },
		From: from,
	}
}

// Default returns a slot default producing the dynamic form of v through a.
func Default[T any](a Adapter[T], v T) dyn.DefaultFunc {
	return func(tok *dyn.Token) dyn.Value { return a.To(tok, v) }
}
