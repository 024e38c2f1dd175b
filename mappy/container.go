package mappy

import (
	"ssbh-bindings/dyn"
)

func sequenceOf(v dyn.Value) (dyn.Sequence, error) {
	seq, ok := v.(dyn.Sequence)
	if !ok || dyn.IsNone(v) {
		return nil, typeErrorf("expected a list, tuple or array, got '%s'", typeName(v))
	}

	return seq, nil
}

func typeName(v dyn.Value) string {
	if v == nil {
		return dyn.None.TypeName()
	}

	return v.TypeName()
}

// Seq maps a slice onto a new list. Reading accepts any dyn.Sequence and always
// yields a non-nil slice.
func Seq[T any](elem Adapter[T]) Adapter[[]T] {
	return Adapter[[]T]{
		To: func(tok *dyn.Token, in []T) dyn.Value {
			items := make([]dyn.Value, len(in))
			for i, v := range in {
				items[i] = elem.To(tok, v)
			}

			return dyn.NewList(tok, items...)
		},
		From: func(tok *dyn.Token, v dyn.Value) ([]T, error) {
			seq, err := sequenceOf(v)
			if err != nil {
				return nil, err
			}

			n := seq.Len(tok)
			out := make([]T, n)

			for i := range n {
				if out[i], err = elem.From(tok, seq.At(tok, i)); err != nil {
					return nil, atIndex(err, i)
				}
			}

			return out, nil
		},
	}
}

// Optional maps nil onto None and a non-nil pointer onto its element.
func Optional[T any](elem Adapter[T]) Adapter[*T] {
	return Adapter[*T]{
		To: func(tok *dyn.Token, in *T) dyn.Value {
			if in == nil {
				return dyn.None
			}

			return elem.To(tok, *in)
		},
		From: func(tok *dyn.Token, v dyn.Value) (*T, error) {
			if dyn.IsNone(v) {
				return nil, nil
			}

			out, err := elem.From(tok, v)
			if err != nil {
				return nil, err
			}

			return &out, nil
		},
	}
}

// Array maps a fixed size array A of T onto a list of exactly len(A) elements.
// view returns the elements of the array as a slice sharing its storage.
//
//	Array(Float[float32](), func(a *[4]float32) []float32 { return a[:] })
func Array[A any, T any](elem Adapter[T], view func(a *A) []T) Adapter[A] {
	var zero A
	size := len(view(&zero))

	return Adapter[A]{
		To: func(tok *dyn.Token, in A) dyn.Value {
			src := view(&in)

			items := make([]dyn.Value, len(src))
			for i, v := range src {
				items[i] = elem.To(tok, v)
			}

			return dyn.NewList(tok, items...)
		},
		From: func(tok *dyn.Token, v dyn.Value) (A, error) {
			var out A

			seq, err := sequenceOf(v)
			if err != nil {
				return out, err
			}

			if n := seq.Len(tok); n != size {
				return out, valueErrorf("expected a sequence of length %d, got %d", size, n)
			}

			dst := view(&out)
			for i := range dst {
				if dst[i], err = elem.From(tok, seq.At(tok, i)); err != nil {
					return out, atIndex(err, i)
				}
			}

			return out, nil
		},
	}
}

// Enum maps a named integer onto the constant of class with the same value.
// Reading accepts a constant of class or the name of one of its variants.
// Values without a constant map onto a plain Int and are rejected when read back.
func Enum[T integer](class *dyn.Class) Adapter[T] {
	return Adapter[T]{
		To: func(_ *dyn.Token, in T) dyn.Value {
			for _, c := range class.Consts() {
				if _, value, _ := c.Variant(); value == int64(in) {
					return c
				}
			}

			return dyn.NewInt(int64(in))
		},
		From: func(_ *dyn.Token, v dyn.Value) (T, error) {
			switch vv := v.(type) {
			case *dyn.Object:
				if vv.Class() != class {
					return 0, typeErrorf("expected %s, got '%s'", class.Name, vv.TypeName())
				}

				_, value, ok := vv.Variant()
				if !ok {
					return 0, valueErrorf("not a constant of %s", class.Name)
				}

				return T(value), nil

			case dyn.Str:
				c, ok := class.Const(string(vv))
				if !ok {
					return 0, valueErrorf("%q is not a valid %s", string(vv), class.Name)
				}

				_, value, _ := c.Variant()

				return T(value), nil

			default:
				return 0, typeErrorf("expected %s, got '%s'", class.Name, typeName(v))
			}
		},
	}
}
