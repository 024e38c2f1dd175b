package dyn

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Value is a dynamic runtime value.
type Value interface {
	// TypeName returns the runtime-visible type name (e.g. "int", "list", "AdjData").
	TypeName() string

	value()
}

// Sequence is implemented by values that writers accept wherever an ordered
// sequence is expected.
type Sequence interface {
	Value
	Len(tok *Token) int
	At(tok *Token, i int) Value
}

type noneValue struct{}

// None is the null-like value.
var None Value = noneValue{}

func (noneValue) TypeName() string { return "NoneType" }
func (noneValue) value()           {}

// IsNone reports whether v is None or a nil interface.
func IsNone(v Value) bool {
	return v == nil || v == None
}

// Bool is a boolean scalar.
type Bool bool

func (Bool) TypeName() string { return "bool" }
func (Bool) value()           {}

// Float is a double precision scalar.
type Float float64

func (Float) TypeName() string { return "float" }
func (Float) value()           {}

// Str is a text scalar.
type Str string

func (Str) TypeName() string { return "str" }
func (Str) value()           {}

// Int is an arbitrary precision integer. The zero Int is 0.
type Int struct {
	v *big.Int
}

// NewInt returns an Int holding n.
func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// NewUint returns an Int holding n.
func NewUint(n uint64) Int {
	return Int{v: new(big.Int).SetUint64(n)}
}

// NewBigInt returns an Int holding a copy of n.
func NewBigInt(n *big.Int) Int {
	return Int{v: new(big.Int).Set(n)}
}

func (Int) TypeName() string { return "int" }
func (Int) value()           {}

func (i Int) big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}

	return i.v
}

// Big returns a copy of the integer.
func (i Int) Big() *big.Int {
	return new(big.Int).Set(i.big())
}

// Int64 returns the value and whether it fits into int64.
func (i Int) Int64() (int64, bool) {
	b := i.big()
	if !b.IsInt64() {
		return 0, false
	}

	return b.Int64(), true
}

// Uint64 returns the value and whether it fits into uint64.
func (i Int) Uint64() (uint64, bool) {
	b := i.big()
	if !b.IsUint64() {
		return 0, false
	}

	return b.Uint64(), true
}

// Float64 returns the nearest float64.
func (i Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(i.big()).Float64()
	return f
}

func (i Int) String() string {
	return i.big().String()
}

// Tuple is an immutable ordered sequence.
type Tuple []Value

func (Tuple) TypeName() string { return "tuple" }
func (Tuple) value()           {}

func (t Tuple) Len(tok *Token) int {
	tok.check(nil)
	return len(t)
}

func (t Tuple) At(tok *Token, i int) Value {
	tok.check(nil)
	return t[i]
}

// List is a mutable ordered sequence owned by a runtime.
type List struct {
	rt    *Runtime
	items []Value
}

// NewList allocates a list holding items.
func NewList(tok *Token, items ...Value) *List {
	tok.check(nil)

	l := &List{rt: tok.rt, items: make([]Value, 0, len(items))}
	l.items = append(l.items, items...)

	return l
}

func (*List) TypeName() string { return "list" }
func (*List) value()           {}

func (l *List) Len(tok *Token) int {
	tok.check(l.rt)
	return len(l.items)
}

func (l *List) At(tok *Token, i int) Value {
	tok.check(l.rt)
	return l.items[i]
}

// Append adds v to the end of the list.
func (l *List) Append(tok *Token, v Value) {
	tok.check(l.rt)
	l.items = append(l.items, v)
}

// SetAt replaces the element at index i.
func (l *List) SetAt(tok *Token, i int, v Value) {
	tok.check(l.rt)
	l.items[i] = v
}

// Items returns a copy of the list elements.
func (l *List) Items(tok *Token) []Value {
	tok.check(l.rt)
	return append([]Value(nil), l.items...)
}

// DType is the element type of an NDArray.
type DType int

const (
	Float64 DType = iota
	Float32
	Int64
)

// NDArray is a read-only numeric array view, similar to a numpy array.
// Iterating the first axis yields scalars for one dimensional arrays and
// sub-array views otherwise.
type NDArray struct {
	dtype DType
	shape []int
	data  []float64
}

// NewNDArray creates a view over data with the given shape. The product of
// shape must equal len(data).
func NewNDArray(dtype DType, shape []int, data []float64) (*NDArray, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("ndarray: empty shape")
	}

	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("ndarray: negative dimension %d", n)
		}
		size *= n
	}

	if size != len(data) {
		return nil, fmt.Errorf("ndarray: shape %v needs %d elements, got %d", shape, size, len(data))
	}

	return &NDArray{dtype: dtype, shape: append([]int(nil), shape...), data: data}, nil
}

func (*NDArray) TypeName() string { return "ndarray" }
func (*NDArray) value()           {}

// Shape returns a copy of the array shape.
func (a *NDArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// DType returns the element type.
func (a *NDArray) DType() DType {
	return a.dtype
}

func (a *NDArray) Len(tok *Token) int {
	tok.check(nil)
	return a.shape[0]
}

func (a *NDArray) At(tok *Token, i int) Value {
	tok.check(nil)

	if len(a.shape) == 1 {
		x := a.data[i]
		if a.dtype == Int64 {
			return NewInt(int64(x))
		}

		return Float(x)
	}

	stride := len(a.data) / a.shape[0]

	return &NDArray{
		dtype: a.dtype,
		shape: a.shape[1:],
		data:  a.data[i*stride : (i+1)*stride],
	}
}

// Equal reports structural equality: sequences compare element-wise (a list
// equals a tuple with the same elements), objects compare by class and slots.
// Int and Float compare numerically.
func Equal(tok *Token, a, b Value) bool {
	tok.check(nil)

	if IsNone(a) || IsNone(b) {
		return IsNone(a) && IsNone(b)
	}

	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv

	case Str:
		bv, ok := b.(Str)
		return ok && av == bv

	case Int:
		switch bv := b.(type) {
		case Int:
			return av.big().Cmp(bv.big()) == 0
		case Float:
			return av.Float64() == float64(bv)
		}
		return false

	case Float:
		switch bv := b.(type) {
		case Float:
			return av == bv
		case Int:
			return float64(av) == bv.Float64()
		}
		return false

	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.class != bv.class {
			return false
		}
		if av == bv {
			return true
		}
		for i := range av.slots {
			if !Equal(tok, av.slots[i], bv.slots[i]) {
				return false
			}
		}
		return true

	case Sequence:
		bv, ok := b.(Sequence)
		if !ok {
			return false
		}

		n := av.Len(tok)
		if n != bv.Len(tok) {
			return false
		}

		for i := range n {
			if !Equal(tok, av.At(tok, i), bv.At(tok, i)) {
				return false
			}
		}
		return true
	}

	return false
}

// Repr returns a readable representation of v, used in messages and tests.
func Repr(tok *Token, v Value) string {
	tok.check(nil)

	if IsNone(v) {
		return "None"
	}

	switch vv := v.(type) {
	case Bool:
		if vv {
			return "True"
		}
		return "False"
	case Int:
		return vv.String()
	case Float:
		return strconv.FormatFloat(float64(vv), 'g', -1, 64)
	case Str:
		return strconv.Quote(string(vv))
	case *Object:
		if vv.class.IsEnum() {
			name, _ := vv.Get(tok, "name")
			if s, ok := name.(Str); ok {
				return vv.class.Name + "." + string(s)
			}
		}
		return "<" + vv.class.QualifiedName() + " object>"
	case Sequence:
		open, closing := "[", "]"
		switch vv.(type) {
		case Tuple:
			open, closing = "(", ")"
		case *NDArray:
			open, closing = "array([", "])"
		}

		parts := make([]string, 0, vv.Len(tok))
		for i := range vv.Len(tok) {
			parts = append(parts, Repr(tok, vv.At(tok, i)))
		}
		return open + strings.Join(parts, ", ") + closing
	}

	return "<" + v.TypeName() + ">"
}
