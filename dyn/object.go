package dyn

import (
	"slices"
	"strings"
)

// DefaultFunc produces the default value of a slot at construction time.
type DefaultFunc func(tok *Token) Value

// EmptyList is the default of collection slots: a fresh empty list per instance.
func EmptyList(tok *Token) Value { return NewList(tok) }

// NoneDefault is the default of optional slots.
func NoneDefault(*Token) Value { return None }

// Const returns a DefaultFunc yielding v.
func Const(v Value) DefaultFunc {
	return func(*Token) Value { return v }
}

// Slot describes one named attribute of a class.
type Slot struct {
	Name string
	// Required slots are constructor parameters, in declaration order.
	Required bool
	// Default is used when a non-required slot is not supplied.
	Default DefaultFunc
}

// Method is a bound callable. A non-nil error is always an *Exception.
type Method func(tok *Token, self *Object, args Args) (Value, error)

// Class is a runtime class with ordered slots.
type Class struct {
	Name   string
	Module string
	Slots  []Slot
	// Abstract classes cannot be instantiated from scripts (enum classes).
	Abstract bool

	methods map[string]Method
	consts  []*Object
}

// NewClass declares a class with the given slots.
func NewClass(name string, slots ...Slot) *Class {
	return &Class{Name: name, Slots: slots, methods: make(map[string]Method)}
}

// NewEnumClass declares an enum class whose constants carry name and value slots.
func NewEnumClass(name string) *Class {
	c := NewClass(name, Slot{Name: "name"}, Slot{Name: "value"})
	c.Abstract = true

	return c
}

// In sets the module the class is exposed from and returns c.
func (c *Class) In(module string) *Class {
	c.Module = module
	return c
}

// QualifiedName returns module.Name.
func (c *Class) QualifiedName() string {
	if c.Module == "" {
		return c.Name
	}

	return c.Module + "." + c.Name
}

// SlotNames returns the slot names in declaration order.
func (c *Class) SlotNames() []string {
	out := make([]string, len(c.Slots))
	for i, s := range c.Slots {
		out[i] = s.Name
	}

	return out
}

func (c *Class) slotIndex(name string) int {
	return slices.IndexFunc(c.Slots, func(s Slot) bool { return s.Name == name })
}

// AddMethod registers a method.
func (c *Class) AddMethod(name string, m Method) {
	if c.methods == nil {
		c.methods = make(map[string]Method)
	}

	c.methods[name] = m
}

// MethodNames returns the registered method names sorted.
func (c *Class) MethodNames() []string {
	out := make([]string, 0, len(c.methods))
	for name := range c.methods {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}

// IsEnum reports whether the class carries enum constants.
func (c *Class) IsEnum() bool {
	return c.Abstract && len(c.consts) > 0
}

// AddConst registers an enum constant with the given variant name and value.
// Constants are immutable and not owned by any runtime.
func (c *Class) AddConst(name string, value int64) *Object {
	obj := &Object{class: c, slots: []Value{Str(name), NewInt(value)}}
	c.consts = append(c.consts, obj)

	return obj
}

// Const returns the enum constant with the given variant name.
func (c *Class) Const(name string) (*Object, bool) {
	for _, obj := range c.consts {
		if s, ok := obj.slots[0].(Str); ok && string(s) == name {
			return obj, true
		}
	}

	return nil, false
}

// Consts returns the enum constants in declaration order.
func (c *Class) Consts() []*Object {
	return slices.Clone(c.consts)
}

// Alloc creates an instance with every slot set to None. It bypasses the
// constructor and is meant for mapping code that fills every slot.
func (c *Class) Alloc(tok *Token) *Object {
	tok.check(nil)

	obj := &Object{class: c, rt: tok.rt, slots: make([]Value, len(c.Slots))}
	for i := range obj.slots {
		obj.slots[i] = None
	}

	return obj
}

// New runs the constructor: positional arguments fill required slots in
// order, keywords fill any slot by name, unsupplied slots get their default.
func (c *Class) New(tok *Token, args Args) (*Object, error) {
	tok.check(nil)

	if c.Abstract {
		return nil, TypeError.Errorf("cannot create '%s' instances", c.QualifiedName())
	}

	var required []int
	for i, s := range c.Slots {
		if s.Required {
			required = append(required, i)
		}
	}

	if len(args.Pos) > len(required) {
		return nil, TypeError.Errorf("%s() takes %d positional arguments but %d were given",
			c.Name, len(required), len(args.Pos))
	}

	obj := &Object{class: c, rt: tok.rt, slots: make([]Value, len(c.Slots))}
	set := make([]bool, len(c.Slots))

	for i, v := range args.Pos {
		obj.slots[required[i]] = v
		set[required[i]] = true
	}

	for name, v := range args.Kw {
		idx := c.slotIndex(name)
		if idx < 0 {
			return nil, TypeError.Errorf("%s() got an unexpected keyword argument '%s'", c.Name, name)
		}

		if set[idx] {
			return nil, TypeError.Errorf("%s() got multiple values for argument '%s'", c.Name, name)
		}

		obj.slots[idx] = v
		set[idx] = true
	}

	var missing []string
	for i, s := range c.Slots {
		if set[i] {
			continue
		}

		switch {
		case s.Required:
			missing = append(missing, "'"+s.Name+"'")
		case s.Default != nil:
			obj.slots[i] = s.Default(tok)
		default:
			obj.slots[i] = None
		}
	}

	if len(missing) > 0 {
		return nil, TypeError.Errorf("%s() missing required arguments: %s", c.Name, strings.Join(missing, ", "))
	}

	return obj, nil
}

// Object is an instance of a Class.
type Object struct {
	class *Class
	rt    *Runtime
	slots []Value
}

func (o *Object) TypeName() string { return o.class.Name }
func (*Object) value()             {}

// Class returns the class of the object.
func (o *Object) Class() *Class {
	return o.class
}

// Get reads the slot called name.
func (o *Object) Get(tok *Token, name string) (Value, error) {
	tok.check(o.rt)

	idx := o.class.slotIndex(name)
	if idx < 0 {
		return nil, AttributeError.Errorf("'%s' object has no attribute '%s'", o.class.Name, name)
	}

	return o.slots[idx], nil
}

// Set writes the slot called name. Enum constants are read-only.
func (o *Object) Set(tok *Token, name string, v Value) error {
	tok.check(o.rt)

	if o.class.Abstract {
		return AttributeError.Errorf("'%s' object attribute '%s' is read-only", o.class.Name, name)
	}

	idx := o.class.slotIndex(name)
	if idx < 0 {
		return AttributeError.Errorf("'%s' object has no attribute '%s'", o.class.Name, name)
	}

	if v == nil {
		v = None
	}

	o.slots[idx] = v

	return nil
}

// Variant returns the name and value of an enum constant. ok is false for
// objects that are not constants of an enum class.
func (o *Object) Variant() (name string, value int64, ok bool) {
	if !o.class.IsEnum() || !slices.Contains(o.class.consts, o) {
		return "", 0, false
	}

	value, _ = o.slots[1].(Int).Int64()

	return string(o.slots[0].(Str)), value, true
}

// CallMethod invokes a method bound to o.
func (o *Object) CallMethod(tok *Token, name string, args Args) (Value, error) {
	tok.check(o.rt)

	m, ok := o.class.methods[name]
	if !ok {
		return nil, AttributeError.Errorf("'%s' object has no attribute '%s'", o.class.Name, name)
	}

	return m(tok, o, args)
}
