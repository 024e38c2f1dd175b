package dyn

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Runtime owns a dynamic object graph and its module namespace.
type Runtime struct {
	mu      sync.Mutex
	modules map[string]*Module
}

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{modules: make(map[string]*Module)}
}

// Token is the exclusive-access token of a runtime. It is valid from Acquire
// until Release.
type Token struct {
	rt       *Runtime
	released bool
}

// Acquire blocks until the caller holds exclusive access to the runtime.
func (rt *Runtime) Acquire() *Token {
	rt.mu.Lock()
	return &Token{rt: rt}
}

// Release gives up exclusive access. Releasing twice panics.
func (t *Token) Release() {
	if t == nil || t.released {
		panic("dyn: release of a token that is not held")
	}

	t.released = true
	t.rt.mu.Unlock()
}

// Runtime returns the runtime the token grants access to.
func (t *Token) Runtime() *Runtime {
	return t.rt
}

// check panics when the token cannot be used for objects owned by owner.
// A nil owner only checks that the token is held.
func (t *Token) check(owner *Runtime) {
	if t == nil {
		panic("dyn: nil token")
	}

	if t.released {
		panic("dyn: use of a released token")
	}

	if owner != nil && owner != t.rt {
		panic("dyn: token belongs to a different runtime")
	}
}

// With runs fn while holding the runtime token. The token is released on
// every exit path, including a panic in fn.
func (rt *Runtime) With(fn func(tok *Token) error) error {
	tok := rt.Acquire()
	defer tok.Release()

	return fn(tok)
}

// AddModule registers a top-level module.
func (rt *Runtime) AddModule(tok *Token, m *Module) error {
	tok.check(rt)

	if _, exists := rt.modules[m.Name]; exists {
		return fmt.Errorf("dyn: module %q is already registered", m.Name)
	}

	rt.modules[m.Name] = m

	return nil
}

// Import resolves a dotted module path such as "ssbh_data_py.adj_data".
func (rt *Runtime) Import(tok *Token, path string) (*Module, error) {
	tok.check(rt)

	parts := strings.Split(path, ".")

	m, ok := rt.modules[parts[0]]
	if !ok {
		return nil, ImportError.Errorf("No module named '%s'", path)
	}

	for _, name := range parts[1:] {
		m, ok = m.submodules[name]
		if !ok {
			return nil, ImportError.Errorf("No module named '%s'", path)
		}
	}

	return m, nil
}

// Args holds positional and keyword call arguments.
type Args struct {
	Pos []Value
	Kw  map[string]Value
}

// Positional builds Args from positional values.
func Positional(vals ...Value) Args {
	return Args{Pos: vals}
}

// Lookup returns the argument at position i or keyword name.
func (a Args) Lookup(i int, name string) (Value, bool) {
	if i >= 0 && i < len(a.Pos) {
		return a.Pos[i], true
	}

	v, ok := a.Kw[name]

	return v, ok
}

// Function is a module level callable. A non-nil error is always an *Exception.
type Function func(tok *Token, args Args) (Value, error)

// Module is a runtime namespace holding functions, classes and submodules.
type Module struct {
	Name       string
	functions  map[string]Function
	classes    map[string]*Class
	submodules map[string]*Module
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:       name,
		functions:  make(map[string]Function),
		classes:    make(map[string]*Class),
		submodules: make(map[string]*Module),
	}
}

// AddFunction registers fn under name.
func (m *Module) AddFunction(name string, fn Function) {
	m.functions[name] = fn
}

// AddClass registers c under its name and records m as its module.
func (m *Module) AddClass(c *Class) {
	c.Module = m.Name
	m.classes[c.Name] = c
}

// AddSubmodule registers sub under its last name segment.
func (m *Module) AddSubmodule(sub *Module) {
	name := sub.Name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	m.submodules[name] = sub
}

// Class returns the class registered under name.
func (m *Module) Class(name string) (*Class, bool) {
	c, ok := m.classes[name]
	return c, ok
}

// Classes returns the registered classes sorted by name.
func (m *Module) Classes() []*Class {
	out := make([]*Class, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Submodule returns the submodule registered under name.
func (m *Module) Submodule(name string) (*Module, bool) {
	sub, ok := m.submodules[name]
	return sub, ok
}

// Call invokes the function registered under name.
func (m *Module) Call(tok *Token, name string, args Args) (Value, error) {
	tok.check(nil)

	fn, ok := m.functions[name]
	if !ok {
		return nil, AttributeError.Errorf("module '%s' has no attribute '%s'", m.Name, name)
	}

	return fn(tok, args)
}
