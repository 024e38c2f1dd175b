package bindings

import (
	"errors"
	"fmt"
	"sync"

	"ssbh-bindings/dyn"
)

var ErrNotImplemented = errors.New("no implementation registered")

// moduleTree builds the ssbh_data_py module once. The tree is immutable after
// construction and shared by every runtime it is installed into.
var moduleTree = sync.OnceValues(func() (*dyn.Module, error) {
	root := dyn.NewModule(Module)

	var errs []error

	for _, fam := range Families {
		sub := dyn.NewModule(fam.Module)

		for _, name := range fam.Functions {
			fn, ok := functions[fam.Name+"."+name]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: function %s.%s", ErrNotImplemented, fam.Module, name))
				continue
			}

			sub.AddFunction(name, fn)
		}

		for _, ci := range fam.Classes {
			for _, name := range ci.Methods {
				m, ok := methods[ci.Class.Name+"."+name]
				if !ok {
					errs = append(errs, fmt.Errorf("%w: method %s.%s", ErrNotImplemented, ci.Class.QualifiedName(), name))
					continue
				}

				ci.Class.AddMethod(name, m)
			}

			sub.AddClass(ci.Class)
		}

		root.AddSubmodule(sub)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return root, nil
})

// Install registers the ssbh_data_py module and its family submodules in rt.
func Install(rt *dyn.Runtime) (*dyn.Module, error) {
	root, err := moduleTree()
	if err != nil {
		return nil, err
	}

	err = rt.With(func(tok *dyn.Token) error {
		return rt.AddModule(tok, root)
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}
