package registry

import (
	"fmt"
	"go/token"

	"ssbh-bindings/internal/diagnostic"
)

// Validate checks the registry on its own: names, duplicates and references
// between entries. Checks against the native types are done when planning.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("registry_is_nil", "registry is nil", "", "")
		return res
	}

	if len(f.Families) == 0 {
		res.AddError("no_families", "registry declares no families", "", "")
	}

	families := map[string]struct{}{}

	for i := range f.Families {
		fam := &f.Families[i]

		if fam.Name == "" {
			res.AddError("family_name_missing", fmt.Sprintf("family #%d has no name", i), "", "")
			continue
		}

		if _, ok := families[fam.Name]; ok {
			res.AddError("duplicate_family", fmt.Sprintf("duplicate family %q", fam.Name), fam.Name, "")
			continue
		}

		families[fam.Name] = struct{}{}

		validateFamily(res, fam)
	}

	return res
}

func validateFamily(res *diagnostic.Diagnostics, fam *Family) {
	if fam.Package == "" {
		res.AddError("package_missing", "family has no package", fam.Name, "")
	}

	if !token.IsIdentifier(fam.Error) {
		res.AddError("invalid_error_name", fmt.Sprintf("error kind %q is not an identifier", fam.Error), fam.Name, "")
	}

	if _, ok := fam.Type(fam.Root); !ok {
		res.AddError("root_not_declared", fmt.Sprintf("root type %q is not declared in types", fam.Root), fam.Name, fam.Root)
	}

	validateFunctions(res, fam.Name, "", fam.Functions)

	types := map[string]struct{}{}

	for i := range fam.Types {
		t := &fam.Types[i]

		if !token.IsIdentifier(t.Name) || !token.IsExported(t.Name) {
			res.AddError("invalid_type_name", fmt.Sprintf("type %q is not an exported identifier", t.Name), fam.Name, t.Name)
			continue
		}

		if _, ok := types[t.Name]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("duplicate type %q", t.Name), fam.Name, t.Name)
			continue
		}

		types[t.Name] = struct{}{}

		seen := map[string]struct{}{}
		for _, name := range t.Init {
			if _, ok := seen[name]; ok {
				res.AddError("duplicate_init_param", fmt.Sprintf("duplicate init parameter %q", name), fam.Name, t.Name+"."+name)
			}

			seen[name] = struct{}{}

			if _, ok := t.Defaults[name]; ok {
				res.AddError("default_for_required", fmt.Sprintf("init parameter %q cannot have a default", name), fam.Name, t.Name+"."+name)
			}
		}

		validateFunctions(res, fam.Name, t.Name+".", t.Methods)
	}
}

func validateFunctions(res *diagnostic.Diagnostics, family, prefix string, fns []Function) {
	seen := map[string]struct{}{}

	for _, fn := range fns {
		if !token.IsIdentifier(fn.Name) {
			res.AddError("invalid_function_name", fmt.Sprintf("function %q is not an identifier", fn.Name), family, prefix+fn.Name)
			continue
		}

		if _, ok := seen[fn.Name]; ok {
			res.AddError("duplicate_function", fmt.Sprintf("duplicate function %q", fn.Name), family, prefix+fn.Name)
			continue
		}

		seen[fn.Name] = struct{}{}

		for _, p := range fn.Params {
			if p.Name == "" || p.Type == "" {
				res.AddError("invalid_param", fmt.Sprintf("parameter of %s needs a name and a type", fn.Name), family, prefix+fn.Name)
			}
		}
	}
}
