package plan

import (
	"fmt"
	"slices"
	"sort"

	"ssbh-bindings/internal/analyze"
	"ssbh-bindings/internal/common"
	"ssbh-bindings/internal/diagnostic"
	"ssbh-bindings/internal/match"
	"ssbh-bindings/internal/registry"
	"ssbh-bindings/primitive"
)

// maxSuggestions is the number of "did you mean" names attached to a diagnostic.
const maxSuggestions = 2

// Analyze loads the native package of every family. dir is the working
// directory of the package loader, "" for the current one.
func Analyze(reg *registry.File, dir string) (*analyze.TypeGraph, error) {
	var patterns []string

	for _, fam := range reg.Families {
		if fam.Package != "" && !slices.Contains(patterns, fam.Package) {
			patterns = append(patterns, fam.Package)
		}
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = dir

	return analyzer.LoadPackages(patterns...)
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph *analyze.TypeGraph
	reg   *registry.File
}

// NewResolver creates a new Resolver.
func NewResolver(graph *analyze.TypeGraph, reg *registry.File) *Resolver {
	return &Resolver{graph: graph, reg: reg}
}

// Resolve runs the full resolution pipeline. The plan is always returned so
// its diagnostics can be reported; the error is non-nil when any error
// diagnostic was recorded.
func (r *Resolver) Resolve() (*Plan, error) {
	p := &Plan{}

	p.Diagnostics.Merge(*registry.Validate(r.reg))
	if p.Diagnostics.HasErrors() {
		return p, p.Diagnostics.Error()
	}

	p.Module = r.reg.Module

	for i := range r.reg.Families {
		p.Families = append(p.Families, r.resolveFamily(&r.reg.Families[i], &p.Diagnostics))
	}

	return p, p.Diagnostics.Error()
}

type familyResolver struct {
	decl  *registry.Family
	graph *analyze.TypeGraph
	diags *diagnostic.Diagnostics
	out   *Family
	types *analyze.TypeStringer
	enums map[analyze.TypeID]*Enum
}

func (r *Resolver) resolveFamily(decl *registry.Family, diags *diagnostic.Diagnostics) *Family {
	out := &Family{
		Name:      decl.Name,
		Module:    decl.Qualified(r.reg.Module),
		Package:   decl.Package,
		PkgName:   common.PkgAlias(decl.Package),
		Error:     decl.Error,
		Root:      decl.Root,
		Functions: decl.Functions,
	}

	pkg, ok := r.graph.Packages[decl.Package]
	if !ok {
		diags.AddError("package_not_loaded", fmt.Sprintf("package %q was not analyzed", decl.Package), decl.Name, "")
		return out
	}

	out.PkgName = pkg.Name

	fr := &familyResolver{
		decl:  decl,
		graph: r.graph,
		diags: diags,
		out:   out,
		enums: make(map[analyze.TypeID]*Enum),
	}

	fr.types = &analyze.TypeStringer{Qualifier: func(pkgPath string) string {
		if pkgPath == decl.Package {
			return out.PkgName
		}

		return common.PkgAlias(pkgPath)
	}}

	for i := range decl.Types {
		if t := fr.resolveType(&decl.Types[i]); t != nil {
			out.Types = append(out.Types, t)
		}
	}

	fr.checkNames()
	fr.checkRecursion()
	fr.checkReachable()

	return out
}

func (fr *familyResolver) fail(code, path string, suggestions []string, format string, args ...any) {
	fr.diags.AddError(code, fmt.Sprintf(format, args...), fr.decl.Name, path, suggestions...)
}

func (fr *familyResolver) id(name string) analyze.TypeID {
	return analyze.TypeID{PkgPath: fr.decl.Package, Name: name}
}

func (fr *familyResolver) declaredNames() []string {
	names := make([]string, len(fr.decl.Types))
	for i := range fr.decl.Types {
		names[i] = fr.decl.Types[i].Name
	}

	return names
}

func (fr *familyResolver) resolveType(decl *registry.Type) *Type {
	info := fr.graph.GetType(fr.id(decl.Name))
	if info == nil {
		var known []string
		for _, id := range fr.graph.Packages[fr.decl.Package].Types {
			known = append(known, id.Name)
		}

		fr.fail("type_not_found", decl.Name, match.Suggest(decl.Name, known, maxSuggestions),
			"type %q not found in %s", decl.Name, fr.decl.Package)

		return nil
	}

	if info.Kind != analyze.TypeKindStruct {
		fr.fail("not_a_struct", decl.Name, nil, "type %q is a %s, not a struct", decl.Name, info.Kind)
		return nil
	}

	t := &Type{
		Name:    decl.Name,
		GoType:  fr.types.TypeString(info),
		Methods: decl.Methods,
	}

	var slots []string

	for i := range info.Fields {
		f := &info.Fields[i]
		path := analyze.NewTypePath(decl.Name).Field(f.SlotName())

		if !f.Exported || f.Skipped() {
			fr.fail("field_not_exposed", path.String(), nil,
				"native field %s has no slot and would be reset on every save", f.Name)

			continue
		}

		slots = append(slots, f.SlotName())

		if f.Embedded {
			fr.fail("unsupported_embedded", path.String(), nil, "embedded field %s is not supported", f.Name)
			continue
		}

		if field := fr.resolveField(decl, f, path); field != nil {
			t.Fields = append(t.Fields, field)
		}
	}

	fr.checkDeclared(decl, slots)

	return t
}

func (fr *familyResolver) resolveField(decl *registry.Type, f *analyze.FieldInfo, path *analyze.TypePath) *Field {
	adapter, pyType, ok := fr.adapter(f.Type, path)
	if !ok {
		return nil
	}

	field := &Field{
		GoName:    f.Name,
		Slot:      f.SlotName(),
		Container: analyze.Dispatch(f.Type),
		GoType:    fr.types.TypeString(f.Type),
		Adapter:   adapter,
		PyType:    pyType,
		Required:  decl.IsRequired(f.SlotName()),
	}

	if !field.Required {
		fr.defaultOf(decl, f.Type, field, path.String())
	}

	return field
}

// adapter returns the adapter expression and the stub type of t.
func (fr *familyResolver) adapter(t *analyze.TypeInfo, path *analyze.TypePath) (expr, pyType string, ok bool) {
	switch analyze.Dispatch(t) {
	case analyze.ContainerScalar:
		kind := analyze.ScalarKind(t)
		return primitive.Generate(kind, fr.types.TypeString(t), MappyPkg), kind.PyType(), true

	case analyze.ContainerOptional:
		elem, py, ok := fr.adapter(t.ElemType, path)
		return MappyPkg + ".Optional(" + elem + ")", "Optional[" + py + "]", ok

	case analyze.ContainerSequence:
		elem, py, ok := fr.adapter(t.ElemType, path.Slice())
		return MappyPkg + ".Seq(" + elem + ")", "List[" + py + "]", ok

	case analyze.ContainerFixed:
		elem, py, ok := fr.adapter(t.ElemType, path.Index(t.Len))
		array, elemType := fr.types.TypeString(t), fr.types.TypeString(t.ElemType)
		expr = fmt.Sprintf("%s.Array[%s](%s, func(a *%s) []%s { return a[:] })", MappyPkg, array, elem, array, elemType)

		return expr, "List[" + py + "]", ok

	case analyze.ContainerNested:
		if !fr.local(t, path) {
			return "", "", false
		}

		if _, declared := fr.decl.Type(t.ID.Name); !declared {
			fr.fail("nested_not_exposed", path.String(), match.Suggest(t.ID.Name, fr.declaredNames(), maxSuggestions),
				"nested type %s is not declared in family %s", t.ID.Name, fr.decl.Name)

			return "", "", false
		}

		return t.ID.Name + "Adapter", t.ID.Name, true

	case analyze.ContainerEnumerated:
		if !fr.local(t, path) {
			return "", "", false
		}

		fr.enum(t)

		return t.ID.Name + "Adapter", t.ID.Name, true

	default:
		fr.fail("unsupported_type", path.String(), nil, "field type %s is not supported", fr.types.TypeString(t))
		return "", "", false
	}
}

func (fr *familyResolver) local(t *analyze.TypeInfo, path *analyze.TypePath) bool {
	if t.ID.PkgPath == fr.decl.Package {
		return true
	}

	fr.fail("foreign_type", path.String(), nil, "type %s is not defined in %s", t.ID, fr.decl.Package)

	return false
}

func (fr *familyResolver) enum(t *analyze.TypeInfo) {
	if _, ok := fr.enums[t.ID]; ok {
		return
	}

	e := &Enum{Name: t.ID.Name, GoType: fr.types.TypeString(t), Variants: t.Variants}
	fr.enums[t.ID] = e
	fr.out.Enums = append(fr.out.Enums, e)
}

// checkDeclared cross-checks the names the registry uses for a type against
// its native slots.
func (fr *familyResolver) checkDeclared(decl *registry.Type, slots []string) {
	unknown := func(section, name string) {
		fr.fail("field_not_found", decl.Name+"."+name, match.Suggest(name, slots, maxSuggestions),
			"%s names %q, which is not a field of %s", section, name, decl.Name)
	}

	for _, name := range decl.Init {
		if !slices.Contains(slots, name) {
			unknown("init", name)
		}
	}

	defaults := make([]string, 0, len(decl.Defaults))
	for name := range decl.Defaults {
		defaults = append(defaults, name)
	}

	sort.Strings(defaults)

	for _, name := range defaults {
		if !slices.Contains(slots, name) {
			unknown("defaults", name)
		}
	}

	if !isOrdered(decl.Init, slots) {
		fr.fail("init_order", decl.Name, nil, "init parameters %v must follow the field order %v", decl.Init, slots)
	}

	if len(decl.Fields) == 0 {
		return
	}

	for _, name := range decl.Fields {
		if !slices.Contains(slots, name) {
			unknown("fields", name)
		}
	}

	for _, name := range slots {
		if !slices.Contains(decl.Fields, name) {
			fr.fail("field_not_declared", decl.Name+"."+name, nil, "native field %q is missing from fields", name)
		}
	}

	if slices.Equal(sortedCopy(decl.Fields), sortedCopy(slots)) && !slices.Equal(decl.Fields, slots) {
		fr.fail("field_order", decl.Name, nil, "fields %v must match the native order %v", decl.Fields, slots)
	}
}

// isOrdered reports whether the names present in order appear in the same
// relative order.
func isOrdered(names, order []string) bool {
	last := -1

	for _, name := range names {
		idx := slices.Index(order, name)
		if idx < 0 {
			continue
		}

		if idx < last {
			return false
		}

		last = idx
	}

	return true
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)

	return out
}

// checkNames rejects enum classes clashing with struct classes.
func (fr *familyResolver) checkNames() {
	for _, e := range fr.out.Enums {
		if _, ok := fr.out.Type(e.Name); ok {
			fr.fail("duplicate_class", e.Name, nil, "enum %s clashes with a struct of the same name", e.Name)
		}
	}
}

// nestedRefs returns the struct types t refers to through containers.
func nestedRefs(t *analyze.TypeInfo) []analyze.TypeID {
	switch analyze.Dispatch(t) {
	case analyze.ContainerOptional, analyze.ContainerSequence, analyze.ContainerFixed:
		return nestedRefs(t.ElemType)
	case analyze.ContainerNested:
		return []analyze.TypeID{t.ID}
	default:
		return nil
	}
}

func (fr *familyResolver) refs(name string) []analyze.TypeID {
	info := fr.graph.GetType(fr.id(name))
	if info == nil {
		return nil
	}

	var out []analyze.TypeID
	for i := range info.Fields {
		out = append(out, nestedRefs(info.Fields[i].Type)...)
	}

	return out
}

// checkRecursion rejects types that contain themselves: their adapters would
// depend on each other during package initialization.
func (fr *familyResolver) checkRecursion() {
	for _, t := range fr.out.Types {
		self := fr.id(t.Name)

		var d Dealer
		for _, ref := range fr.refs(t.Name) {
			if ref.PkgPath == fr.decl.Package {
				d.Needs(ref)
			}
		}

		for id, ok := d.Next(); ok; id, ok = d.Next() {
			if id == self {
				fr.fail("recursive_type", t.Name, nil, "type %s refers to itself", t.Name)
				break
			}

			for _, ref := range fr.refs(id.Name) {
				if ref.PkgPath == fr.decl.Package {
					d.Needs(ref)
				}
			}
		}
	}
}

// checkReachable warns about declared types the root never reaches.
func (fr *familyResolver) checkReachable() {
	var d Dealer

	d.Needs(fr.id(fr.decl.Root))

	for id, ok := d.Next(); ok; id, ok = d.Next() {
		for _, ref := range fr.refs(id.Name) {
			if ref.PkgPath == fr.decl.Package {
				d.Needs(ref)
			}
		}
	}

	for _, t := range fr.out.Types {
		if !d.Seen(fr.id(t.Name)) {
			fr.diags.AddWarning("unreachable_type", fmt.Sprintf("type %s is not reachable from %s", t.Name, fr.decl.Root),
				fr.decl.Name, t.Name)
		}
	}
}
