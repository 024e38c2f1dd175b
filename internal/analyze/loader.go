package analyze

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the go/packages mode needed to read declarations and constants.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads native packages into a TypeGraph. Types declared outside the
// loaded packages are kept opaque (TypeKindExternal).
type Analyzer struct {
	// Dir is the working directory of the package loader, "" for the current one.
	Dir string

	graph *TypeGraph
	// seen caches every analyzed type so that recursive types terminate.
	seen   map[types.Type]*TypeInfo
	consts map[*types.TypeName][]Variant
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:  NewTypeGraph(),
		seen:   make(map[types.Type]*TypeInfo),
		consts: make(map[*types.TypeName][]Variant),
	}
}

// LoadPackages loads patterns, e.g. "ssbh-bindings/ssbhdata/adj" or "./ssbhdata/...",
// and adds their exported named types to the graph. Any package error fails the load.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: LoadMode, Dir: a.Dir}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// every root package must be known before fields are classified as external
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
		a.indexConsts(pkg.Types)
	}

	for _, pkg := range pkgs {
		a.addNamedTypes(pkg)
	}

	return a.graph, nil
}

// GetStruct returns the named struct typeName of pkgPath.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	return a.graph.Struct(TypeID{PkgPath: pkgPath, Name: typeName})
}

// indexConsts records the exported integer constants of every named type
// declared in pkg, in source order. They become the enum variants.
func (a *Analyzer) indexConsts(pkg *types.Package) {
	scope := pkg.Scope()

	var found []*types.Const

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}

		if b, ok := named.Underlying().(*types.Basic); ok && b.Info()&types.IsInteger != 0 {
			found = append(found, c)
		}
	}

	slices.SortStableFunc(found, func(x, y *types.Const) int { return int(x.Pos() - y.Pos()) })

	for _, c := range found {
		value, exact := constant.Int64Val(c.Val())
		if !exact {
			continue
		}

		obj := c.Type().(*types.Named).Obj()
		a.consts[obj] = append(a.consts[obj], Variant{Name: variantName(obj.Name(), c.Name()), GoName: c.Name(), Value: value})
	}
}

// variantName drops the enum type name from a constant name, the way
// stringer -trimprefix does: MinFilterNearest of MinFilter is Nearest.
func variantName(typeName, constName string) string {
	if rest, ok := strings.CutPrefix(constName, typeName); ok && token.IsExported(rest) {
		return rest
	}

	return constName
}

func (a *Analyzer) addNamedTypes(pkg *packages.Package) {
	info := a.graph.Packages[pkg.PkgPath]
	scope := pkg.Types.Scope()

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[id] = a.analyzeType(tn.Type())
		info.Types = append(info.Types, id)
	}
}

func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	if info, ok := a.seen[t]; ok {
		return info
	}

	info := &TypeInfo{GoType: t}
	a.seen[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamed(tt, info)
	case *types.Basic:
		info.Kind = TypeKindBasic
	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Array:
		info.Kind = TypeKindArray
		info.Len = tt.Len()
		info.ElemType = a.analyzeType(tt.Elem())
	case *types.Struct:
		info.Kind = TypeKindStruct
		info.Fields = a.fields(tt)
	default:
		// maps, interfaces, channels and funcs have no dynamic counterpart
		info.Kind = TypeKindUnknown
	}

	return info
}

func (a *Analyzer) analyzeNamed(named *types.Named, info *TypeInfo) {
	obj := named.Obj()

	if obj.Pkg() == nil {
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindExternal

		return
	}

	info.ID = TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}

	if _, loaded := a.graph.Packages[info.ID.PkgPath]; !loaded {
		info.Kind = TypeKindExternal
		return
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		info.Kind = TypeKindStruct
		info.Fields = a.fields(st)

		return
	}

	info.Kind = TypeKindAlias
	info.Underlying = a.analyzeType(named.Underlying())

	if variants := a.consts[obj]; len(variants) > 0 {
		info.Kind = TypeKindEnum
		info.Variants = variants
	}
}

func (a *Analyzer) fields(st *types.Struct) []FieldInfo {
	var out []FieldInfo

	for i := range st.NumFields() {
		v := st.Field(i)

		out = append(out, FieldInfo{
			Name:     v.Name(),
			Type:     a.analyzeType(v.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: v.Embedded(),
			Exported: v.Exported(),
		})
	}

	return out
}
