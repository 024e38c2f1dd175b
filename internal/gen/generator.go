package gen

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"ssbh-bindings/internal/plan"
	"ssbh-bindings/internal/registry"
)

var (
	ErrPlanHasErrors       = errors.New("plan has error diagnostics")
	ErrDuplicateIdentifier = errors.New("duplicate generated identifier")
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated mapping file.
	Filename string
	// RuntimePath is the import path holding the dyn and mappy packages.
	RuntimePath string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "bindings",
		OutputDir:        "./bindings",
		Filename:         "zz_generated.mappy.go",
		RuntimePath:      "ssbh-bindings",
		GenerateComments: true,
	}
}

// Generator generates the mapping code of a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zz_generated.mappy.go").
	Filename string
	// Content is the formatted source code.
	Content []byte
}

type templateData struct {
	PackageName string
	Mappy       string
	Comments    bool
	Imports     []importSpec
	Adapters    []adapterVar
	Families    []familyData
}

type importSpec struct {
	Alias string
	Path  string
}

type adapterVar struct {
	Name string
	Expr string
}

type familyData struct {
	Name      string
	Module    string
	Error     string
	Root      string
	Functions string
	Types     []typeData
	Enums     []enumData
}

type typeData struct {
	Name    string
	GoType  string
	Methods string
	Fields  []fieldData
}

type fieldData struct {
	GoName   string
	Slot     string
	Adapter  string
	PyType   string
	Required bool
	Default  string
}

type enumData struct {
	Name     string
	GoType   string
	Variants []variantData
}

type variantData struct {
	Name  string
	Value string
}

// Generate renders the mapping file of p. A plan carrying error diagnostics
// is rejected.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrPlanHasErrors, p.Diagnostics.Error())
	}

	data, err := g.buildData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := mappyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(g.config.Filename, buf.Bytes(), nil)
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: formatted}}, nil
}

func (g *Generator) buildData(p *plan.Plan) (*templateData, error) {
	data := &templateData{
		PackageName: g.config.PackageName,
		Mappy:       plan.MappyPkg,
		Comments:    g.config.GenerateComments,
	}

	data.Imports = g.buildImports(p)

	idents, err := declared(p)
	if err != nil {
		return nil, err
	}

	h := newHoister("mappyAdapter", idents)

	for _, fam := range p.Families {
		fd := familyData{
			Name:      fam.Name,
			Module:    fam.Module,
			Error:     fam.Error,
			Root:      fam.Root,
			Functions: stringSlice(functionNames(fam.Functions...)),
		}

		for _, e := range fam.Enums {
			fd.Enums = append(fd.Enums, enumData{
				Name:     e.Name,
				GoType:   e.GoType,
				Variants: variants(e),
			})
		}

		for _, t := range fam.Types {
			td := typeData{
				Name:    t.Name,
				GoType:  t.GoType,
				Methods: stringSlice(functionNames(t.Methods...)),
			}

			for _, f := range t.Fields {
				field := fieldData{
					GoName:   f.GoName,
					Slot:     f.Slot,
					Adapter:  h.adapter(f.Adapter),
					PyType:   f.PyType,
					Required: f.Required,
				}

				switch {
				case f.Required:
				case f.DefaultFunc != "":
					field.Default = f.DefaultFunc
				case f.Value != "":
					field.Default = fmt.Sprintf("%s.Default(%s, %s)", plan.MappyPkg, field.Adapter, f.Value)
				}

				td.Fields = append(td.Fields, field)
			}

			fd.Types = append(fd.Types, td)
		}

		data.Families = append(data.Families, fd)
	}

	data.Adapters = h.vars

	return data, nil
}

// declared collects the package-level identifiers every family of p emits.
func declared(p *plan.Plan) (identSet, error) {
	idents := newIdentSet()

	for _, fam := range p.Families {
		if err := idents.add(fam.Name, fam.Error); err != nil {
			return nil, err
		}

		for _, e := range fam.Enums {
			if err := idents.add(fam.Name, e.Name+"Class", e.Name+"Adapter"); err != nil {
				return nil, err
			}
		}

		for _, t := range fam.Types {
			if err := idents.add(fam.Name, t.Name+"Class", t.Name+"Adapter", t.Name+"ToDynamic", t.Name+"ToNative"); err != nil {
				return nil, err
			}
		}
	}

	return idents, nil
}

func (g *Generator) buildImports(p *plan.Plan) []importSpec {
	specs := []importSpec{
		{Path: path.Join(g.config.RuntimePath, "dyn")},
		{Path: path.Join(g.config.RuntimePath, plan.MappyPkg)},
	}

	seen := make(map[string]bool)

	for _, fam := range p.Families {
		if fam.Package == "" || seen[fam.Package] {
			continue
		}

		seen[fam.Package] = true

		spec := importSpec{Path: fam.Package}
		if fam.PkgName != path.Base(fam.Package) {
			spec.Alias = fam.PkgName
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })

	return specs
}

// variants renders the enum constants qualified with the package of the enum type.
func variants(e *plan.Enum) []variantData {
	qualifier := ""
	if i := strings.LastIndexByte(e.GoType, '.'); i >= 0 {
		qualifier = e.GoType[:i+1]
	}

	out := make([]variantData, len(e.Variants))
	for i, v := range e.Variants {
		out[i] = variantData{Name: v.Name, Value: qualifier + v.Ident()}
	}

	return out
}

// identSet tracks the package-level identifiers emitted so far.
type identSet map[string]string

func newIdentSet() identSet {
	return identSet{"Families": "", "FamilyInfo": "", "ClassInfo": "", "SlotInfo": ""}
}

func (s identSet) add(family string, names ...string) error {
	for _, name := range names {
		if owner, ok := s[name]; ok {
			return fmt.Errorf("%w: %s in family %s clashes with family %q", ErrDuplicateIdentifier, name, family, owner)
		}

		s[name] = family
	}

	return nil
}

func functionNames(fns ...registry.Function) []string {
	out := make([]string, len(fns))
	for i, fn := range fns {
		out[i] = fn.Name
	}

	return out
}

// stringSlice renders names as a []string literal, "nil" when empty.
func stringSlice(names []string) string {
	if len(names) == 0 {
		return "nil"
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
