package stub

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"ssbh-bindings/internal/gen"
	"ssbh-bindings/internal/plan"
)

// Header opens every stub file.
const Header = `# File automatically generated by ssbhgen.
# Changes made to this file will not be saved.
from typing import List, Tuple, Any, Optional, Union, ClassVar
`

const indent = "    "

// Filename returns the stub file name of fam, e.g. "adj_data.pyi".
func Filename(fam *plan.Family) string {
	return fam.Name + ".pyi"
}

// Generate renders the stub of every family of p concurrently. Files are
// returned in family order.
func Generate(ctx context.Context, p *plan.Plan) ([]gen.GeneratedFile, error) {
	files := make([]gen.GeneratedFile, len(p.Families))

	g, ctx := errgroup.WithContext(ctx)

	for i, fam := range p.Families {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files[i] = gen.GeneratedFile{Filename: Filename(fam), Content: Render(fam)}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// Render returns the stub of fam: the header, the free functions, then the
// struct classes followed by the enum classes.
func Render(fam *plan.Family) []byte {
	var b strings.Builder

	b.WriteString(Header)
	b.WriteString("\n\n")

	for _, fn := range fam.Functions {
		b.WriteString("def " + fn.Name + fn.Signature(false) + ": ...\n\n\n")
	}

	classes := make([]string, 0, len(fam.Types)+len(fam.Enums))
	for _, t := range fam.Types {
		classes = append(classes, renderClass(t))
	}

	for _, e := range fam.Enums {
		classes = append(classes, renderEnum(e))
	}

	b.WriteString(strings.Join(classes, "\n\n\n"))
	b.WriteString("\n")

	return []byte(b.String())
}

func renderClass(t *plan.Type) string {
	lines := []string{"class " + t.Name + ":"}

	for _, f := range t.Fields {
		lines = append(lines, indent+f.Slot+": "+f.PyType)
	}

	if len(t.Fields) > 0 {
		lines = append(lines, "")
	}

	params := []string{"self"}
	for _, f := range t.Init() {
		params = append(params, f.Slot+": "+f.PyType)
	}

	lines = append(lines, indent+"def __init__("+strings.Join(params, ", ")+") -> None: ...")

	for _, m := range t.Methods {
		lines = append(lines, "", indent+"def "+m.Name+m.Signature(true)+": ...")
	}

	return strings.Join(lines, "\n")
}

func renderEnum(e *plan.Enum) string {
	lines := []string{
		"class " + e.Name + ":",
		indent + "name: str",
		indent + "value: int",
		"",
	}

	for _, v := range e.Variants {
		lines = append(lines, indent+v.Name+": ClassVar["+e.Name+"]")
	}

	return strings.Join(lines, "\n")
}
