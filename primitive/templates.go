package primitive

import (
	"bytes"
	"text/template"
)

var templates map[KindEnum]*template.Template

func init() {
	templates = map[KindEnum]*template.Template{}

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		var line string

		switch {
		case kind.IsSigned():
			line = "{{.pkg}}.Int[{{.type}}]()"
		case kind.IsUnsigned():
			line = "{{.pkg}}.Uint[{{.type}}]()"
		case kind.IsFloat():
			line = "{{.pkg}}.Float[{{.type}}]()"
		case kind == KindBool:
			line = "{{.pkg}}.Bool[{{.type}}]()"
		case kind == KindString:
			line = "{{.pkg}}.String[{{.type}}]()"
		}

		templates[kind] = template.Must(template.New(kind.String()).Parse(line))
	}
}

// Generate renders the adapter expression of a leaf of the given kind. typeName is
// the native spelling of the leaf type (a named type keeps its name), pkg is the
// import name of the adapter package. Unknown kinds yield "".
func Generate(kind KindEnum, typeName, pkg string) string {
	tmpl, ok := templates[kind]
	if !ok {
		return ""
	}

	if typeName == "" {
		typeName = kind.GoName()
	}

	var buf bytes.Buffer

	err := tmpl.Execute(&buf, map[string]any{
		"pkg":  pkg,
		"type": typeName,
	})
	if err != nil {
		panic(err)
	}

	return buf.String()
}
