package gen

import (
	"text/template"
)

var mappyTemplate = template.Must(template.New("mappy").Parse(`// Code generated by ssbhgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

{{if .Comments}}// Exception kinds raised for codec failures, one per family.
{{end -}}
var (
{{- range .Families}}
	{{.Error}} = dyn.NewExceptionKind("{{.Module}}", "{{.Error}}", nil)
{{- end}}
)
{{- if .Adapters}}

var (
{{- range .Adapters}}
	{{.Name}} = {{.Expr}}
{{- end}}
)
{{- end}}
{{- range $fam := .Families}}
{{- range .Enums}}

{{if $.Comments}}// {{.Name}}Class holds the constants of {{.GoType}}.
{{end -}}
var {{.Name}}Class = new{{.Name}}Class()

{{if $.Comments}}// {{.Name}}Adapter maps {{.GoType}} onto the constants of {{.Name}}Class.
{{end -}}
var {{.Name}}Adapter = {{$.Mappy}}.Enum[{{.GoType}}]({{.Name}}Class)

func new{{.Name}}Class() *dyn.Class {
	c := dyn.NewEnumClass("{{.Name}}").In("{{$fam.Module}}")
{{- range .Variants}}
	c.AddConst("{{.Name}}", int64({{.Value}}))
{{- end}}

	return c
}
{{- end}}
{{- range .Types}}

{{if $.Comments}}// {{.Name}}Class is the runtime class of {{.GoType}}.
{{end -}}
var {{.Name}}Class = dyn.NewClass("{{.Name}}"{{if .Fields}},
{{- range .Fields}}
	dyn.Slot{Name: "{{.Slot}}"{{if .Required}}, Required: true{{end}}{{if .Default}}, Default: {{.Default}}{{end}}},
{{- end}}
{{end}}).In("{{$fam.Module}}")

{{if $.Comments}}// {{.Name}}Adapter maps {{.GoType}} onto {{.Name}}Class instances.
{{end -}}
var {{.Name}}Adapter = {{$.Mappy}}.Struct({{.Name}}ToDynamic, {{.Name}}ToNative)

{{if $.Comments}}// {{.Name}}ToDynamic converts in into a new {{.Name}} instance.
{{end -}}
func {{.Name}}ToDynamic(tok *dyn.Token, in {{.GoType}}) *dyn.Object {
	obj := {{.Name}}Class.Alloc(tok)
{{- range .Fields}}
	{{$.Mappy}}.SetField(tok, obj, "{{.Slot}}", {{.Adapter}}, in.{{.GoName}})
{{- end}}

	return obj
}

{{if $.Comments}}// {{.Name}}ToNative converts an instance of {{.Name}} into {{.GoType}}.
{{end -}}
func {{.Name}}ToNative(tok *dyn.Token, v dyn.Value) (out {{.GoType}}, err error) {
	{{if .Fields}}obj, err :={{else}}_, err ={{end}} {{$.Mappy}}.ObjectOf(v, {{.Name}}Class)
	if err != nil {
		return out, err
	}
{{range .Fields}}
	if out.{{.GoName}}, err = {{$.Mappy}}.Field(tok, obj, "{{.Slot}}", {{.Adapter}}); err != nil {
		return out, err
	}
{{end}}
	return out, nil
}
{{- end}}
{{- end}}

{{if .Comments}}// Families lists the generated submodules in registry order.
{{end -}}
var Families = []FamilyInfo{
{{- range .Families}}
	{
		Name:      "{{.Name}}",
		Module:    "{{.Module}}",
		Error:     {{.Error}},
		Root:      {{.Root}}Class,
		Functions: {{.Functions}},
		Classes: []ClassInfo{
{{- range .Types}}
			{
				Class:   {{.Name}}Class,
				Methods: {{.Methods}},
				Slots: []SlotInfo{
{{- range .Fields}}
					{Name: "{{.Slot}}", Type: "{{.PyType}}"},
{{- end}}
				},
			},
{{- end}}
{{- range .Enums}}
			{Class: {{.Name}}Class},
{{- end}}
		},
	},
{{- end}}
}
`))
