package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"quote":    func(s string) string { return fmt.Sprintf("%q", s) },
	"sentence": sentence,
	"docLines": docLines,
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(fileTmpl))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

type fileData struct {
	Package string
	*RawTable
}

// GenerateTable renders the Go source for one status table.
func GenerateTable(t *RawTable, pkg string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	renderTemplate(&b, "file", fileData{Package: pkg, RawTable: t})
	return b.String(), nil
}

// sentence terminates s with a period.
func sentence(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// docLines splits a multi-line doc string for comment rendering.
func docLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

const fileTmpl = `
{{- define "file" -}}
// Code generated by ddc-statusgen. DO NOT EDIT.

{{if .BuildTag}}//go:build {{.BuildTag}}

{{end -}}
package {{.Package}}
{{if .BuildTag}}
// {{.Domain}}Available reports whether {{.Domain}} support is compiled in.
const {{.Domain}}Available = true
{{end}}
{{- if .Constants}}
// {{.Domain}} status codes.
const (
{{- range .Codes}}
	// {{$.ConstPrefix}}{{.Const}} is {{.Name}}: {{sentence .Description}}
{{- if .Doc}}
	//
{{- range docLines .Doc}}
	// {{.}}
{{- end}}
{{- end}}
{{- if .Deprecated}}
	//
	// Deprecated: use {{.Deprecated}}.
{{- end}}
	{{$.ConstPrefix}}{{.Const}} Code = {{.Value}}
{{- end}}
)
{{end}}
var {{.TableVar}} = []Info{
{{- range .Codes}}
	{Code: {{.Value}}, Name: {{quote .Name}}, Description: {{quote .Description}}},
{{- end}}
}
{{end}}
`
