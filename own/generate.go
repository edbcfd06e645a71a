//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// maxArity matches the largest tuple in the tuple package.
const maxArity = 12

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"list": list,
}).Parse(`// Code generated by generate.go; DO NOT EDIT.

package own

import "github.com/rogpeppe/ownage/tuple"
{{range .}}{{if eq . 1}}
// Own1 converts refs.A0 to its owned form and returns the result
// of calling f with it. f is called exactly once, after the
// conversion, and is not retained.
{{- else}}
// Own{{.}} is like [Own1] for a tuple of arity {{.}}. The elements
// are converted in order, starting with refs.A0, before f is called.
{{- end}}
func Own{{.}}[{{list . "B%d Borrowed[O%[1]d]"}}, {{list . "O%d"}}, Out any](refs tuple.T{{.}}[{{list . "B%d"}}], f func({{list . "O%d"}}) Out) Out {
	return f({{list . "refs.A%d.ToOwned()"}})
}
{{end}}`))

// list returns the comma-separated result of formatting
// each index in [0, n) with the given format.
func list(n int, format string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

func main() {
	var arities []int
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, n)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatal(err)
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("own_gen.go", data, 0o666); err != nil {
		log.Fatal(err)
	}
}
