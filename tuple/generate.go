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

const maxArity = 12

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"list":    list,
	"results": results,
}).Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuple
{{range .}}
// T{{.N}} holds a tuple of arity {{.N}}.
type T{{.N}}[{{list .N "A%d"}} any] struct {
{{- range .Slots}}
	A{{.}} A{{.}}
{{- end}}
}

// MkT{{.N}} returns a T{{.N}} holding the given values.
func MkT{{.N}}[{{list .N "A%d"}} any]({{list .N "a%d A%[1]d"}}) T{{.N}}[{{list .N "A%d"}}] {
	return T{{.N}}[{{list .N "A%d"}}]{ {{- list .N "a%d"}}}
}

// T returns the elements of t as separate values.
func (t T{{.N}}[{{list .N "A%d"}}]) T() {{results .N "A%d"}} {
	return {{list .N "t.A%d"}}
}
{{end}}`))

type arity struct {
	N     int
	Slots []int
}

// list returns the comma-separated result of formatting
// each index in [0, n) with the given format.
func list(n int, format string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

// results is like list but parenthesizes the result when
// there is more than one element.
func results(n int, format string) string {
	if n == 1 {
		return list(n, format)
	}
	return "(" + list(n, format) + ")"
}

func main() {
	var arities []arity
	for n := 1; n <= maxArity; n++ {
		a := arity{N: n}
		for i := range n {
			a.Slots = append(a.Slots, i)
		}
		arities = append(arities, a)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatal(err)
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuple_gen.go", data, 0o666); err != nil {
		log.Fatal(err)
	}
}
