// wlgen writes the opcode constants for one of the embedded protocol
// descriptor tables into a Go source file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"

	"deedles.dev/wloverlay/protocol"
)

const fileTemplate = `// Code generated by wlgen from the {{.Proto.Name}} protocol. DO NOT EDIT.

package {{.Package}}

{{range .Proto.Interfaces -}}
{{$i := inter .}}
// {{.Name}}, version {{.Version}}.
const (
	{{$i}}Interface = "{{.Name}}"
{{- range $op, $r := .Requests}}
	{{$i}}Request{{camel $r.Name}} = {{$op}}
{{- end}}
{{- range $op, $e := .Events}}
	{{$i}}Event{{camel $e.Name}} = {{$op}}
{{- end}}
)
{{end}}`

type Context struct {
	Package string
	Prefix  string
	Proto   *protocol.Protocol
}

func (ctx Context) generate() ([]byte, error) {
	tmpl, err := template.New("file").Funcs(ctx.funcs()).Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, ctx)
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("format output: %w", err)
	}
	return src, nil
}

func main() {
	proto := flag.String("proto", "wayland", "name of the embedded protocol to generate constants for")
	out := flag.String("out", "opcodes.go", "output file")
	pkg := flag.String("pkg", os.Getenv("GOPACKAGE"), "output package name")
	prefix := flag.String("prefix", "wl_", "interface prefix name to strip")
	flag.Parse()

	p := protocol.ByName(*proto)
	if p == nil {
		log.Fatalf("unknown protocol %q", *proto)
	}

	ctx := Context{
		Package: *pkg,
		Prefix:  *prefix,
		Proto:   p,
	}
	src, err := ctx.generate()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	err = os.WriteFile(*out, src, 0644)
	if err != nil {
		log.Fatalf("write output: %v", err)
	}
}
