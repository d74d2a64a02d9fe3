// keysymgen writes the keysym name table used by the xkb package from
// the X11 keysym headers.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"
)

const fileTemplate = `// Code generated by keysymgen from {{join .Sources ", "}}. DO NOT EDIT.

package {{.Package}}

var keysymTable = [...]keysymEntry{
{{- range .Keysyms}}
	{ {{- printf "%q" .Name}}, {{printf "%#x" .Value}}, {{printf "%#x" .Rune}}},
{{- end}}
}
`

// evdevBase is the value that _EVDEVK in XF86keysym.h adds to a kernel
// key code.
const evdevBase = 0x10081000

var (
	definePattern = regexp.MustCompile(`^#define\s+(XK|XF86XK)_([A-Za-z0-9_]+)\s+(0x[0-9A-Fa-f]+|_EVDEVK\((0x[0-9A-Fa-f]+)\))(.*)$`)

	// Only exact mappings are used. keysymdef.h marks approximate ones
	// with parentheses.
	runePattern = regexp.MustCompile(`^\s*/\*\s*U\+([0-9A-Fa-f]{4,6})\s`)
)

type Keysym struct {
	Name  string
	Value uint32
	Rune  rune
}

// parse reads the keysym definitions from a header in the format of
// keysymdef.h.
func parse(r io.Reader) ([]Keysym, error) {
	var syms []Keysym
	s := bufio.NewScanner(r)
	for s.Scan() {
		m := definePattern.FindStringSubmatch(s.Text())
		if m == nil {
			continue
		}

		name := m[2]
		if m[1] == "XF86XK" {
			name = "XF86" + name
		}

		raw, offset := m[3], uint64(0)
		if m[4] != "" {
			raw, offset = m[4], evdevBase
		}
		v, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("keysym %v: %w", name, err)
		}

		sym := Keysym{Name: name, Value: uint32(v + offset)}
		if rm := runePattern.FindStringSubmatch(m[5]); rm != nil {
			r, err := strconv.ParseUint(rm[1], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("keysym %v: %w", name, err)
			}
			sym.Rune = rune(r)
		}
		syms = append(syms, sym)
	}
	return syms, s.Err()
}

type Context struct {
	Package string
	Sources []string
	Keysyms []Keysym
}

func (ctx Context) generate() ([]byte, error) {
	tmpl, err := template.New("file").Funcs(template.FuncMap{"join": strings.Join}).Parse(fileTemplate)
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

func load(path string) ([]Keysym, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parse(file)
}

func main() {
	in := flag.String("in", "/usr/include/X11/keysymdef.h,/usr/include/X11/XF86keysym.h", "comma-separated list of keysym headers")
	out := flag.String("out", "keysyms.go", "output file")
	pkg := flag.String("pkg", os.Getenv("GOPACKAGE"), "output package name")
	flag.Parse()

	ctx := Context{Package: *pkg}
	for _, path := range strings.Split(*in, ",") {
		syms, err := load(path)
		if err != nil {
			log.Fatalf("load %v: %v", path, err)
		}
		ctx.Sources = append(ctx.Sources, filepath.Base(path))
		ctx.Keysyms = append(ctx.Keysyms, syms...)
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
