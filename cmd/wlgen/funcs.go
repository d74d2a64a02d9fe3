package main

import (
	"regexp"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"deedles.dev/wloverlay/protocol"
)

var versionSuffix = regexp.MustCompile(`_v[0-9]+$`)

func (ctx Context) funcs() template.FuncMap {
	return template.FuncMap{
		"ident":  ctx.ident,
		"camel":  ctx.camel,
		"inter":  ctx.inter,
		"export": ctx.export,
	}
}

// ident converts a protocol interface name into the unexported Go
// identifier used as a prefix for its constants. The version suffix
// and the configured prefix are removed. If that leaves nothing, the
// namespace letter group is dropped instead, so zwp_tablet_v2 becomes
// tablet.
func (ctx Context) ident(v string) string {
	v = versionSuffix.ReplaceAllString(v, "")
	name, ok := strings.CutPrefix(v, ctx.Prefix)
	if !ok || (name == "") {
		_, name, _ = strings.Cut(v, "_")
	}
	return ctx.unexport(ctx.camel(name))
}

func (ctx Context) inter(i protocol.Interface) string {
	return ctx.ident(i.Name)
}

func (ctx Context) camel(v string) string {
	var buf strings.Builder
	buf.Grow(len(v))
	shift := true
	for _, c := range v {
		if c == '_' {
			shift = true
			continue
		}

		if shift {
			c = unicode.ToUpper(c)
		}
		buf.WriteRune(c)
		shift = false
	}
	return buf.String()
}

func (ctx Context) export(v string) string {
	if len(v) == 0 {
		return ""
	}

	c, size := utf8.DecodeRuneInString(v)
	if unicode.IsUpper(c) {
		return v
	}

	var buf strings.Builder
	buf.Grow(len(v))
	buf.WriteRune(unicode.ToUpper(c))
	buf.WriteString(v[size:])
	return buf.String()
}

func (ctx Context) unexport(v string) string {
	if len(v) == 0 {
		return ""
	}

	c, size := utf8.DecodeRuneInString(v)
	if unicode.IsLower(c) {
		return v
	}

	var buf strings.Builder
	buf.Grow(len(v))
	buf.WriteRune(unicode.ToLower(c))
	buf.WriteString(v[size:])
	return buf.String()
}
