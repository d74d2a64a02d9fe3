package xkb

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokKeyName
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	case tokKeyName:
		return "key name"
	case tokPunct:
		return "punctuation"
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string
	num  uint64
	line int
}

func (t token) is(kind tokenKind, text string) bool {
	return (t.kind == kind) && (t.text == text)
}

func (t token) String() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%v %q", t.kind, t.text)
}

// SyntaxError is returned when a keymap can't be tokenized or parsed.
type SyntaxError struct {
	Line int
	Msg  string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("xkb: line %v: %v", err.Line, err.Msg)
}

func tokenize(src []byte) ([]token, error) {
	var toks []token
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++

		case (c == ' ') || (c == '\t') || (c == '\r') || (c == 0):
			i++

		case (c == '#') || ((c == '/') && (i+1 < len(src)) && (src[i+1] == '/')):
			for (i < len(src)) && (src[i] != '\n') {
				i++
			}

		case c == '"':
			start := i + 1
			i++
			for (i < len(src)) && (src[i] != '"') {
				if src[i] == '\\' {
					i++
				}
				if (i < len(src)) && (src[i] == '\n') {
					line++
				}
				i++
			}
			if i >= len(src) {
				return nil, &SyntaxError{Line: line, Msg: "unterminated string"}
			}
			toks = append(toks, token{kind: tokString, text: string(src[start:i]), line: line})
			i++

		case c == '<':
			start := i + 1
			for (i < len(src)) && (src[i] != '>') && (src[i] != '\n') {
				i++
			}
			if (i >= len(src)) || (src[i] != '>') {
				return nil, &SyntaxError{Line: line, Msg: "unterminated key name"}
			}
			toks = append(toks, token{kind: tokKeyName, text: string(src[start:i]), line: line})
			i++

		case isDigit(c):
			start := i
			for (i < len(src)) && (isIdent(src[i])) {
				i++
			}
			text := string(src[start:i])
			n, err := strconv.ParseUint(text, 0, 64)
			if err != nil {
				n, err = strconv.ParseUint(text, 10, 64)
			}
			if err != nil {
				// Keysym names such as 3270_Enter start with a digit.
				if strings.Contains(text, "_") {
					toks = append(toks, token{kind: tokIdent, text: text, line: line})
					break
				}
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("bad number %q", text)}
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: n, line: line})

		case isIdentStart(c):
			start := i
			for (i < len(src)) && isIdent(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(src[start:i]), line: line})

		default:
			toks = append(toks, token{kind: tokPunct, text: string(c), line: line})
			i++
		}
	}

	return append(toks, token{kind: tokEOF, line: line}), nil
}

func isDigit(c byte) bool {
	return (c >= '0') && (c <= '9')
}

func isIdentStart(c byte) bool {
	return ((c >= 'a') && (c <= 'z')) || ((c >= 'A') && (c <= 'Z')) || (c == '_')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
