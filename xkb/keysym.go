package xkb

import (
	"strconv"
	"strings"
	"unicode"
)

//go:generate go run deedles.dev/wloverlay/cmd/keysymgen -out keysyms.go

// Keysym is an X keysym value.
type Keysym uint32

const (
	NoSymbol   Keysym = 0
	VoidSymbol Keysym = 0xffffff

	KeyBackSpace Keysym = 0xff08
	KeyTab       Keysym = 0xff09
	KeyReturn    Keysym = 0xff0d
	KeyEscape    Keysym = 0xff1b
	KeyDelete    Keysym = 0xffff
	KeyF1        Keysym = 0xffbe

	unicodeOffset Keysym = 0x01000000
)

type keysymEntry struct {
	name string
	sym  Keysym
	r    rune
}

var (
	keysymNames   = make(map[string]Keysym, len(keysymTable)+1)
	keysymStrings = make(map[Keysym]string, len(keysymTable))
	keysymRunes   = make(map[Keysym]rune)
	runeKeysyms   = make(map[rune]Keysym)
)

func init() {
	keysymNames["NoSymbol"] = NoSymbol
	for _, e := range keysymTable {
		keysymNames[e.name] = e.sym

		// The first name listed for a keysym is its canonical one.
		if _, ok := keysymStrings[e.sym]; !ok {
			keysymStrings[e.sym] = e.name
		}

		if e.r == 0 {
			continue
		}
		if _, ok := keysymRunes[e.sym]; !ok {
			keysymRunes[e.sym] = e.r
		}
		if _, ok := runeKeysyms[e.r]; !ok {
			runeKeysyms[e.r] = e.sym
		}
	}
}

// KeysymFromName returns the keysym with the given name. Besides the
// names from the X11 keysym headers, it accepts Unicode names of the
// form U20AC and raw hexadecimal values such as 0x1000041.
func KeysymFromName(name string) (Keysym, bool) {
	if sym, ok := keysymNames[name]; ok {
		return sym, true
	}

	if rest, ok := strings.CutPrefix(name, "U"); ok && (len(rest) >= 4) {
		cp, err := strconv.ParseUint(rest, 16, 32)
		if (err == nil) && (cp <= unicode.MaxRune) {
			return unicodeKeysym(rune(cp)), true
		}
	}

	if rest, ok := strings.CutPrefix(name, "0x"); ok {
		v, err := strconv.ParseUint(rest, 16, 32)
		if err == nil {
			return Keysym(v), true
		}
	}

	return NoSymbol, false
}

func unicodeKeysym(r rune) Keysym {
	if ((r >= 0x20) && (r <= 0x7e)) || ((r >= 0xa0) && (r <= 0xff)) {
		return Keysym(r)
	}
	return unicodeOffset | Keysym(r)
}

// keysymForRune is the inverse of Rune. Legacy keysyms are preferred
// over Unicode ones.
func keysymForRune(r rune) Keysym {
	if ((r >= 0x20) && (r <= 0x7e)) || ((r >= 0xa0) && (r <= 0xff)) {
		return Keysym(r)
	}
	if sym, ok := runeKeysyms[r]; ok {
		return sym
	}
	return unicodeOffset | Keysym(r)
}

// Rune returns the character that sym produces, or 0 if it does not
// produce one.
func (sym Keysym) Rune() rune {
	switch {
	case (sym >= 0x20) && (sym <= 0x7e), (sym >= 0xa0) && (sym <= 0xff):
		return rune(sym)
	case (sym > unicodeOffset) && (sym <= unicodeOffset|0x10ffff):
		return rune(sym &^ unicodeOffset)
	case sym == KeyReturn:
		return '\r'
	case sym == KeyTab:
		return '\t'
	case sym == KeyEscape:
		return 0x1b
	case sym == KeyBackSpace:
		return '\b'
	}
	return keysymRunes[sym]
}

func (sym Keysym) String() string {
	if name, ok := keysymStrings[sym]; ok {
		return name
	}
	if (sym > unicodeOffset) && (sym <= unicodeOffset|0x10ffff) {
		return "U" + strings.ToUpper(strconv.FormatUint(uint64(sym&^unicodeOffset), 16))
	}
	return "0x" + strconv.FormatUint(uint64(sym), 16)
}

func (sym Keysym) cases() (r, lower, upper rune) {
	r = sym.Rune()
	if !unicode.IsLetter(r) {
		return r, r, r
	}
	return r, unicode.ToLower(r), unicode.ToUpper(r)
}

// IsLower reports whether sym is a lowercase letter that has an
// uppercase counterpart.
func (sym Keysym) IsLower() bool {
	r, lower, upper := sym.cases()
	return (lower != upper) && (r == lower)
}

// IsUpper reports whether sym is an uppercase letter that has a
// lowercase counterpart.
func (sym Keysym) IsUpper() bool {
	r, lower, upper := sym.cases()
	return (lower != upper) && (r == upper)
}

// ToUpper returns the uppercase counterpart of sym, or sym itself.
func (sym Keysym) ToUpper() Keysym {
	if !sym.IsLower() {
		return sym
	}
	_, _, upper := sym.cases()
	return keysymForRune(upper)
}

// IsKeypad reports whether sym belongs to the numeric keypad.
func (sym Keysym) IsKeypad() bool {
	return (sym >= 0xff80) && (sym <= 0xffbd)
}
