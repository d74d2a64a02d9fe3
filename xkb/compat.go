package xkb

import "sort"

type matchOp int

// Ordered by precedence.
const (
	matchExactly matchOp = iota
	matchAll
	matchNone
	matchAny
	matchAnyOrNone
)

var matchOps = map[string]matchOp{
	"exactly":     matchExactly,
	"allof":       matchAll,
	"noneof":      matchNone,
	"anyof":       matchAny,
	"anyofornone": matchAnyOrNone,
}

func (op matchOp) match(want, mods ModMask) bool {
	switch op {
	case matchExactly:
		return mods == want
	case matchAll:
		return mods&want == want
	case matchNone:
		return mods&want == 0
	case matchAny:
		return mods&want != 0
	default:
		return (mods == 0) || (mods&want != 0)
	}
}

// interp is a symbol interpretation from xkb_compatibility. Only the
// virtual modifier binding is kept.
type interp struct {
	sym          Keysym
	unknown      bool
	match        matchOp
	mods         ModMask
	vmod         string
	levelOneOnly bool
}

type modmapEntry struct {
	mods ModMask
	key  string
	sym  Keysym
}

// sortInterps orders interpretations the way they are searched: those
// for a specific keysym first, then by match operation.
func sortInterps(interps []interp) {
	sort.SliceStable(interps, func(i, j int) bool {
		a, b := interps[i], interps[j]
		if (a.sym == NoSymbol) != (b.sym == NoSymbol) {
			return a.sym != NoSymbol
		}
		return a.match < b.match
	})
}

func findInterp(interps []interp, sym Keysym, level int, modmap ModMask) (interp, bool) {
	for _, in := range interps {
		if in.unknown || ((in.sym != NoSymbol) && (in.sym != sym)) {
			continue
		}

		mods := modmap
		if in.levelOneOnly && (level != 0) {
			mods = 0
		}
		if in.match.match(in.mods, mods) {
			return in, true
		}
	}
	return interp{}, false
}

// keyVMods returns the virtual modifiers that a key is bound to, either
// explicitly or through the interpretations of its keysyms.
func keyVMods(key *Key, interps []interp) []string {
	if key.explicitVMods {
		return key.vmods
	}
	if key.explicitInterp {
		return nil
	}

	var vmods []string
	for g, syms := range key.Groups {
		for l, sym := range syms {
			if sym == NoSymbol {
				continue
			}
			in, ok := findInterp(interps, sym, l, key.modmap)
			if !ok || (in.vmod == "") {
				continue
			}
			if in.levelOneOnly && ((g != 0) || (l != 0)) {
				continue
			}
			vmods = append(vmods, in.vmod)
		}
	}
	return vmods
}
