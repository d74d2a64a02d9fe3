// Package xkb compiles the text keymaps that Wayland compositors send
// with wl_keyboard.keymap and translates keycodes to keysyms.
//
// Only the parts of the format needed for translation are
// interpreted: keycode names, key type definitions, the virtual
// modifier bindings made by the compatibility map, and the symbols and
// modifier map of each key. Actions, indicators and geometry are
// skipped. Keymaps that use a standard type without defining it get a
// built-in definition.
package xkb

import (
	"fmt"
	"sort"
)

// KeycodeOffset is the difference between the evdev keycodes sent by
// wl_keyboard.key and XKB keycodes.
const KeycodeOffset = 8

// ModMask is a set of real modifiers, in the order used by every
// keymap that a compositor serializes.
type ModMask uint32

const (
	ModShift ModMask = 1 << iota
	ModLock
	ModControl
	ModMod1
	ModMod2
	ModMod3
	ModMod4
	ModMod5
)

const (
	ModAlt      = ModMod1
	ModNumLock  = ModMod2
	ModSuper    = ModMod4
	ModLevel3   = ModMod5
	ModsDefault = ModShift | ModLock | ModControl | ModMod1 | ModMod2 | ModMod3 | ModMod4 | ModMod5
)

var modNames = []string{"Shift", "Lock", "Control", "Mod1", "Mod2", "Mod3", "Mod4", "Mod5"}

func (m ModMask) Has(mods ModMask) bool {
	return m&mods == mods
}

func (m ModMask) String() string {
	if m == 0 {
		return "none"
	}

	var str string
	for i, name := range modNames {
		if m&(1<<i) == 0 {
			continue
		}
		if str != "" {
			str += "+"
		}
		str += name
	}
	if rest := m &^ ModsDefault; rest != 0 {
		if str != "" {
			str += "+"
		}
		str += fmt.Sprintf("%#x", uint32(rest))
	}
	return str
}

// Key is the symbol table for a single physical key.
type Key struct {
	Name string
	Code uint32

	// Type is the key type named for every group in the keymap, if
	// any. Groups without a named type get one inferred from their
	// symbols.
	Type string

	// Groups holds the keysyms for each level of each group.
	Groups [][]Keysym

	groupTypes     []string
	types          []*KeyType
	modmap         ModMask
	vmods          []string
	explicitVMods  bool
	explicitInterp bool
}

func (key *Key) setGroup(group int, syms []Keysym) {
	for len(key.Groups) <= group {
		key.Groups = append(key.Groups, nil)
	}
	key.Groups[group] = syms
}

func (key *Key) typeName(group int) string {
	if (group < len(key.groupTypes)) && (key.groupTypes[group] != "") {
		return key.groupTypes[group]
	}
	if key.Type != "" {
		return key.Type
	}
	return automaticType(key.Groups[group])
}

// TypeOf returns the type used by the given group, or nil if the key
// has no such group.
func (key *Key) TypeOf(group int) *KeyType {
	if (group < 0) || (group >= len(key.types)) {
		return nil
	}
	return key.types[group]
}

// Modmap returns the real modifiers that the key is bound to.
func (key *Key) Modmap() ModMask {
	return key.modmap
}

func (key *Key) group(group uint32) int {
	g := int(group % uint32(len(key.Groups)))
	if len(key.Groups[g]) == 0 {
		return 0
	}
	return g
}

// Keysym returns the keysym produced by the key with the given active
// modifiers and group. If Lock is active and the key's type doesn't
// consume it, the keysym is converted to upper case.
func (key *Key) Keysym(mods ModMask, group uint32) Keysym {
	if len(key.Groups) == 0 {
		return NoSymbol
	}
	g := key.group(group)
	syms := key.Groups[g]

	level, consumed := key.types[g].Level(mods)
	if level >= len(syms) {
		return NoSymbol
	}
	sym := syms[level]
	if mods.Has(ModLock) && !consumed.Has(ModLock) {
		sym = sym.ToUpper()
	}
	return sym
}

// Keymap is a compiled keymap.
type Keymap struct {
	keys  map[uint32]*Key
	codes map[string]uint32
	vmods map[string]ModMask
}

// Compile parses a keymap in the XKB text format.
func Compile(text []byte) (*Keymap, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := newParser(toks)
	err = p.parse()
	if err != nil {
		return nil, err
	}

	km := Keymap{
		keys:  make(map[uint32]*Key, len(p.keys)),
		codes: p.codes,
		vmods: make(map[string]ModMask, len(p.vmods)),
	}
	for alias, target := range p.aliases {
		if code, ok := p.codes[target]; ok {
			km.codes[alias] = code
		}
	}
	for name, key := range p.keys {
		code, ok := km.codes[name]
		if !ok {
			continue
		}
		key.Code = code
		km.keys[code] = key
	}
	if len(km.keys) == 0 {
		return nil, fmt.Errorf("xkb: keymap defines no keys")
	}

	km.applyModmap(p.modmap)
	km.bindVMods(p.vmods, p.interps)
	km.resolveTypes(p.types)

	return &km, nil
}

func (km *Keymap) applyModmap(modmap []modmapEntry) {
	codes := km.Keycodes()
	for _, m := range modmap {
		if m.key != "" {
			if key := km.keys[km.codes[m.key]]; key != nil {
				key.modmap |= m.mods
			}
			continue
		}

		if key := km.keyForSym(codes, m.sym); key != nil {
			key.modmap |= m.mods
		}
	}
}

func (km *Keymap) keyForSym(codes []uint32, sym Keysym) *Key {
	for _, code := range codes {
		key := km.keys[code]
		for _, syms := range key.Groups {
			for _, s := range syms {
				if s == sym {
					return key
				}
			}
		}
	}
	return nil
}

func (km *Keymap) bindVMods(decls map[string]modExpr, interps []interp) {
	for name, decl := range decls {
		if decl.explicit {
			km.vmods[name] = decl.real
		}
	}

	sortInterps(interps)
	for _, key := range km.keys {
		if key.modmap == 0 {
			continue
		}
		for _, name := range keyVMods(key, interps) {
			km.vmods[name] |= key.modmap
		}
	}
}

func (km *Keymap) resolveTypes(defs map[string]*typeDef) {
	resolved := make(map[string]*KeyType)
	lookup := func(name string) *KeyType {
		if typ, ok := resolved[name]; ok {
			return typ
		}

		def, ok := defs[name]
		if !ok {
			def, ok = builtinTypeDefs[name]
		}
		if !ok {
			return nil
		}
		typ := def.resolve(km.vmods)
		resolved[name] = typ
		return typ
	}

	for _, key := range km.keys {
		key.types = make([]*KeyType, len(key.Groups))
		for g, syms := range key.Groups {
			typ := lookup(key.typeName(g))
			if typ == nil {
				typ = lookup(automaticType(syms))
			}
			key.types[g] = typ
		}
	}
}

// VirtualMod returns the real modifiers that a virtual modifier, such
// as NumLock or LevelThree, is bound to.
func (km *Keymap) VirtualMod(name string) ModMask {
	return km.vmods[name]
}

// Key returns the key with the given XKB keycode, or nil.
func (km *Keymap) Key(code uint32) *Key {
	return km.keys[code]
}

// Keycode returns the keycode of the named key, such as AC01.
func (km *Keymap) Keycode(name string) (uint32, bool) {
	code, ok := km.codes[name]
	return code, ok
}

// Keycodes returns every keycode that has symbols, in ascending order.
func (km *Keymap) Keycodes() []uint32 {
	codes := make([]uint32, 0, len(km.keys))
	for code := range km.keys {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
