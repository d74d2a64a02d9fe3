package xkb

import (
	"sort"
	"strings"
)

// modExpr is a modifier expression as written in a keymap. Virtual
// modifiers can only be resolved once the whole keymap has been read.
type modExpr struct {
	real     ModMask
	virtual  []string
	explicit bool
}

func (e *modExpr) add(name string) {
	switch strings.ToLower(name) {
	case "none":
		return
	case "all":
		e.real |= ModsDefault
		return
	}

	for i, mod := range modNames {
		if strings.EqualFold(mod, name) {
			e.real |= 1 << i
			return
		}
	}
	e.virtual = append(e.virtual, name)
}

func (e modExpr) empty() bool {
	return (e.real == 0) && (len(e.virtual) == 0)
}

func (e modExpr) key() string {
	v := append([]string(nil), e.virtual...)
	sort.Strings(v)
	return e.real.String() + "+" + strings.Join(v, "+")
}

// resolve returns the real modifiers that the expression stands for.
// Virtual modifiers without a mapping contribute nothing.
func (e modExpr) resolve(vmods map[string]ModMask) ModMask {
	mask := e.real
	for _, name := range e.virtual {
		mask |= vmods[name]
	}
	return mask
}

type typeDef struct {
	name    string
	mods    modExpr
	entries []*entryDef
}

type entryDef struct {
	mods     modExpr
	level    int
	preserve modExpr
}

func (def *typeDef) entry(mods modExpr) *entryDef {
	k := mods.key()
	for _, e := range def.entries {
		if e.mods.key() == k {
			return e
		}
	}

	e := entryDef{mods: mods}
	def.entries = append(def.entries, &e)
	return &e
}

func (def *typeDef) resolve(vmods map[string]ModMask) *KeyType {
	typ := KeyType{
		Name: def.name,
		Mods: def.mods.resolve(vmods),
	}
	for _, e := range def.entries {
		mods := e.mods.resolve(vmods)
		if !e.mods.empty() && (mods == 0) {
			// Entries that only name unbound virtual modifiers can never
			// match.
			continue
		}
		typ.Entries = append(typ.Entries, TypeEntry{
			Mods:     mods & typ.Mods,
			Level:    e.level,
			Preserve: e.preserve.resolve(vmods),
		})
	}
	return &typ
}

// KeyType maps combinations of modifiers to shift levels.
type KeyType struct {
	Name string

	// Mods is the set of modifiers that the type looks at. Other
	// modifiers never change the level.
	Mods ModMask

	Entries []TypeEntry
}

// TypeEntry maps an exact set of modifiers to a level.
type TypeEntry struct {
	Mods  ModMask
	Level int

	// Preserve is the set of modifiers that are not consumed when the
	// entry is matched.
	Preserve ModMask
}

// Level returns the zero-based level selected by the given modifiers
// and the modifiers that the selection consumed.
func (typ *KeyType) Level(mods ModMask) (level int, consumed ModMask) {
	active := mods & typ.Mods
	for _, e := range typ.Entries {
		if e.Mods == active {
			return e.Level, typ.Mods &^ e.Preserve
		}
	}
	return 0, typ.Mods
}

// builtinTypes defines the standard types for keymaps that use one
// without declaring it.
const builtinTypes = `xkb_types "builtin" {
	virtual_modifiers NumLock,Alt,LevelThree;

	type "ONE_LEVEL" {
		modifiers= none;
	};
	type "TWO_LEVEL" {
		modifiers= Shift;
		map[Shift]= 2;
	};
	type "ALPHABETIC" {
		modifiers= Shift+Lock;
		map[Shift]= 2;
		map[Lock]= 2;
	};
	type "KEYPAD" {
		modifiers= Shift+NumLock;
		map[NumLock]= 2;
	};
	type "PC_CONTROL_LEVEL2" {
		modifiers= Control;
		map[Control]= 2;
	};
	type "PC_ALT_LEVEL2" {
		modifiers= Alt;
		map[Alt]= 2;
	};
	type "FOUR_LEVEL" {
		modifiers= Shift+LevelThree;
		map[Shift]= 2;
		map[LevelThree]= 3;
		map[Shift+LevelThree]= 4;
	};
	type "FOUR_LEVEL_ALPHABETIC" {
		modifiers= Shift+Lock+LevelThree;
		map[Shift]= 2;
		map[Lock]= 2;
		map[LevelThree]= 3;
		map[Shift+LevelThree]= 4;
		map[Lock+LevelThree]= 4;
		map[Shift+Lock+LevelThree]= 3;
	};
	type "FOUR_LEVEL_SEMIALPHABETIC" {
		modifiers= Shift+Lock+LevelThree;
		map[Shift]= 2;
		map[Lock]= 2;
		map[LevelThree]= 3;
		map[Shift+LevelThree]= 4;
		map[Lock+LevelThree]= 3;
		preserve[Lock+LevelThree]= Lock;
		map[Shift+Lock+LevelThree]= 4;
		preserve[Shift+Lock+LevelThree]= Lock;
	};
	type "FOUR_LEVEL_KEYPAD" {
		modifiers= Shift+NumLock+LevelThree;
		map[Shift]= 2;
		map[NumLock]= 2;
		map[LevelThree]= 3;
		map[Shift+LevelThree]= 4;
		map[NumLock+LevelThree]= 4;
		map[Shift+NumLock+LevelThree]= 3;
	};
};`

var builtinTypeDefs = func() map[string]*typeDef {
	toks, err := tokenize([]byte(builtinTypes))
	if err != nil {
		panic(err)
	}
	p := newParser(toks)
	if err := p.parse(); err != nil {
		panic(err)
	}
	return p.types
}()

// automaticType picks a type for a group that doesn't name one, based
// on the case and kind of its keysyms.
func automaticType(syms []Keysym) string {
	sym := func(i int) Keysym {
		if i < len(syms) {
			return syms[i]
		}
		return NoSymbol
	}
	cased := func(i int) bool {
		return sym(i).IsLower() && sym(i+1).IsUpper()
	}
	keypad := sym(0).IsKeypad() || sym(1).IsKeypad()

	switch {
	case len(syms) <= 1:
		return "ONE_LEVEL"

	case len(syms) == 2:
		switch {
		case cased(0):
			return "ALPHABETIC"
		case keypad:
			return "KEYPAD"
		}
		return "TWO_LEVEL"

	default:
		switch {
		case cased(0) && cased(2):
			return "FOUR_LEVEL_ALPHABETIC"
		case cased(0):
			return "FOUR_LEVEL_SEMIALPHABETIC"
		case keypad:
			return "FOUR_LEVEL_KEYPAD"
		}
		return "FOUR_LEVEL"
	}
}
