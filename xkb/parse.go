package xkb

import (
	"fmt"
	"strings"
)

type parser struct {
	toks []token
	pos  int

	codes   map[string]uint32
	aliases map[string]string
	keys    map[string]*Key

	vmods   map[string]modExpr
	types   map[string]*typeDef
	interps []interp
	modmap  []modmapEntry
}

func newParser(toks []token) *parser {
	return &parser{
		toks:    toks,
		codes:   make(map[string]uint32),
		aliases: make(map[string]string),
		keys:    make(map[string]*Key),
		vmods:   make(map[string]modExpr),
		types:   make(map[string]*typeDef),
	}
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekN(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.peek().line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind, text string) (token, error) {
	t := p.peek()
	if (t.kind != kind) || ((text != "") && (t.text != text)) {
		want := kind.String()
		if text != "" {
			want = fmt.Sprintf("%q", text)
		}
		return t, p.errorf("expected %v, found %v", want, t)
	}
	return p.next(), nil
}

func (p *parser) accept(kind tokenKind, text string) bool {
	if p.peek().is(kind, text) {
		p.next()
		return true
	}
	return false
}

// parse walks the top level of a keymap, handling both a complete
// xkb_keymap block and bare sections.
func (p *parser) parse() error {
	for {
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			return nil

		case t.is(tokIdent, "xkb_keymap"):
			p.next()
			p.acceptString()
			if _, err := p.expect(tokPunct, "{"); err != nil {
				return err
			}

		case t.is(tokIdent, "xkb_keycodes"):
			p.next()
			p.acceptString()
			if err := p.parseKeycodes(); err != nil {
				return err
			}

		case t.is(tokIdent, "xkb_types"):
			p.next()
			p.acceptString()
			if err := p.parseTypes(); err != nil {
				return err
			}

		case t.is(tokIdent, "xkb_compatibility"), t.is(tokIdent, "xkb_compat"), t.is(tokIdent, "xkb_compatibility_map"):
			p.next()
			p.acceptString()
			if err := p.parseCompat(); err != nil {
				return err
			}

		case t.is(tokIdent, "xkb_symbols"):
			p.next()
			p.acceptString()
			if err := p.parseSymbols(); err != nil {
				return err
			}

		case (t.kind == tokIdent) && strings.HasPrefix(t.text, "xkb_"):
			p.next()
			p.acceptString()
			if err := p.skipBlock(); err != nil {
				return err
			}

		default:
			p.next()
		}
	}
}

func (p *parser) acceptString() (string, bool) {
	if p.peek().kind == tokString {
		return p.next().text, true
	}
	return "", false
}

// skipBlock skips a brace-delimited block and its trailing semicolon.
func (p *parser) skipBlock() error {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}
	if err := p.skipUntil("}"); err != nil {
		return err
	}
	p.next()
	p.accept(tokPunct, ";")
	return nil
}

// skipUntil advances to the next occurrence of one of the given
// punctuation tokens that is not nested inside brackets. The
// terminator itself is not consumed.
func (p *parser) skipUntil(terms ...string) error {
	depth := 0
	for {
		t := p.peek()
		if t.kind == tokEOF {
			return p.errorf("unexpected end of input")
		}
		if t.kind == tokPunct {
			if depth == 0 {
				for _, term := range terms {
					if t.text == term {
						return nil
					}
				}
			}
			switch t.text {
			case "{", "[", "(":
				depth++
			case "}", "]", ")":
				depth--
			}
		}
		p.next()
	}
}

// skipStatement skips everything up to and including the next
// top-level semicolon.
func (p *parser) skipStatement() error {
	if err := p.skipUntil(";", "}"); err != nil {
		return err
	}
	p.accept(tokPunct, ";")
	return nil
}

// isDefault reports whether the statement at the current position
// sets a default, as in interpret.repeat= False.
func (p *parser) isDefault() bool {
	return p.peekN(1).is(tokPunct, ".")
}

// parseMods parses a modifier expression such as Shift+LevelThree.
func (p *parser) parseMods() (modExpr, error) {
	var e modExpr
	for {
		t, err := p.expect(tokIdent, "")
		if err != nil {
			return e, err
		}
		e.add(t.text)

		if !p.accept(tokPunct, "+") {
			return e, nil
		}
	}
}

// parseLevel parses a shift level, written either as a plain number
// or as LevelN, and returns it zero-based.
func (p *parser) parseLevel() (int, error) {
	t := p.next()
	var n uint64
	switch t.kind {
	case tokNumber:
		n = t.num
	case tokIdent:
		_, err := fmt.Sscanf(strings.ToLower(t.text), "level%d", &n)
		if err != nil {
			return 0, p.errorf("bad level %q", t.text)
		}
	default:
		return 0, p.errorf("bad level %v", t)
	}
	if n < 1 {
		return 0, p.errorf("level %v out of range", n)
	}
	return int(n - 1), nil
}

// parseVirtualMods parses a virtual_modifiers declaration. Mappings
// given explicitly, as in NumLock= Mod2, are recorded.
func (p *parser) parseVirtualMods() error {
	p.next()
	for {
		name, err := p.expect(tokIdent, "")
		if err != nil {
			return err
		}
		mapping := p.vmods[name.text]
		if p.accept(tokPunct, "=") {
			if t := p.peek(); t.kind == tokNumber {
				p.next()
				mapping = modExpr{real: ModMask(t.num), explicit: true}
			} else {
				mapping, err = p.parseMods()
				if err != nil {
					return err
				}
				mapping.explicit = true
			}
		}
		p.vmods[name.text] = mapping

		if !p.accept(tokPunct, ",") {
			break
		}
	}
	_, err := p.expect(tokPunct, ";")
	return err
}

func (p *parser) parseKeycodes() error {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}

	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.kind == tokKeyName:
			p.next()
			if _, err := p.expect(tokPunct, "="); err != nil {
				return err
			}
			code, err := p.expect(tokNumber, "")
			if err != nil {
				return err
			}
			p.codes[t.text] = uint32(code.num)
			if _, err := p.expect(tokPunct, ";"); err != nil {
				return err
			}

		case t.is(tokIdent, "alias"):
			p.next()
			alias, err := p.expect(tokKeyName, "")
			if err != nil {
				return err
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return err
			}
			target, err := p.expect(tokKeyName, "")
			if err != nil {
				return err
			}
			p.aliases[alias.text] = target.text
			if _, err := p.expect(tokPunct, ";"); err != nil {
				return err
			}

		default:
			if err := p.skipStatement(); err != nil {
				return err
			}
		}
	}

	p.accept(tokPunct, ";")
	return nil
}

func (p *parser) parseTypes() error {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}

	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokIdent, "virtual_modifiers"):
			if err := p.parseVirtualMods(); err != nil {
				return err
			}

		case t.is(tokIdent, "type") && !p.isDefault():
			p.next()
			name, err := p.expect(tokString, "")
			if err != nil {
				return err
			}
			def, err := p.parseType(name.text)
			if err != nil {
				return fmt.Errorf("type %q: %w", name.text, err)
			}
			p.types[name.text] = def

		default:
			if err := p.skipStatement(); err != nil {
				return err
			}
		}
	}

	p.accept(tokPunct, ";")
	return nil
}

func (p *parser) parseType(name string) (*typeDef, error) {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return nil, err
	}

	def := typeDef{name: name}
	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokIdent, "modifiers"):
			p.next()
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}
			mods, err := p.parseMods()
			if err != nil {
				return nil, err
			}
			def.mods = mods

		case t.is(tokIdent, "map"), t.is(tokIdent, "preserve"):
			p.next()
			if _, err := p.expect(tokPunct, "["); err != nil {
				return nil, err
			}
			mods, err := p.parseMods()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokPunct, "]"); err != nil {
				return nil, err
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}

			entry := def.entry(mods)
			if t.text == "map" {
				entry.level, err = p.parseLevel()
			} else {
				entry.preserve, err = p.parseMods()
			}
			if err != nil {
				return nil, err
			}

		default:
			if err := p.skipStatement(); err != nil {
				return nil, err
			}
			continue
		}

		if _, err := p.expect(tokPunct, ";"); err != nil {
			return nil, err
		}
	}

	p.accept(tokPunct, ";")
	return &def, nil
}

func (p *parser) parseCompat() error {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}

	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokIdent, "virtual_modifiers"):
			if err := p.parseVirtualMods(); err != nil {
				return err
			}

		case t.is(tokIdent, "interpret") && !p.isDefault():
			p.next()
			in, err := p.parseInterpret()
			if err != nil {
				return err
			}
			p.interps = append(p.interps, in)

		default:
			if err := p.skipStatement(); err != nil {
				return err
			}
		}
	}

	p.accept(tokPunct, ";")
	return nil
}

// parseInterpret parses a symbol interpretation, such as
//
//	interpret ISO_Level3_Shift+AnyOf(all) { virtualModifier= LevelThree; };
//
// Only the parts that decide virtual modifier mappings are kept.
func (p *parser) parseInterpret() (interp, error) {
	in := interp{match: matchAnyOrNone, mods: ModsDefault}

	switch t := p.next(); {
	case t.kind == tokNumber:
		in.sym = Keysym(t.num)
	case t.is(tokIdent, "Any"):
	case t.kind == tokIdent:
		sym, ok := KeysymFromName(t.text)
		in.sym, in.unknown = sym, !ok
	default:
		return in, p.errorf("unexpected %v in interpret", t)
	}

	if p.accept(tokPunct, "+") {
		cond, err := p.expect(tokIdent, "")
		if err != nil {
			return in, err
		}
		if m, ok := matchOps[strings.ToLower(cond.text)]; ok && p.accept(tokPunct, "(") {
			in.match = m
			mods, err := p.parseMods()
			if err != nil {
				return in, err
			}
			in.mods = mods.real
			if _, err := p.expect(tokPunct, ")"); err != nil {
				return in, err
			}
		} else {
			var mods modExpr
			mods.add(cond.text)
			for p.accept(tokPunct, "+") {
				t, err := p.expect(tokIdent, "")
				if err != nil {
					return in, err
				}
				mods.add(t.text)
			}
			in.match, in.mods = matchExactly, mods.real
		}
	}

	if _, err := p.expect(tokPunct, "{"); err != nil {
		return in, err
	}
	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokIdent, "virtualModifier"), t.is(tokIdent, "virtualMod"):
			p.next()
			if _, err := p.expect(tokPunct, "="); err != nil {
				return in, err
			}
			vmod, err := p.expect(tokIdent, "")
			if err != nil {
				return in, err
			}
			in.vmod = vmod.text

		case t.is(tokIdent, "useModMapMods"), t.is(tokIdent, "useModMap"):
			p.next()
			if _, err := p.expect(tokPunct, "="); err != nil {
				return in, err
			}
			v, err := p.expect(tokIdent, "")
			if err != nil {
				return in, err
			}
			switch strings.ToLower(v.text) {
			case "level1", "levelone":
				in.levelOneOnly = true
			}

		default:
			if err := p.skipStatement(); err != nil {
				return in, err
			}
			continue
		}

		if _, err := p.expect(tokPunct, ";"); err != nil {
			return in, err
		}
	}

	p.accept(tokPunct, ";")
	return in, nil
}

func (p *parser) parseSymbols() error {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}

	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokIdent, "key") && !p.isDefault():
			p.next()
			name, err := p.expect(tokKeyName, "")
			if err != nil {
				return err
			}
			key, err := p.parseKey(name.text)
			if err != nil {
				return fmt.Errorf("key <%v>: %w", name.text, err)
			}
			p.keys[name.text] = key

		case t.is(tokIdent, "modifier_map"), t.is(tokIdent, "modmap"), t.is(tokIdent, "mod_map"):
			p.next()
			if err := p.parseModmap(); err != nil {
				return err
			}

		default:
			if err := p.skipStatement(); err != nil {
				return err
			}
		}
	}

	p.accept(tokPunct, ";")
	return nil
}

// parseModmap parses the body of a modifier_map statement. Keys can be
// named directly or by a keysym that they produce.
func (p *parser) parseModmap() error {
	mod, err := p.expect(tokIdent, "")
	if err != nil {
		return err
	}
	var mods modExpr
	mods.add(mod.text)
	if (mods.real == 0) || (len(mods.virtual) != 0) {
		return p.errorf("modifier_map needs a real modifier, found %q", mod.text)
	}

	if _, err := p.expect(tokPunct, "{"); err != nil {
		return err
	}
	for !p.accept(tokPunct, "}") {
		t := p.next()
		switch t.kind {
		case tokKeyName:
			p.modmap = append(p.modmap, modmapEntry{mods: mods.real, key: t.text})
		case tokIdent:
			if sym, ok := KeysymFromName(t.text); ok {
				p.modmap = append(p.modmap, modmapEntry{mods: mods.real, sym: sym})
			}
		case tokPunct:
			if t.text != "," {
				return p.errorf("unexpected %v in modifier_map", t)
			}
		default:
			return p.errorf("unexpected %v in modifier_map", t)
		}
	}

	p.accept(tokPunct, ";")
	return nil
}

func (p *parser) parseKey(name string) (*Key, error) {
	if _, err := p.expect(tokPunct, "{"); err != nil {
		return nil, err
	}

	key := Key{Name: name}
	implicit := 0
	for !p.accept(tokPunct, "}") {
		t := p.peek()
		switch {
		case t.is(tokPunct, ","):
			p.next()

		case t.is(tokPunct, "["):
			syms, err := p.parseSymList()
			if err != nil {
				return nil, err
			}
			key.setGroup(implicit, syms)
			implicit++

		case t.is(tokIdent, "symbols"):
			p.next()
			group, err := p.parseGroupIndex()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}
			syms, err := p.parseSymList()
			if err != nil {
				return nil, err
			}
			key.setGroup(group, syms)

		case t.is(tokIdent, "type"):
			p.next()
			group := -1
			if p.peek().is(tokPunct, "[") {
				g, err := p.parseGroupIndex()
				if err != nil {
					return nil, err
				}
				group = g
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}
			typ, err := p.expect(tokString, "")
			if err != nil {
				return nil, err
			}
			if group < 0 {
				key.Type = typ.text
				break
			}
			for len(key.groupTypes) <= group {
				key.groupTypes = append(key.groupTypes, "")
			}
			key.groupTypes[group] = typ.text

		case t.is(tokIdent, "virtualMods"), t.is(tokIdent, "vmods"), t.is(tokIdent, "virtualmodifiers"):
			p.next()
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}
			mods, err := p.parseMods()
			if err != nil {
				return nil, err
			}
			key.vmods = mods.virtual
			key.explicitVMods = true

		case t.is(tokIdent, "actions"):
			key.explicitInterp = true
			if err := p.skipUntil(",", "}"); err != nil {
				return nil, err
			}

		default:
			if err := p.skipUntil(",", "}"); err != nil {
				return nil, err
			}
		}
	}

	p.accept(tokPunct, ";")
	return &key, nil
}

// parseGroupIndex parses [Group2] or [2] and returns a zero-based
// group index.
func (p *parser) parseGroupIndex() (int, error) {
	if _, err := p.expect(tokPunct, "["); err != nil {
		return 0, err
	}

	var n uint64
	t := p.next()
	switch t.kind {
	case tokNumber:
		n = t.num
	case tokIdent:
		_, err := fmt.Sscanf(t.text, "Group%d", &n)
		if err != nil {
			return 0, p.errorf("bad group %q", t.text)
		}
	default:
		return 0, p.errorf("bad group %v", t)
	}
	if (n < 1) || (n > 4) {
		return 0, p.errorf("group %v out of range", n)
	}

	if _, err := p.expect(tokPunct, "]"); err != nil {
		return 0, err
	}
	return int(n - 1), nil
}

func (p *parser) parseSymList() ([]Keysym, error) {
	if _, err := p.expect(tokPunct, "["); err != nil {
		return nil, err
	}

	var syms []Keysym
	for {
		t := p.next()
		switch {
		case t.is(tokPunct, "]"):
			return syms, nil

		case t.is(tokPunct, ","):

		case t.kind == tokIdent:
			sym, _ := KeysymFromName(t.text)
			syms = append(syms, sym)

		case t.kind == tokNumber:
			if t.num <= 9 {
				syms = append(syms, Keysym('0'+t.num))
				break
			}
			syms = append(syms, Keysym(t.num))

		case t.is(tokPunct, "{"):
			// Several keysyms on one level don't translate to a single
			// keysym.
			if err := p.skipUntil("}"); err != nil {
				return nil, err
			}
			p.next()
			syms = append(syms, NoSymbol)

		default:
			return nil, p.errorf("unexpected %v in symbol list", t)
		}
	}
}
