package xkb

// State is the modifier and group state of a keyboard, as reported by
// wl_keyboard.modifiers, combined with a keymap.
type State struct {
	keymap    *Keymap
	depressed ModMask
	latched   ModMask
	locked    ModMask
	group     uint32
}

func NewState(keymap *Keymap) *State {
	return &State{keymap: keymap}
}

func (s *State) Keymap() *Keymap {
	return s.keymap
}

// UpdateMask replaces the modifier state.
func (s *State) UpdateMask(depressed, latched, locked, group uint32) {
	s.depressed = ModMask(depressed)
	s.latched = ModMask(latched)
	s.locked = ModMask(locked)
	s.group = group
}

// Mods returns the effective modifiers.
func (s *State) Mods() ModMask {
	return s.depressed | s.latched | s.locked
}

func (s *State) Group() uint32 {
	return s.group
}

// KeySym translates an XKB keycode. Keycodes from wl_keyboard.key must
// have KeycodeOffset added first.
func (s *State) KeySym(code uint32) Keysym {
	key := s.keymap.Key(code)
	if key == nil {
		return NoSymbol
	}
	return key.Keysym(s.Mods(), s.group)
}
