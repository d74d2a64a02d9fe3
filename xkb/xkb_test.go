package xkb_test

import (
	"testing"

	"deedles.dev/wloverlay/internal/wltest"
	"deedles.dev/wloverlay/xkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evdevA = 30

func compileUS(t *testing.T) *xkb.Keymap {
	t.Helper()

	km, err := xkb.Compile([]byte(wltest.USKeymap))
	require.NoError(t, err)
	return km
}

func TestCompile(t *testing.T) {
	km := compileUS(t)

	code, ok := km.Keycode("AC01")
	require.True(t, ok)
	assert.EqualValues(t, evdevA+xkb.KeycodeOffset, code)

	code, ok = km.Keycode("LatQ")
	require.True(t, ok)
	assert.EqualValues(t, 24, code)

	key := km.Key(24)
	require.NotNil(t, key)
	assert.Equal(t, "ALPHABETIC", key.Type)
	assert.Equal(t, "ALPHABETIC", key.TypeOf(0).Name)
	assert.Equal(t, [][]xkb.Keysym{{'q', 'Q'}}, key.Groups)
	assert.Nil(t, key.TypeOf(1))

	key = km.Key(79)
	require.NotNil(t, key)
	assert.Empty(t, key.Type)
	assert.Equal(t, "KEYPAD", key.TypeOf(0).Name)
	assert.Equal(t, xkb.ModShift|xkb.ModNumLock, key.TypeOf(0).Mods)

	assert.Equal(t, xkb.ModNumLock, km.VirtualMod("NumLock"))
	assert.Equal(t, xkb.ModLevel3, km.VirtualMod("LevelThree"))
	assert.Equal(t, xkb.ModNumLock, km.Key(77).Modmap())

	assert.Nil(t, km.Key(200))
	assert.Contains(t, km.Keycodes(), uint32(9))
}

func TestKeySym(t *testing.T) {
	km := compileUS(t)
	state := xkb.NewState(km)

	tests := []struct {
		name   string
		code   uint32
		mods   xkb.ModMask
		locked xkb.ModMask
		sym    xkb.Keysym
	}{
		{name: "Plain", code: evdevA + 8, sym: 'a'},
		{name: "Shift", code: evdevA + 8, mods: xkb.ModShift, sym: 'A'},
		{name: "CapsLock", code: evdevA + 8, locked: xkb.ModLock, sym: 'A'},
		{name: "ShiftCapsLock", code: evdevA + 8, mods: xkb.ModShift, locked: xkb.ModLock, sym: 'a'},
		{name: "Digit", code: 10, sym: '1'},
		{name: "ShiftDigit", code: 10, mods: xkb.ModShift, sym: 0x21},
		{name: "DigitIgnoresLock", code: 10, locked: xkb.ModLock, sym: '1'},
		{name: "Escape", code: 9, sym: xkb.KeyEscape},
		{name: "OneLevelIgnoresShift", code: 9, mods: xkb.ModShift, sym: xkb.KeyEscape},
		{name: "Function", code: 67, sym: xkb.KeyF1},
		{name: "KeypadNumLock", code: 79, locked: xkb.ModNumLock, sym: 0xffb7},
		{name: "Keypad", code: 79, sym: 0xff95},
		{name: "KeypadShift", code: 79, mods: xkb.ModShift, sym: 0xff95},
		{name: "KeypadShiftNumLock", code: 87, mods: xkb.ModShift, locked: xkb.ModNumLock, sym: 0xff9c},
		{name: "OneLevelCapsLock", code: 9, locked: xkb.ModLock, sym: xkb.KeyEscape},
		{name: "Unknown", code: 200, sym: xkb.NoSymbol},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state.UpdateMask(uint32(test.mods), 0, uint32(test.locked), 0)
			assert.Equal(t, test.sym, state.KeySym(test.code))
		})
	}
}

func TestUpdateMask(t *testing.T) {
	state := xkb.NewState(compileUS(t))
	state.UpdateMask(uint32(xkb.ModShift), uint32(xkb.ModControl), uint32(xkb.ModLock), 1)
	assert.Equal(t, xkb.ModShift|xkb.ModControl|xkb.ModLock, state.Mods())
	assert.EqualValues(t, 1, state.Group())

	// Shift and Lock cancel out, and the only group wraps.
	assert.Equal(t, xkb.Keysym('a'), state.KeySym(evdevA+8))
}

func TestCompileErrors(t *testing.T) {
	_, err := xkb.Compile([]byte(`xkb_keymap { xkb_keycodes { <A> = ; }; };`))
	var serr *xkb.SyntaxError
	assert.ErrorAs(t, err, &serr)

	_, err = xkb.Compile([]byte(`xkb_keymap { xkb_symbols "x" { key <A> { [ a ] }; }; };`))
	assert.Error(t, err)

	_, err = xkb.Compile([]byte(`xkb_keymap { xkb_keycodes { <A> = 8; `))
	assert.Error(t, err)
}

func TestKeysymFromName(t *testing.T) {
	tests := []struct {
		name string
		sym  xkb.Keysym
		ok   bool
	}{
		{"a", 'a', true},
		{"Escape", 0xff1b, true},
		{"F12", 0xffc9, true},
		{"U20AC", 0x010020ac, true},
		{"U0041", 'A', true},
		{"0x1000041", 0x1000041, true},
		{"ssharp", 0xdf, true},
		{"adiaeresis", 0xe4, true},
		{"dstroke", 0x1f0, true},
		{"Greek_OMEGA", 0x7d9, true},
		{"EuroSign", 0x20ac, true},
		{"3270_Enter", 0xfd1e, true},
		{"XF86AudioMute", 0x1008ff12, true},
		{"NotAKeysym", xkb.NoSymbol, false},
	}

	for _, test := range tests {
		sym, ok := xkb.KeysymFromName(test.name)
		assert.Equal(t, test.ok, ok, test.name)
		assert.Equal(t, test.sym, sym, test.name)
	}
}

func TestKeysymString(t *testing.T) {
	assert.Equal(t, "Escape", xkb.KeyEscape.String())
	assert.Equal(t, "a", xkb.Keysym('a').String())
	assert.Equal(t, "U1F600", xkb.Keysym(0x0101f600).String())
	assert.Equal(t, 'a', xkb.Keysym('a').Rune())
	assert.Equal(t, rune(0x1f600), xkb.Keysym(0x0101f600).Rune())
	assert.Equal(t, rune(0), xkb.KeyF1.Rune())

	assert.Equal(t, "Greek_OMEGA", xkb.Keysym(0x7d9).String())
	assert.Equal(t, 'Ω', xkb.Keysym(0x7d9).Rune())
	assert.Equal(t, 'đ', xkb.Keysym(0x1f0).Rune())
	assert.Equal(t, "ssharp", xkb.Keysym(0xdf).String())
}

func TestKeysymCase(t *testing.T) {
	assert.True(t, xkb.Keysym(0xe4).IsLower())
	assert.True(t, xkb.Keysym(0xc4).IsUpper())
	assert.Equal(t, xkb.Keysym(0xc4), xkb.Keysym(0xe4).ToUpper())
	assert.Equal(t, xkb.Keysym(0x1a9), xkb.Keysym(0x1b9).ToUpper())
	assert.False(t, xkb.Keysym('1').IsLower())
	assert.Equal(t, xkb.KeyEscape, xkb.KeyEscape.ToUpper())
}

func TestModMaskString(t *testing.T) {
	assert.Equal(t, "none", xkb.ModMask(0).String())
	assert.Equal(t, "Shift+Control", (xkb.ModShift | xkb.ModControl).String())
}
