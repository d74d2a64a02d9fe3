package xkb_test

import (
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/wloverlay/xkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The keymaps in testdata were serialized by libxkbcommon from the
// evdev rules with the pc105 model, and the expected keysyms are the
// ones that libxkbcommon's xkb_state_key_get_one_sym returns for the
// same modifier state.

func compileFile(t *testing.T, name string) *xkb.Keymap {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	km, err := xkb.Compile(data)
	require.NoError(t, err)
	return km
}

func TestLayouts(t *testing.T) {
	tests := []struct {
		layout string
		key    string
		mods   xkb.ModMask
		locked xkb.ModMask
		sym    xkb.Keysym
	}{
		{layout: "de", key: "AE11", sym: 0xdf},
		{layout: "de", key: "AE11", mods: xkb.ModShift, sym: '?'},
		{layout: "de", key: "AE11", mods: xkb.ModLevel3, sym: '\\'},
		{layout: "de", key: "AE11", locked: xkb.ModLock, sym: 0x1001e9e},
		{layout: "de", key: "AE11", mods: xkb.ModShift, locked: xkb.ModLock, sym: '?'},
		{layout: "de", key: "AC01", sym: 'a'},
		{layout: "de", key: "AC01", mods: xkb.ModShift, sym: 'A'},
		{layout: "de", key: "AC01", locked: xkb.ModLock, sym: 'A'},
		{layout: "de", key: "AC01", mods: xkb.ModLevel3, sym: 0xe6},
		{layout: "de", key: "AC01", mods: xkb.ModShift | xkb.ModLevel3, sym: 0xc6},
		{layout: "de", key: "AC01", mods: xkb.ModLevel3, locked: xkb.ModLock, sym: 0xc6},
		{layout: "de", key: "AC11", sym: 0xe4},
		{layout: "de", key: "AC11", locked: xkb.ModLock, sym: 0xc4},
		{layout: "de", key: "AC11", mods: xkb.ModLevel3, sym: 0xfe52},
		{layout: "de", key: "AE02", mods: xkb.ModLevel3, sym: 0xb2},
		{layout: "de", key: "AE03", locked: xkb.ModLock, sym: '3'},
		{layout: "de", key: "AB07", mods: xkb.ModLevel3, sym: 0xb5},
		{layout: "de", key: "AD04", mods: xkb.ModLevel3, sym: 0xb6},
		{layout: "de", key: "AD01", mods: xkb.ModLevel3, sym: '@'},
		{layout: "de", key: "AD01", mods: xkb.ModShift | xkb.ModLevel3, sym: 0x7d9},
		{layout: "de", key: "AD01", mods: xkb.ModLevel3, locked: xkb.ModLock, sym: '@'},
		{layout: "de", key: "AD02", mods: xkb.ModLevel3, sym: 0x100017f},
		{layout: "de", key: "KP1", sym: 0xff9c},
		{layout: "de", key: "KP1", locked: xkb.ModNumLock, sym: 0xffb1},
		{layout: "de", key: "KP1", mods: xkb.ModShift, sym: 0xff9c},
		{layout: "de", key: "KP1", mods: xkb.ModShift, locked: xkb.ModNumLock, sym: 0xff9c},
		{layout: "de", key: "LVL3", sym: 0xfe03},
		{layout: "de", key: "ESC", locked: xkb.ModLock, sym: xkb.KeyEscape},
		{layout: "us", key: "KP1", sym: 0xff9c},
		{layout: "us", key: "KP1", mods: xkb.ModShift, sym: 0xff9c},
		{layout: "us", key: "KP1", locked: xkb.ModNumLock, sym: 0xffb1},
		{layout: "us", key: "KP1", mods: xkb.ModShift, locked: xkb.ModNumLock, sym: 0xff9c},
		{layout: "us", key: "AC01", locked: xkb.ModLock, sym: 'A'},
		{layout: "us", key: "AC01", mods: xkb.ModShift, locked: xkb.ModLock, sym: 'a'},
		{layout: "us", key: "AE01", locked: xkb.ModLock, sym: '1'},
		{layout: "us", key: "AE01", mods: xkb.ModLevel3, sym: '1'},
		{layout: "us", key: "AD01", mods: xkb.ModLevel3, sym: 'q'},
	}

	keymaps := map[string]*xkb.Keymap{
		"de": compileFile(t, "de.xkb"),
		"us": compileFile(t, "us.xkb"),
	}
	for _, test := range tests {
		name := test.layout + "/" + test.key + "/" + (test.mods | test.locked).String()
		t.Run(name, func(t *testing.T) {
			km := keymaps[test.layout]
			code, ok := km.Keycode(test.key)
			require.True(t, ok)

			state := xkb.NewState(km)
			state.UpdateMask(uint32(test.mods), 0, uint32(test.locked), 0)
			assert.Equal(t, test.sym, state.KeySym(code), "got %v, want %v", state.KeySym(code), test.sym)
		})
	}
}

func TestLayoutTypes(t *testing.T) {
	km := compileFile(t, "de.xkb")

	assert.Equal(t, xkb.ModNumLock, km.VirtualMod("NumLock"))
	assert.Equal(t, xkb.ModLevel3, km.VirtualMod("LevelThree"))

	tests := []struct {
		key string
		typ string
	}{
		{"AE11", "FOUR_LEVEL_PLUS_LOCK"},
		{"AC01", "FOUR_LEVEL_ALPHABETIC"},
		{"AD01", "FOUR_LEVEL_SEMIALPHABETIC"},
		{"AE02", "FOUR_LEVEL"},
		{"KP1", "KEYPAD"},
		{"ESC", "ONE_LEVEL"},
	}
	for _, test := range tests {
		code, ok := km.Keycode(test.key)
		require.True(t, ok, test.key)
		assert.Equal(t, test.typ, km.Key(code).TypeOf(0).Name, test.key)
	}
}

func TestBuiltinTypes(t *testing.T) {
	km, err := xkb.Compile([]byte(`xkb_keymap {
		xkb_keycodes { <NMLK> = 77; <KP7> = 79; <AC01> = 38; <LVL3> = 92; };
		xkb_compat {
			virtual_modifiers NumLock,LevelThree;
			interpret Num_Lock+AnyOf(all) { virtualModifier= NumLock; };
			interpret ISO_Level3_Shift+AnyOf(all) { virtualModifier= LevelThree; useModMapMods=level1; };
		};
		xkb_symbols {
			key <NMLK> { [ Num_Lock ] };
			key <KP7> { [ KP_Home, KP_7 ] };
			key <AC01> { [ a, A, ae, AE ] };
			key <LVL3> { [ ISO_Level3_Shift ] };
			modifier_map Mod2 { Num_Lock };
			modifier_map Mod5 { <LVL3> };
		};
	};`))
	require.NoError(t, err)

	state := xkb.NewState(km)
	check := func(code uint32, mods, locked xkb.ModMask, sym xkb.Keysym) {
		t.Helper()
		state.UpdateMask(uint32(mods), 0, uint32(locked), 0)
		assert.Equal(t, sym, state.KeySym(code))
	}

	check(79, 0, 0, 0xff95)
	check(79, 0, xkb.ModNumLock, 0xffb7)
	check(79, xkb.ModShift, 0, 0xff95)
	check(38, xkb.ModLevel3, 0, 0xe6)
	check(38, xkb.ModShift|xkb.ModLevel3, 0, 0xc6)
	check(38, xkb.ModLevel3, xkb.ModLock, 0xc6)
}
