package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerShellSignatures(t *testing.T) {
	shell := MustLookup("zwlr_layer_shell_v1")
	op, ok := shell.RequestOpcode("get_layer_surface")
	require.True(t, ok)
	assert.Equal(t, uint16(0), op)
	assert.Equal(t, "no?ous", shell.Request(op).Signature())

	surface := MustLookup("zwlr_layer_surface_v1")
	for name, want := range map[string]uint16{
		"set_size":                   0,
		"set_anchor":                 1,
		"set_exclusive_zone":         2,
		"set_margin":                 3,
		"set_keyboard_interactivity": 4,
		"get_popup":                  5,
		"ack_configure":              6,
		"destroy":                    7,
		"set_layer":                  8,
	} {
		op, ok := surface.RequestOpcode(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, want, op, name)
		}
	}
	assert.Equal(t, "2u", surface.Requests[8].Signature())
	assert.True(t, surface.Requests[7].IsDestructor())

	anchor := surface.Enum("anchor")
	require.NotNil(t, anchor)
	assert.True(t, anchor.Bitfield)
	v, ok := anchor.Value("right")
	assert.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestShortcutsInhibit(t *testing.T) {
	manager := MustLookup("zwp_keyboard_shortcuts_inhibit_manager_v1")
	assert.Equal(t, "noo", manager.Request(1).Signature())

	inhibitor := MustLookup("zwp_keyboard_shortcuts_inhibitor_v1")
	assert.Equal(t, "active", inhibitor.Event(0).Name)
	assert.Equal(t, "inactive", inhibitor.Event(1).Name)
	assert.Nil(t, inhibitor.Event(2))
}

func TestTabletTool(t *testing.T) {
	tool := MustLookup("zwp_tablet_tool_v2")
	for name, want := range map[string]uint16{
		"removed": 5,
		"down":    8,
		"up":      9,
		"motion":  10,
		"frame":   18,
	} {
		op, ok := tool.EventOpcode(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, want, op, name)
		}
	}
	assert.Equal(t, "ff", tool.Event(10).Signature())

	typ := tool.Enum("type")
	v, ok := typ.Value("pen")
	assert.True(t, ok)
	assert.Equal(t, 0x140, v)
}

func TestCore(t *testing.T) {
	registry := MustLookup("wl_registry")
	assert.Equal(t, "usun", registry.Request(0).Signature())

	region := MustLookup("wl_region")
	op, _ := region.RequestOpcode("add")
	assert.Equal(t, uint16(1), op)

	surface := MustLookup("wl_surface")
	op, _ = surface.RequestOpcode("commit")
	assert.Equal(t, uint16(6), op)
	assert.Equal(t, "?o", surface.Request(5).Signature())

	keyboard := MustLookup("wl_keyboard")
	assert.Equal(t, "uhu", keyboard.Event(0).Signature())
	assert.Equal(t, "4ii", keyboard.Event(5).Signature())
}

func TestLookup(t *testing.T) {
	assert.Nil(t, Lookup("xdg_popup"))
	assert.Panics(t, func() { MustLookup("xdg_popup") })

	for _, p := range Protocols() {
		assert.NotEmpty(t, p.Interfaces, p.Name)
		assert.Same(t, p, ByName(p.Name))
	}
	assert.Nil(t, ByName("xdg_shell"))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("<protocol"))
	assert.Error(t, err)
}
