package main

import (
	"testing"

	"deedles.dev/wloverlay/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		prefix, name, ident string
	}{
		{"wl_", "wl_surface", "surface"},
		{"wl_", "wl_shm_pool", "shmPool"},
		{"zwlr_layer_", "zwlr_layer_surface_v1", "surface"},
		{"zwp_tablet_", "zwp_tablet_tool_v2", "tool"},
		{"zwp_tablet_", "zwp_tablet_v2", "tablet"},
		{"zwp_keyboard_shortcuts_", "zwp_keyboard_shortcuts_inhibit_manager_v1", "inhibitManager"},
	}

	for _, test := range tests {
		ctx := Context{Prefix: test.prefix}
		assert.Equal(t, test.ident, ctx.ident(test.name), test.name)
	}
}

func TestGenerate(t *testing.T) {
	ctx := Context{
		Package: "layer",
		Prefix:  "zwlr_layer_",
		Proto:   protocol.LayerShell,
	}
	src, err := ctx.generate()
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package layer\n")
	assert.Regexp(t, `surfaceRequestAckConfigure\s+= 6\n`, out)
	assert.Regexp(t, `surfaceEventClosed\s+= 1\n`, out)
	assert.Regexp(t, `shellInterface\s+= "zwlr_layer_shell_v1"`, out)
}
