package overlay_test

import (
	"image"
	"io"
	"net"
	"testing"
	"time"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/internal/wltest"
	"deedles.dev/wloverlay/layer"
	"deedles.dev/wloverlay/overlay"
	"deedles.dev/wloverlay/wire"
	"deedles.dev/wloverlay/xkb"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() overlay.Config {
	cfg := overlay.DefaultConfig()
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func open(t *testing.T, cfg wltest.Config) (*overlay.Overlay, *wltest.Compositor) {
	t.Helper()

	fake, conn, err := wltest.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { fake.Close() })

	o, err := overlay.OpenConn(conn, testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { o.Close() })

	require.NoError(t, fake.Err())
	return o, fake
}

// settle delivers pending events and then makes sure that every
// request queued in response to them has reached the compositor.
func settle(t *testing.T, o *overlay.Overlay) {
	t.Helper()

	require.NoError(t, o.RoundTrip())
	require.NoError(t, o.RoundTrip())
}

func send(t *testing.T, fake *wltest.Compositor, id uint32, event string, args ...any) {
	t.Helper()
	require.NoError(t, fake.Send(id, event, args...))
}

func TestOpen(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())

	w, h := o.Dimensions()
	assert.EqualValues(t, 1920, w)
	assert.EqualValues(t, 1080, h)
	assert.Equal(t, overlay.PhaseConfigured, o.Phase())
	assert.Equal(t, layer.KeyboardInteractivityExclusive, o.KeyboardInteractivity())
	assert.Equal(t, image.Rect(0, 0, 1920, 1080), o.InputRegion())
	assert.NotNil(t, o.Keymap())

	binds := fake.RequestsTo("wl_registry", "bind")
	versions := make(map[string]uint32)
	for _, req := range binds {
		id := req.Args[1].(wire.NewID)
		versions[id.Interface] = id.Version
	}
	assert.EqualValues(t, 4, versions["wl_compositor"])
	assert.EqualValues(t, 1, versions["wl_shm"])
	assert.EqualValues(t, 1, versions["zwlr_layer_shell_v1"])
	assert.EqualValues(t, 1, versions["wl_seat"])
	assert.EqualValues(t, 1, versions["zwp_keyboard_shortcuts_inhibit_manager_v1"])
	assert.EqualValues(t, 1, versions["zwp_tablet_manager_v2"])
	assert.Len(t, binds, 6)

	surface := fake.Object("wl_surface")
	ls := fake.Object("zwlr_layer_surface_v1")
	require.NotZero(t, surface)
	require.NotZero(t, ls)

	get := fake.RequestsTo("zwlr_layer_shell_v1", "get_layer_surface")
	require.Len(t, get, 1)
	assert.Equal(t, []any{ls, surface, uint32(0), uint32(layer.Overlay), "overlay"}, get[0].Args)

	anchor := fake.RequestsTo("zwlr_layer_surface_v1", "set_anchor")
	require.Len(t, anchor, 1)
	assert.Equal(t, []any{uint32(15)}, anchor[0].Args)

	zone := fake.RequestsTo("zwlr_layer_surface_v1", "set_exclusive_zone")
	require.Len(t, zone, 1)
	assert.Equal(t, []any{int32(-1)}, zone[0].Args)

	interactivity := fake.RequestsTo("zwlr_layer_surface_v1", "set_keyboard_interactivity")
	require.Len(t, interactivity, 1)
	assert.Equal(t, []any{uint32(1)}, interactivity[0].Args)

	add := fake.RequestsTo("wl_region", "add")
	require.Len(t, add, 1)
	assert.Equal(t, []any{int32(0), int32(0), int32(1920), int32(1080)}, add[0].Args)

	inhibit := fake.RequestsTo("zwp_keyboard_shortcuts_inhibit_manager_v1", "inhibit_shortcuts")
	require.Len(t, inhibit, 1)
	assert.Equal(t, surface, inhibit[0].Args[1])
	assert.Equal(t, fake.Object("wl_seat"), inhibit[0].Args[2])

	for _, iface := range []string{"wl_pointer", "wl_keyboard", "wl_touch", "zwp_tablet_seat_v2"} {
		assert.NotZero(t, fake.Object(iface), iface)
	}

	win := o.NativeWindow()
	assert.NotNil(t, win.Surface)
	assert.Equal(t, surface, win.Surface.ID())
	assert.EqualValues(t, 1920, win.Width)
}

func TestOpenNamespace(t *testing.T) {
	fake, conn, err := wltest.New(wltest.DefaultConfig())
	require.NoError(t, err)
	defer fake.Close()

	cfg := testConfig()
	cfg.Namespace = "launcher"
	o, err := overlay.OpenConn(conn, cfg)
	require.NoError(t, err)
	defer o.Close()

	get := fake.RequestsTo("zwlr_layer_shell_v1", "get_layer_surface")
	require.Len(t, get, 1)
	assert.Equal(t, "launcher", get[0].Args[4])
}

func TestOpenMissingGlobal(t *testing.T) {
	tests := []struct {
		name    string
		without string
	}{
		{name: "Compositor", without: "wl_compositor"},
		{name: "LayerShell", without: "zwlr_layer_shell_v1"},
		{name: "Seat", without: "wl_seat"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := wltest.DefaultConfig()
			cfg.Globals = nil
			for _, g := range wltest.DefaultGlobals() {
				if g.Interface != test.without {
					cfg.Globals = append(cfg.Globals, g)
				}
			}

			fake, conn, err := wltest.New(cfg)
			require.NoError(t, err)
			defer fake.Close()

			_, err = overlay.OpenConn(conn, testConfig())
			require.ErrorIs(t, err, overlay.ErrMissingGlobal)
			assert.ErrorIs(t, conn.Close(), net.ErrClosed)

			var merr *overlay.MissingGlobalError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, test.without, merr.Interface)
			assert.Equal(t, "required protocol interface not advertised by compositor: "+test.without, err.Error())
		})
	}
}

func TestOpenWithoutOptionalGlobals(t *testing.T) {
	cfg := wltest.DefaultConfig()
	cfg.Globals = []wltest.Global{
		{Interface: "wl_compositor", Version: 4},
		{Interface: "zwlr_layer_shell_v1", Version: 1},
		{Interface: "wl_seat", Version: 1},
	}
	o, fake := open(t, cfg)

	g := o.Globals()
	assert.Nil(t, g.Inhibit)
	assert.Nil(t, g.Tablet)
	assert.Nil(t, g.Shm)
	assert.Empty(t, fake.RequestsTo("zwp_keyboard_shortcuts_inhibit_manager_v1", "inhibit_shortcuts"))
	assert.Zero(t, fake.Object("zwp_tablet_seat_v2"))
	assert.NoError(t, o.DisableAllInput())
}

func TestOpenDefaultSize(t *testing.T) {
	cfg := wltest.DefaultConfig()
	cfg.NoConfigure = true
	o, fake := open(t, cfg)

	w, h := o.Dimensions()
	assert.EqualValues(t, 1920, w)
	assert.EqualValues(t, 1080, h)
	assert.Equal(t, overlay.PhasePendingConfigure, o.Phase())

	add := fake.RequestsTo("wl_region", "add")
	require.Len(t, add, 1)
	assert.Equal(t, []any{int32(0), int32(0), int32(1920), int32(1080)}, add[0].Args)
}

func TestOpenPartialSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
	}{
		{name: "Width", width: 640},
		{name: "Height", height: 480},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := wltest.DefaultConfig()
			cfg.Width, cfg.Height = test.width, test.height
			o, fake := open(t, cfg)

			w, h := o.Dimensions()
			assert.EqualValues(t, 1920, w)
			assert.EqualValues(t, 1080, h)
			assert.Equal(t, overlay.PhaseConfigured, o.Phase())

			add := fake.RequestsTo("wl_region", "add")
			require.Len(t, add, 1)
			assert.Equal(t, []any{int32(0), int32(0), int32(1920), int32(1080)}, add[0].Args)
		})
	}
}

func TestConfigure(t *testing.T) {
	cfg := wltest.DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	o, fake := open(t, cfg)

	w, h := o.Dimensions()
	require.EqualValues(t, 800, w)
	require.EqualValues(t, 600, h)

	ls := fake.Object("zwlr_layer_surface_v1")
	require.NoError(t, fake.Configure(ls, 7, 1920, 1080))
	settle(t, o)

	w, h = o.Dimensions()
	assert.EqualValues(t, 1920, w)
	assert.EqualValues(t, 1080, h)

	acks := fake.RequestsTo("zwlr_layer_surface_v1", "ack_configure")
	require.NotEmpty(t, acks)
	assert.Equal(t, []any{uint32(7)}, acks[len(acks)-1].Args)
}

func TestClosed(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())

	send(t, fake, fake.Object("zwlr_layer_surface_v1"), "closed")
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, overlay.PhaseClosed, o.Phase())
}

func TestPointer(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	ptr := fake.Object("wl_pointer")
	surface := fake.Object("wl_surface")

	send(t, fake, ptr, "enter", 5, surface, 1.0, 2.0)
	settle(t, o)

	x, y := o.CursorPos()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, overlay.DevicePointer, o.LastDevice())

	cursor := fake.RequestsTo("wl_pointer", "set_cursor")
	require.Len(t, cursor, 1)
	assert.Equal(t, []any{uint32(5), uint32(0), int32(0), int32(0)}, cursor[0].Args)
}

func TestPointerMotionLastWins(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	ptr := fake.Object("wl_pointer")

	send(t, fake, ptr, "motion", 0, 10.0, 20.0)
	send(t, fake, ptr, "motion", 1, 30.5, 40.25)
	require.NoError(t, o.RoundTrip())

	x, y := o.CursorPos()
	assert.Equal(t, 30.5, x)
	assert.Equal(t, 40.25, y)
}

func TestPointerButton(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	ptr := fake.Object("wl_pointer")

	send(t, fake, ptr, "button", 1, 0, 273, 1)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 0, o.ButtonState())
	assert.Equal(t, overlay.DeviceNone, o.LastDevice())

	send(t, fake, ptr, "button", 2, 0, 272, 1)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 1, o.ButtonState())

	send(t, fake, ptr, "button", 3, 0, 273, 0)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 1, o.ButtonState())

	send(t, fake, ptr, "button", 4, 0, 272, 0)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 0, o.ButtonState())
}

func TestTouchExclusive(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	touch := fake.Object("wl_touch")
	surface := fake.Object("wl_surface")

	send(t, fake, touch, "down", 1, 0, surface, 1, 10.0, 10.0)
	send(t, fake, touch, "down", 2, 0, surface, 2, 50.0, 50.0)
	require.NoError(t, o.RoundTrip())

	x, y := o.CursorPos()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)
	assert.Equal(t, 1, o.ButtonState())
	assert.Equal(t, overlay.DeviceTouch, o.LastDevice())

	send(t, fake, touch, "up", 3, 0, 2)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 1, o.ButtonState())

	send(t, fake, touch, "motion", 0, 2, 70.0, 80.0)
	require.NoError(t, o.RoundTrip())
	x, y = o.CursorPos()
	assert.Equal(t, 70.0, x)
	assert.Equal(t, 80.0, y)

	send(t, fake, touch, "up", 4, 0, 1)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 0, o.ButtonState())

	send(t, fake, touch, "down", 5, 0, surface, 2, 5.0, 6.0)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 1, o.ButtonState())
}

func TestTablet(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	seat := fake.Object("zwp_tablet_seat_v2")
	require.NotZero(t, seat)

	tab := fake.NewObject()
	send(t, fake, seat, "tablet_added", tab)
	send(t, fake, tab, "name", "Test Tablet")
	send(t, fake, tab, "done")

	tool := fake.NewObject()
	send(t, fake, seat, "tool_added", tool)
	send(t, fake, tool, "type", 0x140)
	send(t, fake, tool, "done")
	send(t, fake, tool, "proximity_in", 1, tab, fake.Object("wl_surface"))
	send(t, fake, tool, "down", 2)
	send(t, fake, tool, "motion", 100.5, 200.0)
	send(t, fake, tool, "pressure", 30000)
	send(t, fake, tool, "frame", 0)
	require.NoError(t, o.RoundTrip())

	x, y := o.CursorPos()
	assert.Equal(t, 100.5, x)
	assert.Equal(t, 200.0, y)
	assert.Equal(t, 1, o.ButtonState())
	assert.Equal(t, overlay.DeviceTablet, o.LastDevice())

	send(t, fake, tool, "up")
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, 0, o.ButtonState())

	send(t, fake, tool, "down", 3)
	send(t, fake, tool, "removed")
	settle(t, o)
	assert.Equal(t, 0, o.ButtonState())
	assert.Len(t, fake.RequestsTo("zwp_tablet_tool_v2", "destroy"), 1)
}

func TestLastWriterAcrossDevices(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())

	send(t, fake, fake.Object("wl_pointer"), "motion", 0, 1.0, 1.0)
	send(t, fake, fake.Object("wl_touch"), "motion", 0, 0, 2.0, 2.0)
	require.NoError(t, o.RoundTrip())

	x, _ := o.CursorPos()
	assert.Equal(t, 2.0, x)
	assert.Equal(t, overlay.DeviceTouch, o.LastDevice())
}

func TestKey(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	kb := fake.Object("wl_keyboard")

	_, _, ok := o.Key()
	assert.False(t, ok)

	send(t, fake, kb, "key", 1, 0, 30, 1)
	require.NoError(t, o.RoundTrip())
	assert.EqualValues(t, 0x61, o.LastKey())
	assert.EqualValues(t, 1, o.LastKeyState())

	sym, state, ok := o.Key()
	assert.True(t, ok)
	assert.EqualValues(t, 0x61, sym)
	assert.EqualValues(t, 1, state)

	o.ClearLastKey()
	assert.EqualValues(t, 0, o.LastKey())
	assert.EqualValues(t, 0, o.LastKeyState())

	send(t, fake, kb, "modifiers", 2, uint32(xkb.ModShift), 0, 0, 0)
	send(t, fake, kb, "key", 3, 0, 30, 1)
	require.NoError(t, o.RoundTrip())
	assert.EqualValues(t, 'A', o.LastKey())
	assert.Equal(t, xkb.ModShift, o.Modifiers())

	send(t, fake, kb, "key", 4, 0, 30, 0)
	require.NoError(t, o.RoundTrip())
	assert.EqualValues(t, 0, o.LastKey())
	assert.EqualValues(t, 0, o.LastKeyState())

	send(t, fake, kb, "key", 5, 0, 1, 1)
	require.NoError(t, o.RoundTrip())
	assert.Equal(t, uint32(xkb.KeyEscape), o.LastKey())
}

func TestKeymapUnsupportedFormat(t *testing.T) {
	cfg := wltest.DefaultConfig()
	cfg.Keymap = ""
	o, fake := open(t, cfg)
	kb := fake.Object("wl_keyboard")

	require.NoError(t, fake.SendKeymap(kb, uint32(wl.KeymapFormatNoKeymap), wltest.USKeymap))
	send(t, fake, kb, "key", 1, 0, 30, 1)
	require.NoError(t, o.RoundTrip())

	assert.Nil(t, o.Keymap())
	assert.EqualValues(t, 0, o.LastKey())
	assert.EqualValues(t, 0, o.LastKeyState())
}

func TestKeymapInvalid(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	kb := fake.Object("wl_keyboard")
	require.NotNil(t, o.Keymap())

	require.NoError(t, fake.SendKeymap(kb, 1, "xkb_keymap { xkb_keycodes { <A> = ; }; };"))
	send(t, fake, kb, "key", 1, 0, 30, 1)
	require.NoError(t, o.RoundTrip())

	assert.Nil(t, o.Keymap())
	assert.EqualValues(t, 0, o.LastKey())
}

func TestDisableAllInput(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())

	require.NoError(t, o.DisableAllInput())
	settle(t, o)

	check := func() {
		assert.Equal(t, layer.KeyboardInteractivityNone, o.KeyboardInteractivity())
		assert.True(t, o.InputRegion().Empty())

		interactivity := fake.RequestsTo("zwlr_layer_surface_v1", "set_keyboard_interactivity")
		assert.Equal(t, []any{uint32(0)}, interactivity[len(interactivity)-1].Args)
		assert.Len(t, fake.RequestsTo("zwp_keyboard_shortcuts_inhibitor_v1", "destroy"), 1)
		assert.Zero(t, fake.Object("zwp_keyboard_shortcuts_inhibitor_v1"))
		assert.Zero(t, fake.Object("wl_region"))
	}
	check()
	before := len(fake.RequestsTo("wl_region", "add"))

	require.NoError(t, o.DisableAllInput())
	settle(t, o)
	check()
	assert.Len(t, fake.RequestsTo("wl_region", "add"), before)
	require.NoError(t, fake.Err())
}

func TestSetInputRegion(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())

	require.NoError(t, o.SetInputRegion(100, 50))
	settle(t, o)
	assert.Equal(t, image.Rect(0, 0, 100, 50), o.InputRegion())

	add := fake.RequestsTo("wl_region", "add")
	assert.Equal(t, []any{int32(0), int32(0), int32(100), int32(50)}, add[len(add)-1].Args)

	set := fake.RequestsTo("wl_surface", "set_input_region")
	require.NotEmpty(t, set)
	assert.Equal(t, add[len(add)-1].Object, set[len(set)-1].Args[0])
}

func TestClose(t *testing.T) {
	fake, conn, err := wltest.New(wltest.DefaultConfig())
	require.NoError(t, err)
	defer fake.Close()

	o, err := overlay.OpenConn(conn, testConfig())
	require.NoError(t, err)
	require.NoError(t, o.Close())

	assert.ErrorIs(t, o.SetInputRegion(1, 1), overlay.ErrNoSurface)
	assert.ErrorIs(t, o.DisableAllInput(), overlay.ErrNoSurface)
	assert.Equal(t, overlay.PhaseUncreated, o.Phase())
	assert.Nil(t, o.NativeWindow().Surface)
}

func TestCloseWithPendingConfigure(t *testing.T) {
	fake, conn, err := wltest.New(wltest.DefaultConfig())
	require.NoError(t, err)
	defer fake.Close()

	o, err := overlay.OpenConn(conn, testConfig())
	require.NoError(t, err)

	require.NoError(t, fake.Configure(fake.Object("zwlr_layer_surface_v1"), 9, 640, 480))
	// Give the reader a chance to queue the event so that Close
	// dispatches it after the surface is gone.
	time.Sleep(20 * time.Millisecond)

	assert.NotPanics(t, func() { require.NoError(t, o.Close()) })
	assert.Equal(t, overlay.PhaseUncreated, o.Phase())

	w, h := o.Dimensions()
	assert.EqualValues(t, 1920, w)
	assert.EqualValues(t, 1080, h)
	assert.Empty(t, fake.RequestsTo("zwlr_layer_surface_v1", "ack_configure")[1:])
}

func TestProtocolError(t *testing.T) {
	o, fake := open(t, wltest.DefaultConfig())
	surface := fake.Object("wl_surface")

	require.NoError(t, fake.ProtocolError(surface, 3, "bad surface"))
	err := o.RoundTrip()

	var perr *wl.ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, surface, perr.ObjectID)
	assert.EqualValues(t, 3, perr.Code)
	assert.Equal(t, "bad surface", perr.Message)

	assert.ErrorAs(t, o.Dispatch(), &perr)
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "tablet", overlay.DeviceTablet.String())
	assert.Equal(t, "none", overlay.DeviceNone.String())
}
