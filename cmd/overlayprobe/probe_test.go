package main

import (
	"image/color"
	"io"
	"testing"

	"deedles.dev/wloverlay/internal/wltest"
	"deedles.dev/wloverlay/overlay"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openProbe(t *testing.T, cfg wltest.Config) (*probe, *overlay.Overlay, *wltest.Compositor) {
	t.Helper()

	fake, conn, err := wltest.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { fake.Close() })

	ocfg := overlay.DefaultConfig()
	ocfg.Logger = log.New(io.Discard)
	o, err := overlay.OpenConn(conn, ocfg)
	require.NoError(t, err)
	t.Cleanup(func() { o.Close() })

	p := newProbe(o, log.New(io.Discard), color.NRGBA{A: 0x60})
	t.Cleanup(func() { p.Close() })
	return p, o, fake
}

func smallConfig() wltest.Config {
	cfg := wltest.DefaultConfig()
	cfg.Width, cfg.Height = 64, 32
	return cfg
}

func TestProbePaint(t *testing.T) {
	p, o, fake := openProbe(t, smallConfig())

	done, err := p.frame()
	require.NoError(t, err)
	assert.False(t, done)
	require.NoError(t, o.RoundTrip())

	pools := fake.RequestsTo("wl_shm", "create_pool")
	require.Len(t, pools, 1)
	assert.Equal(t, int32(64*32*4), pools[0].Args[2])
	assert.Len(t, fake.RequestsTo("wl_surface", "attach"), 1)
	assert.Len(t, fake.RequestsTo("wl_surface", "damage"), 1)

	_, _, _, a := p.buf.Image().At(10, 10).RGBA()
	assert.EqualValues(t, 0x6060, a)

	_, err = p.frame()
	require.NoError(t, err)
	require.NoError(t, o.RoundTrip())
	assert.Len(t, fake.RequestsTo("wl_surface", "attach"), 1)
	require.NoError(t, fake.Err())
}

func TestProbeResize(t *testing.T) {
	p, o, fake := openProbe(t, smallConfig())

	_, err := p.frame()
	require.NoError(t, err)

	ls := fake.Object("zwlr_layer_surface_v1")
	require.NoError(t, fake.Configure(ls, 2, 128, 64))
	require.NoError(t, o.RoundTrip())

	_, err = p.frame()
	require.NoError(t, err)
	require.NoError(t, o.RoundTrip())

	assert.Len(t, fake.RequestsTo("wl_shm_pool", "resize"), 1)
	assert.Len(t, fake.RequestsTo("wl_shm_pool", "create_buffer"), 2)
	assert.Len(t, fake.RequestsTo("wl_surface", "attach"), 2)
	assert.EqualValues(t, 128, p.w)
	assert.EqualValues(t, 64, p.h)
	require.NoError(t, fake.Err())
}

func TestProbeEscape(t *testing.T) {
	p, o, fake := openProbe(t, smallConfig())
	kb := fake.Object("wl_keyboard")

	require.NoError(t, fake.Send(kb, "key", 1, 0, 30, 1))
	require.NoError(t, o.RoundTrip())
	done, err := p.frame()
	require.NoError(t, err)
	assert.False(t, done)
	_, _, ok := o.Key()
	assert.False(t, ok)

	require.NoError(t, fake.Send(kb, "key", 2, 0, 1, 0))
	require.NoError(t, o.RoundTrip())
	done, err = p.frame()
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, fake.Send(kb, "key", 3, 0, 1, 1))
	require.NoError(t, o.RoundTrip())
	done, err = p.frame()
	require.NoError(t, err)
	assert.True(t, done)
	require.NoError(t, o.RoundTrip())

	interactivity := fake.RequestsTo("zwlr_layer_surface_v1", "set_keyboard_interactivity")
	assert.Equal(t, []any{uint32(0)}, interactivity[len(interactivity)-1].Args)
	require.NoError(t, fake.Err())
}

func TestProbeButton(t *testing.T) {
	p, o, fake := openProbe(t, smallConfig())
	ptr := fake.Object("wl_pointer")
	surface := fake.Object("wl_surface")

	require.NoError(t, fake.Send(ptr, "enter", 1, surface, 10.0, 20.0))
	require.NoError(t, fake.Send(ptr, "button", 2, 0, 272, 1))
	require.NoError(t, o.RoundTrip())

	_, err := p.frame()
	require.NoError(t, err)
	assert.Equal(t, 1, p.button)
	assert.Equal(t, 10.0, p.x)
	assert.Equal(t, 20.0, p.y)
}
