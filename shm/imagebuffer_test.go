package shm_test

import (
	"image"
	"image/color"
	"io"
	"testing"

	"deedles.dev/wloverlay/internal/wltest"
	"deedles.dev/wloverlay/overlay"
	"deedles.dev/wloverlay/shm"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageBuffer(t *testing.T) {
	fake, conn, err := wltest.New(wltest.DefaultConfig())
	require.NoError(t, err)
	defer fake.Close()

	cfg := overlay.DefaultConfig()
	cfg.Logger = log.New(io.Discard)
	o, err := overlay.OpenConn(conn, cfg)
	require.NoError(t, err)
	defer o.Close()

	g := o.Globals()
	require.NotNil(t, g.Shm)

	buf, err := shm.NewImageBuffer(g.Shm, 4, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 16, buf.Stride())
	assert.Equal(t, image.Rect(0, 0, 4, 2), buf.Bounds())

	img := buf.Image()
	img.Set(1, 1, color.NRGBA{R: 0xFF, A: 0xFF})
	r, _, _, a := img.At(1, 1).RGBA()
	assert.EqualValues(t, 0xFFFF, r)
	assert.EqualValues(t, 0xFFFF, a)

	win := o.NativeWindow()
	win.Surface.Attach(buf.Buffer(), 0, 0)
	win.Surface.Damage(0, 0, 4, 2)
	win.Surface.Commit()
	require.NoError(t, o.RoundTrip())

	pools := fake.RequestsTo("wl_shm", "create_pool")
	require.Len(t, pools, 1)
	assert.Equal(t, int32(32), pools[0].Args[2])

	bufs := fake.RequestsTo("wl_shm_pool", "create_buffer")
	require.Len(t, bufs, 1)
	assert.Equal(t, []any{buf.Buffer().ID(), int32(0), int32(4), int32(2), int32(16), uint32(0)}, bufs[0].Args)

	attach := fake.RequestsTo("wl_surface", "attach")
	require.Len(t, attach, 1)
	assert.Equal(t, buf.Buffer().ID(), attach[0].Args[0])

	require.NoError(t, buf.Resize(8, 8))
	assert.Equal(t, image.Rect(0, 0, 8, 8), buf.Image().Bounds())
	require.NoError(t, o.RoundTrip())
	assert.Len(t, fake.RequestsTo("wl_shm_pool", "resize"), 1)

	require.NoError(t, buf.Destroy())
	require.NoError(t, o.RoundTrip())
	assert.Len(t, fake.RequestsTo("wl_shm_pool", "destroy"), 1)
	require.NoError(t, fake.Err())
}
