package wl_test

import (
	"testing"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/internal/wltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, cfg wltest.Config) (*wl.State, *wltest.Compositor) {
	t.Helper()

	fake, conn, err := wltest.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { fake.Close() })

	state := wl.NewState(conn)
	t.Cleanup(func() { state.Close() })
	return state, fake
}

type seatRecorder struct {
	caps []wl.SeatCapability
	name string
}

func (r *seatRecorder) Capabilities(caps wl.SeatCapability) { r.caps = append(r.caps, caps) }
func (r *seatRecorder) Name(name string)                    { r.name = name }

func TestRegistry(t *testing.T) {
	state, fake := connect(t, wltest.DefaultConfig())

	registry := state.Display().GetRegistry()
	assert.Same(t, registry, state.Display().GetRegistry())
	require.NoError(t, state.RoundTrip())

	globals := registry.Globals()
	assert.Len(t, globals, len(wltest.DefaultGlobals()))
	delete(globals, 1)
	assert.Len(t, registry.Globals(), len(wltest.DefaultGlobals()))

	seats := registry.Find("wl_seat")
	require.Len(t, seats, 1)
	assert.EqualValues(t, 9, seats[0].Version)

	name, err := fake.AddGlobal(wltest.Global{Interface: "wl_seat", Version: 5})
	require.NoError(t, err)
	require.NoError(t, state.RoundTrip())
	seats = registry.Find("wl_seat")
	require.Len(t, seats, 2)
	assert.Less(t, seats[0].Name, seats[1].Name)
	assert.Equal(t, name, seats[1].Name)

	require.NoError(t, fake.Send(fake.Object("wl_registry"), "global_remove", name))
	require.NoError(t, state.RoundTrip())
	assert.Len(t, registry.Find("wl_seat"), 1)
	assert.Empty(t, registry.Find("wl_output"))
}

func TestBindSeat(t *testing.T) {
	state, fake := connect(t, wltest.DefaultConfig())

	registry := state.Display().GetRegistry()
	require.NoError(t, state.RoundTrip())
	g := registry.Find("wl_seat")[0]

	var rec seatRecorder
	seat := wl.BindSeat(registry, g.Name, 1, &rec)
	require.NoError(t, state.RoundTrip())
	require.Len(t, rec.caps, 1)
	assert.True(t, rec.caps[0].Has(wl.SeatCapabilityKeyboard))
	assert.Equal(t, "pointer|keyboard|touch", rec.caps[0].String())

	bind := fake.RequestsTo("wl_registry", "bind")
	require.Len(t, bind, 1)
	assert.Equal(t, g.Name, bind[0].Args[0])
	assert.Equal(t, seat.ID(), fake.Object("wl_seat"))

	require.NoError(t, fake.Send(seat.ID(), "name", "seat0"))
	require.NoError(t, state.RoundTrip())
	assert.Equal(t, "seat0", rec.name)

	seat.GetPointer()
	seat.GetTouch()
	require.NoError(t, state.RoundTrip())
	assert.NotZero(t, fake.Object("wl_pointer"))
	assert.NotZero(t, fake.Object("wl_touch"))
	assert.Zero(t, fake.Object("wl_keyboard"))
	require.NoError(t, fake.Err())
}

func TestSeatCapabilityString(t *testing.T) {
	assert.Equal(t, "none", wl.SeatCapability(0).String())
	assert.Equal(t, "touch", wl.SeatCapabilityTouch.String())
}

func TestCallbackDeleted(t *testing.T) {
	state, _ := connect(t, wltest.DefaultConfig())

	var data []uint32
	cb := state.Display().Sync()
	cb.Then(func(v uint32) { data = append(data, v) })
	id := cb.ID()
	require.NotNil(t, state.Get(id))

	require.NoError(t, state.RoundTrip())
	require.NoError(t, state.RoundTrip())
	assert.Len(t, data, 1)
	assert.Nil(t, state.Get(id))
}

func TestProtocolError(t *testing.T) {
	state, fake := connect(t, wltest.DefaultConfig())
	state.Display().GetRegistry()
	require.NoError(t, state.RoundTrip())

	var reported *wl.ProtocolError
	state.Display().Error = func(err *wl.ProtocolError) { reported = err }

	registry := fake.Object("wl_registry")
	require.NoError(t, fake.ProtocolError(registry, 1, "invalid global"))

	err := state.RoundTrip()
	var perr *wl.ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Same(t, reported, perr)
	assert.Equal(t, registry, perr.ObjectID)
	assert.Contains(t, perr.Error(), "invalid global")
	assert.Contains(t, perr.Error(), "wl_registry")

	assert.Same(t, perr, state.Err())
	assert.ErrorAs(t, state.Flush(), &perr)
	assert.ErrorAs(t, state.RoundTrip(), &perr)
}
