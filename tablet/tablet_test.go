package tablet_test

import (
	"testing"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/internal/wltest"
	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/tablet"
	"deedles.dev/wloverlay/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	name string
	args []any
}

type recorder struct {
	events []event
	tools  []*tablet.Tool
	pads   []*wl.Passive
}

func (r *recorder) record(name string, args ...any) {
	if len(args) == 0 {
		args = nil
	}
	r.events = append(r.events, event{name: name, args: args})
}

func (r *recorder) TabletAdded(t *wl.Passive) {
	r.record("tablet_added")
	t.Event = func(ev *protocol.Op, args []any) { r.record(ev.Name, args...) }
}

func (r *recorder) ToolAdded(tool *tablet.Tool) {
	r.record("tool_added")
	tool.Listener = r
	r.tools = append(r.tools, tool)
}

func (r *recorder) PadAdded(pad *wl.Passive) {
	r.record("pad_added")
	r.pads = append(r.pads, pad)
}

func (r *recorder) ProximityIn(serial, tablet uint32, s *wl.Surface) {
	r.record("proximity_in", serial, tablet, s)
}

func (r *recorder) ProximityOut()      { r.record("proximity_out") }
func (r *recorder) Down(serial uint32) { r.record("down", serial) }
func (r *recorder) Up()                { r.record("up") }

func (r *recorder) Motion(x, y wire.Fixed) { r.record("motion", x.Float(), y.Float()) }

func (r *recorder) Button(serial, button uint32, state tablet.ButtonState) {
	r.record("button", serial, button, state)
}

func (r *recorder) Frame(time uint32) { r.record("frame", time) }
func (r *recorder) Removed()          { r.record("removed") }

type noSeat struct{}

func (noSeat) Capabilities(wl.SeatCapability) {}
func (noSeat) Name(string)                    {}

func setup(t *testing.T) (*wl.State, *wltest.Compositor, *tablet.Seat, *recorder) {
	t.Helper()

	fake, conn, err := wltest.New(wltest.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { fake.Close() })

	state := wl.NewState(conn)
	t.Cleanup(func() { state.Close() })

	registry := state.Display().GetRegistry()
	require.NoError(t, state.RoundTrip())

	seats := registry.Find("wl_seat")
	require.Len(t, seats, 1)
	managers := registry.Find(tablet.ManagerInterface)
	require.Len(t, managers, 1)

	seat := wl.BindSeat(registry, seats[0].Name, 1, noSeat{})
	manager := tablet.BindManager(registry, managers[0].Name, 1)

	var rec recorder
	ts := manager.GetTabletSeat(seat, &rec)
	require.NoError(t, state.RoundTrip())

	get := fake.RequestsTo("zwp_tablet_manager_v2", "get_tablet_seat")
	require.Len(t, get, 1)
	assert.Equal(t, []any{ts.ID(), seat.ID()}, get[0].Args)

	return state, fake, ts, &rec
}

func TestIsManager(t *testing.T) {
	assert.True(t, tablet.IsManager("zwp_tablet_manager_v2"))
	assert.False(t, tablet.IsManager("zwp_tablet_seat_v2"))
}

func TestTabletPassive(t *testing.T) {
	state, fake, ts, rec := setup(t)

	tab := fake.NewObject()
	require.NoError(t, fake.Send(ts.ID(), "tablet_added", tab))
	require.NoError(t, fake.Send(tab, "name", "Test Tablet"))
	require.NoError(t, fake.Send(tab, "id", 0x56a, 0x357))
	require.NoError(t, fake.Send(tab, "done"))
	require.NoError(t, state.RoundTrip())

	assert.Equal(t, []event{
		{name: "tablet_added"},
		{name: "name", args: []any{"Test Tablet"}},
		{name: "id", args: []any{uint32(0x56a), uint32(0x357)}},
		{name: "done"},
	}, rec.events)
	assert.IsType(t, &wl.Passive{}, state.Get(tab))
}

func TestPadGroupsArePassive(t *testing.T) {
	state, fake, ts, rec := setup(t)

	pad := fake.NewObject()
	group := fake.NewObject()
	require.NoError(t, fake.Send(ts.ID(), "pad_added", pad))
	require.NoError(t, fake.Send(pad, "group", group))
	require.NoError(t, fake.Send(pad, "buttons", 4))
	require.NoError(t, fake.Send(pad, "done"))
	require.NoError(t, state.RoundTrip())

	require.Len(t, rec.pads, 1)
	assert.Equal(t, pad, rec.pads[0].ID())
	assert.IsType(t, &wl.Passive{}, state.Get(group))
	require.NoError(t, fake.Err())
}

func TestTool(t *testing.T) {
	state, fake, ts, rec := setup(t)

	tool := fake.NewObject()
	require.NoError(t, fake.Send(ts.ID(), "tool_added", tool))
	require.NoError(t, fake.Send(tool, "type", uint32(tablet.ToolTypeEraser)))
	require.NoError(t, fake.Send(tool, "hardware_serial", 0, 1234))
	require.NoError(t, fake.Send(tool, "capability", 1))
	require.NoError(t, fake.Send(tool, "done"))
	require.NoError(t, fake.Send(tool, "down", 5))
	require.NoError(t, fake.Send(tool, "tilt", 1.5, -2.0))
	require.NoError(t, fake.Send(tool, "motion", 10.25, 20.0))
	require.NoError(t, fake.Send(tool, "button", 6, 0x14b, 1))
	require.NoError(t, fake.Send(tool, "frame", 99))
	require.NoError(t, fake.Send(tool, "up"))
	require.NoError(t, fake.Send(tool, "proximity_out"))
	require.NoError(t, state.RoundTrip())

	require.Len(t, rec.tools, 1)
	assert.Equal(t, tablet.ToolTypeEraser, rec.tools[0].Type())
	assert.Equal(t, "eraser", rec.tools[0].Type().String())
	assert.Equal(t, []event{
		{name: "tool_added"},
		{name: "down", args: []any{uint32(5)}},
		{name: "motion", args: []any{10.25, 20.0}},
		{name: "button", args: []any{uint32(6), uint32(0x14b), tablet.ButtonStatePressed}},
		{name: "frame", args: []any{uint32(99)}},
		{name: "up"},
		{name: "proximity_out"},
	}, rec.events)

	require.NoError(t, fake.Send(tool, "removed"))
	require.NoError(t, state.RoundTrip())
	rec.tools[0].Destroy()
	require.NoError(t, state.RoundTrip())
	assert.Len(t, fake.RequestsTo("zwp_tablet_tool_v2", "destroy"), 1)
	require.NoError(t, fake.Err())
}
