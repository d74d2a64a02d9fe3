// Package tablet implements the client side of the tablet protocol,
// version 2. Only tools are modeled in detail; tablets and pads are
// tracked passively so that their events decode cleanly.
package tablet

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/wire"
)

//go:generate go run deedles.dev/wloverlay/cmd/wlgen -proto tablet_unstable_v2 -prefix zwp_tablet_ -out opcodes.go

const ManagerInterface = managerInterface

var (
	managerIface = protocol.MustLookup(managerInterface)
	seatIface    = protocol.MustLookup(seatInterface)
	toolIface    = protocol.MustLookup(toolInterface)
	tabletIface  = protocol.MustLookup(tabletInterface)
	padIface     = protocol.MustLookup(padInterface)
)

type Manager struct {
	wl.Proxy
}

func IsManager(inter string) bool {
	return inter == managerInterface
}

func BindManager(registry *wl.Registry, name, version uint32) *Manager {
	m := Manager{Proxy: wl.MakeProxy(registry.State(), managerIface)}
	registry.Bind(name, managerInterface, version, &m)
	return &m
}

func (m *Manager) Dispatch(msg *wire.MessageBuffer) error {
	return m.UnknownOp(msg.Op())
}

// GetTabletSeat returns the tablet seat that corresponds to seat. The
// listener is installed before the request is sent, as the compositor
// announces existing devices immediately.
func (m *Manager) GetTabletSeat(seat *wl.Seat, lis SeatListener) *Seat {
	ts := Seat{
		Proxy:    wl.MakeProxy(m.State(), seatIface),
		Listener: lis,
	}
	m.State().Add(&ts)

	msg := m.NewMessage(managerRequestGetTabletSeat, &ts, seat)
	msg.WriteObject(&ts)
	msg.WriteObject(seat)
	m.State().Enqueue(msg)

	return &ts
}

func (m *Manager) Destroy() {
	m.Send(managerRequestDestroy)
}

type Seat struct {
	wl.Proxy

	Listener SeatListener
}

// SeatListener is told about devices as they are added to the seat.
// Tablets and pads are registered as passive objects before the
// listener is called.
type SeatListener interface {
	TabletAdded(tablet *wl.Passive)
	ToolAdded(tool *Tool)
	PadAdded(pad *wl.Passive)
}

func (s *Seat) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case seatEventTabletAdded, seatEventPadAdded:
		id := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		if msg.Op() == seatEventTabletAdded {
			tablet := wl.NewPassive(s.State(), tabletIface, id)
			if s.Listener != nil {
				s.Listener.TabletAdded(tablet)
			}
			return nil
		}

		pad := wl.NewPassive(s.State(), padIface, id)
		if s.Listener != nil {
			s.Listener.PadAdded(pad)
		}
		return nil

	case seatEventToolAdded:
		id := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}

		tool := Tool{Proxy: wl.MakeProxy(s.State(), toolIface)}
		s.State().Set(id, &tool)
		if s.Listener != nil {
			s.Listener.ToolAdded(&tool)
		}
		return nil

	default:
		return s.UnknownOp(msg.Op())
	}
}

func (s *Seat) Destroy() {
	s.Send(seatRequestDestroy)
}
