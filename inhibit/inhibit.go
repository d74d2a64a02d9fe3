// Package inhibit implements the client side of the keyboard
// shortcuts inhibit protocol. While an inhibitor is active, the
// compositor forwards its own keyboard shortcuts to the inhibiting
// surface instead of acting on them.
package inhibit

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/wire"
)

//go:generate go run deedles.dev/wloverlay/cmd/wlgen -proto keyboard_shortcuts_inhibit_unstable_v1 -prefix zwp_keyboard_shortcuts_ -out opcodes.go

const ManagerInterface = inhibitManagerInterface

var (
	managerIface   = protocol.MustLookup(inhibitManagerInterface)
	inhibitorIface = protocol.MustLookup(inhibitorInterface)
)

type Manager struct {
	wl.Proxy
}

func IsManager(inter string) bool {
	return inter == inhibitManagerInterface
}

func BindManager(registry *wl.Registry, name, version uint32) *Manager {
	m := Manager{Proxy: wl.MakeProxy(registry.State(), managerIface)}
	registry.Bind(name, inhibitManagerInterface, version, &m)
	return &m
}

func (m *Manager) Dispatch(msg *wire.MessageBuffer) error {
	return m.UnknownOp(msg.Op())
}

// InhibitShortcuts asks the compositor to stop handling its shortcuts
// for seat while s has keyboard focus. Only one inhibitor may exist
// per surface and seat pair.
func (m *Manager) InhibitShortcuts(s *wl.Surface, seat *wl.Seat) *Inhibitor {
	inhibitor := Inhibitor{Proxy: wl.MakeProxy(m.State(), inhibitorIface)}
	m.State().Add(&inhibitor)

	msg := m.NewMessage(inhibitManagerRequestInhibitShortcuts, &inhibitor, s, seat)
	msg.WriteObject(&inhibitor)
	msg.WriteObject(s)
	msg.WriteObject(seat)
	m.State().Enqueue(msg)

	return &inhibitor
}

func (m *Manager) Destroy() {
	m.Send(inhibitManagerRequestDestroy)
}

type Inhibitor struct {
	wl.Proxy

	Listener InhibitorListener
}

// InhibitorListener is told when the compositor starts and stops
// honoring the inhibitor. The compositor may deactivate it at any
// time, for example if the user asks to regain control.
type InhibitorListener interface {
	Active()
	Inactive()
}

func (i *Inhibitor) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case inhibitorEventActive:
		if i.Listener != nil {
			i.Listener.Active()
		}
		return nil

	case inhibitorEventInactive:
		if i.Listener != nil {
			i.Listener.Inactive()
		}
		return nil

	default:
		return i.UnknownOp(msg.Op())
	}
}

func (i *Inhibitor) Destroy() {
	i.Send(inhibitorRequestDestroy)
}
