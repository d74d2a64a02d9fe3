package wl

import (
	"os"

	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/wire"
)

// Passive is an object that decodes its events from the protocol
// descriptor table but otherwise ignores them. It is used for objects
// that the compositor creates on the client's behalf, such as tablet
// pads, when nothing is interested in them. Objects announced by a
// Passive's own events are registered as Passives in turn, and any
// file descriptors are closed.
type Passive struct {
	Proxy

	// Event, if set, is called with the decoded arguments of every
	// event.
	Event func(ev *protocol.Op, args []any)
}

// NewPassive registers a Passive for an object with an ID chosen by
// the compositor.
func NewPassive(state *State, iface *protocol.Interface, id uint32) *Passive {
	p := Passive{Proxy: MakeProxy(state, iface)}
	state.Set(id, &p)
	return &p
}

func (p *Passive) Dispatch(msg *wire.MessageBuffer) error {
	ev := p.iface.Event(msg.Op())
	if ev == nil {
		return p.UnknownOp(msg.Op())
	}

	args := make([]any, 0, len(ev.Args))
	for _, arg := range ev.Args {
		v := msg.ReadArg(arg.Type)
		switch arg.Type {
		case "new_id":
			if iface := protocol.Lookup(arg.Interface); (iface != nil) && (msg.Err() == nil) {
				NewPassive(p.state, iface, v.(uint32))
			}
		case "fd":
			if f, ok := v.(*os.File); ok && (f != nil) {
				f.Close()
			}
		}
		args = append(args, v)
	}
	if err := msg.Err(); err != nil {
		return err
	}

	if p.Event != nil {
		p.Event(ev, args)
	}
	return nil
}
