package wl

import "deedles.dev/wloverlay/wire"

type Touch struct {
	Proxy

	Listener TouchListener
}

type TouchListener interface {
	Down(serial, time uint32, s *Surface, id int32, x, y wire.Fixed)
	Up(serial, time uint32, id int32)
	Motion(time uint32, id int32, x, y wire.Fixed)
	Frame()
	Cancel()
}

func (t *Touch) Dispatch(msg *wire.MessageBuffer) error {
	if t.Listener == nil {
		return nil
	}

	switch msg.Op() {
	case touchEventDown:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		s := surface(t.state, msg.ReadObject())
		id := msg.ReadInt()
		x, y := msg.ReadFixed(), msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Down(serial, time, s, id, x, y)
		return nil

	case touchEventUp:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		id := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Up(serial, time, id)
		return nil

	case touchEventMotion:
		time := msg.ReadUint()
		id := msg.ReadInt()
		x, y := msg.ReadFixed(), msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Motion(time, id, x, y)
		return nil

	case touchEventFrame:
		t.Listener.Frame()
		return nil

	case touchEventCancel:
		t.Listener.Cancel()
		return nil

	case touchEventShape, touchEventOrientation:
		return nil

	default:
		return t.UnknownOp(msg.Op())
	}
}
