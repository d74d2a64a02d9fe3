package wl

import (
	"deedles.dev/wloverlay/pointer"
	"deedles.dev/wloverlay/wire"
)

type Pointer struct {
	Proxy

	Listener PointerListener
}

// PointerListener receives wl_pointer events. Events added after
// version 1 of the interface, other than frame, are dropped.
type PointerListener interface {
	Enter(serial uint32, s *Surface, x, y wire.Fixed)
	Leave(serial uint32, s *Surface)
	Motion(time uint32, x, y wire.Fixed)
	Button(serial, time uint32, button pointer.Button, state PointerButtonState)
	Axis(time uint32, axis PointerAxis, value wire.Fixed)
	Frame()
}

// SetCursor sets the cursor image shown while the pointer is over one
// of this client's surfaces. A nil surface hides the cursor.
func (p *Pointer) SetCursor(serial uint32, s *Surface, hotspotX, hotspotY int32) {
	msg := p.NewMessage(pointerRequestSetCursor, serial, s, hotspotX, hotspotY)
	msg.WriteUint(serial)
	msg.WriteObject(s)
	msg.WriteInt(hotspotX)
	msg.WriteInt(hotspotY)
	p.state.Enqueue(msg)
}

func (p *Pointer) Dispatch(msg *wire.MessageBuffer) error {
	if p.Listener == nil {
		return nil
	}

	switch msg.Op() {
	case pointerEventEnter:
		serial := msg.ReadUint()
		s := surface(p.state, msg.ReadObject())
		x, y := msg.ReadFixed(), msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		p.Listener.Enter(serial, s, x, y)
		return nil

	case pointerEventLeave:
		serial := msg.ReadUint()
		s := surface(p.state, msg.ReadObject())
		if err := msg.Err(); err != nil {
			return err
		}
		p.Listener.Leave(serial, s)
		return nil

	case pointerEventMotion:
		time := msg.ReadUint()
		x, y := msg.ReadFixed(), msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		p.Listener.Motion(time, x, y)
		return nil

	case pointerEventButton:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		button := pointer.Button(msg.ReadUint())
		state := PointerButtonState(msg.ReadUint())
		if err := msg.Err(); err != nil {
			return err
		}
		p.Listener.Button(serial, time, button, state)
		return nil

	case pointerEventAxis:
		time := msg.ReadUint()
		axis := PointerAxis(msg.ReadUint())
		value := msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		p.Listener.Axis(time, axis, value)
		return nil

	case pointerEventFrame:
		p.Listener.Frame()
		return nil

	case pointerEventAxisSource,
		pointerEventAxisStop,
		pointerEventAxisDiscrete,
		pointerEventAxisValue120,
		pointerEventAxisRelativeDirection:
		return nil

	default:
		return p.UnknownOp(msg.Op())
	}
}

type PointerButtonState uint32

const (
	PointerButtonStateReleased PointerButtonState = iota
	PointerButtonStatePressed
)

type PointerAxis uint32

const (
	PointerAxisVerticalScroll PointerAxis = iota
	PointerAxisHorizontalScroll
)

// surface resolves an object ID from an event to a surface, if it is
// one.
func surface(state *State, id uint32) *Surface {
	s, _ := state.Get(id).(*Surface)
	return s
}
