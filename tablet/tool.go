package tablet

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/wire"
)

type Tool struct {
	wl.Proxy

	Listener ToolListener

	typ ToolType
}

// ToolListener receives the events of a tablet tool that affect its
// position and contact state. The axis events (pressure, distance,
// tilt, rotation, slider, wheel) are decoded and dropped.
type ToolListener interface {
	ProximityIn(serial uint32, tablet uint32, s *wl.Surface)
	ProximityOut()
	Down(serial uint32)
	Up()
	Motion(x, y wire.Fixed)
	Button(serial, button uint32, state ButtonState)
	Frame(time uint32)
	Removed()
}

// Type returns the tool type announced during setup.
func (t *Tool) Type() ToolType {
	return t.typ
}

func (t *Tool) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case toolEventType:
		t.typ = ToolType(msg.ReadUint())
		return msg.Err()

	case toolEventHardwareSerial, toolEventHardwareIdWacom:
		msg.ReadUint()
		msg.ReadUint()
		return msg.Err()

	case toolEventCapability, toolEventPressure, toolEventDistance:
		msg.ReadUint()
		return msg.Err()

	case toolEventTilt:
		msg.ReadFixed()
		msg.ReadFixed()
		return msg.Err()

	case toolEventRotation:
		msg.ReadFixed()
		return msg.Err()

	case toolEventSlider:
		msg.ReadInt()
		return msg.Err()

	case toolEventWheel:
		msg.ReadFixed()
		msg.ReadInt()
		return msg.Err()

	case toolEventDone:
		return nil
	}

	if t.Listener == nil {
		return nil
	}

	switch msg.Op() {
	case toolEventRemoved:
		t.Listener.Removed()
		return nil

	case toolEventProximityIn:
		serial := msg.ReadUint()
		tablet := msg.ReadObject()
		id := msg.ReadObject()
		if err := msg.Err(); err != nil {
			return err
		}
		s, _ := t.State().Get(id).(*wl.Surface)
		t.Listener.ProximityIn(serial, tablet, s)
		return nil

	case toolEventProximityOut:
		t.Listener.ProximityOut()
		return nil

	case toolEventDown:
		serial := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Down(serial)
		return nil

	case toolEventUp:
		t.Listener.Up()
		return nil

	case toolEventMotion:
		x, y := msg.ReadFixed(), msg.ReadFixed()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Motion(x, y)
		return nil

	case toolEventButton:
		serial := msg.ReadUint()
		button := msg.ReadUint()
		state := ButtonState(msg.ReadUint())
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Button(serial, button, state)
		return nil

	case toolEventFrame:
		time := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		t.Listener.Frame(time)
		return nil

	default:
		return t.UnknownOp(msg.Op())
	}
}

// SetCursor sets the cursor image shown for this tool. A nil surface
// hides it.
func (t *Tool) SetCursor(serial uint32, s *wl.Surface, hotspotX, hotspotY int32) {
	msg := t.NewMessage(toolRequestSetCursor, serial, s, hotspotX, hotspotY)
	msg.WriteUint(serial)
	msg.WriteObject(s)
	msg.WriteInt(hotspotX)
	msg.WriteInt(hotspotY)
	t.State().Enqueue(msg)
}

// Destroy releases the tool. It should be called in response to
// Removed.
func (t *Tool) Destroy() {
	t.Send(toolRequestDestroy)
}

type ToolType uint32

const (
	ToolTypePen ToolType = 0x140 + iota
	ToolTypeEraser
	ToolTypeBrush
	ToolTypePencil
	ToolTypeAirbrush
	ToolTypeFinger
	ToolTypeMouse
	ToolTypeLens
)

func (t ToolType) String() string {
	switch t {
	case ToolTypePen:
		return "pen"
	case ToolTypeEraser:
		return "eraser"
	case ToolTypeBrush:
		return "brush"
	case ToolTypePencil:
		return "pencil"
	case ToolTypeAirbrush:
		return "airbrush"
	case ToolTypeFinger:
		return "finger"
	case ToolTypeMouse:
		return "mouse"
	case ToolTypeLens:
		return "lens"
	}
	return "unknown"
}

type ButtonState uint32

const (
	ButtonStateReleased ButtonState = iota
	ButtonStatePressed
)
