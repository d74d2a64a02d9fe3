package wl

import (
	"strings"

	"deedles.dev/wloverlay/wire"
)

type Seat struct {
	Proxy

	Listener SeatListener
}

type SeatListener interface {
	Capabilities(caps SeatCapability)
	Name(name string)
}

func IsSeat(inter string) bool {
	return inter == seatInterface
}

// BindSeat binds a seat. The listener is installed before the bind
// request is queued so that the initial capabilities event can't be
// missed.
func BindSeat(registry *Registry, name, version uint32, lis SeatListener) *Seat {
	seat := Seat{
		Proxy:    MakeProxy(registry.state, seatIface),
		Listener: lis,
	}
	registry.Bind(name, seatInterface, version, &seat)
	return &seat
}

func (seat *Seat) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case seatEventCapabilities:
		caps := SeatCapability(msg.ReadUint())
		if err := msg.Err(); err != nil {
			return err
		}
		if seat.Listener != nil {
			seat.Listener.Capabilities(caps)
		}
		return nil

	case seatEventName:
		name := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		if seat.Listener != nil {
			seat.Listener.Name(name)
		}
		return nil

	default:
		return seat.UnknownOp(msg.Op())
	}
}

func (seat *Seat) GetPointer() *Pointer {
	p := Pointer{Proxy: MakeProxy(seat.state, pointerIface)}
	seat.create(seatRequestGetPointer, &p)
	return &p
}

func (seat *Seat) GetKeyboard() *Keyboard {
	kb := Keyboard{Proxy: MakeProxy(seat.state, keyboardIface)}
	seat.create(seatRequestGetKeyboard, &kb)
	return &kb
}

func (seat *Seat) GetTouch() *Touch {
	t := Touch{Proxy: MakeProxy(seat.state, touchIface)}
	seat.create(seatRequestGetTouch, &t)
	return &t
}

func (seat *Seat) create(op uint16, obj wire.Object) {
	seat.state.Add(obj)

	msg := seat.NewMessage(op, obj)
	msg.WriteObject(obj)
	seat.state.Enqueue(msg)
}

type SeatCapability uint32

const (
	SeatCapabilityPointer SeatCapability = 1 << iota
	SeatCapabilityKeyboard
	SeatCapabilityTouch
)

func (caps SeatCapability) Has(c SeatCapability) bool {
	return caps&c != 0
}

func (caps SeatCapability) String() string {
	var names []string
	if caps.Has(SeatCapabilityPointer) {
		names = append(names, "pointer")
	}
	if caps.Has(SeatCapabilityKeyboard) {
		names = append(names, "keyboard")
	}
	if caps.Has(SeatCapabilityTouch) {
		names = append(names, "touch")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
