package wl

import (
	"fmt"

	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/wire"
)

var (
	displayIface    = protocol.MustLookup(displayInterface)
	registryIface   = protocol.MustLookup(registryInterface)
	callbackIface   = protocol.MustLookup(callbackInterface)
	compositorIface = protocol.MustLookup(compositorInterface)
	surfaceIface    = protocol.MustLookup(surfaceInterface)
	regionIface     = protocol.MustLookup(regionInterface)
	seatIface       = protocol.MustLookup(seatInterface)
	pointerIface    = protocol.MustLookup(pointerInterface)
	keyboardIface   = protocol.MustLookup(keyboardInterface)
	touchIface      = protocol.MustLookup(touchInterface)
	shmIface        = protocol.MustLookup(shmInterface)
	shmPoolIface    = protocol.MustLookup(shmPoolInterface)
	bufferIface     = protocol.MustLookup(bufferInterface)
)

// Proxy is the client-side half of a protocol object. Every object
// type in this package and in the extension packages embeds one.
type Proxy struct {
	state *State
	iface *protocol.Interface
	id    uint32
}

// MakeProxy returns a Proxy for an object of the given interface. The
// object still needs to be added to the state to get an ID.
func MakeProxy(state *State, iface *protocol.Interface) Proxy {
	return Proxy{state: state, iface: iface}
}

func (p *Proxy) ID() uint32 {
	return p.id
}

func (p *Proxy) SetID(id uint32) {
	p.id = id
}

// Delete is called once the compositor has acknowledged the object's
// destruction.
func (p *Proxy) Delete() {}

func (p *Proxy) State() *State {
	return p.state
}

func (p *Proxy) Interface() *protocol.Interface {
	return p.iface
}

func (p *Proxy) MethodName(op uint16) string {
	if ev := p.iface.Event(op); ev != nil {
		return ev.Name
	}
	return fmt.Sprintf("event%v", op)
}

func (p *Proxy) String() string {
	return fmt.Sprintf("%v@%v", p.iface.Name, p.id)
}

// NewMessage starts a request. The args are recorded for debug output
// only; the caller still has to write them.
func (p *Proxy) NewMessage(op uint16, args ...any) *wire.MessageBuilder {
	msg := wire.NewMessage(p, op)
	if req := p.iface.Request(op); req != nil {
		msg.Method = req.Name
	}
	msg.Args = args
	return msg
}

// Send enqueues a request with no arguments.
func (p *Proxy) Send(op uint16) {
	p.state.Enqueue(p.NewMessage(op))
}

// UnknownOp returns the error for an event opcode that the object
// does not know about.
func (p *Proxy) UnknownOp(op uint16) error {
	return wire.UnknownOpError{
		Interface: p.iface.Name,
		Type:      "event",
		Op:        op,
	}
}

// Dispatch ignores every event. Object types override it.
func (p *Proxy) Dispatch(msg *wire.MessageBuffer) error {
	return nil
}
