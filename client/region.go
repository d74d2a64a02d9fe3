package wl

import "deedles.dev/wloverlay/wire"

// Region is a set of rectangles, used to describe which parts of a
// surface accept input.
type Region struct {
	Proxy
}

func (r *Region) Dispatch(msg *wire.MessageBuffer) error {
	return r.UnknownOp(msg.Op())
}

func (r *Region) Add(x, y, width, height int32) {
	r.rect(regionRequestAdd, x, y, width, height)
}

func (r *Region) Subtract(x, y, width, height int32) {
	r.rect(regionRequestSubtract, x, y, width, height)
}

func (r *Region) rect(op uint16, x, y, width, height int32) {
	msg := r.NewMessage(op, x, y, width, height)
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	r.state.Enqueue(msg)
}

func (r *Region) Destroy() {
	r.Send(regionRequestDestroy)
}
