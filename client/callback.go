package wl

import "deedles.dev/wloverlay/wire"

type Callback struct {
	Proxy

	Listener CallbackListener
}

type CallbackListener interface {
	Done(data uint32)
}

// Then sets f as the callback's listener.
func (c *Callback) Then(f func(uint32)) {
	c.Listener = callbackListener(f)
}

func (c *Callback) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case callbackEventDone:
		data := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if c.Listener != nil {
			c.Listener.Done(data)
		}
		return nil

	default:
		return c.UnknownOp(msg.Op())
	}
}

type callbackListener func(uint32)

func (lis callbackListener) Done(data uint32) {
	lis(data)
}
