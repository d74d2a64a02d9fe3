package wl

import (
	"fmt"

	"deedles.dev/wloverlay/wire"
)

// Display is the wl_display singleton, object 1 on every connection.
type Display struct {
	Proxy

	// Error, if set, is called when the compositor reports a fatal
	// protocol error, before the error is returned from Flush.
	Error func(err *ProtocolError)

	registry *Registry
}

func (display *Display) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case displayEventError:
		id := msg.ReadObject()
		code := msg.ReadUint()
		message := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}

		perr := ProtocolError{ObjectID: id, Code: code, Message: message}
		if obj := display.state.Get(id); obj != nil {
			perr.Object = fmt.Sprint(obj)
		}
		if display.Error != nil {
			display.Error(&perr)
		}
		return display.state.fail(&perr)

	case displayEventDeleteId:
		id := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		display.state.Delete(id)
		return nil

	default:
		return display.UnknownOp(msg.Op())
	}
}

// GetRegistry returns the registry, creating it on first use.
func (display *Display) GetRegistry() *Registry {
	if display.registry != nil {
		return display.registry
	}

	registry := Registry{
		Proxy:   MakeProxy(display.state, registryIface),
		globals: make(map[uint32]Global),
	}
	display.state.Add(&registry)

	msg := display.NewMessage(displayRequestGetRegistry, &registry)
	msg.WriteObject(&registry)
	display.state.Enqueue(msg)

	display.registry = &registry
	return &registry
}

// Sync asks the compositor to fire the returned callback once every
// request sent before it has been processed.
func (display *Display) Sync() *Callback {
	callback := Callback{Proxy: MakeProxy(display.state, callbackIface)}
	display.state.Add(&callback)

	msg := display.NewMessage(displayRequestSync, &callback)
	msg.WriteObject(&callback)
	display.state.Enqueue(msg)

	return &callback
}
