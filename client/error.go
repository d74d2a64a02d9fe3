package wl

import (
	"errors"
	"fmt"

	"deedles.dev/wloverlay/wire"
)

// ErrDisconnected is returned once the compositor has closed the
// connection.
var ErrDisconnected = errors.New("compositor closed the connection")

// UnknownSenderIDError is returned by an attempt to dispatch an
// incoming message that indicates an event from an object that the
// State doesn't know about.
type UnknownSenderIDError struct {
	Msg *wire.MessageBuffer
}

func (err UnknownSenderIDError) Error() string {
	return fmt.Sprintf("unknown sender object ID: %v", err.Msg.Sender())
}

// ProtocolError is a fatal error reported by the compositor through
// wl_display.error. The connection is unusable after one arrives.
type ProtocolError struct {
	ObjectID uint32
	Object   string
	Code     uint32
	Message  string
}

func (err *ProtocolError) Error() string {
	obj := err.Object
	if obj == "" {
		obj = fmt.Sprintf("object %v", err.ObjectID)
	}
	return fmt.Sprintf("protocol error on %v, code %v: %v", obj, err.Code, err.Message)
}
