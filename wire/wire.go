// Package wire defines types helpful for dealing with the Wayland
// wire protocol. It is primarily intended for use by the protocol
// object packages.
package wire

// Object represents a Wayland protocol object.
type Object interface {
	// ID returns the object's ID, or 0 if it has not been added to a
	// connection state yet.
	ID() uint32

	// SetID is called by the object store when an ID is assigned.
	SetID(id uint32)

	// Dispatch performs the operation requested by the message in the
	// buffer.
	Dispatch(msg *MessageBuffer) error

	// Delete is called when the compositor confirms that the ID is no
	// longer in use.
	Delete()

	// MethodName returns the name of the event with the given opcode.
	// It is used for debug output.
	MethodName(op uint16) string
}

// NewID is an untyped new_id argument, as used by wl_registry.bind.
type NewID struct {
	Interface string
	Version   uint32
	ID        uint32
}

// MaxFDs is the largest number of file descriptors that libwayland
// will attach to a single sendmsg call.
const MaxFDs = 28

// ServerIDStart is the first ID in the range reserved for objects
// created by the compositor.
const ServerIDStart = 0xFF000000

func padding(length uint32) uint32 {
	return (4 - length%4) % 4
}
