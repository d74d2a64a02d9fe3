package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"deedles.dev/wloverlay/internal/bin"
)

// MessageBuffer holds message data that has been read from the socket
// but not yet decoded.
type MessageBuffer struct {
	sender uint32
	op     uint16
	size   uint16
	data   bytes.Reader
	conn   *Conn
	err    error
	args   []any
}

// ReadMessage reads message data from the socket into a buffer.
func ReadMessage(c *Conn) (*MessageBuffer, error) {
	var header [8]byte
	err := c.read(header[:])
	if err != nil {
		return nil, fmt.Errorf("read message header: %w", err)
	}

	mr := MessageBuffer{conn: c}
	mr.sender = bin.Value[uint32]([4]byte(header[:4]))
	so := bin.Value[uint32]([4]byte(header[4:]))
	mr.size = uint16(so >> 16)
	mr.op = uint16(so & 0xFFFF)
	if mr.size < 8 {
		return nil, fmt.Errorf("message from %v has invalid size %v", mr.sender, mr.size)
	}

	data := make([]byte, mr.size-8)
	err = c.read(data)
	if err != nil {
		return nil, fmt.Errorf("read message body: %w", err)
	}
	mr.data.Reset(data)

	return &mr, nil
}

// Sender is the object ID of the sender of the message.
func (r *MessageBuffer) Sender() uint32 {
	return r.sender
}

// Op is the opcode of the message.
func (r *MessageBuffer) Op() uint16 {
	return r.op
}

// Size is the total size of the message, including the 8 byte header.
func (r *MessageBuffer) Size() uint16 {
	return r.size
}

// Err returns the first error encountered while decoding arguments.
func (r *MessageBuffer) Err() error {
	if errors.Is(r.err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return r.err
}

func (r *MessageBuffer) ReadInt() (v int32) {
	if r.err != nil {
		return
	}

	v, r.err = bin.Read[int32](&r.data)
	r.args = append(r.args, v)
	return v
}

func (r *MessageBuffer) ReadUint() (v uint32) {
	if r.err != nil {
		return
	}

	v, r.err = bin.Read[uint32](&r.data)
	r.args = append(r.args, v)
	return v
}

// ReadObject reads an object ID. It is identical to ReadUint, but
// shows up differently in debug output.
func (r *MessageBuffer) ReadObject() uint32 {
	if r.err != nil {
		return 0
	}

	var v uint32
	v, r.err = bin.Read[uint32](&r.data)
	r.args = append(r.args, objectArg(v))
	return v
}

func (r *MessageBuffer) ReadNewID() NewID {
	return NewID{
		Interface: r.ReadString(),
		Version:   r.ReadUint(),
		ID:        r.ReadUint(),
	}
}

func (r *MessageBuffer) ReadFixed() (v Fixed) {
	if r.err != nil {
		return
	}

	v, r.err = bin.Read[Fixed](&r.data)
	r.args = append(r.args, v)
	return v
}

func (r *MessageBuffer) ReadString() string {
	if r.err != nil {
		return ""
	}

	var length uint32
	length, r.err = bin.Read[uint32](&r.data)
	if r.err != nil {
		return ""
	}
	if length == 0 {
		r.args = append(r.args, nil)
		return ""
	}
	pad := padding(length)

	buf := make([]byte, length+pad)
	_, r.err = io.ReadFull(&r.data, buf)
	if r.err != nil {
		return ""
	}
	if buf[length-1] != 0 {
		r.err = errors.New("string is not null-terminated")
		return ""
	}

	v := string(buf[:length-1])
	r.args = append(r.args, v)
	return v
}

func (r *MessageBuffer) ReadArray() []byte {
	if r.err != nil {
		return nil
	}

	var length uint32
	length, r.err = bin.Read[uint32](&r.data)
	if r.err != nil {
		return nil
	}
	pad := padding(length)

	buf := make([]byte, length+pad)
	_, r.err = io.ReadFull(&r.data, buf)
	if r.err != nil {
		return nil
	}

	r.args = append(r.args, buf[:length])
	return buf[:length]
}

// ReadFile claims the next file descriptor received on the connection.
// The caller owns the returned file.
func (r *MessageBuffer) ReadFile() *os.File {
	if r.err != nil {
		return nil
	}
	if r.conn == nil {
		r.err = errors.New("message has no connection to receive file descriptors from")
		return nil
	}

	fd, ok := r.conn.popFD()
	if !ok {
		r.err = errors.New("no more file descriptors")
		return nil
	}

	f := os.NewFile(uintptr(fd), "")
	r.args = append(r.args, f)
	return f
}

// ReadArg reads a single argument of the given wire type, as named in
// protocol XML files. new_id arguments with no interface are not
// supported, as they can only appear in requests.
func (r *MessageBuffer) ReadArg(typ string) any {
	switch typ {
	case "int":
		return r.ReadInt()
	case "uint", "new_id":
		return r.ReadUint()
	case "object":
		return r.ReadObject()
	case "fixed":
		return r.ReadFixed()
	case "string":
		return r.ReadString()
	case "array":
		return r.ReadArray()
	case "fd":
		return r.ReadFile()
	default:
		if r.err == nil {
			r.err = fmt.Errorf("unknown argument type %q", typ)
		}
		return nil
	}
}

func (r *MessageBuffer) Debug(sender Object) string {
	method := sender.MethodName(r.op)
	return fmt.Sprintf("%v.%v(%v)", sender, method, formatArgs(r.args))
}

type objectArg uint32

func (id objectArg) String() string {
	if id == 0 {
		return "nil"
	}
	return fmt.Sprintf("@%v", uint32(id))
}

func formatArgs(args []any) string {
	strs := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg := arg.(type) {
		case nil:
			strs = append(strs, "nil")
		case string:
			strs = append(strs, strconv.Quote(arg))
		case *os.File:
			strs = append(strs, fmt.Sprintf("fd %v", arg.Fd()))
		case []byte:
			strs = append(strs, fmt.Sprintf("array[%v]", len(arg)))
		default:
			strs = append(strs, fmt.Sprint(arg))
		}
	}
	return strings.Join(strs, ", ")
}
