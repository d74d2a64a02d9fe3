package wire

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type testObject struct {
	id uint32
}

func (obj *testObject) ID() uint32                        { return obj.id }
func (obj *testObject) SetID(id uint32)                   { obj.id = id }
func (obj *testObject) Dispatch(msg *MessageBuffer) error { return nil }
func (obj *testObject) Delete()                           {}
func (obj *testObject) MethodName(op uint16) string       { return "event" }
func (obj *testObject) String() string                    { return "test_object" }

func pipe(t *testing.T) (*Conn, *Conn) {
	t.Helper()

	c1, c2, err := Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		c1.Close()
		c2.Close()
	})
	return c1, c2
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 3, FixedInt(3).Int())
	assert.Equal(t, 0, FixedInt(3).Frac())
	assert.Equal(t, 12.5, FixedFloat(12.5).Float())
	assert.Equal(t, 128, FixedFloat(12.5).Frac())
	assert.Equal(t, -1.25, FixedFloat(-1.25).Float())
	assert.Equal(t, -2, FixedFloat(-1.25).Int())
	assert.Equal(t, "-1.25", FixedFloat(-1.25).String())
}

func TestMessageHeader(t *testing.T) {
	client, server := pipe(t)

	sender := &testObject{id: 3}
	msg := NewMessage(sender, 6)
	msg.WriteUint(7)
	require.NoError(t, msg.Build(client))

	buf, err := ReadMessage(server)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), buf.Sender())
	assert.Equal(t, uint16(6), buf.Op())
	assert.Equal(t, uint16(12), buf.Size())
	assert.Equal(t, uint32(7), buf.ReadUint())
	assert.NoError(t, buf.Err())
}

func TestMessageArguments(t *testing.T) {
	client, server := pipe(t)

	msg := NewMessage(&testObject{id: 1}, 0)
	msg.WriteNewID(NewID{Interface: "wl_seat", Version: 1, ID: 5})
	msg.WriteInt(-1)
	msg.WriteFixed(FixedFloat(0.5))
	msg.WriteString("")
	msg.WriteArray([]byte{1, 2, 3, 4, 5})
	msg.WriteObject((*testObject)(nil))
	require.NoError(t, msg.Build(client))

	buf, err := ReadMessage(server)
	require.NoError(t, err)
	assert.Equal(t, NewID{Interface: "wl_seat", Version: 1, ID: 5}, buf.ReadNewID())
	assert.Equal(t, int32(-1), buf.ReadInt())
	assert.Equal(t, 0.5, buf.ReadFixed().Float())
	assert.Equal(t, "", buf.ReadString())
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, buf.ReadArray())
	assert.Equal(t, uint32(0), buf.ReadObject())
	require.NoError(t, buf.Err())

	buf.ReadUint()
	assert.ErrorIs(t, buf.Err(), io.ErrUnexpectedEOF)
}

func TestMessageFile(t *testing.T) {
	client, server := pipe(t)

	fd, err := unix.MemfdCreate("wire-test", unix.MFD_CLOEXEC)
	require.NoError(t, err)
	file := os.NewFile(uintptr(fd), "wire-test")
	_, err = file.WriteString("keymap")
	require.NoError(t, err)

	msg := NewMessage(&testObject{id: 4}, 0)
	msg.WriteUint(1)
	msg.WriteFile(file)
	msg.WriteUint(6)
	file.Close()
	require.NoError(t, msg.Build(client))

	buf, err := ReadMessage(server)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), buf.ReadUint())
	received := buf.ReadFile()
	require.NotNil(t, received)
	defer received.Close()
	assert.Equal(t, uint32(6), buf.ReadUint())
	require.NoError(t, buf.Err())

	data := make([]byte, 6)
	_, err = received.ReadAt(data, 0)
	require.NoError(t, err)
	assert.Equal(t, "keymap", string(data))

	assert.Nil(t, buf.ReadFile())
	assert.Error(t, buf.Err())
}

func TestReadArg(t *testing.T) {
	client, server := pipe(t)

	msg := NewMessage(&testObject{id: 9}, 2)
	msg.WriteString("hello")
	msg.WriteObject(&testObject{id: 12})
	require.NoError(t, msg.Build(client))

	buf, err := ReadMessage(server)
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.ReadArg("string"))
	assert.Equal(t, uint32(12), buf.ReadArg("object"))
	assert.Equal(t, `test_object.event("hello", @12)`, buf.Debug(&testObject{id: 9}))

	buf.ReadArg("bogus")
	assert.Error(t, buf.Err())
}

func TestReadMessageClosed(t *testing.T) {
	client, server := pipe(t)
	client.Close()

	_, err := ReadMessage(server)
	assert.Error(t, err)
}
