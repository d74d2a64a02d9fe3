package objstore

import (
	"testing"

	"deedles.dev/wloverlay/wire"
	"github.com/stretchr/testify/assert"
)

type object struct {
	id      uint32
	deleted bool
}

func (obj *object) ID() uint32                             { return obj.id }
func (obj *object) SetID(id uint32)                        { obj.id = id }
func (obj *object) Dispatch(msg *wire.MessageBuffer) error { return nil }
func (obj *object) Delete()                                { obj.deleted = true }
func (obj *object) MethodName(op uint16) string            { return "" }

func TestStore(t *testing.T) {
	s := New(1)

	a, b := new(object), new(object)
	s.Add(a)
	s.Add(b)
	assert.Equal(t, uint32(1), a.ID())
	assert.Equal(t, uint32(2), b.ID())

	srv := new(object)
	s.Set(wire.ServerIDStart, srv)
	assert.Same(t, srv, s.Get(wire.ServerIDStart))
	assert.Equal(t, 3, s.Len())

	s.Delete(1)
	assert.True(t, a.deleted)
	assert.Nil(t, s.Get(1))
	assert.False(t, b.deleted)

	s.Delete(100)
	assert.Equal(t, 2, s.Len())
}
