package wl

import (
	"os"

	"deedles.dev/wloverlay/internal/set"
	"deedles.dev/wloverlay/wire"
)

type Shm struct {
	Proxy

	formats set.Set[ShmFormat]
}

func IsShm(inter string) bool {
	return inter == shmInterface
}

func BindShm(registry *Registry, name, version uint32) *Shm {
	shm := Shm{
		Proxy:   MakeProxy(registry.state, shmIface),
		formats: set.New(ShmFormatArgb8888, ShmFormatXrgb8888),
	}
	registry.Bind(name, shmInterface, version, &shm)
	return &shm
}

// Supports reports whether the compositor has advertised format. The
// two formats that every compositor must support are always reported.
func (shm *Shm) Supports(format ShmFormat) bool {
	return shm.formats.Has(format)
}

func (shm *Shm) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case shmEventFormat:
		format := ShmFormat(msg.ReadUint())
		if err := msg.Err(); err != nil {
			return err
		}
		shm.formats.Add(format)
		return nil

	default:
		return shm.UnknownOp(msg.Op())
	}
}

// CreatePool shares file with the compositor. The file may be closed
// once this returns.
func (shm *Shm) CreatePool(file *os.File, size int32) *ShmPool {
	pool := ShmPool{Proxy: MakeProxy(shm.state, shmPoolIface)}
	shm.state.Add(&pool)

	msg := shm.NewMessage(shmRequestCreatePool, &pool, file, size)
	msg.WriteObject(&pool)
	msg.WriteFile(file)
	msg.WriteInt(size)
	shm.state.Enqueue(msg)

	return &pool
}

type ShmFormat uint32

const (
	ShmFormatArgb8888 ShmFormat = iota
	ShmFormatXrgb8888
)

type ShmPool struct {
	Proxy
}

func (pool *ShmPool) Dispatch(msg *wire.MessageBuffer) error {
	return pool.UnknownOp(msg.Op())
}

func (pool *ShmPool) CreateBuffer(offset, width, height, stride int32, format ShmFormat) *Buffer {
	buf := Buffer{Proxy: MakeProxy(pool.state, bufferIface)}
	pool.state.Add(&buf)

	msg := pool.NewMessage(shmPoolRequestCreateBuffer, &buf, offset, width, height, stride, format)
	msg.WriteObject(&buf)
	msg.WriteInt(offset)
	msg.WriteInt(width)
	msg.WriteInt(height)
	msg.WriteInt(stride)
	msg.WriteUint(uint32(format))
	pool.state.Enqueue(msg)

	return &buf
}

// Resize grows the pool. Pools can never shrink.
func (pool *ShmPool) Resize(size int32) {
	msg := pool.NewMessage(shmPoolRequestResize, size)
	msg.WriteInt(size)
	pool.state.Enqueue(msg)
}

func (pool *ShmPool) Destroy() {
	pool.Send(shmPoolRequestDestroy)
}

type Buffer struct {
	Proxy

	// Release is called when the compositor no longer reads from the
	// buffer.
	Release func()
}

func (buf *Buffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case bufferEventRelease:
		if buf.Release != nil {
			buf.Release()
		}
		return nil

	default:
		return buf.UnknownOp(msg.Op())
	}
}

func (buf *Buffer) Destroy() {
	buf.Send(bufferRequestDestroy)
}
