package wl

import "deedles.dev/wloverlay/wire"

type Surface struct {
	Proxy

	Listener SurfaceListener
}

// SurfaceListener receives notifications about which outputs the
// surface is shown on. The output arguments are raw object IDs, since
// outputs are not tracked by this package.
type SurfaceListener interface {
	Enter(output uint32)
	Leave(output uint32)
}

func (s *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case surfaceEventEnter, surfaceEventLeave:
		output := msg.ReadObject()
		if err := msg.Err(); err != nil {
			return err
		}
		if s.Listener == nil {
			return nil
		}
		if msg.Op() == surfaceEventEnter {
			s.Listener.Enter(output)
		} else {
			s.Listener.Leave(output)
		}
		return nil

	case surfaceEventPreferredBufferScale, surfaceEventPreferredBufferTransform:
		return nil

	default:
		return s.UnknownOp(msg.Op())
	}
}

func (s *Surface) Attach(buf *Buffer, x, y int32) {
	msg := s.NewMessage(surfaceRequestAttach, buf, x, y)
	msg.WriteObject(buf)
	msg.WriteInt(x)
	msg.WriteInt(y)
	s.state.Enqueue(msg)
}

func (s *Surface) Damage(x, y, width, height int32) {
	msg := s.NewMessage(surfaceRequestDamage, x, y, width, height)
	msg.WriteInt(x)
	msg.WriteInt(y)
	msg.WriteInt(width)
	msg.WriteInt(height)
	s.state.Enqueue(msg)
}

// SetInputRegion sets the area of the surface that accepts pointer
// and touch input. A nil region means the whole surface.
func (s *Surface) SetInputRegion(r *Region) {
	msg := s.NewMessage(surfaceRequestSetInputRegion, r)
	msg.WriteObject(r)
	s.state.Enqueue(msg)
}

func (s *Surface) Commit() {
	s.Send(surfaceRequestCommit)
}

func (s *Surface) Destroy() {
	s.Send(surfaceRequestDestroy)
}
