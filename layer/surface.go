package layer

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/wire"
)

type Surface struct {
	wl.Proxy

	Listener SurfaceListener
}

// SurfaceListener receives layer surface events. Every configure must
// be answered with AckConfigure before the next commit.
type SurfaceListener interface {
	Configure(serial, width, height uint32)
	Closed()
}

func (s *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case surfaceEventConfigure:
		serial := msg.ReadUint()
		width := msg.ReadUint()
		height := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		if s.Listener != nil {
			s.Listener.Configure(serial, width, height)
		}
		return nil

	case surfaceEventClosed:
		if s.Listener != nil {
			s.Listener.Closed()
		}
		return nil

	default:
		return s.UnknownOp(msg.Op())
	}
}

func (s *Surface) SetSize(width, height uint32) {
	msg := s.NewMessage(surfaceRequestSetSize, width, height)
	msg.WriteUint(width)
	msg.WriteUint(height)
	s.State().Enqueue(msg)
}

func (s *Surface) SetAnchor(anchor Anchor) {
	msg := s.NewMessage(surfaceRequestSetAnchor, anchor)
	msg.WriteUint(uint32(anchor))
	s.State().Enqueue(msg)
}

// SetExclusiveZone asks the compositor to keep other surfaces out of
// zone pixels along the anchored edge. -1 additionally asks that the
// surface not be moved to make room for other exclusive zones.
func (s *Surface) SetExclusiveZone(zone int32) {
	msg := s.NewMessage(surfaceRequestSetExclusiveZone, zone)
	msg.WriteInt(zone)
	s.State().Enqueue(msg)
}

func (s *Surface) SetMargin(top, right, bottom, left int32) {
	msg := s.NewMessage(surfaceRequestSetMargin, top, right, bottom, left)
	msg.WriteInt(top)
	msg.WriteInt(right)
	msg.WriteInt(bottom)
	msg.WriteInt(left)
	s.State().Enqueue(msg)
}

func (s *Surface) SetKeyboardInteractivity(k KeyboardInteractivity) {
	msg := s.NewMessage(surfaceRequestSetKeyboardInteractivity, k)
	msg.WriteUint(uint32(k))
	s.State().Enqueue(msg)
}

func (s *Surface) AckConfigure(serial uint32) {
	msg := s.NewMessage(surfaceRequestAckConfigure, serial)
	msg.WriteUint(serial)
	s.State().Enqueue(msg)
}

// SetLayer moves the surface to another layer. Requires version 2.
func (s *Surface) SetLayer(layer Layer) {
	msg := s.NewMessage(surfaceRequestSetLayer, layer)
	msg.WriteUint(uint32(layer))
	s.State().Enqueue(msg)
}

func (s *Surface) Destroy() {
	s.Send(surfaceRequestDestroy)
}
