package overlay

import (
	"image"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/layer"
)

// Phase is the lifecycle stage of the overlay surface.
type Phase int

const (
	PhaseUncreated Phase = iota
	PhasePendingConfigure
	PhaseConfigured
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseUncreated:
		return "uncreated"
	case PhasePendingConfigure:
		return "pending-configure"
	case PhaseConfigured:
		return "configured"
	case PhaseClosed:
		return "closed"
	}
	return "unknown"
}

type surface struct {
	base  *wl.Surface
	layer *layer.Surface
	phase Phase

	width, height uint32
	interactivity layer.KeyboardInteractivity
	inputRegion   image.Rectangle
}

// Phase returns the lifecycle stage of the surface.
func (s *surface) Phase() Phase {
	return s.phase
}

// KeyboardInteractivity returns the keyboard interactivity most
// recently requested for the surface.
func (s *surface) KeyboardInteractivity() layer.KeyboardInteractivity {
	return s.interactivity
}

// InputRegion returns the input region most recently set on the
// surface. It is empty once input has been disabled.
func (s *surface) InputRegion() image.Rectangle {
	return s.inputRegion
}

func (o *Overlay) createSurface() {
	o.base = o.globals.Compositor.CreateSurface()
	o.layer = o.globals.LayerShell.GetLayerSurface(o.base, nil, layer.Overlay, o.cfg.Namespace)
	o.layer.SetAnchor(layer.AnchorAll)
	o.layer.SetExclusiveZone(-1)
	o.layer.SetKeyboardInteractivity(layer.KeyboardInteractivityExclusive)
	o.layer.Listener = layerSurface{o: o}
	o.base.Commit()

	o.phase = PhasePendingConfigure
	o.interactivity = layer.KeyboardInteractivityExclusive
}

func (o *Overlay) destroySurface() {
	if o.layer != nil {
		o.layer.Listener = nil
		o.layer.Destroy()
		o.layer = nil
	}
	if o.base != nil {
		o.base.Destroy()
		o.base = nil
	}
	o.phase = PhaseUncreated
}

// SetInputRegion limits input to the rectangle from the origin to
// (w, h). Input outside of it passes through to whatever is below
// the overlay.
func (o *Overlay) SetInputRegion(w, h int32) error {
	if o.base == nil {
		return ErrNoSurface
	}

	region := o.globals.Compositor.CreateRegion()
	region.Add(0, 0, w, h)
	o.base.SetInputRegion(region)
	region.Destroy()
	o.base.Commit()

	o.inputRegion = image.Rect(0, 0, int(w), int(h))
	return nil
}

// DisableAllInput gives up keyboard focus and makes the surface
// transparent to every other kind of input. Calling it more than once
// has the same effect as calling it once.
func (o *Overlay) DisableAllInput() error {
	if o.base == nil {
		return ErrNoSurface
	}

	if o.inhibitor != nil {
		o.inhibitor.Destroy()
		o.inhibitor = nil
	}

	o.layer.SetKeyboardInteractivity(layer.KeyboardInteractivityNone)
	o.interactivity = layer.KeyboardInteractivityNone

	region := o.globals.Compositor.CreateRegion()
	o.base.SetInputRegion(region)
	region.Destroy()
	o.base.Commit()

	o.inputRegion = image.Rectangle{}
	return nil
}

type layerSurface struct {
	o *Overlay
}

func (lis layerSurface) Configure(serial, width, height uint32) {
	o := lis.o
	if o.layer == nil {
		// Arrived after the surface was destroyed.
		return
	}

	o.width, o.height = width, height
	o.layer.AckConfigure(serial)
	if o.phase != PhaseClosed {
		o.phase = PhaseConfigured
	}
}

func (lis layerSurface) Closed() {
	lis.o.log.Debug("layer surface closed by compositor")
	lis.o.phase = PhaseClosed
}
