package overlay

import (
	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/inhibit"
	"deedles.dev/wloverlay/layer"
	"deedles.dev/wloverlay/tablet"
)

// Versions that globals are bound at.
const (
	compositorVersion = 4
	layerShellVersion = 1
	seatVersion       = 1
	inhibitVersion    = 1
	tabletVersion     = 1
	shmVersion        = 1
)

// Globals holds the bound global objects. Optional ones are nil if
// the compositor does not advertise them.
type Globals struct {
	Compositor *wl.Compositor
	LayerShell *layer.Shell
	Seat       *wl.Seat

	Inhibit *inhibit.Manager
	Tablet  *tablet.Manager
	Shm     *wl.Shm
}

// missing returns the first required global that has not been bound.
func (g *Globals) missing() error {
	switch {
	case g.Compositor == nil:
		return &MissingGlobalError{Interface: "wl_compositor"}
	case g.LayerShell == nil:
		return &MissingGlobalError{Interface: layer.ShellInterface}
	case g.Seat == nil:
		return &MissingGlobalError{Interface: "wl_seat"}
	}
	return nil
}

// binder binds the globals that the overlay uses as they are
// announced. Each interface is bound at most once.
type binder struct {
	o *Overlay
}

func (lis binder) Global(name uint32, inter string, version uint32) {
	g := &lis.o.globals
	registry := lis.o.registry

	switch {
	case wl.IsCompositor(inter) && (g.Compositor == nil):
		g.Compositor = wl.BindCompositor(registry, name, compositorVersion)

	case layer.IsShell(inter) && (g.LayerShell == nil):
		g.LayerShell = layer.BindShell(registry, name, layerShellVersion)

	case wl.IsSeat(inter) && (g.Seat == nil):
		g.Seat = wl.BindSeat(registry, name, seatVersion, seatInput{o: lis.o})

	case inhibit.IsManager(inter) && (g.Inhibit == nil):
		g.Inhibit = inhibit.BindManager(registry, name, inhibitVersion)

	case tablet.IsManager(inter) && (g.Tablet == nil):
		g.Tablet = tablet.BindManager(registry, name, tabletVersion)

	case wl.IsShm(inter) && (g.Shm == nil):
		g.Shm = wl.BindShm(registry, name, shmVersion)

	default:
		return
	}

	lis.o.log.Debug("bound global", "name", name, "interface", inter, "advertised", version)
}

func (lis binder) GlobalRemove(name uint32) {}
