// Package overlay turns the event stream of a Wayland compositor into
// the polled input and surface state of a full-screen overlay.
//
// An Overlay owns a layer-shell surface on the overlay layer that
// covers every edge of its output and takes keyboard focus
// exclusively. Pointer, touch, and tablet tool input are merged into
// a single cursor position and primary button, with the most recent
// event from any device winning. Key presses are translated through
// the compositor's keymap.
//
// None of the state is locked. Events are only processed during
// Dispatch and RoundTrip, so the accessors may be called freely from
// the goroutine that calls those.
package overlay

import (
	"errors"
	"fmt"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/inhibit"
	"deedles.dev/wloverlay/tablet"
	"deedles.dev/wloverlay/wire"
	"deedles.dev/wloverlay/xkb"
	"github.com/charmbracelet/log"
)

// noTouch is the tracked touch ID when no touch point is down.
const noTouch = 255555

// Device identifies the kind of device that last moved the cursor or
// changed the button state.
type Device int

const (
	DeviceNone Device = iota
	DevicePointer
	DeviceTouch
	DeviceTablet
)

func (d Device) String() string {
	switch d {
	case DeviceNone:
		return "none"
	case DevicePointer:
		return "pointer"
	case DeviceTouch:
		return "touch"
	case DeviceTablet:
		return "tablet"
	}
	return fmt.Sprintf("Device(%d)", int(d))
}

// NativeWindow is what a graphics layer needs to render into the
// overlay. It is only valid until the overlay is closed.
type NativeWindow struct {
	Surface       *wl.Surface
	Width, Height uint32
}

type Overlay struct {
	cfg      Config
	log      *log.Logger
	state    *wl.State
	registry *wl.Registry
	globals  Globals

	surface

	pointer    *wl.Pointer
	keyboard   *wl.Keyboard
	touch      *wl.Touch
	tabletSeat *tablet.Seat
	inhibitor  *inhibit.Inhibitor

	x, y    float64
	button  int
	device  Device
	touchID int32

	xkb          *xkb.State
	lastKey      xkb.Keysym
	lastKeyState uint32
}

// Open connects to the compositor named by the environment and
// creates an overlay on it.
func Open(cfg Config) (*Overlay, error) {
	conn, err := wire.Dial()
	if err != nil {
		return nil, fmt.Errorf("connect to compositor: %w", err)
	}

	return OpenConn(conn, cfg)
}

// OpenConn creates an overlay using an already established
// connection. If it fails, the connection is closed.
func OpenConn(conn *wire.Conn, cfg Config) (*Overlay, error) {
	cfg = cfg.withDefaults()
	o := Overlay{
		cfg:     cfg,
		log:     cfg.Logger,
		state:   wl.NewState(conn),
		touchID: noTouch,
	}

	err := o.setup()
	if err != nil {
		o.state.Close()
		return nil, err
	}
	return &o, nil
}

func (o *Overlay) setup() error {
	o.registry = o.state.Display().GetRegistry()
	o.registry.Listener = binder{o: o}
	err := o.state.RoundTrip()
	if err != nil {
		return fmt.Errorf("list globals: %w", err)
	}

	err = o.globals.missing()
	if err != nil {
		return err
	}
	if o.globals.Inhibit == nil {
		o.log.Debug("shortcuts inhibitor unavailable, compositor shortcuts stay active")
	}
	if o.globals.Tablet == nil {
		o.log.Debug("tablet manager unavailable, tablet input disabled")
	}

	o.createSurface()
	err = o.state.RoundTrip()
	if err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}

	if (o.width == 0) || (o.height == 0) {
		o.log.Debug("surface size not set by compositor, using default size", "width", o.cfg.DefaultWidth, "height", o.cfg.DefaultHeight)
		o.width, o.height = o.cfg.DefaultWidth, o.cfg.DefaultHeight
	}

	err = o.SetInputRegion(int32(o.width), int32(o.height))
	if err != nil {
		return err
	}

	// Settle input device setup, including the keymap, which only
	// arrives after the keyboard has been created.
	for range 2 {
		err = o.state.RoundTrip()
		if err != nil {
			return fmt.Errorf("set up input: %w", err)
		}
	}

	return nil
}

// Dispatch sends pending requests and processes every event that has
// arrived since the last call. It never blocks waiting for events and
// is meant to be called once per frame.
func (o *Overlay) Dispatch() error {
	return o.state.Flush()
}

// RoundTrip is like Dispatch, but it blocks until the compositor has
// handled every request sent so far.
func (o *Overlay) RoundTrip() error {
	return o.state.RoundTrip()
}

// Close destroys the overlay surface and disconnects.
func (o *Overlay) Close() error {
	if o.inhibitor != nil {
		o.inhibitor.Destroy()
		o.inhibitor = nil
	}
	o.destroySurface()

	var errs []error
	if o.state.Err() == nil {
		errs = append(errs, o.state.Flush())
	}
	errs = append(errs, o.state.Close())
	return errors.Join(errs...)
}

// Globals returns the bound globals. It is mostly useful for hosts
// that need the shm global to fill the surface in software.
func (o *Overlay) Globals() Globals {
	return o.globals
}

// NativeWindow returns the surface handle and current size for a
// graphics layer to bind to.
func (o *Overlay) NativeWindow() NativeWindow {
	return NativeWindow{
		Surface: o.base,
		Width:   o.width,
		Height:  o.height,
	}
}

// ButtonState is 1 while the primary button, a touch point, or a
// tablet tool is down, and 0 otherwise.
func (o *Overlay) ButtonState() int {
	return o.button
}

// CursorPos returns the last reported position, in surface-local
// coordinates.
func (o *Overlay) CursorPos() (x, y float64) {
	return o.x, o.y
}

// LastDevice returns the device that last changed the cursor position
// or the button state.
func (o *Overlay) LastDevice() Device {
	return o.device
}

// Dimensions returns the size of the overlay surface.
func (o *Overlay) Dimensions() (w, h uint32) {
	return o.width, o.height
}

// LastKey returns the keysym of the most recent key press, or 0 if
// the last key event was a release.
func (o *Overlay) LastKey() uint32 {
	return uint32(o.lastKey)
}

// LastKeyState is 1 if the last key event was a press.
func (o *Overlay) LastKeyState() uint32 {
	return o.lastKeyState
}

// Key returns the last key and its state, and whether there is one.
func (o *Overlay) Key() (sym, state uint32, ok bool) {
	return uint32(o.lastKey), o.lastKeyState, o.lastKey != xkb.NoSymbol
}

// ClearLastKey forgets the last key event, so that it is only
// handled once.
func (o *Overlay) ClearLastKey() {
	o.lastKey = xkb.NoSymbol
	o.lastKeyState = 0
}

// Modifiers returns the effective keyboard modifiers.
func (o *Overlay) Modifiers() xkb.ModMask {
	if o.xkb == nil {
		return 0
	}
	return o.xkb.Mods()
}

// Keymap returns the compiled keymap, or nil if none has been
// received or it could not be compiled.
func (o *Overlay) Keymap() *xkb.Keymap {
	if o.xkb == nil {
		return nil
	}
	return o.xkb.Keymap()
}
