package overlay

import (
	"bytes"
	"os"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/wloverlay/inhibit"
	"deedles.dev/wloverlay/pointer"
	"deedles.dev/wloverlay/shm"
	"deedles.dev/wloverlay/tablet"
	"deedles.dev/wloverlay/wire"
	"deedles.dev/wloverlay/xkb"
)

type seatInput struct {
	o *Overlay
}

func (lis seatInput) Capabilities(caps wl.SeatCapability) {
	o := lis.o
	seat := o.globals.Seat
	o.log.Debug("seat capabilities", "caps", caps)

	if caps.Has(wl.SeatCapabilityPointer) && (o.pointer == nil) {
		o.pointer = seat.GetPointer()
		o.pointer.Listener = pointerInput{o: o}
	}

	if caps.Has(wl.SeatCapabilityKeyboard) {
		if o.keyboard == nil {
			o.keyboard = seat.GetKeyboard()
			o.keyboard.Listener = keyboardInput{o: o}
		}
		o.inhibitShortcuts()
	}

	if caps.Has(wl.SeatCapabilityTouch) && (o.touch == nil) {
		o.touch = seat.GetTouch()
		o.touch.Listener = touchInput{o: o}
	}

	if (o.globals.Tablet != nil) && (o.tabletSeat == nil) {
		o.tabletSeat = o.globals.Tablet.GetTabletSeat(seat, tabletInput{o: o})
	}
}

func (lis seatInput) Name(name string) {}

// inhibitShortcuts asks for compositor shortcuts to be delivered to
// the overlay, if it is possible and has not been done already.
func (o *Overlay) inhibitShortcuts() {
	if (o.globals.Inhibit == nil) || (o.base == nil) || (o.inhibitor != nil) {
		return
	}

	o.inhibitor = o.globals.Inhibit.InhibitShortcuts(o.base, o.globals.Seat)
	o.inhibitor.Listener = inhibitorState{o: o}
}

type inhibitorState struct {
	o *Overlay
}

func (lis inhibitorState) Active() {
	lis.o.log.Debug("shortcuts inhibitor active")
}

func (lis inhibitorState) Inactive() {
	lis.o.log.Debug("shortcuts inhibitor inactive")
}

var (
	_ wl.SeatListener           = seatInput{}
	_ inhibit.InhibitorListener = inhibitorState{}
	_ wl.PointerListener        = pointerInput{}
	_ wl.TouchListener          = touchInput{}
	_ wl.KeyboardListener       = keyboardInput{}
	_ tablet.SeatListener       = tabletInput{}
	_ tablet.ToolListener       = tabletInput{}
)

type pointerInput struct {
	o *Overlay
}

func (lis pointerInput) Enter(serial uint32, s *wl.Surface, x, y wire.Fixed) {
	lis.o.pointer.SetCursor(serial, nil, 0, 0)
	lis.o.moveTo(DevicePointer, x, y)
}

func (lis pointerInput) Leave(serial uint32, s *wl.Surface) {}

func (lis pointerInput) Motion(time uint32, x, y wire.Fixed) {
	lis.o.moveTo(DevicePointer, x, y)
}

func (lis pointerInput) Button(serial, time uint32, button pointer.Button, state wl.PointerButtonState) {
	if !button.IsPrimary() {
		return
	}
	lis.o.press(DevicePointer, state == wl.PointerButtonStatePressed)
}

func (lis pointerInput) Axis(time uint32, axis wl.PointerAxis, value wire.Fixed) {}

func (lis pointerInput) Frame() {}

type touchInput struct {
	o *Overlay
}

func (lis touchInput) Down(serial, time uint32, s *wl.Surface, id int32, x, y wire.Fixed) {
	o := lis.o
	if o.touchID != noTouch {
		return
	}

	o.moveTo(DeviceTouch, x, y)
	o.touchID = id
	o.press(DeviceTouch, true)
}

func (lis touchInput) Up(serial, time uint32, id int32) {
	o := lis.o
	if o.touchID != id {
		return
	}

	o.touchID = noTouch
	o.press(DeviceTouch, false)
}

// Motion moves the cursor for any touch point, not just the tracked
// one.
func (lis touchInput) Motion(time uint32, id int32, x, y wire.Fixed) {
	lis.o.moveTo(DeviceTouch, x, y)
}

func (lis touchInput) Frame() {}

func (lis touchInput) Cancel() {}

type tabletInput struct {
	o *Overlay
}

func (lis tabletInput) TabletAdded(t *wl.Passive) {}

func (lis tabletInput) ToolAdded(tool *tablet.Tool) {
	tool.Listener = tabletTool{tabletInput: lis, tool: tool}
}

func (lis tabletInput) PadAdded(pad *wl.Passive) {}

func (lis tabletInput) ProximityIn(serial, tabletID uint32, s *wl.Surface) {}

func (lis tabletInput) ProximityOut() {}

func (lis tabletInput) Down(serial uint32) {
	lis.o.press(DeviceTablet, true)
}

func (lis tabletInput) Up() {
	lis.o.press(DeviceTablet, false)
}

func (lis tabletInput) Motion(x, y wire.Fixed) {
	lis.o.moveTo(DeviceTablet, x, y)
}

func (lis tabletInput) Button(serial, button uint32, state tablet.ButtonState) {}

func (lis tabletInput) Frame(time uint32) {}

func (lis tabletInput) Removed() {
	lis.o.press(DeviceTablet, false)
}

// tabletTool releases a tool once the compositor removes it.
type tabletTool struct {
	tabletInput
	tool *tablet.Tool
}

func (lis tabletTool) Removed() {
	lis.tabletInput.Removed()
	lis.tool.Destroy()
}

func (o *Overlay) moveTo(dev Device, x, y wire.Fixed) {
	o.x, o.y = x.Float(), y.Float()
	o.device = dev
}

func (o *Overlay) press(dev Device, pressed bool) {
	o.button = 0
	if pressed {
		o.button = 1
	}
	o.device = dev
}

type keyboardInput struct {
	o *Overlay
}

func (lis keyboardInput) Keymap(format wl.KeymapFormat, file *os.File, size uint32) {
	o := lis.o
	defer file.Close()

	if format != wl.KeymapFormatXKBV1 {
		o.log.Debug("ignoring keymap in unsupported format", "format", format)
		return
	}

	km, err := loadKeymap(file, size)
	if err != nil {
		o.log.Debug("keymap unusable, keys will not be translated", "err", err)
		o.xkb = nil
		return
	}
	o.xkb = xkb.NewState(km)
}

func loadKeymap(file *os.File, size uint32) (*xkb.Keymap, error) {
	mmap, err := shm.MapPrivate(file, int(size))
	if err != nil {
		return nil, err
	}
	defer mmap.Unmap()

	return xkb.Compile(bytes.TrimRight(mmap, "\x00"))
}

func (lis keyboardInput) Enter(serial uint32, s *wl.Surface, keys []byte) {}

func (lis keyboardInput) Leave(serial uint32, s *wl.Surface) {}

func (lis keyboardInput) Key(serial, time, key uint32, state wl.KeyState) {
	o := lis.o
	if o.xkb == nil {
		return
	}

	if state != wl.KeyStatePressed {
		o.lastKey, o.lastKeyState = xkb.NoSymbol, 0
		return
	}
	o.lastKey = o.xkb.KeySym(key + xkb.KeycodeOffset)
	o.lastKeyState = 1
}

func (lis keyboardInput) Modifiers(serial, depressed, latched, locked, group uint32) {
	if lis.o.xkb == nil {
		return
	}
	lis.o.xkb.UpdateMask(depressed, latched, locked, group)
}

func (lis keyboardInput) RepeatInfo(rate, delay int32) {}
