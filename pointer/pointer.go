// Package pointer names the Linux input event codes that Wayland
// compositors report for pointer and tablet tool buttons.
package pointer

import "strconv"

// Button is a button code from linux/input-event-codes.h.
type Button uint32

const (
	ButtonLeft Button = 0x110 + iota
	ButtonRight
	ButtonMiddle
	ButtonSide
	ButtonExtra
	ButtonForward
	ButtonBack
	ButtonTask
)

// Tablet stylus buttons. Touch contact itself is reported with a down
// event rather than a button code.
const (
	ButtonStylus  Button = 0x14b
	ButtonStylus2 Button = 0x14c
	ButtonStylus3 Button = 0x149
)

// Primary is the only button that drives the overlay's button state.
const Primary = ButtonLeft

var names = map[Button]string{
	ButtonLeft:    "left",
	ButtonRight:   "right",
	ButtonMiddle:  "middle",
	ButtonSide:    "side",
	ButtonExtra:   "extra",
	ButtonForward: "forward",
	ButtonBack:    "back",
	ButtonTask:    "task",
	ButtonStylus:  "stylus",
	ButtonStylus2: "stylus2",
	ButtonStylus3: "stylus3",
}

func (b Button) String() string {
	if name, ok := names[b]; ok {
		return name
	}
	return "button" + strconv.FormatUint(uint64(b), 10)
}

// IsPrimary reports whether b is the primary button.
func (b Button) IsPrimary() bool {
	return b == Primary
}
