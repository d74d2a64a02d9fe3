package wl

import (
	"os"

	"deedles.dev/wloverlay/wire"
)

type Keyboard struct {
	Proxy

	Listener KeyboardListener
}

// KeyboardListener receives wl_keyboard events. Keymap hands
// ownership of file to the listener, which must close it.
type KeyboardListener interface {
	Keymap(format KeymapFormat, file *os.File, size uint32)
	Enter(serial uint32, s *Surface, keys []byte)
	Leave(serial uint32, s *Surface)
	Key(serial, time, key uint32, state KeyState)
	Modifiers(serial, depressed, latched, locked, group uint32)
	RepeatInfo(rate, delay int32)
}

func (kb *Keyboard) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case keyboardEventKeymap:
		format := KeymapFormat(msg.ReadUint())
		file := msg.ReadFile()
		size := msg.ReadUint()
		if err := msg.Err(); err != nil {
			if file != nil {
				file.Close()
			}
			return err
		}
		if kb.Listener == nil {
			return file.Close()
		}
		kb.Listener.Keymap(format, file, size)
		return nil
	}

	if kb.Listener == nil {
		return nil
	}

	switch msg.Op() {
	case keyboardEventEnter:
		serial := msg.ReadUint()
		s := surface(kb.state, msg.ReadObject())
		keys := msg.ReadArray()
		if err := msg.Err(); err != nil {
			return err
		}
		kb.Listener.Enter(serial, s, keys)
		return nil

	case keyboardEventLeave:
		serial := msg.ReadUint()
		s := surface(kb.state, msg.ReadObject())
		if err := msg.Err(); err != nil {
			return err
		}
		kb.Listener.Leave(serial, s)
		return nil

	case keyboardEventKey:
		serial := msg.ReadUint()
		time := msg.ReadUint()
		key := msg.ReadUint()
		state := KeyState(msg.ReadUint())
		if err := msg.Err(); err != nil {
			return err
		}
		kb.Listener.Key(serial, time, key, state)
		return nil

	case keyboardEventModifiers:
		serial := msg.ReadUint()
		depressed := msg.ReadUint()
		latched := msg.ReadUint()
		locked := msg.ReadUint()
		group := msg.ReadUint()
		if err := msg.Err(); err != nil {
			return err
		}
		kb.Listener.Modifiers(serial, depressed, latched, locked, group)
		return nil

	case keyboardEventRepeatInfo:
		rate := msg.ReadInt()
		delay := msg.ReadInt()
		if err := msg.Err(); err != nil {
			return err
		}
		kb.Listener.RepeatInfo(rate, delay)
		return nil

	default:
		return kb.UnknownOp(msg.Op())
	}
}

type KeymapFormat uint32

const (
	KeymapFormatNoKeymap KeymapFormat = iota
	KeymapFormatXKBV1
)

type KeyState uint32

const (
	KeyStateReleased KeyState = iota
	KeyStatePressed
)
