package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"deedles.dev/wloverlay/overlay"
	"deedles.dev/wloverlay/shm"
	"deedles.dev/wloverlay/xkb"
	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

const frameInterval = time.Second / 60

// probe draws a tinted overlay and logs the input that it receives
// until escape is pressed.
type probe struct {
	o    *overlay.Overlay
	log  *log.Logger
	tint color.NRGBA
	buf  *shm.ImageBuffer

	w, h   uint32
	x, y   float64
	button int
}

func newProbe(o *overlay.Overlay, logger *log.Logger, tint color.NRGBA) *probe {
	return &probe{
		o:    o,
		log:  logger,
		tint: tint,
	}
}

// paint fills the surface with the tint, creating or resizing the
// buffer if the surface size has changed.
func (p *probe) paint() error {
	w, h := p.o.Dimensions()
	if (p.buf != nil) && (w == p.w) && (h == p.h) {
		return nil
	}

	sh := p.o.Globals().Shm
	if sh == nil {
		p.log.Warn("wl_shm not advertised, surface will not be drawn")
		p.w, p.h = w, h
		return nil
	}

	if p.buf == nil {
		buf, err := shm.NewImageBuffer(sh, int32(w), int32(h))
		if err != nil {
			return fmt.Errorf("create buffer: %w", err)
		}
		p.buf = buf
	} else {
		err := p.buf.Resize(int32(w), int32(h))
		if err != nil {
			return fmt.Errorf("resize buffer: %w", err)
		}
	}
	p.w, p.h = w, h

	img := p.buf.Image()
	draw.Draw(img, img.Bounds(), image.NewUniform(p.tint), image.Point{}, draw.Src)

	s := p.o.NativeWindow().Surface
	s.Attach(p.buf.Buffer(), 0, 0)
	s.Damage(0, 0, int32(w), int32(h))
	s.Commit()

	p.log.Debug("painted", "width", w, "height", h)
	return nil
}

// frame handles the state accumulated since the last frame. It
// returns true once the probe should exit.
func (p *probe) frame() (bool, error) {
	err := p.paint()
	if err != nil {
		return false, err
	}

	x, y := p.o.CursorPos()
	if (x != p.x) || (y != p.y) {
		p.x, p.y = x, y
		p.log.Debug("cursor", "x", x, "y", y, "device", p.o.LastDevice())
	}

	button := p.o.ButtonState()
	if button != p.button {
		p.button = button
		p.log.Info("button", "pressed", button == 1, "x", x, "y", y, "device", p.o.LastDevice())
	}

	sym, state, ok := p.o.Key()
	if !ok {
		return false, nil
	}
	p.o.ClearLastKey()

	p.log.Info("key", "sym", xkb.Keysym(sym), "pressed", state == 1, "mods", p.o.Modifiers())
	if (xkb.Keysym(sym) != xkb.KeyEscape) || (state != 1) {
		return false, nil
	}

	err = p.o.DisableAllInput()
	if err != nil {
		return true, err
	}
	return true, p.o.Dispatch()
}

func (p *probe) Close() error {
	if p.buf == nil {
		return nil
	}
	return p.buf.Destroy()
}

func run(ctx context.Context, cfg Config, logger *log.Logger) error {
	ocfg := overlay.DefaultConfig()
	ocfg.Namespace = cfg.Namespace
	ocfg.Logger = logger.WithPrefix("overlay")

	o, err := overlay.Open(ocfg)
	if err != nil {
		return err
	}
	defer o.Close()

	w, h := o.Dimensions()
	logger.Info("overlay open", "namespace", cfg.Namespace, "width", w, "height", h)

	p := newProbe(o, logger, cfg.Tint())
	defer p.Close()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		err := o.Dispatch()
		if err != nil {
			return fmt.Errorf("dispatch: %w", err)
		}

		done, err := p.frame()
		if err != nil {
			return err
		}
		if done {
			logger.Info("escape pressed, input released")
			return nil
		}
	}
}
