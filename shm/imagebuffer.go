package shm

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	wl "deedles.dev/wloverlay/client"
	"deedles.dev/ximage"
	"golang.org/x/sys/unix"
)

// ImageBuffer is an ARGB8888 wl_buffer backed by a memfd that is
// mapped into the client's memory and can be drawn into directly.
type ImageBuffer struct {
	w, h int32
	shm  *wl.Shm
	pool *wl.ShmPool
	buf  *wl.Buffer
	file *os.File
	mmap Mmap
}

func NewImageBuffer(shm *wl.Shm, w, h int32) (s *ImageBuffer, err error) {
	if (w <= 0) || (h <= 0) {
		return nil, fmt.Errorf("invalid buffer size %vx%v", w, h)
	}

	s = &ImageBuffer{
		w:   w,
		h:   h,
		shm: shm,
	}
	defer func() {
		if err != nil {
			s.Destroy()
		}
	}()

	file, err := Create("wloverlay-buffer", int64(s.Len()))
	if err != nil {
		return s, fmt.Errorf("create SHM file: %w", err)
	}
	s.file = file

	mmap, err := MapShared(file, int(s.Len()), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return s, fmt.Errorf("mmap SHM file: %w", err)
	}
	s.mmap = mmap

	s.pool = shm.CreatePool(file, s.Len())
	s.buf = s.pool.CreateBuffer(0, w, h, s.Stride(), wl.ShmFormatArgb8888)

	return s, nil
}

// Destroy releases the buffer, the pool, and the mapping.
func (s *ImageBuffer) Destroy() error {
	var errs []error
	if s.buf != nil {
		s.buf.Destroy()
	}
	if s.pool != nil {
		s.pool.Destroy()
	}
	if s.mmap != nil {
		errs = append(errs, s.mmap.Unmap())
		s.mmap = nil
	}
	if s.file != nil {
		errs = append(errs, s.file.Close())
		s.file = nil
	}
	return errors.Join(errs...)
}

func (s *ImageBuffer) Buffer() *wl.Buffer {
	return s.buf
}

func (s *ImageBuffer) Stride() int32 {
	return s.w * 4
}

func (s *ImageBuffer) Len() int32 {
	return s.Stride() * s.h
}

func (s *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.w), int(s.h))
}

// Resize changes the dimensions of the buffer. The pool is only grown
// when the new size does not fit in the current mapping.
func (s *ImageBuffer) Resize(w, h int32) error {
	if (w == s.w) && (h == s.h) {
		return nil
	}

	old := s.Len()
	s.w, s.h = w, h
	if s.Len() <= old {
		s.mmap = s.mmap[:s.Len()]
		s.buf.Destroy()
		s.buf = s.pool.CreateBuffer(0, s.w, s.h, s.Stride(), wl.ShmFormatArgb8888)
		return nil
	}

	err := s.file.Truncate(int64(s.Len()))
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	err = s.mmap[:cap(s.mmap)].Unmap()
	if err != nil {
		return fmt.Errorf("unmap: %w", err)
	}
	mmap, err := MapShared(s.file, int(s.Len()), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		s.mmap = nil
		return fmt.Errorf("mmap: %w", err)
	}
	s.mmap = mmap

	s.buf.Destroy()
	s.pool.Resize(s.Len())
	s.buf = s.pool.CreateBuffer(0, s.w, s.h, s.Stride(), wl.ShmFormatArgb8888)

	return nil
}

// Image returns a view of the mapped memory. It is invalidated by
// Resize and Destroy.
func (s *ImageBuffer) Image() draw.Image {
	return &ximage.FormatImage{
		Format: ximage.ARGB8888,
		Rect:   s.Bounds(),
		Pix:    s.mmap,
	}
}
