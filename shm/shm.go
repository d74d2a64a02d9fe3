// Package shm provides helpers for dealing with shared memory.
package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Create returns an anonymous, sealable memory-backed file of the
// given size, suitable for sharing with the compositor.
func Create(name string, size int64) (*os.File, error) {
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC|unix.MFD_ALLOW_SEALING)
	if err != nil {
		return nil, fmt.Errorf("memfd_create: %w", err)
	}

	file := os.NewFile(uintptr(fd), name)
	if size > 0 {
		err = file.Truncate(size)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("truncate %v to %v: %w", name, size, err)
		}
	}

	return file, nil
}

type Mmap []byte

// Map maps size bytes of file into memory.
func Map(file *os.File, size int, prot, flags int) (mmap Mmap, err error) {
	sc, err := file.SyscallConn()
	if err != nil {
		return nil, err
	}

	cerr := sc.Control(func(fd uintptr) {
		m, merr := unix.Mmap(int(fd), 0, size, prot, flags)
		mmap, err = Mmap(m), merr
	})
	if cerr != nil {
		return nil, cerr
	}

	return mmap, err
}

// MapShared maps file such that writes are visible to the other side.
func MapShared(file *os.File, size int, prot int) (Mmap, error) {
	return Map(file, size, prot, unix.MAP_SHARED)
}

// MapPrivate maps file read-only and copy-on-write. Compositors send
// keymaps that must be mapped this way.
func MapPrivate(file *os.File, size int) (Mmap, error) {
	return Map(file, size, unix.PROT_READ, unix.MAP_PRIVATE)
}

func (mmap Mmap) Unmap() error {
	return unix.Munmap(mmap)
}
