package wire

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"
)

func xdgRuntimeDir() string {
	dir, ok := os.LookupEnv("XDG_RUNTIME_DIR")
	if ok {
		return dir
	}
	return fmt.Sprintf("/run/user/%v", os.Getuid())
}

// SocketPath determines the path to the Wayland Unix domain socket
// based on the contents of the $WAYLAND_DISPLAY environment variable.
// It does not attempt to determine if the value corresponds to an
// actual socket.
func SocketPath() string {
	v, ok := os.LookupEnv("WAYLAND_DISPLAY")
	if !ok {
		v = "wayland-0"
	}
	if filepath.IsAbs(v) {
		return v
	}

	return filepath.Join(xdgRuntimeDir(), v)
}

// Conn represents a low-level Wayland connection. It is not generally
// used directly, instead being handled automatically by a client
// State.
//
// File descriptors received from the socket are queued in arrival
// order. The compositor may attach descriptors belonging to several
// messages to a single read, so they are handed out to messages as
// the messages are decoded rather than when they are read.
type Conn struct {
	conn *net.UnixConn

	m   sync.Mutex
	fds []int
}

// NewConn creates a new Conn that wraps c. After this is called, use
// the provided Close method to close c instead of calling its own
// Close method.
func NewConn(c *net.UnixConn) *Conn {
	return &Conn{
		conn: c,
	}
}

// Close closes the underlying connection and any received file
// descriptors that were never claimed by a message.
func (c *Conn) Close() error {
	c.m.Lock()
	fds := c.fds
	c.fds = nil
	c.m.Unlock()

	for _, fd := range fds {
		unix.Close(fd)
	}
	return c.conn.Close()
}

// read fills buf completely, collecting any file descriptors sent
// alongside the data.
func (c *Conn) read(buf []byte) error {
	oob := make([]byte, unix.CmsgSpace(MaxFDs*4))
	for len(buf) > 0 {
		n, oobn, _, _, err := c.conn.ReadMsgUnix(buf, oob)
		if oobn > 0 {
			if err := c.readFDs(oob[:oobn]); err != nil {
				return err
			}
		}
		buf = buf[n:]
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0) && (n > 0) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		if n == 0 {
			return io.EOF
		}
	}
	return nil
}

func (c *Conn) readFDs(data []byte) error {
	cmsgs, err := unix.ParseSocketControlMessage(data)
	if err != nil {
		return fmt.Errorf("parse socket control messages: %w", err)
	}

	c.m.Lock()
	defer c.m.Unlock()

	for _, cmsg := range cmsgs {
		fds, err := unix.ParseUnixRights(&cmsg)
		if err != nil {
			if errors.Is(err, unix.EINVAL) {
				continue
			}
			return fmt.Errorf("parse unix control message: %w", err)
		}
		c.fds = append(c.fds, fds...)
	}
	return nil
}

func (c *Conn) popFD() (int, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	if len(c.fds) == 0 {
		return -1, false
	}
	fd := c.fds[0]
	c.fds = c.fds[1:]
	return fd, true
}

// Dial opens a connection to the Wayland socket based on the current
// environment. It follows the procedure outlined at
// https://wayland-book.com/protocol-design/wire-protocol.html#transports
func Dial() (*Conn, error) {
	if v, ok := os.LookupEnv("WAYLAND_SOCKET"); ok {
		fd, err := strconv.ParseInt(v, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("parse WAYLAND_SOCKET fd: %w", err)
		}
		file := os.NewFile(uintptr(fd), "WAYLAND_SOCKET")
		defer file.Close()

		c, err := net.FileConn(file)
		if err != nil {
			return nil, fmt.Errorf("open WAYLAND_SOCKET connection: %w", err)
		}
		uc, ok := c.(*net.UnixConn)
		if !ok {
			c.Close()
			return nil, fmt.Errorf("WAYLAND_SOCKET fd %v is not a unix socket", fd)
		}
		return NewConn(uc), nil
	}

	path := SocketPath()
	s, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("dial %v: %w", path, err)
	}
	return NewConn(s), nil
}

// Pipe returns a pair of connected Conns. It is mostly useful for
// tests that need to stand in for a compositor.
func Pipe() (*Conn, *Conn, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("socketpair: %w", err)
	}

	c1, err := fileConn(fds[0], "wayland-pipe-client")
	if err != nil {
		unix.Close(fds[1])
		return nil, nil, err
	}
	c2, err := fileConn(fds[1], "wayland-pipe-server")
	if err != nil {
		c1.Close()
		return nil, nil, err
	}
	return c1, c2, nil
}

func fileConn(fd int, name string) (*Conn, error) {
	file := os.NewFile(uintptr(fd), name)
	defer file.Close()

	c, err := net.FileConn(file)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", name, err)
	}
	return NewConn(c.(*net.UnixConn)), nil
}
