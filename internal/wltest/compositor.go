// Package wltest provides a fake compositor for testing Wayland
// clients without a running display server.
//
// The fake speaks the real wire protocol over a socket pair. It
// decodes every request through the protocol descriptor tables,
// records it, and answers the handful of requests that a client needs
// answered to make progress: get_registry, sync, bind, and the initial
// commit of a layer surface. Everything else is up to the test, which
// can send arbitrary events with Send.
package wltest

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sort"
	"sync"

	"deedles.dev/wloverlay/protocol"
	"deedles.dev/wloverlay/shm"
	"deedles.dev/wloverlay/wire"
)

// Global is a global that the fake advertises.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Config controls the built-in behavior of the fake.
type Config struct {
	// Globals are advertised in order when the registry is created.
	// Names are assigned automatically if they are zero.
	Globals []Global

	// Capabilities is sent to every wl_seat when it is bound. If it is
	// zero, no capabilities event is sent.
	Capabilities uint32

	// Width and Height are sent in the configure event that answers
	// the first commit of a layer surface.
	Width, Height uint32

	// NoConfigure disables the automatic configure event.
	NoConfigure bool

	// Keymap, if not empty, is sent as an xkb_v1 keymap to every
	// keyboard when it is created.
	Keymap string
}

// DefaultGlobals returns every global that the overlay binds.
func DefaultGlobals() []Global {
	return []Global{
		{Interface: "wl_compositor", Version: 6},
		{Interface: "wl_shm", Version: 1},
		{Interface: "zwlr_layer_shell_v1", Version: 4},
		{Interface: "wl_seat", Version: 9},
		{Interface: "zwp_keyboard_shortcuts_inhibit_manager_v1", Version: 1},
		{Interface: "zwp_tablet_manager_v2", Version: 1},
	}
}

// DefaultConfig returns a configuration for a compositor with a
// 1920x1080 output and a seat with a pointer, a keyboard using
// USKeymap, and a touchscreen.
func DefaultConfig() Config {
	return Config{
		Globals:      DefaultGlobals(),
		Capabilities: 1 | 2 | 4,
		Width:        1920,
		Height:       1080,
		Keymap:       USKeymap,
	}
}

// Request is a decoded request received from the client.
type Request struct {
	Object    uint32
	Interface string
	Name      string

	// Args holds the decoded arguments. File descriptors have already
	// been closed by the time the request is recorded.
	Args []any
}

func (r Request) String() string {
	return fmt.Sprintf("%v@%v.%v%v", r.Interface, r.Object, r.Name, r.Args)
}

// Compositor is the fake compositor.
type Compositor struct {
	cfg    Config
	conn   *wire.Conn
	done   chan struct{}
	close  sync.Once
	exited chan struct{}

	m             sync.Mutex
	objects       map[uint32]string
	requests      []Request
	layerSurfaces map[uint32]uint32
	configured    map[uint32]bool
	registry      uint32
	nextID        uint32
	serial        uint32
	handler       func(Request)
	err           error

	wm sync.Mutex
}

// New starts a fake compositor and returns it along with the client
// end of the connection.
func New(cfg Config) (*Compositor, *wire.Conn, error) {
	client, server, err := wire.Pipe()
	if err != nil {
		return nil, nil, err
	}

	for i := range cfg.Globals {
		if cfg.Globals[i].Name == 0 {
			cfg.Globals[i].Name = uint32(i + 1)
		}
	}

	c := Compositor{
		cfg:           cfg,
		conn:          server,
		done:          make(chan struct{}),
		exited:        make(chan struct{}),
		objects:       map[uint32]string{1: "wl_display"},
		layerSurfaces: make(map[uint32]uint32),
		configured:    make(map[uint32]bool),
		nextID:        wire.ServerIDStart,
	}
	go c.listen()

	return &c, client, nil
}

func (c *Compositor) listen() {
	defer close(c.exited)

	for {
		msg, err := wire.ReadMessage(c.conn)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				c.fail(err)
			}
			return
		}

		err = c.handle(msg)
		if err != nil {
			c.fail(err)
		}
	}
}

func (c *Compositor) fail(err error) {
	c.m.Lock()
	defer c.m.Unlock()

	c.err = errors.Join(c.err, err)
}

// Err returns every error encountered while handling requests.
func (c *Compositor) Err() error {
	c.m.Lock()
	defer c.m.Unlock()

	return c.err
}

// Close shuts the fake down and waits for it to stop reading.
func (c *Compositor) Close() error {
	var err error
	c.close.Do(func() {
		close(c.done)
		err = c.conn.Close()
		<-c.exited
	})
	return err
}

// SetHandler sets a function to be called with every request after
// the built-in handling has run. It is called on the fake's own
// goroutine.
func (c *Compositor) SetHandler(h func(Request)) {
	c.m.Lock()
	defer c.m.Unlock()

	c.handler = h
}

func (c *Compositor) decode(msg *wire.MessageBuffer) (Request, *protocol.Op, error) {
	c.m.Lock()
	defer c.m.Unlock()

	name, ok := c.objects[msg.Sender()]
	if !ok {
		return Request{}, nil, fmt.Errorf("request %v to unknown object %v", msg.Op(), msg.Sender())
	}
	iface := protocol.MustLookup(name)
	op := iface.Request(msg.Op())
	if op == nil {
		return Request{}, nil, wire.UnknownOpError{Interface: name, Type: "request", Op: msg.Op()}
	}

	req := Request{
		Object:    msg.Sender(),
		Interface: name,
		Name:      op.Name,
		Args:      make([]any, 0, len(op.Args)),
	}
	for _, arg := range op.Args {
		if (arg.Type == "new_id") && (arg.Interface == "") {
			req.Args = append(req.Args, msg.ReadNewID())
			continue
		}

		v := msg.ReadArg(arg.Type)
		if f, ok := v.(*os.File); ok && (f != nil) {
			f.Close()
		}
		req.Args = append(req.Args, v)
	}
	if err := msg.Err(); err != nil {
		return Request{}, nil, fmt.Errorf("decode %v.%v: %w", name, op.Name, err)
	}

	for i, arg := range op.Args {
		if arg.Type != "new_id" {
			continue
		}
		switch v := req.Args[i].(type) {
		case wire.NewID:
			c.objects[v.ID] = v.Interface
		case uint32:
			c.objects[v] = arg.Interface
		}
	}
	if op.IsDestructor() {
		delete(c.objects, req.Object)
	}
	c.requests = append(c.requests, req)

	return req, op, nil
}

func (c *Compositor) handle(msg *wire.MessageBuffer) error {
	req, op, err := c.decode(msg)
	if err != nil {
		return err
	}

	if op.IsDestructor() && (req.Object < wire.ServerIDStart) {
		err = c.Send(1, "delete_id", req.Object)
		if err != nil {
			return err
		}
	}

	switch req.Interface + "." + req.Name {
	case "wl_display.get_registry":
		id := req.Args[0].(uint32)
		c.m.Lock()
		c.registry = id
		globals := c.cfg.Globals
		c.m.Unlock()

		for _, g := range globals {
			err := c.Send(id, "global", g.Name, g.Interface, g.Version)
			if err != nil {
				return err
			}
		}

	case "wl_display.sync":
		id := req.Args[0].(uint32)
		err := c.Send(id, "done", c.nextSerial())
		if err != nil {
			return err
		}
		err = c.Send(1, "delete_id", id)
		if err != nil {
			return err
		}

	case "wl_registry.bind":
		id := req.Args[1].(wire.NewID)
		if (id.Interface == "wl_seat") && (c.cfg.Capabilities != 0) {
			err := c.Send(id.ID, "capabilities", c.cfg.Capabilities)
			if err != nil {
				return err
			}
		}

	case "wl_seat.get_keyboard":
		if c.cfg.Keymap != "" {
			err := c.SendKeymap(req.Args[0].(uint32), 1, c.cfg.Keymap)
			if err != nil {
				return err
			}
		}

	case "zwlr_layer_shell_v1.get_layer_surface":
		c.m.Lock()
		c.layerSurfaces[req.Args[1].(uint32)] = req.Args[0].(uint32)
		c.m.Unlock()

	case "wl_surface.commit":
		c.m.Lock()
		ls, ok := c.layerSurfaces[req.Object]
		first := ok && !c.configured[ls]
		if first {
			c.configured[ls] = true
		}
		c.m.Unlock()

		if first && !c.cfg.NoConfigure {
			err := c.Send(ls, "configure", c.nextSerial(), c.cfg.Width, c.cfg.Height)
			if err != nil {
				return err
			}
		}
	}

	c.m.Lock()
	h := c.handler
	c.m.Unlock()
	if h != nil {
		h(req)
	}

	return nil
}

func (c *Compositor) nextSerial() uint32 {
	c.m.Lock()
	defer c.m.Unlock()

	c.serial++
	return c.serial
}

// Requests returns every request received so far, in order.
func (c *Compositor) Requests() []Request {
	c.m.Lock()
	defer c.m.Unlock()

	return append([]Request(nil), c.requests...)
}

// RequestsTo returns the requests with the given name that were sent
// to objects of the given interface.
func (c *Compositor) RequestsTo(iface, name string) []Request {
	var found []Request
	for _, req := range c.Requests() {
		if (req.Interface == iface) && (req.Name == name) {
			found = append(found, req)
		}
	}
	return found
}

// Objects returns the IDs of every live object of the given
// interface, in ascending order.
func (c *Compositor) Objects(iface string) []uint32 {
	c.m.Lock()
	defer c.m.Unlock()

	var ids []uint32
	for id, name := range c.objects {
		if name == iface {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Object returns the ID of the most recently created live object of
// the given interface, or 0 if there is none.
func (c *Compositor) Object(iface string) uint32 {
	ids := c.Objects(iface)
	if len(ids) == 0 {
		return 0
	}

	// Client-allocated IDs are reused, but they never exceed the
	// server range.
	return ids[len(ids)-1]
}

// NewObject allocates an ID for an object created by the compositor.
// It becomes live when it is sent as a new_id argument.
func (c *Compositor) NewObject() uint32 {
	c.m.Lock()
	defer c.m.Unlock()

	id := c.nextID
	c.nextID++
	return id
}

// AddGlobal advertises a new global. If the client already has a
// registry, it is told about it immediately.
func (c *Compositor) AddGlobal(g Global) (uint32, error) {
	c.m.Lock()
	if g.Name == 0 {
		g.Name = uint32(len(c.cfg.Globals) + 1)
	}
	c.cfg.Globals = append(c.cfg.Globals, g)
	registry := c.registry
	c.m.Unlock()

	if registry == 0 {
		return g.Name, nil
	}
	return g.Name, c.Send(registry, "global", g.Name, g.Interface, g.Version)
}

// Configure sends a configure event to a layer surface.
func (c *Compositor) Configure(layerSurface, serial, width, height uint32) error {
	return c.Send(layerSurface, "configure", serial, width, height)
}

// SendKeymap sends a keymap to a keyboard in a freshly created memfd.
func (c *Compositor) SendKeymap(keyboard, format uint32, keymap string) error {
	data := append([]byte(keymap), 0)
	file, err := shm.Create("wltest-keymap", int64(len(data)))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteAt(data, 0)
	if err != nil {
		return fmt.Errorf("write keymap: %w", err)
	}

	return c.Send(keyboard, "keymap", format, file, uint32(len(data)))
}

// ProtocolError sends a fatal error about the given object.
func (c *Compositor) ProtocolError(id, code uint32, message string) error {
	return c.Send(1, "error", id, code, message)
}

// Send sends the named event from the object with the given ID. The
// arguments are encoded according to the event's signature. Integer
// arguments may be given as any integer type, and fixed arguments as
// either wire.Fixed or float64. Objects announced by new_id arguments
// become live.
func (c *Compositor) Send(id uint32, event string, args ...any) error {
	c.m.Lock()
	name, ok := c.objects[id]
	c.m.Unlock()
	if !ok {
		return fmt.Errorf("send %v: unknown object %v", event, id)
	}

	iface := protocol.MustLookup(name)
	op, ok := iface.EventOpcode(event)
	if !ok {
		return fmt.Errorf("send %v: %v has no such event", event, name)
	}
	ev := iface.Event(op)
	if len(args) != len(ev.Args) {
		return fmt.Errorf("send %v.%v: expected %v arguments, got %v", name, event, len(ev.Args), len(args))
	}

	msg := wire.NewMessage(object{id: id, iface: iface}, op)
	msg.Method = event
	msg.Args = args
	for i, arg := range ev.Args {
		err := encode(msg, arg.Type, args[i])
		if err != nil {
			return fmt.Errorf("send %v.%v: argument %v: %w", name, event, arg.Name, err)
		}
	}

	c.m.Lock()
	for i, arg := range ev.Args {
		if arg.Type == "new_id" {
			v, _ := toUint(args[i])
			c.objects[v] = arg.Interface
		}
	}
	if ev.IsDestructor() {
		delete(c.objects, id)
	}
	c.m.Unlock()

	c.wm.Lock()
	defer c.wm.Unlock()
	return msg.Build(c.conn)
}

func encode(msg *wire.MessageBuilder, typ string, v any) error {
	switch typ {
	case "int":
		n, ok := toUint(v)
		if !ok {
			return fmt.Errorf("%T is not an integer", v)
		}
		msg.WriteInt(int32(n))

	case "uint", "object", "new_id":
		n, ok := toUint(v)
		if !ok {
			return fmt.Errorf("%T is not an integer", v)
		}
		msg.WriteUint(n)

	case "fixed":
		switch v := v.(type) {
		case wire.Fixed:
			msg.WriteFixed(v)
		case float64:
			msg.WriteFixed(wire.FixedFloat(v))
		default:
			return fmt.Errorf("%T is not a fixed-point number", v)
		}

	case "string":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%T is not a string", v)
		}
		msg.WriteString(s)

	case "array":
		a, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("%T is not a byte slice", v)
		}
		msg.WriteArray(a)

	case "fd":
		f, ok := v.(*os.File)
		if !ok {
			return fmt.Errorf("%T is not a file", v)
		}
		msg.WriteFile(f)

	default:
		return fmt.Errorf("unknown type %q", typ)
	}
	return nil
}

func toUint(v any) (uint32, bool) {
	switch v := v.(type) {
	case int:
		return uint32(v), true
	case int32:
		return uint32(v), true
	case int64:
		return uint32(v), true
	case uint:
		return uint32(v), true
	case uint32:
		return v, true
	case uint64:
		return uint32(v), true
	default:
		return 0, false
	}
}

// object stands in for the sending object when building events.
type object struct {
	id    uint32
	iface *protocol.Interface
}

func (obj object) ID() uint32                         { return obj.id }
func (obj object) SetID(uint32)                       {}
func (obj object) Dispatch(*wire.MessageBuffer) error { return nil }
func (obj object) Delete()                            {}

func (obj object) MethodName(op uint16) string {
	if ev := obj.iface.Event(op); ev != nil {
		return ev.Name
	}
	return fmt.Sprint(op)
}

func (obj object) String() string {
	return fmt.Sprintf("%v@%v", obj.iface.Name, obj.id)
}
