// Package wl implements the client side of the core Wayland protocol.
//
// All events are delivered on the goroutine that calls Flush or
// RoundTrip. A background goroutine reads messages from the socket,
// but it only queues them; listeners never run concurrently with each
// other or with the code that polls the state they write to.
package wl

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"deedles.dev/wloverlay/internal/cq"
	"deedles.dev/wloverlay/internal/debug"
	"deedles.dev/wloverlay/internal/objstore"
	"deedles.dev/wloverlay/wire"
)

//go:generate go run deedles.dev/wloverlay/cmd/wlgen -proto wayland -prefix wl_ -out opcodes.go

type State struct {
	done    chan struct{}
	close   sync.Once
	conn    *wire.Conn
	objects *objstore.Store
	queue   *cq.Queue[func() error]
	display *Display
	err     error
}

// Dial connects to the compositor indicated by the environment.
func Dial() (*State, error) {
	c, err := wire.Dial()
	if err != nil {
		return nil, err
	}

	return NewState(c), nil
}

// NewState starts a client on an already open connection.
func NewState(conn *wire.Conn) *State {
	state := State{
		done:    make(chan struct{}),
		conn:    conn,
		objects: objstore.New(1),
		queue:   cq.New[func() error](),
	}
	state.display = &Display{Proxy: MakeProxy(&state, displayIface)}
	state.Add(state.display)
	go state.listen()

	return &state
}

func (state *State) listen() {
	for {
		msg, err := wire.ReadMessage(state.conn)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			if errors.Is(err, io.EOF) {
				err = ErrDisconnected
			}

			select {
			case <-state.done:
			case state.queue.Add() <- func() error { return state.fail(err) }:
			}
			return
		}

		select {
		case <-state.done:
			return
		case state.queue.Add() <- func() error { return state.dispatch(msg) }:
		}
	}
}

// fail records a fatal connection error. Only the first one is kept.
func (state *State) fail(err error) error {
	if state.err == nil {
		state.err = err
	}
	return err
}

// Err returns the fatal error that ended the connection, if any.
func (state *State) Err() error {
	return state.err
}

func (state *State) Display() *Display {
	return state.display
}

func (state *State) Close() error {
	state.close.Do(func() { close(state.done) })
	state.queue.Stop()
	return state.conn.Close()
}

// Add stores a client-created object, allocating its ID.
func (state *State) Add(obj wire.Object) {
	state.objects.Add(obj)
}

// Set stores an object that the compositor created with the given ID.
func (state *State) Set(id uint32, obj wire.Object) {
	state.objects.Set(id, obj)
}

func (state *State) Get(id uint32) wire.Object {
	return state.objects.Get(id)
}

func (state *State) Delete(id uint32) {
	state.objects.Delete(id)
}

func (state *State) dispatch(msg *wire.MessageBuffer) error {
	obj := state.objects.Get(msg.Sender())
	if obj == nil {
		return UnknownSenderIDError{Msg: msg}
	}

	err := obj.Dispatch(msg)
	if debug.Enabled() {
		debug.Printf("%v", msg.Debug(obj))
	}
	return err
}

// Enqueue queues msg to be sent during the next Flush or RoundTrip.
func (state *State) Enqueue(msg *wire.MessageBuilder) {
	select {
	case <-state.done:
	case state.queue.Add() <- func() error {
		if debug.Enabled() {
			debug.Printf(" -> %v", msg)
		}
		err := msg.Build(state.conn)
		if err != nil {
			return fmt.Errorf("send %v.%v: %w", msg.Sender(), msg.Method, err)
		}
		return nil
	}:
	}
}

// Flush sends all enqueued requests and processes all events that
// have been received since the last time the queue was flushed. It
// never waits for new events. It returns all errors encountered, or
// the error that ended the connection if there were none.
func (state *State) Flush() error {
	select {
	case queue := <-state.queue.Get():
		errs := flushQueue(queue)
		if len(errs) == 0 {
			return state.err
		}
		return errors.Join(errs...)
	default:
		return state.err
	}
}

// RoundTrip flushes the queue and then blocks until the compositor
// has processed every request sent so far, processing events as they
// arrive.
func (state *State) RoundTrip() error {
	if state.err != nil {
		return state.err
	}

	get := state.queue.Get()
	done := make(chan struct{})
	state.display.Sync().Then(func(uint32) {
		close(done)
		get = nil
	})

	var errs []error
	for {
		select {
		case <-done:
			return errors.Join(errs...)

		case queue := <-get:
			errs = append(errs, flushQueue(queue)...)
			if state.err != nil {
				return errors.Join(errs...)
			}
		}
	}
}

func flushQueue(queue []func() error) (errs []error) {
	for _, ev := range queue {
		err := ev()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
