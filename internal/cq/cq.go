// Package cq implements a simple concurrent queue.
//
// Values are added one at a time from any goroutine and removed in
// batches. A batch contains everything that was added since the
// previous batch was removed, in order.
package cq

import "sync"

type Queue[T any] struct {
	done  chan struct{}
	close sync.Once

	add chan T
	get chan []T
}

func New[T any]() *Queue[T] {
	q := Queue[T]{
		done: make(chan struct{}),
		add:  make(chan T),
		get:  make(chan []T),
	}
	go q.run()

	return &q
}

// Stop stops the queue's goroutine. Pending values are dropped.
func (q *Queue[T]) Stop() {
	q.close.Do(func() {
		close(q.done)
	})
}

func (q *Queue[T]) Add() chan<- T {
	return q.add
}

// Get returns a channel that yields a batch whenever the queue is not
// empty.
func (q *Queue[T]) Get() <-chan []T {
	return q.get
}

func (q *Queue[T]) run() {
	var s []T
	var get chan []T

	for {
		select {
		case <-q.done:
			return

		case v := <-q.add:
			s = append(s, v)
			get = q.get

		case get <- s:
			s = nil
			get = nil
		}
	}
}
