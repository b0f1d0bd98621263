// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Unbounded is a buffer with non-blocking sends and unlimited capacity
// that delivers items in order on a channel. It lets a slow consumer on
// another goroutine receive events without ever blocking the sender,
// which typically is a listener called while a tree is being mutated.
//
//	buf := events.NewUnbounded[T]()
//	go func() {
//		for item := range buf.Receive() {
//			// ...
//		}
//	}()
//	buf.Send(item) // never blocks
//	buf.Close()    // closes the channel once drained
//	buf.Stop()     // or drops the rest and closes it now
type Unbounded[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool

	// stopped is set by Stop, after which pending items are dropped.
	stopped bool
	done    chan struct{}
	out     chan T
}

// NewUnbounded returns a new [Unbounded] buffer whose drain goroutine
// runs until [Unbounded.Close] is called and all items are delivered,
// or until [Unbounded.Stop] is called.
func NewUnbounded[T any]() *Unbounded[T] {
	b := &Unbounded[T]{
		items: make([]T, 0, 16),
		done:  make(chan struct{}),
		out:   make(chan T, 1),
	}
	b.cond = sync.NewCond(&b.mu)
	go b.drain()
	return b
}

func (b *Unbounded[T]) drain() {
	defer close(b.out)
	for {
		item, ok := b.next()
		if !ok {
			return
		}
		select {
		case b.out <- item:
		case <-b.done:
			return
		}
	}
}

// next blocks until there is an item or the buffer is closed and empty.
func (b *Unbounded[T]) next() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.items) == 0 && !b.closed {
		b.cond.Wait()
	}
	if b.stopped || len(b.items) == 0 {
		var zv T
		return zv, false
	}
	item := b.items[0]
	var zv T
	b.items[0] = zv
	b.items = b.items[1:]
	return item, true
}

// Send adds an item to the buffer. It never blocks, and it is
// ignored after [Unbounded.Close].
func (b *Unbounded[T]) Send(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.items = append(b.items, item)
	b.cond.Signal()
}

// Receive returns the channel on which items are delivered.
func (b *Unbounded[T]) Receive() <-chan T {
	return b.out
}

// Close stops accepting items. The channel is closed once all pending
// items have been received. It is safe to call more than once.
func (b *Unbounded[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.cond.Signal()
}

// Len returns the number of items waiting to be delivered.
func (b *Unbounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Stop stops accepting items and drops the pending ones, and the channel
// is closed without waiting for them to be received. At most one item
// sent before Stop may still be delivered. Use Stop instead of
// [Unbounded.Close] when the receiver may no longer be reading.
func (b *Unbounded[T]) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.items = nil
	if !b.stopped {
		b.stopped = true
		close(b.done)
	}
	b.cond.Signal()
}
