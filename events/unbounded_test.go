// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/livetree/events"
)

func TestUnboundedOrder(t *testing.T) {
	buf := NewUnbounded[int]()
	for i := range 100 {
		buf.Send(i)
	}
	buf.Close()
	buf.Send(100) // ignored after close
	buf.Close()

	got := []int{}
	for v := range buf.Receive() {
		got = append(got, v)
	}
	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, buf.Len())
}

func TestUnboundedConcurrentConsumer(t *testing.T) {
	buf := NewUnbounded[string]()
	done := make(chan []string)
	go func() {
		var got []string
		for v := range buf.Receive() {
			got = append(got, v)
		}
		done <- got
	}()
	buf.Send("a")
	buf.Send("b")
	buf.Close()
	assert.Equal(t, []string{"a", "b"}, <-done)
}

func TestUnboundedStopUndrained(t *testing.T) {
	buf := NewUnbounded[int]()
	for i := range 100 {
		buf.Send(i)
	}
	buf.Stop()
	buf.Stop()
	buf.Send(100)
	assert.Equal(t, 0, buf.Len())

	done := make(chan int)
	go func() {
		n := 0
		for range buf.Receive() {
			n++
		}
		done <- n
	}()
	select {
	case n := <-done:
		assert.LessOrEqual(t, n, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after Stop")
	}
}

func TestUnboundedStopAfterClose(t *testing.T) {
	buf := NewUnbounded[int]()
	buf.Send(1)
	buf.Close()
	buf.Stop()
	select {
	case <-waitClosed(buf.Receive()):
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed")
	}
}

func waitClosed[T any](ch <-chan T) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range ch {
		}
		close(done)
	}()
	return done
}
