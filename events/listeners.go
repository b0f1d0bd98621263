// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"sync"

	"cogentcore.org/livetree/base/errors"
	"cogentcore.org/livetree/base/ordmap"
)

// ListenerID is the handle returned when a listener is added to
// [Listeners], and it is the only way to remove that listener again.
// The zero value is never returned, so it can be used as "no listener".
type ListenerID uint64

// Listeners is a registry of listeners of type L, which is typically a
// closure or an interface with one method per event kind. It is safe
// for concurrent use, and the zero value is ready to use.
//
// Every call to [Listeners.Add] creates an independent registration,
// even if the same listener value is added twice.
type Listeners[L any] struct {
	mu     sync.Mutex
	lastID ListenerID
	ls     ordmap.Map[ListenerID, L]
}

// Add registers the given listener and returns its handle.
func (ls *Listeners[L]) Add(l L) ListenerID {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastID++
	ls.ls.Add(ls.lastID, l)
	return ls.lastID
}

// Remove unregisters the listener with the given handle. Removing a
// handle that is not registered is a no-op. It returns whether a
// listener was actually removed.
func (ls *Listeners[L]) Remove(id ListenerID) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.ls.DeleteKey(id)
}

// Has returns whether a listener is registered under the given handle.
func (ls *Listeners[L]) Has(id ListenerID) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.ls.Has(id)
}

// Len returns the number of registered listeners.
func (ls *Listeners[L]) Len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.ls.Len()
}

// Reset removes all listeners.
func (ls *Listeners[L]) Reset() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.ls.Reset()
}

// snapshot returns a copy of the current registrations in the order added.
func (ls *Listeners[L]) snapshot() []ordmap.KeyValue[ListenerID, L] {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]ordmap.KeyValue[ListenerID, L](nil), ls.ls.Order...)
}

// Broadcast calls dispatch for every listener registered at the time of
// the call, in the order they were added, passing the given event.
// The listeners are copied before any of them are called and the lock
// is not held while calling them, so a listener can add or remove
// listeners, or trigger further broadcasts, without affecting delivery
// of this event. A listener that panics is logged and skipped; the
// remaining listeners still receive the event.
func Broadcast[L, E any](ls *Listeners[L], ev E, dispatch func(l L, ev E)) {
	for _, kv := range ls.snapshot() {
		dispatchOne(kv.Key, kv.Value, ev, dispatch)
	}
}

func dispatchOne[L, E any](id ListenerID, l L, ev E, dispatch func(l L, ev E)) {
	defer func() {
		if r := recover(); r != nil {
			errors.Log(fmt.Errorf("events: listener %d panicked while handling %v: %v", id, ev, r))
		}
	}()
	dispatch(l, ev)
}

// Call is a helper for the common case of closure listeners: it calls
// each registered function with the given event, as in [Broadcast].
func Call[E any](ls *Listeners[func(E)], ev E) {
	Broadcast(ls, ev, func(fun func(E), ev E) { fun(ev) })
}
