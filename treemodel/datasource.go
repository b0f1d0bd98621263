// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemodel presents a [tree.Node] tree through [DataSource], a
// generic tree data source protocol that any tree view can consume, and
// keeps its observers synchronized with every change anywhere in the tree.
package treemodel

import (
	"fmt"
	"strconv"

	"cogentcore.org/livetree/events"
)

// DataSource is a view-agnostic tree data source. Nodes are opaque
// values to the view; a data source reports an error wrapping
// [tree.ErrInvalidArgument] for nodes that it does not own.
type DataSource interface {

	// Root returns the root node, or nil if there is none.
	Root() any

	// IsLeaf returns whether the given node has no children.
	IsLeaf(node any) (bool, error)

	// ChildCount returns the number of children of the given node.
	ChildCount(node any) (int, error)

	// Child returns the child of the given parent at the given index.
	Child(parent any, index int) (any, error)

	// IndexOfChild returns the index of the given child in the given
	// parent, or -1 if it is not a child of it.
	IndexOfChild(parent, child any) (int, error)

	// SetValueAt sets the value of the node at the end of the given
	// path, which is how a view edits a node.
	SetValueAt(path []any, value any) error

	// AddListener registers the given listener and returns its handle.
	AddListener(l Listener) events.ListenerID

	// RemoveListener unregisters the listener with the given handle.
	RemoveListener(id events.ListenerID)
}

// EventTypes are the types of [Event] sent by a [DataSource].
type EventTypes int32 //enums:enum

const (
	// NodesChanged is sent when the display of nodes has changed.
	NodesChanged EventTypes = iota

	// NodesInserted is sent when nodes have been inserted.
	NodesInserted

	// NodesRemoved is sent when nodes have been removed.
	NodesRemoved

	// StructureChanged is sent when the structure below a node
	// has changed and should be reloaded by the view.
	StructureChanged

	// EventTypesN is the number of event types.
	EventTypesN
)

var eventTypesNames = [...]string{"NodesChanged", "NodesInserted", "NodesRemoved", "StructureChanged"}

// String returns the name of the event type.
func (et EventTypes) String() string {
	if et < 0 || et >= EventTypesN {
		return "EventTypes(" + strconv.Itoa(int(et)) + ")"
	}
	return eventTypesNames[et]
}

// Event is a change notification from a [DataSource]. The same event
// value is sent to every listener, so listeners must not modify it.
type Event struct {

	// Type is the type of the event.
	Type EventTypes

	// Source is the data source that sent the event.
	Source DataSource

	// Path is the path of nodes from the root to the parent of the affected
	// children, or to the changed node itself. It is nil for a change of
	// a node that has no parent.
	Path []any

	// ChildIndices are the ascending indices of the affected children.
	ChildIndices []int

	// Children are the affected children, corresponding to ChildIndices.
	Children []any
}

func (e *Event) String() string {
	return fmt.Sprintf("%v{Path: %v, Indices: %v, Children: %v}", e.Type, e.Path, e.ChildIndices, e.Children)
}

// Listener receives the events of a [DataSource], with one method per [EventTypes].
type Listener interface {
	NodesChanged(e *Event)
	NodesInserted(e *Event)
	NodesRemoved(e *Event)
	StructureChanged(e *Event)
}

// ListenerFunc is a [Listener] that calls the function for every type of event.
type ListenerFunc func(e *Event)

// NodesChanged calls f(e).
func (f ListenerFunc) NodesChanged(e *Event) { f(e) }

// NodesInserted calls f(e).
func (f ListenerFunc) NodesInserted(e *Event) { f(e) }

// NodesRemoved calls f(e).
func (f ListenerFunc) NodesRemoved(e *Event) { f(e) }

// StructureChanged calls f(e).
func (f ListenerFunc) StructureChanged(e *Event) { f(e) }

// dispatch calls the method of the given listener for the type of the given event.
func dispatch(l Listener, e *Event) {
	switch e.Type {
	case NodesChanged:
		l.NodesChanged(e)
	case NodesInserted:
		l.NodesInserted(e)
	case NodesRemoved:
		l.NodesRemoved(e)
	case StructureChanged:
		l.StructureChanged(e)
	}
}
