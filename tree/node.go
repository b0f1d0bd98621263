// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a mutable, observable tree of named [Node]s.
// Nodes can be inserted, moved, renamed, and removed at runtime, and
// every change is sent as a [ChangeEvent] to the listeners of the node
// that changed, so that any number of observers can stay synchronized
// with the tree.
package tree

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jinzhu/copier"

	"cogentcore.org/livetree/base/errors"
	"cogentcore.org/livetree/base/findfast"
	"cogentcore.org/livetree/events"
)

// Node is an element of a tree. It has a name, at most one parent,
// an ordered list of children that it owns, and a set of listeners
// that receive a [ChangeEvent] for every change made through it.
//
// Nodes are compared by identity; the name is purely a display attribute
// and need not be unique. All methods are safe for concurrent use: each
// node guards its own state with its own lock, which is never held while
// listeners are called, so listeners can call back into the tree.
// A change that involves two nodes, such as moving a child between
// parents, is done as separately locked steps, so a concurrent reader
// may observe the intermediate state.
type Node struct {
	mu sync.Mutex

	// name is the display label of the node.
	name string

	// parent is the parent of this node, or nil for a root. The parent's
	// children list is the only ownership relation.
	parent *Node

	// children is the ordered list of children.
	children []*Node

	// properties is a property map for arbitrary key-value display attributes.
	properties map[string]any

	// index is the last known index of this node in its parent, used as a
	// starting point for finding it next time. It is not guaranteed to be
	// accurate; use [Node.IndexInParent].
	index int

	listeners events.Listeners[func(e *ChangeEvent)]
}

// New returns a new node with the given name and no parent,
// children, or listeners.
func New(name string) *Node {
	return &Node{name: name}
}

// String implements the [fmt.Stringer] interface by returning the name of the node.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return n.Name()
}

// Name returns the name of the node.
func (n *Node) Name() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.name
}

// SetName sets the name of the node to any string, including the empty
// string, and sends a [NodeChanged] event.
func (n *Node) SetName(name string) {
	n.mu.Lock()
	n.name = name
	n.mu.Unlock()
	slog.Debug("tree: renamed", "node", n)
	n.fire(n.changedEvent())
}

// changedEvent returns a [NodeChanged] event for this node itself.
// It has a path and an index only if the node has a parent.
func (n *Node) changedEvent() *ChangeEvent {
	e := &ChangeEvent{kind: NodeChanged, source: n, children: []*Node{n}}
	if n.Parent() == nil {
		return e
	}
	e.path = n.PathFromRoot()
	if idx := n.IndexInParent(); idx >= 0 {
		e.indices = []int{idx}
	}
	return e
}

// Parents:

// Parent returns the parent of this node, or nil if it is a root.
func (n *Node) Parent() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

// lastIndex returns the cached index hint of this node in its parent.
func (n *Node) lastIndex() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index
}

// setIndex sets the index hint of this node if its parent is still the given node.
func (n *Node) setIndex(parent *Node, index int) {
	n.mu.Lock()
	if n.parent == parent {
		n.index = index
	}
	n.mu.Unlock()
}

// claim sets the parent of this node to the given node if it has no
// parent, and returns whether it did. The index hint is set with
// setIndex once the node is in the children of the parent.
func (n *Node) claim(parent *Node) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.parent != nil {
		return false
	}
	n.parent = parent
	return true
}

// clearParent clears the parent of this node if it is still the given node.
func (n *Node) clearParent(parent *Node) {
	n.mu.Lock()
	if n.parent == parent {
		n.parent = nil
		n.index = 0
	}
	n.mu.Unlock()
}

// IndexInParent returns the index of this node in its parent's children,
// or -1 if it has no parent. It caches the last value and uses it for an
// optimized search, so subsequent calls are typically quite fast.
func (n *Node) IndexInParent() int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	start := n.lastIndex()
	p.mu.Lock()
	idx := findfast.Index(p.children, n, start)
	p.mu.Unlock()
	if idx >= 0 {
		n.mu.Lock()
		n.index = idx
		n.mu.Unlock()
	}
	return idx
}

// PathFromRoot returns the nodes from the root of this node's tree down
// to this node, inclusive of both ends: the root is first and this node
// is last.
func (n *Node) PathFromRoot() []*Node {
	var path []*Node
	n.WalkUp(func(k *Node) bool {
		path = append(path, k)
		return Continue
	})
	slices.Reverse(path)
	return path
}

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// Path returns the path to this node from the tree root, using
// the names of the nodes separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *Node) Path() string {
	var b strings.Builder
	for _, k := range n.PathFromRoot() {
		b.WriteString("/")
		b.WriteString(EscapePathName(k.Name()))
	}
	return b.String()
}

// Children:

// IsLeaf returns whether this node has no children.
func (n *Node) IsLeaf() bool {
	return n.NumChildren() == 0
}

// NumChildren returns the number of children this node has.
func (n *Node) NumChildren() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.children)
}

// Child returns the child of this node at the given index. It returns
// an [ErrInvalidArgument] error if the index is out of range.
func (n *Node) Child(index int) (*Node, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if index < 0 || index >= len(n.children) {
		return nil, fmt.Errorf("%w: child index %d out of range [0, %d) in %q", ErrInvalidArgument, index, len(n.children), n.name)
	}
	return n.children[index], nil
}

// Children returns a copy of the list of children of this node.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.children)
}

// IndexOf returns the index of the given node in the children of this
// node, or -1 if it is not a direct child.
func (n *Node) IndexOf(child *Node) int {
	if child == nil {
		return -1
	}
	start := child.lastIndex()
	n.mu.Lock()
	defer n.mu.Unlock()
	return findfast.Index(n.children, child, start)
}

// Adding and Inserting Children:

// Add adds the given child at the end of the children of this node.
// See [Node.Insert] for details.
func (n *Node) Add(child *Node) error {
	return n.insert(child, -1, true)
}

// Insert inserts the given child at the given index in the children of
// this node, which must be within [0, NumChildren]. If the child already
// has a parent, including this node, it is first removed from that parent,
// which sends that parent's [NodeRemoved] event; when moving a child within
// this node, the index refers to the children after that removal. Insert
// then sends a [NodeInserted] event.
//
// Inserting nil, this node itself, or an ancestor of this node is an
// [ErrInvalidArgument] error, as is an out-of-range index; nothing is
// changed in that case. If the child is given another parent while it is
// being detached, for example by a listener of its old parent, Insert
// returns an [ErrInvalidState] error and leaves this node unchanged.
func (n *Node) Insert(child *Node, index int) error {
	return n.insert(child, index, false)
}

// insert implements [Node.Insert], inserting at the end
// of the children at the time of insertion if atEnd is set.
func (n *Node) insert(child *Node, index int, atEnd bool) error {
	if child == nil {
		return fmt.Errorf("%w: can not insert a nil node into %q", ErrInvalidArgument, n.Name())
	}
	if !n.WalkUp(func(k *Node) bool { return k != child }) {
		return fmt.Errorf("%w: inserting %q into %q would create a cycle", ErrInvalidArgument, child.Name(), n.Name())
	}
	old := child.Parent()
	limit := n.NumChildren()
	if old == n {
		limit--
	}
	if !atEnd && (index < 0 || index > limit) {
		return fmt.Errorf("%w: insert index %d out of range [0, %d] in %q", ErrInvalidArgument, index, limit, n.Name())
	}
	if old != nil {
		// a concurrent removal may have detached it already
		if err := old.Remove(child); err != nil && (!errors.Is(err, ErrInvalidArgument) || child.Parent() == old) {
			return err
		}
	}
	// a listener of the old parent, or another goroutine, may have
	// given the child a parent again since it was detached
	if !child.claim(n) {
		return fmt.Errorf("%w: %q was given another parent while being inserted into %q", ErrInvalidState, child.Name(), n.Name())
	}
	n.mu.Lock()
	// the children may have changed concurrently since validation
	if atEnd || index > len(n.children) {
		index = len(n.children)
	}
	n.children = slices.Insert(n.children, index, child)
	n.mu.Unlock()
	child.setIndex(n, index)
	slog.Debug("tree: inserted child", "node", n, "child", child, "index", index)
	n.fire(&ChangeEvent{kind: NodeInserted, source: n, path: n.PathFromRoot(), indices: []int{index}, children: []*Node{child}})
	return nil
}

// Deleting Children:

// Remove removes the given direct child of this node and clears its
// parent, and then sends a [NodeRemoved] event with the former index of
// the child. It returns an [ErrInvalidArgument] error if the given node
// is not a direct child of this node.
func (n *Node) Remove(child *Node) error {
	if child == nil {
		return fmt.Errorf("%w: can not remove a nil node from %q", ErrInvalidArgument, n.Name())
	}
	start := child.lastIndex()
	n.mu.Lock()
	idx := findfast.Index(n.children, child, start)
	if idx >= 0 {
		n.children = slices.Delete(n.children, idx, idx+1)
	}
	n.mu.Unlock()
	if idx < 0 {
		return fmt.Errorf("%w: %q is not a child of %q", ErrInvalidArgument, child.Name(), n.Name())
	}
	n.removed(child, idx)
	return nil
}

// RemoveAt removes the child at the given index, as in [Node.Remove],
// and returns it. It returns an [ErrInvalidArgument] error if the index
// is out of range.
func (n *Node) RemoveAt(index int) (*Node, error) {
	n.mu.Lock()
	if index < 0 || index >= len(n.children) {
		sz := len(n.children)
		n.mu.Unlock()
		return nil, fmt.Errorf("%w: remove index %d out of range [0, %d) in %q", ErrInvalidArgument, index, sz, n.Name())
	}
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	n.mu.Unlock()
	n.removed(child, index)
	return child, nil
}

// removed finishes the removal of the given child, which was at the given
// index and has already been deleted from the children.
func (n *Node) removed(child *Node, index int) {
	child.clearParent(n)
	slog.Debug("tree: removed child", "node", n, "child", child, "index", index)
	n.fire(&ChangeEvent{kind: NodeRemoved, source: n, path: n.PathFromRoot(), indices: []int{index}, children: []*Node{child}})
}

// RemoveFromParent removes this node from its parent. It returns an
// [ErrInvalidState] error if the node has no parent.
func (n *Node) RemoveFromParent() error {
	p := n.Parent()
	if p == nil {
		return fmt.Errorf("%w: %q has no parent to be removed from", ErrInvalidState, n.Name())
	}
	return p.Remove(n)
}

// Destroy notifies the listeners of this node that it is about to be
// removed, with a [NodeRemoved] event from this node that has no path
// and no indices (see [ChangeEvent.IsDestroyNotice]), and then removes
// it from its parent, if it has one. The node and its children are
// otherwise left intact, and they are garbage once no longer referenced.
func (n *Node) Destroy() error {
	slog.Debug("tree: destroy", "node", n)
	n.fire(&ChangeEvent{kind: NodeRemoved, source: n, children: []*Node{n}})
	// a listener may have already moved or removed this node
	if p := n.Parent(); p != nil {
		return p.Remove(n)
	}
	return nil
}

// Move moves the child at the given from index to the given to index,
// both of which must be in range, and sends a [StructureChanged] event.
// Moving a child to its own index does nothing.
func (n *Node) Move(from, to int) error {
	n.mu.Lock()
	sz := len(n.children)
	if from < 0 || from >= sz || to < 0 || to >= sz {
		n.mu.Unlock()
		return fmt.Errorf("%w: move indices %d -> %d out of range [0, %d) in %q", ErrInvalidArgument, from, to, sz, n.Name())
	}
	if from == to {
		n.mu.Unlock()
		return nil
	}
	n.children = move(n.children, from, to)
	n.mu.Unlock()
	slog.Debug("tree: moved child", "node", n, "from", from, "to", to)
	n.fire(&ChangeEvent{kind: StructureChanged, source: n, path: n.PathFromRoot()})
	return nil
}

// Properties:

// SetProperty sets the given property to the given value
// and sends a [NodeChanged] event.
func (n *Node) SetProperty(key string, value any) {
	n.mu.Lock()
	if n.properties == nil {
		n.properties = make(map[string]any)
	}
	n.properties[key] = value
	n.mu.Unlock()
	n.fire(n.changedEvent())
}

// Property returns the property value for the given key,
// and whether it was found.
func (n *Node) Property(key string) (any, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.properties[key]
	return v, ok
}

// Properties returns a copy of the properties of this node.
func (n *Node) Properties() map[string]any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return maps.Clone(n.properties)
}

// DeleteProperty deletes the property with the given key, and sends a
// [NodeChanged] event if it existed.
func (n *Node) DeleteProperty(key string) {
	n.mu.Lock()
	_, ok := n.properties[key]
	delete(n.properties, key)
	n.mu.Unlock()
	if ok {
		n.fire(n.changedEvent())
	}
}

// Clone returns a new detached copy of this node and all of its children,
// with deep copies of their names and properties. Listeners are not copied.
func (n *Node) Clone() *Node {
	n.mu.Lock()
	c := New(n.name)
	if len(n.properties) > 0 {
		c.properties = make(map[string]any, len(n.properties))
		errors.Log(copier.CopyWithOption(&c.properties, &n.properties, copier.Option{DeepCopy: true}))
	}
	kids := slices.Clone(n.children)
	n.mu.Unlock()
	c.children = make([]*Node, len(kids))
	for i, k := range kids {
		kc := k.Clone()
		kc.parent = c
		kc.index = i
		c.children[i] = kc
	}
	return c
}

// Listeners:

// AddListener registers the given function to receive every [ChangeEvent]
// sent by this node, and returns the handle to remove it with. Adding the
// same function twice creates two independent registrations.
func (n *Node) AddListener(fun func(e *ChangeEvent)) events.ListenerID {
	return n.listeners.Add(fun)
}

// RemoveListener unregisters the listener with the given handle.
// Removing a listener that is not registered does nothing.
func (n *Node) RemoveListener(id events.ListenerID) {
	n.listeners.Remove(id)
}

// NumListeners returns the number of listeners registered on this node.
func (n *Node) NumListeners() int {
	return n.listeners.Len()
}

// fire sends the given event to a snapshot of the listeners.
func (n *Node) fire(e *ChangeEvent) {
	events.Call(&n.listeners, e)
}
