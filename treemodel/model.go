// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemodel

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/livetree/base/ordmap"
	"cogentcore.org/livetree/events"
	"cogentcore.org/livetree/tree"
)

// Model is a [DataSource] backed by a [tree.Node] tree. It subscribes to
// every node of the tree, re-broadcasts each node change to its own
// listeners as an [Event], and keeps its subscriptions in step with
// the tree as subtrees are inserted and removed, so that changes at
// any depth reach the view.
//
// All methods are safe for concurrent use.
type Model struct {
	mu sync.Mutex

	// root is the root node of the tree.
	root *tree.Node

	// subs are the listener handles of the nodes we are subscribed to,
	// in order of subscription.
	subs ordmap.Map[*tree.Node, events.ListenerID]

	// listeners are the listeners for our events.
	listeners events.Listeners[Listener]

	// options are the options of the model.
	options Options
}

var _ DataSource = (*Model)(nil)

// NewModel returns a new model for the tree with the given root,
// which may be nil.
func NewModel(root *tree.Node) *Model {
	m := &Model{}
	m.SetRoot(root)
	return m
}

func (m *Model) String() string {
	return "Model"
}

// SetOptions sets the options of the model, which apply to all later
// changes of the tree, and returns the model.
func (m *Model) SetOptions(o Options) *Model {
	m.mu.Lock()
	m.options = o
	m.mu.Unlock()
	return m
}

// Options returns the options of the model.
func (m *Model) Options() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.options
}

func (m *Model) shallow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.options.Shallow
}

// SetRoot sets the root of the tree, which may be nil. Any previous
// tree is unsubscribed from, the new tree is subscribed to, and if there
// was a previous root, a [StructureChanged] event with the path of the
// new root is sent.
func (m *Model) SetRoot(root *tree.Node) {
	m.mu.Lock()
	old := m.root
	m.root = root
	m.mu.Unlock()
	if old == root {
		if root != nil {
			m.subscribeTree(root)
		}
		return
	}
	if old != nil {
		m.unsubscribeTree(old)
	}
	if root != nil {
		m.subscribeTree(root)
	}
	if old != nil {
		m.send(&Event{Type: StructureChanged, Source: m, Path: rootPath(root)})
	}
}

// RootNode returns the root node of the tree, or nil if there is none.
func (m *Model) RootNode() *tree.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.root
}

// Root returns the root node of the tree, or nil if there is none.
func (m *Model) Root() any {
	if r := m.RootNode(); r != nil {
		return r
	}
	return nil
}

// Reload sends a [StructureChanged] event for the whole tree, telling
// views to discard everything they know about it.
func (m *Model) Reload() {
	m.send(&Event{Type: StructureChanged, Source: m, Path: rootPath(m.RootNode())})
}

func rootPath(root *tree.Node) []any {
	if root == nil {
		return nil
	}
	return []any{root}
}

// asNode returns the given value as a node, or an error wrapping
// [tree.ErrInvalidArgument] if it is not one.
func asNode(v any, what string) (*tree.Node, error) {
	n, ok := v.(*tree.Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %s must be a non-nil *tree.Node, not %T", tree.ErrInvalidArgument, what, v)
	}
	return n, nil
}

// IsLeaf returns whether the given node has no children.
func (m *Model) IsLeaf(node any) (bool, error) {
	n, err := asNode(node, "node")
	if err != nil {
		return false, err
	}
	return n.IsLeaf(), nil
}

// ChildCount returns the number of children of the given node.
func (m *Model) ChildCount(node any) (int, error) {
	n, err := asNode(node, "node")
	if err != nil {
		return 0, err
	}
	return n.NumChildren(), nil
}

// Child returns the child of the given parent at the given index.
func (m *Model) Child(parent any, index int) (any, error) {
	p, err := asNode(parent, "parent")
	if err != nil {
		return nil, err
	}
	c, err := p.Child(index)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IndexOfChild returns the index of the given child in the given parent,
// or -1 if it is not a child of it.
func (m *Model) IndexOfChild(parent, child any) (int, error) {
	p, err := asNode(parent, "parent")
	if err != nil {
		return -1, err
	}
	c, err := asNode(child, "child")
	if err != nil {
		return -1, err
	}
	return p.IndexOf(c), nil
}

// SetValueAt renames the node at the end of the given path to the given
// value, which must be a string or a [fmt.Stringer].
func (m *Model) SetValueAt(path []any, value any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", tree.ErrInvalidArgument)
	}
	n, err := asNode(path[len(path)-1], "last path element")
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case string:
		n.SetName(v)
	case fmt.Stringer:
		n.SetName(v.String())
	default:
		return fmt.Errorf("%w: value must be a string, not %T", tree.ErrInvalidArgument, value)
	}
	return nil
}

// AddListener registers the given listener for all of our events and
// returns its handle. Adding the same listener again makes another
// independent registration.
func (m *Model) AddListener(l Listener) events.ListenerID {
	return m.listeners.Add(l)
}

// RemoveListener unregisters the listener with the given handle.
// Removing an unknown handle does nothing.
func (m *Model) RemoveListener(id events.ListenerID) {
	m.listeners.Remove(id)
}

// NumListeners returns the number of registered listeners.
func (m *Model) NumListeners() int {
	return m.listeners.Len()
}

// Stream returns a channel that receives all of our events in order,
// and a function that stops it. Events are buffered without bound, so
// a slow reader never blocks the tree.
func (m *Model) Stream() (<-chan *Event, func()) {
	buf := events.NewUnbounded[*Event]()
	id := m.AddListener(ListenerFunc(buf.Send))
	stop := sync.OnceFunc(func() {
		m.RemoveListener(id)
		buf.Stop()
	})
	return buf.Receive(), stop
}

// Subscribed returns whether the model is listening to the given node.
func (m *Model) Subscribed(n *tree.Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subs.Has(n)
}

// NumSubscribed returns the number of nodes the model is listening to.
func (m *Model) NumSubscribed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subs.Len()
}

// Close unsubscribes from every node. The model sends no more
// events for changes of the tree until the next [Model.SetRoot].
func (m *Model) Close() {
	m.mu.Lock()
	nodes := m.subs.Keys()
	ids := m.subs.Values()
	m.subs.Reset()
	m.mu.Unlock()
	for i, n := range nodes {
		n.RemoveListener(ids[i])
	}
}

func (m *Model) subscribe(n *tree.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.subs.Has(n) {
		return
	}
	m.subs.Add(n, n.AddListener(m.nodeChanged))
	slog.Debug("treemodel: subscribed", "node", n)
}

func (m *Model) unsubscribe(n *tree.Node) {
	m.mu.Lock()
	id, ok := m.subs.ValueByKeyTry(n)
	if ok {
		m.subs.DeleteKey(n)
	}
	m.mu.Unlock()
	if ok {
		n.RemoveListener(id)
		slog.Debug("treemodel: unsubscribed", "node", n)
	}
}

// subscribeTree subscribes to the given node and, unless shallow,
// all of its descendants.
func (m *Model) subscribeTree(n *tree.Node) {
	if m.shallow() {
		m.subscribe(n)
		return
	}
	n.WalkDown(func(k *tree.Node) bool {
		m.subscribe(k)
		return tree.Continue
	})
}

// unsubscribeTree unsubscribes from the given node and, unless shallow,
// all of its descendants.
func (m *Model) unsubscribeTree(n *tree.Node) {
	if m.shallow() {
		m.unsubscribe(n)
		return
	}
	n.WalkDown(func(k *tree.Node) bool {
		m.unsubscribe(k)
		return tree.Continue
	})
}

// nodeChanged is the listener we register on every node we are subscribed to.
func (m *Model) nodeChanged(e *tree.ChangeEvent) {
	switch e.Kind() {
	case tree.NodeChanged:
		m.send(newEvent(m, NodesChanged, e))
	case tree.NodeInserted:
		for _, c := range e.Children() {
			m.subscribeTree(c)
		}
		m.send(newEvent(m, NodesInserted, e))
	case tree.NodeRemoved:
		if e.IsDestroyNotice() {
			// a node with a parent is removed from it next, and the
			// parent tells us about that
			src := e.Source()
			if src.Parent() != nil {
				return
			}
			// the root stays in place, so we keep listening to it
			if src == m.RootNode() {
				slog.Warn("treemodel: destroying the root node does not remove it from the model", "root", src)
			} else {
				m.unsubscribeTree(src)
			}
			m.send(newEvent(m, NodesRemoved, e))
			return
		}
		for _, c := range e.Children() {
			m.unsubscribeTree(c)
		}
		m.send(newEvent(m, NodesRemoved, e))
	case tree.StructureChanged:
		m.send(newEvent(m, StructureChanged, e))
	}
}

func (m *Model) send(e *Event) {
	events.Broadcast(&m.listeners, e, dispatch)
}

// newEvent returns the event of the given type for the given node change.
// Paths start at the root of the model, even if that has a parent.
func newEvent(m *Model, typ EventTypes, ce *tree.ChangeEvent) *Event {
	path := ce.Path()
	e := &Event{
		Type:         typ,
		Source:       m,
		ChildIndices: ce.ChildIndices(),
		Children:     toAny(ce.Children()),
	}
	root := m.RootNode()
	if i := slices.Index(path, root); i > 0 {
		if typ == NodesChanged && ce.Source() == root {
			// a change of the root itself, as for a root without a parent
			e.ChildIndices = nil
			return e
		}
		path = path[i:]
	}
	e.Path = toAny(path)
	return e
}

func toAny(ns []*tree.Node) []any {
	if ns == nil {
		return nil
	}
	as := make([]any, len(ns))
	for i, n := range ns {
		as[i] = n
	}
	return as
}
