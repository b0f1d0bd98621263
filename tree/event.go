// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// ChangeEvent describes one structural or display change of a tree.
// It is created at the moment of the change and can not be modified;
// its accessors return copies of the underlying slices.
type ChangeEvent struct {
	kind     Kinds
	source   *Node
	path     []*Node
	indices  []int
	children []*Node
}

// Kind returns the kind of change.
func (e *ChangeEvent) Kind() Kinds { return e.kind }

// Source returns the node that sent the event: the parent whose children
// changed, or the node whose display attributes changed.
func (e *ChangeEvent) Source() *Node { return e.source }

// Path returns the path from the root to the affected node, inclusive
// of both ends (see [Node.PathFromRoot]). It is nil for changes of a
// node that has no parent.
func (e *ChangeEvent) Path() []*Node { return slices.Clone(e.path) }

// ChildIndices returns the ascending indices of the affected children
// within the source's children.
func (e *ChangeEvent) ChildIndices() []int { return slices.Clone(e.indices) }

// Children returns the affected children, corresponding to [ChangeEvent.ChildIndices],
// or the source itself for a change of the source's own attributes.
func (e *ChangeEvent) Children() []*Node { return slices.Clone(e.children) }

// IsDestroyNotice returns whether this is the notice a node sends to its
// own listeners just before it is destroyed (see [Node.Destroy]). It has
// no path and no indices, and names the source as the only child.
func (e *ChangeEvent) IsDestroyNotice() bool {
	return e.kind == NodeRemoved && len(e.path) == 0 && len(e.indices) == 0 &&
		len(e.children) == 1 && e.children[0] == e.source
}

func (e *ChangeEvent) String() string {
	return fmt.Sprintf("%v{Source: %v, Path: %v, Indices: %v, Children: %v}", e.kind, e.source, e.path, e.indices, e.children)
}
