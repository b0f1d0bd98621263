// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on this node and then on each of its
// parents in turn, until the function returns [Break] or the root has
// been visited. It returns whether it reached the root, that is, whether
// no call returned [Break].
func (n *Node) WalkUp(fun func(k *Node) bool) bool {
	for k := n; k != nil; k = k.Parent() {
		if !fun(k) {
			return Break
		}
	}
	return Continue
}

// WalkDown calls the given function on this node and then on all of its
// descendants in depth-first pre-order. If the function returns [Break]
// for a node, the children of that node are skipped. The children of
// each node are copied before they are visited, so the function can
// safely modify the tree.
func (n *Node) WalkDown(fun func(k *Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.Children() {
		k.WalkDown(fun)
	}
}

// Root returns the root of the tree containing the given node,
// which is the node itself if it has no parent.
func Root(n *Node) *Node {
	root := n
	n.WalkUp(func(k *Node) bool {
		root = k
		return Continue
	})
	return root
}

// IsRoot returns whether the given node has no parent.
func IsRoot(n *Node) bool {
	return n.Parent() == nil
}
