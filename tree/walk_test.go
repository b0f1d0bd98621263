// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/livetree/tree"
)

func newTestTree() (root, subchild1 *Node) {
	root = New("root")
	child1 := New("child1")
	subchild1 = New("subchild1")
	root.Add(New("child0"))
	root.Add(child1)
	child1.Add(subchild1)
	subchild1.Add(New("subsubchild1"))
	root.Add(New("child2"))
	return
}

func TestWalkDown(t *testing.T) {
	root, _ := newTestTree()
	res := []string{}
	root.WalkDown(func(k *Node) bool {
		res = append(res, k.Path())
		return Continue
	})
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2"}, res)

	res = res[:0]
	root.WalkDown(func(k *Node) bool {
		res = append(res, k.Name())
		return k.Name() != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)
}

func TestWalkUp(t *testing.T) {
	_, subchild1 := newTestTree()
	res := []string{}
	assert.True(t, subchild1.WalkUp(func(k *Node) bool {
		res = append(res, k.Name())
		return Continue
	}))
	assert.Equal(t, []string{"subchild1", "child1", "root"}, res)

	res = res[:0]
	assert.False(t, subchild1.WalkUp(func(k *Node) bool {
		res = append(res, k.Name())
		return k.Name() != "child1"
	}))
	assert.Equal(t, []string{"subchild1", "child1"}, res)
}

func TestWalkDownMutating(t *testing.T) {
	root, _ := newTestTree()
	// removing children while walking is safe since children are copied
	root.WalkDown(func(k *Node) bool {
		if k != root {
			assert.NoError(t, k.RemoveFromParent())
		}
		return Continue
	})
	assert.True(t, root.IsLeaf())
}
