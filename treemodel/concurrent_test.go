// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemodel_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/livetree/tree"
	. "cogentcore.org/livetree/treemodel"
)

func TestModelConcurrentSubtrees(t *testing.T) {
	const workers, perWorker = 8, 20
	root := tree.New("root")
	m := NewModel(root)
	var changed atomic.Int64
	m.AddListener(ListenerFunc(func(e *Event) {
		if e.Type == NodesChanged {
			changed.Add(1)
		}
	}))

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			branch := tree.New(fmt.Sprintf("branch%d", w))
			if err := root.Add(branch); err != nil {
				return err
			}
			for i := range perWorker {
				n := tree.New(fmt.Sprintf("n%d-%d", w, i))
				leaf := tree.New("leaf")
				if err := n.Add(leaf); err != nil {
					return err
				}
				if err := branch.Add(n); err != nil {
					return err
				}
				leaf.SetName(fmt.Sprintf("leaf%d-%d", w, i))
				if i%2 == 1 {
					if err := n.RemoveFromParent(); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(workers*perWorker), changed.Load())
	reachable := 0
	root.WalkDown(func(k *tree.Node) bool {
		reachable++
		assert.True(t, m.Subscribed(k), k.Path())
		return tree.Continue
	})
	// root, branches, and half of the nodes with their leaves
	assert.Equal(t, 1+workers+workers*perWorker, reachable)
	assert.Equal(t, reachable, m.NumSubscribed())
}
