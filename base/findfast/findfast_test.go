// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findfast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e"}
	for want, e := range s {
		for st := -1; st <= len(s)+1; st++ {
			assert.Equal(t, want, Index(s, e, st), "element %q start %d", e, st)
		}
		assert.Equal(t, want, Index(s, e))
	}
	assert.Equal(t, -1, Index(s, "z"))
	assert.Equal(t, -1, Index(s, "z", 4))
	assert.Equal(t, -1, Index([]string{}, "a"))
}

func TestFindFuncFirstFromStart(t *testing.T) {
	s := []int{1, 2, 2, 3}
	assert.Equal(t, 1, FindFunc(s, func(e int) bool { return e == 2 }, 0))
	assert.Equal(t, 2, FindFunc(s, func(e int) bool { return e == 2 }, 2))
}
