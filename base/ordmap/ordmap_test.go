// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := &Map[string, int]{}
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	v, ok := om.ValueByKeyTry("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, om.Has("key2"))
	assert.Equal(t, 3, om.Len())

	om.Add("key1", 11)
	assert.Equal(t, []int{0, 11, 2}, om.Values())

	assert.True(t, om.DeleteKey("key0"))
	assert.False(t, om.DeleteKey("key0"))
	assert.Equal(t, []string{"key1", "key2"}, om.Keys())
	v, ok = om.ValueByKeyTry("key2")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	om.Reset()
	assert.Equal(t, 0, om.Len())
	_, ok = om.ValueByKeyTry("key1")
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	var om Map[int, string]
	assert.False(t, om.Has(1))
	om.Add(1, "one")
	assert.Equal(t, []int{1}, om.Keys())
	var nilMap *Map[int, string]
	assert.Equal(t, 0, nilMap.Len())
}
