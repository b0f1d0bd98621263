// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements an optimized bidirectional slice searching
// algorithm that can save a lot of time if you have some rough idea
// as to where an item might be.
package findfast

// Index returns the index of the given target in the slice, searching
// outward from the optional start index. See [FindFunc].
func Index[T comparable](s []T, target T, startIndex ...int) int {
	return FindFunc(s, func(e T) bool { return e == target }, startIndex...)
}

// FindFunc returns the index of the first item found in the slice that
// satisfies the given match function. The search starts at the optional
// start index (the middle of the slice by default) and alternates
// outward in both directions, so it is fastest when the caller has a
// good guess of where the item is, such as a previously cached index.
// It returns -1 if no item matches.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	if si == 0 {
		for i, e := range s {
			if match(e) {
				return i
			}
		}
		return -1
	}
	up, down := si+1, si
	for up < n || down >= 0 {
		if down >= 0 {
			if match(s[down]) {
				return down
			}
			down--
		}
		if up < n {
			if match(s[up]) {
				return up
			}
			up++
		}
	}
	return -1
}
