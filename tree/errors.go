// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "cogentcore.org/livetree/base/errors"

// Errors returned by tree operations. They indicate a programmer error
// in the caller; no operation is ever retried internally. Returned errors
// wrap one of these, so use [errors.Is] to test for them.
var (
	// ErrInvalidArgument is returned for out-of-range indices, nil nodes,
	// insertions that would create a cycle, and removal of a node
	// that is not a direct child.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned for operations on a detached node
	// that require it to have a parent, and for an insertion whose child
	// was given another parent while it was being detached.
	ErrInvalidState = errors.New("invalid state")
)
