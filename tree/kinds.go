// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "strconv"

// Kinds are the kinds of structural or display change
// described by a [ChangeEvent].
type Kinds int32 //enums:enum

const (
	// NodeChanged is sent when the display attributes of a node,
	// such as its name or a property, have changed.
	NodeChanged Kinds = iota

	// NodeInserted is sent by a parent when a child has been inserted.
	NodeInserted

	// NodeRemoved is sent by a parent when a child has been removed,
	// and by a node itself just before it is destroyed.
	NodeRemoved

	// StructureChanged is sent when the structure below a node has
	// changed in a way not described by insertions and removals,
	// such as a reordering of its children.
	StructureChanged

	// KindsN is the number of kinds.
	KindsN
)

var kindsNames = [...]string{"NodeChanged", "NodeInserted", "NodeRemoved", "StructureChanged"}

// String returns the name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindsNames[k]
}

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds {
	return []Kinds{NodeChanged, NodeInserted, NodeRemoved, StructureChanged}
}
