// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ranges

import "github.com/benbjohnson/immutable"

// Set is a persistent set of ranges, where ranges with the same defining
// numbers are considered the same (see Range.Equals).  Ranges are kept in the
// order they were first added.  Adding to a set returns a new set, leaving the
// original unchanged.
type Set struct {
	// Maps each range to its position in items.
	index *immutable.Map
	// Ranges in insertion order.
	items *immutable.List
}

// NewSet constructs a set from zero or more ranges.
func NewSet(items ...*Range) Set {
	set := Set{immutable.NewMap(hasher{}), immutable.NewList()}
	//
	for _, r := range items {
		set = set.Add(r)
	}
	//
	return set
}

// Add a range to this set, returning the updated set.  If an equal range is
// already present, the set is returned unchanged.
func (s Set) Add(r *Range) Set {
	s = s.init()
	//
	if s.Contains(r) {
		return s
	}
	//
	return Set{s.index.Set(r, s.items.Len()), s.items.Append(r)}
}

// Contains checks whether an equal range is in this set.
func (s Set) Contains(r *Range) bool {
	return s.IndexOf(r) >= 0
}

// IndexOf returns the position (in insertion order) of a range equal to the
// given range, or -1 if there is none.
func (s Set) IndexOf(r *Range) int {
	if s.index == nil {
		return -1
	} else if i, ok := s.index.Get(r); ok {
		return i.(int)
	}
	//
	return -1
}

// Len returns the number of ranges in this set.
func (s Set) Len() int {
	if s.items == nil {
		return 0
	}
	//
	return s.items.Len()
}

// Items returns the ranges in this set in insertion order.
func (s Set) Items() []*Range {
	items := make([]*Range, 0, s.Len())
	//
	if s.items == nil {
		return items
	}
	//
	itr := s.items.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		items = append(items, v.(*Range))
	}
	//
	return items
}

// Initialise the zero set.
func (s Set) init() Set {
	if s.index == nil {
		return Set{immutable.NewMap(hasher{}), immutable.NewList()}
	}
	//
	return s
}

type hasher struct{}

func (h hasher) Hash(key interface{}) uint32 {
	return key.(*Range).Hash()
}

func (h hasher) Equal(a, b interface{}) bool {
	return a.(*Range).Equals(b.(*Range))
}
