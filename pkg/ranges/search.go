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

import "github.com/consensys/go-derange/pkg/util"

// Find returns the first element accepted by the given predicate, or nothing if
// no element is accepted.  An optional receiver replaces the range as the
// Receiver of each visited element.
func (r *Range) Find(predicate Predicate, receiver ...any) util.Option[float64] {
	if index, value := find(r, predicate, r.receiverOf(receiver)); index >= 0 {
		return util.Some(value)
	}
	//
	return util.None[float64]()
}

// FindIndex returns the index of the first element accepted by the given
// predicate, or -1 if no element is accepted.
func (r *Range) FindIndex(predicate Predicate, receiver ...any) int {
	index, _ := find(r, predicate, r.receiverOf(receiver))
	//
	return index
}

// IndexOf returns the index of the first element equal to the given value, or
// -1 if there is none.
func (r *Range) IndexOf(element float64) int {
	return r.IndexOfFrom(element, 0)
}

// IndexOfFrom returns the index of the first element equal to the given value
// at, or after, a given index.  A negative fromIndex is an offset from the end
// of the range.  This returns -1 if there is no such element.
func (r *Range) IndexOfFrom(element float64, fromIndex int) int {
	// Values outside the interval cannot match
	if !r.encloses(element) {
		return -1
	}
	//
	if fromIndex < 0 {
		fromIndex += r.Len()
	}
	//
	index := -1
	//
	r.traverse(func(value float64, i int) bool {
		if i >= fromIndex && value == element {
			index = i
			return false
		}
		//
		return true
	})
	//
	return index
}

// Includes checks whether any element equals the given value.
func (r *Range) Includes(element float64) bool {
	return r.IndexOfFrom(element, 0) != -1
}

// IncludesFrom checks whether any element at, or after, a given index equals the
// given value.  A negative fromIndex is an offset from the end of the range.
func (r *Range) IncludesFrom(element float64, fromIndex int) bool {
	return r.IndexOfFrom(element, fromIndex) != -1
}

// LastIndexOf returns the index of the last element equal to the given value,
// or -1 if there is none.
func (r *Range) LastIndexOf(element float64) int {
	return r.LastIndexOfFrom(element, r.Len())
}

// LastIndexOfFrom returns the index of the last element equal to the given
// value at, or before, a given index.  A negative fromIndex is an offset from the
// end of the range.  This returns -1 if there is no such element.  The search is
// performed forwards over the reversed range.
func (r *Range) LastIndexOfFrom(element float64, fromIndex int) int {
	n := r.Len()
	// Mirror fromIndex into the reversed range
	switch {
	case fromIndex >= n:
		fromIndex = 0
	case fromIndex < 0:
		fromIndex = -fromIndex - 1
	default:
		fromIndex = n - fromIndex - 1
	}
	//
	inverse := r.Reverse().IndexOfFrom(element, fromIndex)
	//
	if inverse == -1 {
		return -1
	}
	//
	return n - inverse - 1
}

// Search for the first element accepted by a predicate, returning its index
// and value.  The index is -1 when no element is accepted.
func find(r *Range, predicate Predicate, receiver any) (int, float64) {
	var (
		index = -1
		value float64
	)
	//
	r.traverse(func(v float64, i int) bool {
		if predicate(Element{v, i, r, receiver}) {
			index, value = i, v
			return false
		}
		//
		return true
	})
	//
	return index, value
}
