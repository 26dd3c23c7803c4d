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

import (
	"iter"
)

// HasNext checks whether or not there are any elements remaining to visit.
// When there are none, the cursor is moved back to the start of the range, such
// that a subsequent traversal begins afresh.
//
//nolint:revive
func (r *Range) HasNext() bool {
	if r.within(r.cursor) {
		return true
	}
	// Exhausted
	r.Reset()
	//
	return false
}

// Next returns the element under the cursor, and advances the cursor.
//
//nolint:revive
func (r *Range) Next() float64 {
	next := r.cursor
	r.cursor += r.step
	//
	return next
}

// Reset moves the cursor back to the start of the range.  This is only needed
// after abandoning a traversal driven manually through HasNext and Next.
func (r *Range) Reset() {
	r.cursor = r.start
}

// Cursor returns the position of the next element to be produced by Next.
func (r *Range) Cursor() float64 {
	return r.cursor
}

// All returns an iterator over the elements of this range, for use with
// range-over-func loops.  Exiting a loop early resets the cursor.
func (r *Range) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		r.traverse(func(value float64, _ int) bool {
			return yield(value)
		})
	}
}

// Enumerate is like All, but additionally yields the index of each element.
func (r *Range) Enumerate() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		r.traverse(func(value float64, index int) bool {
			return yield(index, value)
		})
	}
}

// Collect allocates a new array containing every element of this range.
func (r *Range) Collect() []float64 {
	items := make([]float64, 0, r.Len())
	//
	r.traverse(func(value float64, _ int) bool {
		items = append(items, value)
		return true
	})
	//
	return items
}

// Traverse the elements of this range in order, stopping early if visit returns
// false.  The position reached is published through the cursor whilst visit
// runs, but the traversal keeps its own position so that a nested traversal of
// the same range (e.g. from within visit) cannot disturb it.  The cursor is
// always at the start when this returns.  The result indicates whether the
// traversal ran to completion.
func (r *Range) traverse(visit func(value float64, index int) bool) bool {
	var (
		index = 0
		pos   = r.start
	)
	//
	for r.within(pos) {
		next := pos + r.step
		// Publish position
		r.cursor = next
		//
		if !visit(pos, index) {
			// Short circuit
			r.Reset()
			//
			return false
		}
		//
		pos = next
		index++
	}
	// Natural completion
	r.Reset()
	//
	return true
}
