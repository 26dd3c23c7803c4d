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
	"fmt"
	"math"
	"strconv"

	"github.com/consensys/go-derange/pkg/util/collection/iter"
)

// Range is driven by the generic enumerator helpers.
var _ iter.Enumerator[float64] = (*Range)(nil)

// Kind identifies the variant of a range.  The kind of a range is preserved by
// every operation which constructs a range from another (e.g. Reverse).
type Kind uint8

// PLAIN identifies an ordinary range.
const PLAIN Kind = 0

// REVERSAL_CLOSED identifies a range whose reversal, and anything derived from
// its reversal, is itself reversal closed.
const REVERSAL_CLOSED Kind = 1

func (k Kind) String() string {
	if k == REVERSAL_CLOSED {
		return "derange"
	}
	//
	return "range"
}

// Range is a lazily evaluated arithmetic progression over the reals.  The
// elements of a range are start, start+step, start+2*step, etc, up to (but
// excluding) stop.  When step is negative, the elements descend towards stop.
// A range is never materialised: elements are produced on demand by advancing
// an internal cursor.
//
// The defining numbers (start, stop and step) never change after construction.
// The only mutable state is the cursor, which is shared by all consumers of a
// given range.  Every traversal performed by a combinator leaves the cursor at
// the start of the range when it returns.  Ranges are not safe for concurrent
// use.
type Range struct {
	start float64
	stop  float64
	step  float64
	// Position of the next element to be produced by Next.
	cursor float64
	kind   Kind
}

// New constructs a plain range from one, two or three parameters.  A single
// parameter is the (exclusive) stop, with the range starting from 0.  Two
// parameters give the start and stop.  A third parameter gives the step, where a
// step of 0 is treated as though no step was given (i.e. 1).  This panics when
// given any other number of parameters.
func New(params ...float64) *Range {
	return construct(PLAIN, params)
}

// NewDerange constructs a reversal closed range, using the same parameters as
// New.
func NewDerange(params ...float64) *Range {
	return construct(REVERSAL_CLOSED, params)
}

// Of constructs a range of the given kind with explicit start, stop and step.
// A step which is 0 (or not a number) is replaced with 1.
func Of(kind Kind, start float64, stop float64, step float64) *Range {
	if step == 0 || math.IsNaN(step) {
		step = 1
	}
	//
	return &Range{start, stop, step, start, kind}
}

func construct(kind Kind, params []float64) *Range {
	switch len(params) {
	case 1:
		return Of(kind, 0, params[0], 1)
	case 2:
		return Of(kind, params[0], params[1], 1)
	case 3:
		return Of(kind, params[0], params[1], params[2])
	default:
		panic(fmt.Sprintf("invalid range (expected 1-3 parameters, got %d)", len(params)))
	}
}

// Start returns the first candidate element of this range.
func (r *Range) Start() float64 {
	return r.start
}

// Stop returns the exclusive boundary of this range.
func (r *Range) Stop() float64 {
	return r.stop
}

// Step returns the increment between successive elements.  This is never 0.
func (r *Range) Step() float64 {
	return r.step
}

// Kind returns the variant of this range.
func (r *Range) Kind() Kind {
	return r.kind
}

// IsReversalClosed checks whether reversing this range yields another reversal
// closed range.
func (r *Range) IsReversalClosed() bool {
	return r.kind == REVERSAL_CLOSED
}

// Len returns the number of elements in this range.  This is a function of
// start, stop and step only, and is 0 whenever the sign of step disagrees with
// the ordering of start and stop.
func (r *Range) Len() int {
	if !r.within(r.start) {
		return 0
	}
	//
	return int(math.Ceil(math.Abs((r.stop - r.start) / r.step)))
}

// IsEmpty checks whether this range has no elements.
func (r *Range) IsEmpty() bool {
	return r.Len() == 0
}

// Last returns the final element of this range, or false if it is empty.  The
// final element is computed directly, rather than by accumulating steps.
func (r *Range) Last() (float64, bool) {
	n := r.Len()
	//
	if n == 0 {
		return 0, false
	}
	//
	return r.start + float64(n-1)*r.step, true
}

// Reverse returns a new range over the same elements in the opposite order.
// The result has the same kind as this range, and this range (including its
// cursor) is not modified.
func (r *Range) Reverse() *Range {
	last := r.start + float64(r.Len()-1)*r.step
	//
	return Of(r.kind, last, r.start-r.step, -r.step)
}

// Get returns the element at a given index.  A negative index is an offset from
// the end of the range.  An error is returned if the index is out of bounds.
func (r *Range) Get(index int) (float64, error) {
	n := r.Len()
	//
	if index < 0 {
		index += n
	}
	//
	if index < 0 || index >= n {
		return 0, fmt.Errorf("%w: index %d (length %d)", ErrIndexOutOfBounds, index, n)
	}
	//
	return r.start + float64(index)*r.step, nil
}

func (r *Range) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", r.kind, formatFloat(r.start), formatFloat(r.stop), formatFloat(r.step))
}

// Determine whether a given position lies before the boundary of this range,
// taking the direction of step into account.
func (r *Range) within(pos float64) bool {
	if r.step > 0 {
		return pos < r.stop
	}
	//
	return r.stop < pos
}

// Determine whether a value lies in the half-open interval covered by this
// range, in the direction implied by step.
func (r *Range) encloses(val float64) bool {
	if r.step > 0 {
		return r.start <= val && val < r.stop
	}
	//
	return r.stop < val && val <= r.start
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}
