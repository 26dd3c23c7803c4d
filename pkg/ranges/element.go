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

// Element describes a single visit made by a combinator to one element of a
// range.
type Element struct {
	// Value of the element.
	Value float64
	// Index of the element within the range.
	Index int
	// Range being traversed.
	Range *Range
	// Receiver is the context supplied to the combinator, which defaults to the
	// range itself.
	Receiver any
}

// Predicate is a callback which accepts, or rejects, an element.
type Predicate func(Element) bool

// Visitor is a callback invoked for its side effects on each element.
type Visitor func(Element)

// Reducer folds an element into an accumulated value.
type Reducer[A any] func(acc A, element Element) A

// Determine the receiver for a combinator given its (optional) receiver
// argument.
func (r *Range) receiverOf(receiver []any) any {
	if len(receiver) > 0 {
		return receiver[0]
	}
	//
	return r
}
