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
package iter

// Enumerator abstracts the process of iterating over a sequence of elements
// using a cursor.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Resettable is implemented by enumerators whose cursor can be moved back to
// the first element.  Helpers in this package which stop before an enumerator
// is exhausted reset it when possible, such that the enumerator can be
// traversed again from the beginning.
type Resettable interface {
	// Reset moves the cursor back to the first element.
	Reset()
}

// Restart resets the given enumerator when it supports this, and otherwise
// does nothing.
func Restart[T any](iter Enumerator[T]) {
	if r, ok := iter.(Resettable); ok {
		r.Reset()
	}
}
