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

// Map applies a function to each element of a range in order, returning the
// results.
func Map[T any](r *Range, fn func(Element) T, receiver ...any) []T {
	var (
		ctx   = r.receiverOf(receiver)
		items = make([]T, 0, r.Len())
	)
	//
	r.traverse(func(value float64, index int) bool {
		items = append(items, fn(Element{value, index, r, ctx}))
		return true
	})
	//
	return items
}

// ForEach calls the visitor on each element in order.
func (r *Range) ForEach(visitor Visitor, receiver ...any) {
	ctx := r.receiverOf(receiver)
	//
	r.traverse(func(value float64, index int) bool {
		visitor(Element{value, index, r, ctx})
		return true
	})
}

// Filter returns those elements accepted by the given predicate, in order.
func (r *Range) Filter(predicate Predicate, receiver ...any) []float64 {
	var (
		ctx   = r.receiverOf(receiver)
		items = make([]float64, 0)
	)
	//
	r.traverse(func(value float64, index int) bool {
		if predicate(Element{value, index, r, ctx}) {
			items = append(items, value)
		}
		//
		return true
	})
	//
	return items
}
