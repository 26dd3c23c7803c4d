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

// Every checks whether the given predicate accepts every element.  This stops
// at the first element rejected.
func (r *Range) Every(predicate Predicate, receiver ...any) bool {
	ctx := r.receiverOf(receiver)
	//
	return r.traverse(func(value float64, index int) bool {
		return predicate(Element{value, index, r, ctx})
	})
}

// Some checks whether the given predicate accepts any element.  This stops at
// the first element accepted.
func (r *Range) Some(predicate Predicate, receiver ...any) bool {
	ctx := r.receiverOf(receiver)
	//
	return !r.traverse(func(value float64, index int) bool {
		return !predicate(Element{value, index, r, ctx})
	})
}

// Reduce folds the elements of this range from left to right, using the first
// element as the initial accumulator.  Thus, the reducer is not called for the
// first element.  As with every combinator, the optional receiver is passed to
// the reducer in each element.  An error is returned (without calling the reducer) if the
// range is empty.
func (r *Range) Reduce(reducer Reducer[float64], receiver ...any) (float64, error) {
	var (
		acc float64
		ctx = r.receiverOf(receiver)
	)
	//
	if r.IsEmpty() {
		return acc, ErrEmptyReduce
	}
	//
	r.traverse(func(value float64, index int) bool {
		if index == 0 {
			acc = value
		} else {
			acc = reducer(acc, Element{value, index, r, ctx})
		}
		//
		return true
	})
	//
	return acc, nil
}

// ReduceRight folds the elements of this range from right to left, using the
// last element as the initial accumulator.  Indices passed to the reducer are
// those of the elements in this range.  An error is returned (without calling
// the reducer) if the range is empty.
func (r *Range) ReduceRight(reducer Reducer[float64], receiver ...any) (float64, error) {
	var (
		acc float64
		n   = r.Len()
		ctx = r.receiverOf(receiver)
	)
	//
	if n == 0 {
		return acc, ErrEmptyReduce
	}
	//
	r.Reverse().traverse(func(value float64, i int) bool {
		if i == 0 {
			acc = value
		} else {
			acc = reducer(acc, Element{value, n - i - 1, r, ctx})
		}
		//
		return true
	})
	//
	return acc, nil
}

// Fold folds the elements of a range from left to right, starting from a given
// seed.  The seed is returned unchanged for an empty range.
func Fold[A any](r *Range, reducer Reducer[A], seed A, receiver ...any) A {
	var (
		acc = seed
		ctx = r.receiverOf(receiver)
	)
	//
	r.traverse(func(value float64, index int) bool {
		acc = reducer(acc, Element{value, index, r, ctx})
		return true
	})
	//
	return acc
}

// FoldRight folds the elements of a range from right to left, starting from a
// given seed.  The seed is returned unchanged for an empty range.
func FoldRight[A any](r *Range, reducer Reducer[A], seed A, receiver ...any) A {
	var (
		acc = seed
		n   = r.Len()
		ctx = r.receiverOf(receiver)
	)
	//
	r.Reverse().traverse(func(value float64, i int) bool {
		acc = reducer(acc, Element{value, n - i - 1, r, ctx})
		return true
	})
	//
	return acc
}
