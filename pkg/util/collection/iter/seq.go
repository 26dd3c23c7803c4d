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

import (
	"iter"
)

// Seq adapts an enumerator for use with range-over-func loops.  Exiting the
// loop early restarts the enumerator (when it supports this).
func Seq[T any](enumerator Enumerator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for enumerator.HasNext() {
			if !yield(enumerator.Next()) {
				Restart[T](enumerator)
				return
			}
		}
	}
}

// Seq2 is like Seq, but additionally yields the position of each item.
func Seq2[T any](enumerator Enumerator[T]) iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		index := uint(0)
		//
		for enumerator.HasNext() {
			if !yield(index, enumerator.Next()) {
				Restart[T](enumerator)
				return
			}

			index++
		}
	}
}
