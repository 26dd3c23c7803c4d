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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both variants must behave identically for every combinator.
var constructors = map[string]func(...float64) *Range{
	"range":   New,
	"derange": NewDerange,
}

func isEven(e Element) bool {
	return math.Mod(e.Value, 2) == 0
}

// spy records the elements it is called with, answering a fixed result.
type spy struct {
	result bool
	calls  []Element
}

func (s *spy) predicate(e Element) bool {
	s.calls = append(s.calls, e)
	return s.result
}

func Test_Map_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			squares := Map(ctor(5), func(e Element) float64 { return e.Value * e.Value })
			assert.Equal(t, []float64{0, 1, 4, 9, 16}, squares)

			r := ctor(5, 10)
			labels := Map(r, func(e Element) int { return e.Index })
			assert.Equal(t, []int{0, 1, 2, 3, 4}, labels)
		})
	}
}

func Test_ForEach_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			var visited []Element
			r := ctor(5, 10)
			r.ForEach(func(e Element) { visited = append(visited, e) })

			require.Len(t, visited, 5)
			assert.Equal(t, Element{8, 3, r, r}, visited[3])
		})
	}
}

func Test_Receiver_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			r := ctor(22, 33, 0.25)
			other := &spy{}
			check := func(expected any) Predicate {
				return func(e Element) bool {
					assert.Same(t, r, e.Range)
					assert.Equal(t, expected, e.Receiver)
					return true
				}
			}
			// Defaults to the range
			r.Every(check(r))
			r.Some(check(r))
			r.Filter(check(r))
			r.Find(check(r))
			r.FindIndex(check(r))
			r.ForEach(func(e Element) { check(r)(e) })
			Map(r, func(e Element) bool { return check(r)(e) })
			// Replaced when given
			r.Every(check(other), other)
			r.Some(check(other), other)
			r.Filter(check(other), other)
			r.Find(check(other), other)
			r.FindIndex(check(other), other)
			r.ForEach(func(e Element) { check(other)(e) }, other)
			Map(r, func(e Element) bool { return check(other)(e) }, other)
		})
	}
}

func Test_Receiver_02(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			r := ctor(1, 5)
			other := &spy{}
			check := func(expected any) Reducer[float64] {
				return func(acc float64, e Element) float64 {
					assert.Same(t, r, e.Range)
					assert.Equal(t, expected, e.Receiver)
					return acc + e.Value
				}
			}
			// Defaults to the range
			sum, err := r.Reduce(check(r))
			require.NoError(t, err)
			assert.Equal(t, 10.0, sum)
			sum, err = r.ReduceRight(check(r))
			require.NoError(t, err)
			assert.Equal(t, 10.0, sum)
			assert.Equal(t, 10.0, Fold(r, check(r), 0))
			assert.Equal(t, 10.0, FoldRight(r, check(r), 0))
			// Replaced when given
			sum, err = r.Reduce(check(other), other)
			require.NoError(t, err)
			assert.Equal(t, 10.0, sum)
			sum, err = r.ReduceRight(check(other), other)
			require.NoError(t, err)
			assert.Equal(t, 10.0, sum)
			assert.Equal(t, 10.0, Fold(r, check(other), 0, other))
			assert.Equal(t, 10.0, FoldRight(r, check(other), 0, other))
		})
	}
}

func Test_Every_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			yes, no := &spy{result: true}, &spy{result: false}

			assert.True(t, ctor(5).Every(yes.predicate))
			assert.Len(t, yes.calls, 5)

			assert.False(t, ctor(5).Every(no.predicate))
			assert.Len(t, no.calls, 1)

			r := ctor(5, 10)
			yes.calls = nil
			r.Every(yes.predicate)
			assert.Equal(t, Element{7, 2, r, r}, yes.calls[2])

			assert.True(t, ctor(0, 10, 2).Every(isEven))
			assert.False(t, ctor(0, 10).Every(isEven))
			assert.True(t, ctor(0).Every(no.predicate))
		})
	}
}

func Test_Some_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			yes, no := &spy{result: true}, &spy{result: false}

			assert.False(t, ctor(5).Some(no.predicate))
			assert.Len(t, no.calls, 5)

			assert.True(t, ctor(5).Some(yes.predicate))
			assert.Len(t, yes.calls, 1)

			r := ctor(5, 10)
			no.calls = nil
			r.Some(no.predicate)
			assert.Equal(t, Element{9, 4, r, r}, no.calls[4])

			assert.True(t, ctor(0, 10, 2).Some(isEven))
			assert.False(t, ctor(1, 11, 2).Some(isEven))
			assert.False(t, ctor(0).Some(yes.predicate))
		})
	}
}

func Test_Filter_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			yes, no := &spy{result: true}, &spy{result: false}

			assert.Empty(t, ctor(5).Filter(no.predicate))
			assert.Len(t, no.calls, 5)

			assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, ctor(9).Filter(yes.predicate))

			r := ctor(2, 12, 2)
			no.calls = nil
			r.Filter(no.predicate)
			assert.Equal(t, Element{8, 3, r, r}, no.calls[3])

			assert.Equal(t, []float64{0, 2, 4, 6}, ctor(0, 7).Filter(isEven))
			assert.Empty(t, ctor(1, 11, 2).Filter(isEven))
		})
	}
}

func Test_Find_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			yes, no := &spy{result: true}, &spy{result: false}

			assert.True(t, ctor(5).Find(no.predicate).IsEmpty())
			assert.Len(t, no.calls, 5)

			assert.Equal(t, 0.0, ctor(9).Find(yes.predicate).Unwrap())
			assert.Len(t, yes.calls, 1)

			r := ctor(2, 12, 2)
			no.calls = nil
			r.Find(no.predicate)
			assert.Equal(t, Element{8, 3, r, r}, no.calls[3])

			multipleOf4 := func(e Element) bool { return math.Mod(e.Value, 4) == 0 }
			assert.Equal(t, 4.0, ctor(1, 7).Find(multipleOf4).Unwrap())
			assert.False(t, ctor(1, 11, 2).Find(isEven).HasValue())
		})
	}
}

func Test_FindIndex_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			yes, no := &spy{result: true}, &spy{result: false}

			assert.Equal(t, -1, ctor(5).FindIndex(no.predicate))
			assert.Len(t, no.calls, 5)

			assert.Equal(t, 0, ctor(9).FindIndex(yes.predicate))
			assert.Len(t, yes.calls, 1)

			multipleOf4 := func(e Element) bool { return math.Mod(e.Value, 4) == 0 }
			assert.Equal(t, 3, ctor(1, 7).FindIndex(multipleOf4))
			assert.Equal(t, -1, ctor(1, 11, 2).FindIndex(isEven))
		})
	}
}

func Test_IndexOf_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 3, ctor(0, 10, 2).IndexOf(6))
			assert.Equal(t, 2, ctor(10, 0, -2).IndexOf(6))
			assert.Equal(t, 0, ctor(10).IndexOf(0))
			// Not present
			assert.Equal(t, -1, ctor(0, 10, 2).IndexOf(5))
			assert.Equal(t, -1, ctor(0, 10, 2).IndexOf(10))
			assert.Equal(t, -1, ctor(10, 0, -2).IndexOf(0))
			assert.Equal(t, -1, ctor(10).IndexOf(-1))
			assert.Equal(t, -1, ctor(0).IndexOf(0))
			// From index
			assert.Equal(t, 4, ctor(5).IndexOfFrom(4, 2))
			assert.Equal(t, -1, ctor(10).IndexOfFrom(4, 5))
			assert.Equal(t, 8, ctor(10).IndexOfFrom(8, -4))
			assert.Equal(t, -1, ctor(10).IndexOfFrom(3, -3))
			assert.Equal(t, 3, ctor(10).IndexOfFrom(3, -30))
		})
	}
}

func Test_Includes_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			assert.True(t, ctor(0, 10, 2).Includes(6))
			assert.True(t, ctor(10, 0, -2).Includes(6))
			assert.True(t, ctor(10).Includes(0))
			assert.False(t, ctor(0, 10, 2).Includes(5))
			assert.True(t, ctor(5).IncludesFrom(4, 2))
			assert.False(t, ctor(10).IncludesFrom(4, 5))
			assert.True(t, ctor(10).IncludesFrom(8, -4))
			assert.False(t, ctor(10).IncludesFrom(3, -3))
		})
	}
}

func Test_LastIndexOf_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 6, ctor(12, 24).LastIndexOf(18))
			assert.Equal(t, -1, ctor(12, 22).LastIndexOf(4))
			assert.Equal(t, 2, ctor(22, 11, -3).LastIndexOf(16))
			// From index
			assert.Equal(t, 1, ctor(5, 10).LastIndexOfFrom(6, 4))
			assert.Equal(t, -1, ctor(5, 10).LastIndexOfFrom(9, 3))
			assert.Equal(t, 2, ctor(5, 10).LastIndexOfFrom(7, 10))
			// Negative from index
			assert.Equal(t, 1, ctor(5, 10).LastIndexOfFrom(6, -2))
			assert.Equal(t, -1, ctor(5, 10).LastIndexOfFrom(9, -3))
			assert.Equal(t, -1, ctor(10).LastIndexOfFrom(4, -12))
		})
	}
}

func Test_Reduce_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			var calls []Element
			r := ctor(5, 10)
			sum, err := r.Reduce(func(acc float64, e Element) float64 {
				calls = append(calls, e)
				return acc + e.Value
			})

			require.NoError(t, err)
			assert.Equal(t, 35.0, sum)
			// First element seeds the fold
			require.Len(t, calls, 4)
			assert.Equal(t, Element{8, 3, r, r}, calls[2])
		})
	}
}

func Test_ReduceRight_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			var (
				calls []Element
				accs  []float64
			)
			r := ctor(5)
			sum, err := r.ReduceRight(func(acc float64, e Element) float64 {
				calls = append(calls, e)
				accs = append(accs, acc)
				return acc + e.Value
			})

			require.NoError(t, err)
			assert.Equal(t, 10.0, sum)
			// Last element seeds the fold
			require.Len(t, calls, 4)
			assert.Equal(t, 4.0, accs[0])
			assert.Equal(t, Element{3, 3, r, r}, calls[0])
			assert.Equal(t, Element{0, 0, r, r}, calls[3])
		})
	}
}

func Test_Reduce_02(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			called := false
			reducer := func(acc float64, _ Element) float64 {
				called = true
				return acc
			}

			_, err := ctor(0).Reduce(reducer)
			require.ErrorIs(t, err, ErrEmptyReduce)
			_, err = ctor(10, 1).ReduceRight(reducer)
			require.ErrorIs(t, err, ErrEmptyReduce)
			// Seeded folds return the seed
			assert.Equal(t, 42.0, Fold(ctor(0), reducer, 42))
			assert.Equal(t, 42.0, FoldRight(ctor(0), reducer, 42))
			assert.False(t, called)
		})
	}
}

func Test_Fold_01(t *testing.T) {
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			parity := func(acc map[float64]bool, e Element) map[float64]bool {
				acc[e.Value] = math.Mod(e.Value, 2) == 0
				return acc
			}
			expected := map[float64]bool{0: true, 1: false, 2: true, 3: false, 4: true}
			assert.Equal(t, expected, Fold(ctor(5), parity, map[float64]bool{}))
			assert.Equal(t, expected, FoldRight(ctor(5), parity, map[float64]bool{}))
			assert.Equal(t, 10.0, Fold(ctor(5), func(acc float64, e Element) float64 { return acc + e.Value }, 0))
		})
	}
}

func Test_Fold_02(t *testing.T) {
	var calls []Element
	r := NewDerange(5, 10)
	digits := FoldRight(r, func(acc []float64, e Element) []float64 {
		calls = append(calls, e)
		return append(acc, e.Value)
	}, nil)

	assert.Equal(t, []float64{9, 8, 7, 6, 5}, digits)
	require.Len(t, calls, 5)
	assert.Equal(t, Element{8, 3, r, r}, calls[1])
}
