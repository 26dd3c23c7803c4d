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
package pipeline

import (
	"errors"
	"testing"

	"github.com/consensys/go-derange/pkg/ranges"
	"github.com/consensys/go-derange/pkg/util/collection/iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Eval_01(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"range 10", "range(0, 10, 1)"},
		{"range 10 | list", "[0 1 2 3 4 5 6 7 8 9]"},
		{"range 1 12 3 | list", "[1 4 7 10]"},
		{"range 22 11 -3 | list", "[22 19 16 13]"},
		{"range 1 3 0 | list", "[1 2]"},
		{"range 1 12 3 | reverse | list", "[10 7 4 1]"},
		{"derange 5 | reverse", "derange(4, -1, -1)"},
		{"range 55 22 -6 | length", "6"},
		{"range 40 20 | length", "0"},
		{"range 0 10 2 | indexof 6", "3"},
		{"range 10 0 -2 | indexof 6", "2"},
		{"range 10 | indexof 8 -4", "8"},
		{"range 12 24 | lastindexof 18", "6"},
		{"range 5 10 | lastindexof 6 -2", "1"},
		{"range 0 10 2 | includes 5", "false"},
		{"range 5 | includes 4 2", "true"},
		{"range 1 12 3 | get -1", "10"},
		{"range 0 10 2 | every even", "true"},
		{"range 1 11 2 | some even", "false"},
		{"range 1 7 | find gt 3", "4"},
		{"range 1 11 2 | find even", "none"},
		{"range 1 7 | findindex ge 4", "3"},
		{"range 0 7 | filter even", "[0 2 4 6]"},
		{"range 5 | map sq", "[0 1 4 9 16]"},
		{"range 5 | map mul 0.5 | reverse", "[2 1.5 1 0.5 0]"},
		{"range 5 | filter odd | length", "2"},
		{"range 5 | filter gt 1 | reduce add", "9"},
		{"range 5 | reduce add", "10"},
		{"derange 5 | reduceright add", "10"},
		{"range 1 5 | reduceright sub", "-2"},
		{"range 4 | reduce max", "3"},
		{"range 0 | fold add 7", "7"},
		{"range 1 4 | foldright mul 2", "12"},
		{"range -2 1 0.5 | list", "[-2 -1.5 -1 -0.5 0 0.5]"},
		{"range 5|reverse|list", "[4 3 2 1 0]"},
		{"range 10 | filter odd | get 2", "5"},
		{"range 10 | filter odd | get -1", "9"},
		{"range 10 | map sq | indexof 49", "7"},
		{"range 10 | map sq | indexof 50", "-1"},
		{"range 5 0 NaN | list", "[]"},
		{"range 0 3 NaN | list", "[0 1 2]"},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			value, err := Eval(test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.expected, value.String())
		})
	}
}

func Test_Eval_02(t *testing.T) {
	tests := []struct {
		expr  string
		start int
		end   int
	}{
		{"", 0, 0},
		{"list 10", 0, 4},
		{"range", 0, 5},
		{"range 1 2 3 4", 12, 13},
		{"range x", 6, 7},
		{"range 10 |", 10, 10},
		{"range 10 | | list", 11, 12},
		{"range 10 | shuffle", 11, 18},
		{"range 10 | get", 11, 14},
		{"range 10 | get 1.5", 15, 18},
		{"range 10 | every", 11, 16},
		{"range 10 | every big", 17, 20},
		{"range 10 | every gt", 11, 19},
		{"range 10 | reverse now", 19, 22},
		{"range 10 | map pow 2", 15, 18},
		{"range 10 | reduce", 11, 17},
		{"range 10 | fold add", 11, 19},
		{"range 10 | filter even | get", 25, 28},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			_, err := Eval(test.expr)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, NewSpan(test.start, test.end), syntaxErr.Span(), syntaxErr.Message())
		})
	}
}

func Test_Eval_03(t *testing.T) {
	_, err := Eval("range 0 | reduce add")
	assert.True(t, errors.Is(err, ranges.ErrEmptyReduce))

	_, err = Eval("range 10 1 | reduceright mul")
	assert.True(t, errors.Is(err, ranges.ErrEmptyReduce))

	_, err = Eval("range 3 | filter gt 5 | reduce add")
	assert.True(t, errors.Is(err, ranges.ErrEmptyReduce))

	_, err = Eval("range 3 | get 3")
	assert.True(t, errors.Is(err, ranges.ErrIndexOutOfBounds))

	_, err = Eval("range 6 | filter even | get 3")
	assert.True(t, errors.Is(err, ranges.ErrIndexOutOfBounds))
}

func Test_Parse_01(t *testing.T) {
	expr, err := Parse("derange 1 12 3 | every gt 2 | reverse")
	require.NoError(t, err)

	assert.Equal(t, "derange", expr.Source.Name.Text)
	require.Len(t, expr.Source.Args, 3)
	assert.Equal(t, NewSpan(13, 14), expr.Source.Args[2].Span)
	require.Len(t, expr.Stages, 2)
	assert.Equal(t, "every", expr.Stages[0].Name.Text)
	assert.Equal(t, NewSpan(17, 27), expr.Stages[0].Span())

	r, err := expr.Range()
	require.NoError(t, err)
	assert.True(t, r.IsReversalClosed())
	assert.Equal(t, 4, r.Len())
}

func Test_List_01(t *testing.T) {
	list := NewList(1, 2.5, 3)

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, 2.5, list.Get(1))
	assert.Equal(t, []float64{1, 2.5, 3}, list.Slice())
	assert.Equal(t, "[1 2.5 3]", list.String())
	assert.Equal(t, "[]", NewList().String())
	// Enumerators can be restarted
	items := list.Enumerator()
	assert.Equal(t, 2.5, iter.Nth[float64](items, 1))
	assert.Equal(t, []float64{1, 2.5, 3}, iter.Collect[float64](items))

}

func Test_Session_01(t *testing.T) {
	session := NewSession()

	for _, expr := range []string{"range 5 | list", "derange 0 5 | reverse", "range 1 12 3", "range 5 | get 9", "range 0 5 1 | length"} {
		_, _ = session.Eval(expr)
	}

	_, err := session.Eval("bogus")
	require.Error(t, err)

	var seen []string
	for _, r := range session.Ranges() {
		seen = append(seen, r.String())
	}

	assert.Equal(t, []string{"range(0, 5, 1)", "range(1, 12, 3)"}, seen)
	assert.Equal(t, uint(4), session.Count())
}
