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
	"fmt"

	"github.com/consensys/go-derange/pkg/ranges"
	"github.com/consensys/go-derange/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
)

// Eval parses and evaluates a pipeline expression.
func Eval(text string) (Value, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	//
	return expr.Eval()
}

// Range constructs the range described by the source stage of this expression.
func (e *Expr) Range() (*ranges.Range, error) {
	if err := expectArgsBetween(e.Source, 1, 3); err != nil {
		return nil, err
	}
	//
	params := make([]float64, len(e.Source.Args))
	//
	for i, arg := range e.Source.Args {
		val, err := parseNumber(arg)
		if err != nil {
			return nil, err
		}
		//
		params[i] = val
	}
	//
	if e.Source.Name.Text == "derange" {
		return ranges.NewDerange(params...), nil
	}
	//
	return ranges.New(params...), nil
}

// Eval evaluates this expression, applying each stage in turn.
func (e *Expr) Eval() (Value, error) {
	r, err := e.Range()
	if err != nil {
		return nil, err
	}
	//
	var value Value = Sequence{r}
	//
	for _, stage := range e.Stages {
		log.Debugf("applying %s to %s", stage.Name.Text, value)
		//
		if value, err = apply(stage, value); err != nil {
			return nil, err
		}
	}
	//
	return value, nil
}

// Apply a given stage to a given value.
func apply(stage Stage, value Value) (Value, error) {
	switch v := value.(type) {
	case Sequence:
		return applySequence(stage, v.Range)
	case List:
		return applyList(stage, v)
	}
	//
	return nil, newSyntaxError(stage.Name.Span, fmt.Sprintf("cannot apply \"%s\" to %s", stage.Name.Text, value))
}

//nolint:gocyclo
func applySequence(stage Stage, r *ranges.Range) (Value, error) {
	switch stage.Name.Text {
	case "reverse":
		return Sequence{r.Reverse()}, expectArgs(stage, 0)
	case "length":
		return Integer(r.Len()), expectArgs(stage, 0)
	case "list":
		return NewList(r.Collect()...), expectArgs(stage, 0)
	case "get":
		if err := expectArgs(stage, 1); err != nil {
			return nil, err
		}
		//
		index, err := parseIndex(stage.Args[0])
		if err != nil {
			return nil, err
		}
		//
		val, err := r.Get(index)
		if err != nil {
			return nil, wrapError(stage.Span(), err)
		}
		//
		return Number(val), nil
	case "indexof", "lastindexof", "includes":
		return applySearch(stage, r)
	case "every":
		predicate, err := parsePredicate(stage)
		if err != nil {
			return nil, err
		}
		//
		return Boolean(r.Every(predicate)), nil
	case "some":
		predicate, err := parsePredicate(stage)
		if err != nil {
			return nil, err
		}
		//
		return Boolean(r.Some(predicate)), nil
	case "find":
		predicate, err := parsePredicate(stage)
		if err != nil {
			return nil, err
		}
		//
		return Maybe(r.Find(predicate)), nil
	case "findindex":
		predicate, err := parsePredicate(stage)
		if err != nil {
			return nil, err
		}
		//
		return Integer(r.FindIndex(predicate)), nil
	case "filter":
		predicate, err := parsePredicate(stage)
		if err != nil {
			return nil, err
		}
		//
		return NewList(r.Filter(predicate)...), nil
	case "map":
		fn, err := parseFunction(stage)
		if err != nil {
			return nil, err
		}
		//
		return NewList(ranges.Map(r, func(e ranges.Element) float64 { return fn(e.Value) })...), nil
	case "reduce", "reduceright", "fold", "foldright":
		return applyReduction(stage, r)
	}
	//
	return nil, newSyntaxError(stage.Name.Span, fmt.Sprintf("unknown operation \"%s\"", stage.Name.Text))
}

// Apply one of the search operations (indexof, lastindexof or includes), each
// of which accepts a value and an optional index to search from.
func applySearch(stage Stage, r *ranges.Range) (Value, error) {
	if err := expectArgsBetween(stage, 1, 2); err != nil {
		return nil, err
	}
	//
	element, err := parseNumber(stage.Args[0])
	if err != nil {
		return nil, err
	}
	//
	var (
		hasFrom   = len(stage.Args) == 2
		fromIndex int
	)
	//
	if hasFrom {
		if fromIndex, err = parseIndex(stage.Args[1]); err != nil {
			return nil, err
		}
	}
	//
	switch {
	case stage.Name.Text == "includes":
		return Boolean(r.IncludesFrom(element, fromIndex)), nil
	case stage.Name.Text == "indexof":
		return Integer(r.IndexOfFrom(element, fromIndex)), nil
	case hasFrom:
		return Integer(r.LastIndexOfFrom(element, fromIndex)), nil
	default:
		return Integer(r.LastIndexOf(element)), nil
	}
}

// Apply one of the reductions (reduce, reduceright, fold or foldright).
func applyReduction(stage Stage, r *ranges.Range) (Value, error) {
	var (
		seeded = stage.Name.Text == "fold" || stage.Name.Text == "foldright"
		right  = stage.Name.Text == "reduceright" || stage.Name.Text == "foldright"
		seed   float64
	)
	//
	op, err := parseOperator(stage)
	if err != nil {
		return nil, err
	} else if seeded {
		if err := expectArgs(stage, 2); err != nil {
			return nil, err
		} else if seed, err = parseNumber(stage.Args[1]); err != nil {
			return nil, err
		}
	} else if err := expectArgs(stage, 1); err != nil {
		return nil, err
	}
	//
	reducer := func(acc float64, e ranges.Element) float64 { return op(acc, e.Value) }
	//
	switch {
	case seeded && right:
		return Number(ranges.FoldRight(r, reducer, seed)), nil
	case seeded:
		return Number(ranges.Fold(r, reducer, seed)), nil
	}
	//
	var val float64
	//
	if right {
		val, err = r.ReduceRight(reducer)
	} else {
		val, err = r.Reduce(reducer)
	}
	//
	if err != nil {
		return nil, wrapError(stage.Span(), err)
	}
	//
	return Number(val), nil
}

func applyList(stage Stage, list List) (Value, error) {
	switch stage.Name.Text {
	case "length":
		return Integer(list.Len()), expectArgs(stage, 0)
	case "list":
		return list, expectArgs(stage, 0)
	case "reverse":
		items := list.Slice()
		reversed := make([]float64, len(items))
		//
		for i, item := range items {
			reversed[len(items)-i-1] = item
		}
		//
		return NewList(reversed...), expectArgs(stage, 0)
	case "get":
		if err := expectArgs(stage, 1); err != nil {
			return nil, err
		}
		//
		index, err := parseIndex(stage.Args[0])
		if err != nil {
			return nil, err
		} else if index < 0 {
			index += list.Len()
		}
		//
		if index < 0 || index >= list.Len() {
			err := fmt.Errorf("%w: index %s (length %d)", ranges.ErrIndexOutOfBounds, stage.Args[0].Text, list.Len())
			return nil, wrapError(stage.Span(), err)
		}
		//
		return Number(iter.Nth[float64](list.Enumerator(), uint(index))), nil
	case "indexof":
		if err := expectArgs(stage, 1); err != nil {
			return nil, err
		}
		//
		val, err := parseNumber(stage.Args[0])
		if err != nil {
			return nil, err
		}
		//
		index, ok := iter.Find[float64](list.Enumerator(), func(item float64) bool { return item == val })
		if !ok {
			return Integer(-1), nil
		}
		//
		return Integer(index), nil
	case "reduce":
		op, err := parseOperator(stage)
		if err != nil {
			return nil, err
		} else if err := expectArgs(stage, 1); err != nil {
			return nil, err
		} else if list.Len() == 0 {
			return nil, wrapError(stage.Span(), ranges.ErrEmptyReduce)
		}
		//
		acc := list.Get(0)
		//
		for i := 1; i < list.Len(); i++ {
			acc = op(acc, list.Get(i))
		}
		//
		return Number(acc), nil
	}
	//
	return nil, newSyntaxError(stage.Name.Span, fmt.Sprintf("cannot apply \"%s\" to a list", stage.Name.Text))
}
