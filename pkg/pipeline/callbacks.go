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
	"math"

	"github.com/consensys/go-derange/pkg/ranges"
)

// Parse the arguments of an operation which expects a predicate, such as
// "every gt 3".
func parsePredicate(stage Stage) (ranges.Predicate, error) {
	if len(stage.Args) == 0 {
		return nil, newSyntaxError(stage.Name.Span, "missing predicate")
	}
	//
	name := stage.Args[0]
	//
	switch name.Text {
	case "even":
		return func(e ranges.Element) bool { return math.Mod(e.Value, 2) == 0 }, expectArgs(stage, 1)
	case "odd":
		return func(e ranges.Element) bool { return math.Abs(math.Mod(e.Value, 2)) == 1 }, expectArgs(stage, 1)
	case "gt", "ge", "lt", "le", "eq", "ne":
		if err := expectArgs(stage, 2); err != nil {
			return nil, err
		}
		//
		n, err := parseNumber(stage.Args[1])
		if err != nil {
			return nil, err
		}
		//
		cmp := comparators[name.Text]
		//
		return func(e ranges.Element) bool { return cmp(e.Value, n) }, nil
	}
	//
	return nil, newSyntaxError(name.Span, fmt.Sprintf("unknown predicate \"%s\"", name.Text))
}

var comparators = map[string]func(float64, float64) bool{
	"gt": func(x, y float64) bool { return x > y },
	"ge": func(x, y float64) bool { return x >= y },
	"lt": func(x, y float64) bool { return x < y },
	"le": func(x, y float64) bool { return x <= y },
	"eq": func(x, y float64) bool { return x == y },
	"ne": func(x, y float64) bool { return x != y },
}

// Parse the arguments of an operation which expects a unary function, such as
// "map mul 2".
func parseFunction(stage Stage) (func(float64) float64, error) {
	if len(stage.Args) == 0 {
		return nil, newSyntaxError(stage.Name.Span, "missing function")
	}
	//
	name := stage.Args[0]
	//
	switch name.Text {
	case "neg":
		return func(x float64) float64 { return -x }, expectArgs(stage, 1)
	case "sq":
		return func(x float64) float64 { return x * x }, expectArgs(stage, 1)
	case "abs":
		return math.Abs, expectArgs(stage, 1)
	case "add", "sub", "mul", "div":
		if err := expectArgs(stage, 2); err != nil {
			return nil, err
		}
		//
		n, err := parseNumber(stage.Args[1])
		if err != nil {
			return nil, err
		}
		//
		op := operators[name.Text]
		//
		return func(x float64) float64 { return op(x, n) }, nil
	}
	//
	return nil, newSyntaxError(name.Span, fmt.Sprintf("unknown function \"%s\"", name.Text))
}

// Parse the operator given to a reduction, such as "reduce add".  This
// consumes only the first argument, leaving any others (e.g. the seed of a
// fold) to the caller.
func parseOperator(stage Stage) (func(float64, float64) float64, error) {
	if len(stage.Args) == 0 {
		return nil, newSyntaxError(stage.Name.Span, "missing operator")
	}
	//
	name := stage.Args[0]
	//
	if op, ok := operators[name.Text]; ok {
		return op, nil
	}
	//
	return nil, newSyntaxError(name.Span, fmt.Sprintf("unknown operator \"%s\"", name.Text))
}

var operators = map[string]func(float64, float64) float64{
	"add": func(x, y float64) float64 { return x + y },
	"sub": func(x, y float64) float64 { return x - y },
	"mul": func(x, y float64) float64 { return x * y },
	"div": func(x, y float64) float64 { return x / y },
	"min": math.Min,
	"max": math.Max,
}

// Check a stage has exactly the expected number of arguments.
func expectArgs(stage Stage, n int) error {
	switch {
	case len(stage.Args) < n:
		return newSyntaxError(stage.Span(), fmt.Sprintf("\"%s\" expects %d argument(s)", stage.Name.Text, n))
	case len(stage.Args) > n:
		return newSyntaxError(stage.Args[n].Span, "unexpected argument")
	}
	//
	return nil
}

// Check a stage has between min and max arguments (inclusive).
func expectArgsBetween(stage Stage, min int, max int) error {
	switch {
	case len(stage.Args) < min:
		return newSyntaxError(stage.Span(), fmt.Sprintf("\"%s\" expects at least %d argument(s)", stage.Name.Text, min))
	case len(stage.Args) > max:
		return newSyntaxError(stage.Args[max].Span, "unexpected argument")
	}
	//
	return nil
}
