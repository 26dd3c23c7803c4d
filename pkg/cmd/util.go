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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-derange/pkg/pipeline"
	"github.com/consensys/go-derange/pkg/ranges"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct a range from one to three command-line arguments.
func parseRange(args []string, derange bool) (*ranges.Range, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, fmt.Errorf("expected 1-3 range parameters, got %d", len(args))
	}
	//
	params := make([]float64, len(args))
	//
	for i, arg := range args {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range parameter \"%s\"", arg)
		}
		//
		params[i] = val
	}
	//
	if derange {
		return ranges.NewDerange(params...), nil
	}
	//
	return ranges.New(params...), nil
}

// Construct a range from command-line arguments, or exit if they are invalid.
func getRange(cmd *cobra.Command, args []string) *ranges.Range {
	r, err := parseRange(args, GetFlag(cmd, "derange"))
	//
	if err != nil {
		fmt.Println(err)
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	return r
}

// Report an error arising from evaluating an expression.  Syntax errors are
// printed with the offending part of the expression highlighted.
func printError(out io.Writer, expr string, err error) {
	var syntaxErr *pipeline.SyntaxError
	//
	if errors.As(err, &syntaxErr) {
		printSyntaxError(out, syntaxErr.Message(), syntaxErr.Span(), expr)
	} else {
		fmt.Fprintln(out, err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, msg string, span pipeline.Span, text string) {
	start, end := span.Start(), span.End()
	// Ensure something is highlighted, even at the end of the text.
	if end <= start {
		end = start + 1
	}
	// Print error
	fmt.Fprintf(out, "%d: %s\n", start, msg)
	// Print expression
	fmt.Fprintln(out, text)
	// Print indent
	fmt.Fprint(out, strings.Repeat(" ", start))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", end-start))
}
