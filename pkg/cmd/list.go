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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-derange/pkg/ranges"
	"github.com/consensys/go-derange/pkg/util"
	"github.com/consensys/go-derange/pkg/util/termio"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] [start] stop [step]",
	Short: "list the elements of a range.",
	Long: `List the elements of a range, one per line.  The range is never
	materialised, hence even very long ranges can be listed (or partially listed
	using --limit).`,
	Run: func(cmd *cobra.Command, args []string) {
		r := getRange(cmd, args)
		limit := GetUint(cmd, "limit")
		stats := util.NewPerfStats()
		//
		if GetFlag(cmd, "reverse") {
			r = r.Reverse()
		}
		//
		if GetFlag(cmd, "table") {
			width, _ := termio.TerminalWidth()
			printTable(os.Stdout, r, limit, width)
		} else {
			printElements(os.Stdout, r, limit)
		}
		//
		stats.Log(fmt.Sprintf("Listing %s", r))
	},
}

// Print the elements of a range, one per line, stopping after limit elements
// (unless limit is 0).
func printElements(out io.Writer, r *ranges.Range, limit uint) {
	for i, v := range r.Enumerate() {
		if limit != 0 && uint(i) >= limit {
			break
		}
		//
		fmt.Fprintln(out, formatFloat(v))
	}
}

// Print the elements of a range as a table of indices and values, stopping
// after limit elements (unless limit is 0).  The table is clamped to fit within
// the given width (unless width is 0).
func printTable(out io.Writer, r *ranges.Range, limit uint, width uint) {
	n := uint(r.Len())
	//
	if limit != 0 {
		n = min(n, limit)
	}
	//
	table := termio.NewTablePrinter(2, n+1)
	table.SetRow(0, "index", "value")
	//
	for i, v := range r.Enumerate() {
		if uint(i) >= n {
			break
		}
		//
		table.SetRow(uint(i)+1, strconv.Itoa(i), formatFloat(v))
	}
	// Each column is padded by three characters
	if width > 12 {
		table.SetMaxWidths((width - 6) / 2)
	}
	//
	table.Print(out)
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("derange", false, "construct a reversal closed range")
	listCmd.Flags().BoolP("reverse", "r", false, "list elements in reverse")
	listCmd.Flags().BoolP("table", "t", false, "print elements as a table with indices")
	listCmd.Flags().Uint("limit", 0, "maximum number of elements to list (0 for all)")
}
