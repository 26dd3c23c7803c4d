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
	"github.com/consensys/go-derange/pkg/util/termio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags] [start] stop [step]",
	Short: "print summary information about a range.",
	Run: func(cmd *cobra.Command, args []string) {
		r := getRange(cmd, args)
		width, _ := termio.TerminalWidth()
		//
		printInfo(os.Stdout, r, width)
	},
}

// Print a table of properties for a given range, clamped to the given width
// (unless width is 0).
func printInfo(out io.Writer, r *ranges.Range, width uint) {
	var (
		first = "-"
		last  = "-"
	)
	//
	if v, err := r.Get(0); err == nil {
		first = formatFloat(v)
	}
	//
	if v, ok := r.Last(); ok {
		last = formatFloat(v)
	}
	//
	rows := [][2]string{
		{"start", formatFloat(r.Start())},
		{"stop", formatFloat(r.Stop())},
		{"step", formatFloat(r.Step())},
		{"length", strconv.Itoa(r.Len())},
		{"first", first},
		{"last", last},
		{"kind", r.Kind().String()},
		{"reversed", r.Reverse().String()},
		{"hash", fmt.Sprintf("%08x", r.Hash())},
	}
	//
	table := termio.NewTablePrinter(2, uint(len(rows)))
	//
	for i, row := range rows {
		table.SetRow(uint(i), row[0], row[1])
	}
	//
	// The first column is at most eight characters, and each column is padded
	// by three characters.
	if width > 20 {
		table.SetMaxWidth(1, width-14)
	}
	//
	table.Print(out)
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("derange", false, "construct a reversal closed range")
}
