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

	"github.com/consensys/go-derange/pkg/pipeline"
	"github.com/consensys/go-derange/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr1 expr2 ...",
	Short: "evaluate one or more range expressions.",
	Long: `Evaluate one or more range expressions, printing the result of each.  An
	expression begins with a range (e.g. "range 1 12 3" or "derange 5") followed by
	zero or more operations separated by "|", such as "range 10 | filter even | list".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		session := pipeline.NewSession()
		stats := util.NewPerfStats()
		//
		if !evalAll(os.Stdout, session, args) {
			os.Exit(2)
		}
		//
		stats.Log(fmt.Sprintf("Evaluating %d expression(s)", session.Count()))
	},
}

// Evaluate each expression in turn within a given session, printing either its
// result or the error arising.  This returns false if any expression failed.
func evalAll(out io.Writer, session *pipeline.Session, exprs []string) bool {
	ok := true
	//
	for _, expr := range exprs {
		value, err := session.Eval(expr)
		//
		if err != nil {
			log.Debugf("failed evaluating \"%s\": %s", expr, err)
			printError(out, expr, err)
			//
			ok = false
		} else {
			fmt.Fprintln(out, value)
		}
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
