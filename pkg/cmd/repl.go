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
	"path/filepath"
	"strings"

	"github.com/consensys/go-derange/pkg/pipeline"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const replHelp = `Enter an expression, such as "range 1 12 3 | reverse | list", or a command:
  :ranges   list the distinct ranges evaluated so far
  :help     print this message
  :quit     exit`

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "interactively evaluate range expressions.",
	Run: func(cmd *cobra.Command, args []string) {
		history := GetString(cmd, "history")
		//
		if history == "" {
			history = filepath.Join(os.TempDir(), ".go-derange-history")
		}
		//
		runRepl(pipeline.NewSession(), history)
	},
}

func runRepl(session *pipeline.Session, historyFile string) {
	line := liner.NewLiner()
	defer line.Close()
	//
	line.SetCtrlCAborts(true)
	//
	if f, err := os.Open(historyFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			log.Debugf("ignoring history file %s: %s", historyFile, err)
		}
		//
		f.Close()
	}
	//
	for {
		text, err := line.Prompt("derange> ")
		//
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			log.Error(err)
			break
		} else if strings.TrimSpace(text) == "" {
			continue
		}
		//
		line.AppendHistory(text)
		//
		if !replLine(os.Stdout, session, text) {
			break
		}
	}
	//
	if f, err := os.Create(historyFile); err == nil {
		if _, err := line.WriteHistory(f); err != nil {
			log.Errorf("writing history file %s: %s", historyFile, err)
		}
		//
		f.Close()
	}
	//
	log.Debugf("evaluated %d expression(s) over %d range(s)", session.Count(), len(session.Ranges()))
}

// Process a single line of input, which is either a command (beginning with
// ":") or an expression.  This returns false when the user asks to quit.
func replLine(out io.Writer, session *pipeline.Session, text string) bool {
	text = strings.TrimSpace(text)
	//
	switch text {
	case ":quit", ":q":
		return false
	case ":help", ":h":
		fmt.Fprintln(out, replHelp)
	case ":ranges":
		for i, r := range session.Ranges() {
			fmt.Fprintf(out, "%d: %s\n", i, r)
		}
	default:
		if strings.HasPrefix(text, ":") {
			fmt.Fprintf(out, "unknown command \"%s\" (try :help)\n", text)
		} else if value, err := session.Eval(text); err != nil {
			printError(out, text, err)
		} else {
			fmt.Fprintln(out, value)
		}
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("history", "", "history file (defaults to a file in the temporary directory)")
}
