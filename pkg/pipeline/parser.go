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
	"strconv"
	"unicode"
)

// Token is a single word of an expression, along with its position.
type Token struct {
	Text string
	Span Span
}

// Stage is a single operation of a pipeline, such as "get 3" or "every gt 2".
type Stage struct {
	// Name of the operation
	Name Token
	// Arguments given to the operation
	Args []Token
}

// Span returns the span of text covered by this stage.
func (s *Stage) Span() Span {
	if len(s.Args) == 0 {
		return s.Name.Span
	}
	//
	return NewSpan(s.Name.Span.Start(), s.Args[len(s.Args)-1].Span.End())
}

// Expr is a parsed pipeline.  The first stage is the source (either "range" or
// "derange"), and every subsequent stage operates on the result of the stage
// before it.
type Expr struct {
	Source Stage
	Stages []Stage
}

// Parse a pipeline expression such as "range 1 12 3 | reverse | list".
func Parse(text string) (*Expr, error) {
	var (
		p      = NewParser(text)
		stages []Stage
	)
	//
	for {
		stage, err := p.parseStage()
		if err != nil {
			return nil, err
		}
		//
		stages = append(stages, stage)
		// Check for another stage
		if token := p.Next(); token == nil {
			break
		} else if token.Text != "|" {
			return nil, newSyntaxError(token.Span, "expected \"|\"")
		}
	}
	//
	source := stages[0]
	//
	if source.Name.Text != "range" && source.Name.Text != "derange" {
		return nil, newSyntaxError(source.Name.Span, "expected \"range\" or \"derange\"")
	}
	//
	return &Expr{source, stages[1:]}, nil
}

// Parser splits an expression into tokens.
type Parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{
		text:  []rune(text),
		index: 0,
	}
}

// Next extracts the next token, or returns nil if there are none left.
func (p *Parser) Next() *Token {
	// Skip whitespace
	for p.index < len(p.text) && unicode.IsSpace(p.text[p.index]) {
		p.index++
	}
	//
	start := p.index
	//
	if start == len(p.text) {
		return nil
	} else if p.text[start] == '|' {
		p.index++
		return &Token{"|", NewSpan(start, p.index)}
	}
	// Word
	for p.index < len(p.text) && !unicode.IsSpace(p.text[p.index]) && p.text[p.index] != '|' {
		p.index++
	}
	//
	return &Token{string(p.text[start:p.index]), NewSpan(start, p.index)}
}

// Check whether the next token is a "|" or the end of the text, without
// consuming anything.
func (p *Parser) atStageEnd() bool {
	index := p.index
	//
	for index < len(p.text) && unicode.IsSpace(p.text[index]) {
		index++
	}
	//
	return index == len(p.text) || p.text[index] == '|'
}

func (p *Parser) parseStage() (Stage, error) {
	var stage Stage
	//
	name := p.Next()
	//
	if name == nil {
		return stage, newSyntaxError(NewSpan(p.index, p.index), "unexpected end-of-expression")
	} else if name.Text == "|" {
		return stage, newSyntaxError(name.Span, "missing operation")
	}
	//
	stage.Name = *name
	//
	for !p.atStageEnd() {
		stage.Args = append(stage.Args, *p.Next())
	}
	//
	return stage, nil
}

// Parse a token as a number.
func parseNumber(token Token) (float64, error) {
	val, err := strconv.ParseFloat(token.Text, 64)
	if err != nil {
		return 0, newSyntaxError(token.Span, fmt.Sprintf("invalid number \"%s\"", token.Text))
	}
	//
	return val, nil
}

// Parse a token as an index.
func parseIndex(token Token) (int, error) {
	val, err := strconv.Atoi(token.Text)
	if err != nil {
		return 0, newSyntaxError(token.Span, fmt.Sprintf("invalid index \"%s\"", token.Text))
	}
	//
	return val, nil
}
