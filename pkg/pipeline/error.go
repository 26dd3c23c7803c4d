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

import "fmt"

// Span represents a contiguous slice of the original text being parsed.
type Span struct {
	// Index of first character
	start int
	// Index after last character
	end int
}

// NewSpan constructs a new span.
func NewSpan(start int, end int) Span {
	return Span{start, end}
}

// Start returns the index of the first character of this span.
func (p Span) Start() int {
	return p.start
}

// End returns the index after the last character of this span.
func (p Span) End() int {
	return p.end
}

// SyntaxError is a structured error which retains the span of the original
// text where it arose.  This is returned both for malformed expressions, and for
// operations which cannot be applied (e.g. because of a bad argument).
type SyntaxError struct {
	// Span of text where the error arose
	span Span
	// Error message being reported
	msg string
	// Underlying cause (if any)
	cause error
}

func newSyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{span, msg, nil}
}

func wrapError(span Span, cause error) *SyntaxError {
	return &SyntaxError{span, cause.Error(), cause}
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// Unwrap returns the underlying cause of this error (if any).
func (p *SyntaxError) Unwrap() error {
	return p.cause
}
