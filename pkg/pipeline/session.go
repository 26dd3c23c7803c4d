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
	"github.com/consensys/go-derange/pkg/ranges"
	log "github.com/sirupsen/logrus"
)

// Session evaluates a series of expressions, such as those entered at an
// interactive prompt, and remembers the distinct ranges they were evaluated
// over.
type Session struct {
	ranges ranges.Set
	// Number of expressions evaluated successfully.
	count uint
}

// NewSession constructs an empty session.
func NewSession() *Session {
	return &Session{ranges.NewSet(), 0}
}

// Eval parses and evaluates an expression within this session.
func (s *Session) Eval(text string) (Value, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	//
	r, err := expr.Range()
	if err != nil {
		return nil, err
	}
	//
	if s.ranges.Contains(r) {
		log.Debugf("reusing %s", r)
	}
	//
	s.ranges = s.ranges.Add(r)
	//
	value, err := expr.Eval()
	if err == nil {
		s.count++
	}
	//
	return value, err
}

// Ranges returns the distinct ranges evaluated in this session, in the order
// they were first seen.
func (s *Session) Ranges() []*ranges.Range {
	return s.ranges.Items()
}

// Count returns the number of expressions successfully evaluated in this
// session.
func (s *Session) Count() uint {
	return s.count
}
