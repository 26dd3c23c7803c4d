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
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/consensys/go-derange/pkg/ranges"
	"github.com/consensys/go-derange/pkg/util"
	"github.com/consensys/go-derange/pkg/util/collection/iter"
)

// Value is the result of evaluating some (or all) of a pipeline.
type Value interface {
	String() string
}

// Sequence is a (lazy) range value.
type Sequence struct {
	Range *ranges.Range
}

func (v Sequence) String() string {
	return v.Range.String()
}

// Number is a real value, such as produced by get or reduce.
type Number float64

func (v Number) String() string {
	return formatFloat(float64(v))
}

// Integer is a count or position, such as produced by length or indexof.
type Integer int

func (v Integer) String() string {
	return strconv.Itoa(int(v))
}

// Boolean is a truth value, such as produced by includes or every.
type Boolean bool

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

// Maybe is a real value which may be absent, such as produced by find.
type Maybe util.Option[float64]

func (v Maybe) String() string {
	return util.Option[float64](v).String()
}

// List is a materialised sequence of real values, such as produced by filter.
type List struct {
	Items *immutable.List
}

// NewList constructs a list from the given values.
func NewList(items ...float64) List {
	list := immutable.NewList()
	//
	for _, item := range items {
		list = list.Append(item)
	}
	//
	return List{list}
}

// Len returns the number of items in this list.
func (v List) Len() int {
	return v.Items.Len()
}

// Get returns the ith item in this list.
func (v List) Get(i int) float64 {
	return v.Items.Get(i).(float64)
}

// Slice returns the items of this list as an array.
func (v List) Slice() []float64 {
	return iter.Collect[float64](v.Enumerator())
}

// Enumerator returns an enumerator over the items of this list.
func (v List) Enumerator() iter.Enumerator[float64] {
	return &listEnumerator{v.Items, v.Items.Iterator()}
}

func (v List) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, item := range iter.Seq2(v.Enumerator()) {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(formatFloat(item))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// listEnumerator adapts an immutable list iterator.
type listEnumerator struct {
	list *immutable.List
	itr  *immutable.ListIterator
}

func (p *listEnumerator) HasNext() bool {
	return !p.itr.Done()
}

func (p *listEnumerator) Next() float64 {
	_, item := p.itr.Next()
	return item.(float64)
}

func (p *listEnumerator) Reset() {
	p.itr = p.list.Iterator()
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}
