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
package ranges

import (
	"encoding/binary"
	"math"

	"github.com/spaolacci/murmur3"
)

// Equals checks whether two ranges have the same defining numbers.  Neither the
// cursor nor the kind of a range is considered, since both ranges enumerate the
// same elements regardless.
func (r *Range) Equals(other *Range) bool {
	return r.start == other.start && r.stop == other.stop && r.step == other.step
}

// Hash returns a murmur3 hash of the defining numbers of this range, such that
// equal ranges have equal hashes.
func (r *Range) Hash() uint32 {
	hash := murmur3.New32()
	//
	hash.Write(r.hashBytes())
	//
	return hash.Sum32()
}

func (r *Range) hashBytes() []byte {
	b := make([]byte, 24)
	//
	for i, val := range []float64{r.start, r.stop, r.step} {
		// Equals treats -0 and +0 as the same
		if val == 0 {
			val = 0
		}
		//
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(val))
	}
	//
	return b
}
