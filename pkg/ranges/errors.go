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

import "errors"

// ErrEmptyReduce is returned when reducing an empty range without a seed.
var ErrEmptyReduce = errors.New("reduce of empty range with no initial value")

// ErrIndexOutOfBounds is returned when accessing an index outside of a range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")
