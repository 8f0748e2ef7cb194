// Copyright 2026 The Spec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

// Problem is one structured diagnostic produced by Explain. Path
// indexes into the conformed structure; In indexes into the original
// input value.
type Problem struct {
	Path   Path
	Pred   interface{} // symbolic form of the failed predicate/spec
	Val    interface{}
	Via    []Name
	In     Path
	Reason string
	// Extra carries variant-specific diagnostic fields, rendered as
	// "\t<k> <v>" lines by the printed explain format.
	Extra map[string]interface{}
}

// ProblemList is the result of Explain: empty means the value is
// valid.
type ProblemList []Problem

func (p ProblemList) Empty() bool { return len(p) == 0 }
