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

import "fmt"

// Path is a sequence of map keys or slice/tuple indices locating a
// position within a conformed (Problem.Path) or input (Problem.In)
// value.
type Path []interface{}

// Append returns a new Path with elem appended, leaving p untouched.
func (p Path) Append(elem interface{}) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, elem)
}

func (p Path) String() string {
	s := ""
	for _, e := range p {
		s += fmt.Sprintf("[%v]", e)
	}
	return s
}
