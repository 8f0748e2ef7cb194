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

// RecursionMap bounds generator recursion through branching ops (ALT,
// REP, keys, multi-spec), each identified by a stable id. It is not safe for concurrent use; callers
// construct one per top-level Gen call.
type RecursionMap struct {
	Limit int
	path  []int64
	count map[int64]int
}

// NewRecursionMap creates a budget table with the given per-id revisit
// limit.
func NewRecursionMap(limit int) *RecursionMap {
	return &RecursionMap{Limit: limit, count: map[int64]int{}}
}

// Enter records a visit to id and reports whether this branch must be
// cut off. A branch is cut off once the id's visit count exceeds Limit
// AND id already appears on the current path — this specifically
// detects genuinely recursive descents, not merely repeated sibling
// visits to the same id. id == 0 is never a recursion
// checkpoint (used by internal plumbing ops); Enter is then a no-op.
// The returned leave func must be called when the branch's subtree
// has finished being generated, even on the cutoff path.
func (m *RecursionMap) Enter(id int64) (cutoff bool, leave func()) {
	if id == 0 {
		return false, func() {}
	}
	onPath := false
	for _, p := range m.path {
		if p == id {
			onPath = true
			break
		}
	}
	m.count[id]++
	if m.count[id] > m.Limit && onPath {
		m.count[id]--
		return true, func() {}
	}
	m.path = append(m.path, id)
	depth := len(m.path)
	return false, func() {
		m.path = m.path[:depth-1]
	}
}
