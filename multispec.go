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

package spec

import (
	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// MultiEntry is one dispatch-table entry: Tag is compared (via ==)
// against the value DispatchFn(x) returns, and Spec validates x once
// the entry is selected.
type MultiEntry struct {
	Tag  interface{}
	Spec Spec
}

// MultiSpecInvalidTag is the dispatch value that marks an entry as
// excluded from generation: entries tagged with it are filtered out of
// Gen so callers can register a catch-all entry without it being
// sampled as if it were a real dispatch case.
var MultiSpecInvalidTag = core.Invalid

// RetagFunc re-tags a generated value so it advertises its own
// dispatch tag, either by assoc-ing the tag under a key (the common
// case) or via an arbitrary transform.
type RetagFunc func(value interface{}, tag interface{}) interface{}

// multiSpec dispatches on an external tag function, looking up a Spec
// via a user-provided table (morally a multi-method).
type multiSpec struct {
	dispatch func(x interface{}) interface{}
	entries  []MultiEntry
	retag    RetagFunc
	id       int64
}

// MultiSpec builds the multi-spec dispatch combinator.
func MultiSpec(dispatch func(x interface{}) interface{}, entries []MultiEntry, retag RetagFunc) Spec {
	return &multiSpec{dispatch: dispatch, entries: entries, retag: retag, id: core.NextID()}
}

func (s *multiSpec) lookup(tag interface{}) (Spec, bool) {
	for _, e := range s.entries {
		if e.Tag == tag {
			return e.Spec, true
		}
	}
	return nil, false
}

func (s *multiSpec) Conform(x interface{}) interface{} {
	tag := s.dispatch(x)
	sub, ok := s.lookup(tag)
	if !ok {
		return core.Invalid
	}
	return sub.Conform(x)
}

func (s *multiSpec) Unform(y interface{}) (interface{}, error) {
	tag := s.dispatch(y)
	sub, ok := s.lookup(tag)
	if !ok {
		return nil, newUsageError(CodeNotInvertible, map[string]interface{}{"tag": tag}, "unform: multi-spec: no method for tag %v", tag)
	}
	return sub.Unform(y)
}

// Explain appends the dispatch value to the path; an unmatched tag
// yields a Problem with reason="no method".
func (s *multiSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	tag := s.dispatch(x)
	sub, ok := s.lookup(tag)
	if !ok {
		return core.ProblemList{{Path: path.Append(tag), Via: via, In: in, Val: x, Reason: "no method"}}
	}
	return sub.Explain(path, via, in, x)
}

// Gen iterates every registered entry, generating one sample per entry
//, then applies retag so the generated value
// advertises its own tag. Bounded by rmap the same as keys/alt.
func (s *multiSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	cutoff, leave := rmap.Enter(s.id)
	defer leave()
	if cutoff {
		return nil, newUsageError(CodeNoGenerator, map[string]interface{}{"path": path}, "multi-spec: recursion limit reached")
	}
	var gens []igen.Generator
	for _, e := range s.entries {
		if e.Tag == MultiSpecInvalidTag {
			continue
		}
		g, err := e.Spec.Gen(overrides, path, rmap)
		if err != nil {
			continue
		}
		tag := e.Tag
		retag := s.retag
		gens = append(gens, igen.FMap(g, func(v interface{}) interface{} {
			if retag != nil {
				return retag(v, tag)
			}
			return v
		}))
	}
	if len(gens) == 0 {
		return nil, newUsageError(CodeNoGenerator, map[string]interface{}{"path": path}, "multi-spec: no generatable dispatch entries")
	}
	return igen.OneOf(gens), nil
}

func (s *multiSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *multiSpec) Describe() interface{} {
	out := []interface{}{"multi-spec"}
	for _, e := range s.entries {
		out = append(out, e.Tag, e.Spec.Describe())
	}
	return out
}
