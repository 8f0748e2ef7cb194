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
	"math/rand/v2"

	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// andSpec threads x through each sub-spec's conform result in order, so
// later predicates see the already-conformed output of earlier ones
//.
type andSpec struct {
	specs []Spec
}

// And builds the and combinator: x must satisfy every spec in specs,
// each seeing the previous one's conformed output.
func And(specs ...Spec) Spec { return &andSpec{specs: specs} }

func (s *andSpec) Conform(x interface{}) interface{} {
	cur := x
	for _, sub := range s.specs {
		cur = sub.Conform(cur)
		if core.IsInvalid(cur) {
			return core.Invalid
		}
	}
	return cur
}

func (s *andSpec) Unform(y interface{}) (interface{}, error) {
	cur := y
	for i := len(s.specs) - 1; i >= 0; i-- {
		raw, err := s.specs[i].Unform(cur)
		if err != nil {
			return nil, err
		}
		cur = raw
	}
	return cur, nil
}

func (s *andSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	cur := x
	for _, sub := range s.specs {
		if probs := sub.Explain(path, via, in, cur); !probs.Empty() {
			return probs
		}
		cur = sub.Conform(cur)
	}
	return nil
}

func (s *andSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	if len(s.specs) == 0 {
		return igen.Any(), nil
	}
	// Only the first spec's generator is sampled from directly, since
	// later specs in an and are typically further constraints on the
	// same shape, and no generic intersection sampler exists in the
	// generator-library contract; its samples are filtered by SuchThat
	// so each one conforms to the whole and.
	g, err := s.specs[0].Gen(overrides, path, rmap)
	if err != nil {
		return nil, err
	}
	return igen.SuchThat(g, func(v interface{}) bool { return !core.IsInvalid(s.Conform(v)) }, 0), nil
}

func (s *andSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *andSpec) Describe() interface{} {
	out := []interface{}{"and"}
	for _, sub := range s.specs {
		out = append(out, sub.Describe())
	}
	return out
}

// orTag is the (key_i, value) pair or conforms to.
type orTag struct {
	Key   string
	Value interface{}
}

// orSpec is a tagged alternation: conform picks the first
// matching branch, tagging the result with its key.
type orSpec struct {
	keys  []string
	specs []Spec
}

// Or builds the or combinator from alternating key/spec pairs (keys
// must be unique and are used as diagnostic/destructuring tags).
func Or(keys []string, specs []Spec) Spec {
	return &orSpec{keys: keys, specs: specs}
}

func (s *orSpec) Conform(x interface{}) interface{} {
	for i, sub := range s.specs {
		c := sub.Conform(x)
		if !core.IsInvalid(c) {
			return orTag{Key: s.keys[i], Value: c}
		}
	}
	return core.Invalid
}

func (s *orSpec) Unform(y interface{}) (interface{}, error) {
	tg, ok := y.(orTag)
	if !ok {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: or: expected orTag, got %T", y)
	}
	for i, k := range s.keys {
		if k == tg.Key {
			return s.specs[i].Unform(tg.Value)
		}
	}
	return nil, newUsageError(CodeNotInvertible, nil, "unform: or: no branch tagged %q", tg.Key)
}

// Explain emits nothing when some branch matches; otherwise one
// Problem per branch, rooted at path/:k_i.
func (s *orSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	if !core.IsInvalid(s.Conform(x)) {
		return nil
	}
	var out core.ProblemList
	for i, sub := range s.specs {
		out = append(out, sub.Explain(path.Append(s.keys[i]), via, in, x)...)
	}
	return out
}

func (s *orSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	gens := make([]igen.Generator, 0, len(s.specs))
	for _, sub := range s.specs {
		g, err := sub.Gen(overrides, path, rmap)
		if err != nil {
			continue
		}
		gens = append(gens, g)
	}
	if len(gens) == 0 {
		return nil, newUsageError(CodeNoGenerator, map[string]interface{}{"path": path}, "or: no branch has a generator")
	}
	return igen.OneOf(gens), nil
}

func (s *orSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *orSpec) Describe() interface{} {
	out := []interface{}{"or"}
	for i, sub := range s.specs {
		out = append(out, s.keys[i], sub.Describe())
	}
	return out
}

// mergeSpec logically ANDs map-shaped specs: conform threads through
// each (as andSpec does), but generation merges each sub-generator's
// sampled map together rather than attempting intersection sampling
//.
type mergeSpec struct {
	specs []Spec
}

// Merge builds the merge combinator over map-shaped sub-specs.
func Merge(specs ...Spec) Spec { return &mergeSpec{specs: specs} }

func (s *mergeSpec) Conform(x interface{}) interface{} {
	cur := x
	for _, sub := range s.specs {
		cur = sub.Conform(cur)
		if core.IsInvalid(cur) {
			return core.Invalid
		}
	}
	return cur
}

func (s *mergeSpec) Unform(y interface{}) (interface{}, error) {
	cur := y
	for i := len(s.specs) - 1; i >= 0; i-- {
		raw, err := s.specs[i].Unform(cur)
		if err != nil {
			return nil, err
		}
		cur = raw
	}
	return cur, nil
}

func (s *mergeSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	cur := x
	for _, sub := range s.specs {
		if probs := sub.Explain(path, via, in, cur); !probs.Empty() {
			return probs
		}
		cur = sub.Conform(cur)
	}
	return nil
}

func (s *mergeSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	gens := make([]igen.Generator, 0, len(s.specs))
	for _, sub := range s.specs {
		g, err := sub.Gen(overrides, path, rmap)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return igen.Func(func(rnd *rand.Rand) (interface{}, error) {
		out := map[string]interface{}{}
		for _, g := range gens {
			v, err := g.Generate(rnd)
			if err != nil {
				return nil, err
			}
			m, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			for k, vv := range m {
				out[k] = vv
			}
		}
		return out, nil
	}), nil
}

func (s *mergeSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *mergeSpec) Describe() interface{} {
	out := []interface{}{"merge"}
	for _, sub := range s.specs {
		out = append(out, sub.Describe())
	}
	return out
}
