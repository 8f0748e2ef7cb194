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

package regexop

import (
	"fmt"

	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// OverrideLookup returns an override generator for path, if the caller
// configured one. Overrides short-circuit with fmap(\v -> [v]) so they
// can target any regex position and still compose into a sequence
//.
type OverrideLookup func(path core.Path) (igen.Generator, bool)

// Gen mirrors the op tree to build a generator producing a
// []interface{} sequence for every op (a single-element one for a
// Pred); an Alt yields the sequence of whichever branch was chosen.
func Gen(p Op, path core.Path, rmap *core.RecursionMap, overrides OverrideLookup) (igen.Generator, error) {
	if overrides != nil {
		if g, ok := overrides(path); ok {
			return igen.FMap(g, func(v interface{}) interface{} { return []interface{}{v} }), nil
		}
	}
	switch v := p.(type) {
	case *Pred:
		if v.Gen == nil {
			return nil, &igen.NoGeneratorError{Path: path, Form: v.Form}
		}
		return igen.FMap(v.Gen, func(x interface{}) interface{} { return []interface{}{x} }), nil
	case *Accept:
		return igen.Return([]interface{}{}), nil
	case *Cat:
		return genCat(v, path, rmap, overrides)
	case *Alt:
		return genAlt(v, path, rmap, overrides)
	case *Rep:
		return genRep(v, path, rmap, overrides)
	case *Amp:
		return Gen(v.P1, path, rmap, overrides)
	}
	return nil, fmt.Errorf("regexop: gen: unknown op %T", p)
}

func genCat(c *Cat, path core.Path, rmap *core.RecursionMap, overrides OverrideLookup) (igen.Generator, error) {
	gens := make([]igen.Generator, 0, len(c.Ps))
	for i, p := range c.Ps {
		sub := path
		if c.Ks[i] != "" {
			sub = path.Append(c.Ks[i])
		} else {
			sub = path.Append(i)
		}
		g, err := Gen(p, sub, rmap, overrides)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return igen.Cat(gens), nil
}

func genAlt(a *Alt, path core.Path, rmap *core.RecursionMap, overrides OverrideLookup) (igen.Generator, error) {
	cutoff, leave := rmap.Enter(a.ID)
	defer leave()
	if cutoff || len(a.Ps) == 0 {
		return nil, &igen.NoGeneratorError{Path: path, Form: Describe(a)}
	}
	gens := make([]igen.Generator, 0, len(a.Ps))
	for i, p := range a.Ps {
		sub := path
		if a.Ks[i] != "" {
			sub = path.Append(a.Ks[i])
		}
		g, err := Gen(p, sub, rmap, overrides)
		if err != nil {
			continue
		}
		gens = append(gens, g)
	}
	if len(gens) == 0 {
		return nil, &igen.NoGeneratorError{Path: path, Form: Describe(a)}
	}
	return igen.OneOf(gens), nil
}

func genRep(r *Rep, path core.Path, rmap *core.RecursionMap, overrides OverrideLookup) (igen.Generator, error) {
	cutoff, leave := rmap.Enter(r.ID)
	defer leave()
	if cutoff {
		return igen.Return([]interface{}{}), nil
	}
	bodyGen, err := Gen(r.P2, path, rmap, overrides)
	if err != nil {
		return nil, err
	}
	// Each repetition of r.P2 yields its own []interface{} sequence;
	// 0..5 of them are concatenated into one flat sequence, the same
	// shape every other Op's generator produces.
	vecGen := igen.Vector(bodyGen, 0, 5)
	return igen.FMap(vecGen, func(v interface{}) interface{} {
		out := []interface{}{}
		for _, rep := range v.([]interface{}) {
			out = append(out, rep.([]interface{})...)
		}
		return out
	}), nil
}
