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
	"fmt"
	"sort"

	"github.com/mpvl/unique"

	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// Kind names the collection shape every/coll-of/map-of validate
// against.
type Kind int

const (
	KindAny Kind = iota
	KindList
	KindVector
	KindMap
	KindSet
)

func kindOK(kind Kind, x interface{}) bool {
	switch kind {
	case KindVector, KindList:
		_, ok := x.([]interface{})
		return ok
	case KindMap:
		_, ok := x.(map[string]interface{})
		return ok
	case KindSet:
		_, ok := x.(map[interface{}]struct{})
		return ok
	default:
		return true
	}
}

func toSlice(x interface{}) ([]interface{}, bool) {
	switch v := x.(type) {
	case []interface{}:
		return v, true
	case map[interface{}]struct{}:
		out := make([]interface{}, 0, len(v))
		for k := range v {
			out = append(out, k)
		}
		return out, true
	default:
		return nil, false
	}
}

// CollOpts configures every/coll-of: Kind constrains the accepted
// shape; Count/MinCount/MaxCount bound cardinality; Distinct requires
// every element be pairwise-unique; Into names the target shape
// coll-of rebuilds into ("vector", "list", or "set"; "" infers from
// Kind: KindSet rebuilds a set, any other Kind a vector). Kind: KindMap / Into: "map" is not a CollOf combination:
// map-shaped collections of [k,v] pairs are MapOf's job (§4.G), since
// rebuilding a map needs a key spec CollOpts has no field for; toSlice
// already rejects map[string]interface{} input, so CollOf with
// Kind: KindMap always conforms to INVALID rather than silently
// mis-rebuilding.
type CollOpts struct {
	Kind                      Kind
	Count, MinCount, MaxCount int // 0 means "unbounded" for Min/Max; Count==0 means "unconstrained"
	Distinct                  bool
	Into                      string
}

func (o CollOpts) countOK(n int) bool {
	if o.Count > 0 && n != o.Count {
		return false
	}
	if o.MinCount > 0 && n < o.MinCount {
		return false
	}
	if o.MaxCount > 0 && n > o.MaxCount {
		return false
	}
	return true
}

// distinctOK sorts-and-dedupes a stable string key per element via
// mpvl/unique, the same O(n log n) technique keys.go uses for
// duplicate-key detection, rather than an O(n^2) pairwise comparison.
func distinctOK(items []interface{}) bool {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = fmt.Sprintf("%#v", it)
	}
	sort.Strings(keys)
	deduped := uniqueStrings(append([]string{}, keys...))
	unique.Sort(&deduped)
	return len(deduped) == len(keys)
}

// everySpec is a sampled collection validator: it never
// rebuilds the collection, and bounds how many elements it reads via
// Config.CollCheckLimit.
type everySpec struct {
	el   Spec
	opts CollOpts
	cfg  Config
}

// Every builds the "every" collection spec: a sampled-validation
// pass over an arbitrary collection that does not rebuild it.
func Every(el Spec, opts CollOpts, cfg Config) Spec {
	return &everySpec{el: el, opts: opts, cfg: cfg}
}

// sampleIndices picks up to limit indices stepping ceil(n/limit) across
// n elements.
func sampleIndices(n, limit int) []int {
	if n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	step := (n + limit - 1) / limit
	var out []int
	for i := 0; i < n; i += step {
		out = append(out, i)
	}
	return out
}

func (s *everySpec) Conform(x interface{}) interface{} {
	if !kindOK(s.opts.Kind, x) {
		return core.Invalid
	}
	items, ok := toSlice(x)
	if !ok {
		return core.Invalid
	}
	if !s.opts.countOK(len(items)) {
		return core.Invalid
	}
	if s.opts.Distinct && !distinctOK(items) {
		return core.Invalid
	}
	limit := s.cfg.CollCheckLimit
	if limit <= 0 {
		limit = DefaultConfig().CollCheckLimit
	}
	for _, i := range sampleIndices(len(items), limit) {
		if core.IsInvalid(s.el.Conform(items[i])) {
			return core.Invalid
		}
	}
	return x
}

func (s *everySpec) Unform(y interface{}) (interface{}, error) { return y, nil }

func (s *everySpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	if !kindOK(s.opts.Kind, x) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "wrong collection kind"}}
	}
	items, ok := toSlice(x)
	if !ok {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "not a collection"}}
	}
	if !s.opts.countOK(len(items)) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: "count-in-range?", Reason: "wrong element count"}}
	}
	if s.opts.Distinct && !distinctOK(items) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: "distinct?"}}
	}
	limit := s.cfg.CollCheckLimit
	if limit <= 0 {
		limit = DefaultConfig().CollCheckLimit
	}
	errLimit := s.cfg.CollErrorLimit
	if errLimit <= 0 {
		errLimit = DefaultConfig().CollErrorLimit
	}
	var out core.ProblemList
	for _, i := range sampleIndices(len(items), limit) {
		if len(out) >= errLimit {
			break
		}
		out = append(out, s.el.Explain(path.Append(i), via, in.Append(i), items[i])...)
	}
	return out
}

func (s *everySpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	eg, err := s.el.Gen(overrides, path.Append(0), rmap)
	if err != nil {
		return nil, err
	}
	min, max := s.opts.MinCount, s.opts.MaxCount
	if s.opts.Count > 0 {
		min, max = s.opts.Count, s.opts.Count
	}
	if max == 0 {
		max = min + 5
	}
	return igen.Vector(eg, min, max), nil
}

func (s *everySpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *everySpec) Describe() interface{} {
	return []interface{}{"every", s.el.Describe()}
}

// collOfSpec is "coll-of": like every but conform_all=true, rebuilding
// the collection with every element conformed.
type collOfSpec struct {
	el   Spec
	opts CollOpts
	cfg  Config
}

// CollOf builds the "coll-of" spec.
func CollOf(el Spec, opts CollOpts, cfg Config) Spec {
	return &collOfSpec{el: el, opts: opts, cfg: cfg}
}

func (s *collOfSpec) Conform(x interface{}) interface{} {
	if !kindOK(s.opts.Kind, x) {
		return core.Invalid
	}
	items, ok := toSlice(x)
	if !ok {
		return core.Invalid
	}
	if !s.opts.countOK(len(items)) {
		return core.Invalid
	}
	if s.opts.Distinct && !distinctOK(items) {
		return core.Invalid
	}
	out := make([]interface{}, len(items))
	for i, it := range items {
		c := s.el.Conform(it)
		if core.IsInvalid(c) {
			return core.Invalid
		}
		out[i] = c
	}
	return s.rebuild(out)
}

// rebuild assembles the conformed elements per Into/the original Kind:
// "set" rebuilds a map[interface{}]struct{}; anything else (vector,
// list, or unspecified) is a plain []interface{} — Go has no distinct
// linked-list/vector runtime representation, so "list" vs "vector" is
// purely a declared-intent label here, and collapses to a no-op once
// there is only one underlying slice representation. There is no
// "map" case: CollOf never reaches rebuild with Kind: KindMap input
// (toSlice rejects map[string]interface{}), and map-shaped [k,v]
// rebuilding with its own key spec is MapOf's responsibility instead.
func (s *collOfSpec) rebuild(items []interface{}) interface{} {
	into := s.opts.Into
	if into == "" && s.opts.Kind == KindSet {
		into = "set"
	}
	switch into {
	case "set":
		out := make(map[interface{}]struct{}, len(items))
		for _, it := range items {
			out[it] = struct{}{}
		}
		return out
	default:
		return items
	}
}

func (s *collOfSpec) Unform(y interface{}) (interface{}, error) {
	items, ok := toSlice(y)
	if !ok {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: coll-of: expected a collection, got %T", y)
	}
	out := make([]interface{}, len(items))
	for i, it := range items {
		raw, err := s.el.Unform(it)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return s.rebuild(out), nil
}

func (s *collOfSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	if !kindOK(s.opts.Kind, x) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "wrong collection kind"}}
	}
	items, ok := toSlice(x)
	if !ok {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "not a collection"}}
	}
	if !s.opts.countOK(len(items)) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: "count-in-range?", Reason: "wrong element count"}}
	}
	if s.opts.Distinct && !distinctOK(items) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: "distinct?"}}
	}
	errLimit := s.cfg.CollErrorLimit
	if errLimit <= 0 {
		errLimit = DefaultConfig().CollErrorLimit
	}
	var out core.ProblemList
	for i, it := range items {
		if len(out) >= errLimit {
			break
		}
		out = append(out, s.el.Explain(path.Append(i), via, in.Append(i), it)...)
	}
	return out
}

func (s *collOfSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	eg, err := s.el.Gen(overrides, path.Append(0), rmap)
	if err != nil {
		return nil, err
	}
	min, max := s.opts.MinCount, s.opts.MaxCount
	if s.opts.Count > 0 {
		min, max = s.opts.Count, s.opts.Count
	}
	if max == 0 {
		max = min + 5
	}
	if s.opts.Distinct {
		return igen.FMap(igen.VectorDistinct(eg, igen.VectorDistinctOpts{Min: min, Max: max}), func(v interface{}) interface{} {
			return s.rebuild(v.([]interface{}))
		}), nil
	}
	return igen.FMap(igen.Vector(eg, min, max), func(v interface{}) interface{} {
		return s.rebuild(v.([]interface{}))
	}), nil
}

func (s *collOfSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *collOfSpec) Describe() interface{} {
	return []interface{}{"coll-of", s.el.Describe()}
}

// MapOf builds "map-of": coll-of over [k,v] pairs with Kind=map.
// ConformKeys, when true, also conforms keys through keySpec; otherwise
// keys pass through verbatim.
func MapOf(keySpec, valSpec Spec, conformKeys bool, cfg Config) Spec {
	return &mapOfSpec{keySpec: keySpec, valSpec: valSpec, conformKeys: conformKeys, cfg: cfg}
}

type mapOfSpec struct {
	keySpec, valSpec Spec
	conformKeys      bool
	cfg              Config
}

func (s *mapOfSpec) Conform(x interface{}) interface{} {
	m, ok := x.(map[string]interface{})
	if !ok {
		return core.Invalid
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		keyOut := interface{}(k)
		if s.conformKeys {
			c := s.keySpec.Conform(k)
			if core.IsInvalid(c) {
				return core.Invalid
			}
			keyStr, ok := c.(string)
			if !ok {
				return core.Invalid
			}
			keyOut = keyStr
		} else if core.IsInvalid(s.keySpec.Conform(k)) {
			return core.Invalid
		}
		cv := s.valSpec.Conform(v)
		if core.IsInvalid(cv) {
			return core.Invalid
		}
		out[keyOut.(string)] = cv
	}
	return out
}

func (s *mapOfSpec) Unform(y interface{}) (interface{}, error) {
	m, ok := y.(map[string]interface{})
	if !ok {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: map-of: expected map[string]interface{}, got %T", y)
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		keyOut := interface{}(k)
		if s.conformKeys {
			raw, err := s.keySpec.Unform(k)
			if err != nil {
				return nil, err
			}
			keyOut = raw
		}
		raw, err := s.valSpec.Unform(v)
		if err != nil {
			return nil, err
		}
		out[fmt.Sprintf("%v", keyOut)] = raw
	}
	return out, nil
}

func (s *mapOfSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	m, ok := x.(map[string]interface{})
	if !ok {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "not a map"}}
	}
	var out core.ProblemList
	for k, v := range m {
		if s.conformKeys {
			out = append(out, s.keySpec.Explain(path.Append(k).Append("key"), via, in.Append(k), k)...)
		}
		out = append(out, s.valSpec.Explain(path.Append(k), via, in.Append(k), v)...)
	}
	return out
}

func (s *mapOfSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	kg, err := s.keySpec.Gen(overrides, path.Append("key"), rmap)
	if err != nil {
		return nil, err
	}
	vg, err := s.valSpec.Gen(overrides, path.Append("val"), rmap)
	if err != nil {
		return nil, err
	}
	return igen.FMap(igen.Vector(igen.Tuple([]igen.Generator{kg, vg}), 0, 5), func(v interface{}) interface{} {
		pairs := v.([]interface{})
		out := make(map[string]interface{}, len(pairs))
		for _, p := range pairs {
			kv := p.([]interface{})
			out[fmt.Sprintf("%v", kv[0])] = kv[1]
		}
		return out
	}), nil
}

func (s *mapOfSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *mapOfSpec) Describe() interface{} {
	return []interface{}{"map-of", s.keySpec.Describe(), s.valSpec.Describe()}
}

// tupleSpec is a fixed-arity vector spec: position i must conform to
// Specs[i].
type tupleSpec struct {
	specs []Spec
}

// Tuple builds the fixed-arity tuple spec (S1: tuple(int?, string?)).
func Tuple(specs ...Spec) Spec { return &tupleSpec{specs: specs} }

func (s *tupleSpec) Conform(x interface{}) interface{} {
	items, ok := x.([]interface{})
	if !ok || len(items) != len(s.specs) {
		return core.Invalid
	}
	out := make([]interface{}, len(items))
	for i, el := range s.specs {
		c := el.Conform(items[i])
		if core.IsInvalid(c) {
			return core.Invalid
		}
		out[i] = c
	}
	return out
}

func (s *tupleSpec) Unform(y interface{}) (interface{}, error) {
	items, ok := y.([]interface{})
	if !ok || len(items) != len(s.specs) {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: tuple: arity mismatch, got %T", y)
	}
	out := make([]interface{}, len(items))
	for i, el := range s.specs {
		raw, err := el.Unform(items[i])
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

// Explain yields {pred=(= (count %) N), val=x} when the arity itself
// is wrong (S1: conform(S, [1]) = INVALID; explain yields
// {pred=(= (count %) 2), val=[1]}), else descends per-position.
func (s *tupleSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	items, ok := x.([]interface{})
	if !ok || len(items) != len(s.specs) {
		return core.ProblemList{{
			Path: path, Via: via, In: in, Val: x,
			Pred: fmt.Sprintf("(= (count %%) %d)", len(s.specs)),
		}}
	}
	var out core.ProblemList
	for i, el := range s.specs {
		out = append(out, el.Explain(path.Append(i), via, in.Append(i), items[i])...)
	}
	return out
}

func (s *tupleSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	gens := make([]igen.Generator, len(s.specs))
	for i, el := range s.specs {
		g, err := el.Gen(overrides, path.Append(i), rmap)
		if err != nil {
			return nil, err
		}
		gens[i] = g
	}
	return igen.Tuple(gens), nil
}

func (s *tupleSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *tupleSpec) Describe() interface{} {
	out := []interface{}{"tuple"}
	for _, el := range s.specs {
		out = append(out, el.Describe())
	}
	return out
}
