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
	"sort"

	"github.com/mpvl/unique"

	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// KeyGroup is a logical key-presence requirement: either a single
// required key, or an and/or group over nested KeyGroups.
type KeyGroup struct {
	Key   core.Name
	And   []KeyGroup
	Or    []KeyGroup
	group bool
}

// ReqKey builds a leaf KeyGroup requiring a single key to be present.
func ReqKey(k core.Name) KeyGroup { return KeyGroup{Key: k} }

// ReqAnd builds a group satisfied only when every nested group is.
func ReqAnd(groups ...KeyGroup) KeyGroup { return KeyGroup{And: groups, group: true} }

// ReqOr builds a group satisfied when any nested group is.
func ReqOr(groups ...KeyGroup) KeyGroup { return KeyGroup{Or: groups, group: true} }

// keys returns every Name a group touches, used both for presence
// checking and for describe().
func (g KeyGroup) keys() []core.Name {
	if !g.group {
		return []core.Name{g.Key}
	}
	var out []core.Name
	for _, sub := range g.And {
		out = append(out, sub.keys()...)
	}
	for _, sub := range g.Or {
		out = append(out, sub.keys()...)
	}
	return out
}

// satisfied reports whether present (a set of map-key presence) can
// satisfy g. unqualified selects how a leaf's Key is compared against
// present: req/opt groups compare by the full qualified name (the map
// key IS the Name), while req-un/opt-un groups compare by Key.Local()
// since those check presence under the bare local name.
func (g KeyGroup) satisfied(present map[string]bool, unqualified bool) bool {
	if !g.group {
		if unqualified {
			return present[g.Key.Local()]
		}
		return present[string(g.Key)]
	}
	if len(g.And) > 0 {
		for _, sub := range g.And {
			if !sub.satisfied(present, unqualified) {
				return false
			}
		}
		return true
	}
	for _, sub := range g.Or {
		if sub.satisfied(present, unqualified) {
			return true
		}
	}
	return false
}

// describe renders the group the way 's [::a (or ::b (and
// ::c ::d))] example is written.
func (g KeyGroup) describe() interface{} {
	if !g.group {
		return g.Key
	}
	op := "and"
	subs := g.And
	if len(g.Or) > 0 {
		op, subs = "or", g.Or
	}
	out := []interface{}{op}
	for _, s := range subs {
		out = append(out, s.describe())
	}
	return out
}

// KeySpec configures a keys spec: Req/Opt name registered specs
// looked up by their own (qualified) name; ReqUn/OptUn check presence
// by LOCAL name but still conform the value via the spec registered
// under their full Name.
type KeySpec struct {
	Req   []KeyGroup
	Opt   []core.Name
	ReqUn []KeyGroup
	OptUn []core.Name
}

type keysSpec struct {
	reg  *registryLookup
	spec KeySpec
	id   int64
}

// registryLookup is the minimal surface keysSpec needs from a registry,
// populated by Keys with GetSpec from registry.go.
type registryLookup struct {
	get func(core.Name) (Spec, bool)
}

// Keys builds the keyed-map spec, resolving per-key specs
// through the process-wide default registry (the same registry Def/
// GetSpec use). It panics if any key name is listed more than once
// across Req, ReqUn, Opt and OptUn (for example required AND optional
// at once), a construction-time programmer error caught via
// the same sort-then-dedup idiom collections.go uses for `distinct`.
func Keys(ks KeySpec) Spec {
	var all []core.Name
	for _, g := range allReqKeys(ks) {
		all = append(all, g.keys()...)
	}
	all = append(all, ks.Opt...)
	all = append(all, ks.OptUn...)
	if dup, ok := firstDuplicateName(all); ok {
		panic("spec: keys: key " + string(dup) + " listed more than once")
	}
	return &keysSpec{
		reg:  &registryLookup{get: GetSpec},
		spec: ks,
		id:   core.NextID(),
	}
}

func allReqKeys(ks KeySpec) []KeyGroup {
	return append(append([]KeyGroup{}, ks.Req...), ks.ReqUn...)
}

// firstDuplicateName sorts-and-dedupes names via mpvl/unique and
// reports the first name that appeared more than once, the same
// O(n log n) technique collections.go uses for `distinct` checking,
// rather than an O(n^2) pairwise scan.
func firstDuplicateName(names []core.Name) (core.Name, bool) {
	strs := make([]string, len(names))
	for i, n := range names {
		strs[i] = string(n)
	}
	sort.Strings(strs)
	deduped := uniqueStrings(append([]string{}, strs...))
	unique.Sort(&deduped)
	if len(deduped) == len(strs) {
		return "", false
	}
	// The first element whose neighbor (in the sorted original) equals
	// it is the duplicate.
	for i := 1; i < len(strs); i++ {
		if strs[i] == strs[i-1] {
			return core.Name(strs[i]), true
		}
	}
	return "", false
}

// uniqueStrings adapts a []string to mpvl/unique's Interface (sort.Interface
// plus Truncate), the minimal shape its Sort function requires to
// dedup a pre-sorted slice in place.
type uniqueStrings []string

func (u uniqueStrings) Len() int           { return len(u) }
func (u uniqueStrings) Less(i, j int) bool { return u[i] < u[j] }
func (u uniqueStrings) Swap(i, j int)      { u[i], u[j] = u[j], u[i] }
func (u *uniqueStrings) Truncate(n int)    { *u = (*u)[:n] }

func (s *keysSpec) presenceMap(m map[string]interface{}) map[string]bool {
	present := make(map[string]bool, len(m))
	for k := range m {
		present[k] = true
	}
	return present
}

func (s *keysSpec) unsatisfiedGroups(present map[string]bool) []KeyGroup {
	var out []KeyGroup
	for _, g := range s.spec.Req {
		if !g.satisfied(present, false) {
			out = append(out, g)
		}
	}
	for _, g := range s.spec.ReqUn {
		if !g.satisfied(present, true) {
			out = append(out, g)
		}
	}
	return out
}

func (s *keysSpec) Conform(x interface{}) interface{} {
	m, ok := x.(map[string]interface{})
	if !ok {
		return core.Invalid
	}
	present := s.presenceMap(m)
	if len(s.unsatisfiedGroups(present)) > 0 {
		return core.Invalid
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		name, ok := s.nameForKey(k)
		if !ok {
			out[k] = v
			continue
		}
		sub, ok := s.reg.get(name)
		if !ok {
			out[k] = v
			continue
		}
		c := sub.Conform(v)
		if core.IsInvalid(c) {
			return core.Invalid
		}
		out[k] = c
	}
	return out
}

// nameForKey recovers the full registered Name for a bare map key k:
// qualified keys carry their own namespace already (k IS the Name);
// unqualified keys (req_un/opt_un) are matched against the Local() of
// every configured unqualified Name to recover its qualifying
// namespace.
func (s *keysSpec) nameForKey(k string) (core.Name, bool) {
	n := core.Name(k)
	if n.Qualified() {
		return n, true
	}
	for _, g := range s.spec.ReqUn {
		for _, cand := range g.keys() {
			if cand.Local() == k {
				return cand, true
			}
		}
	}
	for _, cand := range s.spec.OptUn {
		if cand.Local() == k {
			return cand, true
		}
	}
	return n, false
}

func (s *keysSpec) Unform(y interface{}) (interface{}, error) {
	m, ok := y.(map[string]interface{})
	if !ok {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: keys: expected map[string]interface{}, got %T", y)
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		name, ok := s.nameForKey(k)
		if !ok {
			out[k] = v
			continue
		}
		sub, ok := s.reg.get(name)
		if !ok {
			out[k] = v
			continue
		}
		raw, err := sub.Unform(v)
		if err != nil {
			return nil, err
		}
		out[k] = raw
	}
	return out, nil
}

// Explain separately reports (a) unsatisfied key-presence groups as one
// Problem, and (b) one Problem-subtree per key whose value fails its
// registered spec.
func (s *keysSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	m, ok := x.(map[string]interface{})
	if !ok {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: "map?", Reason: "not a map"}}
	}
	present := s.presenceMap(m)
	var out core.ProblemList
	if missing := s.unsatisfiedGroups(present); len(missing) > 0 {
		preds := make([]interface{}, len(missing))
		for i, g := range missing {
			preds[i] = g.describe()
		}
		out = append(out, core.Problem{Path: path, Via: via, In: in, Val: x, Pred: preds, Reason: "missing required key(s)"})
	}
	for k, v := range m {
		name, ok := s.nameForKey(k)
		if !ok {
			continue
		}
		sub, ok := s.reg.get(name)
		if !ok {
			continue
		}
		out = append(out, sub.Explain(path.Append(k), via, in.Append(k), v)...)
	}
	return out
}

// Gen selects a random subset of optional keys, combines them with
// every required key, and assembles a map from each key's generator
//, guarded by rmap so a recursive keys spec terminates.
func (s *keysSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	cutoff, leave := rmap.Enter(s.id)
	defer leave()
	if cutoff {
		return igen.Return(map[string]interface{}{}), nil
	}
	var required []genEntry
	for _, g := range allReqKeys(s.spec) {
		for _, name := range g.keys() {
			e, err := s.genEntry(overrides, path, rmap, name)
			if err != nil {
				return nil, err
			}
			required = append(required, e)
		}
	}
	var optional []genEntry
	for _, name := range append(append([]core.Name{}, s.spec.Opt...), s.spec.OptUn...) {
		e, err := s.genEntry(overrides, path, rmap, name)
		if err != nil {
			continue
		}
		optional = append(optional, e)
	}
	return igen.Func(func(rnd *rand.Rand) (interface{}, error) {
		out := map[string]interface{}{}
		for _, e := range required {
			v, err := e.g.Generate(rnd)
			if err != nil {
				return nil, err
			}
			out[e.key] = v
		}
		if len(optional) > 0 {
			n := rnd.IntN(len(optional) + 1)
			rnd.Shuffle(len(optional), func(i, j int) { optional[i], optional[j] = optional[j], optional[i] })
			for _, e := range optional[:n] {
				v, err := e.g.Generate(rnd)
				if err != nil {
					return nil, err
				}
				out[e.key] = v
			}
		}
		return out, nil
	}), nil
}

type genEntry struct {
	key string
	g   igen.Generator
}

func (s *keysSpec) genEntry(overrides GenOverrides, path core.Path, rmap *core.RecursionMap, name core.Name) (genEntry, error) {
	sub, ok := s.reg.get(name)
	if !ok {
		return genEntry{}, newUsageError(CodeNoGenerator, map[string]interface{}{"path": path, "name": name}, "keys: no spec registered for %v", name)
	}
	g, err := sub.Gen(overrides, path.Append(name.Local()), rmap)
	if err != nil {
		return genEntry{}, err
	}
	return genEntry{key: name.Local(), g: g}, nil
}

func (s *keysSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *keysSpec) Describe() interface{} {
	out := []interface{}{"keys"}
	if len(s.spec.Req) > 0 {
		reqs := make([]interface{}, len(s.spec.Req))
		for i, g := range s.spec.Req {
			reqs[i] = g.describe()
		}
		out = append(out, "req", reqs)
	}
	if len(s.spec.Opt) > 0 {
		out = append(out, "opt", s.spec.Opt)
	}
	if len(s.spec.ReqUn) > 0 {
		reqs := make([]interface{}, len(s.spec.ReqUn))
		for i, g := range s.spec.ReqUn {
			reqs[i] = g.describe()
		}
		out = append(out, "req-un", reqs)
	}
	if len(s.spec.OptUn) > 0 {
		out = append(out, "opt-un", s.spec.OptUn)
	}
	return out
}
