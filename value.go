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

// Package spec is a runtime data specification and validation engine:
// specs validate values, conform them to a canonical destructured
// shape, unform (round-trip) that shape back, explain why a value
// fails, and generate sample values. Every Spec implements the same
// six-operation protocol.
package spec

import (
	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
	"github.com/speclang/gospec/internal/regexop"
	"github.com/speclang/gospec/internal/registry"
)

// GenOverrides looks up a generator override for a path, short-circuiting
// regex/collection generation at that point in the value being built.
type GenOverrides func(path core.Path) (igen.Generator, bool)

// Spec is the single polymorphism point: every
// structural variant (leaf, logical, keys, collection, multi-spec,
// fspec, regex adapter) implements this surface uniformly.
type Spec interface {
	// Conform validates and destructures x, returning its canonical
	// form or the core.Invalid sentinel.
	Conform(x interface{}) interface{}
	// Unform inverts Conform. Returns a *UsageError (CodeNotInvertible)
	// if this Spec has no inverse.
	Unform(y interface{}) (interface{}, error)
	// Explain reports structured diagnostics for a non-conforming x.
	// path/in track position in the conformed structure and in the
	// original input, respectively; via is the chain of registered
	// names traversed to reach this spec.
	Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList
	// Gen builds a value generator for this spec, honoring overrides
	// keyed by path and bounding recursion through rmap. Returns an
	// error if none can be built: a *UsageError (CodeNoGenerator) from
	// the spec package's own variants, or the regex engine's
	// *gen.NoGeneratorError passed through by a regex adapter.
	Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error)
	// WithGen returns a copy of this spec whose Gen always returns g.
	WithGen(g igen.Generator) Spec
	// Describe renders this spec's symbolic form.
	Describe() interface{}
}

// Conform is the public conform(spec, x) operation.
func Conform(s Spec, x interface{}) interface{} { return s.Conform(x) }

// Valid is the public valid?(spec, x) operation.
func Valid(s Spec, x interface{}) bool { return !core.IsInvalid(s.Conform(x)) }

// Unform is the public unform(spec, y) operation.
func Unform(s Spec, y interface{}) (interface{}, error) { return s.Unform(y) }

// ExplainData is the public explain_data(spec, x) operation:
// nil means x is valid.
func ExplainData(s Spec, x interface{}) core.ProblemList {
	return s.Explain(nil, nil, nil, x)
}

func withName(via []core.Name, name core.Name) []core.Name {
	out := make([]core.Name, len(via), len(via)+1)
	copy(out, via)
	return append(out, name)
}

// genOverrideSpec implements WithGen generically for every Spec variant
// by embedding the original spec and overriding only Gen, so a
// with-gen'd spec still conforms/explains/describes exactly like its
// source.
type genOverrideSpec struct {
	Spec
	g igen.Generator
}

func (s *genOverrideSpec) Gen(GenOverrides, core.Path, *core.RecursionMap) (igen.Generator, error) {
	return s.g, nil
}

func (s *genOverrideSpec) WithGen(g igen.Generator) Spec {
	return &genOverrideSpec{Spec: s.Spec, g: g}
}

func withGen(s Spec, g igen.Generator) Spec {
	return &genOverrideSpec{Spec: s, g: g}
}

// predSpec is the conforming adapter: it wraps a raw Go
// predicate or conformer function, its symbolic Form, and an optional
// generator into a Spec.
type predSpec struct {
	form      interface{}
	conformFn func(interface{}) interface{}
	inverseFn func(interface{}) (interface{}, error)
	gen       igen.Generator
}

// Pred builds a leaf spec from a boolean predicate: conform returns x
// unchanged when fn(x) holds, else core.Invalid.
func Pred(form interface{}, fn func(interface{}) bool) Spec {
	return &predSpec{
		form: form,
		conformFn: func(x interface{}) interface{} {
			if fn(x) {
				return x
			}
			return core.Invalid
		},
	}
}

// Conformer builds a leaf spec from a conforming function: conformFn
// returns either a transformed value or core.Invalid. inverseFn may be
// nil, in which case Unform returns y unchanged; it raises
// CodeNotInvertible only when y is the core.Invalid sentinel, and does
// not raise for other values.
func Conformer(form interface{}, conformFn func(interface{}) interface{}, inverseFn func(interface{}) (interface{}, error)) Spec {
	return &predSpec{form: form, conformFn: conformFn, inverseFn: inverseFn}
}

func (s *predSpec) Conform(x interface{}) interface{} { return s.conformFn(x) }

func (s *predSpec) Unform(y interface{}) (interface{}, error) {
	if s.inverseFn != nil {
		return s.inverseFn(y)
	}
	if core.IsInvalid(y) {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: %v is INVALID", y)
	}
	return y, nil
}

func (s *predSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	if core.IsInvalid(s.conformFn(x)) {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: s.form}}
	}
	return nil
}

func (s *predSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	if overrides != nil {
		if g, ok := overrides(path); ok {
			return g, nil
		}
	}
	if s.gen != nil {
		return s.gen, nil
	}
	return nil, newUsageError(CodeNoGenerator, map[string]interface{}{"path": path, "form": s.form},
		"no generator at %v for %v", path, s.form)
}

func (s *predSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *predSpec) Describe() interface{} { return s.form }

// withGenLeaf attaches a generator to a freshly built predSpec, for
// leaf constructors in leaf.go/decimal.go that ship a standard
// generator out of the box.
func withGenLeaf(s Spec, g igen.Generator) Spec {
	if ps, ok := s.(*predSpec); ok {
		cp := *ps
		cp.gen = g
		return &cp
	}
	return withGen(s, g)
}

// refSpec is a name reference: recursion is lexical, resolved through
// the Registry at operation time rather than by building a cyclic
// object graph. describe() of a refSpec yields the Name itself,
// not the unrolled target.
type refSpec struct {
	reg  *registry.Registry
	name core.Name
}

// NewRef builds a Spec that looks up name in reg on every operation.
func NewRef(reg *registry.Registry, name core.Name) Spec {
	return &refSpec{reg: reg, name: name}
}

func (s *refSpec) resolve() (Spec, error) {
	res, ok := s.reg.ResolveName(s.name)
	if !ok {
		return nil, newUsageError(CodeUnresolvedName, map[string]interface{}{"name": s.name}, "unresolvable name %v", s.name)
	}
	switch v := res.Value.(type) {
	case Spec:
		return v, nil
	case regexop.Op:
		return NewRegex(v), nil
	default:
		return nil, newUsageError(CodeUnresolvedName, map[string]interface{}{"name": s.name}, "name %v does not resolve to a spec", s.name)
	}
}

func (s *refSpec) Conform(x interface{}) interface{} {
	target, err := s.resolve()
	if err != nil {
		return core.Invalid
	}
	return target.Conform(x)
}

func (s *refSpec) Unform(y interface{}) (interface{}, error) {
	target, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return target.Unform(y)
}

func (s *refSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	target, err := s.resolve()
	if err != nil {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: err.Error()}}
	}
	return target.Explain(path, withName(via, s.name), in, x)
}

func (s *refSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	target, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return target.Gen(overrides, path, rmap)
}

func (s *refSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *refSpec) Describe() interface{} { return s.name }

// regexSpec adapts a regex op (internal/regexop) into a Spec: conform requires x to be nil or a sequence; a
// non-sequence is a single structural Problem rather than a per-element
// descent.
type regexSpec struct {
	op regexop.Op
}

// NewRegex wraps a regex op so it can be used anywhere a Spec is
// expected (e.g. registered by name, nested in and/or).
func NewRegex(op regexop.Op) Spec { return &regexSpec{op: op} }

func toSeq(x interface{}) ([]interface{}, bool) {
	if x == nil {
		return nil, true
	}
	seq, ok := x.([]interface{})
	return seq, ok
}

func (s *regexSpec) Conform(x interface{}) interface{} {
	seq, ok := toSeq(x)
	return regexop.Conform(s.op, seq, ok)
}

func (s *regexSpec) Unform(y interface{}) (interface{}, error) {
	return regexop.Unform(s.op, y)
}

func (s *regexSpec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	seq, ok := toSeq(x)
	return regexop.Explain(s.op, path, via, in, seq, ok)
}

func (s *regexSpec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	var lookup regexop.OverrideLookup
	if overrides != nil {
		lookup = func(p core.Path) (igen.Generator, bool) { return overrides(p) }
	}
	return regexop.Gen(s.op, path, rmap, lookup)
}

func (s *regexSpec) WithGen(g igen.Generator) Spec { return withGen(s, g) }

func (s *regexSpec) Describe() interface{} { return regexop.Describe(s.op) }
