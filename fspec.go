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

// Callable is the abstract shape a candidate function takes for
// fspec/instrumentation purposes: a slice of raw (unconformed)
// arguments in, a single return value out. Resolving a host language's
// named callables to this shape is left to callers, who adapt their
// own functions to Callable.
type Callable func(args []interface{}) (interface{}, error)

// FnPair is the {args, ret} pair an fspec's Fn predicate validates,
// both already conformed.
type FnPair struct {
	Args interface{}
	Ret  interface{}
}

// Fspec holds the three sub-specs of a function contract: Args
// is a regex spec over the argument sequence, Ret validates the return
// value, and Fn (optional) is a predicate over the conformed
// {args, ret} pair.
type Fspec struct {
	Args       Spec
	Ret        Spec
	Fn         func(FnPair) bool
	Iterations int // 0 means Config.FspecIterations
	cfg        Config
}

// NewFspec builds a function contract. cfg supplies FspecIterations
// when Iterations is left at 0.
func NewFspec(args, ret Spec, fn func(FnPair) bool, cfg Config) *Fspec {
	return &Fspec{Args: args, Ret: ret, Fn: fn, cfg: cfg}
}

func (f *Fspec) iterations() int {
	if f.Iterations > 0 {
		return f.Iterations
	}
	if f.cfg.FspecIterations > 0 {
		return f.cfg.FspecIterations
	}
	return DefaultConfig().FspecIterations
}

// Conform samples Args for Iterations trials: for each sample,
// it conforms the args, invokes the candidate with the ORIGINAL
// (unconformed) sample, conforms the return, and checks Fn over the
// conformed pair. The first counterexample makes the whole candidate
// INVALID; otherwise Conform returns the candidate itself unchanged
// (functions are not destructured the way data is).
func (f *Fspec) Conform(x interface{}) interface{} {
	fn, ok := x.(Callable)
	if !ok {
		return core.Invalid
	}
	if f.counterexample(fn, nil) != nil {
		return core.Invalid
	}
	return fn
}

// counterexample runs the generative trials and returns the
// []interface{} sample that failed, or nil if every trial passed; when
// no args sample can be generated it returns an empty, non-nil sample.
// rnd defaults to a source with a fixed seed when nil, so every call
// draws the same sequence of samples.
func (f *Fspec) counterexample(fn Callable, rnd *rand.Rand) []interface{} {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(1, 2))
	}
	argsGen, err := f.Args.Gen(nil, nil, core.NewRecursionMap(DefaultConfig().RecursionLimit))
	if err != nil {
		return []interface{}{}
	}
	for i := 0; i < f.iterations(); i++ {
		sampleVal, err := argsGen.Generate(rnd)
		if err != nil {
			return []interface{}{}
		}
		sample, _ := sampleVal.([]interface{})
		conformedArgs := f.Args.Conform(sample)
		if core.IsInvalid(conformedArgs) {
			return sample
		}
		ret, err := fn(sample)
		if err != nil {
			return sample
		}
		conformedRet := f.Ret.Conform(ret)
		if core.IsInvalid(conformedRet) {
			return sample
		}
		if f.Fn != nil && !f.Fn(FnPair{Args: conformedArgs, Ret: conformedRet}) {
			return sample
		}
	}
	return nil
}

func (f *Fspec) Unform(y interface{}) (interface{}, error) {
	fn, ok := y.(Callable)
	if !ok {
		return nil, newUsageError(CodeNotInvertible, nil, "unform: fspec: expected Callable, got %T", y)
	}
	return fn, nil
}

// Explain re-runs the generative trials and reports the failing
// sample. Both draw the same fixed-seed samples, but the replay is not
// guaranteed to reproduce the SAME counterexample Conform found: the
// candidate may be stateful and answer differently the second time.
func (f *Fspec) Explain(path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	fn, ok := x.(Callable)
	if !ok {
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Reason: "not a Callable"}}
	}
	sample := f.counterexample(fn, nil)
	if sample == nil {
		return nil
	}
	return core.ProblemList{{
		Path: path, Via: via, In: in, Val: sample,
		Pred:   f.Describe(),
		Reason: "generative trial found a counterexample",
	}}
}

// Gen returns a stub Callable that asserts its args conform to Args
// then returns a value generated from Ret, drawn once when the stub is
// generated. Instrumentation's :stub option does not use it; it draws
// from Ret's generator on every call.
func (f *Fspec) Gen(overrides GenOverrides, path core.Path, rmap *core.RecursionMap) (igen.Generator, error) {
	retGen, err := f.Ret.Gen(overrides, path.Append("ret"), rmap)
	if err != nil {
		return nil, err
	}
	argsSpec := f.Args
	return igen.Func(func(rnd *rand.Rand) (interface{}, error) {
		v, err := retGen.Generate(rnd)
		if err != nil {
			return nil, err
		}
		stub := Callable(func(args []interface{}) (interface{}, error) {
			if core.IsInvalid(argsSpec.Conform(args)) {
				return nil, newUsageError(CodeArgMismatch, map[string]interface{}{"args": args}, "stub: args do not conform")
			}
			return v, nil
		})
		return stub, nil
	}), nil
}

func (f *Fspec) WithGen(g igen.Generator) Spec { return withGen(f, g) }

func (f *Fspec) Describe() interface{} {
	out := []interface{}{"fspec", "args", f.Args.Describe(), "ret", f.Ret.Describe()}
	if f.Fn != nil {
		out = append(out, "fn", "<predicate>")
	}
	return out
}
