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

// Generator re-exports the internal/gen.Generator interface so
// callers outside this module never need to import internal/gen
// directly to hold onto a built generator.
type Generator = igen.Generator

// Gen is the public gen(spec, overrides?) operation: it builds
// a generator for s, honoring overrides by path, bounded by the
// package-default recursion limit.
func Gen(s Spec, overrides GenOverrides) (Generator, error) {
	return GenWith(s, overrides, DefaultConfig())
}

// GenWith is Gen with an explicit Config, so callers can override the
// recursion limit per call-site.
func GenWith(s Spec, overrides GenOverrides, cfg Config) (Generator, error) {
	return s.Gen(overrides, nil, core.NewRecursionMap(cfg.RecursionLimit))
}

// Exercised pairs a raw generated value with its conformed form, the
// result shape of the public exercise(spec, n?, overrides?) operation
//.
type Exercised struct {
	Value     interface{}
	Conformed interface{}
}

const defaultExerciseN = 10

// Exercise samples n values (default 10 when n <= 0) from gen(s,
// overrides), pairing each with its conformed value.
func Exercise(s Spec, n int, overrides GenOverrides) ([]Exercised, error) {
	return ExerciseWith(s, n, overrides, DefaultConfig(), 1)
}

// ExerciseWith is Exercise with an explicit Config and random seed, for
// reproducible sampling (Exercise itself always uses seed 1, so
// cmd/specctl's `exercise` subcommand prints the same samples on every
// run).
func ExerciseWith(s Spec, n int, overrides GenOverrides, cfg Config, seed uint64) ([]Exercised, error) {
	if n <= 0 {
		n = defaultExerciseN
	}
	g, err := GenWith(s, overrides, cfg)
	if err != nil {
		return nil, err
	}
	samples, err := igen.Sample(g, n, seed)
	if err != nil {
		return nil, err
	}
	out := make([]Exercised, len(samples))
	for i, v := range samples {
		out[i] = Exercised{Value: v, Conformed: s.Conform(v)}
	}
	return out, nil
}

// GenerateOne draws a single fresh value from g, reseeded from the
// package's default random source on every call. This is the primitive
// instrumentation's :stub option uses to produce one value per
// invocation, rather than the same value every time.
func GenerateOne(g Generator) (interface{}, error) {
	return igen.Generate(g, rand.Uint64())
}
