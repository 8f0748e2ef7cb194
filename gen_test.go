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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/speclang/gospec/internal/core"
	"github.com/speclang/gospec/internal/regexop"
)

func TestGenAndExerciseProduceConformingValues(t *testing.T) {
	s := And(IntSpec(), PosIntSpec())
	samples, err := Exercise(s, 5, nil)
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for _, ex := range samples {
		require.False(t, core.IsInvalid(ex.Conformed))
	}
}

func TestExerciseDefaultsNWhenNonPositive(t *testing.T) {
	samples, err := Exercise(IntSpec(), 0, nil)
	require.NoError(t, err)
	require.Len(t, samples, defaultExerciseN)
}

func TestExerciseWithIsDeterministicForAFixedSeed(t *testing.T) {
	a, err := ExerciseWith(IntSpec(), 3, nil, DefaultConfig(), 42)
	require.NoError(t, err)
	b, err := ExerciseWith(IntSpec(), 3, nil, DefaultConfig(), 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateOneDrawsFromGenerator(t *testing.T) {
	g, err := Gen(IntSpec(), nil)
	require.NoError(t, err)
	v, err := GenerateOne(g)
	require.NoError(t, err)
	_, ok := v.(int)
	require.True(t, ok)
}

func catStarThenString() regexop.Op {
	intPred := regexop.NewPred(func(x interface{}) interface{} {
		if _, ok := x.(int); ok {
			return x
		}
		return core.Invalid
	}, "int?", nil)
	stringPred := regexop.NewPred(func(x interface{}) interface{} {
		if _, ok := x.(string); ok {
			return x
		}
		return core.Invalid
	}, "string?", nil)
	return regexop.NewCat([]string{"xs", "s"}, []interface{}{"(* int?)", "string?"},
		regexop.NewStar(intPred, "int?"), stringPred)
}

// S4: cat(:xs (* int?), :s string?) built via the public regexSpec
// adapter, exercised through the root package's NewRegex/Conform path.
func TestRegexSpecConformsCatStar(t *testing.T) {
	s := NewRegex(catStarThenString())
	require.Equal(t,
		map[string]interface{}{"xs": []interface{}{1, 2, 3}, "s": "x"},
		s.Conform([]interface{}{1, 2, 3, "x"}),
	)
}
