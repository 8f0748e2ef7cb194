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

package gen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReturnAndFMap(t *testing.T) {
	g := FMap(Return(3), func(v interface{}) interface{} { return v.(int) * 2 })
	v, err := Generate(g, 1)
	require.NoError(t, err)
	require.Equal(t, 6, v)
}

func TestBind(t *testing.T) {
	g := Bind(Choose(1, 1), func(v interface{}) Generator {
		return Return(v.(int64) + 100)
	})
	v, err := Generate(g, 2)
	require.NoError(t, err)
	require.Equal(t, int64(101), v)
}

func TestSuchThatRetriesThenSucceeds(t *testing.T) {
	g := SuchThat(Choose(0, 9), func(v interface{}) bool { return v.(int64) == 5 }, 10000)
	v, err := Generate(g, 42)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}

func TestSuchThatExhaustsAndErrors(t *testing.T) {
	g := SuchThat(Choose(0, 9), func(v interface{}) bool { return false }, 5)
	_, err := Generate(g, 1)
	require.Error(t, err)
}

func TestOneOfOverEmptyErrors(t *testing.T) {
	g := OneOf(nil)
	_, err := Generate(g, 1)
	require.Error(t, err)
}

func TestTupleOrdersResults(t *testing.T) {
	g := Tuple([]Generator{Return(1), Return("a"), Return(true)})
	v, err := Generate(g, 1)
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, "a", true}, v)
}

func TestVectorRespectsBounds(t *testing.T) {
	g := Vector(Return(7), 2, 4)
	v, err := Generate(g, 1)
	require.NoError(t, err)
	items := v.([]interface{})
	require.GreaterOrEqual(t, len(items), 2)
	require.LessOrEqual(t, len(items), 4)
	for _, it := range items {
		require.Equal(t, 7, it)
	}
}

func TestVectorDistinctFailsWhenNotEnoughDistinctValues(t *testing.T) {
	g := VectorDistinct(Return(1), VectorDistinctOpts{Num: 3, MaxTries: 3})
	_, err := Generate(g, 1)
	require.Error(t, err)
}

func TestVectorDistinctSucceeds(t *testing.T) {
	g := VectorDistinct(Choose(0, 1000), VectorDistinctOpts{Num: 5, MaxTries: 1000})
	v, err := Generate(g, 7)
	require.NoError(t, err)
	items := v.([]interface{})
	require.Len(t, items, 5)
	seen := map[int64]bool{}
	for _, it := range items {
		n := it.(int64)
		require.False(t, seen[n])
		seen[n] = true
	}
}

func TestHashMap(t *testing.T) {
	g := HashMap(KV{Key: "a", Gen: Return(1)}, KV{Key: "b", Gen: Return(2)})
	v, err := Generate(g, 1)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"a": 1, "b": 2}, v)
}

func TestChooseRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		v, err := Generate(Choose(3, 5), seed)
		require.NoError(t, err)
		n := v.(int64)
		require.GreaterOrEqual(t, n, int64(3))
		require.LessOrEqual(t, n, int64(5))
	}
}

func TestChooseRejectsBadRange(t *testing.T) {
	_, err := Generate(Choose(5, 3), 1)
	require.Error(t, err)
}

func TestDoubleBounds(t *testing.T) {
	lo, hi := 1.0, 2.0
	g := Double(DoubleOpts{Min: &lo, Max: &hi})
	for seed := uint64(0); seed < 20; seed++ {
		v, err := Generate(g, seed)
		require.NoError(t, err)
		f := v.(float64)
		require.GreaterOrEqual(t, f, lo)
		require.LessOrEqual(t, f, hi)
	}
}

func TestDoubleCanProduceSpecials(t *testing.T) {
	g := Double(DoubleOpts{NaN: true, Infinite: true})
	foundSpecial := false
	for seed := uint64(0); seed < 500; seed++ {
		v, err := Generate(g, seed)
		require.NoError(t, err)
		f := v.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			foundSpecial = true
			break
		}
	}
	require.True(t, foundSpecial)
}

func TestDelayIsLazyAndCached(t *testing.T) {
	calls := 0
	g := Delay(func() Generator {
		calls++
		return Return(9)
	})
	require.Equal(t, 0, calls)
	_, err := Generate(g, 1)
	require.NoError(t, err)
	_, err = g.Generate(nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestCatFlattensSequences(t *testing.T) {
	g := Cat([]Generator{
		Return([]interface{}{1, 2}),
		Return([]interface{}{3}),
	})
	v, err := Generate(g, 1)
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, 2, 3}, v)
}

func TestCatRejectsNonSequence(t *testing.T) {
	g := Cat([]Generator{Return(1)})
	_, err := Generate(g, 1)
	require.Error(t, err)
}

func TestSampleDeterministicForSameSeed(t *testing.T) {
	g := Choose(0, 1_000_000)
	a, err := Sample(g, 20, 99)
	require.NoError(t, err)
	b, err := Sample(g, 20, 99)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestQuickCheckFindsCounterexample(t *testing.T) {
	res, err := QuickCheck(1000, Choose(0, 99), func(v interface{}) bool {
		return v.(int64) != 42
	}, 1)
	require.NoError(t, err)
	require.False(t, res.Passed)
	require.Equal(t, int64(42), res.Failure)
}

func TestQuickCheckAllPass(t *testing.T) {
	res, err := QuickCheck(100, Choose(0, 10), func(v interface{}) bool {
		return v.(int64) >= 0
	}, 1)
	require.NoError(t, err)
	require.True(t, res.Passed)
	require.Equal(t, 100, res.Trials)
}

func TestForAll(t *testing.T) {
	res, err := ForAll(50, []Generator{Choose(0, 5), Choose(0, 5)}, func(vs []interface{}) bool {
		return vs[0].(int64) >= 0 && vs[1].(int64) >= 0
	}, 1)
	require.NoError(t, err)
	require.True(t, res.Passed)
}

func TestGenForPredKnownKinds(t *testing.T) {
	for _, kind := range []string{"int", "string", "bool", "float64", "any"} {
		g, err := GenForPred(kind)
		require.NoError(t, err)
		_, err = Generate(g, 1)
		require.NoError(t, err)
	}
}

func TestGenForPredUnknownKind(t *testing.T) {
	_, err := GenForPred("decimal")
	require.Error(t, err)
}
