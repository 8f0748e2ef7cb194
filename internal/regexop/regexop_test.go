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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/speclang/gospec/internal/core"
)

func intPred() Op {
	return NewPred(func(x interface{}) interface{} {
		if _, ok := x.(int); ok {
			return x
		}
		return core.Invalid
	}, "int?", nil)
}

func stringPred() Op {
	return NewPred(func(x interface{}) interface{} {
		if _, ok := x.(string); ok {
			return x
		}
		return core.Invalid
	}, "string?", nil)
}

func seq(xs ...interface{}) []interface{} { return xs }

// S4: cat(:xs (* int?), :s string?)
func TestCatStarConform(t *testing.T) {
	op := NewCat([]string{"xs", "s"}, []interface{}{"(* int?)", "string?"},
		NewStar(intPred(), "int?"), stringPred())

	got := Conform(op, seq(1, 2, 3, "x"), true)
	want := map[string]interface{}{"xs": []interface{}{1, 2, 3}, "s": "x"}
	require.Empty(t, cmp.Diff(want, got))

	got2 := Conform(op, seq(1, 2, "x", 3), true)
	require.True(t, core.IsInvalid(got2))
}

func TestCatExtraInputExplain(t *testing.T) {
	op := NewCat([]string{"xs", "s"}, []interface{}{"(* int?)", "string?"},
		NewStar(intPred(), "int?"), stringPred())
	probs := Explain(op, nil, nil, nil, seq(1, 2, "x", 3), true)
	require.NotEmpty(t, probs)
	require.Equal(t, "Extra input", probs[0].Reason)
}

func TestOpt(t *testing.T) {
	op := NewOpt(intPred(), "int?")
	require.Equal(t, 1, Conform(op, seq(1), true))
	got := Conform(op, seq(), true)
	require.Nil(t, got)
	require.True(t, core.IsInvalid(Conform(op, seq("x"), true)))
}

func TestPlusRequiresOne(t *testing.T) {
	op := NewPlus(intPred(), "int?")
	require.True(t, core.IsInvalid(Conform(op, seq(), true)))
	got := Conform(op, seq(1, 2, 3), true)
	require.Equal(t, []interface{}{1, 2, 3}, got)

	raw, err := Unform(op, got)
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, 2, 3}, raw)
}

func TestAltTagging(t *testing.T) {
	op := NewAlt([]string{"i", "s"}, []interface{}{"int?", "string?"}, intPred(), stringPred())
	got := Conform(op, seq(3), true)
	require.Equal(t, Tagged{Key: "i", Val: 3}, got)

	raw, err := Unform(op, Tagged{Key: "s", Val: "q"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"q"}, raw)

	require.True(t, core.IsInvalid(Conform(op, seq(true), true)))
}

func TestAmp(t *testing.T) {
	even := func(x interface{}) interface{} {
		if x.(int)%2 == 0 {
			return x
		}
		return core.Invalid
	}
	op := NewAmp(intPred(), []MatchFunc{even}, []interface{}{"even?"}, []interface{}{"int?"})
	require.Equal(t, 4, Conform(op, seq(4), true))
	require.True(t, core.IsInvalid(Conform(op, seq(3), true)))
}

func TestNotASequence(t *testing.T) {
	op := intPred()
	require.True(t, core.IsInvalid(Conform(op, nil, false)))
}
