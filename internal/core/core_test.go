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

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextIDNeverZeroAndUnique(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		id := NextID()
		require.NotZero(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestInvalidSentinel(t *testing.T) {
	require.True(t, IsInvalid(Invalid))
	require.False(t, IsInvalid(nil))
	require.False(t, IsInvalid(0))
	require.False(t, IsInvalid("#<INVALID>"))
}

func TestPathAppendIsNonMutating(t *testing.T) {
	base := Path{"a"}
	p1 := base.Append("b")
	p2 := base.Append("c")
	require.Equal(t, Path{"a"}, base)
	require.Equal(t, Path{"a", "b"}, p1)
	require.Equal(t, Path{"a", "c"}, p2)
	require.Equal(t, "[a][b]", p1.String())
}

func TestNameQualification(t *testing.T) {
	n := NewName("myapp.order", "id")
	require.Equal(t, Name("myapp.order/id"), n)
	require.Equal(t, "myapp.order", n.Namespace())
	require.Equal(t, "id", n.Local())
	require.True(t, n.Qualified())

	local := NewName("", "id")
	require.Equal(t, Name("id"), local)
	require.False(t, local.Qualified())
}

func TestNameNormalizedNFC(t *testing.T) {
	// "e" + combining acute (U+0301) vs the precomposed U+00E9 codepoint
	// should normalize to the same NFC form.
	decomposed := Name("cafe" + string(rune(0x0301)))
	precomposed := Name("caf" + string(rune(0x00E9)))
	require.NotEqual(t, decomposed, precomposed)
	require.Equal(t, precomposed.Normalized(), decomposed.Normalized())
}

func TestProblemListEmpty(t *testing.T) {
	var pl ProblemList
	require.True(t, pl.Empty())
	pl = append(pl, Problem{Reason: "x"})
	require.False(t, pl.Empty())
}

func TestRecursionMapAllowsSiblingRevisits(t *testing.T) {
	rmap := NewRecursionMap(1)
	id := NextID()

	cutoff, leave := rmap.Enter(id)
	require.False(t, cutoff)
	leave()

	cutoff, leave = rmap.Enter(id)
	require.False(t, cutoff)
	leave()
}

func TestRecursionMapCutsOffGenuineRecursion(t *testing.T) {
	rmap := NewRecursionMap(1)
	id := NextID()

	var descend func(depth int) bool
	descend = func(depth int) bool {
		cutoff, leave := rmap.Enter(id)
		defer leave()
		if cutoff {
			return true
		}
		if depth > 10 {
			return false
		}
		return descend(depth + 1)
	}
	require.True(t, descend(0))
}

func TestRecursionMapZeroIDNeverCheckpoints(t *testing.T) {
	rmap := NewRecursionMap(0)
	for i := 0; i < 5; i++ {
		cutoff, leave := rmap.Enter(0)
		require.False(t, cutoff)
		leave()
	}
}
