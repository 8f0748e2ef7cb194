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

package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/speclang/gospec/internal/core"
)

func TestRegisterRejectsUnqualifiedName(t *testing.T) {
	r := New()
	err := r.Register(core.Name("id"), "spec-stub")
	require.Error(t, err)
	var uerr *UnqualifiedNameError
	require.ErrorAs(t, err, &uerr)
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	name := core.NewName("myapp.order", "id")
	require.NoError(t, r.Register(name, "int?"))

	v, ok := r.Lookup(name)
	require.True(t, ok)
	require.Equal(t, "int?", v)

	_, ok = r.Lookup(core.NewName("myapp.order", "missing"))
	require.False(t, ok)
}

func TestResolveWalksAliasChain(t *testing.T) {
	r := New()
	leaf := core.NewName("myapp.order", "leaf")
	mid := core.NewName("myapp.order", "mid")
	top := core.NewName("myapp.order", "top")

	require.NoError(t, r.Register(leaf, "int?"))
	require.NoError(t, r.Register(mid, leaf))
	require.NoError(t, r.Register(top, mid))

	res, ok := r.ResolveName(top)
	require.True(t, ok)
	require.Equal(t, "int?", res.Value)
	require.Equal(t, []core.Name{top, mid, leaf}, res.Chain)
}

func TestResolveNameMissingIsNotOK(t *testing.T) {
	r := New()
	_, ok := r.ResolveName(core.NewName("myapp.order", "ghost"))
	require.False(t, ok)
}

func TestResolveBangRaisesOnUnresolvable(t *testing.T) {
	r := New()
	_, err := r.ResolveBang(core.NewName("myapp.order", "ghost"))
	require.Error(t, err)
	var uerr *UnresolvableNameError
	require.ErrorAs(t, err, &uerr)
}

func TestResolveDetectsCycle(t *testing.T) {
	r := New()
	a := core.NewName("myapp.order", "a")
	b := core.NewName("myapp.order", "b")
	require.NoError(t, r.Register(a, b))
	require.NoError(t, r.Register(b, a))

	_, ok := r.ResolveName(a)
	require.False(t, ok)
}

func TestRegisterOverwritesPriorEntry(t *testing.T) {
	r := New()
	name := core.NewName("myapp.order", "id")
	require.NoError(t, r.Register(name, "int?"))
	require.NoError(t, r.Register(name, "string?"))

	v, ok := r.Lookup(name)
	require.True(t, ok)
	require.Equal(t, "string?", v)
}

func TestNormalizedNamesCollapseToOneEntry(t *testing.T) {
	r := New()
	decomposed := core.NewName("myapp.order", "cafe"+string(rune(0x0301)))
	precomposed := core.NewName("myapp.order", "caf"+string(rune(0x00E9)))

	require.NoError(t, r.Register(decomposed, "v1"))
	v, ok := r.Lookup(precomposed)
	require.True(t, ok)
	require.Equal(t, "v1", v)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	r := New()
	name := core.NewName("myapp.order", "id")
	require.NoError(t, r.Register(name, "int?"))

	snap := r.Snapshot()
	require.Equal(t, "int?", snap[name])

	require.NoError(t, r.Register(core.NewName("myapp.order", "other"), "string?"))
	require.NotContains(t, snap, core.NewName("myapp.order", "other"))
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := core.NewName("myapp.order", string(rune('a'+i%26)))
			_ = r.Register(name, i)
			_, _ = r.Lookup(name)
		}(i)
	}
	wg.Wait()
}
