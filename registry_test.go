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
)

func TestDefAndGetSpecRoundTrip(t *testing.T) {
	name := NewName("registrytest", "id")
	require.NoError(t, Def(name, PosIntSpec()))

	s, ok := GetSpec(name)
	require.True(t, ok)
	require.True(t, Valid(s, 1))
}

func TestDefRejectsUnqualifiedName(t *testing.T) {
	err := Def(Name("unqualified"), IntSpec())
	require.Error(t, err)
	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, CodeNonNamespaced, uerr.Code)
}

func TestResolveAcceptsBareSpecOrName(t *testing.T) {
	s := IntSpec()
	got, ok := Resolve(s)
	require.True(t, ok)
	require.Equal(t, s, got)

	name := NewName("registrytest", "resolveme")
	require.NoError(t, Def(name, StringSpec()))
	got2, ok := Resolve(name)
	require.True(t, ok)
	require.True(t, Valid(got2, "x"))
}

func TestFdefRegistersFspec(t *testing.T) {
	name := NewName("registrytest", "fn")
	f := NewFspec(twoIntArgsSpec(), IntSpec(), nil, DefaultConfig())
	require.NoError(t, Fdef(name, f))

	s, ok := GetSpec(name)
	require.True(t, ok)
	require.Same(t, f, s.(*Fspec))
}

func TestRegistrySnapshotContainsRegisteredName(t *testing.T) {
	name := NewName("registrytest", "snapshot")
	require.NoError(t, Def(name, IntSpec()))
	snap := Registry()
	require.Contains(t, snap, name)
}
