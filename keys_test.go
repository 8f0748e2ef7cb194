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
)

func mustDefInt(t *testing.T, name Name) {
	t.Helper()
	require.NoError(t, Def(name, IntSpec()))
}

// S3: keys(req=[::id ::name], opt=[::tag])
func TestKeysRequiredAndOptional(t *testing.T) {
	id := NewName("keystest", "id")
	name := NewName("keystest", "name")
	tag := NewName("keystest", "tag")
	mustDefInt(t, id)
	mustDefInt(t, name)
	mustDefInt(t, tag)

	s := Keys(KeySpec{Req: []KeyGroup{ReqKey(id), ReqKey(name)}, Opt: []core.Name{tag}})

	valid := map[string]interface{}{string(id): 1, string(name): 2}
	require.True(t, Valid(s, valid))

	missing := map[string]interface{}{string(id): 1}
	require.False(t, Valid(s, missing))
	probs := ExplainData(s, missing)
	require.NotEmpty(t, probs)
	require.Equal(t, "missing required key(s)", probs[0].Reason)
}

func TestKeysLogicalRequiredGroup(t *testing.T) {
	a := NewName("keystest", "a")
	b := NewName("keystest", "b")
	c := NewName("keystest", "c")
	mustDefInt(t, a)
	mustDefInt(t, b)
	mustDefInt(t, c)

	// req: (or ::a (and ::b ::c))
	s := Keys(KeySpec{Req: []KeyGroup{ReqOr(ReqKey(a), ReqAnd(ReqKey(b), ReqKey(c)))}})

	require.True(t, Valid(s, map[string]interface{}{string(a): 1}))
	require.True(t, Valid(s, map[string]interface{}{string(b): 1, string(c): 2}))
	require.False(t, Valid(s, map[string]interface{}{string(b): 1}))
}

func TestKeysUnqualifiedMatchesByLocalName(t *testing.T) {
	full := NewName("keystest", "count")
	mustDefInt(t, full)

	s := Keys(KeySpec{ReqUn: []KeyGroup{ReqKey(full)}})
	require.True(t, Valid(s, map[string]interface{}{"count": 3}))
	require.False(t, Valid(s, map[string]interface{}{"count": "nope"}))
}

func TestKeysConstructorPanicsOnDuplicateKey(t *testing.T) {
	dup := NewName("keystest", "dup")
	mustDefInt(t, dup)
	require.Panics(t, func() {
		Keys(KeySpec{Req: []KeyGroup{ReqKey(dup)}, Opt: []core.Name{dup}})
	})
}

func TestKeysUnformRoundTrips(t *testing.T) {
	id := NewName("keystest", "roundtrip")
	mustDefInt(t, id)
	s := Keys(KeySpec{Req: []KeyGroup{ReqKey(id)}})

	in := map[string]interface{}{string(id): 7}
	conformed := s.Conform(in)
	require.False(t, core.IsInvalid(conformed))

	raw, err := s.Unform(conformed)
	require.NoError(t, err)
	require.Equal(t, in, raw)
}
