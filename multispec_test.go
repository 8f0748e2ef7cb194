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

func kindOf(x interface{}) interface{} {
	m, ok := x.(map[string]interface{})
	if !ok {
		return nil
	}
	return m["kind"]
}

func circleSpec() Spec {
	return Keys(KeySpec{ReqUn: []KeyGroup{ReqKey(NewName("multispectest", "radius"))}})
}

func squareSpec() Spec {
	return Keys(KeySpec{ReqUn: []KeyGroup{ReqKey(NewName("multispectest", "side"))}})
}

// S5: multi-spec dispatching on :kind, with a no-method tag raising a
// Problem tagged "no method".
func TestMultiSpecDispatchAndNoMethod(t *testing.T) {
	require.NoError(t, Def(NewName("multispectest", "radius"), IntSpec()))
	require.NoError(t, Def(NewName("multispectest", "side"), IntSpec()))

	s := MultiSpec(kindOf, []MultiEntry{
		{Tag: "circle", Spec: circleSpec()},
		{Tag: "square", Spec: squareSpec()},
	}, nil)

	require.True(t, Valid(s, map[string]interface{}{"kind": "circle", "radius": 2}))
	require.True(t, Valid(s, map[string]interface{}{"kind": "square", "side": 3}))
	require.False(t, Valid(s, map[string]interface{}{"kind": "circle", "side": 3}))

	probs := ExplainData(s, map[string]interface{}{"kind": "z"})
	require.NotEmpty(t, probs)
	require.Equal(t, "no method", probs[0].Reason)
}

func TestMultiSpecGenFiltersInvalidTaggedEntry(t *testing.T) {
	require.NoError(t, Def(NewName("multispectest", "radius2"), IntSpec()))

	entries := []MultiEntry{
		{Tag: "circle", Spec: Keys(KeySpec{ReqUn: []KeyGroup{ReqKey(NewName("multispectest", "radius2"))}})},
		{Tag: MultiSpecInvalidTag, Spec: AnySpec()},
	}
	s := MultiSpec(kindOf, entries, func(v interface{}, tag interface{}) interface{} {
		m := v.(map[string]interface{})
		m["kind"] = tag
		return m
	})

	g, err := Gen(s, nil)
	require.NoError(t, err)
	v, err := GenerateOne(g)
	require.NoError(t, err)
	m, ok := v.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "circle", m["kind"])
}
