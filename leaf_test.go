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

	igen "github.com/speclang/gospec/internal/gen"
)

func fixedIntGen(n int) igen.Generator { return igen.Return(n) }

func TestLeafPredicatesAcceptAndReject(t *testing.T) {
	require.True(t, Valid(IntSpec(), 1))
	require.False(t, Valid(IntSpec(), "x"))

	require.True(t, Valid(StringSpec(), "x"))
	require.False(t, Valid(StringSpec(), 1))

	require.True(t, Valid(BoolSpec(), true))
	require.True(t, Valid(Float64Spec(), 1.5))
	require.True(t, Valid(NilSpec(), nil))
	require.False(t, Valid(NilSpec(), 0))
	require.True(t, Valid(AnySpec(), "anything"))

	require.True(t, Valid(PosIntSpec(), 1))
	require.False(t, Valid(PosIntSpec(), 0))
	require.True(t, Valid(NegIntSpec(), -1))
	require.False(t, Valid(NegIntSpec(), 0))
}

func TestFuncPredHasNoGenerator(t *testing.T) {
	s := FuncPred("even?", func(x interface{}) bool {
		n, ok := x.(int)
		return ok && n%2 == 0
	})
	require.True(t, Valid(s, 4))
	require.False(t, Valid(s, 3))

	_, err := Gen(s, nil)
	require.Error(t, err)
	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, CodeNoGenerator, uerr.Code)
}

func TestWithGenOverridesGenerator(t *testing.T) {
	s := IntSpec().WithGen(fixedIntGen(7))
	g, err := Gen(s, nil)
	require.NoError(t, err)
	v, err := GenerateOne(g)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	// The underlying conform/describe behavior is unchanged.
	require.True(t, Valid(s, 1))
}
