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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormReturnsSymbolicShape(t *testing.T) {
	s := And(IntSpec(), PosIntSpec())
	form, ok := Form(s).([]interface{})
	require.True(t, ok)
	require.Equal(t, "and", form[0])
}

func TestExplainStrSuccess(t *testing.T) {
	require.Equal(t, "Success!\n", ExplainStr(IntSpec(), 1))
}

func TestExplainStrReportsValAndPredicate(t *testing.T) {
	out := ExplainStr(IntSpec(), "not an int")
	require.True(t, strings.Contains(out, "val:"))
	require.True(t, strings.Contains(out, "predicate:"))
	require.True(t, strings.Contains(out, "int?"))
}

func TestFormStringIsNotEmptyForTuple(t *testing.T) {
	s := Tuple(IntSpec(), StringSpec())
	require.NotEmpty(t, FormString(s))
}
