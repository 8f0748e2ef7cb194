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

	"github.com/cockroachdb/apd/v2"
	"github.com/stretchr/testify/require"

	"github.com/speclang/gospec/internal/core"
)

func TestDecimalConformsMultipleInputShapes(t *testing.T) {
	s := Decimal(DecimalOpts{})
	for _, in := range []interface{}{"1.5", 3, int64(4), 2.5} {
		require.False(t, core.IsInvalid(s.Conform(in)), "input %#v", in)
	}
	require.True(t, core.IsInvalid(s.Conform("not-a-number")))
}

func TestDecimalBoundsAndScale(t *testing.T) {
	min := apd.New(0, 0)
	max := apd.New(10, 0)
	s := Decimal(DecimalOpts{Min: min, Max: max, MaxScale: 1})

	require.False(t, core.IsInvalid(s.Conform("5.1")))
	require.True(t, core.IsInvalid(s.Conform("-1")))
	require.True(t, core.IsInvalid(s.Conform("11")))
	require.True(t, core.IsInvalid(s.Conform("5.123")))
}

func TestDecimalUnformRendersString(t *testing.T) {
	s := Decimal(DecimalOpts{})
	conformed := s.Conform("3.14")
	raw, err := s.Unform(conformed)
	require.NoError(t, err)
	require.Equal(t, "3.14", raw)
}
