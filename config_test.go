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

func TestResolveConfigAppliesOptionsOverDefaults(t *testing.T) {
	cfg := ResolveConfig(WithRecursionLimit(2), WithFspecIterations(5), WithInstrumentEnabled(false))
	require.Equal(t, 2, cfg.RecursionLimit)
	require.Equal(t, 5, cfg.FspecIterations)
	require.False(t, cfg.InstrumentEnabled)
	require.Equal(t, DefaultConfig().CollCheckLimit, cfg.CollCheckLimit)
}

func TestResolveConfigWithNoOptionsMatchesDefault(t *testing.T) {
	require.Equal(t, DefaultConfig(), ResolveConfig())
}
