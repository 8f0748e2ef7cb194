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

import "github.com/speclang/gospec/internal/core"

// Conform folds Deriv across seq; if any step returns nil (no match)
// the result is core.Invalid. When the input is exhausted, it returns
// Preturn(p) if AcceptNil(p), else core.Invalid. isSeq == false (the
// input was not a sequence at all) is also core.Invalid.
func Conform(p Op, seq []interface{}, isSeq bool) interface{} {
	if !isSeq {
		return core.Invalid
	}
	cur := p
	for _, x := range seq {
		cur = Deriv(cur, x)
		if cur == nil {
			return core.Invalid
		}
	}
	if AcceptNil(cur) {
		return Preturn(cur)
	}
	return core.Invalid
}
