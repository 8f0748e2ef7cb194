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

// AcceptNil reports whether p can match the empty sequence.
func AcceptNil(p Op) bool {
	switch x := p.(type) {
	case nil:
		return false
	case *Accept:
		return true
	case *Pred:
		return false
	case *Cat:
		for _, s := range x.Ps {
			if !AcceptNil(s) {
				return false
			}
		}
		return true
	case *Alt:
		for _, s := range x.Ps {
			if AcceptNil(s) {
				return true
			}
		}
		return false
	case *Rep:
		// A fresh cycle (P1 is still literally P2, zero repetitions
		// attempted) trivially accepts nil, like any Kleene star. A
		// cycle already in progress accepts nil only if the
		// in-progress body itself can terminate empty right here.
		if x.P1 == x.P2 {
			return true
		}
		return AcceptNil(x.P1)
	case *Amp:
		if !AcceptNil(x.P1) {
			return false
		}
		ret := Preturn(x.P1)
		if isNoOp(ret) {
			return true
		}
		return !core.IsInvalid(andPreds(ret, x.Preds))
	}
	return false
}
