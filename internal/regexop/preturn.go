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

// Tagged is the value produced when a tagged alternative (alt's
// non-maybe branches) matches: the key of the branch that matched, and
// its conformed value.
type Tagged struct {
	Key string
	Val interface{}
}

// Preturn is the value p would produce if matching terminated right
// now. Callers must only call Preturn when AcceptNil(p) is true;
// otherwise the result is core.Invalid.
func Preturn(p Op) interface{} {
	switch x := p.(type) {
	case nil:
		return core.Invalid
	case *Accept:
		return x.Ret
	case *Pred:
		return core.Invalid
	case *Cat:
		return catReturn(x)
	case *Alt:
		for i, s := range x.Ps {
			if AcceptNil(s) {
				return tagIfKeyed(x.Ks[i], x.Maybe, Preturn(s))
			}
		}
		return core.Invalid
	case *Rep:
		out := append([]interface{}{}, x.Ret...)
		if x.P1 != x.P2 && AcceptNil(x.P1) {
			out = append(out, Preturn(x.P1))
		}
		return out
	case *Amp:
		return andPreds(Preturn(x.P1), x.Preds)
	}
	return core.Invalid
}

func tagIfKeyed(key string, maybe bool, v interface{}) interface{} {
	if maybe || key == "" {
		return v
	}
	return Tagged{Key: key, Val: v}
}

// catReturn folds the Cat's already-completed prefix (Ret) together
// with the Preturn of every still-pending sub-op (valid to call only
// when every pending sub-op accepts nil, i.e. AcceptNil(cat) is true).
func catReturn(c *Cat) interface{} {
	ret := c.Ret
	for i, p := range c.Ps {
		ret = addRet(ret, c.Ks[i], Preturn(p), isSpliceOp(p))
	}
	return assembleCatRet(ret, c.Tagged)
}

func isSpliceOp(p Op) bool {
	r, ok := p.(*Rep)
	return ok && r.Splice
}

func addRet(ret []catEntry, key string, val interface{}, splice bool) []catEntry {
	if splice {
		if items, ok := val.([]interface{}); ok {
			for _, it := range items {
				ret = append(ret, catEntry{Key: key, Val: it})
			}
			return ret
		}
	}
	return append(ret, catEntry{Key: key, Val: val})
}

func assembleCatRet(ret []catEntry, tagged bool) interface{} {
	if tagged {
		out := make(map[string]interface{}, len(ret))
		for _, e := range ret {
			if e.Key != "" {
				out[e.Key] = e.Val
			}
		}
		return out
	}
	out := make([]interface{}, 0, len(ret))
	for _, e := range ret {
		out = append(out, e.Val)
	}
	return out
}
