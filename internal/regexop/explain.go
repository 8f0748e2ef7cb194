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

// Explain mirrors Conform but, at the first Deriv -> nil, describes
// the fault:
//   - input exhausted and p does not accept nil: "Insufficient input"
//   - p already accepts (a complete shape matched) but more input
//     remains: "Extra input"
//   - otherwise: descend via Describe to the leaf that failed.
func Explain(p Op, path core.Path, via []core.Name, in core.Path, seq []interface{}, isSeq bool) core.ProblemList {
	if !isSeq {
		return core.ProblemList{{
			Path: path, Via: via, In: in, Val: seq,
			Pred: Describe(p), Reason: "not a sequence",
		}}
	}
	cur := p
	for i, x := range seq {
		d := Deriv(cur, x)
		if d == nil {
			if AcceptNil(cur) {
				return core.ProblemList{{
					Path: path, Via: via, In: in.Append(i), Val: x,
					Pred: Describe(cur), Reason: "Extra input",
				}}
			}
			return explainLeaf(cur, path, via, in.Append(i), x)
		}
		cur = d
	}
	if AcceptNil(cur) {
		return nil
	}
	return core.ProblemList{{
		Path: path, Via: via, In: in.Append(len(seq)), Val: nil,
		Pred: Describe(cur), Reason: "Insufficient input",
	}}
}

// explainLeaf descends into the first failing sub-op to produce a
// structured path, mirroring the traversal-order rule in 
func explainLeaf(p Op, path core.Path, via []core.Name, in core.Path, x interface{}) core.ProblemList {
	switch v := p.(type) {
	case *Pred:
		return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: v.Form}}
	case *Cat:
		if len(v.Ps) == 0 {
			return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: Describe(p), Reason: "Extra input"}}
		}
		sub := path
		if v.Ks[0] != "" {
			sub = path.Append(v.Ks[0])
		}
		return explainLeaf(v.Ps[0], sub, via, in, x)
	case *Alt:
		var out core.ProblemList
		for i, s := range v.Ps {
			sub := path
			if v.Ks[i] != "" {
				sub = path.Append(v.Ks[i])
			}
			out = append(out, explainLeaf(s, sub, via, in, x)...)
		}
		return out
	case *Rep:
		return explainLeaf(v.P1, path, via, in, x)
	case *Amp:
		return explainLeaf(v.P1, path, via, in, x)
	}
	return core.ProblemList{{Path: path, Via: via, In: in, Val: x, Pred: Describe(p)}}
}
