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

// Deriv returns the regex op matching exactly the tails w such that xw
// is matched by p (the classical Brzozowski derivative), or nil if no
// such op exists. Ids on branching ops (Alt, Rep) are preserved
// through the derivative chain for RecursionMap identity.
func Deriv(p Op, x interface{}) Op {
	switch v := p.(type) {
	case nil:
		return nil
	case *Accept:
		return nil // already complete; nothing more can be consumed
	case *Pred:
		r := v.Match(x)
		if core.IsInvalid(r) {
			return nil
		}
		return &Accept{Ret: r}
	case *Cat:
		return derivCat(v, x)
	case *Alt:
		return derivAlt(v, x)
	case *Rep:
		return derivRep(v, x)
	case *Amp:
		return derivAmp(v, x)
	}
	return nil
}

func derivCat(c *Cat, x interface{}) Op {
	if len(c.Ps) == 0 {
		return nil
	}
	p0 := c.Ps[0]
	rest := c.Ps[1:]
	k0 := c.Ks[0]
	restKs := c.Ks[1:]
	var f0 interface{}
	var restForms []interface{}
	if len(c.Forms) > 0 {
		f0 = c.Forms[0]
		restForms = c.Forms[1:]
	}

	var left Op
	if d0 := Deriv(p0, x); d0 != nil {
		newPs := make([]Op, len(rest)+1)
		newPs[0] = d0
		copy(newPs[1:], rest)
		newKs := make([]string, len(restKs)+1)
		newKs[0] = k0
		copy(newKs[1:], restKs)
		var newForms []interface{}
		if restForms != nil || f0 != nil {
			newForms = make([]interface{}, len(restForms)+1)
			newForms[0] = f0
			copy(newForms[1:], restForms)
		}
		left = &Cat{Ps: newPs, Ks: newKs, Forms: newForms, Ret: c.Ret, Tagged: c.Tagged, RepID: c.RepID}
	}

	var right Op
	if AcceptNil(p0) {
		ret2 := addRet(c.Ret, k0, Preturn(p0), isSpliceOp(p0))
		if len(rest) > 0 {
			right = Deriv(&Cat{Ps: rest, Ks: restKs, Forms: restForms, Ret: ret2, Tagged: c.Tagged, RepID: c.RepID}, x)
		}
	}
	return orOp(left, right)
}

func derivAlt(a *Alt, x interface{}) Op {
	var ps []Op
	var ks []string
	var forms []interface{}
	for i, p := range a.Ps {
		d := Deriv(p, x)
		if d == nil {
			continue
		}
		ps = append(ps, d)
		ks = append(ks, a.Ks[i])
		if i < len(a.Forms) {
			forms = append(forms, a.Forms[i])
		}
	}
	if len(ps) == 0 {
		return nil
	}
	return &Alt{Ps: ps, Ks: ks, Forms: forms, ID: a.ID, Maybe: a.Maybe}
}

func derivRep(r *Rep, x interface{}) Op {
	var left Op
	if d1 := Deriv(r.P1, x); d1 != nil {
		left = &Rep{P1: d1, P2: r.P2, Ret: r.Ret, Splice: r.Splice, Forms: r.Forms, ID: r.ID}
	}
	var right Op
	if AcceptNil(r.P1) {
		ret2 := append(append([]interface{}{}, r.Ret...), Preturn(r.P1))
		fresh := &Rep{P1: r.P2, P2: r.P2, Ret: ret2, Splice: r.Splice, Forms: r.Forms, ID: r.ID}
		right = Deriv(fresh, x)
	}
	return orOp(left, right)
}

func derivAmp(a *Amp, x interface{}) Op {
	d1 := Deriv(a.P1, x)
	if d1 == nil {
		return nil
	}
	if acc, ok := d1.(*Accept); ok {
		v := andPreds(acc.Ret, a.Preds)
		if core.IsInvalid(v) {
			return nil
		}
		return &Accept{Ret: v}
	}
	return &Amp{P1: d1, Preds: a.Preds, PredForms: a.PredForms, Forms: a.Forms}
}
