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

import (
	"github.com/speclang/gospec/internal/core"
	"github.com/speclang/gospec/internal/gen"
)

// NewPred builds a leaf op from a predicate/conformer function and
// its symbolic form, with an optional generator (nil if none).
func NewPred(match MatchFunc, form interface{}, g gen.Generator) Op {
	return &Pred{Match: match, Form: form, Gen: g}
}

// NewInvertiblePred builds a leaf whose conform is invertible.
func NewInvertiblePred(match MatchFunc, inverse func(interface{}) (interface{}, error), form interface{}, g gen.Generator) Op {
	return &Pred{Match: match, Inverse: inverse, Form: form, Gen: g}
}

func anyEmpty(ks []string) bool {
	for _, k := range ks {
		if k != "" {
			return true
		}
	}
	return false
}

// NewCat builds the cat combinator over ks-tagged (ks may be nil, or
// contain "" for untagged positions) sub-ops.
func NewCat(ks []string, forms []interface{}, ps ...Op) Op {
	if ks == nil {
		ks = make([]string, len(ps))
	}
	return &Cat{Ps: ps, Ks: ks, Forms: forms, Tagged: anyEmpty(ks)}
}

// NewAlt builds the alt combinator.
func NewAlt(ks []string, forms []interface{}, ps ...Op) Op {
	if ks == nil {
		ks = make([]string, len(ps))
	}
	return &Alt{Ps: ps, Ks: ks, Forms: forms, ID: core.NextID()}
}

// NewOpt builds "?": an optional single branch, unwrapped (not
// map-tagged) on conform/preturn.
func NewOpt(p Op, form interface{}) Op {
	return &Alt{
		Ps:    []Op{p, &Accept{Ret: nil}},
		Ks:    []string{"", ""},
		Forms: []interface{}{form, nil},
		ID:    core.NextID(),
		Maybe: true,
	}
}

// NewStar builds "*": zero-or-more repetitions of p.
func NewStar(p Op, form interface{}) Op {
	return &Rep{P1: p, P2: p, Ret: []interface{}{}, Forms: []interface{}{form}, ID: core.NextID()}
}

// NewPlus builds "+" as cat(p, *p) with the tail's Ret spliced into
// the enclosing Cat's single accumulated vector, so conform of "+"
// yields a flat vector exactly like "*" (just with a minimum length of
// one enforced structurally by the leading p).
func NewPlus(p Op, form interface{}) Op {
	star := &Rep{P1: p, P2: p, Ret: []interface{}{}, Splice: true, Forms: []interface{}{form}, ID: core.NextID()}
	return &Cat{
		Ps:    []Op{p, star},
		Ks:    []string{"", ""},
		Forms: []interface{}{form, form},
		RepID: star.ID,
	}
}

// NewAmp builds "&": consume per p1, then constrain the result by
// preds.
func NewAmp(p1 Op, preds []MatchFunc, predForms []interface{}, forms []interface{}) Op {
	return &Amp{P1: p1, Preds: preds, PredForms: predForms, Forms: forms}
}

// orOp is the Brzozowski smart constructor combining two alternative
// derivative outcomes: nil children are dropped, and a single
// surviving child is returned unwrapped.
func orOp(a, b Op) Op {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return &Alt{Ps: []Op{a, b}, Ks: []string{"", ""}, ID: 0}
	}
}
