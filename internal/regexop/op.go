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

// Package regexop is the sequence-matching regex-op algebra: cat, alt,
// *, +, ?, &. It is implemented by Brzozowski
// derivatives over an explicitly tagged op tree, with acceptance-on-
// empty and return-value composition. Every exported operation is a
// free function over the Op interface rather than a method set, since
// the algorithms (AcceptNil, Preturn, Deriv) are mutually recursive
// across all variants and read more directly as one family of
// functions than as methods scattered across each variant's type.
package regexop

import (
	"github.com/speclang/gospec/internal/core"
	"github.com/speclang/gospec/internal/gen"
)

// Op is a node in the regex-op tree. The concrete variants are Pred,
// Accept, Cat, Alt, Rep, and Amp. A nil Op means "no match is
// possible" — the "none" result of a failed Deriv — which is distinct
// from core.Invalid, the sentinel for "matched, but produced an
// invalid value."
type Op interface {
	isOp()
}

// MatchFunc matches (and optionally conforms) a single sequence
// element or a previously-produced return value, yielding
// core.Invalid on failure.
type MatchFunc func(x interface{}) interface{}

// Pred is a leaf: it consumes exactly one sequence element, matching
// it against Match.
type Pred struct {
	Match   MatchFunc
	Inverse func(interface{}) (interface{}, error) // nil if not invertible
	Form    interface{}
	// Gen, when non-nil, is the generator for this leaf (a bare
	// predicate with no conformer has no generator of its own; this is
	// supplied by the enclosing Spec that this leaf was adapted from).
	Gen gen.Generator
}

func (*Pred) isOp() {}

// Accept is an empty-match acceptor carrying the return value the
// regex has produced so far.
type Accept struct {
	Ret interface{}
}

func (*Accept) isOp() {}

// Cat is an ordered sequence of sub-ops built by the cat combinator.
// Ps/Ks/Forms are parallel slices over the REMAINING (not yet folded)
// sub-ops; Ret accumulates the already-completed prefix. RepID is
// non-zero when this Cat is the synthetic two-element unrolling used
// to implement "+" as cat(body, *body) (see NewPlus); Unform uses it
// to re-union the repeated elements into a single vector.
type Cat struct {
	Ps     []Op
	Ks     []string
	Forms  []interface{}
	Ret    []catEntry
	Tagged bool
	RepID  int64
}

func (*Cat) isOp() {}

// catEntry is one already-completed element of a Cat's accumulated
// return.
type catEntry struct {
	Key string
	Val interface{}
}

// Alt is an alternation built by alt or by "?" (Maybe=true, wrapping a
// single optional branch). ID==0 marks an internal OR-node built by
// the Brzozowski smart constructor (orOp) to combine two alternative
// derivative outcomes; it is not a user-facing alternation and is
// never a RecursionMap checkpoint.
type Alt struct {
	Ps    []Op
	Ks    []string
	Forms []interface{}
	ID    int64
	Maybe bool
}

func (*Alt) isOp() {}

// Rep is Kleene star. P1 is the derivative-in-progress of the current
// repetition; P2 is the original body, used to restart each new
// cycle. Ret accumulates the values of already-completed repetitions.
// Splice flattens Ret into the enclosing Cat's accumulation instead of
// appending it as one element (used to implement "+").
type Rep struct {
	P1, P2 Op
	Ret    []interface{}
	Splice bool
	Forms  []interface{}
	ID     int64
}

func (*Rep) isOp() {}

// Amp consumes a subsequence per P1, then constrains the resulting
// return value by Preds (the & combinator).
type Amp struct {
	P1        Op
	Preds     []MatchFunc
	PredForms []interface{}
	Forms     []interface{}
}

func (*Amp) isOp() {}

// andPreds threads val through preds in order (AND semantics),
// short-circuiting on core.Invalid.
func andPreds(val interface{}, preds []MatchFunc) interface{} {
	cur := val
	for _, f := range preds {
		cur = f(cur)
		if core.IsInvalid(cur) {
			return core.Invalid
		}
	}
	return cur
}

// isNoOp reports whether v is the "nothing produced yet" marker used
// by Amp before its P1 has accepted anything concrete.
func isNoOp(v interface{}) bool { return v == nil }
