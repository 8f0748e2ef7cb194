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

import "fmt"

// Unform reconstructs an input sequence from a conformed shape,
// variant by variant. Cat with RepID reunions the
// repeated body; Alt{Maybe} unwraps the single value.
func Unform(p Op, conformed interface{}) ([]interface{}, error) {
	switch v := p.(type) {
	case *Accept:
		return nil, nil
	case *Pred:
		if v.Inverse == nil {
			return []interface{}{conformed}, nil
		}
		raw, err := v.Inverse(conformed)
		if err != nil {
			return nil, err
		}
		return []interface{}{raw}, nil
	case *Cat:
		return unformCat(v, conformed)
	case *Alt:
		return unformAlt(v, conformed)
	case *Rep:
		items, ok := conformed.([]interface{})
		if !ok {
			return nil, fmt.Errorf("regexop: unform: expected []interface{} for repetition, got %T", conformed)
		}
		var out []interface{}
		for _, it := range items {
			sub, err := Unform(v.P2, it)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	case *Amp:
		return Unform(v.P1, conformed)
	}
	return nil, fmt.Errorf("regexop: unform: unknown op %T", p)
}

func unformCat(c *Cat, conformed interface{}) ([]interface{}, error) {
	if c.RepID != 0 {
		// The two-element NewPlus unrolling: conformed is a single flat
		// vector of one-or-more repeated elements, each unformed via
		// the body op Ps[0].
		items, ok := conformed.([]interface{})
		if !ok || len(items) == 0 {
			return nil, fmt.Errorf("regexop: unform: expected non-empty []interface{} for +, got %v", conformed)
		}
		var out []interface{}
		for _, it := range items {
			sub, err := Unform(c.Ps[0], it)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	}
	if c.Tagged {
		m, ok := conformed.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("regexop: unform: expected map[string]interface{} for tagged cat, got %T", conformed)
		}
		var out []interface{}
		for i, p := range c.Ps {
			v, present := m[c.Ks[i]]
			if !present {
				continue
			}
			sub, err := Unform(p, v)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	}
	items, ok := conformed.([]interface{})
	if !ok {
		return nil, fmt.Errorf("regexop: unform: expected []interface{} for cat, got %T", conformed)
	}
	if len(items) != len(c.Ps) {
		return nil, fmt.Errorf("regexop: unform: cat arity mismatch: want %d got %d", len(c.Ps), len(items))
	}
	var out []interface{}
	for i, p := range c.Ps {
		sub, err := Unform(p, items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

func unformAlt(a *Alt, conformed interface{}) ([]interface{}, error) {
	if a.Maybe {
		if conformed == nil {
			return nil, nil
		}
		return Unform(a.Ps[0], conformed)
	}
	tg, ok := conformed.(Tagged)
	if !ok {
		return nil, fmt.Errorf("regexop: unform: expected Tagged for alt, got %T", conformed)
	}
	for i, k := range a.Ks {
		if k == tg.Key {
			return Unform(a.Ps[i], tg.Val)
		}
	}
	return nil, fmt.Errorf("regexop: unform: alt has no branch tagged %q", tg.Key)
}
