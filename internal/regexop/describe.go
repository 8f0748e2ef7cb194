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

// Describe renders p's symbolic form, the way it was built (cat/alt/
// */+/?/&), not the derivative state it may currently be in — callers
// always describe the ORIGINAL op tree, never a mid-derivation one.
func Describe(p Op) interface{} {
	switch v := p.(type) {
	case nil:
		return nil
	case *Pred:
		return v.Form
	case *Accept:
		return []interface{}{"accept", v.Ret}
	case *Cat:
		if v.RepID != 0 && len(v.Forms) > 0 {
			return []interface{}{"+", v.Forms[0]}
		}
		out := []interface{}{"cat"}
		for i, f := range v.Forms {
			if i < len(v.Ks) && v.Ks[i] != "" {
				out = append(out, v.Ks[i])
			}
			out = append(out, f)
		}
		return out
	case *Alt:
		if v.Maybe {
			return []interface{}{"?", v.Forms[0]}
		}
		out := []interface{}{"alt"}
		for i, f := range v.Forms {
			if i < len(v.Ks) && v.Ks[i] != "" {
				out = append(out, v.Ks[i])
			}
			out = append(out, f)
		}
		return out
	case *Rep:
		if len(v.Forms) > 0 {
			return []interface{}{"*", v.Forms[0]}
		}
		return []interface{}{"*"}
	case *Amp:
		out := []interface{}{"&", v.Forms}
		out = append(out, v.PredForms...)
		return out
	}
	return nil
}
