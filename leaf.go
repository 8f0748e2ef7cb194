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

import igen "github.com/speclang/gospec/internal/gen"

// IntSpec is "int?": matches any Go int.
func IntSpec() Spec {
	return withGenLeaf(Pred("int?", func(x interface{}) bool {
		_, ok := x.(int)
		return ok
	}), igen.FMap(igen.LargeInteger(nil, nil), func(v interface{}) interface{} {
		return int(v.(int64))
	}))
}

// StringSpec is "string?": matches any Go string.
func StringSpec() Spec {
	g, _ := igen.GenForPred("string")
	return withGenLeaf(Pred("string?", func(x interface{}) bool {
		_, ok := x.(string)
		return ok
	}), g)
}

// BoolSpec is "bool?": matches any Go bool.
func BoolSpec() Spec {
	g, _ := igen.GenForPred("bool")
	return withGenLeaf(Pred("bool?", func(x interface{}) bool {
		_, ok := x.(bool)
		return ok
	}), g)
}

// Float64Spec is "float64?": matches any Go float64.
func Float64Spec() Spec {
	g, _ := igen.GenForPred("float64")
	return withGenLeaf(Pred("float64?", func(x interface{}) bool {
		_, ok := x.(float64)
		return ok
	}), g)
}

// NilSpec is "nil?": matches only nil.
func NilSpec() Spec {
	return withGenLeaf(Pred("nil?", func(x interface{}) bool { return x == nil }), igen.Return(nil))
}

// AnySpec is "any?": matches every value.
func AnySpec() Spec {
	return withGenLeaf(Pred("any?", func(interface{}) bool { return true }), igen.Any())
}

// PosIntSpec is "pos-int?": an int strictly greater than zero.
func PosIntSpec() Spec {
	return withGenLeaf(Pred("pos-int?", func(x interface{}) bool {
		n, ok := x.(int)
		return ok && n > 0
	}), igen.FMap(igen.Choose(1, 1<<31), func(v interface{}) interface{} { return int(v.(int64)) }))
}

// NegIntSpec is "neg-int?": an int strictly less than zero.
func NegIntSpec() Spec {
	return withGenLeaf(Pred("neg-int?", func(x interface{}) bool {
		n, ok := x.(int)
		return ok && n < 0
	}), igen.FMap(igen.Choose(-(1<<31), -1), func(v interface{}) interface{} { return int(v.(int64)) }))
}

// FuncPred wraps an ad hoc Go predicate with no generator and no
// inverse — the minimal constructor for one-off predicates that don't
// need a named, generator-bearing leaf of their own.
func FuncPred(form interface{}, fn func(interface{}) bool) Spec { return Pred(form, fn) }
