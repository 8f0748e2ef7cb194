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

import (
	"fmt"

	"github.com/cockroachdb/apd/v2"

	"github.com/speclang/gospec/internal/core"
	igen "github.com/speclang/gospec/internal/gen"
)

// DecimalOpts bounds a Decimal leaf: Min/Max, when non-nil, are
// inclusive bounds; MaxScale, when > 0, caps the number of digits after
// the decimal point.
type DecimalOpts struct {
	Min, Max *apd.Decimal
	MaxScale int32
}

// Decimal is an arbitrary-precision numeric leaf spec, conforming
// strings, ints, float64s, and *apd.Decimal values to a canonical
// *apd.Decimal.
func Decimal(opts DecimalOpts) Spec {
	form := fmt.Sprintf("decimal?(%v,%v)", opts.Min, opts.Max)
	s := Conformer(form, func(x interface{}) interface{} {
		d, ok := toDecimal(x)
		if !ok {
			return core.Invalid
		}
		if opts.Min != nil && d.Cmp(opts.Min) < 0 {
			return core.Invalid
		}
		if opts.Max != nil && d.Cmp(opts.Max) > 0 {
			return core.Invalid
		}
		if opts.MaxScale > 0 && -d.Exponent > opts.MaxScale {
			return core.Invalid
		}
		return d
	}, func(y interface{}) (interface{}, error) {
		d, ok := y.(*apd.Decimal)
		if !ok {
			return nil, newUsageError(CodeNotInvertible, nil, "unform: decimal: %v is not *apd.Decimal", y)
		}
		return d.String(), nil
	})
	return withGenLeaf(s, decimalGen(opts))
}

func toDecimal(x interface{}) (*apd.Decimal, bool) {
	switch v := x.(type) {
	case *apd.Decimal:
		return v, true
	case apd.Decimal:
		return &v, true
	case string:
		d, _, err := apd.NewFromString(v)
		if err != nil {
			return nil, false
		}
		return d, true
	case int:
		return apd.New(int64(v), 0), true
	case int64:
		return apd.New(v, 0), true
	case float64:
		d, err := new(apd.Decimal).SetFloat64(v)
		if err != nil {
			return nil, false
		}
		return d, true
	default:
		return nil, false
	}
}

func decimalGen(opts DecimalOpts) igen.Generator {
	lo, hi := int64(-1_000_000), int64(1_000_000)
	if opts.Min != nil {
		if iv, err := opts.Min.Int64(); err == nil {
			lo = iv
		}
	}
	if opts.Max != nil {
		if iv, err := opts.Max.Int64(); err == nil {
			hi = iv
		}
	}
	return igen.FMap(igen.Choose(lo, hi), func(v interface{}) interface{} {
		return apd.New(v.(int64), 0)
	})
}
