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

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/speclang/gospec"
	"github.com/speclang/gospec/internal/core"
	"github.com/speclang/gospec/internal/instrument"
	"github.com/speclang/gospec/internal/regexop"
)

// intElem matches a single int sequence element, the regexop.MatchFunc
// building block for demoAddFspec's two-int argument cat.
func intElem(x interface{}) interface{} {
	if _, ok := x.(int); ok {
		return x
	}
	return core.Invalid
}

// demoVar is the minimal instrument.Var: a package-scoped *Ref the
// demo command wraps and unwraps, standing in for a host "named
// callable binding" the way specctl has no real var table of
// its own to rebind.
type demoVar struct{ ref *instrument.Ref }

func (v *demoVar) Get() *instrument.Ref  { return v.ref }
func (v *demoVar) Set(r *instrument.Ref) { v.ref = r }

const demoAddName = core.Name("specctl/demo-add")

func demoAddFspec() *spec.Fspec {
	x := regexop.NewPred(intElem, "int?", nil)
	y := regexop.NewPred(intElem, "int?", nil)
	args := spec.NewRegex(regexop.NewCat(nil, []interface{}{"int?", "int?"}, x, y))
	ret := spec.IntSpec()
	fn := func(p spec.FnPair) bool {
		xy, ok := p.Args.([]interface{})
		if !ok || len(xy) != 2 {
			return false
		}
		x, ok1 := xy[0].(int)
		y, ok2 := xy[1].(int)
		r, ok3 := p.Ret.(int)
		return ok1 && ok2 && ok3 && r == x+y
	}
	return spec.NewFspec(args, ret, fn, spec.DefaultConfig())
}

func newInstrumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instrument demo-add",
		Short: "Wrap the bundled demo-add callable with argument-spec checking and call it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "demo-add" {
				return fmt.Errorf("specctl: instrument: unknown demo %q (only %q is bundled)", args[0], "demo-add")
			}
			out := cmd.OutOrStdout()

			raw := spec.Callable(func(a []interface{}) (interface{}, error) {
				return a[0].(int) + a[1].(int), nil
			})
			v := &demoVar{ref: &instrument.Ref{Fn: raw}}

			table := instrument.New(spec.DefaultConfig(), log.New(cmd.ErrOrStderr(), "specctl: ", 0))
			fs := demoAddFspec()
			err := table.Instrument(
				[]core.Name{demoAddName},
				map[core.Name]instrument.Var{demoAddName: v},
				map[core.Name]instrument.Opts{},
				func(core.Name) (*spec.Fspec, bool) { return fs, true },
			)
			if err != nil {
				return err
			}

			if r, err := v.Get().Fn([]interface{}{2, 3}); err != nil {
				fmt.Fprintf(out, "demo-add(2, 3) -> error: %v\n", err)
			} else {
				fmt.Fprintf(out, "demo-add(2, 3) -> %v\n", r)
			}
			if _, err := v.Get().Fn([]interface{}{"oops", 3}); err != nil {
				fmt.Fprintf(out, "demo-add(\"oops\", 3) -> error: %v\n", err)
			}

			table.Unstrument(demoAddName, v)
			return nil
		},
	}
}
