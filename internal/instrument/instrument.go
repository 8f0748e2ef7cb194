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

// Package instrument wraps named callable values with argument-spec
// checking that delegates to the registry. Resolving a
// host language's named callables and rebinding them in place is a
// reflective concern  scopes out abstractly; this package
// models the var <-> wrapped-fn contract directly: callers supply a
// Var per name, a small Get/Set accessor over wherever that callable
// actually lives.
package instrument

import (
	"log"
	"sync"

	"github.com/speclang/gospec"
	"github.com/speclang/gospec/internal/core"
)

// Ref wraps a spec.Callable behind a pointer so bindings can be
// compared by identity: Go func values are not comparable with ==,
// so "is the wrapped binding still current"
// is expressed as pointer equality on *Ref instead.
type Ref struct {
	Fn spec.Callable
}

// Var abstracts one named callable binding in the host program: Get
// reads the binding currently in effect, Set installs a new one.
type Var interface {
	Get() *Ref
	Set(*Ref)
}

// Opts configures how a single name is instrumented.
type Opts struct {
	// Stub replaces the fn with a pure generator of Ret (ignores the
	// underlying callable entirely).
	Stub bool
	// Replace substitutes the body entirely, retaining arg checking.
	Replace spec.Callable
	// Gen supplies generator overrides for the stub's Ret generator.
	Gen spec.GenOverrides
	// Spec overrides the registered fspec for this var.
	Spec *spec.Fspec
}

// FspecLookup resolves a name to its registered function contract, the
// fdef-backed registry lookup instrument falls back to when Opts.Spec
// is not supplied.
type FspecLookup func(name core.Name) (*spec.Fspec, bool)

type binding struct {
	raw     *Ref
	wrapped *Ref
}

// Table tracks every currently-instrumented var, guarded by a mutex
// across instrument/unstrument. checking emulates an internal
// thread-local flag that disables nested checking during a wrapped
// call: this engine has no internal tasks and is single-threaded
// cooperative within any one call, so a table-scoped bool guarded by
// the same mutex stands in for a true thread-local.
type Table struct {
	mu       sync.Mutex
	vars     map[core.Name]*binding
	checking map[core.Name]bool
	cfg      spec.Config
	log      *log.Logger
}

// New builds an empty instrumentation table. logger may be nil, in
// which case no diagnostic text is ever written (this package never
// uses a global logger, per SPEC_FULL.md's ambient-stack logging
// rule).
func New(cfg spec.Config, logger *log.Logger) *Table {
	return &Table{vars: map[core.Name]*binding{}, checking: map[core.Name]bool{}, cfg: cfg, log: logger}
}

// Instrument wraps the callable currently bound to each name in vars
// so entering it conforms args first. lookup resolves the
// fspec for names without an Opts.Spec override.
func (t *Table) Instrument(names []core.Name, vars map[core.Name]Var, opts map[core.Name]Opts, lookup FspecLookup) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range names {
		v, ok := vars[name]
		if !ok {
			return spec.NewUsageError(spec.CodeUnresolvedName, map[string]interface{}{"name": name}, "instrument: no Var supplied for %v", name)
		}
		o := opts[name]
		fs := o.Spec
		if fs == nil {
			found, ok := lookup(name)
			if !ok {
				return spec.NewUsageError(spec.CodeUnresolvedName, map[string]interface{}{"name": name}, "instrument: no fspec registered for %v", name)
			}
			fs = found
		}
		raw := v.Get()
		wrapped := &Ref{Fn: t.wrap(name, raw.Fn, fs, o)}
		v.Set(wrapped)
		t.vars[name] = &binding{raw: raw, wrapped: wrapped}
	}
	return nil
}

func (t *Table) wrap(name core.Name, raw spec.Callable, fs *spec.Fspec, o Opts) spec.Callable {
	return func(args []interface{}) (interface{}, error) {
		t.mu.Lock()
		if t.checking[name] {
			t.mu.Unlock()
			return t.invoke(name, raw, args, fs, o)
		}
		if !t.cfg.InstrumentEnabled {
			t.mu.Unlock()
			return raw(args)
		}
		t.checking[name] = true
		t.mu.Unlock()
		defer func() {
			t.mu.Lock()
			t.checking[name] = false
			t.mu.Unlock()
		}()

		conformed := fs.Args.Conform(args)
		if core.IsInvalid(conformed) {
			probs := fs.Args.Explain(nil, nil, nil, args)
			if t.log != nil {
				t.log.Printf("instrument: %v: argument mismatch: %s", name, spec.ExplainPrinted(probs))
			}
			return nil, spec.NewUsageError(spec.CodeArgMismatch,
				map[string]interface{}{"problems": probs, "args": args},
				"instrument: %v: arguments do not conform", name)
		}
		return t.invoke(name, raw, args, fs, o)
	}
}

func (t *Table) invoke(name core.Name, raw spec.Callable, args []interface{}, fs *spec.Fspec, o Opts) (interface{}, error) {
	switch {
	case o.Stub:
		g, err := spec.Gen(fs.Ret, o.Gen)
		if err != nil {
			return nil, err
		}
		return spec.GenerateOne(g)
	case o.Replace != nil:
		return o.Replace(args)
	default:
		return raw(args)
	}
}

// Unstrument restores the original binding for name, but only if the
// wrapped binding is still current.
func (t *Table) Unstrument(name core.Name, v Var) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.vars[name]
	if !ok {
		return
	}
	if v.Get() == b.wrapped {
		v.Set(b.raw)
	}
	delete(t.vars, name)
}

// Instrumented reports which names currently have an active wrapped
// binding.
func (t *Table) Instrumented() []core.Name {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Name, 0, len(t.vars))
	for n := range t.vars {
		out = append(out, n)
	}
	return out
}
