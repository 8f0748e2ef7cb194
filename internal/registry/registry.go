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

// Package registry is the process-global name -> spec table: Name ->
// Spec|RegexOp|Name, where Name entries chain and are walked on lookup.
// It holds values as interface{} rather than a concrete Spec type
// specifically so that it never needs to import the root spec package,
// which in turn imports registry. The copy-on-write immutable-map
// snapshot gives lock-free reads without ever holding a thread-local.
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/speclang/gospec/internal/core"
)

// Registry is a name -> Spec|RegexOp|Name table with alias-chain
// resolution. The zero value is not usable; construct with New.
type Registry struct {
	snapshot atomic.Pointer[map[core.Name]interface{}]
	mu       sync.Mutex // serializes writers; readers never block
}

// New returns an empty registry.
func New() *Registry {
	r := &Registry{}
	m := map[core.Name]interface{}{}
	r.snapshot.Store(&m)
	return r
}

// UnqualifiedNameError reports an attempt to register an unqualified
// name.
type UnqualifiedNameError struct{ Name core.Name }

func (e *UnqualifiedNameError) Error() string {
	return fmt.Sprintf("registry: name %q must be namespace-qualified", e.Name)
}

// UnresolvableNameError reports a resolve! chain ending at nothing.
type UnresolvableNameError struct{ Name core.Name }

func (e *UnresolvableNameError) Error() string {
	return fmt.Sprintf("registry: unresolvable name %q", e.Name)
}

// Register installs value under name, replacing any prior entry. value
// is typically a Spec, a regexop.Op, or another core.Name to alias.
// Registration copies the current snapshot, mutates the copy, and
// atomically swaps it in, so concurrent Lookup/Resolve callers never
// observe a partially-updated map.
func (r *Registry) Register(name core.Name, value interface{}) error {
	norm := name.Normalized()
	if !norm.Qualified() {
		return &UnqualifiedNameError{Name: name}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := *r.snapshot.Load()
	next := make(map[core.Name]interface{}, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[norm] = value
	r.snapshot.Store(&next)
	return nil
}

// Lookup returns the raw entry registered under name (which may itself
// be a core.Name alias, not yet walked), and whether it is present.
func (r *Registry) Lookup(name core.Name) (interface{}, bool) {
	m := *r.snapshot.Load()
	v, ok := m[name.Normalized()]
	return v, ok
}

// Resolved is the outcome of walking an alias chain: the final
// non-Name value, and the chain of names walked to reach it (for
// diagnostics — the original lookup key is Chain[0] when len(Chain) > 0).
type Resolved struct {
	Value interface{}
	Chain []core.Name
}

const maxChainLength = 64

// Resolve walks the alias chain starting at v: if v is a core.Name, it
// is looked up and the result walked again, until a non-Name value is
// reached or the chain ends. A name reference to an unregistered name,
// or a chain exceeding maxChainLength (a malformed self-referential
// alias loop), resolves to ok=false.
func (r *Registry) Resolve(v interface{}) (Resolved, bool) {
	var chain []core.Name
	cur := v
	for {
		name, isName := cur.(core.Name)
		if !isName {
			return Resolved{Value: cur, Chain: chain}, true
		}
		if len(chain) >= maxChainLength {
			return Resolved{}, false
		}
		chain = append(chain, name)
		next, ok := r.Lookup(name)
		if !ok {
			return Resolved{}, false
		}
		cur = next
	}
}

// ResolveName is Resolve for a bare name: look it up, then walk the
// chain the result represents, with name itself as Chain[0].
func (r *Registry) ResolveName(name core.Name) (Resolved, bool) {
	return r.Resolve(name)
}

// ResolveBang is ResolveName but raises UnresolvableNameError instead
// of returning ok=false, for callers that treat an unresolvable name as
// a hard error.
func (r *Registry) ResolveBang(name core.Name) (interface{}, error) {
	res, ok := r.ResolveName(name)
	if !ok {
		return nil, &UnresolvableNameError{Name: name}
	}
	return res.Value, nil
}

// Snapshot returns a read-only copy of the full name -> value table, as
// consumed by the public registry() operation.
func (r *Registry) Snapshot() map[core.Name]interface{} {
	m := *r.snapshot.Load()
	out := make(map[core.Name]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
