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
	"github.com/speclang/gospec/internal/core"
	"github.com/speclang/gospec/internal/regexop"
	"github.com/speclang/gospec/internal/registry"
)

// defaultRegistry is the process-global table backing Def/GetSpec.
var defaultRegistry = registry.New()

// DefaultRegistry exposes the process-global registry directly, for
// callers (instrumentation, cmd/specctl) that need a *registry.Registry
// rather than the Def/GetSpec convenience wrappers.
func DefaultRegistry() *registry.Registry { return defaultRegistry }

// Def registers spec under name, which must be namespace-qualified.
func Def(name Name, s Spec) error {
	if err := defaultRegistry.Register(name, s); err != nil {
		return newUsageError(CodeNonNamespaced, map[string]interface{}{"name": name}, "def: %w", err)
	}
	return nil
}

// DefRegex registers a bare regex op under name, so it can be referenced
// by Name without first wrapping it in NewRegex.
func DefRegex(name Name, op regexop.Op) error {
	return defaultRegistry.Register(name, op)
}

// GetSpec resolves name_or_callable_identifier to its registered Spec
//. The second result is false if name is unregistered or
// resolves to something other than a Spec.
func GetSpec(name Name) (Spec, bool) {
	res, ok := defaultRegistry.ResolveName(name)
	if !ok {
		return nil, false
	}
	s, ok := res.Value.(Spec)
	return s, ok
}

// Registry returns a point-in-time snapshot of the full name -> value
// table.
func Registry() map[Name]interface{} {
	return defaultRegistry.Snapshot()
}

// Resolve is the public alias-walking resolve(spec_or_name) operation
//: a bare Spec resolves to itself; a Name is walked through the
// registry.
func Resolve(v interface{}) (Spec, bool) {
	name, isName := v.(core.Name)
	if !isName {
		s, ok := v.(Spec)
		return s, ok
	}
	return GetSpec(name)
}

// Fdef is shorthand for def(name, fspec(...)).
func Fdef(name Name, f *Fspec) error {
	return Def(name, f)
}
