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

// Config holds the process-wide tunables, overridable per call-site via
// functional options. The zero value is never used directly;
// DefaultConfig() seeds the package defaults.
type Config struct {
	RecursionLimit    int
	FspecIterations   int
	CollCheckLimit    int
	CollErrorLimit    int
	InstrumentEnabled bool
}

// DefaultConfig returns the package defaults.
func DefaultConfig() Config {
	return Config{
		RecursionLimit:    4,
		FspecIterations:   21,
		CollCheckLimit:    101,
		CollErrorLimit:    20,
		InstrumentEnabled: true,
	}
}

// Option mutates a Config in place, following the usual
// package-default-plus-functional-option idiom for evaluator options.
type Option func(*Config)

// WithRecursionLimit overrides the max revisits of a branching op id on
// a recursive path before generation cuts the branch off.
func WithRecursionLimit(n int) Option {
	return func(c *Config) { c.RecursionLimit = n }
}

// WithFspecIterations overrides the number of generative trials fspec
// runs against a candidate callable.
func WithFspecIterations(n int) Option {
	return func(c *Config) { c.FspecIterations = n }
}

// WithCollCheckLimit overrides the maximum number of elements every/
// coll-of samples during conform/explain.
func WithCollCheckLimit(n int) Option {
	return func(c *Config) { c.CollCheckLimit = n }
}

// WithCollErrorLimit overrides the Problem count at which a collection
// spec's Explain stops checking further elements; the Problems of the
// element that reaches it are kept whole, so the total can exceed it.
func WithCollErrorLimit(n int) Option {
	return func(c *Config) { c.CollErrorLimit = n }
}

// WithInstrumentEnabled toggles whether instrumented wrappers do
// anything at call time (when disabled, a wrapper calls the original
// callable directly, with no argument check, stub or replacement).
func WithInstrumentEnabled(enabled bool) Option {
	return func(c *Config) { c.InstrumentEnabled = enabled }
}

// ResolveConfig builds a Config starting from DefaultConfig and applying
// opts in order.
func ResolveConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
