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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/speclang/gospec"
)

// seedConfig is the YAML shape --registry loads: a flat map of
// namespace-qualified name to one of the builtin leaf-kind strings
// builtinSpec recognizes. Declarative spec seeding via a loaded config
// file mirrors the "specs defined in a file at startup" shape common
// in the corpus (see SPEC_FULL.md's Configuration section).
type seedConfig struct {
	Specs map[string]string `yaml:"specs"`
}

// builtinSpec maps a kind string to one of leaf.go's constructors.
func builtinSpec(kind string) (spec.Spec, error) {
	switch kind {
	case "int?":
		return spec.IntSpec(), nil
	case "string?":
		return spec.StringSpec(), nil
	case "bool?":
		return spec.BoolSpec(), nil
	case "float64?":
		return spec.Float64Spec(), nil
	case "nil?":
		return spec.NilSpec(), nil
	case "any?":
		return spec.AnySpec(), nil
	case "pos-int?":
		return spec.PosIntSpec(), nil
	case "neg-int?":
		return spec.NegIntSpec(), nil
	default:
		return nil, fmt.Errorf("specctl: unknown builtin kind %q", kind)
	}
}

// defaultSeed registers a small built-in table of demo specs so
// validate/explain/exercise have something to point at with no
// --registry file at all.
func defaultSeed() error {
	table := map[string]string{
		"specctl/id":    "pos-int?",
		"specctl/name":  "string?",
		"specctl/count": "int?",
		"specctl/ratio": "float64?",
		"specctl/flag":  "bool?",
	}
	return registerAll(table)
}

// loadRegistryFile loads and registers the YAML seed file at path, if
// one was supplied via --registry.
func loadRegistryFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("specctl: open registry file: %w", err)
	}
	defer f.Close()

	var cfg seedConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return fmt.Errorf("specctl: decode registry file: %w", err)
	}
	return registerAll(cfg.Specs)
}

func registerAll(table map[string]string) error {
	for name, kind := range table {
		s, err := builtinSpec(kind)
		if err != nil {
			return err
		}
		if err := spec.Def(spec.Name(name), s); err != nil {
			return fmt.Errorf("specctl: register %s: %w", name, err)
		}
	}
	return nil
}

// setupRegistry seeds the default table and then overlays the
// --registry file, if any, so CLI invocations always resolve a
// consistent set of names regardless of subcommand.
func setupRegistry() error {
	if err := defaultSeed(); err != nil {
		return err
	}
	return loadRegistryFile(registryFile)
}
