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
	"github.com/spf13/cobra"
)

var registryFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "specctl",
		Short: "specctl drives the spec registry from the shell.",
		Long: `specctl validates, explains, and exercises registered specs
against YAML-decoded values, and demonstrates wrapping a callable with
argument-spec checking via instrument.

Specs are seeded from a small built-in table plus, optionally, a YAML
file of name -> builtin-kind entries passed via --registry.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&registryFile, "registry", "", "path to a YAML registry-seed file")

	root.AddCommand(
		newValidateCmd(),
		newExplainCmd(),
		newExerciseCmd(),
		newInstrumentCmd(),
	)
	return root
}
