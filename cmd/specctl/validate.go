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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/speclang/gospec"
)

func resolveArgSpec(name string) (spec.Spec, error) {
	if err := setupRegistry(); err != nil {
		return nil, err
	}
	s, ok := spec.GetSpec(spec.Name(name))
	if !ok {
		return nil, fmt.Errorf("specctl: no spec registered under %q", name)
	}
	return s, nil
}

func decodeValueFile(path string) (interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specctl: open value file: %w", err)
	}
	defer f.Close()
	var v interface{}
	if err := yaml.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("specctl: decode value file: %w", err)
	}
	return v, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <spec-name> <value.yaml>",
		Short: "Report whether a YAML-decoded value conforms to a registered spec.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveArgSpec(args[0])
			if err != nil {
				return err
			}
			v, err := decodeValueFile(args[1])
			if err != nil {
				return err
			}
			ok := spec.Valid(s, v)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return fmt.Errorf("specctl: value does not conform to %s", args[0])
			}
			return nil
		},
	}
}
