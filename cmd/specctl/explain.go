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

	"github.com/spf13/cobra"

	"github.com/speclang/gospec"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <spec-name> <value.yaml>",
		Short: "Print structured diagnostic text for a non-conforming value.",
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
			fmt.Fprint(cmd.OutOrStdout(), spec.ExplainStr(s, v))
			return nil
		},
	}
}
