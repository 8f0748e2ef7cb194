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
	"strconv"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/cobra"

	"github.com/speclang/gospec"
)

func newExerciseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercise <spec-name> [n]",
		Short: "Sample n values from a registered spec's generator, paired with their conformed form.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveArgSpec(args[0])
			if err != nil {
				return err
			}
			n := 10
			if len(args) == 2 {
				v, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("specctl: n must be an integer: %w", err)
				}
				n = v
			}
			samples, err := spec.Exercise(s, n, nil)
			if err != nil {
				return fmt.Errorf("specctl: exercise: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, ex := range samples {
				fmt.Fprintf(out, "value:     %s\n", pretty.Sprint(ex.Value))
				fmt.Fprintf(out, "conformed: %s\n\n", pretty.Sprint(ex.Conformed))
			}
			return nil
		},
	}
}
