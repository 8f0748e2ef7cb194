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
	"fmt"
	"strings"

	"github.com/kylelemons/godebug/pretty"

	"github.com/speclang/gospec/internal/core"
)

// Form is the public form(spec) operation: the symbolic
// data representation a spec was built from, never the predicate
// itself, so describe/form can render without invoking anything.
func Form(s Spec) interface{} { return s.Describe() }

// Describe is an alias for Form, since form(spec) and describe(spec)
// name the same operation.
func Describe(s Spec) interface{} { return s.Describe() }

var prettyConfig = &pretty.Config{
	Compact:           false,
	IncludeUnexported: false,
}

// FormString pretty-prints a spec's symbolic form using godebug/pretty,
// for diffable/readable output in tests and CLI commands.
func FormString(s Spec) string {
	return strings.TrimRight(prettyConfig.Sprint(s.Describe()), "\n")
}

// ExplainPrinted renders a ProblemList as text: one block per Problem,
// "Success!" when there are none.
func ExplainPrinted(probs core.ProblemList) string {
	if probs.Empty() {
		return "Success!\n"
	}
	var b strings.Builder
	for _, p := range probs {
		writeProblem(&b, p)
	}
	return b.String()
}

// ExplainStr explains x against s and returns the ExplainPrinted
// rendering of the resulting Problems.
func ExplainStr(s Spec, x interface{}) string {
	return ExplainPrinted(s.Explain(nil, nil, nil, x))
}

func writeProblem(b *strings.Builder, p core.Problem) {
	if len(p.In) > 0 {
		fmt.Fprintf(b, "In: %s ", p.In)
	}
	fmt.Fprintf(b, "val: %s fails", prettyConfig.Sprint(p.Val))
	if len(p.Via) > 0 {
		fmt.Fprintf(b, " spec: %v", p.Via[len(p.Via)-1])
	}
	if len(p.Path) > 0 {
		fmt.Fprintf(b, " at: %s", p.Path)
	}
	fmt.Fprintf(b, " predicate: %s", prettyConfig.Sprint(p.Pred))
	if p.Reason != "" {
		fmt.Fprintf(b, ", %s", p.Reason)
	}
	b.WriteByte('\n')
	for k, v := range p.Extra {
		fmt.Fprintf(b, "\t%s %s\n", k, prettyConfig.Sprint(v))
	}
}
