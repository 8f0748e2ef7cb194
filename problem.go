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

import "github.com/speclang/gospec/internal/core"

// Problem and ProblemList are the data-failure surface: they
// never panic, and are produced by Explain. Aliased directly from
// internal/core so the regex engine and the public Spec protocol share
// one representation without either package importing the other's
// concrete type.
type Problem = core.Problem
type ProblemList = core.ProblemList

// Path locates a position within a conformed value (Problem.Path) or
// an input value (Problem.In).
type Path = core.Path

// Name is a namespace-qualified registry identifier.
type Name = core.Name

// NewName builds a Name from a namespace and a local part; an empty
// namespace yields an unqualified name (valid as a :k key tag, rejected
// at registry registration).
func NewName(ns, local string) Name { return core.NewName(ns, local) }
