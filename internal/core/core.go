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

// Package core holds the small set of value-level types shared by the
// public spec package, the regex-op engine, and the registry, without
// any of those packages depending on one another: Invalid, Path, Name,
// Problem and RecursionMap.
package core

import "sync/atomic"

var idCounter int64

// NextID returns a fresh, process-wide unique id for a branching op
// (ALT, REP, keys, multi-spec). Ids are used only as RecursionMap keys;
// they carry no other meaning and are never zero (zero is reserved to
// mean "not a recursion checkpoint").
func NextID() int64 {
	return atomic.AddInt64(&idCounter, 1)
}
