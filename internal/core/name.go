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

package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name is a namespace-qualified registry identifier, such as
// "myapp.order/id". A Name with no namespace component is accepted as
// a local tag (used for :ks keys inside cat/alt and for multi-spec
// dispatch values) but is rejected by the registry at registration
// time, per 's "unqualified names are rejected at
// registration" invariant.
type Name string

// NewName joins a namespace and local name the way qualified keywords
// are built: "ns/local", or just "local" when ns is empty.
func NewName(ns, local string) Name {
	if ns == "" {
		return Name(local)
	}
	return Name(ns + "/" + local)
}

// Namespace returns the portion of n before the last '/', or "" if n
// is unqualified.
func (n Name) Namespace() string {
	if i := strings.LastIndexByte(string(n), '/'); i >= 0 {
		return string(n)[:i]
	}
	return ""
}

// Local returns the portion of n after the last '/'.
func (n Name) Local() string {
	if i := strings.LastIndexByte(string(n), '/'); i >= 0 {
		return string(n)[i+1:]
	}
	return string(n)
}

// Qualified reports whether n carries a namespace component.
func (n Name) Qualified() bool { return n.Namespace() != "" }

// Normalized returns the Unicode-NFC normal form of n. The registry
// uses this as its canonical lookup key so that two visually identical
// names built from different Unicode representations resolve to the
// same registry entry.
func (n Name) Normalized() Name {
	return Name(norm.NFC.String(string(n)))
}

func (n Name) String() string { return string(n) }
