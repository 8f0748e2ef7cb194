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

	"golang.org/x/xerrors"
)

// Code classifies a UsageError.
type Code int

const (
	CodeUnresolvedName Code = iota + 1
	CodeNoGenerator
	CodeNonNamespaced
	CodeNotInvertible
	CodeArgMismatch
)

func (c Code) String() string {
	switch c {
	case CodeUnresolvedName:
		return "unresolved-name"
	case CodeNoGenerator:
		return "no-generator"
	case CodeNonNamespaced:
		return "non-namespaced"
	case CodeNotInvertible:
		return "not-invertible"
	case CodeArgMismatch:
		return "arg-mismatch"
	default:
		return "unknown"
	}
}

// UsageError is a raised programmer error, as opposed to a data
// failure. It wraps an underlying error built with xerrors so %w chains
// survive through errors.Is/errors.As, and carries a structured payload
// for callers that want more than the formatted message (e.g.
// instrumentation attaches the originating ProblemList and argument
// list under Payload).
type UsageError struct {
	Code    Code
	Err     error
	Payload map[string]interface{}
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("spec: %s: %v", e.Code, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

func newUsageError(code Code, payload map[string]interface{}, format string, args ...interface{}) *UsageError {
	return &UsageError{Code: code, Err: xerrors.Errorf(format, args...), Payload: payload}
}

// NewUsageError exports newUsageError for collaborating packages
// (internal/instrument) that raise the same usage-failure surface
// without duplicating the Code enum or the xerrors wrapping.
func NewUsageError(code Code, payload map[string]interface{}, format string, args ...interface{}) *UsageError {
	return newUsageError(code, payload, format, args...)
}
