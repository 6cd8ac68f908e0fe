/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package paygate

import (
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/fieldpath"
)

// FieldError is a single validation failure reported by the gateway.
type FieldError struct {
	// Path is the canonical dotted path of the failing field.
	Path fieldpath.Path
	// Attribute is the attribute name as the gateway sent it.
	Attribute string
	// Code is the gateway's failure code (usually numeric, e.g. "81805").
	Code string
	// Message is the gateway's human-readable description of the failure.
	Message string
}

// Detail converts fe to its transport-friendly form.
func (fe FieldError) Detail() apis.Detail {
	return apis.Detail{
		Field:     string(fe.Path),
		Code:      fe.Code,
		Attribute: fe.Attribute,
		Message:   fe.Message,
	}
}

// ValidationErrors is an ordered mapping from field path to the failures
// reported for it. Paths keep the order in which they were first reported
// and each path keeps the order of its failures.
//
// The zero value is an empty set. Accessors return copies; a
// ValidationErrors is never modified after it is built.
type ValidationErrors struct {
	paths  []fieldpath.Path
	byPath map[fieldpath.Path][]FieldError
}

// NewValidationErrors builds a set from failures in the given order.
func NewValidationErrors(failures ...FieldError) ValidationErrors {
	var v ValidationErrors
	for _, fe := range failures {
		v.add(fe)
	}
	return v
}

// Len returns the total number of failures.
func (v ValidationErrors) Len() int {
	n := 0
	for _, list := range v.byPath {
		n += len(list)
	}
	return n
}

// Empty reports whether there are no failures.
func (v ValidationErrors) Empty() bool { return len(v.paths) == 0 }

// Paths returns the failing paths in order.
func (v ValidationErrors) Paths() []fieldpath.Path {
	if len(v.paths) == 0 {
		return nil
	}
	out := make([]fieldpath.Path, len(v.paths))
	copy(out, v.paths)
	return out
}

// For returns the failures reported for exactly p.
func (v ValidationErrors) For(p fieldpath.Path) []FieldError {
	list := v.byPath[p]
	if len(list) == 0 {
		return nil
	}
	out := make([]FieldError, len(list))
	copy(out, list)
	return out
}

// Under returns all failures at p or below it, in order. Under(Empty)
// equals All.
func (v ValidationErrors) Under(prefix fieldpath.Path) []FieldError {
	var out []FieldError
	for _, p := range v.paths {
		if p.HasPrefix(prefix) {
			out = append(out, v.byPath[p]...)
		}
	}
	return out
}

// All returns every failure, grouped by path in order.
func (v ValidationErrors) All() []FieldError {
	return v.Under(fieldpath.Empty)
}

// First returns the first reported failure.
func (v ValidationErrors) First() (FieldError, bool) {
	if len(v.paths) == 0 {
		return FieldError{}, false
	}
	return v.byPath[v.paths[0]][0], true
}

// Map returns the failures keyed by dotted path.
func (v ValidationErrors) Map() map[string][]FieldError {
	out := make(map[string][]FieldError, len(v.paths))
	for _, p := range v.paths {
		out[string(p)] = v.For(p)
	}
	return out
}

func (v *ValidationErrors) add(fe FieldError) {
	if v.byPath == nil {
		v.byPath = make(map[fieldpath.Path][]FieldError)
	}
	if _, seen := v.byPath[fe.Path]; !seen {
		v.paths = append(v.paths, fe.Path)
	}
	v.byPath[fe.Path] = append(v.byPath[fe.Path], fe)
}
