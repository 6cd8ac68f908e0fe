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

package construct

import "dirpx.dev/paygate/wire"

// Record is the result of the generic construction pass: every field of its
// Schema with its hydrated value or default. Accessors for a field of
// another kind, or for an undeclared name, return that kind's default.
type Record struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema r was hydrated with, or nil for the zero Record.
func (r Record) Schema() *Schema { return r.schema }

// Scalar returns the Scalar field name, or nil when absent.
func (r Record) Scalar(name string) *string {
	s, _ := r.values[wire.Canonical(name)].(*string)
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Mapping returns the Mapping field name. The map is never nil and
// belongs to the caller.
func (r Record) Mapping(name string) map[string]string {
	src, _ := r.values[wire.Canonical(name)].(map[string]string)
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Sequence returns the Sequence field name. The slice is never nil.
func (r Record) Sequence(name string) []Record {
	src, _ := r.values[wire.Canonical(name)].([]Record)
	out := make([]Record, len(src))
	copy(out, src)
	return out
}

// Nested returns the Nested field name and whether it was present.
func (r Record) Nested(name string) (Record, bool) {
	rec, _ := r.values[wire.Canonical(name)].(*Record)
	if rec == nil {
		return Record{}, false
	}
	return *rec, true
}

// ToMap renders r back to wire form. Absent scalars and nested records are
// omitted; mappings and sequences are always present. For a map m holding
// declared fields only, Hydrate(r.ToMap()) equals Hydrate(m).
func (r Record) ToMap() wire.Map {
	out := wire.Map{}
	if r.schema == nil {
		return out
	}
	for _, f := range r.schema.fields {
		switch f.Kind {
		case Scalar:
			if s := r.Scalar(f.Name); s != nil {
				out[f.Name] = *s
			}
		case Mapping:
			out[f.Name] = MappingValue(r.Mapping(f.Name))
		case Sequence:
			out[f.Name] = Maps(r.Sequence(f.Name), Record.ToMap)
		case Nested:
			if sub, ok := r.Nested(f.Name); ok {
				out[f.Name] = sub.ToMap()
			}
		}
	}
	return out
}

// SetScalar stores *s under name when s is non-nil. Typed resources use it
// to render themselves back to wire form.
func SetScalar(m wire.Map, name string, s *string) {
	if s != nil {
		m[name] = *s
	}
}

// MappingValue renders a string map as a wire record.
func MappingValue(src map[string]string) wire.Map {
	out := make(wire.Map, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Maps renders items with toMap as a wire list.
func Maps[T any](items []T, toMap func(T) wire.Map) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = toMap(it)
	}
	return out
}
