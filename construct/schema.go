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

import (
	"fmt"

	"dirpx.dev/paygate/wire"
)

// Kind is the shape of a declared field.
type Kind uint8

const (
	// Scalar is an optional string. Default: nil.
	Scalar Kind = iota
	// Mapping is an open string-to-string map. Default: empty map.
	Mapping
	// Sequence is an ordered list of sub-records. Default: empty list.
	Sequence
	// Nested is a single optional sub-record. Default: absent.
	Nested
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Field declares one field of a Schema. Of is the sub-schema of Sequence
// and Nested fields.
type Field struct {
	Name string
	Kind Kind
	Of   *Schema
}

// ScalarField declares a Scalar field.
func ScalarField(name string) Field { return Field{Name: name, Kind: Scalar} }

// MappingField declares a Mapping field.
func MappingField(name string) Field { return Field{Name: name, Kind: Mapping} }

// SequenceField declares a Sequence field of records shaped by of.
func SequenceField(name string, of *Schema) Field {
	return Field{Name: name, Kind: Sequence, Of: of}
}

// NestedField declares a Nested field shaped by of.
func NestedField(name string, of *Schema) Field {
	return Field{Name: name, Kind: Nested, Of: of}
}

// Schema is an immutable, ordered list of declared fields.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema named name. Field names are canonicalized.
// Schemas are declared at package level, so NewSchema panics on a blank or
// duplicate name, or on a Sequence/Nested field without a sub-schema.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		f.Name = wire.Canonical(f.Name)
		if f.Name == "" {
			panic(fmt.Sprintf("construct: schema %q: blank field name", name))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("construct: schema %q: duplicate field %q", name, f.Name))
		}
		if (f.Kind == Sequence || f.Kind == Nested) && f.Of == nil {
			panic(fmt.Sprintf("construct: schema %q: %s field %q needs a sub-schema", name, f.Kind, f.Name))
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Name returns the schema name, e.g. "customer".
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the declared field called name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[wire.Canonical(name)]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Hydrate is the generic construction pass. Every declared field gets
// either the coerced wire value or a freshly allocated default:
//
//   - Scalar: strings as-is, numbers and booleans rendered as strings;
//     null, records and lists give nil.
//   - Mapping: scalar values rendered as strings, other values skipped;
//     anything but a record gives an empty map.
//   - Sequence: each record element hydrated with the sub-schema, other
//     elements skipped; anything but a list gives an empty list.
//   - Nested: a record is hydrated with the sub-schema; anything else
//     leaves the field absent.
func (s *Schema) Hydrate(m wire.Map) Record {
	r := Record{schema: s, values: make(map[string]any, len(s.fields))}
	for _, f := range s.fields {
		v, present := m.Lookup(f.Name)
		switch f.Kind {
		case Scalar:
			if !present {
				continue
			}
			if str, ok := wire.Scalar(v); ok {
				r.values[f.Name] = &str
			}
		case Mapping:
			r.values[f.Name] = hydrateMapping(v)
		case Sequence:
			r.values[f.Name] = hydrateSequence(f.Of, v)
		case Nested:
			if sub, ok := wire.AsMap(v); ok {
				rec := f.Of.Hydrate(sub)
				r.values[f.Name] = &rec
			}
		}
	}
	return r
}

func hydrateMapping(v any) map[string]string {
	out := map[string]string{}
	src, ok := wire.AsMap(v)
	if !ok {
		return out
	}
	for k, el := range src {
		if s, ok := wire.Scalar(el); ok {
			out[k] = s
		}
	}
	return out
}

func hydrateSequence(of *Schema, v any) []Record {
	list, ok := wire.AsList(v)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(list))
	for _, el := range list {
		if sub, ok := wire.AsMap(el); ok {
			out = append(out, of.Hydrate(sub))
		}
	}
	return out
}
