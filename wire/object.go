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

package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Object is a record that remembers the order of its keys. Error bodies
// are walked through it so that failures keep the order the gateway
// declared them in. Nested records are Objects and lists are []any.
//
// The zero value is an empty Object.
type Object struct {
	keys []string
	vals map[string]any
}

// DecodeObject parses a JSON object, keeping key order at every level.
// An empty or whitespace-only body decodes to an empty Object. Duplicate
// keys keep their first position and their last value.
func DecodeObject(b []byte) (Object, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return Object{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	v, err := decodeValue(dec)
	if err != nil {
		return Object{}, fmt.Errorf("wire: decode: %w", err)
	}
	o, ok := v.(Object)
	if !ok {
		return Object{}, errors.New("wire: decode: body is not an object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Object{}, errors.New("wire: decode: trailing data after object")
	}
	return o, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		o := Object{vals: make(map[string]any)}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			k, _ := kt.(string)
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, dup := o.vals[k]; !dup {
				o.keys = append(o.keys, k)
			}
			o.vals[k] = v
		}
		_, err := dec.Token()
		return o, err
	case '[':
		list := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		_, err := dec.Token()
		return list, err
	}
	return nil, fmt.Errorf("unexpected %q", d)
}

// ObjectOf converts m, and every record below it, to an Object. Go maps
// carry no order, so keys are taken in sorted order.
func ObjectOf(m Map) Object {
	o := Object{keys: m.Keys(), vals: make(map[string]any, len(m))}
	for k, v := range m {
		o.vals[k] = objectValue(v)
	}
	return o
}

func objectValue(v any) any {
	if o, ok := v.(Object); ok {
		return o
	}
	if sub, ok := AsMap(v); ok {
		return ObjectOf(sub)
	}
	if list, ok := AsList(v); ok {
		out := make([]any, len(list))
		for i, el := range list {
			out[i] = objectValue(el)
		}
		return out
	}
	return v
}

// AsObject reports whether v is a record, converting a Map when needed.
func AsObject(v any) (Object, bool) {
	if o, ok := v.(Object); ok {
		return o, true
	}
	if m, ok := AsMap(v); ok {
		return ObjectOf(m), true
	}
	return Object{}, false
}

// Keys returns the keys of o in declaration order.
func (o Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o Object) Len() int { return len(o.keys) }

// Get returns the value stored under the exact key k.
func (o Object) Get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

// Lookup is Map.Lookup in declaration order: an exact key wins, otherwise
// the first key whose canonical form matches.
func (o Object) Lookup(name string) (any, bool) {
	if v, ok := o.vals[name]; ok {
		return v, true
	}
	want := Canonical(name)
	for _, k := range o.keys {
		if Canonical(k) == want {
			return o.vals[k], true
		}
	}
	return nil, false
}

// String returns the scalar under name rendered as a string, or nil.
func (o Object) String(name string) *string {
	v, ok := o.Lookup(name)
	if !ok {
		return nil
	}
	s, ok := Scalar(v)
	if !ok {
		return nil
	}
	return &s
}

// Object returns the record stored under name.
func (o Object) Object(name string) (Object, bool) {
	v, ok := o.Lookup(name)
	if !ok {
		return Object{}, false
	}
	return AsObject(v)
}

// Map converts o back to an unordered Map.
func (o Object) Map() Map {
	m := make(Map, len(o.keys))
	for k, v := range o.vals {
		m[k] = mapValue(v)
	}
	return m
}

func mapValue(v any) any {
	switch x := v.(type) {
	case Object:
		return x.Map()
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = mapValue(el)
		}
		return out
	}
	return v
}
