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

// Package wire holds the untyped key/value records exchanged with the
// gateway, before construction turns them into typed resources.
//
// A Map is what a decoded JSON object looks like in Go: string keys mapping
// to strings, float64, bool, nil, nested maps and slices. Lookups match keys
// on their canonical snake_case form, so "firstName", "first-name" and
// "first_name" all find the same field.
package wire

import (
	"sort"
	"strconv"

	"dirpx.dev/paygate/internal/naming"
)

// Map is an untyped wire record.
type Map map[string]any

// Canonical returns the canonical (snake_case) form of a field name.
func Canonical(name string) string {
	return naming.Snake(name)
}

// Lookup returns the value stored under name. An exact key wins; otherwise
// the first key, in sorted order, whose canonical form equals the canonical
// form of name is used.
func (m Map) Lookup(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if v, ok := m[name]; ok {
		return v, true
	}
	want := Canonical(name)
	var match string
	found := false
	for k := range m {
		if Canonical(k) != want {
			continue
		}
		if !found || k < match {
			match, found = k, true
		}
	}
	if !found {
		return nil, false
	}
	return m[match], true
}

// Has reports whether name is present, even with a null value.
func (m Map) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// String returns the scalar stored under name rendered as a string, or nil
// when it is absent, null or not a scalar.
func (m Map) String(name string) *string {
	v, ok := m.Lookup(name)
	if !ok {
		return nil
	}
	s, ok := Scalar(v)
	if !ok {
		return nil
	}
	return &s
}

// Map returns the nested record stored under name, or nil.
func (m Map) Map(name string) Map {
	v, ok := m.Lookup(name)
	if !ok {
		return nil
	}
	sub, _ := AsMap(v)
	return sub
}

// Maps returns the nested records stored under name. Elements that are not
// records are skipped. It returns nil when name is absent or not a list.
func (m Map) Maps(name string) []Map {
	v, ok := m.Lookup(name)
	if !ok {
		return nil
	}
	list, ok := AsList(v)
	if !ok {
		return nil
	}
	out := make([]Map, 0, len(list))
	for _, el := range list {
		if sub, ok := AsMap(el); ok {
			out = append(out, sub)
		}
	}
	return out
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of m. Nested maps and lists are copied; scalar
// values are shared, which is safe because they are immutable.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// Scalar renders a scalar wire value as a string. It reports false for
// nil, records and lists.
func Scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	}
	return "", false
}

// AsMap reports whether v is a record and returns it as a Map.
func AsMap(v any) (Map, bool) {
	switch x := v.(type) {
	case Map:
		return x, x != nil
	case map[string]any:
		return Map(x), x != nil
	case map[string]string:
		if x == nil {
			return nil, false
		}
		out := make(Map, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

// AsList reports whether v is a list and returns its elements.
func AsList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []Map:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = el
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = el
		}
		return out, true
	case []string:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = el
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	if sub, ok := AsMap(v); ok {
		return sub.Clone()
	}
	if list, ok := AsList(v); ok {
		out := make([]any, len(list))
		for i, el := range list {
			out[i] = cloneValue(el)
		}
		return out
	}
	return v
}
