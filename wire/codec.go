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
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Decode parses a JSON object into a Map. An empty or whitespace-only body
// decodes to an empty Map. Numbers decode as float64.
func Decode(b []byte) (Map, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return Map{}, nil
	}
	var st structpb.Struct
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("wire: decode: %w", err)
	}
	return Map(st.AsMap()), nil
}

// Encode renders m as a JSON object.
func Encode(m Map) ([]byte, error) {
	st, err := Struct(m)
	if err != nil {
		return nil, err
	}
	b, err := protojson.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("wire: encode: %w", err)
	}
	return b, nil
}

// Struct converts m into a protobuf Struct.
func Struct(m Map) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(Plain(m))
	if err != nil {
		return nil, fmt.Errorf("wire: encode: %w", err)
	}
	return st, nil
}

// Plain converts m into the map[string]any form structpb and encoding
// packages expect, unwrapping nested Map values and typed lists.
func Plain(m Map) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	if sub, ok := AsMap(v); ok {
		return Plain(sub)
	}
	if list, ok := AsList(v); ok {
		out := make([]any, len(list))
		for i, el := range list {
			out[i] = plainValue(el)
		}
		return out
	}
	switch x := v.(type) {
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return v
}
