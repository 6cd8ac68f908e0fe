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

// Package fieldpath names the field a validation failure refers to.
//
// Gateways report validation failures nested by resource
// ("customer" -> "credit_card" -> "number"), as slash paths
// ("customer/credit_card/number") or with list indices
// ("customer[addresses][0][postal_code]"). All of them normalize to one
// dotted form:
//
//	customer.credit_card.number
//	customer.addresses.0.postal_code
//
// A segment is either a snake_case name ([a-z][a-z0-9_]*) or a list index
// (digits only).
package fieldpath

import (
	"errors"
	"strings"

	"dirpx.dev/paygate/internal/naming"
)

// Path is a canonical dotted field path.
type Path string

// MaxDepth bounds the number of segments in a valid path.
const MaxDepth = 16

// ErrPathInvalid is returned when a path cannot be parsed.
var ErrPathInvalid = errors.New("paygate: invalid field path")

// Empty is the path of the resource itself (errors not tied to a field).
var Empty Path = ""

// Normalize brings s to dotted snake_case form: "/" and "[...]" become
// segment separators and each segment is snake-cased. It does not
// guarantee validity.
func Normalize(s string) string {
	return strings.Join(split(s), ".")
}

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Path, error) {
	segs := split(s)
	if len(segs) == 0 {
		return Empty, nil
	}
	if len(segs) > MaxDepth {
		return Empty, ErrPathInvalid
	}
	for _, seg := range segs {
		if !validSegment(seg) {
			return Empty, ErrPathInvalid
		}
	}
	return Path(strings.Join(segs, ".")), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Join normalizes every part and joins the non-empty ones. Unlike Parse it
// never fails: it is used while flattening untrusted error payloads, where
// an odd attribute name must still land somewhere.
func Join(parts ...string) Path {
	var segs []string
	for _, part := range parts {
		segs = append(segs, split(part)...)
	}
	return Path(strings.Join(segs, "."))
}

// Child returns p extended by name.
func (p Path) Child(name string) Path {
	return Join(string(p), name)
}

// Segments returns the dot-separated segments of p.
func (p Path) Segments() []string {
	if p == Empty {
		return nil
	}
	return strings.Split(string(p), ".")
}

// Base returns the last segment, typically the attribute name.
func (p Path) Base() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Parent returns p without its last segment.
func (p Path) Parent() Path {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return Path(s[:i])
	}
	return Empty
}

// HasPrefix reports whether prefix is p or a segment-aligned ancestor of p.
// "customer.credit_card" is a prefix of "customer.credit_card.number" but
// not of "customer.credit_card_token".
func (p Path) HasPrefix(prefix Path) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(p), string(prefix)) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '.'
}

// String returns the dotted form.
func (p Path) String() string {
	return string(p)
}

// split breaks s on '.', '/', '[' and ']' and snake-cases each non-empty
// segment.
func split(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '/' || r == '[' || r == ']'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if seg := naming.Snake(f); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg[0] >= '0' && seg[0] <= '9' {
		for i := 1; i < len(seg); i++ {
			if seg[i] < '0' || seg[i] > '9' {
				return false
			}
		}
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
