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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated representation of an error reason.
// See the package documentation for the expected shape.
type Reason string

// MinLength and MaxLength bound a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

const (
	// reasonFmt accepts 1 to 4 dot-separated segments, each starting with a
	// lowercase letter and continuing with [a-z0-9_]. The empty string is
	// handled separately as "no reason".
	reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match reasonFmt.
	ErrReasonInvalidFormat = errors.New("paygate: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("paygate: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason provided".
var Empty Reason = ""

// Normalize trims, lowercases, turns "/" into "." and "-" or " " into "_".
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Parse normalizes and validates s. The empty string parses to Empty
// without error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("paygate: empty reason in MustParse")
	}
	return r
}

// Of builds the reason "<resource>.<op>". Both parts are normalized, so
// Of("credit card", "Update") is "credit_card.update". It returns Empty
// when the result is not a valid reason; callers attach it unconditionally.
func Of(resource, op string) Reason {
	res, o := Normalize(resource), Normalize(op)
	var s string
	switch {
	case res == "":
		s = o
	case o == "":
		s = res
	default:
		s = res + "." + o
	}
	r, err := Parse(s)
	if err != nil {
		return Empty
	}
	return r
}

// Resource returns the first segment of r, or "" for Empty.
func (r Reason) Resource() string {
	s := string(r)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an
// empty slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Whitespace-only
// input yields Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
