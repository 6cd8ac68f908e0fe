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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error class.
//
// It is a distinct type so that the error model, the transport classifier
// and the status mapper can state which values they expect instead of
// passing raw strings around.
type Code string

// MinLength and MaxLength bound the length of a canonical code.
const (
	// MinLength rejects ultra-short identifiers like "a" or "x1".
	MinLength = 3

	// MaxLength is enough for "permission_denied" style names.
	MaxLength = 64
)

const (
	// codeFmt is the pattern every canonical code matches:
	//
	//	^[a-z]          first character is a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} then letters, digits or underscore (3..64 total);
	//	$
	//
	// The {2,63} range is tied to MinLength / MaxLength.
	codeFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated
// as a code.
var ErrCodeInvalid = errors.New("paygate: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code, meaning "not classified yet".
var Empty Code = ""

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims spaces, lowercases and turns '-' and ' ' into '_'.
// Gateways are not consistent about "Not-Found" vs "not_found", so this is
// applied to every code read off the wire. The result still has to pass
// Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate reports whether c is canonical. The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// OrUnknown returns c, or Unknown when c is not a canonical code.
func OrUnknown(c Code) Code {
	if validate(string(c)) != nil {
		return Unknown
	}
	return c
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// normalized before validation.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
