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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Customer.Find  ", "customer.find"},
		{"slash to dot", "customer/addresses/find", "customer.addresses.find"},
		{"dash to underscore", "credit-card.update", "credit_card.update"},
		{"space to underscore", "PayPal Account.delete", "paypal_account.delete"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Reason
	}{
		{"simple", "customer.find", Reason("customer.find")},
		{"four segments", "customer.addresses.billing.update", Reason("customer.addresses.billing.update")},
		{"with slash and dash", "transport/decode-body", Reason("transport.decode_body")},
		{"empty is ok", "", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []string{
		"customer..find",
		"customer//find",
		"1customer.find",
		"customer.find.",
		".customer",
		"a.b.c.d.e",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
			}
			if err != ErrReasonInvalidFormat && err != ErrReasonInvalidLength {
				t.Fatalf("Parse(%q) error = %v", in, err)
			}
		})
	}
}

func TestParse_InvalidLength(t *testing.T) {
	long := "customer"
	for len(long) <= MaxLength {
		long += "_verylongsegment"
	}
	if _, err := Parse(long); err != ErrReasonInvalidLength {
		t.Fatalf("Parse(long) error = %v, want ErrReasonInvalidLength", err)
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		resource, op string
		want         Reason
	}{
		{"customer", "find", "customer.find"},
		{"credit card", "Update", "credit_card.update"},
		{"paypal_account", "", "paypal_account"},
		{"", "delete", "delete"},
		{"", "", Empty},
		{"1bad", "find", Empty},
	}
	for _, tt := range tests {
		if got := Of(tt.resource, tt.op); got != tt.want {
			t.Fatalf("Of(%q, %q) = %q, want %q", tt.resource, tt.op, got, tt.want)
		}
	}
}

func TestReason_Resource(t *testing.T) {
	if got := Reason("customer.find").Resource(); got != "customer" {
		t.Fatalf("Resource() = %q, want customer", got)
	}
	if got := Reason("address").Resource(); got != "address" {
		t.Fatalf("Resource() = %q, want address", got)
	}
	if got := Empty.Resource(); got != "" {
		t.Fatalf("Resource() on Empty = %q", got)
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on empty reason")
		}
	}()
	_ = MustParse("")
}

func TestReason_MarshalText(t *testing.T) {
	text, err := Reason("customer.create").MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	if string(text) != "customer.create" {
		t.Fatalf("MarshalText = %q", string(text))
	}
	text, err = Empty.MarshalText()
	if err != nil || len(text) != 0 {
		t.Fatalf("MarshalText on empty = %q, %v", string(text), err)
	}
	if _, err := Reason("Bad.Reason").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid reason must return error")
	}
}

func TestReason_UnmarshalText(t *testing.T) {
	var r Reason
	if err := r.UnmarshalText([]byte("  CUSTOMER/ADDRESSES.FIND-ONE  ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if r != Reason("customer.addresses.find_one") {
		t.Fatalf("UnmarshalText = %q", r)
	}

	var r2 Reason
	if err := r2.UnmarshalText([]byte("   ")); err != nil || r2 != Empty {
		t.Fatalf("UnmarshalText(blank) = %q, %v", r2, err)
	}

	var bad Reason
	if err := bad.UnmarshalText([]byte("Bad/Reason/Too/Many/Segments")); err == nil {
		t.Fatalf("UnmarshalText expected error for invalid input")
	}
}

func TestReason_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Reason)(nil)
	var _ encoding.TextUnmarshaler = (*Reason)(nil)
}
