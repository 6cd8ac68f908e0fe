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

package segmenttrie

import "testing"

func TestMatch_LongestPrefix(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("customer", 400))
	must(t, tr.Insert("customer.create", 422))
	must(t, tr.Insert("credit_card.update.billing_address", 409))

	cases := []struct {
		reason string
		want   int
		pat    string
	}{
		{"customer.find", 400, "customer"},
		{"customer.create", 422, "customer.create"},
		{"customer.create.retry", 422, "customer.create"},
		{"credit_card.update.billing_address.street", 409, "credit_card.update.billing_address"},
	}
	for _, tc := range cases {
		v, ok, p := tr.MatchWithPattern(tc.reason)
		if !ok || v != tc.want || p != tc.pat {
			t.Fatalf("%s => ok=%v v=%d p=%q; want %d %q", tc.reason, ok, v, p, tc.want, tc.pat)
		}
	}
	if _, ok := tr.Match("credit_card.update"); ok {
		t.Fatal("a shorter reason must not match a deeper rule")
	}
}

func TestWildcard_ExactlyOneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("*.delete", 410))
	must(t, tr.Insert("customer.delete", 404))

	if v, ok, p := tr.MatchWithPattern("customer.delete"); !ok || v != 404 || p != "customer.delete" {
		t.Fatalf("exact must win over wildcard at the same depth, got ok=%v v=%d p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("paypal_account.delete"); !ok || v != 410 || p != "*.delete" {
		t.Fatalf("wildcard match failed: ok=%v v=%d p=%q", ok, v, p)
	}
	if _, ok := tr.Match("delete"); ok {
		t.Fatal("wildcard must not match zero segments")
	}
}

func TestMatch_PrefersDeeperWildcardPath(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("address.*.country_code", 7))
	must(t, tr.Insert("address.update", 1))

	if v, ok, p := tr.MatchWithPattern("address.update.country_code"); !ok || v != 7 || p != "address.*.country_code" {
		t.Fatalf("deeper wildcard rule must win: ok=%v v=%d p=%q", ok, v, p)
	}
}

func TestInsert_LaterValueWins(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("coinbase_account", 1))
	must(t, tr.Insert("coinbase_account", 2))
	if v, _ := tr.Match("coinbase_account.find"); v != 2 {
		t.Fatalf("v = %d, want 2", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "Customer.find", "customer..find", "*", "*.*", "customer.", "9lives"} {
		if err := tr.Insert(p, 1); err != ErrInvalidPrefix {
			t.Fatalf("Insert(%q) = %v, want ErrInvalidPrefix", p, err)
		}
	}

	must(t, tr.Insert("customer", 1))
	for _, r := range []string{"Customer.find", "", ".customer"} {
		if _, ok := tr.Match(r); ok {
			t.Fatalf("Match(%q) must fail", r)
		}
	}

	var nilTrie *Trie[int]
	if err := nilTrie.Insert("customer", 1); err != ErrInvalidPrefix {
		t.Fatal("nil trie must reject inserts")
	}
	if _, ok := nilTrie.Match("customer"); ok {
		t.Fatal("nil trie must not match")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
