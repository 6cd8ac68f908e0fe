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

import (
	"math/rand"
	"testing"
)

var (
	benchResources = []string{"customer", "credit_card", "paypal_account", "coinbase_account", "address"}
	benchOps       = []string{"create", "find", "update", "delete"}
)

// benchTrie holds one rule per resource plus a rule per resource/operation
// for every other resource, and a wildcard rule per operation.
func benchTrie(b *testing.B) *Trie[int] {
	tr := New[int]()
	for i, res := range benchResources {
		if err := tr.Insert(res, 400+i); err != nil {
			b.Fatal(err)
		}
		if i%2 != 0 {
			continue
		}
		for j, op := range benchOps {
			if err := tr.Insert(res+"."+op, 500+j); err != nil {
				b.Fatal(err)
			}
		}
	}
	for j, op := range benchOps {
		if err := tr.Insert("*."+op+".retry", 600+j); err != nil {
			b.Fatal(err)
		}
	}
	return tr
}

func benchReasons() []string {
	var out []string
	for _, res := range benchResources {
		for _, op := range benchOps {
			out = append(out, res+"."+op, res+"."+op+".retry", "unknown."+op)
		}
	}
	return out
}

func BenchmarkTrieInsert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = benchTrie(b)
	}
}

func BenchmarkTrieMatch(b *testing.B) {
	tr, reasons := benchTrie(b), benchReasons()
	b.ReportAllocs()
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		if v, ok := tr.Match(reasons[i%len(reasons)]); ok {
			sum += v
		}
	}
	if sum == 42 {
		b.Log("keep")
	}
}

func BenchmarkTrieMatchParallel(b *testing.B) {
	tr, reasons := benchTrie(b), benchReasons()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewSource(1))
		for pb.Next() {
			_, _ = tr.Match(reasons[rng.Intn(len(reasons))])
		}
	})
}
