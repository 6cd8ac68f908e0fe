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

// Package segmenttrie indexes dotted reason prefixes such as "customer" or
// "*.delete" for longest-prefix lookups.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned by Insert for an empty prefix, an empty or
// malformed segment, or a prefix made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps reason prefixes to values. One node per segment; the deepest
// node carrying a value along the reason wins. It is not safe to Insert
// concurrently with lookups; the mapper builds tries once and only reads
// them afterwards.
type Trie[T any] struct {
	children map[string]*Trie[T]
	rule     *rule[T]
}

type rule[T any] struct {
	val     T
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, e.g. "credit_card.update" or
// "*.delete". Inserting the same prefix twice keeps the later value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitPrefix(prefix)
	if !ok {
		return ErrInvalidPrefix
	}
	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.rule = &rule[T]{val: val, pattern: prefix}
	return nil
}

// Match returns the value of the longest prefix matching reason.
func (t *Trie[T]) Match(reason string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(reason)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it was
// inserted. A malformed segment ends the walk along that branch.
func (t *Trie[T]) MatchWithPattern(reason string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	var (
		best      *rule[T]
		bestDepth = -1
	)
	var walk func(n *Trie[T], rest string, depth int)
	walk = func(n *Trie[T], rest string, depth int) {
		if n.rule != nil && depth > bestDepth {
			best, bestDepth = n.rule, depth
		}
		seg, tail, ok := nextSegment(rest)
		if !ok {
			return
		}
		if next, ok := n.children[seg]; ok {
			walk(next, tail, depth+1)
		}
		if next, ok := n.children[Wildcard]; ok {
			walk(next, tail, depth+1)
		}
	}
	walk(t, reason, 0)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// nextSegment splits the leading segment off s without allocating. It
// reports false at the end of s or when the segment is malformed.
func nextSegment(s string) (seg, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	i := strings.IndexByte(s, '.')
	if i < 0 {
		seg, rest = s, ""
	} else {
		seg, rest = s[:i], s[i+1:]
	}
	if !validSegment(seg) {
		return "", "", false
	}
	return seg, rest, true
}

func splitPrefix(prefix string) ([]string, bool) {
	if prefix == "" {
		return nil, false
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, seg := range segs {
		if seg == Wildcard {
			continue
		}
		if !validSegment(seg) {
			return nil, false
		}
		concrete = true
	}
	return segs, concrete
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
