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

package construct

import "dirpx.dev/paygate/wire"

// Pass is a resource-specific construction step. It runs after Build and
// replaces selected fields of v, typically nested collections, with typed
// values built from r.
type Pass[T any] func(v *T, r Record)

// Constructor composes the generic pass (Schema.Hydrate), the base build
// and the resource's own passes into Construct.
type Constructor[T any] struct {
	Schema *Schema
	// Build maps the hydrated record onto T's scalar and mapping fields.
	Build func(Record) T
	// Passes run in order after Build.
	Passes []Pass[T]
}

// Then returns a copy of c with p appended to its passes.
func (c Constructor[T]) Then(p Pass[T]) Constructor[T] {
	passes := make([]Pass[T], len(c.Passes), len(c.Passes)+1)
	copy(passes, c.Passes)
	c.Passes = append(passes, p)
	return c
}

// Construct hydrates m and builds a T from it. It never fails.
func (c Constructor[T]) Construct(m wire.Map) T {
	return c.FromRecord(c.Schema.Hydrate(m))
}

// FromRecord builds a T from an already hydrated record. Parent resources
// use it to build their nested collections.
func (c Constructor[T]) FromRecord(r Record) T {
	v := c.Build(r)
	for _, p := range c.Passes {
		p(&v, r)
	}
	return v
}

// Each builds a T from every record, keeping order. The result is never
// nil.
func Each[T any](records []Record, build func(Record) T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, build(r))
	}
	return out
}

// One builds a *T from a Nested field, or returns nil when it is absent.
func One[T any](r Record, name string, build func(Record) T) *T {
	sub, ok := r.Nested(name)
	if !ok {
		return nil
	}
	v := build(sub)
	return &v
}
