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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/mapper/internal/segmenttrie"
	"dirpx.dev/paygate/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Options are applied on top of the defaults, every reason prefix is
// normalized and validated, and all state is copied into the snapshot. An
// error means a prefix rule was malformed.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultClassify {
		b.classify[k] = v
	}
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		classify:     freeze(b.classify),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error. It suits package-level mappers
// built from constant rules.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func buildTries[V any](rules map[code.Code][]prefixRule, transport string, conv func(int) V) (map[code.Code]*segmenttrie.Trie[V], error) {
	out := make(map[code.Code]*segmenttrie.Trie[V], len(rules))
	for c, list := range rules {
		if len(list) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range list {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, r.prefix, c, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for code %q: %w", transport, p, c, err)
			}
		}
		out[c] = t
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// mapper resolves statuses by, in order: exact per-code override, longest
// reason-prefix rule for the code, per-code default, global fallback.
// It is read-only after New.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpTrie     map[code.Code]*segmenttrie.Trie[int]
	grpcTrie     map[code.Code]*segmenttrie.Trie[codes.Code]

	classify map[int]code.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus never returns 0.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Classify maps a non-2xx status from the gateway to a code. Unlisted
// statuses fall back by class: 4xx is code.Invalid, 5xx code.Internal and
// anything else code.Unknown.
func (m *mapper) Classify(status int) code.Code {
	if c, ok := m.classify[status]; ok {
		return c
	}
	switch {
	case status >= 400 && status < 500:
		return code.Invalid
	case status >= 500 && status < 600:
		return code.Internal
	}
	return code.Unknown
}

// Explain shows which tier produced each status:
//
//	code="not_found" reason="customer.delete"
//	http: source=prefix pattern="*.delete" -> 410
//	grpc: source=default -> NOTFOUND(5)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc, hpat := resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintln(&b, explainLine("http", hsrc, hpat, fmt.Sprint(hv)))

	gv, gsrc, gpat := resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintln(&b, explainLine("grpc", gsrc, gpat, fmt.Sprintf("%s(%d)", strings.ToUpper(gv.String()), int(gv))))

	return strings.TrimSuffix(b.String(), "\n")
}

func explainLine(transport, source, pattern, val string) string {
	if source == "prefix" {
		return fmt.Sprintf("%s: source=prefix pattern=%q -> %s", transport, pattern, val)
	}
	return fmt.Sprintf("%s: source=%s -> %s", transport, source, val)
}

// resolve walks the tiers for one transport and reports the value, the tier
// it came from and, for prefix rules, the matched pattern.
func resolve[V any](
	c code.Code,
	r reason.Reason,
	override map[code.Code]V,
	tries map[code.Code]*segmenttrie.Trie[V],
	defaults map[code.Code]V,
	fallback V,
) (V, string, string) {
	if v, ok := override[c]; ok {
		return v, "override", ""
	}
	if t := tries[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(string(r)); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := defaults[c]; ok {
		return v, "default", ""
	}
	return fallback, "fallback", ""
}

// normalizePrefix canonicalizes a prefix with reason.Normalize. Segment
// checks are left to segmenttrie.Insert.
func normalizePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	return p, nil
}
