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

// Package transporttest provides a programmable transport.Facade for tests.
package transporttest

import (
	"context"
	"errors"
	"sync"

	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// ErrNoResponse is wrapped in the Failure returned for unregistered calls.
var ErrNoResponse = errors.New("transporttest: no response registered")

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Body   wire.Map
}

type response struct {
	body wire.Map
	err  error
}

// Stub answers each (method, path) with a fixed response and records every
// call. It is safe for concurrent use.
type Stub struct {
	mu        sync.Mutex
	responses map[string]response
	calls     []Call
}

var _ transport.Facade = (*Stub)(nil)

// New returns an empty Stub. Unregistered calls fail with a
// transport.Failure wrapping ErrNoResponse.
func New() *Stub {
	return &Stub{responses: make(map[string]response)}
}

// Reply registers a successful body for method and path.
func (s *Stub) Reply(method, path string, body wire.Map) *Stub {
	return s.set(method, path, response{body: body})
}

// Fail registers err as the outcome for method and path.
func (s *Stub) Fail(method, path string, err error) *Stub {
	return s.set(method, path, response{err: err})
}

// NotFound registers a transport.NotFoundError for method and path.
func (s *Stub) NotFound(method, path string) *Stub {
	return s.Fail(method, path, &transport.NotFoundError{Method: method, Path: path})
}

// Reject registers a transport.APIError carrying body for method and path.
func (s *Stub) Reject(method, path string, status int, body wire.Map) *Stub {
	return s.Fail(method, path, &transport.APIError{
		Method: method,
		Path:   path,
		Status: status,
		Code:   code.Invalid,
		Body:   body,
	})
}

// Calls returns a copy of the recorded calls, in order.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Stub) Get(ctx context.Context, path string) (wire.Map, error) {
	return s.do(ctx, transport.MethodGet, path, nil)
}

func (s *Stub) Post(ctx context.Context, path string, body wire.Map) (wire.Map, error) {
	return s.do(ctx, transport.MethodPost, path, body)
}

func (s *Stub) Put(ctx context.Context, path string, body wire.Map) (wire.Map, error) {
	return s.do(ctx, transport.MethodPut, path, body)
}

func (s *Stub) Delete(ctx context.Context, path string) (wire.Map, error) {
	return s.do(ctx, transport.MethodDelete, path, nil)
}

func (s *Stub) set(method, path string, r response) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = r
	return s
}

func (s *Stub) do(ctx context.Context, method, path string, body wire.Map) (wire.Map, error) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: method, Path: path, Body: body.Clone()})
	r, ok := s.responses[method+" "+path]
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, transport.NewFailure(method, path, err)
	}
	if !ok {
		return nil, &transport.Failure{Method: method, Path: path, Code: code.Internal, Err: ErrNoResponse}
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.body == nil {
		return wire.Map{}, nil
	}
	return r.body.Clone(), nil
}
