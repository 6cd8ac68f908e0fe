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

// Package crud implements the create/find/update/delete exchange shared by
// every resource client.
package crud

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/adapter"
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// Operation names, used in reasons and log fields.
const (
	OpCreate = "create"
	OpFind   = "find"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Endpoint performs the four exchanges for one resource type. T is the
// typed resource; Construct builds it from the response record.
//
// Every failure goes through paygate.Normalize, so callers see a
// *paygate.Error or, for transport failures, the *transport.Failure as-is.
type Endpoint[T any] struct {
	// Resource is the name used in messages, e.g. "credit card".
	Resource string
	// Key wraps request params and locates the resource in responses,
	// e.g. "credit_card".
	Key string

	Construct func(wire.Map) T
	Facade    transport.Facade

	// Log defaults to the logrus standard logger.
	Log *logrus.Entry
	// Mapper, when set, adds statuses to failure log fields.
	Mapper apis.Mapper
}

// New returns an endpoint for one resource type.
func New[T any](resource, key string, construct func(wire.Map) T, f transport.Facade, opts ...paygate.ClientOption) *Endpoint[T] {
	s := paygate.ApplyClientOptions(opts...)
	return &Endpoint[T]{
		Resource:  resource,
		Key:       key,
		Construct: construct,
		Facade:    f,
		Log:       s.Log,
		Mapper:    s.Mapper,
	}
}

// Join escapes and joins path segments. It reports false when any segment
// is blank, which for an id means the lookup cannot succeed.
func Join(segs ...string) (string, bool) {
	parts := make([]string, len(segs))
	for i, s := range segs {
		if strings.TrimSpace(s) == "" {
			return "", false
		}
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/"), true
}

// Create posts params, wrapped under Key, to the collection at segs.
func (e *Endpoint[T]) Create(ctx context.Context, params wire.Map, segs ...string) (T, error) {
	return e.write(ctx, OpCreate, params, segs)
}

// Find fetches the resource at segs.
func (e *Endpoint[T]) Find(ctx context.Context, segs ...string) (T, error) {
	var zero T
	path, ok := Join(segs...)
	if !ok {
		return zero, e.notFound(OpFind, segs)
	}
	body, err := e.Facade.Get(ctx, path)
	if err != nil {
		return zero, e.fail(OpFind, path, err)
	}
	return e.build(OpFind, path, body), nil
}

// Update puts params, wrapped under Key, to the resource at segs.
func (e *Endpoint[T]) Update(ctx context.Context, params wire.Map, segs ...string) (T, error) {
	return e.write(ctx, OpUpdate, params, segs)
}

// Delete removes the resource at segs. The response body is ignored.
func (e *Endpoint[T]) Delete(ctx context.Context, segs ...string) error {
	path, ok := Join(segs...)
	if !ok {
		return e.notFound(OpDelete, segs)
	}
	if _, err := e.Facade.Delete(ctx, path); err != nil {
		return e.fail(OpDelete, path, err)
	}
	e.log().WithFields(logrus.Fields{"resource": e.Resource, "op": OpDelete, "path": path}).Debug("paygate: ok")
	return nil
}

func (e *Endpoint[T]) write(ctx context.Context, op string, params wire.Map, segs []string) (T, error) {
	var zero T
	path, ok := Join(segs...)
	if !ok {
		return zero, e.notFound(op, segs)
	}
	req := wire.Map{e.Key: paramsOrEmpty(params)}

	var body wire.Map
	var err error
	if op == OpCreate {
		body, err = e.Facade.Post(ctx, path, req)
	} else {
		body, err = e.Facade.Put(ctx, path, req)
	}
	if err != nil {
		return zero, e.fail(op, path, err)
	}
	return e.build(op, path, body), nil
}

// build reads the resource from body[Key], or from body itself when the key
// is missing.
func (e *Endpoint[T]) build(op, path string, body wire.Map) T {
	rec := body.Map(e.Key)
	if rec == nil {
		rec = body
	}
	e.log().WithFields(logrus.Fields{"resource": e.Resource, "op": op, "path": path}).Debug("paygate: ok")
	return e.Construct(rec)
}

func (e *Endpoint[T]) fail(op, path string, err error) error {
	out := paygate.Normalize(e.Resource, op, err)
	fields := logrus.Fields(adapter.Describe(out, e.Mapper).Fields())
	fields["op"] = op
	fields["path"] = path
	e.log().WithFields(fields).Debug("paygate: request failed")
	return out
}

func (e *Endpoint[T]) notFound(op string, segs []string) error {
	out := paygate.NotFound(e.Resource, op)
	e.log().WithFields(logrus.Fields{
		"resource": e.Resource,
		"op":       op,
		"segments": segs,
	}).Debug("paygate: blank id, request not sent")
	return out
}

func (e *Endpoint[T]) log() *logrus.Entry {
	if e.Log != nil {
		return e.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func paramsOrEmpty(params wire.Map) wire.Map {
	if params == nil {
		return wire.Map{}
	}
	return params
}
