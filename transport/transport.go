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

// Package transport defines the boundary between resource clients and the
// network.
//
// A Facade exposes the four verbs the clients need. Every call ends in
// exactly one of four outcomes:
//
//   - a decoded body and a nil error;
//   - *APIError: the gateway rejected the request and explained why;
//   - *NotFoundError: the addressed resource does not exist;
//   - *Failure: no interpretable answer (connection, timeout, bad body).
//
// Implementations must not return any other error type. Resource clients
// resolve the variants with a type switch, never by inspecting bodies.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/wire"
)

// Facade is the abstract network-call boundary. Paths are relative to the
// merchant root, e.g. "customers" or "customers/123".
type Facade interface {
	Get(ctx context.Context, path string) (wire.Map, error)
	Post(ctx context.Context, path string, body wire.Map) (wire.Map, error)
	Put(ctx context.Context, path string, body wire.Map) (wire.Map, error)
	Delete(ctx context.Context, path string) (wire.Map, error)
}

// APIError is a rejection from the gateway: a 4xx response other than
// 404, usually carrying an error body.
type APIError struct {
	Method string
	Path   string
	Status int
	// Code is the classification of Status.
	Code code.Code
	// Body is the decoded error payload. It is empty when the response
	// body was not a JSON object.
	Body wire.Map
	// Raw is the response body as received, when the transport has it.
	// Its key order is the order the gateway declared failures in.
	Raw []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paygate: %s %s: gateway rejected request (%d)", e.Method, e.Path, e.Status)
}

// ErrorCode implements apis.CodedError.
func (e *APIError) ErrorCode() string { return string(code.OrUnknown(e.Code)) }

// NotFoundError reports that the addressed resource does not exist.
type NotFoundError struct {
	Method string
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("paygate: %s %s: not found", e.Method, e.Path)
}

// ErrorCode implements apis.CodedError.
func (e *NotFoundError) ErrorCode() string { return string(code.NotFound) }

// Failure is a network or protocol level failure. It is passed to callers
// unchanged; whether to retry is their decision.
type Failure struct {
	Method string
	Path   string
	Code   code.Code
	// Status is the HTTP status, or 0 when no response was received.
	Status int
	Err    error
}

func (e *Failure) Error() string {
	msg := fmt.Sprintf("paygate: %s %s: %s", e.Method, e.Path, code.OrUnknown(e.Code))
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Failure) Unwrap() error { return e.Err }

// ErrorCode implements apis.CodedError.
func (e *Failure) ErrorCode() string { return string(code.OrUnknown(e.Code)) }

// Kind enumerates the call outcomes.
type Kind int

const (
	KindOK Kind = iota
	KindAPIError
	KindNotFound
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindAPIError:
		return "api_error"
	case KindNotFound:
		return "not_found"
	default:
		return "failure"
	}
}

// Outcome reports which variant err is. Errors outside the contract count
// as failures.
func Outcome(err error) Kind {
	if err == nil {
		return KindOK
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindAPIError
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return KindNotFound
	}
	return KindFailure
}

// NewFailure wraps err, which was produced while sending a request, into a
// Failure classified by ClassifyErr.
func NewFailure(method, path string, err error) *Failure {
	return &Failure{Method: method, Path: path, Code: ClassifyErr(err), Err: err}
}

// ClassifyErr picks the code for a client-side error: context expiry and
// network timeouts become Timeout, cancellation becomes Canceled and
// everything else Unavailable.
func ClassifyErr(err error) code.Code {
	switch {
	case err == nil:
		return code.Empty
	case errors.Is(err, context.DeadlineExceeded):
		return code.Timeout
	case errors.Is(err, context.Canceled):
		return code.Canceled
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return code.Timeout
	}
	return code.Unavailable
}

// Methods used by Facade implementations, re-exported for logging and
// stubs.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodDelete = http.MethodDelete
)
