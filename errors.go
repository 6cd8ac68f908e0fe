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

package paygate

import (
	"fmt"

	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/reason"
)

// Error is the normalized error surfaced by resource clients.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can
// be shared between goroutines and modified in a functional style.
type Error struct {
	// Code classifies the failure: code.Invalid for validation failures,
	// code.NotFound for unknown ids, code.Internal or code.Unknown otherwise.
	Code code.Code

	// Reason names the resource operation that failed, e.g. "customer.find".
	Reason reason.Reason

	// Message is a human-readable explanation. It is never empty on errors
	// built by this package.
	Message string

	// Fields holds the per-field validation failures, if any.
	Fields ValidationErrors

	// Details is an optional, shallow map of extra data (HTTP status, ids).
	// The map is treated as immutable: WithDetail/WithDetails copy it.
	Details map[string]any

	// Cause is the transport outcome the error was normalized from.
	Cause error
}

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// Sentinels for errors.Is. An *Error matches a sentinel when the codes
// are equal.
var (
	ErrInvalid  = &Error{Code: code.Invalid}
	ErrNotFound = &Error{Code: code.NotFound}
)

// E builds an Error and applies opts in order.
//
//	return paygate.E(code.Invalid, "amount is required",
//	    paygate.WithReasonOption(reason.Of("customer", "create")),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error formats as "<code>: <message>" or "<code>:<reason>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code. A target with
// a reason also requires the reasons to match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(code.OrUnknown(e.Code)) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() []apis.Detail {
	all := e.Fields.All()
	if len(all) == 0 {
		return nil
	}
	out := make([]apis.Detail, len(all))
	for i, fe := range all {
		out[i] = fe.Detail()
	}
	return out
}

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Code:    e.ErrorCode(),
		Reason:  string(e.Reason),
		Message: e.Message,
		Fields:  e.ErrorDetails(),
	}
}

// WithReason returns a copy of e with Reason set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithFields returns a copy of e carrying fields.
func (e *Error) WithFields(fields ValidationErrors) *Error {
	cp := *e
	cp.Fields = fields
	return &cp
}

// WithDetail returns a copy of e with one extra key/value in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a copy of e with kv merged into Details; kv wins on
// conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
