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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/fieldpath"
	"dirpx.dev/paygate/reason"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// UnknownMessage is used when no message can be recovered from a failure.
const UnknownMessage = "unknown error"

// envelopeKey wraps error bodies on the gateway's XML-derived JSON API.
const envelopeKey = "api_error_response"

// Normalize maps the outcome of a transport call made by a resource
// client onto the error model. resource is the human name used in messages
// ("customer", "credit card"), op the operation ("find").
//
//   - *transport.APIError becomes a validation *Error, coded by the
//     response status when the body names no failing field;
//   - *transport.NotFoundError becomes NotFound(resource, op);
//   - *transport.Failure is returned unchanged;
//   - an *Error is returned unchanged;
//   - a nil *Error, *transport.APIError or *transport.Failure is nil;
//   - anything else becomes a code.Internal *Error wrapping it.
func Normalize(resource, op string, err error) error {
	if err == nil {
		return nil
	}
	r := reason.Of(resource, op)
	switch e := err.(type) {
	case *transport.APIError:
		if e == nil {
			return nil
		}
		out := normalizeAPIError(e)
		if out.Fields.Empty() && code.Validate(e.Code) == nil {
			out.Code = e.Code
		}
		return out.
			WithReason(r).
			WithDetail("http_status", e.Status).
			WithCause(e)
	case *transport.NotFoundError:
		return NotFound(resource, op).WithCause(e)
	case *transport.Failure:
		if e == nil {
			return nil
		}
		return e
	case *Error:
		if e == nil {
			return nil
		}
		return e
	default:
		var f *transport.Failure
		if errors.As(err, &f) {
			return err
		}
		return E(code.Internal, messageOf(err),
			WithReasonOption(r),
			WithCauseOption(err),
		)
	}
}

// normalizeAPIError prefers the raw body, which keeps declaration order,
// and falls back to the decoded one. A body that is not JSON at all is
// described by the status text.
func normalizeAPIError(e *transport.APIError) *Error {
	if len(e.Raw) > 0 {
		if obj, err := wire.DecodeObject(e.Raw); err == nil {
			return normalizeObject(obj)
		}
		if len(e.Body) == 0 {
			return NormalizeMessage(e.Code, http.StatusText(e.Status))
		}
	}
	return NormalizePayload(e.Body)
}

// NotFound is the error for an id that does not resolve to a remote
// resource: code.NotFound with the message "<resource> id is invalid".
func NotFound(resource, op string) *Error {
	name := strings.TrimSpace(resource)
	if name == "" {
		name = "resource"
	}
	return E(code.NotFound, fmt.Sprintf("%s id is invalid", name),
		WithReasonOption(reason.Of(resource, op)),
	)
}

// NormalizeMessage builds an Error from a locally synthesized message. An
// empty message becomes UnknownMessage and a non-canonical code becomes
// code.Unknown.
func NormalizeMessage(c code.Code, msg string) *Error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = UnknownMessage
	}
	return E(code.OrUnknown(c), msg)
}

// NormalizePayload builds an Error from a wire error body. It accepts the
// body with or without the "api_error_response" envelope and the three
// shapes gateways use for field failures:
//
//	{"errors": {"customer": {"errors": [{"attribute": "email", "code": "81604", "message": "..."}],
//	                         "credit_card": {"errors": [...]}}}}
//	{"errors": [{"field": "customer.email", "code": "81604", "message": "..."}]}
//	{"errors": {"customer/email": [{"code": "81604", "message": "..."}]}}
//
// The message is the top-level "message", else the first failure's
// message, else UnknownMessage. A body with neither yields code.Unknown.
// Malformed parts are skipped; NormalizePayload never panics.
func NormalizePayload(m wire.Map) *Error {
	return normalizeObject(wire.ObjectOf(m))
}

// NormalizeJSON is NormalizePayload over a raw JSON body. Failures keep the
// order in which the body declares them; NormalizePayload can only visit
// sibling keys in sorted order. A body that does not decode yields
// code.Unknown.
func NormalizeJSON(b []byte) *Error {
	obj, err := wire.DecodeObject(b)
	if err != nil {
		return E(code.Unknown, UnknownMessage)
	}
	return normalizeObject(obj)
}

func normalizeObject(m wire.Object) *Error {
	body := m
	if env, ok := m.Object(envelopeKey); ok {
		body = env
	}

	var fields ValidationErrors
	if v, ok := body.Lookup("errors"); ok {
		flattenValue(fieldpath.Empty, v, &fields)
	}

	msg := ""
	if s := body.String("message"); s != nil {
		msg = strings.TrimSpace(*s)
	}
	if msg == "" && fields.Empty() {
		return E(code.Unknown, UnknownMessage)
	}
	if msg == "" {
		for _, fe := range fields.All() {
			if fe.Message != "" {
				msg = fe.Message
				break
			}
		}
	}
	if msg == "" {
		msg = UnknownMessage
	}
	return E(code.Invalid, msg, WithFieldsOption(fields))
}

// flattenValue walks v, the value found under an "errors" key (or below
// one) at path prefix.
func flattenValue(prefix fieldpath.Path, v any, out *ValidationErrors) {
	if list, ok := wire.AsList(v); ok {
		addFailures(prefix, list, false, out)
		return
	}
	level, ok := wire.AsObject(v)
	if !ok {
		return
	}
	// A level's own failures come before its nested levels.
	if own, ok := level.Lookup("errors"); ok {
		if list, ok := wire.AsList(own); ok {
			addFailures(prefix, list, false, out)
		}
	}
	for _, k := range level.Keys() {
		if wire.Canonical(k) == "errors" {
			continue
		}
		x, _ := level.Get(k)
		if list, ok := wire.AsList(x); ok {
			// Flat form: the key is the path of the failing field.
			addFailures(prefix.Child(k), list, true, out)
			continue
		}
		if sub, ok := wire.AsObject(x); ok {
			flattenValue(prefix.Child(k), sub, out)
		}
	}
}

// addFailures appends the failure records in list. With keyed set, the
// path is final; otherwise each record's "field" or "attribute" extends
// prefix.
func addFailures(prefix fieldpath.Path, list []any, keyed bool, out *ValidationErrors) {
	for _, el := range list {
		if s, ok := el.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out.add(FieldError{Path: prefix, Message: s})
			}
			continue
		}
		rec, ok := wire.AsObject(el)
		if !ok {
			continue
		}
		fe := FieldError{
			Attribute: deref(rec.String("attribute")),
			Code:      deref(rec.String("code")),
			Message:   strings.TrimSpace(deref(rec.String("message"))),
		}
		if fe.Code == "" && fe.Message == "" {
			continue
		}
		switch field := deref(rec.String("field")); {
		case keyed:
			fe.Path = prefix
		case field != "":
			fe.Path = fieldpath.Join(string(prefix), field)
		case fe.Attribute != "":
			fe.Path = prefix.Child(fe.Attribute)
		default:
			fe.Path = prefix
		}
		out.add(fe)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func messageOf(err error) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnknownMessage
}
