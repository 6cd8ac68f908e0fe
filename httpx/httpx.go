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

// Package httpx writes paygate errors as JSON HTTP responses, for services
// that surface gateway failures to their own clients.
package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/adapter"
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/reason"
	"dirpx.dev/paygate/wire"
)

// Meta carries response context that is not part of the error itself.
type Meta struct {
	// Correlation is echoed as "correlation" and in X-Request-Id.
	Correlation       string
	RetryAfterSeconds int
}

// Writer turns errors into HTTP responses using Mapper for the status.
type Writer struct {
	Mapper apis.Mapper
}

// Write renders err as
//
//	{"code": "invalid", "reason": "customer.create", "message": "...",
//	 "fields": [{"field": "customer.email", "code": "81604", "message": "..."}]}
//
// A *paygate.Error is written through its view. Other errors, such as
// transport failures, are written with their code and message only.
// Nothing is redacted. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	var view apis.ErrorView
	var e *paygate.Error
	if errors.As(err, &e) {
		view = adapter.ToView(e)
	} else {
		view = apis.ErrorView{Code: string(paygate.CodeOf(err)), Message: err.Error()}
	}
	status := w.Mapper.HTTPStatus(paygate.CodeOf(err), reason.Reason(view.Reason))

	body := Body(view)
	if meta.Correlation != "" {
		body["correlation"] = meta.Correlation
		rw.Header().Set("X-Request-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		body["retry_after_seconds"] = meta.RetryAfterSeconds
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}

	b, encErr := wire.Encode(body)
	if encErr != nil {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// Body renders a view as a wire record. Empty reason, message and fields
// are omitted.
func Body(v apis.ErrorView) wire.Map {
	body := wire.Map{"code": v.Code}
	if v.Reason != "" {
		body["reason"] = v.Reason
	}
	if v.Message != "" {
		body["message"] = v.Message
	}
	if len(v.Fields) > 0 {
		fields := make([]any, 0, len(v.Fields))
		for _, d := range v.Fields {
			f := wire.Map{"field": d.Field, "message": d.Message}
			if d.Code != "" {
				f["code"] = d.Code
			}
			if d.Attribute != "" {
				f["attribute"] = d.Attribute
			}
			fields = append(fields, f)
		}
		body["fields"] = fields
	}
	return body
}
