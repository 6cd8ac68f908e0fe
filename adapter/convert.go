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

package adapter

import (
	"errors"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/reason"
)

// ToDescriptor converts a normalized error together with its resolved
// status into a flat ErrorDescriptor for structured logging.
func ToDescriptor(e *paygate.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       e.ErrorCode(),
		Reason:     string(e.Reason),
		Resource:   e.Reason.Resource(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
		FieldCount: len(e.Fields.Paths()),
	}
}

// Describe builds a descriptor for any error a resource client returns.
// Normalized errors go through ToDescriptor; other errors, such as
// transport failures, are described by the code they carry. A nil mapper
// leaves the statuses unset.
func Describe(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	var e *paygate.Error
	if errors.As(err, &e) {
		return ToDescriptor(e, resolve(m, e.Code, e.Reason))
	}
	c := paygate.CodeOf(err)
	st := resolve(m, c, reason.Empty)
	return apis.ErrorDescriptor{
		Code:       string(c),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    err.Error(),
	}
}

// ToView converts a normalized error into its public ErrorView. Nothing is
// redacted: the view carries exactly what the error holds.
func ToView(e *paygate.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return e.ErrorView()
}

func resolve(m apis.Mapper, c code.Code, r reason.Reason) apis.Status {
	if m == nil {
		return apis.Status{}
	}
	return m.Status(c, r)
}
