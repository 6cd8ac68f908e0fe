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

	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/transport"
)

// CodeOf returns the code carried by err or by any error in its chain that
// implements apis.CodedError. It returns code.Empty for nil and
// code.Unknown when no error in the chain carries a valid code.
func CodeOf(err error) code.Code {
	if err == nil {
		return code.Empty
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		if c, perr := code.Parse(ce.ErrorCode()); perr == nil {
			return c
		}
	}
	return code.Unknown
}

// IsNotFound reports whether err means the addressed resource does not
// exist.
func IsNotFound(err error) bool {
	return CodeOf(err) == code.NotFound
}

// IsValidation reports whether err is a gateway rejection of the submitted
// params.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code.Invalid
}

// IsTransport reports whether err is a transport failure passed through by
// a resource client.
func IsTransport(err error) bool {
	var f *transport.Failure
	return errors.As(err, &f)
}

// ValidationErrorsOf returns the field failures carried by err, if any.
func ValidationErrorsOf(err error) ValidationErrors {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return ValidationErrors{}
}
