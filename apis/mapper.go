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

package apis

import (
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status rules.
//
// It works in both directions: the transport uses Classify to turn a
// gateway HTTP status into a code, and the outer adapters use Status to
// project a code (and optional reason) onto HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code and reason.
	// Without a reason-specific rule it falls back to the code-level rule.
	HTTPStatus(c code.Code, r reason.Reason) int

	// GRPCStatus returns the gRPC status code for the given code and reason.
	GRPCStatus(c code.Code, r reason.Reason) codes.Code

	// Status resolves both transports with the same matching logic.
	Status(c code.Code, r reason.Reason) Status

	// Classify returns the code for a non-2xx HTTP status received from the
	// gateway.
	Classify(httpStatus int) code.Code

	// Explain returns a human-readable description of which rule matched.
	Explain(c code.Code, r reason.Reason) string
}

// Status is a resolved pair of transport statuses for one error.
type Status struct {
	HTTP int        // net/http compatible status.
	GRPC codes.Code // gRPC status code.
}
