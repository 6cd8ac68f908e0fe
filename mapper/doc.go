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

// Package mapper translates between paygate error codes and transport
// statuses.
//
// It serves both edges of the client:
//
//   - inbound, Classify turns an HTTP status received from the gateway into
//     a code.Code (404 -> not_found, 422 -> invalid, 503 -> unavailable);
//   - outbound, Status projects a code and an optional reason such as
//     "customer.delete" onto HTTP and gRPC, for services that re-expose
//     gateway failures to their own callers (see httpx and grpcx).
//
// # Resolution model
//
// Outbound statuses are resolved per code, in order:
//
//  1. exact override for the code;
//  2. longest reason-prefix rule for the code;
//  3. default for the code;
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware and "*" matches exactly one segment:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.NotFound, "*.delete", http.StatusGone),
//	    mapper.WithHTTPClassification(http.StatusConflict, code.Invalid),
//	)
//
// # Immutability
//
// New copies every input. A mapper is safe to share between goroutines;
// Explain renders how a status was chosen and is meant for humans only.
package mapper
