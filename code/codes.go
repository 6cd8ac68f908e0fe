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

package code

// Remote rejections
//
// The gateway answered, and the answer was "no".
const (
	// Invalid means the gateway rejected the submitted params. The error
	// carries per-field validation failures. Maps to HTTP 422/400.
	Invalid Code = "invalid"

	// NotFound means the id or token does not resolve to a remote
	// resource. Resource clients report it as "<resource> id is invalid".
	NotFound Code = "not_found"

	// Unauthenticated means the credentials were missing or rejected (401).
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the credentials are valid but not allowed to
	// perform the operation (403).
	PermissionDenied Code = "permission_denied"

	// UpgradeRequired means the gateway no longer accepts this client's API
	// version (426).
	UpgradeRequired Code = "upgrade_required"

	// RateLimited means the merchant exceeded the request rate (429).
	RateLimited Code = "rate_limited"
)

// Transport failures
//
// The request did not produce an answer the client can interpret. These
// are surfaced unchanged to the caller, which owns any retry policy.
const (
	// Unavailable covers connection failures and 5xx responses that signal
	// the gateway is down or in maintenance (502, 503).
	Unavailable Code = "unavailable"

	// Timeout means the request ran out of time, either on the client
	// deadline or on a 504 from the gateway.
	Timeout Code = "timeout"

	// Canceled means the caller's context was canceled mid-request.
	Canceled Code = "canceled"

	// Malformed means the gateway answered with a body that could not be
	// decoded into a key/value record.
	Malformed Code = "malformed"
)

// Fallbacks
const (
	// Internal is a gateway-side 500, or a local failure that fits no
	// other class.
	Internal Code = "internal"

	// Unknown is used when an error payload could not be interpreted at all.
	Unknown Code = "unknown"
)

// IsTransport reports whether c is one of the transport failure codes.
func IsTransport(c Code) bool {
	switch c {
	case Unavailable, Timeout, Canceled, Malformed:
		return true
	}
	return false
}
