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

// CodedError is an error classified under a code from the code package,
// e.g. "invalid", "not_found" or "timeout".
//
// Both the normalized paygate error and the transport failure implement
// it, which lets callers classify any failure a resource client returns
// without a type switch.
type CodedError interface {
	error

	// ErrorCode returns the canonical code. Adapters treat an empty or
	// non-canonical value as "unknown".
	ErrorCode() string
}

// ReasonedError is an error that also says where it happened, as a
// "<resource>.<operation>" reason.
type ReasonedError interface {
	error

	// ErrorReason returns the reason. It MAY be empty.
	ErrorReason() string
}

// DetailedError exposes the per-field validation failures behind an error.
// The returned slice is a copy the caller may keep; nil means no details.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}
