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

// Package paygate is the error model shared by every paygate resource
// client.
//
// Whatever goes wrong on a create, find, update or delete, the caller sees
// one of two things:
//
//   - a *Error: the gateway rejected the request (Code "invalid", with
//     per-field failures in Fields) or the id did not resolve (Code
//     "not_found", message "<resource> id is invalid");
//   - a *transport.Failure: the request produced no interpretable answer.
//     It is passed through untouched so callers can apply their own retry
//     policy.
//
// Both implement apis.CodedError, so CodeOf, IsNotFound, IsValidation and
// IsTransport classify any returned error.
//
// Clients are usually obtained from package gateway, which builds the REST
// transport from a config.Config and hands it to every resource client.
package paygate
