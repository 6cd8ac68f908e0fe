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

// Package code defines the error classes that every paygate failure is
// reported under.
//
// A code answers "what kind of failure was this?" for a caller of a
// resource client: the gateway rejected the input ("invalid"), the id did
// not resolve ("not_found"), or the request never produced a usable answer
// ("unavailable", "timeout", "malformed", ...). Codes are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - safe to put into JSON bodies, gRPC error metadata and log fields.
//
// Empty codes ("") are never attached to an error.
package code
