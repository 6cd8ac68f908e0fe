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

// Package reason provides the optional, more specific marker attached to
// a paygate error next to its code.
//
// Where the code says what kind of failure happened, the reason says where:
// which resource and which operation produced it. Reasons are dot-separated
// lowercase segments, for example:
//
//	customer.find
//	credit_card.update
//	address.delete
//	transport.decode
//
// The status mapper matches reasons by segment-aware prefix, so a rule for
// "customer" applies to every customer operation while "customer.delete"
// narrows it to one.
package reason
