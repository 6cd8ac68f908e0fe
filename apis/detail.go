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

// Detail is one validation failure in transport-friendly form.
type Detail struct {
	// Field is the dotted path of the failing field, e.g.
	// "customer.credit_card.number". Empty for failures on the resource
	// as a whole.
	Field string `json:"field,omitempty"`

	// Code is the gateway's failure code, e.g. "81805". Gateways use
	// numeric strings, so this is deliberately not a code.Code.
	Code string `json:"code,omitempty"`

	// Attribute is the attribute name as the gateway reported it.
	Attribute string `json:"attribute,omitempty"`

	// Message is the gateway's human-readable explanation.
	Message string `json:"message,omitempty"`
}
