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

// ErrorDescriptor is a flat description of a failure for structured
// logging. It carries the logical classification together with the
// transport statuses the mapper resolved for it.
type ErrorDescriptor struct {
	Code       string `json:"code"`
	Reason     string `json:"reason,omitempty"`
	Resource   string `json:"resource,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code,omitempty"`
	Message    string `json:"message,omitempty"`

	// FieldCount is the number of field paths with validation failures.
	FieldCount int `json:"field_count,omitempty"`
}

// Fields returns d as a flat key/value map, ready to hand to a structured
// logger. Zero values are omitted.
func (d ErrorDescriptor) Fields() map[string]any {
	f := map[string]any{"error_code": d.Code}
	if d.Reason != "" {
		f["error_reason"] = d.Reason
	}
	if d.Resource != "" {
		f["resource"] = d.Resource
	}
	if d.HTTPStatus != 0 {
		f["http_status"] = d.HTTPStatus
	}
	if d.GRPCCode != 0 {
		f["grpc_code"] = d.GRPCCode
	}
	if d.FieldCount != 0 {
		f["field_count"] = d.FieldCount
	}
	return f
}
