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

package naming

import "testing"

func TestSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"first_name", "first_name"},
		{"firstName", "first_name"},
		{"FirstName", "first_name"},
		{"First-Name", "first_name"},
		{"first name", "first_name"},
		{"HTTPStatus", "http_status"},
		{"customFields", "custom_fields"},
		{"last_4", "last_4"},
		{"countryCodeAlpha2", "country_code_alpha2"},
		{"  id  ", "id"},
		{"ID", "id"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Snake(tt.in); got != tt.want {
			t.Fatalf("Snake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
