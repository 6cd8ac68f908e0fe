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

package paygate

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/paygate/apis"
)

// ClientSettings holds the collaborators shared by resource clients.
type ClientSettings struct {
	Log    *logrus.Entry
	Mapper apis.Mapper
}

// ClientOption configures a resource client.
type ClientOption func(*ClientSettings)

// WithLogger sets the entry clients log through. The default is the logrus
// standard logger.
func WithLogger(l *logrus.Entry) ClientOption {
	return func(s *ClientSettings) { s.Log = l }
}

// WithMapper sets the mapper used to add HTTP and gRPC statuses to failure
// log fields.
func WithMapper(m apis.Mapper) ClientOption {
	return func(s *ClientSettings) { s.Mapper = m }
}

// ApplyClientOptions folds opts into ClientSettings. Nil options are
// skipped.
func ApplyClientOptions(opts ...ClientOption) ClientSettings {
	var s ClientSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.Log == nil {
		s.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return s
}
