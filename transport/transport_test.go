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

package transport

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/paygate/code"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestOutcome(t *testing.T) {
	assert.Equal(t, KindOK, Outcome(nil))
	assert.Equal(t, KindAPIError, Outcome(&APIError{Status: 422}))
	assert.Equal(t, KindNotFound, Outcome(&NotFoundError{Path: "customers/x"}))
	assert.Equal(t, KindFailure, Outcome(&Failure{Code: code.Timeout}))
	assert.Equal(t, KindFailure, Outcome(errors.New("boom")))
	assert.Equal(t, KindNotFound, Outcome(fmt.Errorf("wrapped: %w", &NotFoundError{})))
}

func TestClassifyErr(t *testing.T) {
	assert.Equal(t, code.Timeout, ClassifyErr(context.DeadlineExceeded))
	assert.Equal(t, code.Canceled, ClassifyErr(fmt.Errorf("get: %w", context.Canceled)))
	assert.Equal(t, code.Timeout, ClassifyErr(timeoutErr{}))
	assert.Equal(t, code.Unavailable, ClassifyErr(errors.New("connection refused")))
	assert.Equal(t, code.Empty, ClassifyErr(nil))
}

func TestFailure_ErrorAndUnwrap(t *testing.T) {
	root := errors.New("dial tcp: connection refused")
	f := NewFailure(MethodGet, "customers/1", root)

	assert.Equal(t, code.Unavailable, f.Code)
	assert.ErrorIs(t, f, root)
	assert.Contains(t, f.Error(), "GET customers/1")
	assert.Contains(t, f.Error(), "unavailable")
	assert.Equal(t, "unavailable", f.ErrorCode())

	withStatus := &Failure{Method: MethodPost, Path: "customers", Code: code.Internal, Status: 500}
	assert.Contains(t, withStatus.Error(), "(500)")
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "not_found", (&NotFoundError{}).ErrorCode())
	assert.Equal(t, "invalid", (&APIError{Code: code.Invalid}).ErrorCode())
	assert.Equal(t, "unknown", (&APIError{}).ErrorCode())
	assert.Equal(t, "api_error", KindAPIError.String())
}
