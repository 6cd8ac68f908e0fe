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

package mapper

import (
	"net/http"

	"dirpx.dev/paygate/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP projects codes onto HTTP for services that re-expose gateway
// failures to their own callers.
var defaultHTTP = map[code.Code]int{
	code.Invalid:          http.StatusUnprocessableEntity,
	code.NotFound:         http.StatusNotFound,
	code.Unauthenticated:  http.StatusUnauthorized,
	code.PermissionDenied: http.StatusForbidden,
	code.UpgradeRequired:  http.StatusUpgradeRequired,
	code.RateLimited:      http.StatusTooManyRequests,

	// The gateway, not the caller, failed: report it as an upstream problem.
	code.Unavailable: http.StatusServiceUnavailable,
	code.Timeout:     http.StatusGatewayTimeout,
	code.Malformed:   http.StatusBadGateway,
	// 499 is nginx's "client closed request".
	code.Canceled: 499,

	code.Internal: http.StatusInternalServerError,
	code.Unknown:  http.StatusInternalServerError,
}

// defaultGRPC is the gRPC counterpart of defaultHTTP.
var defaultGRPC = map[code.Code]codes.Code{
	code.Invalid:          codes.InvalidArgument,
	code.NotFound:         codes.NotFound,
	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,
	code.UpgradeRequired:  codes.FailedPrecondition,
	code.RateLimited:      codes.ResourceExhausted,

	code.Unavailable: codes.Unavailable,
	code.Timeout:     codes.DeadlineExceeded,
	code.Malformed:   codes.DataLoss,
	code.Canceled:    codes.Canceled,

	code.Internal: codes.Internal,
	code.Unknown:  codes.Unknown,
}

// defaultClassify turns statuses received from the gateway into codes.
// Statuses not listed fall back by class, see mapper.Classify.
var defaultClassify = map[int]code.Code{
	http.StatusBadRequest:          code.Invalid,
	http.StatusUnauthorized:        code.Unauthenticated,
	http.StatusForbidden:           code.PermissionDenied,
	http.StatusNotFound:            code.NotFound,
	http.StatusRequestTimeout:      code.Timeout,
	http.StatusUnprocessableEntity: code.Invalid,
	http.StatusUpgradeRequired:     code.UpgradeRequired,
	http.StatusTooManyRequests:     code.RateLimited,

	http.StatusInternalServerError: code.Internal,
	http.StatusBadGateway:          code.Unavailable,
	http.StatusServiceUnavailable:  code.Unavailable,
	http.StatusGatewayTimeout:      code.Timeout,
}
