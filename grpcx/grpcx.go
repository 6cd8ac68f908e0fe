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

// Package grpcx projects paygate errors onto gRPC statuses, with the code,
// reason and field failures carried as standard error details.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/fieldpath"
	"dirpx.dev/paygate/reason"
)

// Domain is the ErrorInfo domain attached to every status.
const Domain = "paygate"

// Metadata keys of the ErrorInfo detail.
const (
	MetaReason      = "reason"
	MetaHTTPStatus  = "http_status"
	MetaCorrelation = "correlation"

	// MetaAttributePrefix keys the gateway attribute of field violation i
	// as MetaAttributePrefix+i. BadRequest has no slot for it.
	MetaAttributePrefix = "attribute."
)

// Extras carries request context to attach to the status.
type Extras struct {
	CorrelationID string
}

// MetaFn extracts Extras from the request context and the failing error.
type MetaFn func(ctx context.Context, err error) Extras

// ToStatus converts err into a gRPC status resolved through m.
//
// A *paygate.Error carries an ErrorInfo (code as Reason, paygate reason,
// HTTP status and field attributes as metadata) and, when it has field
// failures, a BadRequest listing them. Other errors that carry a code, such as transport failures,
// get the ErrorInfo only. It reports false for errors with no code.
func ToStatus(err error, m apis.Mapper, ex Extras) (*gstatus.Status, bool) {
	var (
		c     code.Code
		r     reason.Reason
		msg   string
		bad   *errdetails.BadRequest
		attrs map[string]string
	)
	var e *paygate.Error
	var ce apis.CodedError
	switch {
	case errors.As(err, &e):
		c, r, msg = code.OrUnknown(e.Code), e.Reason, e.Message
		if !e.Fields.Empty() {
			bad = &errdetails.BadRequest{}
			attrs = make(map[string]string)
			for i, fe := range e.Fields.All() {
				if fe.Attribute != "" {
					attrs[MetaAttributePrefix+strconv.Itoa(i)] = fe.Attribute
				}
				bad.FieldViolations = append(bad.FieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       string(fe.Path),
					Description: fe.Message,
					Reason:      fe.Code,
				})
			}
		}
	case errors.As(err, &ce):
		c, msg = paygate.CodeOf(err), err.Error()
	default:
		return nil, false
	}

	st := m.Status(c, r)
	info := &errdetails.ErrorInfo{
		Reason:   string(c),
		Domain:   Domain,
		Metadata: map[string]string{MetaHTTPStatus: strconv.Itoa(st.HTTP)},
	}
	if r != reason.Empty {
		info.Metadata[MetaReason] = string(r)
	}
	if ex.CorrelationID != "" {
		info.Metadata[MetaCorrelation] = ex.CorrelationID
	}
	for k, v := range attrs {
		info.Metadata[k] = v
	}

	base := gstatus.New(gcodes.Code(st.GRPC), msg)
	var with *gstatus.Status
	var derr error
	if bad != nil {
		with, derr = base.WithDetails(info, bad)
	} else {
		with, derr = base.WithDetails(info)
	}
	if derr != nil {
		return base, true
	}
	return with, true
}

// UnaryServerInterceptor converts errors returned by handlers with
// ToStatus. Errors without a code are returned unchanged.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, error) Extras { return Extras{} }
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		st, ok := ToStatus(err, m, metaFn(ctx, err))
		if !ok {
			return nil, err
		}
		return nil, st.Err()
	}
}

// FromStatus rebuilds a *paygate.Error from a gRPC error produced by
// ToStatus. It reports false when err carries no paygate ErrorInfo.
func FromStatus(err error) (*paygate.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	var info *errdetails.ErrorInfo
	var bad *errdetails.BadRequest
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if x.GetDomain() == Domain {
				info = x
			}
		case *errdetails.BadRequest:
			bad = x
		}
	}
	if info == nil {
		return nil, false
	}

	c, perr := code.Parse(info.GetReason())
	if perr != nil {
		c = code.Unknown
	}
	out := paygate.NormalizeMessage(c, st.Message())
	if r, rerr := reason.Parse(info.GetMetadata()[MetaReason]); rerr == nil && r != reason.Empty {
		out = out.WithReason(r)
	}
	if bad != nil {
		var failures []paygate.FieldError
		meta := info.GetMetadata()
		for i, v := range bad.GetFieldViolations() {
			failures = append(failures, paygate.FieldError{
				Path:      fieldpath.Join(v.GetField()),
				Attribute: meta[MetaAttributePrefix+strconv.Itoa(i)],
				Code:      v.GetReason(),
				Message:   v.GetDescription(),
			})
		}
		out = out.WithFields(paygate.NewValidationErrors(failures...))
	}
	return out, true
}
