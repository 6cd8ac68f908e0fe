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

// Package rest implements transport.Facade over HTTP with go-resty.
//
// Responses are sorted into the four transport outcomes by status:
//
//	2xx          decoded body
//	404          *transport.NotFoundError
//	other 4xx    *transport.APIError carrying the decoded error body
//	5xx, others  *transport.Failure
//
// A 2xx body that is not a JSON object becomes a Failure with
// code.Malformed; a 4xx one still yields an APIError, with an empty Body.
// Network errors become Failures classified by
// transport.ClassifyErr.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/mapper"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// Headers set on every request.
const (
	HeaderRequestID  = "X-Request-Id"
	HeaderAPIVersion = "X-ApiVersion"

	// APIVersion is the gateway API version the client speaks.
	APIVersion = "6"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// ErrNoBaseURL is returned by New when the base URL is blank.
var ErrNoBaseURL = errors.New("rest: base URL is required")

// Options configure a Client.
type Options struct {
	PublicKey  string
	PrivateKey string
	UserAgent  string
	Timeout    time.Duration

	// HTTPClient replaces the underlying client, e.g. for tests or proxies.
	HTTPClient *http.Client
	Log        *logrus.Entry
	// Mapper classifies non-2xx statuses. Defaults to mapper.MustNew().
	Mapper apis.Mapper
}

// Option configures Options.
type Option func(*Options)

// WithCredentials sets the key pair sent as basic auth.
func WithCredentials(public, private string) Option {
	return func(o *Options) {
		o.PublicKey = public
		o.PrivateKey = private
	}
}

// WithUserAgent sets the User-Agent header; empty leaves resty's default.
func WithUserAgent(ua string) Option { return func(o *Options) { o.UserAgent = ua } }

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }

// WithHTTPClient replaces the underlying *http.Client, e.g. one with a
// custom RoundTripper.
func WithHTTPClient(c *http.Client) Option { return func(o *Options) { o.HTTPClient = c } }

// WithLogger sets the entry requests are logged to. Defaults to the
// logrus standard logger.
func WithLogger(l *logrus.Entry) Option { return func(o *Options) { o.Log = l } }

// WithMapper sets the mapper used to pick a Failure code from a
// transport status.
func WithMapper(m apis.Mapper) Option { return func(o *Options) { o.Mapper = m } }

// Client is a transport.Facade speaking JSON over HTTP. It is safe for
// concurrent use.
type Client struct {
	r      *resty.Client
	log    *logrus.Entry
	mapper apis.Mapper
}

var _ transport.Facade = (*Client)(nil)

// New returns a Client sending requests below baseURL, e.g.
// "https://api.sandbox.example.com/merchants/m1".
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	o := Options{Timeout: DefaultTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Log == nil {
		o.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	if o.Mapper == nil {
		o.Mapper = mapper.MustNew()
	}

	var r *resty.Client
	if o.HTTPClient != nil {
		r = resty.NewWithClient(o.HTTPClient)
	} else {
		r = resty.New()
	}
	r.SetBaseURL(baseURL).
		SetTimeout(o.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader(HeaderAPIVersion, APIVersion)
	if o.UserAgent != "" {
		r.SetHeader("User-Agent", o.UserAgent)
	}
	if o.PublicKey != "" || o.PrivateKey != "" {
		r.SetBasicAuth(o.PublicKey, o.PrivateKey)
	}

	return &Client{r: r, log: o.Log, mapper: o.Mapper}, nil
}

// Get fetches path and returns the decoded response body.
func (c *Client) Get(ctx context.Context, path string) (wire.Map, error) {
	return c.do(ctx, transport.MethodGet, path, nil)
}

// Post sends body to path and returns the decoded response body.
func (c *Client) Post(ctx context.Context, path string, body wire.Map) (wire.Map, error) {
	return c.do(ctx, transport.MethodPost, path, body)
}

// Put sends body to path as an update.
func (c *Client) Put(ctx context.Context, path string, body wire.Map) (wire.Map, error) {
	return c.do(ctx, transport.MethodPut, path, body)
}

// Delete removes the resource at path. A 2xx with no body yields an
// empty Map.
func (c *Client) Delete(ctx context.Context, path string) (wire.Map, error) {
	return c.do(ctx, transport.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body wire.Map) (wire.Map, error) {
	id := xid.New().String()
	req := c.r.R().SetContext(ctx).SetHeader(HeaderRequestID, id)
	if body != nil {
		b, err := wire.Encode(body)
		if err != nil {
			return nil, &transport.Failure{Method: method, Path: path, Code: code.Malformed, Err: err}
		}
		req.SetHeader("Content-Type", "application/json").SetBody(b)
	}

	start := time.Now()
	resp, err := req.Execute(method, "/"+strings.TrimPrefix(path, "/"))
	entry := c.log.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"request_id":  id,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		f := transport.NewFailure(method, path, err)
		entry.WithField("error_code", string(f.Code)).Debug("rest: request failed")
		return nil, f
	}

	status := resp.StatusCode()
	entry.WithField("status", status).Debug("rest: response")
	return c.interpret(method, path, status, resp.Body())
}

// interpret sorts a received response into a transport outcome.
func (c *Client) interpret(method, path string, status int, raw []byte) (wire.Map, error) {
	switch {
	case status == http.StatusNotFound:
		return nil, &transport.NotFoundError{Method: method, Path: path}
	case status >= 200 && status < 300:
		m, err := wire.Decode(raw)
		if err != nil {
			return nil, malformed(method, path, status, err)
		}
		return m, nil
	case status >= 400 && status < 500:
		// A rejection keeps its classification even when the body is not
		// JSON, e.g. a plain-text 401 from a proxy.
		m, err := wire.Decode(raw)
		if err != nil {
			m = wire.Map{}
		}
		return nil, &transport.APIError{
			Method: method,
			Path:   path,
			Status: status,
			Code:   c.mapper.Classify(status),
			Body:   m,
			Raw:    raw,
		}
	default:
		return nil, &transport.Failure{
			Method: method,
			Path:   path,
			Code:   c.mapper.Classify(status),
			Status: status,
			Err:    fmt.Errorf("rest: unexpected status %d", status),
		}
	}
}

func malformed(method, path string, status int, err error) *transport.Failure {
	return &transport.Failure{Method: method, Path: path, Code: code.Malformed, Status: status, Err: err}
}
