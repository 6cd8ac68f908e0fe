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

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/paygate/code"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// fakeGateway serves a small merchant API below /merchants/m1.
func fakeGateway(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/merchants/m1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if pub, priv, ok := req.BasicAuth(); !ok || pub != "pub" || priv != "priv" {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = io.WriteString(w, `{"message":"authentication failed"}`)
					return
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Post("/customers", func(w http.ResponseWriter, req *http.Request) {
			var in map[string]map[string]any
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			out := map[string]any{"customer": map[string]any{"id": "123", "first_name": in["customer"]["first_name"]}}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(out)
		})
		r.Get("/customers/{id}", func(w http.ResponseWriter, req *http.Request) {
			switch chi.URLParam(req, "id") {
			case "missing":
				w.WriteHeader(http.StatusNotFound)
			case "boom":
				w.WriteHeader(http.StatusServiceUnavailable)
			case "garbled":
				_, _ = io.WriteString(w, "<html>not json</html>")
			case "forbidden":
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusForbidden)
				_, _ = io.WriteString(w, "Forbidden")
			case "slow":
				time.Sleep(200 * time.Millisecond)
				_, _ = io.WriteString(w, `{}`)
			default:
				_, _ = io.WriteString(w, `{"customer":{"id":"`+chi.URLParam(req, "id")+`","request_id":"`+req.Header.Get(HeaderRequestID)+`"}}`)
			}
		})
		r.Put("/customers/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"api_error_response":{"message":"Email is an invalid format.","errors":{"customer":{"errors":[{"attribute":"email","code":"81604","message":"Email is an invalid format."}]}}}}`)
		})
		r.Delete("/customers/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithCredentials("pub", "priv")}, opts...)
	c, err := New(srv.URL+"/merchants/m1", opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestPost_EncodesAndDecodes(t *testing.T) {
	c := newClient(t, fakeGateway(t))

	got, err := c.Post(context.Background(), "customers", wire.Map{"customer": wire.Map{"first_name": "Jen"}})
	require.NoError(t, err)
	assert.Equal(t, "Jen", *got.Map("customer").String("first_name"))
	assert.Equal(t, "123", *got.Map("customer").String("id"))
}

func TestGet_SendsRequestID(t *testing.T) {
	c := newClient(t, fakeGateway(t))

	got, err := c.Get(context.Background(), "customers/c1")
	require.NoError(t, err)
	id := got.Map("customer").String("request_id")
	require.NotNil(t, id)
	assert.Len(t, *id, 20)
}

func TestOutcomes(t *testing.T) {
	c := newClient(t, fakeGateway(t))
	ctx := context.Background()

	_, err := c.Get(ctx, "customers/missing")
	var nf *transport.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customers/missing", nf.Path)

	_, err = c.Get(ctx, "customers/boom")
	var f *transport.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, code.Unavailable, f.Code)
	assert.Equal(t, http.StatusServiceUnavailable, f.Status)

	_, err = c.Get(ctx, "customers/garbled")
	require.ErrorAs(t, err, &f)
	assert.Equal(t, code.Malformed, f.Code)
	assert.Equal(t, http.StatusOK, f.Status)

	_, err = c.Put(ctx, "customers/c1", wire.Map{"customer": wire.Map{"email": "nope"}})
	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, code.Invalid, apiErr.Code)
	assert.Equal(t, "Email is an invalid format.", *apiErr.Body.Map("api_error_response").String("message"))
	assert.Contains(t, string(apiErr.Raw), `"api_error_response"`)

	body, err := c.Delete(ctx, "customers/c1")
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestUnauthenticated(t *testing.T) {
	srv := fakeGateway(t)
	c, err := New(srv.URL + "/merchants/m1")
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "customers/c1")
	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code.Unauthenticated, apiErr.Code)
	assert.Equal(t, transport.KindAPIError, transport.Outcome(err))
}

func TestRejection_PlainTextBodyKeepsClassification(t *testing.T) {
	c := newClient(t, fakeGateway(t))

	_, err := c.Get(context.Background(), "customers/forbidden")
	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, code.PermissionDenied, apiErr.Code)
	assert.Empty(t, apiErr.Body)
	assert.Equal(t, "Forbidden", string(apiErr.Raw))
}

func TestTimeoutAndCancel(t *testing.T) {
	srv := fakeGateway(t)
	c := newClient(t, srv, WithTimeout(20*time.Millisecond))

	_, err := c.Get(context.Background(), "customers/slow")
	var f *transport.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, code.Timeout, f.Code)
	assert.Zero(t, f.Status)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newClient(t, srv).Get(ctx, "customers/c1")
	require.ErrorAs(t, err, &f)
	assert.Equal(t, code.Canceled, f.Code)
}

func TestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "customers/c1")
	var f *transport.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, code.Unavailable, f.Code)
}

func TestLogsEachRequest(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := newClient(t, fakeGateway(t), WithLogger(logrus.NewEntry(logger)))

	_, err := c.Get(context.Background(), "customers/c1")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "rest: response", entry.Message)
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "customers/c1", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["request_id"])
}
