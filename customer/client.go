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

package customer

import (
	"context"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/internal/crud"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

const collection = "customers"

// Client performs the customer operations. It holds no mutable state and
// is safe for concurrent use.
//
// Failures are *paygate.Error values, except transport failures which are
// returned as the *transport.Failure the facade produced. An unknown id,
// blank or not, yields code.NotFound with the message
// "customer id is invalid".
type Client struct {
	ep *crud.Endpoint[Customer]
}

// NewClient returns a Client sending requests through f.
func NewClient(f transport.Facade, opts ...paygate.ClientOption) *Client {
	return &Client{ep: crud.New("customer", "customer", Construct, f, opts...)}
}

// Create creates a customer from params, which may be empty.
func (c *Client) Create(ctx context.Context, params wire.Map) (Customer, error) {
	return c.ep.Create(ctx, params, collection)
}

// Find fetches the customer with the given id.
func (c *Client) Find(ctx context.Context, id string) (Customer, error) {
	return c.ep.Find(ctx, collection, id)
}

// Update changes the customer with the given id.
func (c *Client) Update(ctx context.Context, id string, params wire.Map) (Customer, error) {
	return c.ep.Update(ctx, params, collection, id)
}

// Delete removes the customer. The gateway also deletes its payment
// methods and cancels its subscriptions.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.ep.Delete(ctx, collection, id)
}
