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

// Package coinbase maps vaulted Coinbase accounts and provides their
// client.
package coinbase

import (
	"context"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/construct"
	"dirpx.dev/paygate/internal/crud"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// Account is a Coinbase account vaulted on a customer.
type Account struct {
	Token     *string
	UserID    *string
	UserName  *string
	UserEmail *string
	ImageURL  *string
	Default   *string
	CreatedAt *string
	UpdatedAt *string
}

var Schema = construct.NewSchema("coinbase_account",
	construct.ScalarField("token"),
	construct.ScalarField("user_id"),
	construct.ScalarField("user_name"),
	construct.ScalarField("user_email"),
	construct.ScalarField("image_url"),
	construct.ScalarField("default"),
	construct.ScalarField("created_at"),
	construct.ScalarField("updated_at"),
)

var Constructor = construct.Constructor[Account]{
	Schema: Schema,
	Build:  FromRecord,
}

// Construct builds an Account from a wire record. It never fails.
func Construct(m wire.Map) Account { return Constructor.Construct(m) }

func FromRecord(r construct.Record) Account {
	return Account{
		Token:     r.Scalar("token"),
		UserID:    r.Scalar("user_id"),
		UserName:  r.Scalar("user_name"),
		UserEmail: r.Scalar("user_email"),
		ImageURL:  r.Scalar("image_url"),
		Default:   r.Scalar("default"),
		CreatedAt: r.Scalar("created_at"),
		UpdatedAt: r.Scalar("updated_at"),
	}
}

func (a Account) ToMap() wire.Map {
	m := wire.Map{}
	construct.SetScalar(m, "token", a.Token)
	construct.SetScalar(m, "user_id", a.UserID)
	construct.SetScalar(m, "user_name", a.UserName)
	construct.SetScalar(m, "user_email", a.UserEmail)
	construct.SetScalar(m, "image_url", a.ImageURL)
	construct.SetScalar(m, "default", a.Default)
	construct.SetScalar(m, "created_at", a.CreatedAt)
	construct.SetScalar(m, "updated_at", a.UpdatedAt)
	return m
}

// Client reads and removes Coinbase accounts by token. The gateway does
// not allow updating them.
type Client struct {
	ep *crud.Endpoint[Account]
}

// NewClient returns a Client sending requests through f.
func NewClient(f transport.Facade, opts ...paygate.ClientOption) *Client {
	return &Client{ep: crud.New("coinbase account", "coinbase_account", Construct, f, opts...)}
}

func (c *Client) Find(ctx context.Context, token string) (Account, error) {
	return c.ep.Find(ctx, "payment_methods", "coinbase_account", token)
}

func (c *Client) Delete(ctx context.Context, token string) error {
	return c.ep.Delete(ctx, "payment_methods", "coinbase_account", token)
}
