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

// Package paypal maps vaulted PayPal accounts and provides their client.
package paypal

import (
	"context"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/construct"
	"dirpx.dev/paygate/internal/crud"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// Account is a PayPal account vaulted on a customer.
type Account struct {
	Token     *string
	Email     *string
	ImageURL  *string
	Default   *string
	CreatedAt *string
	UpdatedAt *string
}

// Schema declares the wire fields of a PayPal account.
var Schema = construct.NewSchema("paypal_account",
	construct.ScalarField("token"),
	construct.ScalarField("email"),
	construct.ScalarField("image_url"),
	construct.ScalarField("default"),
	construct.ScalarField("created_at"),
	construct.ScalarField("updated_at"),
)

// Constructor builds PayPal accounts from wire records.
var Constructor = construct.Constructor[Account]{
	Schema: Schema,
	Build:  FromRecord,
}

// Construct builds an Account from a wire record. It never fails.
func Construct(m wire.Map) Account { return Constructor.Construct(m) }

// FromRecord builds an Account from a hydrated record.
func FromRecord(r construct.Record) Account {
	return Account{
		Token:     r.Scalar("token"),
		Email:     r.Scalar("email"),
		ImageURL:  r.Scalar("image_url"),
		Default:   r.Scalar("default"),
		CreatedAt: r.Scalar("created_at"),
		UpdatedAt: r.Scalar("updated_at"),
	}
}

// ToMap renders a back to wire form; absent fields are omitted.
func (a Account) ToMap() wire.Map {
	m := wire.Map{}
	construct.SetScalar(m, "token", a.Token)
	construct.SetScalar(m, "email", a.Email)
	construct.SetScalar(m, "image_url", a.ImageURL)
	construct.SetScalar(m, "default", a.Default)
	construct.SetScalar(m, "created_at", a.CreatedAt)
	construct.SetScalar(m, "updated_at", a.UpdatedAt)
	return m
}

// Client manages PayPal accounts by token. Accounts are vaulted through
// payment method nonces, so there is no Create.
type Client struct {
	ep *crud.Endpoint[Account]
}

// NewClient returns a Client sending requests through f.
func NewClient(f transport.Facade, opts ...paygate.ClientOption) *Client {
	return &Client{ep: crud.New("paypal account", "paypal_account", Construct, f, opts...)}
}

func (c *Client) Find(ctx context.Context, token string) (Account, error) {
	return c.ep.Find(ctx, "payment_methods", "paypal_account", token)
}

func (c *Client) Update(ctx context.Context, token string, params wire.Map) (Account, error) {
	return c.ep.Update(ctx, params, "payment_methods", "paypal_account", token)
}

func (c *Client) Delete(ctx context.Context, token string) error {
	return c.ep.Delete(ctx, "payment_methods", "paypal_account", token)
}
