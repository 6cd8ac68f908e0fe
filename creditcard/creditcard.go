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

// Package creditcard maps stored credit cards and provides their client.
package creditcard

import (
	"context"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/address"
	"dirpx.dev/paygate/construct"
	"dirpx.dev/paygate/internal/crud"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// CreditCard is a card vaulted on a customer. Only masked data is ever
// returned by the gateway. Default and Expired hold "true" or "false" when
// present; BillingAddress is nil when the card has none.
type CreditCard struct {
	Token                  *string
	CustomerID             *string
	Bin                    *string
	Last4                  *string
	CardType               *string
	CardholderName         *string
	ExpirationMonth        *string
	ExpirationYear         *string
	UniqueNumberIdentifier *string
	ImageURL               *string
	Default                *string
	Expired                *string
	CreatedAt              *string
	UpdatedAt              *string
	BillingAddress         *address.Address
}

// Schema declares the wire fields of a credit card.
var Schema = construct.NewSchema("credit_card",
	construct.ScalarField("token"),
	construct.ScalarField("customer_id"),
	construct.ScalarField("bin"),
	construct.ScalarField("last_4"),
	construct.ScalarField("card_type"),
	construct.ScalarField("cardholder_name"),
	construct.ScalarField("expiration_month"),
	construct.ScalarField("expiration_year"),
	construct.ScalarField("unique_number_identifier"),
	construct.ScalarField("image_url"),
	construct.ScalarField("default"),
	construct.ScalarField("expired"),
	construct.ScalarField("created_at"),
	construct.ScalarField("updated_at"),
	construct.NestedField("billing_address", address.Schema),
)

// Constructor builds credit cards; the billing address is hydrated by the
// address package in a second pass.
var Constructor = construct.Constructor[CreditCard]{
	Schema: Schema,
	Build: func(r construct.Record) CreditCard {
		return CreditCard{
			Token:                  r.Scalar("token"),
			CustomerID:             r.Scalar("customer_id"),
			Bin:                    r.Scalar("bin"),
			Last4:                  r.Scalar("last_4"),
			CardType:               r.Scalar("card_type"),
			CardholderName:         r.Scalar("cardholder_name"),
			ExpirationMonth:        r.Scalar("expiration_month"),
			ExpirationYear:         r.Scalar("expiration_year"),
			UniqueNumberIdentifier: r.Scalar("unique_number_identifier"),
			ImageURL:               r.Scalar("image_url"),
			Default:                r.Scalar("default"),
			Expired:                r.Scalar("expired"),
			CreatedAt:              r.Scalar("created_at"),
			UpdatedAt:              r.Scalar("updated_at"),
		}
	},
}.Then(func(c *CreditCard, r construct.Record) {
	c.BillingAddress = construct.One(r, "billing_address", address.FromRecord)
})

// Construct builds a CreditCard from a wire record. It never fails.
func Construct(m wire.Map) CreditCard { return Constructor.Construct(m) }

// FromRecord builds a CreditCard from a hydrated record.
func FromRecord(r construct.Record) CreditCard { return Constructor.FromRecord(r) }

// MaskedNumber renders the card as "411111******1111". It returns "" when
// the bin or last four digits are unknown.
func (c CreditCard) MaskedNumber() string {
	if c.Bin == nil || c.Last4 == nil {
		return ""
	}
	return *c.Bin + "******" + *c.Last4
}

// ToMap renders c back to wire form; absent fields are omitted.
func (c CreditCard) ToMap() wire.Map {
	m := wire.Map{}
	construct.SetScalar(m, "token", c.Token)
	construct.SetScalar(m, "customer_id", c.CustomerID)
	construct.SetScalar(m, "bin", c.Bin)
	construct.SetScalar(m, "last_4", c.Last4)
	construct.SetScalar(m, "card_type", c.CardType)
	construct.SetScalar(m, "cardholder_name", c.CardholderName)
	construct.SetScalar(m, "expiration_month", c.ExpirationMonth)
	construct.SetScalar(m, "expiration_year", c.ExpirationYear)
	construct.SetScalar(m, "unique_number_identifier", c.UniqueNumberIdentifier)
	construct.SetScalar(m, "image_url", c.ImageURL)
	construct.SetScalar(m, "default", c.Default)
	construct.SetScalar(m, "expired", c.Expired)
	construct.SetScalar(m, "created_at", c.CreatedAt)
	construct.SetScalar(m, "updated_at", c.UpdatedAt)
	if c.BillingAddress != nil {
		m["billing_address"] = c.BillingAddress.ToMap()
	}
	return m
}

const (
	collection = "payment_methods"
	member     = "credit_card"
)

// Client manages credit cards. Cards are created through the payment
// method collection and addressed by token afterwards.
type Client struct {
	ep *crud.Endpoint[CreditCard]
}

// NewClient returns a Client sending requests through f.
func NewClient(f transport.Facade, opts ...paygate.ClientOption) *Client {
	return &Client{ep: crud.New("credit card", "credit_card", Construct, f, opts...)}
}

// Create vaults a card. params usually carries customer_id and a payment
// method nonce or number.
func (c *Client) Create(ctx context.Context, params wire.Map) (CreditCard, error) {
	return c.ep.Create(ctx, params, collection)
}

// Find fetches the card with the given token.
func (c *Client) Find(ctx context.Context, token string) (CreditCard, error) {
	return c.ep.Find(ctx, collection, member, token)
}

// Update changes the card with the given token.
func (c *Client) Update(ctx context.Context, token string, params wire.Map) (CreditCard, error) {
	return c.ep.Update(ctx, params, collection, member, token)
}

// Delete removes the card with the given token.
func (c *Client) Delete(ctx context.Context, token string) error {
	return c.ep.Delete(ctx, collection, member, token)
}
