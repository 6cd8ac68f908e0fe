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

// Package address maps customer addresses and provides their client.
package address

import (
	"context"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/construct"
	"dirpx.dev/paygate/internal/crud"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/wire"
)

// Address is a postal address stored on a customer. All fields are
// optional; nil means the gateway did not send the field.
type Address struct {
	ID                *string
	CustomerID        *string
	FirstName         *string
	LastName          *string
	Company           *string
	StreetAddress     *string
	ExtendedAddress   *string
	Locality          *string
	Region            *string
	PostalCode        *string
	CountryCodeAlpha2 *string
	CountryName       *string
	CreatedAt         *string
	UpdatedAt         *string
}

// Schema declares the wire fields of an address. Credit cards embed it as
// their billing address and customers as their address list.
var Schema = construct.NewSchema("address",
	construct.ScalarField("id"),
	construct.ScalarField("customer_id"),
	construct.ScalarField("first_name"),
	construct.ScalarField("last_name"),
	construct.ScalarField("company"),
	construct.ScalarField("street_address"),
	construct.ScalarField("extended_address"),
	construct.ScalarField("locality"),
	construct.ScalarField("region"),
	construct.ScalarField("postal_code"),
	construct.ScalarField("country_code_alpha2"),
	construct.ScalarField("country_name"),
	construct.ScalarField("created_at"),
	construct.ScalarField("updated_at"),
)

// Constructor builds addresses from wire records.
var Constructor = construct.Constructor[Address]{
	Schema: Schema,
	Build:  FromRecord,
}

// Construct builds an Address from a wire record. It never fails.
func Construct(m wire.Map) Address { return Constructor.Construct(m) }

// FromRecord builds an Address from a hydrated record.
func FromRecord(r construct.Record) Address {
	return Address{
		ID:                r.Scalar("id"),
		CustomerID:        r.Scalar("customer_id"),
		FirstName:         r.Scalar("first_name"),
		LastName:          r.Scalar("last_name"),
		Company:           r.Scalar("company"),
		StreetAddress:     r.Scalar("street_address"),
		ExtendedAddress:   r.Scalar("extended_address"),
		Locality:          r.Scalar("locality"),
		Region:            r.Scalar("region"),
		PostalCode:        r.Scalar("postal_code"),
		CountryCodeAlpha2: r.Scalar("country_code_alpha2"),
		CountryName:       r.Scalar("country_name"),
		CreatedAt:         r.Scalar("created_at"),
		UpdatedAt:         r.Scalar("updated_at"),
	}
}

// ToMap renders a back to wire form; absent fields are omitted.
func (a Address) ToMap() wire.Map {
	m := wire.Map{}
	construct.SetScalar(m, "id", a.ID)
	construct.SetScalar(m, "customer_id", a.CustomerID)
	construct.SetScalar(m, "first_name", a.FirstName)
	construct.SetScalar(m, "last_name", a.LastName)
	construct.SetScalar(m, "company", a.Company)
	construct.SetScalar(m, "street_address", a.StreetAddress)
	construct.SetScalar(m, "extended_address", a.ExtendedAddress)
	construct.SetScalar(m, "locality", a.Locality)
	construct.SetScalar(m, "region", a.Region)
	construct.SetScalar(m, "postal_code", a.PostalCode)
	construct.SetScalar(m, "country_code_alpha2", a.CountryCodeAlpha2)
	construct.SetScalar(m, "country_name", a.CountryName)
	construct.SetScalar(m, "created_at", a.CreatedAt)
	construct.SetScalar(m, "updated_at", a.UpdatedAt)
	return m
}

// Client manages the addresses of a customer at
// customers/{customer_id}/addresses. A blank customer id or address id
// yields the not-found error without a request.
type Client struct {
	ep *crud.Endpoint[Address]
}

// NewClient returns a Client sending requests through f.
func NewClient(f transport.Facade, opts ...paygate.ClientOption) *Client {
	return &Client{ep: crud.New("address", "address", Construct, f, opts...)}
}

// Create adds an address to a customer.
func (c *Client) Create(ctx context.Context, customerID string, params wire.Map) (Address, error) {
	return c.ep.Create(ctx, params, "customers", customerID, "addresses")
}

// Find fetches one address of a customer.
func (c *Client) Find(ctx context.Context, customerID, id string) (Address, error) {
	return c.ep.Find(ctx, "customers", customerID, "addresses", id)
}

// Update changes an address.
func (c *Client) Update(ctx context.Context, customerID, id string, params wire.Map) (Address, error) {
	return c.ep.Update(ctx, params, "customers", customerID, "addresses", id)
}

// Delete removes an address.
func (c *Client) Delete(ctx context.Context, customerID, id string) error {
	return c.ep.Delete(ctx, "customers", customerID, "addresses", id)
}
