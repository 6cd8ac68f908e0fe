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

// Package customer maps customers, with their vaulted payment methods and
// addresses, and provides the customer client.
package customer

import (
	"dirpx.dev/paygate/address"
	"dirpx.dev/paygate/coinbase"
	"dirpx.dev/paygate/construct"
	"dirpx.dev/paygate/creditcard"
	"dirpx.dev/paygate/paypal"
	"dirpx.dev/paygate/wire"
)

// Customer is a snapshot of a remote customer. Scalars are nil when the
// gateway did not send them. CustomFields and the four collections are
// never nil on a constructed Customer and are not shared with any other
// value.
type Customer struct {
	ID        *string
	Company   *string
	Email     *string
	Phone     *string
	Fax       *string
	Website   *string
	FirstName *string
	LastName  *string
	CreatedAt *string
	UpdatedAt *string

	CustomFields map[string]string

	CreditCards      []creditcard.CreditCard
	PayPalAccounts   []paypal.Account
	CoinbaseAccounts []coinbase.Account
	Addresses        []address.Address
}

// Schema declares the wire fields of a customer.
var Schema = construct.NewSchema("customer",
	construct.ScalarField("id"),
	construct.ScalarField("company"),
	construct.ScalarField("email"),
	construct.ScalarField("phone"),
	construct.ScalarField("fax"),
	construct.ScalarField("website"),
	construct.ScalarField("first_name"),
	construct.ScalarField("last_name"),
	construct.ScalarField("created_at"),
	construct.ScalarField("updated_at"),
	construct.MappingField("custom_fields"),
	construct.SequenceField("credit_cards", creditcard.Schema),
	construct.SequenceField("paypal_accounts", paypal.Schema),
	construct.SequenceField("coinbase_accounts", coinbase.Schema),
	construct.SequenceField("addresses", address.Schema),
)

// Constructor builds customers in two steps: the generic pass fills the
// scalars and custom fields and leaves empty collections, then one pass
// per collection replaces it with sub-resources built by their own
// packages.
var Constructor = construct.Constructor[Customer]{
	Schema: Schema,
	Build:  base,
}.Then(func(c *Customer, r construct.Record) {
	c.CreditCards = construct.Each(r.Sequence("credit_cards"), creditcard.FromRecord)
}).Then(func(c *Customer, r construct.Record) {
	c.PayPalAccounts = construct.Each(r.Sequence("paypal_accounts"), paypal.FromRecord)
}).Then(func(c *Customer, r construct.Record) {
	c.CoinbaseAccounts = construct.Each(r.Sequence("coinbase_accounts"), coinbase.FromRecord)
}).Then(func(c *Customer, r construct.Record) {
	c.Addresses = construct.Each(r.Sequence("addresses"), address.FromRecord)
})

// Construct builds a Customer from a wire record such as the "customer"
// object of a gateway response. It never fails: missing fields take their
// defaults and unknown fields are ignored.
func Construct(m wire.Map) Customer { return Constructor.Construct(m) }

func base(r construct.Record) Customer {
	return Customer{
		ID:               r.Scalar("id"),
		Company:          r.Scalar("company"),
		Email:            r.Scalar("email"),
		Phone:            r.Scalar("phone"),
		Fax:              r.Scalar("fax"),
		Website:          r.Scalar("website"),
		FirstName:        r.Scalar("first_name"),
		LastName:         r.Scalar("last_name"),
		CreatedAt:        r.Scalar("created_at"),
		UpdatedAt:        r.Scalar("updated_at"),
		CustomFields:     r.Mapping("custom_fields"),
		CreditCards:      []creditcard.CreditCard{},
		PayPalAccounts:   []paypal.Account{},
		CoinbaseAccounts: []coinbase.Account{},
		Addresses:        []address.Address{},
	}
}

// DefaultPaymentMethod returns the token of the customer's default credit
// card or PayPal account, or "" when none is marked default.
func (c Customer) DefaultPaymentMethod() string {
	for _, cc := range c.CreditCards {
		if isTrue(cc.Default) && cc.Token != nil {
			return *cc.Token
		}
	}
	for _, pp := range c.PayPalAccounts {
		if isTrue(pp.Default) && pp.Token != nil {
			return *pp.Token
		}
	}
	return ""
}

// ToMap renders c back to wire form. Construct(c.ToMap()) equals c for any
// constructed c.
func (c Customer) ToMap() wire.Map {
	m := wire.Map{}
	construct.SetScalar(m, "id", c.ID)
	construct.SetScalar(m, "company", c.Company)
	construct.SetScalar(m, "email", c.Email)
	construct.SetScalar(m, "phone", c.Phone)
	construct.SetScalar(m, "fax", c.Fax)
	construct.SetScalar(m, "website", c.Website)
	construct.SetScalar(m, "first_name", c.FirstName)
	construct.SetScalar(m, "last_name", c.LastName)
	construct.SetScalar(m, "created_at", c.CreatedAt)
	construct.SetScalar(m, "updated_at", c.UpdatedAt)
	m["custom_fields"] = construct.MappingValue(c.CustomFields)
	m["credit_cards"] = construct.Maps(c.CreditCards, creditcard.CreditCard.ToMap)
	m["paypal_accounts"] = construct.Maps(c.PayPalAccounts, paypal.Account.ToMap)
	m["coinbase_accounts"] = construct.Maps(c.CoinbaseAccounts, coinbase.Account.ToMap)
	m["addresses"] = construct.Maps(c.Addresses, address.Address.ToMap)
	return m
}

func isTrue(s *string) bool {
	return s != nil && *s == "true"
}
