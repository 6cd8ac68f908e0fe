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

// Package gateway is the entry point: it wires a transport to every
// resource client.
//
//	cfg, err := config.FromEnv(".env")
//	gw, err := gateway.FromConfig(cfg)
//	c, err := gw.Customers().Create(ctx, wire.Map{"first_name": "Jen"})
package gateway

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/address"
	"dirpx.dev/paygate/apis"
	"dirpx.dev/paygate/coinbase"
	"dirpx.dev/paygate/config"
	"dirpx.dev/paygate/creditcard"
	"dirpx.dev/paygate/customer"
	"dirpx.dev/paygate/mapper"
	"dirpx.dev/paygate/paypal"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/transport/rest"
)

// Gateway holds one client per resource, all sharing a transport, logger
// and mapper.
type Gateway struct {
	facade transport.Facade
	mapper apis.Mapper
	log    *logrus.Entry

	customers *customer.Client
	cards     *creditcard.Client
	paypal    *paypal.Client
	coinbase  *coinbase.Client
	addresses *address.Client
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the entry every client logs through.
func WithLogger(l *logrus.Entry) Option { return func(g *Gateway) { g.log = l } }

// WithMapper sets the status mapper used for classification and logging.
func WithMapper(m apis.Mapper) Option { return func(g *Gateway) { g.mapper = m } }

// New builds a Gateway over an existing transport.
func New(f transport.Facade, opts ...Option) *Gateway {
	g := &Gateway{facade: f}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.log == nil {
		g.log = logrus.NewEntry(logrus.StandardLogger())
	}
	if g.mapper == nil {
		g.mapper = mapper.MustNew()
	}

	copts := []paygate.ClientOption{paygate.WithLogger(g.log), paygate.WithMapper(g.mapper)}
	g.customers = customer.NewClient(f, copts...)
	g.cards = creditcard.NewClient(f, copts...)
	g.paypal = paypal.NewClient(f, copts...)
	g.coinbase = coinbase.NewClient(f, copts...)
	g.addresses = address.NewClient(f, copts...)
	return g
}

// FromConfig validates cfg and builds a Gateway over the REST transport.
// The logger comes from cfg unless an option replaces it.
func FromConfig(cfg config.Config, opts ...Option) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := &Gateway{}
	for _, opt := range opts {
		if opt != nil {
			opt(base)
		}
	}
	if base.log == nil {
		base.log = cfg.Logger()
	}
	if base.mapper == nil {
		base.mapper = mapper.MustNew()
	}

	f, err := rest.New(cfg.BaseURL(),
		rest.WithCredentials(cfg.PublicKey, cfg.PrivateKey),
		rest.WithTimeout(cfg.Timeout.Std()),
		rest.WithUserAgent(cfg.UserAgent),
		rest.WithLogger(base.log),
		rest.WithMapper(base.mapper),
	)
	if err != nil {
		return nil, err
	}
	return New(f, WithLogger(base.log), WithMapper(base.mapper)), nil
}

// Customers returns the customer client.
func (g *Gateway) Customers() *customer.Client { return g.customers }

// CreditCards returns the credit card client.
func (g *Gateway) CreditCards() *creditcard.Client { return g.cards }

// PayPalAccounts returns the PayPal account client.
func (g *Gateway) PayPalAccounts() *paypal.Client { return g.paypal }

// CoinbaseAccounts returns the Coinbase account client.
func (g *Gateway) CoinbaseAccounts() *coinbase.Client { return g.coinbase }

// Addresses returns the customer address client.
func (g *Gateway) Addresses() *address.Client { return g.addresses }

// Transport returns the facade all clients share.
func (g *Gateway) Transport() transport.Facade { return g.facade }

// Mapper returns the status mapper, e.g. for httpx.Writer or grpcx.
func (g *Gateway) Mapper() apis.Mapper { return g.mapper }
