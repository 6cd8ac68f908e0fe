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

package creditcard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/paygate"
	"dirpx.dev/paygate/transport"
	"dirpx.dev/paygate/transport/transporttest"
	"dirpx.dev/paygate/wire"
)

func TestConstruct_BillingAddress(t *testing.T) {
	c := Construct(wire.Map{
		"token":           "tok",
		"bin":             "411111",
		"last_4":          "1111",
		"expired":         false,
		"expiration_year": 2031.0,
		"billing_address": map[string]any{"locality": "Chicago", "region": "IL"},
	})

	require.NotNil(t, c.BillingAddress)
	assert.Equal(t, "Chicago", *c.BillingAddress.Locality)
	assert.Equal(t, "IL", *c.BillingAddress.Region)
	assert.Equal(t, "false", *c.Expired)
	assert.Equal(t, "2031", *c.ExpirationYear)
	assert.Nil(t, c.CardholderName)
	assert.Equal(t, c, Construct(c.ToMap()))
}

func TestConstruct_BillingAddressWrongShape(t *testing.T) {
	c := Construct(wire.Map{"billing_address": "somewhere"})
	assert.Nil(t, c.BillingAddress)
	assert.NotContains(t, c.ToMap(), "billing_address")
}

func TestMaskedNumber(t *testing.T) {
	assert.Equal(t, "411111******1111", Construct(wire.Map{"bin": "411111", "last_4": "1111"}).MaskedNumber())
	assert.Equal(t, "", Construct(wire.Map{"bin": "411111"}).MaskedNumber())
}

func TestClient_Paths(t *testing.T) {
	card := wire.Map{"credit_card": map[string]any{"token": "tok"}}
	stub := transporttest.New().
		Reply(transport.MethodPost, "payment_methods", card).
		Reply(transport.MethodGet, "payment_methods/credit_card/tok", card).
		Reply(transport.MethodPut, "payment_methods/credit_card/tok", card).
		Reply(transport.MethodDelete, "payment_methods/credit_card/tok", nil)
	c := NewClient(stub)
	ctx := context.Background()

	created, err := c.Create(ctx, wire.Map{"customer_id": "c1", "number": "4111111111111111"})
	require.NoError(t, err)
	assert.Equal(t, "tok", *created.Token)

	_, err = c.Find(ctx, "tok")
	require.NoError(t, err)
	_, err = c.Update(ctx, "tok", wire.Map{"cardholder_name": "Jen"})
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx, "tok"))

	calls := stub.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, wire.Map{"credit_card": wire.Map{"cardholder_name": "Jen"}}, calls[2].Body)
}

func TestClient_NotFound(t *testing.T) {
	stub := transporttest.New().NotFound(transport.MethodGet, "payment_methods/credit_card/gone")
	c := NewClient(stub)

	for _, token := range []string{"gone", " "} {
		_, err := c.Find(context.Background(), token)
		require.True(t, paygate.IsNotFound(err), token)
		assert.Equal(t, "credit card id is invalid", err.(*paygate.Error).Message)
	}
}
