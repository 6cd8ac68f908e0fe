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

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CanonicalKeys(t *testing.T) {
	m := Map{"firstName": "Jen", "last-name": "Smith", "company": "Braintree"}

	require.NotNil(t, m.String("first_name"))
	assert.Equal(t, "Jen", *m.String("first_name"))
	assert.Equal(t, "Smith", *m.String("last_name"))
	assert.Equal(t, "Braintree", *m.String("Company"))
	assert.Nil(t, m.String("email"))
	assert.False(t, m.Has("email"))
}

func TestLookup_ExactKeyWins(t *testing.T) {
	m := Map{"first_name": "exact", "firstName": "camel"}
	assert.Equal(t, "exact", *m.String("first_name"))
}

func TestLookup_NilMap(t *testing.T) {
	var m Map
	_, ok := m.Lookup("id")
	assert.False(t, ok)
	assert.Nil(t, m.String("id"))
	assert.Nil(t, m.Map("id"))
	assert.Nil(t, m.Maps("id"))
}

func TestString_Scalars(t *testing.T) {
	m := Map{
		"s":     "x",
		"f":     float64(12),
		"frac":  1.5,
		"b":     true,
		"i":     42,
		"null":  nil,
		"obj":   map[string]any{"a": "b"},
		"slice": []any{"a"},
	}
	assert.Equal(t, "x", *m.String("s"))
	assert.Equal(t, "12", *m.String("f"))
	assert.Equal(t, "1.5", *m.String("frac"))
	assert.Equal(t, "true", *m.String("b"))
	assert.Equal(t, "42", *m.String("i"))
	assert.Nil(t, m.String("null"))
	assert.Nil(t, m.String("obj"))
	assert.Nil(t, m.String("slice"))
	assert.True(t, m.Has("null"))
}

func TestMaps_SkipsNonRecords(t *testing.T) {
	m := Map{
		"credit_cards": []any{
			map[string]any{"token": "a"},
			"garbage",
			nil,
			Map{"token": "b"},
		},
		"not_a_list": "x",
	}
	cards := m.Maps("credit_cards")
	require.Len(t, cards, 2)
	assert.Equal(t, "a", *cards[0].String("token"))
	assert.Equal(t, "b", *cards[1].String("token"))
	assert.Nil(t, m.Maps("not_a_list"))
}

func TestClone_IsDeep(t *testing.T) {
	orig := Map{
		"custom_fields": map[string]any{"k": "v"},
		"list":          []any{map[string]any{"x": "1"}},
	}
	cp := orig.Clone()
	cp.Map("custom_fields")["k"] = "changed"
	cp.Maps("list")[0]["x"] = "2"

	assert.Equal(t, "v", *orig.Map("custom_fields").String("k"))
	assert.Equal(t, "1", *orig.Maps("list")[0].String("x"))
}

func TestKeys_Sorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Map{"c": 1, "a": 2, "b": 3}.Keys())
}

func TestDecodeEncode(t *testing.T) {
	m, err := Decode([]byte(`{"customer":{"id":"123","credit_cards":[{"token":"t1"}],"score":7}}`))
	require.NoError(t, err)
	c := m.Map("customer")
	require.NotNil(t, c)
	assert.Equal(t, "123", *c.String("id"))
	assert.Equal(t, "7", *c.String("score"))
	require.Len(t, c.Maps("credit_cards"), 1)

	b, err := Encode(Map{"customer": Map{"first_name": "Jen", "tags": []string{"a"}}})
	require.NoError(t, err)
	back, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "Jen", *back.Map("customer").String("first_name"))
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	m, err := Decode([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = Decode([]byte("<html>oops</html>"))
	assert.Error(t, err)

	_, err = Decode([]byte(`["not","an","object"]`))
	assert.Error(t, err)
}
