// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyrs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEurosAcceptsNumbersAndStrings(t *testing.T) {
	for in, cents := range map[string]Euros{
		`3.5`:       350,
		`"1.50"`:    150,
		`"1,50"`:    150,
		`"2,05 €"`:  205,
		`0.1`:       10,
		`null`:      0,
		`""`:        0,
		`12`:        1200,
		`"  0.99 "`: 99,
	} {
		var e Euros
		require.NoError(t, json.Unmarshal([]byte(in), &e), in)
		assert.Equal(t, cents, e, in)
	}
	var e Euros
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`"NaN"`), &e))
}

func TestEmailRequestResolvesLocale(t *testing.T) {
	req := &emailReq{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"recipientEmail": "a@example.com",
		"plate": "1234ABC",
		"price": "3,50",
		"discount": 0.5,
		"locale": "en_GB",
		"customMessage": "hi"
	}`), req))
	er := req.EmailRequest()
	assert.Equal(t, "a@example.com", er.To)
	assert.Equal(t, "en", string(er.Locale))
	assert.Equal(t, int64(350), er.Receipt.AmountInCents)
	assert.Equal(t, int64(50), er.Receipt.DiscountInCents)
	assert.Equal(t, "hi", er.Message)
}
