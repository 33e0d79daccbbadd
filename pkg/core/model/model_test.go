// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampMatchesISOString(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	ts := model.Timestamp(time.Date(2024, 7, 1, 12, 30, 5, 42e6, loc))
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-01T10:30:05.042Z"`, string(b))

	var back model.Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, ts.Time().Equal(back.Time()))
}

func TestMinEndTimeInSeconds(t *testing.T) {
	z := &model.Zone{Blocks: []model.TariffBlock{
		{DurationSeconds: 600},
		{DurationSeconds: 180},
		{DurationSeconds: 1500},
	}}
	m := z.MinEndTimeInSeconds()
	require.NotNil(t, m)
	assert.Equal(t, int64(180), *m)

	empty := &model.Zone{}
	assert.Nil(t, empty.MinEndTimeInSeconds())
}

func TestStampDoesNotChainSteps(t *testing.T) {
	base := &model.RateQuote{RateSteps: model.RateSteps{
		Steps: []model.RateStep{
			{TimeInSeconds: 300},
			{TimeInSeconds: 60},
		},
		ErrorMsgList:   []string{},
		PaymentMethods: []string{"CASH"},
	}}
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q := base.Stamp(ref)
	assert.Equal(t, ref.Add(5*time.Minute), q.RateSteps.Steps[0].EndDateTime.Time())
	assert.Equal(t, ref.Add(time.Minute), q.RateSteps.Steps[1].EndDateTime.Time())
	assert.Equal(t, ref, q.RateSteps.FirstStepStartsAt.Time())
	assert.Equal(t, ref, q.RateSteps.PriceRequestedAt.Time())
	assert.True(t, base.RateSteps.Steps[0].EndDateTime.Time().IsZero(),
		"base quote must not be modified")
}

func TestPaymentMethod(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want model.PaymentMethod
		code string
	}{
		{"cash", model.PaymentMethodCash, "CASH"},
		{"BIZUM", model.PaymentMethodBizum, "BIZUM"},
		{" Card ", model.PaymentMethodCard, "CARD"},
		{"qr", model.PaymentMethodQR, "QR"},
		{"mobile", model.PaymentMethodMobile, "MOBILE"},
	} {
		p, err := model.ParsePaymentMethod(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, p)
		assert.Equal(t, tc.code, p.Code())
		assert.NoError(t, p.Validate())
	}
	_, err := model.ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, model.ErrUnknownPaymentMethod)
	assert.Error(t, model.PaymentMethodInvalid.Validate())
}

func TestSemVer(t *testing.T) {
	var sv model.SemVer
	require.NoError(t, sv.UnmarshalText([]byte("1.2")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv)
	assert.Error(t, sv.UnmarshalText([]byte("1.x")))
	assert.Error(t, sv.UnmarshalText([]byte("1.2.3.4")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv, "must be left unchanged")
	assert.True(t, model.SemVer{1, 0, 9}.Less(model.SemVer{1, 1, 0}))
	assert.False(t, model.SemVer{1, 1, 0}.Less(model.SemVer{1, 1, 0}))
}
