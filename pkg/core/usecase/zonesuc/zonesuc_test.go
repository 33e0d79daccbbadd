// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package zonesuc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/parkmock/internal/test/fixture"
	"github.com/momeni/parkmock/pkg/adapter/memory/quotesrp"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonesKeepCatalogOrder(t *testing.T) {
	uc, err := zonesuc.New(fixture.Zones())
	require.NoError(t, err)
	assert.Equal(t, []model.ZoneSummary{
		{ID: "blue", Name: "Zona rosa", Color: "#FF0080"},
		{ID: "green", Name: "Zona verde", Color: "#01AE00"},
	}, uc.Zones())

	empty, err := zonesuc.New(nil)
	require.NoError(t, err)
	b, err := json.Marshal(empty.Zones())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestNewRejectsDuplicateZones(t *testing.T) {
	zones := append(fixture.Zones(), model.Zone{ID: "blue"})
	_, err := zonesuc.New(zones)
	assert.Error(t, err)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := zonesuc.New(nil, zonesuc.WithCurrency("EURO"))
	assert.Error(t, err)
	_, err = zonesuc.New(nil, zonesuc.WithPaymentMethods())
	assert.Error(t, err)
	_, err = zonesuc.New(nil,
		zonesuc.WithQuoteCache(quotesrp.New()),
		zonesuc.WithQuoteCache(quotesrp.New()),
	)
	assert.Error(t, err)
}

func TestGenerateSteps(t *testing.T) {
	zones := fixture.Zones()
	steps := zonesuc.GenerateSteps(&zones[1], fixture.Ref)
	require.Len(t, steps, len(zones[1].Blocks))
	for i, s := range steps {
		b := zones[1].Blocks[i]
		assert.Equal(t, b.Minutes, s.Minutes)
		assert.Equal(t, b.DurationSeconds, s.TimeInSeconds)
		assert.Equal(t, b.PriceInCents, s.PriceInCents)
		assert.Equal(t,
			fixture.Ref.Add(time.Duration(b.DurationSeconds)*time.Second),
			s.EndDateTime.Time(),
		)
	}

	none := zonesuc.GenerateSteps(&model.Zone{ID: "x"}, fixture.Ref)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

// unsortedZone lists its blocks out of duration order, with a repeated
// duration, and its shortest block is not the first one.
func unsortedZone() model.Zone {
	return model.Zone{
		ID: "mixed", Name: "Zona mixta", Color: "#123456",
		MaxDurationSeconds: 3600,
		Blocks: []model.TariffBlock{
			{Minutes: 10, DurationSeconds: 600, PriceInCents: 50},
			{Minutes: 3, DurationSeconds: 180, PriceInCents: 20},
			{Minutes: 10, DurationSeconds: 600, PriceInCents: 55},
			{Minutes: 60, DurationSeconds: 3600, PriceInCents: 200},
		},
	}
}

func TestUnsortedBlocksKeepTheirOrder(t *testing.T) {
	uc, err := zonesuc.New([]model.Zone{unsortedZone()})
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "mixed", fixture.Ref)
	require.Len(t, qs, 1)
	rs := qs[0].RateSteps
	require.NotNil(t, rs.MinEndTimeInSeconds)
	assert.Equal(t, int64(180), *rs.MinEndTimeInSeconds)

	wantSecs := []int64{600, 180, 600, 3600}
	wantPrices := []int64{50, 20, 55, 200}
	require.Len(t, rs.Steps, len(wantSecs))
	for i, s := range rs.Steps {
		assert.Equal(t, wantSecs[i], s.TimeInSeconds, "step %d", i)
		assert.Equal(t, wantPrices[i], s.PriceInCents, "step %d", i)
		assert.Equal(t,
			fixture.Ref.Add(time.Duration(wantSecs[i])*time.Second),
			s.EndDateTime.Time(), "step %d", i,
		)
	}
}

func TestRateOfGreenZone(t *testing.T) {
	uc, err := zonesuc.New(fixture.Zones())
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "green", fixture.Ref)
	require.Len(t, qs, 1)
	q := qs[0]
	assert.Equal(t, "green", q.ID)
	assert.Equal(t, "CAR", q.VehicleType)
	assert.Equal(t, "STANDARD", q.ProductType)
	assert.Equal(t, 30, q.AverageStayDuration)
	assert.True(t, q.CanDriveOff)
	assert.True(t, q.Extensible)
	assert.Equal(t, 120, q.ColdDownTime)
	assert.Equal(t, "Zona verde - Tarifa por bloques", q.Description)
	rs := q.RateSteps
	assert.Equal(t, fixture.Ref, rs.FirstStepStartsAt.Time())
	assert.Equal(t, fixture.Ref, rs.PriceRequestedAt.Time())
	assert.Equal(t, int64(0), rs.StartTimeInSeconds)
	require.NotNil(t, rs.MinEndTimeInSeconds)
	assert.Equal(t, int64(300), *rs.MinEndTimeInSeconds)
	assert.Equal(t, int64(1), rs.TicketID)
	assert.Equal(t, "Europe/Madrid", rs.TimeZone)
	assert.Equal(t, "EUR", rs.Currency)
	assert.Equal(t, []string{}, rs.ErrorMsgList)
	assert.Equal(t, []string{"CASH", "BIZUM", "CARD"}, rs.PaymentMethods)
	assert.Equal(t, int64(5400), rs.MaxDurationSeconds)
	assert.Equal(t,
		"2024-07-01T10:05:00.000Z", rs.Steps[0].EndDateTime.String(),
	)
	assert.Equal(t,
		"2024-07-01T11:00:00.000Z", rs.Steps[4].EndDateTime.String(),
	)
}

func TestRateOfUnknownZoneIsEmpty(t *testing.T) {
	uc, err := zonesuc.New(fixture.Zones())
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "purple", fixture.Ref)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestRateOfZoneWithoutBlocks(t *testing.T) {
	uc, err := zonesuc.New([]model.Zone{{
		ID: "empty", Name: "Empty", Color: "#000000",
		MaxDurationSeconds: 60,
	}})
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "empty", fixture.Ref)
	require.Len(t, qs, 1)
	b, err := json.Marshal(qs[0].RateSteps)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, []any{}, m["steps"])
	assert.Contains(t, m, "minEndTimeInSeconds")
	assert.Nil(t, m["minEndTimeInSeconds"])
}

func TestCommissionIsOptional(t *testing.T) {
	zones := []model.Zone{{
		ID: "c", Name: "C", Color: "#111111", MaxDurationSeconds: 600,
		Blocks: []model.TariffBlock{
			{Minutes: 1, DurationSeconds: 60, PriceInCents: 10},
			{
				Minutes: 2, DurationSeconds: 120, PriceInCents: 20,
				CommissionPriceInCents: fixture.Ptr[int64](0),
			},
		},
	}}
	uc, err := zonesuc.New(zones)
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "c", fixture.Ref)
	require.Len(t, qs, 1)
	b, err := json.Marshal(qs[0].RateSteps.Steps)
	require.NoError(t, err)
	var steps []map[string]any
	require.NoError(t, json.Unmarshal(b, &steps))
	assert.NotContains(t, steps[0], "commissionPriceInCents")
	assert.Equal(t, float64(0), steps[1]["commissionPriceInCents"])
	assert.Equal(t, float64(1), steps[0]["minutos"])
}

func TestCachedRateMatchesUncached(t *testing.T) {
	ctx := context.Background()
	zones := append(fixture.Zones(), unsortedZone())
	plain, err := zonesuc.New(zones)
	require.NoError(t, err)
	cache := quotesrp.New()
	cached, err := zonesuc.New(zones, zonesuc.WithQuoteCache(cache))
	require.NoError(t, err)

	refs := []time.Time{fixture.Ref, fixture.Ref.Add(time.Hour)}
	for _, zone := range []string{"blue", "mixed"} {
		for i, ref := range refs {
			want, err := json.Marshal(plain.Rate(ctx, zone, ref))
			require.NoError(t, err)
			got, err := json.Marshal(cached.Rate(ctx, zone, ref))
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got), "%s #%d", zone, i)
			assert.Equal(t, string(want), string(got), "%s #%d", zone, i)
		}
	}
	assert.Equal(t, 2, cache.Len())

	rs := cached.Rate(ctx, "mixed", fixture.Ref)[0].RateSteps
	require.NotNil(t, rs.MinEndTimeInSeconds)
	assert.Equal(t, int64(180), *rs.MinEndTimeInSeconds)
	assert.Equal(t, int64(600), rs.Steps[0].TimeInSeconds)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*model.RateQuote, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Put(context.Context, string, *model.RateQuote) error {
	return errors.New("connection refused")
}

func TestBrokenCacheIsBypassed(t *testing.T) {
	uc, err := zonesuc.New(fixture.Zones(), zonesuc.WithQuoteCache(brokenCache{}))
	require.NoError(t, err)
	qs := uc.Rate(context.Background(), "green", fixture.Ref)
	require.Len(t, qs, 1)
	assert.Len(t, qs[0].RateSteps.Steps, 5)
}

func TestCustomProductAttributes(t *testing.T) {
	uc, err := zonesuc.New(fixture.Zones(),
		zonesuc.WithPaymentMethods("CARD"),
		zonesuc.WithTimeZone("Europe/Lisbon"),
		zonesuc.WithCurrency("USD"),
		zonesuc.WithAverageStayDuration(45),
		zonesuc.WithColdDownTime(0),
		zonesuc.WithFlags(false, true),
	)
	require.NoError(t, err)
	q := uc.Rate(context.Background(), "blue", fixture.Ref)[0]
	assert.Equal(t, []string{"CARD"}, q.RateSteps.PaymentMethods)
	assert.Equal(t, "Europe/Lisbon", q.RateSteps.TimeZone)
	assert.Equal(t, "USD", q.RateSteps.Currency)
	assert.Equal(t, 45, q.AverageStayDuration)
	assert.Equal(t, 0, q.ColdDownTime)
	assert.False(t, q.CanDriveOff)
	assert.True(t, q.Extensible)
}
