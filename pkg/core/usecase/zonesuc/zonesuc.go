// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package zonesuc contains the zones UseCase which supports the
// parking zones related use cases:
//  1. Listing the zones catalog,
//  2. Quoting the tariff steps of a zone at a reference instant.
//
// The catalog is provided once and never changes afterwards, so the
// use case may be shared by concurrent requests without locking.
package zonesuc

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// DescriptionSuffix is appended to the zone name in order to build
// the description of its rate quote.
const DescriptionSuffix = " - Tarifa por bloques"

// TicketIDPlaceholder is reported as the ticketId of all rate quotes
// because a quote is computed before any ticket is purchased.
const TicketIDPlaceholder = 1

// UseCase represents a zones use case. It holds the immutable zones
// catalog, an optional cache of assembled quotes, and the constant
// product attributes which are reported by rate quotes.
type UseCase struct {
	zones []model.Zone
	byID  map[string]int
	cache repo.QuoteCache

	paymentMethods []string
	timeZone       string
	currency       string
	averageStay    int
	coldDown       *int
	canDriveOff    *bool
	extensible     *bool
}

// New instantiates a zones use case for the zones catalog.
// The catalog must have unique zone identifiers, and its order is
// preserved in all listings. Optional parameters are passed as a
// series of functional options and missing ones take their defaults.
func New(zones []model.Zone, opts ...Option) (*UseCase, error) {
	uc := &UseCase{
		zones: append([]model.Zone{}, zones...),
		byID:  make(map[string]int, len(zones)),
	}
	for i, z := range uc.zones {
		if _, dup := uc.byID[z.ID]; dup {
			return nil, fmt.Errorf("duplicate zone id: %q", z.ID)
		}
		uc.byID[z.ID] = i
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.paymentMethods == nil {
		uc.paymentMethods = []string{
			model.PaymentMethodCash.Code(),
			model.PaymentMethodBizum.Code(),
			model.PaymentMethodCard.Code(),
		}
	}
	if uc.timeZone == "" {
		uc.timeZone = "Europe/Madrid"
	}
	if uc.currency == "" {
		uc.currency = "EUR"
	}
	if uc.averageStay == 0 {
		uc.averageStay = 30
	}
	if uc.coldDown == nil {
		cd := 120
		uc.coldDown = &cd
	}
	if uc.canDriveOff == nil {
		t := true
		uc.canDriveOff, uc.extensible = &t, &t
	}
	return uc, nil
}

// Zones returns the summary of all zones in their catalog order.
// The returned slice is never nil.
func (zs *UseCase) Zones() []model.ZoneSummary {
	s := make([]model.ZoneSummary, 0, len(zs.zones))
	for i := range zs.zones {
		s = append(s, zs.zones[i].Summary())
	}
	return s
}

// Zone returns the zid zone and true, or false if it does not exist.
func (zs *UseCase) Zone(zid string) (*model.Zone, bool) {
	i, ok := zs.byID[zid]
	if !ok {
		return nil, false
	}
	z := zs.zones[i]
	return &z, true
}

// TimeZone returns the IANA time zone name of quotes and receipts.
func (zs *UseCase) TimeZone() string {
	return zs.timeZone
}

// GenerateSteps computes one rate step per tariff block of z, in the
// blocks order. Every step ends at ref plus its own block duration, so
// steps are alternatives and do not accumulate. A zone without blocks
// yields an empty but non-nil slice.
func GenerateSteps(z *model.Zone, ref time.Time) []model.RateStep {
	steps := make([]model.RateStep, 0, len(z.Blocks))
	for _, b := range z.Blocks {
		steps = append(steps, model.RateStep{
			Minutes:                b.Minutes,
			TimeInSeconds:          b.DurationSeconds,
			PriceInCents:           b.PriceInCents,
			CommissionPriceInCents: b.CommissionPriceInCents,
			EndDateTime: model.Timestamp(ref.Add(
				time.Duration(b.DurationSeconds) * time.Second,
			)),
		})
	}
	return steps
}

// Assemble builds the time-independent base quote of z. Its timestamps
// are left as zero values and must be filled by model.RateQuote.Stamp
// before being reported.
func (zs *UseCase) Assemble(z *model.Zone) *model.RateQuote {
	return &model.RateQuote{
		ID:                  z.ID,
		VehicleType:         model.VehicleTypeCar,
		ProductType:         model.ProductTypeStandard,
		AverageStayDuration: zs.averageStay,
		CanDriveOff:         *zs.canDriveOff,
		Extensible:          *zs.extensible,
		ColdDownTime:        *zs.coldDown,
		Name:                z.Name,
		Color:               z.Color,
		Description:         z.Name + DescriptionSuffix,
		RateSteps: model.RateSteps{
			Steps:               GenerateSteps(z, time.Time{}),
			StartTimeInSeconds:  0,
			MinEndTimeInSeconds: z.MinEndTimeInSeconds(),
			TicketID:            TicketIDPlaceholder,
			TimeZone:            zs.timeZone,
			Currency:            zs.currency,
			ErrorMsgList:        []string{},
			PaymentMethods:      append([]string{}, zs.paymentMethods...),
			MaxDurationSeconds:  z.MaxDurationSeconds,
		},
	}
}

// Rate use case quotes the zid zone at the ref instant. It returns a
// list with exactly one rate quote, or an empty list if zid is not a
// known zone. The list form is kept because clients iterate over it.
//
// When a quote cache is configured, the base quote is looked up there
// first. Cache failures are logged and the quote is assembled again,
// so they never fail the request.
func (zs *UseCase) Rate(ctx context.Context, zid string, ref time.Time) []model.RateQuote {
	z, ok := zs.Zone(zid)
	if !ok {
		return []model.RateQuote{}
	}
	base := zs.base(ctx, z)
	return []model.RateQuote{base.Stamp(ref)}
}

func (zs *UseCase) base(ctx context.Context, z *model.Zone) *model.RateQuote {
	if zs.cache == nil {
		return zs.Assemble(z)
	}
	q, ok, err := zs.cache.Get(ctx, z.ID)
	switch {
	case err != nil:
		log.Warn(ctx, "reading cached quote failed",
			log.Err("err", err), log.Zone(z.ID),
		)
	case ok:
		return q
	}
	q = zs.Assemble(z)
	if err := zs.cache.Put(ctx, z.ID, q); err != nil {
		log.Warn(ctx, "caching quote failed",
			log.Err("err", err), log.Zone(z.ID),
		)
	}
	return q
}
