// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/momeni/parkmock/pkg/adapter/config/settings"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
)

var colorRE = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Catalog contains the zones catalog and the settings which are shared
// by all rate quotes. Missing settings take the values which the kiosk
// clients were built against.
type Catalog struct {
	TimeZone       *string  `yaml:"time-zone"`
	Currency       *string  `yaml:"currency"`
	PaymentMethods []string `yaml:"payment-methods"`

	// AverageStay is the advisory average stay in minutes.
	AverageStay *int `yaml:"average-stay-minutes"`
	// ColdDown is the cooldown between two purchases in seconds.
	ColdDown *int `yaml:"cold-down-seconds"`

	CanDriveOff *bool `yaml:"can-drive-off"`
	Extensible  *bool `yaml:"extensible"`

	// Zones are exposed in their declaration order. An empty list
	// is replaced by DefaultZones.
	Zones []Zone `yaml:"zones"`
}

// Zone is a parking zone of the catalog.
type Zone struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	Color              string  `yaml:"color"`
	MaxDurationSeconds int64   `yaml:"max-duration-seconds"`
	Blocks             []Block `yaml:"blocks"`
}

// Block is a tariff block of a zone. A zero DurationSeconds is filled
// from Minutes.
type Block struct {
	Minutes                int    `yaml:"minutes"`
	DurationSeconds        int64  `yaml:"duration-seconds,omitempty"`
	PriceInCents           int64  `yaml:"price-in-cents"`
	CommissionPriceInCents *int64 `yaml:"commission-price-in-cents,omitempty"`
}

// DefaultZones returns the catalog which is served when the
// configuration file does not list any zones.
func DefaultZones() []Zone {
	block := func(minutes int, cents int64) Block {
		return Block{
			Minutes:         minutes,
			DurationSeconds: int64(minutes) * 60,
			PriceInCents:    cents,
		}
	}
	return []Zone{
		{
			ID:                 "blue",
			Name:               "Zona rosa",
			Color:              "#FF0080",
			MaxDurationSeconds: 3600,
			Blocks: []Block{
				block(3, 80), block(10, 90), block(25, 65),
				block(120, 90), block(180, 250),
			},
		},
		{
			ID:                 "green",
			Name:               "Zona verde",
			Color:              "#01AE00",
			MaxDurationSeconds: 5400,
			Blocks: []Block{
				block(5, 25), block(10, 40), block(15, 60),
				block(30, 100), block(60, 180),
			},
		},
	}
}

// ValidateAndNormalize fills the missing catalog settings with their
// defaults and checks that zones are well formed. Zone ids must be
// unique and non-empty, names must be present, colors must look like
// #RRGGBB, blocks must have positive durations and non-negative prices,
// and the maximum stay must be positive.
func (c *Catalog) ValidateAndNormalize() error {
	settings.Default(&c.TimeZone, "Europe/Madrid")
	settings.Default(&c.Currency, "EUR")
	settings.Default(&c.AverageStay, 30)
	settings.Default(&c.ColdDown, 120)
	settings.Default(&c.CanDriveOff, true)
	settings.Default(&c.Extensible, true)
	if len(c.PaymentMethods) == 0 {
		c.PaymentMethods = []string{"CASH", "BIZUM", "CARD"}
	}
	if _, err := time.LoadLocation(*c.TimeZone); err != nil {
		return fmt.Errorf("loading time zone %q: %w", *c.TimeZone, err)
	}
	if len(*c.Currency) != 3 {
		return fmt.Errorf("currency %q is not an ISO 4217 code", *c.Currency)
	}
	*c.Currency = strings.ToUpper(*c.Currency)
	if *c.AverageStay <= 0 {
		return fmt.Errorf("average stay (%d) must be positive", *c.AverageStay)
	}
	if *c.ColdDown < 0 {
		return fmt.Errorf("cold down (%d) must not be negative", *c.ColdDown)
	}
	for i, p := range c.PaymentMethods {
		pm, err := model.ParsePaymentMethod(p)
		if err != nil {
			return fmt.Errorf("payment method %q: %w", p, err)
		}
		c.PaymentMethods[i] = pm.Code()
	}
	if len(c.Zones) == 0 {
		c.Zones = DefaultZones()
	}
	seen := make(map[string]bool, len(c.Zones))
	for i := range c.Zones {
		z := &c.Zones[i]
		if err := z.validateAndNormalize(); err != nil {
			return fmt.Errorf("zones[%d]: %w", i, err)
		}
		if seen[z.ID] {
			return fmt.Errorf("zones[%d]: duplicate zone id %q", i, z.ID)
		}
		seen[z.ID] = true
	}
	return nil
}

func (z *Zone) validateAndNormalize() error {
	z.ID = strings.TrimSpace(z.ID)
	switch {
	case z.ID == "":
		return errors.New("zone id is empty")
	case strings.TrimSpace(z.Name) == "":
		return fmt.Errorf("zone %q has no name", z.ID)
	case !colorRE.MatchString(z.Color):
		return fmt.Errorf("zone %q color %q is not #RRGGBB", z.ID, z.Color)
	case z.MaxDurationSeconds <= 0:
		return fmt.Errorf("zone %q max duration must be positive", z.ID)
	}
	for i := range z.Blocks {
		b := &z.Blocks[i]
		if b.DurationSeconds == 0 {
			b.DurationSeconds = int64(b.Minutes) * 60
		}
		if b.DurationSeconds <= 0 {
			return fmt.Errorf(
				"zone %q blocks[%d] duration must be positive", z.ID, i,
			)
		}
		if b.PriceInCents < 0 {
			return fmt.Errorf(
				"zone %q blocks[%d] price must not be negative", z.ID, i,
			)
		}
		if cp := b.CommissionPriceInCents; cp != nil && *cp < 0 {
			return fmt.Errorf(
				"zone %q blocks[%d] commission must not be negative",
				z.ID, i,
			)
		}
	}
	return nil
}

// Model converts the catalog zones to their model representation.
func (c *Catalog) Model() []model.Zone {
	zones := make([]model.Zone, 0, len(c.Zones))
	for _, z := range c.Zones {
		mz := model.Zone{
			ID:                 z.ID,
			Name:               z.Name,
			Color:              z.Color,
			MaxDurationSeconds: z.MaxDurationSeconds,
			Blocks:             make([]model.TariffBlock, 0, len(z.Blocks)),
		}
		for _, b := range z.Blocks {
			tb := model.TariffBlock{
				Minutes:         b.Minutes,
				DurationSeconds: b.DurationSeconds,
				PriceInCents:    b.PriceInCents,
			}
			settings.OverwriteUnconditionally(
				&tb.CommissionPriceInCents, b.CommissionPriceInCents,
			)
			mz.Blocks = append(mz.Blocks, tb)
		}
		zones = append(zones, mz)
	}
	return zones
}

// Location returns the catalog time zone. It may only be called after
// a successful ValidateAndNormalize.
func (c *Catalog) Location() *time.Location {
	tz, err := time.LoadLocation(*c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return tz
}

// NewUseCase instantiates a new zones use case based on the settings
// in the `c` struct. The qc quotes cache may be nil.
func (c *Catalog) NewUseCase(qc repo.QuoteCache) (*zonesuc.UseCase, error) {
	opts := []zonesuc.Option{
		zonesuc.WithTimeZone(*c.TimeZone),
		zonesuc.WithCurrency(*c.Currency),
		zonesuc.WithPaymentMethods(c.PaymentMethods...),
		zonesuc.WithAverageStayDuration(*c.AverageStay),
		zonesuc.WithColdDownTime(*c.ColdDown),
		zonesuc.WithFlags(*c.CanDriveOff, *c.Extensible),
	}
	if qc != nil {
		opts = append(opts, zonesuc.WithQuoteCache(qc))
	}
	return zonesuc.New(c.Model(), opts...)
}
