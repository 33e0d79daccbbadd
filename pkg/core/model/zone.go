// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// json tags since the mobile client expects these exact field names and
// duplicating every struct in the adapters layer would only add noise.
package model

// Zone models a parking area with its own tariff configuration.
// Zones are loaded once from the configuration file and are never
// modified afterwards, so they may be shared among goroutines freely.
type Zone struct {
	ID    string // stable key, unique within the catalog
	Name  string // display label
	Color string // UI accent color, like #01AE00

	// Blocks keeps the tariff blocks in their declaration order.
	// That order is exposed to clients as the rate steps order and
	// blocks are neither sorted nor deduplicated.
	Blocks []TariffBlock

	// MaxDurationSeconds is the upper bound of a single stay.
	MaxDurationSeconds int64
}

// TariffBlock is a discrete (duration, price) offer within a zone.
// Prices are kept in minor currency units (cents) and never as floats.
type TariffBlock struct {
	Minutes         int   // nominal length, for display only
	DurationSeconds int64 // authoritative length of the block
	PriceInCents    int64

	// CommissionPriceInCents is present in some zone configurations
	// and absent in others. A nil value means that no commission was
	// configured, which is not the same as a zero commission.
	CommissionPriceInCents *int64
}

// ZoneSummary is the catalog listing item as expected by clients.
type ZoneSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Summary returns the listing representation of z zone.
func (z *Zone) Summary() ZoneSummary {
	return ZoneSummary{ID: z.ID, Name: z.Name, Color: z.Color}
}

// MinEndTimeInSeconds returns the minimum DurationSeconds among the
// z blocks. A zone without blocks has no minimum and nil is returned,
// so it can be serialized as a JSON null.
func (z *Zone) MinEndTimeInSeconds() *int64 {
	if len(z.Blocks) == 0 {
		return nil
	}
	m := z.Blocks[0].DurationSeconds
	for _, b := range z.Blocks[1:] {
		if b.DurationSeconds < m {
			m = b.DurationSeconds
		}
	}
	return &m
}
