// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fixture is an internal helper for the test packages.
// It provides the zones catalog of the kiosk deployment and a few
// receipts, so test suites share the same expectations.
package fixture

import (
	"time"

	"github.com/momeni/parkmock/pkg/core/model"
)

// Ref is a reference instant which is used by rate quote tests.
var Ref = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Zones returns a fresh copy of the blue and green zones catalog.
func Zones() []model.Zone {
	return []model.Zone{
		{
			ID:    "blue",
			Name:  "Zona rosa",
			Color: "#FF0080",
			Blocks: []model.TariffBlock{
				{Minutes: 3, DurationSeconds: 180, PriceInCents: 80},
				{Minutes: 10, DurationSeconds: 600, PriceInCents: 90},
				{Minutes: 25, DurationSeconds: 1500, PriceInCents: 65},
				{Minutes: 120, DurationSeconds: 7200, PriceInCents: 90},
				{Minutes: 180, DurationSeconds: 10800, PriceInCents: 250},
			},
			MaxDurationSeconds: 3600,
		},
		{
			ID:    "green",
			Name:  "Zona verde",
			Color: "#01AE00",
			Blocks: []model.TariffBlock{
				{Minutes: 5, DurationSeconds: 300, PriceInCents: 25},
				{Minutes: 10, DurationSeconds: 600, PriceInCents: 40},
				{Minutes: 15, DurationSeconds: 900, PriceInCents: 60},
				{Minutes: 30, DurationSeconds: 1800, PriceInCents: 100},
				{Minutes: 60, DurationSeconds: 3600, PriceInCents: 180},
			},
			MaxDurationSeconds: 5400,
		},
	}
}

// Receipt returns a receipt of a 90 minutes stay in the green zone.
func Receipt() *model.Receipt {
	return &model.Receipt{
		Plate:         "1234ABC",
		Zone:          "green",
		Start:         "2024-07-01T10:00:00.000Z",
		End:           "2024-07-01T11:30:00.000Z",
		Method:        "card",
		AmountInCents: 250,
		QRData:        "TICKET|1234ABC|green|2024-07-01T10:00:00Z",
	}
}
