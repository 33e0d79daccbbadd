// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/parkmock/pkg/core/model"
)

// QuoteCache memoizes the time-independent base rate quote of zones.
// Since the catalog is immutable, entries are never invalidated.
type QuoteCache interface {
	// Get returns the cached base quote of zoneID. The boolean
	// return value is false if no entry was found.
	Get(ctx context.Context, zoneID string) (*model.RateQuote, bool, error)

	// Put stores q as the base quote of zoneID.
	Put(ctx context.Context, zoneID string, q *model.RateQuote) error
}
