// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo defines the ports which the use cases layer expects from
// the adapters layer. Use cases only depend on these interfaces, so
// storage backends, delivery providers, and renderers may be replaced
// (e.g., by fakes in tests) without touching the core logic.
package repo

import (
	"context"
	"errors"

	"github.com/momeni/parkmock/pkg/core/model"
)

// ErrTicketExists indicates that a plate already has a paid ticket.
var ErrTicketExists = errors.New("ticket already exists")

// Tickets represents the paid tickets ledger.
//
// Implementations must be safe for concurrent use. Insert must perform
// its duplicate check and the insertion (including the ticket id
// assignment) as a single atomic step, so two concurrent insertions of
// the same plate cannot both succeed.
type Tickets interface {
	// Insert records plate as paid and returns the stored ticket.
	// If plate is already recorded, ErrTicketExists is returned and
	// the ledger is not modified.
	Insert(ctx context.Context, plate string) (*model.PaidTicket, error)

	// Find returns the ticket of plate or nil if plate has not been
	// paid. A nil error is returned in both cases.
	Find(ctx context.Context, plate string) (*model.PaidTicket, error)

	// Len returns the number of recorded tickets.
	Len(ctx context.Context) (int, error)
}
