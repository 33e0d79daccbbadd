// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// PaidTicket is a ledger entry. The plate is its natural key, so at
// most one ticket may exist per plate. Tickets are never updated or
// deleted; once paid, a plate stays valid for the process lifetime.
type PaidTicket struct {
	Plate    string `json:"plate"`
	TicketID int64  `json:"ticketId"`
}

// PayResult reports the outcome of a well-formed pay request.
// A rejected request (e.g., a duplicate plate) has Success=false and
// is not an error from the transport point of view.
type PayResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Validation reports whether a plate has a paid ticket.
// TicketID is only present for valid plates and Message is only
// present for invalid ones.
type Validation struct {
	Valid    bool   `json:"valid"`
	TicketID *int64 `json:"ticketId,omitempty"`
	Message  string `json:"message,omitempty"`
}
