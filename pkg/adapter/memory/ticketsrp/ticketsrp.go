// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ticketsrp implements the repo.Tickets interface as an
// in-memory ledger. Tickets are lost when the process exits.
package ticketsrp

import (
	"context"
	"fmt"
	"sync"

	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// Repo is the in-memory paid tickets ledger. The duplicate check, the
// insertion, and the ticket id allocation happen under one mutex, so
// concurrent payments of the same plate record exactly one ticket.
type Repo struct {
	mu      sync.Mutex
	tickets map[string]*model.PaidTicket
	lastID  int64
}

var _ repo.Tickets = (*Repo)(nil)

// New instantiates a ledger which contains the seed plates with
// ticket ids 1 to len(seed) in their given order. New tickets take
// the following ids.
func New(seed ...string) (*Repo, error) {
	r := &Repo{tickets: make(map[string]*model.PaidTicket, len(seed))}
	for _, p := range seed {
		if _, err := r.insert(p); err != nil {
			return nil, fmt.Errorf("seeding %q: %w", p, err)
		}
	}
	return r, nil
}

// Insert records plate with the next ticket id. The ErrTicketExists
// error is returned if plate was recorded before.
func (r *Repo) Insert(_ context.Context, plate string) (*model.PaidTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(plate)
}

func (r *Repo) insert(plate string) (*model.PaidTicket, error) {
	if _, ok := r.tickets[plate]; ok {
		return nil, repo.ErrTicketExists
	}
	r.lastID++
	t := &model.PaidTicket{Plate: plate, TicketID: r.lastID}
	r.tickets[plate] = t
	c := *t
	return &c, nil
}

// Find returns a copy of the plate ticket, or nil if it is missing.
func (r *Repo) Find(_ context.Context, plate string) (*model.PaidTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[plate]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

// Len returns the number of recorded tickets.
func (r *Repo) Len(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tickets), nil
}
