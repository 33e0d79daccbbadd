// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ticketsuc contains the tickets UseCase which supports the
// paid tickets related use cases. Currently, two uses cases are
// supported:
//  1. Paying the ticket of a plate,
//  2. Validating whether a plate has a paid ticket.
package ticketsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// Messages which are reported to the kiosk clients.
const (
	MsgMissingPlate   = "Falta matrícula"
	MsgTicketExists   = "Ticket ya existe"
	MsgTicketSaved    = "Ticket guardado"
	MsgTicketNotFound = "Ticket no encontrado"
)

// ErrMissingPlate indicates that an empty or blank plate was given.
var ErrMissingPlate = errors.New(MsgMissingPlate)

// UseCase represents a tickets use case. It holds the paid tickets
// ledger, which is responsible for the atomicity of its operations.
type UseCase struct {
	ticketsrp repo.Tickets
}

// New instantiates a tickets use case.
func New(t repo.Tickets) (*UseCase, error) {
	if t == nil {
		return nil, errors.New("tickets repository is nil")
	}
	return &UseCase{ticketsrp: t}, nil
}

// Pay use case records the plate as paid. A blank plate is rejected
// with a bad request error. Paying an already paid plate is not an
// error, but is reported with a false Success field and leaves the
// ledger unchanged.
func (tickets *UseCase) Pay(ctx context.Context, plate string) (*model.PayResult, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, cerr.BadRequest(ErrMissingPlate)
	}
	t, err := tickets.ticketsrp.Insert(ctx, plate)
	switch {
	case errors.Is(err, repo.ErrTicketExists):
		log.Info(ctx, "duplicate ticket payment", log.Plate(plate))
		return &model.PayResult{Success: false, Message: MsgTicketExists}, nil
	case err != nil:
		return nil, fmt.Errorf("inserting ticket: %w", err)
	}
	log.Info(ctx, "ticket paid",
		log.Plate(t.Plate), slog.Int64("ticketId", t.TicketID),
	)
	return &model.PayResult{Success: true, Message: MsgTicketSaved}, nil
}

// Validate use case reports whether plate has a paid ticket. Unknown
// plates, including blank ones, are reported as invalid.
func (tickets *UseCase) Validate(ctx context.Context, plate string) (*model.Validation, error) {
	t, err := tickets.ticketsrp.Find(ctx, strings.TrimSpace(plate))
	if err != nil {
		return nil, fmt.Errorf("finding ticket: %w", err)
	}
	if t == nil {
		return &model.Validation{Valid: false, Message: MsgTicketNotFound}, nil
	}
	id := t.TicketID
	return &model.Validation{Valid: true, TicketID: &id}, nil
}

// Count returns the number of paid tickets.
func (tickets *UseCase) Count(ctx context.Context) (int, error) {
	return tickets.ticketsrp.Len(ctx)
}
