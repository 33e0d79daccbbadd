// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Constant classification tags of the rate quotes. The mock only offers
// one product per zone, for cars.
const (
	VehicleTypeCar      = "CAR"
	ProductTypeStandard = "STANDARD"
)

// RateStep is a tariff block rendered with an absolute expiry timestamp
// for a specific pricing query. Field names follow the mobile client
// expectations, including the "minutos" key.
type RateStep struct {
	Minutes                int       `json:"minutos"`
	TimeInSeconds          int64     `json:"timeInSeconds"`
	PriceInCents           int64     `json:"priceInCents"`
	CommissionPriceInCents *int64    `json:"commissionPriceInCents,omitempty"`
	EndDateTime            Timestamp `json:"endDateTime"`
}

// RateSteps is the pricing part of a RateQuote.
type RateSteps struct {
	Steps               []RateStep `json:"steps"`
	FirstStepStartsAt   Timestamp  `json:"firstStepStartsAt"`
	StartTimeInSeconds  int64      `json:"startTimeInSeconds"`
	MinEndTimeInSeconds *int64     `json:"minEndTimeInSeconds"`
	TicketID            int64      `json:"ticketId"`
	PriceRequestedAt    Timestamp  `json:"priceRequestedAt"`
	TimeZone            string     `json:"timeZone"`
	Currency            string     `json:"currency"`
	ErrorMsgList        []string   `json:"errorMsgList"`
	PaymentMethods      []string   `json:"paymentMethods"`
	MaxDurationSeconds  int64      `json:"maxDurationSeconds"`
}

// RateQuote is the full response describing a zone's available rate
// steps plus its metadata.
//
// A RateQuote may be kept as a time-independent base, having zero
// timestamps, and be stamped with a reference instant later. This
// split allows the base to be memoized per zone, while each request
// only pays for the Stamp method.
type RateQuote struct {
	ID                  string    `json:"id"`
	VehicleType         string    `json:"vehicleType"`
	ProductType         string    `json:"productType"`
	AverageStayDuration int       `json:"averageStayDuration"`
	CanDriveOff         bool      `json:"canDriveOff"`
	Extensible          bool      `json:"extensible"`
	ColdDownTime        int       `json:"coldDownTime"`
	Name                string    `json:"name"`
	Color               string    `json:"color"`
	Description         string    `json:"description"`
	RateSteps           RateSteps `json:"rateSteps"`
}

// Stamp returns a copy of the q quote with all time-dependent fields
// computed from the ref reference instant. Every step ends at
// ref + TimeInSeconds; steps are independent offers and not chained.
// The q instance is not modified, so a shared (cached) base quote
// may be stamped concurrently.
func (q *RateQuote) Stamp(ref time.Time) RateQuote {
	sq := *q
	ts := Timestamp(ref)
	steps := make([]RateStep, len(q.RateSteps.Steps))
	for i, s := range q.RateSteps.Steps {
		s.EndDateTime = Timestamp(
			ref.Add(time.Duration(s.TimeInSeconds) * time.Second),
		)
		steps[i] = s
	}
	sq.RateSteps.Steps = steps
	sq.RateSteps.FirstStepStartsAt = ts
	sq.RateSteps.PriceRequestedAt = ts
	sq.RateSteps.ErrorMsgList = append(
		make([]string, 0, len(q.RateSteps.ErrorMsgList)),
		q.RateSteps.ErrorMsgList...,
	)
	sq.RateSteps.PaymentMethods = append(
		make([]string, 0, len(q.RateSteps.PaymentMethods)),
		q.RateSteps.PaymentMethods...,
	)
	return sq
}
