// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyrs

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
)

// Euros is an amount which is given in euros by the clients, either as
// a JSON number (1.5) or as a string ("1.50" or "1,50"), and is kept
// in cents.
type Euros int64

func (e *Euros) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*e = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	s = strings.TrimSpace(strings.TrimSuffix(s, "€"))
	if s == "" {
		*e = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid euros amount: %q", s)
	}
	*e = Euros(math.Round(f * 100))
	return nil
}

type smsTicket struct {
	Plate    string `json:"plate"`
	Zone     string `json:"zone"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Method   string `json:"method"`
	Price    Euros  `json:"price"`
}

type smsReq struct {
	Phone  string     `json:"phone"`
	Ticket *smsTicket `json:"ticket"`
	Locale string     `json:"locale"`
}

func (req *smsReq) Receipt() *model.Receipt {
	t := req.Ticket
	if t == nil {
		return nil
	}
	return &model.Receipt{
		Plate:         t.Plate,
		Zone:          t.Zone,
		Start:         t.Start,
		End:           t.End,
		Duration:      t.Duration,
		Method:        t.Method,
		AmountInCents: int64(t.Price),
	}
}

type whatsAppTicket struct {
	Plate         string `json:"plate"`
	Zone          string `json:"zone"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Duration      string `json:"duration"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        int64  `json:"amount"` // in cents
}

type whatsAppReq struct {
	Phone  string          `json:"phone"`
	Ticket *whatsAppTicket `json:"ticket"`
	Locale string          `json:"locale"`
}

func (req *whatsAppReq) Receipt() *model.Receipt {
	t := req.Ticket
	if t == nil {
		return nil
	}
	return &model.Receipt{
		Plate:         t.Plate,
		Zone:          t.Zone,
		Start:         t.StartTime,
		End:           t.EndTime,
		Duration:      t.Duration,
		Method:        t.PaymentMethod,
		AmountInCents: t.Amount,
	}
}

// ticketReq is the body of the PDF ticket requests. The email requests
// extend it with the recipient and the optional email texts.
type ticketReq struct {
	Plate    string `json:"plate" binding:"max=20"`
	Zone     string `json:"zone" binding:"max=40"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Price    Euros  `json:"price"`
	Discount Euros  `json:"discount"`
	Method   string `json:"method" binding:"max=40"`
	QRData   string `json:"qrData" binding:"max=2048"`
	Locale   string `json:"locale"`
}

func (req *ticketReq) Receipt() *model.Receipt {
	return &model.Receipt{
		Plate:           req.Plate,
		Zone:            req.Zone,
		Start:           req.Start,
		End:             req.End,
		Duration:        req.Duration,
		Method:          req.Method,
		AmountInCents:   int64(req.Price),
		DiscountInCents: int64(req.Discount),
		QRData:          req.QRData,
	}
}

type emailReq struct {
	ticketReq
	RecipientEmail string `json:"recipientEmail" binding:"omitempty,email"`
	CustomSubject  string `json:"customSubject" binding:"max=200"`
	CustomMessage  string `json:"customMessage" binding:"max=2000"`
}

func (req *emailReq) EmailRequest() *notifyuc.EmailRequest {
	return &notifyuc.EmailRequest{
		To:      req.RecipientEmail,
		Receipt: *req.Receipt(),
		Locale:  i18n.Resolve(req.Locale),
		Subject: req.CustomSubject,
		Message: req.CustomMessage,
	}
}

type sentResp struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	MessageID        string `json:"messageId,omitempty"`
	Status           string `json:"status,omitempty"`
	FormattedMessage string `json:"formattedMessage,omitempty"`
	To               string `json:"to,omitempty"`
	Simulated        bool   `json:"simulated,omitempty"`
}

func serSent(msg string, s *notifyuc.Sent) *sentResp {
	return &sentResp{
		Success:          true,
		Message:          msg,
		MessageID:        s.MessageID,
		Status:           s.Status,
		FormattedMessage: s.Body,
		To:               s.To,
		Simulated:        s.Simulated,
	}
}
