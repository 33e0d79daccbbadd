// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notifyuc contains the notifications UseCase which reports
// purchased parking tickets to their customers. Supported use cases
// are:
//  1. Sending an SMS receipt,
//  2. Sending a WhatsApp receipt (possibly simulated),
//  3. Sending an email receipt with an attached PDF ticket,
//  4. Rendering the PDF ticket itself.
//
// These use cases are independent of the tickets ledger, so a failed
// delivery never affects a payment.
package notifyuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// Machine readable error codes of the notification endpoints.
const (
	CodeMissingData       = "MISSING_DATA"
	CodeInvalidPhone      = "INVALID_PHONE"
	CodeNotMobile         = "NOT_MOBILE"
	CodeNotVerified       = "NOT_VERIFIED"
	CodeTwilioUnavailable = "TWILIO_NOT_CONFIGURED"
	CodeMailerUnavailable = "MAILER_NOT_CONFIGURED"
	CodeInternal          = "INTERNAL_ERROR"
)

// Twilio error codes which are reported with a dedicated code.
const (
	twilioInvalidNumber = 21211
	twilioNotMobile     = 21614
	twilioUnverified    = 21610
)

// StatusSimulated is the delivery status of simulated messages.
const StatusSimulated = "simulated"

var e164 = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// ValidPhone reports whether phone is an E.164 phone number.
func ValidPhone(phone string) bool {
	return e164.MatchString(phone)
}

// Sent describes an accepted delivery.
type Sent struct {
	MessageID string
	Status    string
	Body      string // formatted text of text messages
	To        string
	Simulated bool
}

// UseCase represents a notifications use case. The PDF renderer is
// mandatory while all delivery channels are optional.
type UseCase struct {
	renderer repo.Renderer
	sms      repo.TextSender
	whatsapp repo.TextSender
	mailer   repo.Mailer

	tz      *time.Location
	timeout time.Duration
	now     func() time.Time
}

// New instantiates a notifications use case.
func New(r repo.Renderer, opts ...Option) (*UseCase, error) {
	if r == nil {
		return nil, errors.New("renderer is nil")
	}
	uc := &UseCase{renderer: r}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.tz == nil {
		uc.tz = time.UTC
	}
	if uc.timeout == 0 {
		uc.timeout = 10 * time.Second
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// SMSFrom returns the SMS sender number, or an empty string if SMS
// deliveries are not configured.
func (n *UseCase) SMSFrom() string {
	if n.sms == nil {
		return ""
	}
	return n.sms.From()
}

// MailerName returns the configured mailer kind, or "none".
func (n *UseCase) MailerName() string {
	if n.mailer == nil {
		return "none"
	}
	return n.mailer.Name()
}

// SendSMS use case formats r in the loc locale and sends it to the
// phone E.164 number as an SMS.
func (n *UseCase) SendSMS(ctx context.Context, phone string, r *model.Receipt, loc model.Locale) (*Sent, error) {
	if phone == "" || r == nil {
		return nil, cerr.BadRequest(
			errors.New("Phone and ticket data are required"),
		).WithCode(CodeMissingData)
	}
	if !ValidPhone(phone) {
		return nil, cerr.BadRequest(
			errors.New("Invalid phone number format"),
		).WithCode(CodeInvalidPhone)
	}
	if n.sms == nil {
		return nil, cerr.Internal(
			errors.New("Twilio not configured"),
		).WithCode(CodeTwilioUnavailable)
	}
	body := SMSBody(r, loc, n.tz)
	log.Info(ctx, "sending SMS",
		log.Phone(phone), slog.Int("length", len(body)),
	)
	d, err := n.send(ctx, n.sms, repo.TextMessage{To: phone, Body: body})
	if err != nil {
		log.Error(ctx, "sending SMS failed",
			log.Phone(phone), log.Err("err", err),
		)
		return nil, mapProviderError(err)
	}
	log.Info(ctx, "SMS sent", slog.String("sid", d.MessageID))
	return &Sent{
		MessageID: d.MessageID,
		Status:    d.Status,
		Body:      body,
		To:        phone,
	}, nil
}

// SendWhatsApp use case formats r in the loc locale and sends it as
// a WhatsApp message. Without a configured WhatsApp sender, the
// message is only logged and a simulated delivery is reported. The
// phone number is optional in that case.
func (n *UseCase) SendWhatsApp(ctx context.Context, phone string, r *model.Receipt, loc model.Locale) (*Sent, error) {
	if r == nil {
		return nil, cerr.BadRequest(
			errors.New("Ticket data is required"),
		).WithCode(CodeMissingData)
	}
	if phone != "" && !ValidPhone(phone) {
		return nil, cerr.BadRequest(
			errors.New("Invalid phone number format"),
		).WithCode(CodeInvalidPhone)
	}
	body := WhatsAppBody(r, loc, n.tz)
	if n.whatsapp == nil {
		log.Info(ctx, "simulating WhatsApp message",
			log.Phone(phone), slog.String("body", body),
		)
		return &Sent{
			MessageID: uuid.NewString(),
			Status:    StatusSimulated,
			Body:      body,
			To:        phone,
			Simulated: true,
		}, nil
	}
	if phone == "" {
		return nil, cerr.BadRequest(
			errors.New("Phone and ticket data are required"),
		).WithCode(CodeMissingData)
	}
	d, err := n.send(ctx, n.whatsapp, repo.TextMessage{To: phone, Body: body})
	if err != nil {
		log.Error(ctx, "sending WhatsApp message failed",
			log.Phone(phone), log.Err("err", err),
		)
		return nil, mapProviderError(err)
	}
	return &Sent{
		MessageID: d.MessageID,
		Status:    d.Status,
		Body:      body,
		To:        phone,
	}, nil
}

func (n *UseCase) send(ctx context.Context, s repo.TextSender, m repo.TextMessage) (*repo.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	return s.Send(ctx, m)
}

// SendEmail use case renders the PDF ticket of req, and sends it to
// the req recipient along with a localized HTML body.
func (n *UseCase) SendEmail(ctx context.Context, req *EmailRequest) (*Sent, error) {
	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Receipt.Plate) == "" {
		return nil, cerr.BadRequest(
			errors.New("Recipient email and plate are required"),
		).WithCode(CodeMissingData)
	}
	if n.mailer == nil {
		return nil, cerr.Unavailable(
			errors.New("Email delivery is not configured"),
		).WithCode(CodeMailerUnavailable)
	}
	pdf, err := n.RenderPDF(ctx, &req.Receipt, req.Locale)
	if err != nil {
		return nil, err
	}
	sentAt := n.now()
	html, err := n.EmailHTML(req, sentAt)
	if err != nil {
		return nil, cerr.Internal(err).WithCode(CodeInternal)
	}
	e := &repo.Email{
		To:       req.To,
		Subject:  req.subject(),
		HTMLBody: html,
		TextBody: n.EmailText(req, sentAt),
		Attachments: []repo.Attachment{{
			Filename:    ticketFilename(&req.Receipt, sentAt),
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	}
	ctx2, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	d, err := n.mailer.Send(ctx2, e)
	if err != nil {
		log.Error(ctx, "sending email failed",
			log.Plate(req.Receipt.Plate), log.Err("err", err),
		)
		return nil, cerr.BadGateway(
			errors.New("Error sending email"),
		).WithCode(CodeInternal).WithDetails(err.Error())
	}
	log.Info(ctx, "email sent",
		log.Plate(req.Receipt.Plate),
		slog.String("mailer", n.mailer.Name()),
		slog.String("id", d.MessageID),
	)
	return &Sent{MessageID: d.MessageID, Status: d.Status, To: req.To}, nil
}

// RenderPDF use case returns the PDF ticket of r in the loc locale.
func (n *UseCase) RenderPDF(ctx context.Context, r *model.Receipt, loc model.Locale) ([]byte, error) {
	if r == nil || strings.TrimSpace(r.Plate) == "" {
		return nil, cerr.BadRequest(
			errors.New("Plate is required"),
		).WithCode(CodeMissingData)
	}
	pdf, err := n.renderer.RenderPDF(ctx, r, loc)
	if err != nil {
		return nil, cerr.Internal(
			fmt.Errorf("rendering PDF ticket: %w", err),
		).WithCode(CodeInternal)
	}
	return pdf, nil
}

func ticketFilename(r *model.Receipt, at time.Time) string {
	return fmt.Sprintf("ticket-%s-%d.pdf", r.Plate, at.Unix())
}

func mapProviderError(err error) *cerr.Error {
	var pe *repo.ProviderError
	if !errors.As(err, &pe) {
		return cerr.Internal(
			errors.New("Internal server error"),
		).WithCode(CodeInternal).WithDetails(err.Error())
	}
	var msg, code string
	switch pe.Code {
	case twilioInvalidNumber:
		msg, code = "Invalid phone number", CodeInvalidPhone
	case twilioNotMobile:
		msg, code = "Phone number is not a valid mobile number", CodeNotMobile
	case twilioUnverified:
		msg, code = "Phone number is not verified for trial account", CodeNotVerified
	default:
		msg, code = "Internal server error", CodeInternal
	}
	return cerr.Internal(errors.New(msg)).WithCode(code).WithDetails(pe.Message)
}
