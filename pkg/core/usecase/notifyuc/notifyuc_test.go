// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyuc_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/momeni/parkmock/internal/test/fixture"
	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
	"github.com/stretchr/testify/suite"
)

type fakeSender struct {
	sent []repo.TextMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, m repo.TextMessage) (*repo.Delivery, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, m)
	return &repo.Delivery{MessageID: "SM123", Status: "queued"}, nil
}

func (f *fakeSender) From() string {
	return "+14155238886"
}

type fakeMailer struct {
	sent []*repo.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, e *repo.Email) (*repo.Delivery, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, e)
	return &repo.Delivery{MessageID: "mail-1", Status: "accepted"}, nil
}

func (f *fakeMailer) Name() string {
	return "fake"
}

type fakeRenderer struct{}

func (fakeRenderer) RenderPDF(_ context.Context, r *model.Receipt, _ model.Locale) ([]byte, error) {
	return []byte("%PDF-1.3 " + r.Plate), nil
}

type NotifySuite struct {
	suite.Suite

	ctx    context.Context
	tz     *time.Location
	sms    *fakeSender
	wa     *fakeSender
	mailer *fakeMailer
	uc     *notifyuc.UseCase
}

func TestNotifySuite(t *testing.T) {
	suite.Run(t, new(NotifySuite))
}

func (ns *NotifySuite) SetupTest() {
	var err error
	ns.ctx = context.Background()
	ns.tz, err = time.LoadLocation("Europe/Madrid")
	ns.Require().NoError(err)
	ns.sms = &fakeSender{}
	ns.wa = &fakeSender{}
	ns.mailer = &fakeMailer{}
	ns.uc, err = notifyuc.New(fakeRenderer{},
		notifyuc.WithSMSSender(ns.sms),
		notifyuc.WithWhatsAppSender(ns.wa),
		notifyuc.WithMailer(ns.mailer),
		notifyuc.WithLocation(ns.tz),
		notifyuc.WithClock(func() time.Time { return fixture.Ref }),
	)
	ns.Require().NoError(err)
}

func (ns *NotifySuite) requireCode(err error, status int, code string) {
	var ce *cerr.Error
	ns.Require().True(errors.As(err, &ce), "unexpected error: %v", err)
	ns.Equal(status, ce.HTTPStatusCode)
	ns.Equal(code, ce.Code)
}

func (ns *NotifySuite) TestValidPhone() {
	for _, p := range []string{"+34600111222", "+14155238886", "+12"} {
		ns.True(notifyuc.ValidPhone(p), p)
	}
	for _, p := range []string{"", "34600111222", "+0600111222", "+1", "+34 600", "+1234567890123456"} {
		ns.False(notifyuc.ValidPhone(p), p)
	}
}

func (ns *NotifySuite) TestSendSMS() {
	sent, err := ns.uc.SendSMS(ns.ctx, "+34600111222", fixture.Receipt(), model.LocaleES)
	ns.Require().NoError(err)
	ns.Equal("SM123", sent.MessageID)
	ns.Equal("queued", sent.Status)
	ns.Equal("+34600111222", sent.To)
	ns.Require().Len(ns.sms.sent, 1)
	ns.Equal(sent.Body, ns.sms.sent[0].Body)
	ns.Equal(strings.Join([]string{
		"🎫 Ticket de Estacionamiento",
		"",
		"🚙 Matrícula: 1234ABC",
		"📍 Zona: Zona Verde",
		"🕐 Inicio: 01/07/2024, 12:00",
		"🕙 Fin: 01/07/2024, 13:30",
		"⏱ Duración: 1h 30min",
		"💳 Pago: Tarjeta",
		"💰 Importe: 2,50 €",
		"",
		"✅ Gracias por su compra.",
		"",
		"📱 Meypark - Sistema de Gestión de Aparcamiento",
	}, "\n"), sent.Body)
}

func (ns *NotifySuite) TestSendSMSValidation() {
	_, err := ns.uc.SendSMS(ns.ctx, "", fixture.Receipt(), model.LocaleES)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)
	_, err = ns.uc.SendSMS(ns.ctx, "+34600111222", nil, model.LocaleES)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)
	_, err = ns.uc.SendSMS(ns.ctx, "600111222", fixture.Receipt(), model.LocaleES)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeInvalidPhone)
	ns.Empty(ns.sms.sent)
}

func (ns *NotifySuite) TestSendSMSWithoutTwilio() {
	uc, err := notifyuc.New(fakeRenderer{})
	ns.Require().NoError(err)
	_, err = uc.SendSMS(ns.ctx, "+34600111222", fixture.Receipt(), model.LocaleEN)
	ns.requireCode(err, http.StatusInternalServerError, notifyuc.CodeTwilioUnavailable)
	ns.Equal("", uc.SMSFrom())
	ns.Equal("none", uc.MailerName())
}

func (ns *NotifySuite) TestProviderErrorsAreMapped() {
	for code, want := range map[int]string{
		21211: notifyuc.CodeInvalidPhone,
		21614: notifyuc.CodeNotMobile,
		21610: notifyuc.CodeNotVerified,
		20003: notifyuc.CodeInternal,
	} {
		ns.sms.err = &repo.ProviderError{
			Provider: "twilio", Code: code, Message: "rejected",
		}
		_, err := ns.uc.SendSMS(ns.ctx, "+34600111222", fixture.Receipt(), model.LocaleES)
		ns.requireCode(err, http.StatusInternalServerError, want)
		var ce *cerr.Error
		ns.Require().ErrorAs(err, &ce)
		ns.Equal("rejected", ce.Details)
	}
	ns.sms.err = errors.New("dial tcp: timeout")
	_, err := ns.uc.SendSMS(ns.ctx, "+34600111222", fixture.Receipt(), model.LocaleES)
	ns.requireCode(err, http.StatusInternalServerError, notifyuc.CodeInternal)
}

func (ns *NotifySuite) TestSendWhatsApp() {
	r := fixture.Receipt()
	r.Start, r.End = "", ""
	sent, err := ns.uc.SendWhatsApp(ns.ctx, "+34600111222", r, model.LocaleEN)
	ns.Require().NoError(err)
	ns.False(sent.Simulated)
	ns.Require().Len(ns.wa.sent, 1)
	ns.Equal(strings.Join([]string{
		"🎫 Parking Ticket",
		"",
		"🚙 Plate: *1234ABC*",
		"📍 Zone: Green Zone",
		"💳 Payment: Card",
		"💰 Amount: 2.50 €",
		"",
		"✅ Thank you for your purchase.",
	}, "\n"), sent.Body)

	_, err = ns.uc.SendWhatsApp(ns.ctx, "", r, model.LocaleEN)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)
}

func (ns *NotifySuite) TestSimulatedWhatsApp() {
	uc, err := notifyuc.New(fakeRenderer{})
	ns.Require().NoError(err)
	sent, err := uc.SendWhatsApp(ns.ctx, "", fixture.Receipt(), model.LocaleCA)
	ns.Require().NoError(err)
	ns.True(sent.Simulated)
	ns.Equal(notifyuc.StatusSimulated, sent.Status)
	ns.NotEmpty(sent.MessageID)
	ns.Contains(sent.Body, "🚙 Matrícula: *1234ABC*")
	ns.Contains(sent.Body, "Zona Verda")

	_, err = uc.SendWhatsApp(ns.ctx, "", nil, model.LocaleCA)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)
	_, err = uc.SendWhatsApp(ns.ctx, "0034", fixture.Receipt(), model.LocaleCA)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeInvalidPhone)
}

func (ns *NotifySuite) TestSendEmail() {
	r := fixture.Receipt()
	r.DiscountInCents = 50
	sent, err := ns.uc.SendEmail(ns.ctx, &notifyuc.EmailRequest{
		To:      "driver@example.com",
		Receipt: *r,
		Locale:  model.LocaleEN,
		Message: "<b>See you soon</b>",
	})
	ns.Require().NoError(err)
	ns.Equal("mail-1", sent.MessageID)
	ns.Require().Len(ns.mailer.sent, 1)
	e := ns.mailer.sent[0]
	ns.Equal("driver@example.com", e.To)
	ns.Equal("Your Parking Ticket - Meypark", e.Subject)
	ns.Contains(e.HTMLBody, "1234ABC")
	ns.Contains(e.HTMLBody, "Credit/Debit Card")
	ns.Contains(e.HTMLBody, "Applied Discount")
	ns.Contains(e.HTMLBody, "&lt;b&gt;See you soon&lt;/b&gt;")
	ns.NotContains(e.HTMLBody, "<b>See you soon</b>")
	ns.Contains(e.TextBody, "Total Price: 2.50 €")
	ns.Require().Len(e.Attachments, 1)
	a := e.Attachments[0]
	ns.Equal("application/pdf", a.ContentType)
	ns.Equal("ticket-1234ABC-1719828000.pdf", a.Filename)
	ns.True(strings.HasPrefix(string(a.Content), "%PDF"))
}

func (ns *NotifySuite) TestSendEmailCustomSubject() {
	_, err := ns.uc.SendEmail(ns.ctx, &notifyuc.EmailRequest{
		To:      "driver@example.com",
		Receipt: *fixture.Receipt(),
		Subject: "Prueba",
	})
	ns.Require().NoError(err)
	ns.Require().Len(ns.mailer.sent, 1)
	ns.Equal("Prueba", ns.mailer.sent[0].Subject)
}

func (ns *NotifySuite) TestSendEmailFailures() {
	_, err := ns.uc.SendEmail(ns.ctx, &notifyuc.EmailRequest{
		Receipt: *fixture.Receipt(),
	})
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)

	ns.mailer.err = errors.New("535 authentication failed")
	_, err = ns.uc.SendEmail(ns.ctx, &notifyuc.EmailRequest{
		To: "driver@example.com", Receipt: *fixture.Receipt(),
	})
	ns.requireCode(err, http.StatusBadGateway, notifyuc.CodeInternal)

	uc, err := notifyuc.New(fakeRenderer{})
	ns.Require().NoError(err)
	_, err = uc.SendEmail(ns.ctx, &notifyuc.EmailRequest{
		To: "driver@example.com", Receipt: *fixture.Receipt(),
	})
	ns.requireCode(err, http.StatusServiceUnavailable, notifyuc.CodeMailerUnavailable)
}

func (ns *NotifySuite) TestRenderPDFRequiresPlate() {
	_, err := ns.uc.RenderPDF(ns.ctx, &model.Receipt{}, model.LocaleES)
	ns.requireCode(err, http.StatusBadRequest, notifyuc.CodeMissingData)
	b, err := ns.uc.RenderPDF(ns.ctx, fixture.Receipt(), model.LocaleES)
	ns.Require().NoError(err)
	ns.Equal("%PDF-1.3 1234ABC", string(b))
}
