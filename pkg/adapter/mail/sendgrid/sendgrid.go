// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sendgrid implements the repo.Mailer interface using the
// SendGrid v3 mail send API.
package sendgrid

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Name is the mailer kind which is reported by health checks.
const Name = "sendgrid"

type client interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Mailer sends emails through the SendGrid API.
type Mailer struct {
	client   client
	fromName string
	from     string
}

var _ repo.Mailer = (*Mailer)(nil)

// New creates a SendGrid mailer which authenticates with the apiKey
// and sends emails on behalf of the fromName <from> sender.
func New(apiKey, fromName, from string) (*Mailer, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid API key is required")
	}
	if from == "" {
		return nil, errors.New("sender address is required")
	}
	return newMailer(sg.NewSendClient(apiKey), fromName, from), nil
}

func newMailer(c client, fromName, from string) *Mailer {
	return &Mailer{client: c, fromName: fromName, from: from}
}

// Name returns "sendgrid".
func (m *Mailer) Name() string {
	return Name
}

// Message converts e to a SendGrid v3 mail object.
func (m *Mailer) Message(e *repo.Email) *mail.SGMailV3 {
	msg := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		e.Subject,
		mail.NewEmail("", e.To),
		e.TextBody,
		e.HTMLBody,
	)
	for _, a := range e.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}
	return msg
}

// Send posts e to the SendGrid API. Non-2xx responses are reported
// as *repo.ProviderError with the HTTP status code.
func (m *Mailer) Send(ctx context.Context, e *repo.Email) (*repo.Delivery, error) {
	resp, err := m.client.SendWithContext(ctx, m.Message(e))
	if err != nil {
		return nil, fmt.Errorf("calling sendgrid: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &repo.ProviderError{
			Provider: Name,
			Code:     resp.StatusCode,
			Message:  resp.Body,
		}
	}
	d := &repo.Delivery{Status: "accepted"}
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		d.MessageID = ids[0]
	}
	return d, nil
}
