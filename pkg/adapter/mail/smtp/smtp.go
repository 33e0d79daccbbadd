// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package smtp implements the repo.Mailer interface by sending emails
// through an SMTP relay, such as the Gmail or Outlook servers.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/momeni/parkmock/pkg/core/repo"
	"gopkg.in/gomail.v2"
)

// Name is the mailer kind which is reported by health checks.
const Name = "smtp"

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends emails through one SMTP relay.
type Mailer struct {
	dialer dialer
	from   string
	domain string
}

var _ repo.Mailer = (*Mailer)(nil)

// New creates an SMTP mailer which authenticates as user on the
// host:port relay and sends emails on behalf of the from address.
func New(host string, port int, user, password, from string) (*Mailer, error) {
	if host == "" || port <= 0 {
		return nil, fmt.Errorf("invalid SMTP relay: %s:%d", host, port)
	}
	if from == "" {
		from = user
	}
	if from == "" {
		return nil, errors.New("sender address is required")
	}
	d := gomail.NewDialer(host, port, user, password)
	return newMailer(d, from, host), nil
}

func newMailer(d dialer, from, domain string) *Mailer {
	return &Mailer{dialer: d, from: from, domain: domain}
}

// Name returns "smtp".
func (m *Mailer) Name() string {
	return Name
}

// Message converts e to a multipart gomail message having a plain text
// body, an HTML alternative, and all attachments of e. The returned id
// is also set as its Message-ID header.
func (m *Mailer) Message(e *repo.Email) (msg *gomail.Message, id string) {
	id = uuid.NewString()
	msg = gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	msg.SetHeader("Message-ID", "<"+id+"@"+m.domain+">")
	msg.SetBody("text/plain", e.TextBody)
	msg.AddAlternative("text/html", e.HTMLBody)
	for _, a := range e.Attachments {
		content := a.Content
		msg.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}),
		)
	}
	return msg, id
}

// Send dials the relay and sends e. The gomail dialer does not take a
// context, so the delivery is abandoned (but not canceled) when ctx is
// done before the relay accepts the email.
func (m *Mailer) Send(ctx context.Context, e *repo.Email) (*repo.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, id := m.Message(e)
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for SMTP relay: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("sending via SMTP: %w", err)
		}
	}
	return &repo.Delivery{MessageID: id, Status: "sent"}, nil
}
