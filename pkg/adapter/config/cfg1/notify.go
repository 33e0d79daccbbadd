// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"fmt"
	"time"

	"github.com/momeni/parkmock/pkg/adapter/config/settings"
	"github.com/momeni/parkmock/pkg/adapter/mail/sendgrid"
	"github.com/momeni/parkmock/pkg/adapter/mail/smtp"
	"github.com/momeni/parkmock/pkg/adapter/pdf"
	"github.com/momeni/parkmock/pkg/adapter/twilio"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
)

// DefaultSMSNumber is the Twilio sandbox number.
const DefaultSMSNumber = "+14155238886"

// Mail providers.
const (
	MailNone     = "none"
	MailSMTP     = "smtp"
	MailSendGrid = "sendgrid"
)

// Notifications contains the receipt delivery settings.
type Notifications struct {
	// Timeout limits each call to a delivery provider.
	Timeout *settings.Duration `yaml:"timeout"`

	Twilio Twilio `yaml:"twilio"`
	Mail   Mail   `yaml:"mail"`
}

// Twilio contains the Twilio account settings. SMS deliveries are
// enabled when both of the account SID and the auth token are given.
// WhatsApp deliveries also need a WhatsApp enabled number, otherwise
// they are simulated.
type Twilio struct {
	AccountSID     *string `yaml:"account-sid,omitempty"`
	AuthToken      *string `yaml:"auth-token,omitempty"`
	SMSNumber      *string `yaml:"sms-number"`
	WhatsAppNumber *string `yaml:"whatsapp-number,omitempty"`
}

// Configured reports whether the Twilio credentials are present.
func (t Twilio) Configured() bool {
	return t.AccountSID != nil && *t.AccountSID != "" &&
		t.AuthToken != nil && *t.AuthToken != ""
}

// Mail contains the email delivery settings.
type Mail struct {
	Provider *string `yaml:"provider"` // none, smtp, or sendgrid
	From     *string `yaml:"from,omitempty"`
	FromName *string `yaml:"from-name"`

	SMTP     SMTP     `yaml:"smtp"`
	SendGrid SendGrid `yaml:"sendgrid"`
}

// SMTP contains the SMTP relay settings.
type SMTP struct {
	Host     *string `yaml:"host"`
	Port     *int    `yaml:"port"`
	Username *string `yaml:"username,omitempty"`
	Password *string `yaml:"password,omitempty"`
}

// SendGrid contains the SendGrid API settings.
type SendGrid struct {
	APIKey *string `yaml:"api-key,omitempty"`
}

// ValidateAndNormalize fills the missing notification settings with
// defaults and checks that the selected mail provider has its
// credentials.
func (n *Notifications) ValidateAndNormalize() error {
	settings.Default(&n.Timeout, settings.Duration(10*time.Second))
	if err := settings.VerifyRange(
		&n.Timeout, &minTimeout, &maxTimeout,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(notifications timeout=%v): %w",
			time.Duration(*err.Value), err,
		)
	}
	settings.Default(&n.Twilio.SMSNumber, DefaultSMSNumber)
	m := &n.Mail
	settings.Default(&m.Provider, MailNone)
	settings.Default(&m.FromName, "Meypark")
	settings.Default(&m.SMTP.Host, "smtp.gmail.com")
	settings.Default(&m.SMTP.Port, 587)
	switch *m.Provider {
	case MailNone:
	case MailSMTP:
		if m.SMTP.Username == nil || *m.SMTP.Username == "" {
			return fmt.Errorf("smtp mailer needs a username")
		}
		if m.SMTP.Password == nil {
			return fmt.Errorf("smtp mailer needs a password")
		}
		settings.OverwriteNil(&m.From, m.SMTP.Username)
	case MailSendGrid:
		if m.SendGrid.APIKey == nil || *m.SendGrid.APIKey == "" {
			return fmt.Errorf("sendgrid mailer needs an api-key")
		}
		if m.From == nil || *m.From == "" {
			return fmt.Errorf("sendgrid mailer needs a from address")
		}
	default:
		return fmt.Errorf("unsupported mail provider: %q", *m.Provider)
	}
	return nil
}

// NewMailer creates the configured mailer, or nil if emails are
// disabled.
func (m Mail) NewMailer() (repo.Mailer, error) {
	switch *m.Provider {
	case MailSMTP:
		return smtp.New(
			*m.SMTP.Host, *m.SMTP.Port,
			*m.SMTP.Username, *m.SMTP.Password, *m.From,
		)
	case MailSendGrid:
		return sendgrid.New(*m.SendGrid.APIKey, *m.FromName, *m.From)
	default:
		return nil, nil
	}
}

// NewUseCase instantiates a new notifications use case based on the
// settings in the `n` struct. Receipt instants are localized in tz.
func (n Notifications) NewUseCase(tz *time.Location) (
	*notifyuc.UseCase, error,
) {
	opts := []notifyuc.Option{
		notifyuc.WithLocation(tz),
		notifyuc.WithTimeout(n.Timeout.Std(10 * time.Second)),
	}
	if t := n.Twilio; t.Configured() {
		s, err := twilio.New(
			*t.AccountSID, *t.AuthToken, *t.SMSNumber, repo.ChannelSMS,
		)
		if err != nil {
			return nil, fmt.Errorf("creating twilio SMS sender: %w", err)
		}
		opts = append(opts, notifyuc.WithSMSSender(s))
		if t.WhatsAppNumber != nil && *t.WhatsAppNumber != "" {
			w, err := twilio.New(
				*t.AccountSID, *t.AuthToken, *t.WhatsAppNumber,
				repo.ChannelWhatsApp,
			)
			if err != nil {
				return nil, fmt.Errorf(
					"creating twilio WhatsApp sender: %w", err,
				)
			}
			opts = append(opts, notifyuc.WithWhatsAppSender(w))
		}
	}
	m, err := n.Mail.NewMailer()
	if err != nil {
		return nil, fmt.Errorf("creating %s mailer: %w", *n.Mail.Provider, err)
	}
	if m != nil {
		opts = append(opts, notifyuc.WithMailer(m))
	}
	return notifyuc.New(pdf.New(tz, time.Now), opts...)
}
