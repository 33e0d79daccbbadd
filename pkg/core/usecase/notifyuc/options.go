// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyuc

import (
	"errors"
	"fmt"
	"time"

	"github.com/momeni/parkmock/pkg/core/repo"
)

// Option is a functional option for the notifications use case.
type Option func(uc *UseCase) error

// WithSMSSender option enables the SMS deliveries through s.
func WithSMSSender(s repo.TextSender) Option {
	return func(uc *UseCase) error {
		if s == nil {
			return errors.New("SMS sender is nil")
		}
		if uc.sms != nil {
			return errors.New("SMS sender is already configured")
		}
		uc.sms = s
		return nil
	}
}

// WithWhatsAppSender option enables the WhatsApp deliveries through
// s. Without this option, WhatsApp deliveries are only simulated.
func WithWhatsAppSender(s repo.TextSender) Option {
	return func(uc *UseCase) error {
		if s == nil {
			return errors.New("WhatsApp sender is nil")
		}
		if uc.whatsapp != nil {
			return errors.New("WhatsApp sender is already configured")
		}
		uc.whatsapp = s
		return nil
	}
}

// WithMailer option enables the email deliveries through m.
func WithMailer(m repo.Mailer) Option {
	return func(uc *UseCase) error {
		if m == nil {
			return errors.New("mailer is nil")
		}
		if uc.mailer != nil {
			return errors.New("mailer is already configured")
		}
		uc.mailer = m
		return nil
	}
}

// WithLocation option sets the time zone which is used in order to
// localize the receipt instants.
func WithLocation(tz *time.Location) Option {
	return func(uc *UseCase) error {
		if tz == nil {
			return errors.New("location is nil")
		}
		uc.tz = tz
		return nil
	}
}

// WithTimeout option limits the duration of each provider call.
func WithTimeout(d time.Duration) Option {
	return func(uc *UseCase) error {
		if d <= 0 {
			return fmt.Errorf("timeout (%v) is not positive", d)
		}
		uc.timeout = d
		return nil
	}
}

// WithClock option replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		uc.now = now
		return nil
	}
}
