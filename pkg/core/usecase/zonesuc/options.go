// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package zonesuc

import (
	"errors"
	"fmt"

	"github.com/momeni/parkmock/pkg/core/repo"
)

// Option is a functional option for the zones use case.
type Option func(uc *UseCase) error

// WithQuoteCache option makes the zones UseCase memoize the
// time-independent part of every assembled rate quote in c.
func WithQuoteCache(c repo.QuoteCache) Option {
	return func(uc *UseCase) error {
		if c == nil {
			return errors.New("quote cache is nil")
		}
		if uc.cache != nil {
			return errors.New("quote cache is already configured")
		}
		uc.cache = c
		return nil
	}
}

// WithPaymentMethods option configures the payment method codes which
// are advertised in every rate quote, e.g., CASH or BIZUM.
func WithPaymentMethods(codes ...string) Option {
	return func(uc *UseCase) error {
		if len(codes) == 0 {
			return errors.New("payment methods list is empty")
		}
		if uc.paymentMethods != nil {
			return errors.New("payment methods are already configured")
		}
		uc.paymentMethods = append([]string{}, codes...)
		return nil
	}
}

// WithTimeZone option sets the IANA time zone name of rate quotes.
func WithTimeZone(tz string) Option {
	return func(uc *UseCase) error {
		if tz == "" {
			return errors.New("time zone is empty")
		}
		uc.timeZone = tz
		return nil
	}
}

// WithCurrency option sets the ISO 4217 currency code of rate quotes.
func WithCurrency(c string) Option {
	return func(uc *UseCase) error {
		if len(c) != 3 {
			return fmt.Errorf("currency code (%q) must have 3 letters", c)
		}
		uc.currency = c
		return nil
	}
}

// WithAverageStayDuration option sets the advisory average stay, in
// minutes, which is reported by rate quotes.
func WithAverageStayDuration(minutes int) Option {
	return func(uc *UseCase) error {
		if minutes <= 0 {
			return fmt.Errorf("average stay (%d) is not positive", minutes)
		}
		uc.averageStay = minutes
		return nil
	}
}

// WithColdDownTime option sets the cooldown, in seconds, which clients
// should wait between two purchases.
func WithColdDownTime(seconds int) Option {
	return func(uc *UseCase) error {
		if seconds < 0 {
			return fmt.Errorf("cold down time (%d) is negative", seconds)
		}
		uc.coldDown = &seconds
		return nil
	}
}

// WithFlags option sets the canDriveOff and extensible product flags.
func WithFlags(canDriveOff, extensible bool) Option {
	return func(uc *UseCase) error {
		uc.canDriveOff = &canDriveOff
		uc.extensible = &extensible
		return nil
	}
}
