// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Receipt describes a purchased parking ticket as it is reported to the
// customer by email, SMS, WhatsApp, or a PDF document.
//
// Start and End are kept as they were provided by the kiosk. They are
// usually RFC 3339 instants which can be localized, but older kiosk
// builds send preformatted strings which must be echoed unchanged.
type Receipt struct {
	Plate string
	Zone  string // zone id (e.g., green) or vehicle zone (e.g., moto)

	Start    string
	End      string
	Duration string // preformatted; computed from Start/End if empty

	Method string // payment method name, e.g., card or bizum

	AmountInCents   int64
	DiscountInCents int64

	QRData string // payload of the verification QR code, if any
}

// Locale names a supported language for customer facing texts.
type Locale string

// Supported locales. Unknown locale strings fall back to LocaleES.
const (
	LocaleES Locale = "es"
	LocaleCA Locale = "ca"
	LocaleEN Locale = "en"
)
