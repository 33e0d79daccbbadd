// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/momeni/parkmock/pkg/core/model"
)

// FormatPrice formats an amount of euro cents, like "1,50 €" for the
// Spanish and Catalan locales and "1.50 €" for English.
func FormatPrice(cents int64, loc model.Locale) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	sep := ","
	if loc == model.LocaleEN {
		sep = "."
	}
	return fmt.Sprintf("%s%d%s%02d €", sign, cents/100, sep, cents%100)
}

// FormatDuration formats d as "2h 5min" or "45min", truncating the
// seconds. Negative durations are formatted as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int64(d / time.Minute)
	h, m := m/60, m%60
	if h > 0 {
		return fmt.Sprintf("%dh %dmin", h, m)
	}
	return fmt.Sprintf("%dmin", m)
}

// ParseInstant parses s as an RFC 3339 instant, with or without the
// fractional seconds.
func ParseInstant(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateTime localizes the s instant in the tz time zone, like
// "01/07/2024, 14:30" for Spanish and Catalan or "Jul 01, 2024, 02:30
// PM" for English. Strings which are not RFC 3339 instants are returned
// unchanged because older kiosks send them preformatted.
func FormatDateTime(s string, loc model.Locale, tz *time.Location) string {
	t, ok := ParseInstant(s)
	if !ok {
		return s
	}
	if tz != nil {
		t = t.In(tz)
	}
	if loc == model.LocaleEN {
		return t.Format("Jan 02, 2006, 03:04 PM")
	}
	return t.Format("02/01/2006, 15:04")
}

// ReceiptDuration returns the preformatted duration of r, or computes
// it from its start and end instants. An empty string is returned when
// neither is possible.
func ReceiptDuration(r *model.Receipt) string {
	if r.Duration != "" {
		return r.Duration
	}
	start, ok1 := ParseInstant(r.Start)
	end, ok2 := ParseInstant(r.End)
	if !ok1 || !ok2 {
		return ""
	}
	return FormatDuration(end.Sub(start))
}
