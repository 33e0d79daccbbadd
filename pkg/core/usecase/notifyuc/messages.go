// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyuc

import (
	"strings"
	"time"

	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/model"
)

// SMSBody formats r as a plain text message. All lines are written,
// even if some receipt fields are empty.
func SMSBody(r *model.Receipt, loc model.Locale, tz *time.Location) string {
	t := i18n.For(loc)
	var b strings.Builder
	b.WriteString(t.TicketTitle + "\n\n")
	b.WriteString("🚙 " + t.Plate + ": " + r.Plate + "\n")
	b.WriteString("📍 " + t.Zone + ": " + t.ZoneName(r.Zone) + "\n")
	b.WriteString("🕐 " + t.Start + ": " + i18n.FormatDateTime(r.Start, loc, tz) + "\n")
	b.WriteString("🕙 " + t.End + ": " + i18n.FormatDateTime(r.End, loc, tz) + "\n")
	b.WriteString("⏱ " + t.Duration + ": " + i18n.ReceiptDuration(r) + "\n")
	b.WriteString("💳 " + t.Method + ": " + t.MethodName(r.Method) + "\n")
	b.WriteString("💰 " + t.Amount + ": " + i18n.FormatPrice(r.AmountInCents, loc) + "\n\n")
	b.WriteString("✅ " + t.Thanks + "\n\n")
	b.WriteString("📱 " + t.Signature)
	return b.String()
}

// WhatsAppBody formats r with the WhatsApp markup. Lines of empty
// receipt fields are skipped and the plate is shown in bold.
func WhatsAppBody(r *model.Receipt, loc model.Locale, tz *time.Location) string {
	t := i18n.For(loc)
	lines := []string{t.TicketTitle, ""}
	add := func(emoji, label, value string) {
		if value != "" {
			lines = append(lines, emoji+" "+label+": "+value)
		}
	}
	if r.Plate != "" {
		add("🚙", t.Plate, "*"+r.Plate+"*")
	}
	if r.Zone != "" {
		add("📍", t.Zone, t.ZoneName(r.Zone))
	}
	if r.Start != "" {
		add("🕐", t.Start, i18n.FormatDateTime(r.Start, loc, tz))
	}
	if r.End != "" {
		add("🕙", t.End, i18n.FormatDateTime(r.End, loc, tz))
	}
	add("⏱", t.Duration, i18n.ReceiptDuration(r))
	if r.Method != "" {
		add("💳", t.Method, t.MethodName(r.Method))
	}
	if r.AmountInCents > 0 {
		add("💰", t.Amount, i18n.FormatPrice(r.AmountInCents, loc))
	}
	lines = append(lines, "", "✅ "+t.Thanks)
	return strings.Join(lines, "\n")
}
