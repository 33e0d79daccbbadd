// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifyuc

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/model"
)

// EmailRequest describes a ticket receipt email.
type EmailRequest struct {
	To      string
	Receipt model.Receipt
	Locale  model.Locale

	Subject string // overrides the localized subject if not empty
	Message string // optional custom paragraph
}

type emailView struct {
	T        *i18n.Texts
	Message  string
	Plate    string
	Zone     string
	Start    string
	End      string
	Duration string
	Method   string
	Price    string
	Discount string
	HasQR    bool
	SentOn   string
}

var emailTmpl = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.T.Title}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h1 style="color: #E53935;">{{.T.Title}}</h1>
    <p>{{.T.Subtitle}}</p>
    <p>{{.T.Greeting}}</p>
    <p>{{.T.Intro}}</p>
    {{- if .Message}}
    <p style="background: #f5f5f5; padding: 12px;">{{.Message}}</p>
    {{- end}}
    <h2>{{.T.TicketDetails}}</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td>{{.T.PlateLong}}</td><td><strong>{{.Plate}}</strong></td></tr>
      <tr><td>{{.T.Zone}}</td><td>{{.Zone}}</td></tr>
      <tr><td>{{.T.StartTime}}</td><td>{{.Start}}</td></tr>
      <tr><td>{{.T.EndTime}}</td><td>{{.End}}</td></tr>
      {{- if .Duration}}
      <tr><td>{{.T.Duration}}</td><td>{{.Duration}}</td></tr>
      {{- end}}
      {{- if .Discount}}
      <tr><td>{{.T.Discount}}</td><td>-{{.Discount}}</td></tr>
      {{- end}}
      <tr><td>{{.T.TotalPrice}}</td><td><strong>{{.Price}}</strong></td></tr>
      <tr><td>{{.T.PaymentMethod}}</td><td>{{.Method}}</td></tr>
    </table>
    {{- if .HasQR}}
    <h3>{{.T.QRTitle}}</h3>
    <p>{{.T.QRDescription}}</p>
    {{- end}}
    <h3>{{.T.PDFAttached}}</h3>
    <p>{{.T.PDFDescription}}</p>
    <h3>{{.T.ImportantInfo}}</h3>
    <ul>
      {{- range .T.Instructions}}
      <li>{{.}}</li>
      {{- end}}
    </ul>
    <div style="background: #fff3cd; padding: 12px;">
      <strong>{{.T.NoReply}}</strong>
      <p>{{.T.NoReplyText}}</p>
    </div>
    <h3>{{.T.Support}}</h3>
    <p>{{.T.SupportText}}<br>{{.T.SupportHours}}</p>
    <p style="font-size: 12px; color: #888;">{{.T.SentOn}} {{.SentOn}}<br>&copy; {{.T.Copyright}}</p>
  </div>
</body>
</html>
`))

func (n *UseCase) newEmailView(req *EmailRequest, sentAt time.Time) *emailView {
	t := i18n.For(req.Locale)
	r := &req.Receipt
	v := &emailView{
		T:        t,
		Message:  req.Message,
		Plate:    r.Plate,
		Zone:     t.ZoneName(r.Zone),
		Start:    i18n.FormatDateTime(r.Start, req.Locale, n.tz),
		End:      i18n.FormatDateTime(r.End, req.Locale, n.tz),
		Duration: i18n.ReceiptDuration(r),
		Method:   t.MethodLongName(r.Method),
		Price:    i18n.FormatPrice(r.AmountInCents, req.Locale),
		HasQR:    r.QRData != "",
		SentOn: i18n.FormatDateTime(
			sentAt.UTC().Format(time.RFC3339), req.Locale, n.tz,
		),
	}
	if r.DiscountInCents != 0 {
		v.Discount = i18n.FormatPrice(r.DiscountInCents, req.Locale)
	}
	return v
}

// EmailHTML renders the HTML body of the req receipt email.
func (n *UseCase) EmailHTML(req *EmailRequest, sentAt time.Time) (string, error) {
	var b strings.Builder
	if err := emailTmpl.Execute(&b, n.newEmailView(req, sentAt)); err != nil {
		return "", fmt.Errorf("executing email template: %w", err)
	}
	return b.String(), nil
}

// EmailText renders the plain text alternative of the req receipt
// email, for clients which do not display HTML.
func (n *UseCase) EmailText(req *EmailRequest, sentAt time.Time) string {
	v := n.newEmailView(req, sentAt)
	t := v.T
	lines := []string{t.Title, "", t.Greeting, t.Intro, ""}
	if v.Message != "" {
		lines = append(lines, v.Message, "")
	}
	lines = append(lines,
		t.PlateLong+": "+v.Plate,
		t.Zone+": "+v.Zone,
		t.StartTime+": "+v.Start,
		t.EndTime+": "+v.End,
	)
	if v.Discount != "" {
		lines = append(lines, t.Discount+": -"+v.Discount)
	}
	lines = append(lines,
		t.TotalPrice+": "+v.Price,
		t.PaymentMethod+": "+v.Method,
		"",
		t.NoReplyText,
	)
	return strings.Join(lines, "\n")
}

// subject returns the subject line of the req email.
func (req *EmailRequest) subject() string {
	if s := strings.TrimSpace(req.Subject); s != "" {
		return s
	}
	return i18n.For(req.Locale).Subject
}
