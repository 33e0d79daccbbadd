// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pdf implements the repo.Renderer interface by drawing the
// ticket receipts as A4 PDF documents, with a verification QR code.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/skip2/go-qrcode"
)

// Page geometry in millimeters.
const (
	pageWidth   = 210.0
	margin      = 20.0
	labelWidth  = 45.0
	rowHeight   = 8.0
	qrSize      = 50.0
	qrPixels    = 256
	qrImageName = "qr"
	font        = "Helvetica"
)

// Renderer draws the PDF tickets. It is safe for concurrent use.
type Renderer struct {
	tz  *time.Location
	now func() time.Time
}

var _ repo.Renderer = (*Renderer)(nil)

// New creates a renderer which localizes instants in the tz time zone.
// The now function provides the generation time of the footer, and
// may be nil in order to use time.Now.
func New(tz *time.Location, now func() time.Time) *Renderer {
	if tz == nil {
		tz = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{tz: tz, now: now}
}

// RenderPDF draws r in the loc locale and returns the PDF bytes.
func (rd *Renderer) RenderPDF(ctx context.Context, r *model.Receipt, loc model.Locale) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := i18n.For(loc)
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetTitle(t.Title, true)
	doc.SetCreator("parkmock", true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont(font, "B", 22)
	doc.CellFormat(0, 12, tr(t.Title), "", 1, "C", false, 0, "")
	doc.Ln(10)

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont(font, style, 12)
		doc.CellFormat(labelWidth, rowHeight, tr(label), "", 0, "L", false, 0, "")
		doc.CellFormat(0, rowHeight, tr(value), "", 1, "L", false, 0, "")
	}
	row(t.PlateLong, r.Plate, false)
	row(t.Zone, t.ZoneName(r.Zone), false)
	row(t.StartTime, i18n.FormatDateTime(r.Start, loc, rd.tz), false)
	row(t.EndTime, i18n.FormatDateTime(r.End, loc, rd.tz), false)
	row(t.Duration, i18n.ReceiptDuration(r), false)

	y := doc.GetY() + 3
	doc.Line(margin, y, pageWidth-margin, y)
	doc.Ln(6)

	if r.DiscountInCents != 0 {
		row(t.Discount, i18n.FormatPrice(r.DiscountInCents, loc), false)
	}
	row(t.TotalPrice, i18n.FormatPrice(r.AmountInCents, loc), true)
	row(t.PaymentMethod, t.MethodLongName(r.Method), false)
	doc.Ln(10)

	if r.QRData != "" {
		if err := rd.drawQR(doc, tr, t, r.QRData); err != nil {
			return nil, err
		}
	}

	doc.Ln(10)
	doc.SetFont(font, "", 10)
	doc.SetTextColor(0x66, 0x66, 0x66)
	at := i18n.FormatDateTime(
		rd.now().UTC().Format(time.RFC3339), loc, rd.tz,
	)
	doc.CellFormat(0, 6, tr(t.GeneratedBy+" - "+at), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (rd *Renderer) drawQR(
	doc *fpdf.Fpdf, tr func(string) string, t *i18n.Texts, data string,
) error {
	png, err := qrcode.Encode(data, qrcode.Medium, qrPixels)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	x := (pageWidth - qrSize) / 2
	doc.ImageOptions(qrImageName, x, doc.GetY(), qrSize, qrSize, false, opts, 0, "")
	doc.SetY(doc.GetY() + qrSize + 4)
	doc.SetFont(font, "", 11)
	doc.SetTextColor(0x66, 0x66, 0x66)
	doc.MultiCell(0, 6, tr(t.QRDescription), "", "C", false)
	doc.SetTextColor(0, 0, 0)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("drawing QR code: %w", err)
	}
	return nil
}
