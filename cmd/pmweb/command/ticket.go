// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"math"
	"os"

	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/spf13/cobra"
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Ticket receipt actions",
}

var (
	pdfOut     string
	pdfLocale  string
	pdfPrice   float64
	pdfDisc    float64
	pdfReceipt model.Receipt
)

var ticketPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render a PDF ticket receipt",
	Long: `Render a PDF ticket receipt, exactly as it is attached to the
receipt emails, and write it into the -o file (or the standard output
if -o is "-"). Start and end instants in the RFC 3339 format are shown
in the catalog time zone, other values are shown as given.`,
	Args: cobra.NoArgs,
	RunE: renderTicketPDF,
}

func renderTicketPDF(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	n, err := c.NewNotifyUseCase()
	if err != nil {
		return fmt.Errorf("creating notifications use case: %w", err)
	}
	r := pdfReceipt
	r.AmountInCents = int64(math.Round(pdfPrice * 100))
	r.DiscountInCents = int64(math.Round(pdfDisc * 100))
	pdf, err := n.RenderPDF(cmd.Context(), &r, i18n.Resolve(pdfLocale))
	if err != nil {
		return fmt.Errorf("rendering PDF ticket: %w", err)
	}
	if pdfOut == "-" {
		_, err = cmd.OutOrStdout().Write(pdf)
		return err
	}
	if err = os.WriteFile(pdfOut, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", pdfOut, err)
	}
	return nil
}

func init() {
	f := ticketPDFCmd.Flags()
	f.StringVarP(&pdfOut, "output", "o", "ticket.pdf", "output file path")
	f.StringVar(&pdfLocale, "locale", "es", "es, ca, or en")
	f.StringVar(&pdfReceipt.Plate, "plate", "", "vehicle plate")
	f.StringVar(&pdfReceipt.Zone, "zone", "", "zone id, e.g., green")
	f.StringVar(&pdfReceipt.Start, "start", "", "start instant")
	f.StringVar(&pdfReceipt.End, "end", "", "end instant")
	f.StringVar(&pdfReceipt.Method, "method", "card", "payment method")
	f.StringVar(&pdfReceipt.QRData, "qr", "", "QR code payload")
	f.Float64Var(&pdfPrice, "price", 0, "total price in euros")
	f.Float64Var(&pdfDisc, "discount", 0, "discount in euros")
	_ = ticketPDFCmd.MarkFlagRequired("plate")
	ticketCmd.AddCommand(ticketPDFCmd)
	rootCmd.AddCommand(ticketCmd)
}
