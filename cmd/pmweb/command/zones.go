// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Print the configured zones catalog",
	Long: `Print the id, name, and color of the configured parking zones
as a JSON array, in the same order and format which is served by the
GET /v1/onstreet-service/zones endpoint.`,
	Args: cobra.NoArgs,
	RunE: printZones,
}

var quoteCmd = &cobra.Command{
	Use:   "quote <zone-id>",
	Short: "Print the current rate quote of a zone",
	Long: `Print the rate quote of the given zone at the current instant
as a JSON array, in the same format which is served by the
GET /v1/onstreet-service/product/by-zone/:zoneId endpoint.
An unknown zone id yields an empty array.`,
	Args: cobra.ExactArgs(1),
	RunE: printQuote,
}

func printZones(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	zs, err := c.NewZonesUseCase(nil)
	if err != nil {
		return fmt.Errorf("creating zones use case: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), zs.Zones())
}

func printQuote(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	zs, err := c.NewZonesUseCase(nil)
	if err != nil {
		return fmt.Errorf("creating zones use case: %w", err)
	}
	return writeJSON(
		cmd.OutOrStdout(), zs.Rate(cmd.Context(), args[0], time.Now()),
	)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(zonesCmd, quoteCmd)
}
