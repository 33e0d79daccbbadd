// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the parking
// kiosk mock backend. Commands are organized using the cobra library.
// The root command starts the web server itself while the other
// sub-commands expose the zones catalog, the PDF tickets renderer, and
// the normalized configuration on the command line.
//
//	./pmweb [-c /path/of/config.yaml]           # start web server
//	./pmweb zones [-c /path/of/config.yaml]
//	./pmweb quote green [-c /path/of/config.yaml]
//	./pmweb ticket pdf -o ticket.pdf --plate 1234ABC --zone green
//	./pmweb config show [-c /path/of/config.yaml]
//
// A running server reloads the notification settings of its config
// file when it receives a SIGHUP signal.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/parkmock/pkg/adapter/config"
	"github.com/momeni/parkmock/pkg/adapter/config/cfg1"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/routes"
	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/usecase/appuc"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pmweb",
	Short: "Mock backend of the parking kiosk",
	Long: `Mock backend of the parking kiosk which serves the on-street
parking zones catalog and their rate quotes, records the paid tickets
in an in-memory ledger so the enforcement clients may validate plates,
and delivers the ticket receipts by SMS, WhatsApp, or email (with a
PDF ticket attachment).
The zones and tariffs, the delivery providers, and the HTTP server are
configured by a YAML file whose secrets may be overridden by the
environment variables, such as TWILIO_AUTH_TOKEN or SMTP_PASSWORD.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          startWebServer,
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	t, qc, closeRepos, err := c.NewRepos(ctx)
	if err != nil {
		return fmt.Errorf("creating repositories: %w", err)
	}
	defer func() {
		if err := closeRepos(); err != nil {
			log.Warn(ctx, "closing repositories", log.Err("err", err))
		}
	}()
	app, err := c.NewAppUseCase(t, qc)
	if err != nil {
		return fmt.Errorf("creating application use case: %w", err)
	}
	e := c.Gin.NewEngine()
	routes.Register(e, app)
	go reloadOnHangup(ctx, app)

	srv := &http.Server{
		Addr:              c.Server.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(ctx, "server started",
		slog.String("addr", srv.Addr),
		slog.String("config", cfgPath),
		slog.String("version", c.Version().String()),
	)
	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	return nil
}

// reloadOnHangup loads the config file again whenever a SIGHUP signal
// is received and replaces the notification use case of app. Failed
// reloads are logged and keep the current settings.
func reloadOnHangup(ctx context.Context, app *appuc.UseCase) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
		}
		c, err := config.Load(cfgPath)
		if err != nil {
			log.Error(ctx, "reloading config", log.Err("err", err))
			continue
		}
		if err = app.Reload(ctx, c); err != nil {
			log.Error(ctx, "reloading use cases", log.Err("err", err))
			continue
		}
		log.Info(ctx, "config reloaded", slog.String("config", cfgPath))
	}
}

// loadConfig loads the cfgPath config file and installs its logger.
func loadConfig() (*cfg1.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if _, err = c.Log.Setup(os.Stderr); err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}
	return c, nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found || cfgPath == "" {
		cfgPath = "configs/sample-config.yaml"
	}
}
