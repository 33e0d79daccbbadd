// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
// When trying to serialize and write out settings, the latest known
// minor and patch version will be used since older versions (with the
// same major version) can ignore the extra fields too.
package cfg1

import (
	"context"
	"fmt"

	"github.com/momeni/parkmock/pkg/adapter/config/comment"
	"github.com/momeni/parkmock/pkg/adapter/config/settings"
	"github.com/momeni/parkmock/pkg/adapter/config/vers"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/appuc"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// DefaultServiceName is reported by health checks if no service name
// is configured.
const DefaultServiceName = "Meypark Mock Service"

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Server        Server        // HTTP listener settings
	Gin           Gin           // Gin-Gonic instantiation settings
	Log           Log           // slog settings
	Catalog       Catalog       // zones catalog and rate quote settings
	Tickets       Tickets       // tickets ledger settings
	Cache         Cache         // rate quotes cache settings
	Notifications Notifications // receipt delivery settings

	// Vers contains the configuration file version string.
	Vers vers.Config `yaml:",inline"`

	// Comments contains the YAML comment lines which are written right
	// before the actual settings lines, aka head-comments. They are
	// written out again by MarshalYAML. Comments may be nil.
	Comments *comment.Comment `yaml:"-"`
}

var _ appuc.Builder = (*Config)(nil)

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. The settings which are provided by the env environment
// variables lookup function override the file contents. Thereafter,
// loaded Config will be validated and normalized in order to ensure
// that provided settings are acceptable (for example the major version
// which is reported by data settings must match with number 1 which
// is the major version of this config package).
func Load(data []byte, env settings.Lookup) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if err := c.applyEnv(env); err != nil {
		return nil, fmt.Errorf("applying environment variables: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	cmnts, err := comment.LoadFrom(n.Content[0])
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	c.Comments = cmnts
	return c, nil
}

// applyEnv overrides the settings which may be provided by the hosting
// platform (or which are secrets) with the environment variables.
// Providing mail credentials through the environment variables selects
// the relevant mail provider if none was configured.
func (c *Config) applyEnv(env settings.Lookup) error {
	if env == nil {
		return nil
	}
	if err := env.OverrideInt(&c.Server.Port, "PORT"); err != nil {
		return err
	}
	env.OverrideString(&c.Server.PublicURL, "PUBLIC_URL")
	env.OverrideString(&c.Log.Level, "LOG_LEVEL")
	if v, ok := env("REDIS_URL"); ok && v != "" {
		c.Cache.RedisURL = &v
		backend := CacheRedis
		c.Cache.Backend = &backend
	}
	t := &c.Notifications.Twilio
	env.OverrideString(&t.AccountSID, "TWILIO_ACCOUNT_SID")
	env.OverrideString(&t.AuthToken, "TWILIO_AUTH_TOKEN")
	env.OverrideString(&t.SMSNumber, "TWILIO_SMS_NUMBER")
	env.OverrideString(&t.WhatsAppNumber, "TWILIO_WHATSAPP_NUMBER")
	m := &c.Notifications.Mail
	env.OverrideString(&m.From, "EMAIL_FROM")
	env.OverrideString(&m.SendGrid.APIKey, "SENDGRID_API_KEY")
	env.OverrideString(&m.SMTP.Username, "SMTP_USERNAME")
	env.OverrideString(&m.SMTP.Password, "SMTP_PASSWORD")
	if m.Provider == nil || *m.Provider == MailNone {
		var p string
		switch {
		case m.SendGrid.APIKey != nil && *m.SendGrid.APIKey != "":
			p = MailSendGrid
		case m.SMTP.Username != nil && *m.SMTP.Username != "":
			p = MailSMTP
		}
		if p != "" {
			m.Provider = &p
		}
	}
	return nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	settings.Default(&c.Server.Port, 3000)
	settings.Default(&c.Server.ServiceName, DefaultServiceName)
	settings.Nil2Zero(&c.Server.PublicURL)
	if p := *c.Server.Port; p <= 0 || p > 65535 {
		return fmt.Errorf("invalid server port: %d", p)
	}
	if err := c.Gin.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating gin settings: %w", err)
	}
	if err := c.Log.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating log settings: %w", err)
	}
	if err := c.Catalog.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	if err := c.Tickets.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating tickets seed: %w", err)
	}
	if err := c.Cache.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating cache settings: %w", err)
	}
	if err := c.Notifications.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating notification settings: %w", err)
	}
	return nil
}

// NewZonesUseCase instantiates a new zones use case based on the
// catalog settings. The qc quotes cache may be nil.
func (c *Config) NewZonesUseCase(qc repo.QuoteCache) (
	*zonesuc.UseCase, error,
) {
	return c.Catalog.NewUseCase(qc)
}

// NewTicketsUseCase instantiates a new tickets use case for the given
// tickets ledger.
func (c *Config) NewTicketsUseCase(t repo.Tickets) (
	*ticketsuc.UseCase, error,
) {
	return ticketsuc.New(t)
}

// NewNotifyUseCase instantiates a new notifications use case with the
// configured delivery providers. Receipts are localized in the catalog
// time zone.
func (c *Config) NewNotifyUseCase() (*notifyuc.UseCase, error) {
	return c.Notifications.NewUseCase(c.Catalog.Location())
}

// ServiceName returns the service name of health reports.
func (c *Config) ServiceName() string {
	return *c.Server.ServiceName
}

// PublicURL returns the configured public base URL, or an empty string.
func (c *Config) PublicURL() string {
	return *c.Server.PublicURL
}

// NewAppUseCase instantiates a new application use case which creates
// the other use cases using `c` settings. The tickets ledger and the
// quotes cache are passed in because they must outlive a reload of
// the configuration file. The qc may be nil.
func (c *Config) NewAppUseCase(
	t repo.Tickets, qc repo.QuoteCache, opts ...appuc.Option,
) (*appuc.UseCase, error) {
	return appuc.New(c, t, qc, opts...)
}

// NewRepos creates the tickets ledger and the quotes cache. The
// returned close function releases the cache connections.
func (c *Config) NewRepos(ctx context.Context) (
	repo.Tickets, repo.QuoteCache, func() error, error,
) {
	t, err := c.Tickets.NewRepo()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating tickets ledger: %w", err)
	}
	qc, closeFn, err := c.Cache.NewQuoteCache(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating quotes cache: %w", err)
	}
	return t, qc, closeFn, nil
}

// Version returns the semantic version of this Config struct contents.
func (c *Config) Version() model.SemVer {
	return c.Vers.Versions.Config
}
