// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/momeni/parkmock/pkg/adapter/config/settings"
	"github.com/momeni/parkmock/pkg/adapter/memory/quotesrp"
	"github.com/momeni/parkmock/pkg/adapter/memory/ticketsrp"
	redisquotesrp "github.com/momeni/parkmock/pkg/adapter/redis/quotesrp"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin"
	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// Bounds of the bounded settings.
var (
	minRateLimit, maxRateLimit = 0.0, 10000.0
	minRateBurst, maxRateBurst = 1, 10000
	minTimeout                 = settings.Duration(100 * time.Millisecond)
	maxTimeout                 = settings.Duration(2 * time.Minute)
)

// Server contains the HTTP listener settings.
type Server struct {
	Port *int `yaml:"port"`

	// PublicURL is reported to the kiosk clients as their API base URL.
	// If empty, it is deduced from the Host header of each request.
	PublicURL *string `yaml:"public-url"`

	ServiceName *string `yaml:"service-name"`
}

// Addr returns the listening address of the server.
func (s Server) Addr() string {
	return fmt.Sprintf(":%d", *s.Port)
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and fill them with their defaults.
type Gin struct {
	Logger   *bool // Whether to register the access logger middleware
	Recovery *bool // Whether to register the recovery middleware

	// AllowedOrigins lists the browser origins which may call the API.
	AllowedOrigins []string `yaml:"allowed-origins"`

	// RateLimit is the number of requests per second which each client
	// IP address may send. Zero disables the rate limiting.
	RateLimit *float64 `yaml:"rate-limit"`
	RateBurst *int     `yaml:"rate-burst"`
}

// defaultOrigins are the kiosk web builds and local development hosts.
var defaultOrigins = []string{
	"https://jeffbozu.github.io",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8080",
	"http://localhost:8081",
	"http://localhost:9001",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:8081",
	"http://127.0.0.1:9001",
}

// ValidateAndNormalize fills the missing gin settings with defaults and
// verifies the rate limiter settings.
func (g *Gin) ValidateAndNormalize() error {
	settings.Default(&g.Logger, true)
	settings.Default(&g.Recovery, true)
	settings.Default(&g.RateLimit, 20.0)
	settings.Default(&g.RateBurst, 40)
	if len(g.AllowedOrigins) == 0 {
		g.AllowedOrigins = append([]string{}, defaultOrigins...)
	}
	if err := settings.VerifyRange(
		&g.RateLimit, &minRateLimit, &maxRateLimit,
	); err != nil {
		return fmt.Errorf("VerifyRange(rate-limit=%v): %w", *err.Value, err)
	}
	if err := settings.VerifyRange(
		&g.RateBurst, &minRateBurst, &maxRateBurst,
	); err != nil {
		return fmt.Errorf("VerifyRange(rate-burst=%v): %w", *err.Value, err)
	}
	return nil
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 7)
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	middlewares = append(middlewares, gin.RequestID())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	middlewares = append(
		middlewares,
		gin.CORS(g.AllowedOrigins),
		gin.RateLimit(*g.RateLimit, *g.RateBurst),
		gin.Gzip(),
		gin.CacheControl(5*time.Minute, "/v1/sms/", "/v1/whatsapp/"),
	)
	return gin.New(middlewares...)
}

// Log contains the logging settings.
type Log struct {
	Level  *string `yaml:"level"`  // debug, info, warn, or error
	Format *string `yaml:"format"` // text or json
}

// ValidateAndNormalize fills the missing log settings with defaults.
func (l *Log) ValidateAndNormalize() error {
	settings.Default(&l.Level, "info")
	settings.Default(&l.Format, "text")
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*l.Level)); err != nil {
		return fmt.Errorf("log level %q: %w", *l.Level, err)
	}
	switch f := strings.ToLower(*l.Format); f {
	case "text", "json":
		*l.Format = f
	default:
		return fmt.Errorf("unsupported log format: %q", *l.Format)
	}
	return nil
}

// Setup installs the default slog logger which writes to w.
func (l Log) Setup(w io.Writer) (*slog.Logger, error) {
	return log.Setup(*l.Level, *l.Format, w)
}

// Tickets contains the tickets ledger settings.
type Tickets struct {
	// Seed lists the plates which are paid at start-up, getting ids
	// from 1 in this order.
	Seed []string `yaml:"seed"`
}

// ValidateAndNormalize trims the seed plates, the same way as paid
// and validated plates are trimmed, and rejects blank or repeated
// plates.
// A nil seed defaults to the 1234ABC demo plate.
func (t *Tickets) ValidateAndNormalize() error {
	if t.Seed == nil {
		t.Seed = []string{"1234ABC"}
		return nil
	}
	seen := make(map[string]bool, len(t.Seed))
	for i, p := range t.Seed {
		p = strings.TrimSpace(p)
		switch {
		case p == "":
			return fmt.Errorf("blank plate at seed index %d", i)
		case seen[p]:
			return fmt.Errorf("duplicate seed plate: %q", p)
		}
		seen[p] = true
		t.Seed[i] = p
	}
	return nil
}

// NewRepo creates the in-memory tickets ledger, seeded with t.Seed.
func (t Tickets) NewRepo() (*ticketsrp.Repo, error) {
	return ticketsrp.New(t.Seed...)
}

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Cache contains the rate quotes cache settings.
type Cache struct {
	Backend  *string            `yaml:"backend"` // none, memory, or redis
	RedisURL *string            `yaml:"redis-url,omitempty"`
	Prefix   *string            `yaml:"prefix,omitempty"`
	Timeout  *settings.Duration `yaml:"timeout"`
}

// ValidateAndNormalize fills the missing cache settings with defaults.
func (c *Cache) ValidateAndNormalize() error {
	settings.Default(&c.Backend, CacheMemory)
	settings.Default(&c.Prefix, redisquotesrp.DefaultKeyPrefix)
	settings.Default(&c.Timeout, settings.Duration(2*time.Second))
	switch *c.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.RedisURL == nil || *c.RedisURL == "" {
			return fmt.Errorf("redis cache needs a redis-url")
		}
	default:
		return fmt.Errorf("unsupported cache backend: %q", *c.Backend)
	}
	if err := settings.VerifyRange(
		&c.Timeout, &minTimeout, &maxTimeout,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(cache timeout=%v): %w", time.Duration(*err.Value), err,
		)
	}
	return nil
}

// NewQuoteCache creates the configured rate quotes cache. A nil cache
// is returned for the none backend. The returned close function must
// be called when the cache is not needed anymore.
func (c Cache) NewQuoteCache(ctx context.Context) (
	qc repo.QuoteCache, closeFn func() error, err error,
) {
	noop := func() error { return nil }
	switch *c.Backend {
	case CacheMemory:
		return quotesrp.New(), noop, nil
	case CacheRedis:
		r, err := redisquotesrp.Connect(
			ctx, *c.RedisURL, *c.Prefix, c.Timeout.Std(2*time.Second),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return r, r.Close, nil
	default:
		return nil, noop, nil
	}
}
