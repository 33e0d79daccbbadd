// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package quotesrp implements the repo.QuoteCache interface on top of
// a Redis server, so several replicas of the service may share their
// assembled rate quotes. Entries are stored as JSON documents without
// any expiry because the zones catalog does not change while the
// service is running.
package quotesrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix is prepended to zone ids in order to build keys.
const DefaultKeyPrefix = "parkmock:quote:"

// Repo is a Redis backed quote cache.
type Repo struct {
	client *redis.Client
	prefix string
}

var _ repo.QuoteCache = (*Repo)(nil)

// Connect parses the redis://host:port/db URL, connects to that
// server, and pings it once in order to report the misconfigurations
// during the start up. The timeout is used for dialing, reading, and
// writing. An empty prefix is replaced by DefaultKeyPrefix.
func Connect(ctx context.Context, url, prefix string, timeout time.Duration) (*Repo, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	if timeout > 0 {
		opts.DialTimeout = timeout
		opts.ReadTimeout = timeout
		opts.WriteTimeout = timeout
	}
	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return New(c, prefix), nil
}

// New wraps the c client as a quote cache. Keys are built by
// prepending prefix to the zone ids.
func New(c *redis.Client, prefix string) *Repo {
	return &Repo{client: c, prefix: prefix}
}

func (r *Repo) key(zid string) string {
	return r.prefix + zid
}

// Get fetches and decodes the cached base quote of zid.
func (r *Repo) Get(ctx context.Context, zid string) (*model.RateQuote, bool, error) {
	b, err := r.client.Get(ctx, r.key(zid)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	q := &model.RateQuote{}
	if err := json.Unmarshal(b, q); err != nil {
		return nil, false, fmt.Errorf("decoding cached quote: %w", err)
	}
	return q, true, nil
}

// Put encodes and stores q as the base quote of zid.
func (r *Repo) Put(ctx context.Context, zid string, q *model.RateQuote) error {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encoding quote: %w", err)
	}
	if err := r.client.Set(ctx, r.key(zid), b, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the Redis connections.
func (r *Repo) Close() error {
	return r.client.Close()
}
