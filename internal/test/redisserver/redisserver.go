// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package redisserver is an internal helper for the test packages.
// This packages facilitates creation of a temporary in-process Redis
// server (using miniredis) and connecting to it, using a *redis.Client.
// It may be used in all test suites which require a Redis server
// without depending on an external process.
package redisserver

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// New creates and starts up a miniredis server and a client which
// is connected to it. Returned deferrers must be called in reverse
// order when the server is not needed anymore. The ok return value
// is false if the server could not be started or pinged.
func New(ctx context.Context, t *testing.T) (
	srv *miniredis.Miniredis,
	client *redis.Client,
	dfrs []func(),
	ok bool,
) {
	srv = miniredis.NewMiniRedis()
	ok = assert.NoError(t, srv.Start(), "failed to start miniredis")
	if !ok {
		return
	}
	dfrs = append(dfrs, srv.Close)
	client = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	dfrs = append(dfrs, func() {
		assert.NoError(t, client.Close(), "failed to close redis client")
	})
	ok = assert.NoError(t, client.Ping(ctx).Err(), "failed to ping miniredis")
	return
}
