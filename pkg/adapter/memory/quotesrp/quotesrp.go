// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package quotesrp implements the repo.QuoteCache interface in the
// process memory. Entries are never evicted because the zones catalog
// is fixed for the process lifetime.
package quotesrp

import (
	"context"
	"sync"

	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
)

// Repo is an in-memory quote cache which is safe for concurrent use.
type Repo struct {
	mu     sync.RWMutex
	quotes map[string]*model.RateQuote
}

var _ repo.QuoteCache = (*Repo)(nil)

// New instantiates an empty in-memory quote cache.
func New() *Repo {
	return &Repo{quotes: make(map[string]*model.RateQuote)}
}

// Get returns the cached base quote of zid. Callers must not modify
// the returned quote.
func (r *Repo) Get(_ context.Context, zid string) (*model.RateQuote, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quotes[zid]
	return q, ok, nil
}

// Put stores q as the base quote of zid, replacing older entries.
func (r *Repo) Put(_ context.Context, zid string, q *model.RateQuote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[zid] = q
	return nil
}

// Len returns the number of cached quotes.
func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes)
}
