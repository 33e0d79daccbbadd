// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appuc contains the application UseCase which creates the
// other use case objects, reports the service health and the client
// configuration, and allows the delivery settings to be reloaded
// without a restart. Use case objects are published atomically, so
// resources packages must fetch them with the getter methods right
// before each use.
package appuc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/momeni/parkmock/pkg/core/model"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
)

// ClientConfigVersion is the version of the reported client config.
const ClientConfigVersion = 1

// UseCase represents an application use case. It holds the tickets
// ledger and the quotes cache, which must survive a Reload, and all
// use case objects which are created by a Builder.
type UseCase struct {
	ticketsRepo repo.Tickets
	quotesRepo  repo.QuoteCache

	// zones and tickets use cases depend on the zones catalog and
	// the ledger which are fixed for the process lifetime, so they
	// are created once.
	zonesUseCase   *zonesuc.UseCase
	ticketsUseCase *ticketsuc.UseCase

	// mutex is used by Reload so only one goroutine may build new
	// use case objects at any time, while rwlock is only held for
	// publishing or fetching them. The order of these locks ensures
	// a deadlock-free implementation.
	mutex  sync.Mutex
	rwlock sync.RWMutex

	service       string
	publicURL     string
	notifyUseCase *notifyuc.UseCase

	now func() time.Time
}

// New instantiates an application use case object and creates all
// other use case objects using the b Builder. The quotes cache may be
// nil in order to disable the rate quotes caching.
func New(
	b Builder, ticketsRepo repo.Tickets, quotesRepo repo.QuoteCache,
	opts ...Option,
) (*UseCase, error) {
	if b == nil {
		return nil, errors.New("builder is nil")
	}
	uc := &UseCase{
		ticketsRepo: ticketsRepo,
		quotesRepo:  quotesRepo,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	var err error
	uc.zonesUseCase, err = b.NewZonesUseCase(quotesRepo)
	if err != nil {
		return nil, fmt.Errorf("creating zones use case: %w", err)
	}
	uc.ticketsUseCase, err = b.NewTicketsUseCase(ticketsRepo)
	if err != nil {
		return nil, fmt.Errorf("creating tickets use case: %w", err)
	}
	if err = uc.Reload(context.Background(), b); err != nil {
		return nil, err
	}
	return uc, nil
}

// Reload creates a fresh notifications use case using the b Builder,
// which may hold new provider credentials, and publishes it along
// with the new service name and public URL atomically. The zones
// catalog and the tickets ledger are not affected.
func (app *UseCase) Reload(ctx context.Context, b Builder) error {
	app.mutex.Lock()
	defer app.mutex.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	notifyUseCase, err := b.NewNotifyUseCase()
	if err != nil {
		return fmt.Errorf("creating notifications use case: %w", err)
	}
	app.updateAll(b.ServiceName(), b.PublicURL(), notifyUseCase)
	return nil
}

// ClientConfig returns the remote configuration of the kiosk clients.
// The configured public URL is reported if it is not empty. Otherwise,
// the https scheme and the host which was used by the client in order
// to reach this service are reported.
func (app *UseCase) ClientConfig(host string) model.ClientConfig {
	app.rwlock.RLock()
	u := app.publicURL
	app.rwlock.RUnlock()
	if u == "" {
		u = "https://" + host
	}
	return model.ClientConfig{
		Version:    ClientConfigVersion,
		APIBaseURL: strings.TrimSuffix(u, "/"),
	}
}

// Health reports the service liveness and which delivery providers are
// configured. Providers are not contacted.
func (app *UseCase) Health() model.Health {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	h := model.Health{
		Status:           "OK",
		Service:          app.service,
		TwilioConfigured: "not configured",
		SMSFrom:          app.notifyUseCase.SMSFrom(),
		Mailer:           app.notifyUseCase.MailerName(),
		Timestamp:        model.Timestamp(app.now()),
	}
	if h.SMSFrom != "" {
		h.TwilioConfigured = "configured"
	}
	return h
}
