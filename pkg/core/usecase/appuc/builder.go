// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
)

// Builder interface represents the expectations from the application
// use case builders. All use cases which can be instantiated by a
// configuration struct have one NewX method here which takes their
// repository dependencies, while adapters which depend on credentials
// (such as the Twilio client or the mailer) are created by the Builder
// itself. The configuration struct must implement this interface and
// create the use case objects based on its contained settings.
//
// When the configuration file is loaded again, a new Builder instance
// is obtained and may be passed to the UseCase.Reload method in order
// to replace the notifications use case object. Resources packages
// must ask the application UseCase for the actual use case objects,
// right before using them, so they can be replaced atomically.
type Builder interface {
	// NewZonesUseCase creates a new zonesuc UseCase object having the
	// configured zones catalog. The c quotes cache may be nil.
	NewZonesUseCase(c repo.QuoteCache) (*zonesuc.UseCase, error)

	// NewTicketsUseCase creates a new ticketsuc UseCase object having
	// the provided tickets ledger.
	NewTicketsUseCase(t repo.Tickets) (*ticketsuc.UseCase, error)

	// NewNotifyUseCase creates a new notifyuc UseCase object along with
	// its PDF renderer and the configured delivery providers.
	NewNotifyUseCase() (*notifyuc.UseCase, error)

	// ServiceName returns the service name of health reports.
	ServiceName() string

	// PublicURL returns the configured public base URL of this service
	// or an empty string if it should be deduced from requests.
	PublicURL() string
}
