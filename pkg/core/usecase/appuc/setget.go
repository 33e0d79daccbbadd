// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
)

// updateAll atomically updates the use case objects and settings which
// may be changed by a Reload. This method minimizes the scope which
// needs to take a writing lock (after instantiating all relevant use
// case objects).
func (app *UseCase) updateAll(
	service, publicURL string,
	notifyUseCase *notifyuc.UseCase,
) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.service = service
	app.publicURL = publicURL
	app.notifyUseCase = notifyUseCase
}

// ZonesUseCase returns the zones use case object.
func (app *UseCase) ZonesUseCase() *zonesuc.UseCase {
	return app.zonesUseCase
}

// TicketsUseCase returns the tickets use case object.
func (app *UseCase) TicketsUseCase() *ticketsuc.UseCase {
	return app.ticketsUseCase
}

// NotifyUseCase returns the currently effective notifications use case
// object.
func (app *UseCase) NotifyUseCase() *notifyuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.notifyUseCase
}
