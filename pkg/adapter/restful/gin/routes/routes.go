// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates their
// registration on a gin-gonic engine. Each use case package is named
// like zonesuc and is adapted to the REST APIs by a resource package
// which is named like zonesrs.
package routes

import (
	"github.com/gin-gonic/gin"
	ginad "github.com/momeni/parkmock/pkg/adapter/restful/gin"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/configrs"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/notifyrs"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/ticketsrs"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/zonesrs"
	"github.com/momeni/parkmock/pkg/core/usecase/appuc"
)

// Request body limits of the JSON APIs. Emails may carry larger custom
// messages and QR payloads.
const (
	APIBodyLimit   = 1 << 20
	EmailBodyLimit = 10 << 20
)

// Register instantiates the resources which adapt the use cases of
// the app application use case and registers them as request handlers
// using the e gin-gonic engine instance. Resources ask app for their
// use case objects per request, so a reloaded configuration takes
// effect without registering the routes again.
func Register(e *gin.Engine, app *appuc.UseCase) {
	v1 := e.Group("/v1", ginad.BodyLimit(APIBodyLimit))
	onstreet := v1.Group("/onstreet-service")
	zonesrs.Register(onstreet, app.ZonesUseCase, nil)
	ticketsrs.Register(onstreet, app.TicketsUseCase)

	api := e.Group("/api", ginad.BodyLimit(EmailBodyLimit))
	notifyrs.Register(v1, api, app.NotifyUseCase)

	configrs.Register(e, app)
}
