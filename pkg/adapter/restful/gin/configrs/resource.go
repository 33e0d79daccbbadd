// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package configrs realizes the service resource which reports the
// client configuration, the health status, and the list of endpoints.
// It also answers the unknown routes.
package configrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/parkmock/pkg/core/model"
)

// Name and Version describe this service in the GET / response.
const (
	Name        = "Meypark Mock Service"
	Version     = "1.0.0"
	Description = "Mock backend of the parking kiosk: zones, rate " +
		"quotes, tickets, and receipt notifications"
)

// Endpoint describes one of the served routes.
type Endpoint struct {
	Route       string // method and path, e.g., GET /health
	Description string
}

// Endpoints lists the served routes in the order of their registration.
var Endpoints = []Endpoint{
	{"GET /v1/config", "Client configuration"},
	{"GET /v1/onstreet-service/zones", "List parking zones"},
	{"GET /v1/onstreet-service/product/by-zone/:zoneId&plate=:plate", "Rate quote of a zone"},
	{"POST /v1/onstreet-service/pay-ticket", "Record a paid ticket"},
	{"GET /v1/onstreet-service/validate-ticket/:plate", "Check a paid ticket"},
	{"POST /v1/sms/send", "Send an SMS receipt"},
	{"POST /v1/whatsapp/send", "Send a WhatsApp receipt"},
	{"POST /api/send-email", "Send an email receipt with the PDF ticket"},
	{"POST /v1/ticket/pdf", "Render the PDF ticket"},
	{"GET /health", "Service status"},
	{"GET /", "Service information"},
}

// App is the part of the application use case which is needed by this
// resource.
type App interface {
	ClientConfig(host string) model.ClientConfig
	Health() model.Health
}

type resource struct {
	app App
}

// Register instantiates a resource adapting the app use case with the
// relevant REST APIs including:
//  1. GET request to /v1/config in order to discover the API base URL,
//  2. GET request to /health in order to check the service status,
//  3. GET request to / in order to describe the service.
//
// Unknown routes are answered with a 404 response listing Endpoints.
func Register(e *gin.Engine, app App) {
	rs := &resource{app: app}
	e.GET("/v1/config", rs.ClientConfig)
	e.GET("/health", rs.Health)
	e.GET("/", rs.Info)
	e.NoRoute(rs.NotFound)
}

func (rs *resource) ClientConfig(c *gin.Context) {
	c.JSON(http.StatusOK, rs.app.ClientConfig(c.Request.Host))
}

func (rs *resource) Health(c *gin.Context) {
	c.JSON(http.StatusOK, rs.app.Health())
}

func (rs *resource) Info(c *gin.Context) {
	endpoints := make(map[string]string, len(Endpoints))
	for _, ep := range Endpoints {
		endpoints[ep.Route] = ep.Description
	}
	c.JSON(http.StatusOK, gin.H{
		"name":        Name,
		"version":     Version,
		"description": Description,
		"endpoints":   endpoints,
	})
}

func (rs *resource) NotFound(c *gin.Context) {
	routes := make([]string, 0, len(Endpoints))
	for _, ep := range Endpoints {
		routes = append(routes, ep.Route)
	}
	c.JSON(http.StatusNotFound, gin.H{
		"success":            false,
		"error":              "Endpoint not found",
		"availableEndpoints": routes,
	})
}
