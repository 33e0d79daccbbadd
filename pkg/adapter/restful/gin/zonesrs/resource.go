// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package zonesrs realizes the zones resource, allowing the catalog
// and rate quote REST APIs to be accepted and delegated to the zones
// use case.
package zonesrs

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/parkmock/pkg/core/log"
	"github.com/momeni/parkmock/pkg/core/usecase/zonesuc"
)

// plateSep separates the zone id and the plate in the by-zone path.
const plateSep = "&plate="

type resource struct {
	zones func() *zonesuc.UseCase
	now   func() time.Time
}

// Register instantiates a resource adapting the zones use case with
// the relevant REST APIs including:
//  1. GET request to /v1/onstreet-service/zones
//     in order to list the zones summaries,
//  2. GET request to /v1/onstreet-service/product/by-zone/:zone
//     in order to quote the rates of a zone. The path segment has the
//     {zoneId}&plate={plate} form, but a bare zone id with an optional
//     plate query parameter is accepted too.
//
// The zones getter is called per request, so the caller may publish
// a new use case without registering the routes again.
func Register(r *gin.RouterGroup, zones func() *zonesuc.UseCase, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	rs := &resource{zones: zones, now: now}
	r.GET("zones", rs.ListZones)
	r.GET("product/by-zone/:zone", rs.QuoteZone)
}

func (rs *resource) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, rs.zones().Zones())
}

func (rs *resource) QuoteZone(c *gin.Context) {
	zid, plate := SplitZonePlate(c.Param("zone"))
	if plate == "" {
		plate = c.Query("plate")
	}
	log.Debug(c, "quoting zone", log.Zone(zid), log.Plate(plate))
	c.JSON(http.StatusOK, rs.zones().Rate(c, zid, rs.now()))
}

// SplitZonePlate splits the {zoneId}&plate={plate} path segment. The
// plate is empty if the segment has no plate part.
func SplitZonePlate(segment string) (zid, plate string) {
	zid, plate, _ = strings.Cut(segment, plateSep)
	return zid, plate
}
