// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ticketsrs realizes the tickets resource, allowing the pay
// and validate REST APIs to be accepted and delegated to the tickets
// use case. Errors are reported in the legacy {"error": "..."} form.
package ticketsrs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
)

type resource struct {
	tickets func() *ticketsuc.UseCase
}

// Register instantiates a resource adapting the tickets use case with
// the relevant REST APIs including:
//  1. POST request to /v1/onstreet-service/pay-ticket
//     in order to record a paid plate,
//  2. GET request to /v1/onstreet-service/validate-ticket/:plate
//     in order to check whether a plate is paid.
func Register(r *gin.RouterGroup, tickets func() *ticketsuc.UseCase) {
	rs := &resource{tickets: tickets}
	r.POST("pay-ticket", rs.PayTicket)
	r.GET("validate-ticket/:plate", rs.ValidateTicket)
}

type payTicketReq struct {
	Plate string `json:"plate"`
}

func (rs *resource) PayTicket(c *gin.Context) {
	req := &payTicketReq{}
	if err := c.ShouldBindWith(req, binding.JSON); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Request body is too large",
			})
			return
		}
		// a missing or malformed body is treated as a missing plate
	}
	res, err := rs.tickets().Pay(c, req.Plate)
	if err != nil {
		serdser.SerLegacyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rs *resource) ValidateTicket(c *gin.Context) {
	res, err := rs.tickets().Validate(c, c.Param("plate"))
	if err != nil {
		serdser.SerLegacyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
