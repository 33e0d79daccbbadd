// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notifyrs realizes the notifications resource, allowing the
// receipt delivery REST APIs to be accepted and delegated to the
// notifications use case. Its errors are reported in the
// serdser.ErrBody form.
package notifyrs

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/parkmock/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkmock/pkg/core/i18n"
	"github.com/momeni/parkmock/pkg/core/usecase/notifyuc"
)

type resource struct {
	notify func() *notifyuc.UseCase
}

// Register instantiates a resource adapting the notifications use case
// with the relevant REST APIs including:
//  1. POST request to /v1/sms/send in order to send an SMS receipt,
//  2. POST request to /v1/whatsapp/send in order to send a WhatsApp
//     receipt,
//  3. POST request to /v1/ticket/pdf in order to render a PDF ticket,
//  4. POST request to /api/send-email in order to email a receipt.
//
// The v1 and api router groups are expected to be mounted on /v1 and
// /api paths respectively.
func Register(v1, api *gin.RouterGroup, notify func() *notifyuc.UseCase) {
	rs := &resource{notify: notify}
	v1.POST("sms/send", rs.SendSMS)
	v1.POST("whatsapp/send", rs.SendWhatsApp)
	v1.POST("ticket/pdf", rs.RenderPDF)
	api.POST("send-email", rs.SendEmail)
}

func (rs *resource) SendSMS(c *gin.Context) {
	req := &smsReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	s, err := rs.notify().SendSMS(
		c, req.Phone, req.Receipt(), i18n.Resolve(req.Locale),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serSent("SMS sent successfully", s))
}

func (rs *resource) SendWhatsApp(c *gin.Context) {
	req := &whatsAppReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	s, err := rs.notify().SendWhatsApp(
		c, req.Phone, req.Receipt(), i18n.Resolve(req.Locale),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serSent("WhatsApp message sent successfully", s))
}

func (rs *resource) SendEmail(c *gin.Context) {
	req := &emailReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	s, err := rs.notify().SendEmail(c, req.EmailRequest())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serSent("Email sent successfully", s))
}

func (rs *resource) RenderPDF(c *gin.Context) {
	req := &ticketReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	pdf, err := rs.notify().RenderPDF(
		c, req.Receipt(), i18n.Resolve(req.Locale),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType(
		"inline", map[string]string{"filename": "ticket-" + req.Plate + ".pdf"},
	))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
