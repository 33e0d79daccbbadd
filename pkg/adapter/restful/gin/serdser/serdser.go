// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by all resource packages. Two error body
// formats are supported. The notification endpoints report errors as
//
//	{"success": false, "error": "...", "code": "...", "details": "..."}
//
// while the tickets endpoints keep their legacy {"error": "..."} form.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/momeni/parkmock/pkg/core/log"
)

// ErrBody is the error body of the notification endpoints.
type ErrBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Bind deserializes the request into req using b binding and validates
// it. On failure, a bad request is reported with the invalid fields and
// false is returned, so the caller may return immediately.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case nil:
		return true
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, ErrBody{
			Error: "Internal server error", Details: err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request",
			"fields":  nameToErrs,
		})
	default:
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrBody{
				Error: "Request body is too large",
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrBody{
			Error: "Invalid request body", Details: err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// SerErr writes err in the ErrBody format. The *cerr.Error instances
// choose their status code, code, and details. Other errors are
// reported as internal errors without leaking their messages.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, ErrBody{
			Error:   ce.Err.Error(),
			Code:    ce.Code,
			Details: ce.Details,
		})
		return
	}
	log.Error(c, "unexpected error", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, ErrBody{
		Error: "Internal server error",
	})
}

// SerLegacyErr writes err as {"error": "..."}.
func SerLegacyErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{"error": ce.Err.Error()})
		return
	}
	log.Error(c, "unexpected error", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
