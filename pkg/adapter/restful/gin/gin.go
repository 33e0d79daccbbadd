// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and provides the middlewares
// which are shared by all resources, so the config package can build
// an engine without importing the gin-contrib packages itself.
package gin

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	ginslogger "github.com/FabienMht/ginslog/logger"
	ginslogrecovery "github.com/FabienMht/ginslog/recovery"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine
type Context = gin.Context

// RequestIDHeader carries the request id in requests and responses.
const RequestIDHeader = "X-Request-ID"

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger writes one access log record per request on the default slog
// logger.
func Logger() HandlerFunc {
	return ginslogger.New(slog.Default())
}

// Recovery converts panics into 500 responses and logs them on the
// default slog logger.
func Recovery() HandlerFunc {
	return ginslogrecovery.New(slog.Default())
}

// CORS allows the browser clients from the given origins.
func CORS(origins []string) HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// Gzip compresses the responses of clients which accept gzip.
// PDF documents are already compressed and are skipped.
func Gzip() HandlerFunc {
	return gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".pdf"}),
		gzip.WithExcludedPaths([]string{"/v1/ticket/pdf"}),
	)
}

// RequestID propagates the X-Request-ID header of requests or creates
// a random one, and echoes it in the response.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// CacheControl marks the responses of requests whose path starts with
// one of prefixes as publicly cacheable for maxAge.
func CacheControl(maxAge time.Duration, prefixes ...string) HandlerFunc {
	v := "public, max-age=" + strconv.FormatInt(int64(maxAge/time.Second), 10)
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		for _, prefix := range prefixes {
			if strings.HasPrefix(p, prefix) {
				c.Header("Cache-Control", v)
				break
			}
		}
		c.Next()
	}
}

// BodyLimit caps the request body size to n bytes. Reading beyond it
// fails, so binding reports a bad request.
func BodyLimit(n int64) HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
