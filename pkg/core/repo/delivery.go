// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"fmt"

	"github.com/momeni/parkmock/pkg/core/model"
)

// Channel names a text message delivery channel.
type Channel string

// Supported text channels.
const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// TextMessage is a plain text message addressed to a phone number in
// E.164 format.
type TextMessage struct {
	To   string
	Body string
}

// Delivery reports the provider side identity and state of a message.
type Delivery struct {
	MessageID string
	Status    string
}

// TextSender delivers text messages over one channel.
type TextSender interface {
	// Send delivers msg and returns its provider delivery record.
	// Provider rejections should be reported as *ProviderError, so
	// use cases can map them to the client facing error codes.
	Send(ctx context.Context, msg TextMessage) (*Delivery, error)

	// From returns the sender address, for health reports.
	From() string
}

// Attachment is a file which is attached to an Email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email is an HTML email with optional attachments.
type Email struct {
	To          string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

// Mailer delivers emails.
type Mailer interface {
	Send(ctx context.Context, e *Email) (*Delivery, error)

	// Name reports the mailer kind, such as smtp or sendgrid.
	Name() string
}

// Renderer renders a ticket receipt as a document.
type Renderer interface {
	// RenderPDF returns the PDF document bytes of r in the loc locale.
	RenderPDF(ctx context.Context, r *model.Receipt, loc model.Locale) ([]byte, error)
}

// ProviderError describes a rejection by a third-party provider.
// Code is the provider specific numeric error code (0 if unknown).
type ProviderError struct {
	Provider string
	Code     int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.Code, e.Message)
}
