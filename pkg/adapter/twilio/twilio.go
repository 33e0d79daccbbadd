// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package twilio implements the repo.TextSender interface using the
// Twilio messages API, for both SMS and WhatsApp channels.
package twilio

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ProviderName is reported in the repo.ProviderError instances.
const ProviderName = "twilio"

// whatsAppPrefix marks the WhatsApp addresses in the messages API.
const whatsAppPrefix = "whatsapp:"

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Sender sends text messages through one Twilio channel.
type Sender struct {
	api     messageCreator
	from    string
	channel repo.Channel
}

var _ repo.TextSender = (*Sender)(nil)

// New creates a Twilio sender for the ch channel which authenticates
// using the sid account and its token, and sends messages from the
// from phone number.
func New(sid, token, from string, ch repo.Channel) (*Sender, error) {
	if sid == "" || token == "" {
		return nil, errors.New("twilio account sid and token are required")
	}
	if from == "" {
		return nil, errors.New("twilio sender number is required")
	}
	c := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return newSender(c.Api, from, ch), nil
}

func newSender(api messageCreator, from string, ch repo.Channel) *Sender {
	return &Sender{api: api, from: from, channel: ch}
}

// From returns the sender phone number.
func (s *Sender) From() string {
	return s.from
}

func (s *Sender) address(phone string) string {
	if s.channel == repo.ChannelWhatsApp {
		return whatsAppPrefix + phone
	}
	return phone
}

// Send creates a Twilio message for m. The Twilio client does not take
// a context, so the call is abandoned (but not canceled) when ctx is
// done before the response is received.
func (s *Sender) Send(ctx context.Context, m repo.TextMessage) (*repo.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := &openapi.CreateMessageParams{}
	params.SetTo(s.address(m.To))
	params.SetFrom(s.address(s.from))
	params.SetBody(m.Body)

	type result struct {
		msg *openapi.ApiV2010Message
		err error
	}
	ch := make(chan result, 1)
	go func() {
		msg, err := s.api.CreateMessage(params)
		ch <- result{msg, err}
	}()
	var res result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for twilio: %w", ctx.Err())
	case res = <-ch:
	}
	if res.err != nil {
		var te *twclient.TwilioRestError
		if errors.As(res.err, &te) {
			return nil, &repo.ProviderError{
				Provider: ProviderName,
				Code:     te.Code,
				Message:  te.Message,
			}
		}
		return nil, fmt.Errorf("creating twilio message: %w", res.err)
	}
	d := &repo.Delivery{}
	if res.msg.Sid != nil {
		d.MessageID = *res.msg.Sid
	}
	if res.msg.Status != nil {
		d.Status = *res.msg.Status
	}
	return d, nil
}
