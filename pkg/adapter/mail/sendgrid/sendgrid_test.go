// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sendgrid

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	got  *mail.SGMailV3
	resp *rest.Response
}

func (f *fakeClient) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	f.got = m
	return f.resp, nil
}

func email() *repo.Email {
	return &repo.Email{
		To:       "driver@example.com",
		Subject:  "Your Parking Ticket - Meypark",
		HTMLBody: "<p>hi</p>",
		TextBody: "hi",
		Attachments: []repo.Attachment{{
			Filename:    "ticket.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		}},
	}
}

func TestSend(t *testing.T) {
	c := &fakeClient{resp: &rest.Response{
		StatusCode: http.StatusAccepted,
		Headers:    map[string][]string{"X-Message-Id": {"abc123"}},
	}}
	m := newMailer(c, "Meypark", "tickets@meypark.example")
	d, err := m.Send(context.Background(), email())
	require.NoError(t, err)
	assert.Equal(t, &repo.Delivery{MessageID: "abc123", Status: "accepted"}, d)

	require.NotNil(t, c.got)
	assert.Equal(t, "tickets@meypark.example", c.got.From.Address)
	assert.Equal(t, "Meypark", c.got.From.Name)
	assert.Equal(t, "Your Parking Ticket - Meypark", c.got.Subject)
	require.Len(t, c.got.Attachments, 1)
	a := c.got.Attachments[0]
	assert.Equal(t, "ticket.pdf", a.Filename)
	assert.Equal(t, "attachment", a.Disposition)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.3")), a.Content)
}

func TestRejectedRequest(t *testing.T) {
	c := &fakeClient{resp: &rest.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"errors":[{"message":"bad key"}]}`,
	}}
	m := newMailer(c, "Meypark", "tickets@meypark.example")
	_, err := m.Send(context.Background(), email())
	var pe *repo.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnauthorized, pe.Code)
	assert.Contains(t, pe.Message, "bad key")
}

func TestNew(t *testing.T) {
	_, err := New("", "Meypark", "tickets@meypark.example")
	assert.Error(t, err)
	_, err = New("SG.key", "Meypark", "")
	assert.Error(t, err)
	m, err := New("SG.key", "Meypark", "tickets@meypark.example")
	require.NoError(t, err)
	assert.Equal(t, Name, m.Name())
}
