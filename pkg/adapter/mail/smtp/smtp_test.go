// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package smtp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func email() *repo.Email {
	return &repo.Email{
		To:       "driver@example.com",
		Subject:  "Tu Ticket de Estacionamiento - Meypark",
		HTMLBody: "<p>hola</p>",
		TextBody: "hola",
		Attachments: []repo.Attachment{{
			Filename:    "ticket.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		}},
	}
}

func TestSend(t *testing.T) {
	d := &fakeDialer{}
	m := newMailer(d, "tickets@meypark.example", "smtp.example.com")
	del, err := m.Send(context.Background(), email())
	require.NoError(t, err)
	assert.NotEmpty(t, del.MessageID)
	assert.Equal(t, "sent", del.Status)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"tickets@meypark.example"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"driver@example.com"}, msg.GetHeader("To"))
	assert.Equal(t,
		[]string{"<" + del.MessageID + "@smtp.example.com>"},
		msg.GetHeader("Message-ID"),
	)
	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, `filename="ticket.pdf"`)
	assert.Contains(t, raw, "application/pdf")
}

func TestSendFailure(t *testing.T) {
	d := &fakeDialer{err: errors.New("535 authentication failed")}
	m := newMailer(d, "tickets@meypark.example", "smtp.example.com")
	_, err := m.Send(context.Background(), email())
	assert.ErrorContains(t, err, "535")
}

func TestNew(t *testing.T) {
	_, err := New("", 587, "u", "p", "")
	assert.Error(t, err)
	_, err = New("smtp.gmail.com", 587, "", "", "")
	assert.Error(t, err)
	m, err := New("smtp.gmail.com", 587, "user@gmail.com", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, "user@gmail.com", m.from)
	assert.Equal(t, Name, m.Name())
}
