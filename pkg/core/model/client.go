// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// ClientConfig is the remote configuration which the kiosk application
// fetches right after its start, so it can switch its API base URL
// without a new release.
type ClientConfig struct {
	Version    int    `json:"version"`
	APIBaseURL string `json:"apiBaseUrl"`
}

// Health reports the service liveness and which delivery providers are
// configured. It never contacts those providers.
type Health struct {
	Status           string    `json:"status"`
	Service          string    `json:"service"`
	TwilioConfigured string    `json:"twilioConfigured"`
	SMSFrom          string    `json:"smsFrom,omitempty"`
	Mailer           string    `json:"mailer"`
	Timestamp        Timestamp `json:"timestamp"`
}
