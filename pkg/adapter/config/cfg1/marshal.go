// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"fmt"

	"github.com/momeni/parkmock/pkg/adapter/config/vers"
	"gopkg.in/yaml.v3"
)

// Redacted replaces the secret settings in the marshalled form.
const Redacted = "********"

// Marshalled struct contains a field for each one of the Config struct
// fields. The types of those fields are the same if their default
// serialization format is acceptable, otherwise, they will be
// serialized manually using the Marshal method and their target
// primitive types will be used in the Marshalled struct.
type Marshalled struct {
	Server  Server
	Gin     Gin
	Log     Log
	Catalog Catalog
	Tickets Tickets
	Cache   struct {
		Backend  *string `yaml:"backend"`
		RedisURL *string `yaml:"redis-url,omitempty"`
		Prefix   *string `yaml:"prefix,omitempty"`
		Timeout  *string `yaml:"timeout"`
	}
	Notifications struct {
		Timeout *string `yaml:"timeout"`
		Twilio  Twilio  `yaml:"twilio"`
		Mail    Mail    `yaml:"mail"`
	}
	Vers *vers.Marshalled `yaml:",inline"`
}

// MarshalYAML computes an instance of the Marshalled struct, as created
// by the Marshal method, so it may be marshalled instead of the `c`
// Config instance. Thereafter, it encodes *Marshalled as a yaml node
// instance and saves the preserved head `c.Comments` (if any) into
// the resulting *yaml.Node instance.
func (c *Config) MarshalYAML() (interface{}, error) {
	m := c.Marshal()
	n := &yaml.Node{}
	if err := n.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding *Marshalled as YAML: %w", err)
	}
	if err := c.Comments.SaveInto(n); err != nil {
		return nil, fmt.Errorf("saving YAML nodes comments: %w", err)
	}
	return n, nil
}

// Marshal creates an instance of the Marshalled struct and fills it
// with the `c` Config instance contents. Durations are replaced by
// their readable string forms and the secrets (auth tokens, passwords,
// and API keys) are redacted, so the result may be printed safely.
func (c *Config) Marshal() *Marshalled {
	m := &Marshalled{
		Server:  c.Server,
		Gin:     c.Gin,
		Log:     c.Log,
		Catalog: c.Catalog,
		Tickets: c.Tickets,
	}
	m.Cache.Backend = c.Cache.Backend
	m.Cache.RedisURL = c.Cache.RedisURL
	m.Cache.Prefix = c.Cache.Prefix
	m.Cache.Timeout = c.Cache.Timeout.Marshal()
	n := c.Notifications
	m.Notifications.Timeout = n.Timeout.Marshal()
	m.Notifications.Twilio = n.Twilio
	m.Notifications.Twilio.AuthToken = redact(n.Twilio.AuthToken)
	m.Notifications.Mail = n.Mail
	m.Notifications.Mail.SMTP.Password = redact(n.Mail.SMTP.Password)
	m.Notifications.Mail.SendGrid.APIKey = redact(n.Mail.SendGrid.APIKey)
	m.Vers = c.Vers.Marshal()
	return m
}

func redact(secret *string) *string {
	if secret == nil || *secret == "" {
		return nil
	}
	r := Redacted
	return &r
}
