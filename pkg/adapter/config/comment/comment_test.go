// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package comment_test

import (
	"testing"

	"github.com/momeni/parkmock/pkg/adapter/config/comment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const commented = `server:
    # listening port
    port: 3000
zones:
    # the pink one
    - id: blue
      # in minutes
      minutes: 3
    - id: green
`

type doc struct {
	Server struct {
		Port int
	}
	Zones []struct {
		ID      string `yaml:"id"`
		Minutes int    `yaml:"minutes,omitempty"`
	}
}

func TestCommentsSurviveReencoding(t *testing.T) {
	n := &yaml.Node{}
	require.NoError(t, yaml.Unmarshal([]byte(commented), n))
	c, err := comment.LoadFrom(n.Content[0])
	require.NoError(t, err)

	d := &doc{}
	require.NoError(t, n.Decode(d))
	d.Server.Port = 8080

	out := &yaml.Node{}
	require.NoError(t, out.Encode(d))
	require.NoError(t, c.SaveInto(out))
	b, err := yaml.Marshal(out)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "# listening port\n    port: 8080")
	assert.Contains(t, s, "# the pink one")
	assert.Contains(t, s, "# in minutes")
}

func TestNilAndMismatchedKinds(t *testing.T) {
	var c *comment.Comment
	assert.NoError(t, c.SaveInto(&yaml.Node{Kind: yaml.ScalarNode}))

	_, err := comment.LoadFrom(&yaml.Node{Kind: yaml.ScalarNode})
	assert.Error(t, err)

	n := &yaml.Node{}
	require.NoError(t, yaml.Unmarshal([]byte(commented), n))
	c, err = comment.LoadFrom(n.Content[0])
	require.NoError(t, err)
	assert.Error(t, c.SaveInto(&yaml.Node{Kind: yaml.SequenceNode}))
}
