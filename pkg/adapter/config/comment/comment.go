// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package comment keeps the head comments of a parsed YAML document,
// so they survive when a normalized configuration is written out again
// (e.g., by the "config show" command). Comments of mapping keys and
// sequence items are collected recursively.
package comment

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Comment holds the head comments of one mapping or sequence node.
// For a mapping node, comments are kept by key name. For a sequence
// node, they are kept by item index. A nil *Comment has no comments.
type Comment struct {
	kind  yaml.Kind
	heads map[string]string   // key or index -> head comment
	inner map[string]*Comment // key or index -> nested comments
}

// LoadFrom collects the head comments of n, which must be a mapping or
// a sequence node, and of all nested mapping and sequence nodes.
func LoadFrom(n *yaml.Node) (*Comment, error) {
	if n.Kind != yaml.MappingNode && n.Kind != yaml.SequenceNode {
		return nil, errors.New("node must be a mapping or a sequence")
	}
	c := &Comment{
		kind:  n.Kind,
		heads: make(map[string]string),
		inner: make(map[string]*Comment),
	}
	err := walk(n, func(id string, head, value *yaml.Node) error {
		if head.HeadComment != "" {
			c.heads[id] = head.HeadComment
		}
		if value.Kind != yaml.MappingNode && value.Kind != yaml.SequenceNode {
			return nil
		}
		nested, err := LoadFrom(value)
		if err != nil {
			return fmt.Errorf("loading comments of %q: %w", id, err)
		}
		c.inner[id] = nested
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SaveInto writes the comments which are kept in c into n, which must
// have the same kind as the node which c was loaded from. Keys and
// items which are missing in n are skipped.
func (c *Comment) SaveInto(n *yaml.Node) error {
	if c == nil {
		return nil
	}
	if n.Kind != c.kind {
		return fmt.Errorf("expected node kind %d, found %d", c.kind, n.Kind)
	}
	return walk(n, func(id string, head, value *yaml.Node) error {
		if h, ok := c.heads[id]; ok {
			head.HeadComment = h
		}
		nested, ok := c.inner[id]
		if !ok || nested.kind != value.Kind {
			return nil
		}
		if err := nested.SaveInto(value); err != nil {
			return fmt.Errorf("saving comments of %q: %w", id, err)
		}
		return nil
	})
}

// walk calls f for each item of n, passing an identifier of the item,
// the node which carries its head comment, and the value node. Mapping
// items are identified by key and sequence items by index.
func walk(
	n *yaml.Node, f func(id string, head, value *yaml.Node) error,
) error {
	if n.Kind == yaml.SequenceNode {
		for i, item := range n.Content {
			if err := f(fmt.Sprint(i), item, item); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if err := f(k.Value, k, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
