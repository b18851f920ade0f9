// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package comment keeps the head comments of a parsed YAML document,
// so they survive when the document is decoded into a struct and that
// struct is encoded again, e.g., when a configuration file is rewritten
// with its normalized values.
package comment

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tree contains the head comments of the children of a mapping or
// sequence node. Mapping children are matched by their keys and the
// sequence children are matched by their positions.
type Tree struct {
	keys  map[string]entry // for a mapping node
	items []entry          // for a sequence node
}

type entry struct {
	head   string
	nested *Tree // nil unless the child is a mapping or sequence
}

// Load walks the n node recursively and returns its comments tree.
// A document node is replaced by its root node.
func Load(n *yaml.Node) (*Tree, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) != 1 {
			return nil, fmt.Errorf(
				"document has %d root nodes instead of one", len(n.Content),
			)
		}
		n = n.Content[0]
	}
	switch n.Kind {
	case yaml.MappingNode:
		t := &Tree{keys: make(map[string]entry, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			e, err := load(k.HeadComment, v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.Value, err)
			}
			t.keys[k.Value] = e
		}
		return t, nil
	case yaml.SequenceNode:
		t := &Tree{items: make([]entry, 0, len(n.Content))}
		for i, v := range n.Content {
			e, err := load(v.HeadComment, v)
			if err != nil {
				return nil, fmt.Errorf("item #%d: %w", i, err)
			}
			t.items = append(t.items, e)
		}
		return t, nil
	default:
		return nil, errors.New("node must be a mapping or a sequence")
	}
}

func load(head string, v *yaml.Node) (entry, error) {
	e := entry{head: head}
	switch v.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		nested, err := Load(v)
		if err != nil {
			return e, err
		}
		e.nested = nested
	}
	return e, nil
}

// Apply writes the comments of t into the matching children of the n
// node. Children without a recorded comment are left intact, so new
// settings keep their (possibly empty) comments. A nil t is a no-op.
func (t *Tree) Apply(n *yaml.Node) error {
	if t == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	switch {
	case n.Kind == yaml.MappingNode && t.keys != nil:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			e, ok := t.keys[k.Value]
			if !ok {
				continue
			}
			k.HeadComment = e.head
			if err := e.apply(v); err != nil {
				return fmt.Errorf("key %q: %w", k.Value, err)
			}
		}
	case n.Kind == yaml.SequenceNode && t.items != nil:
		for i, v := range n.Content {
			if i >= len(t.items) {
				break
			}
			e := t.items[i]
			v.HeadComment = e.head
			if err := e.apply(v); err != nil {
				return fmt.Errorf("item #%d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unexpected node kind: %d", n.Kind)
	}
	return nil
}

func (e entry) apply(v *yaml.Node) error {
	if e.nested == nil {
		return nil
	}
	switch v.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return e.nested.Apply(v)
	default:
		return nil // value was replaced by a scalar
	}
}
