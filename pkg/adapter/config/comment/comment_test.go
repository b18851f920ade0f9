// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package comment_test

import (
	"testing"

	"github.com/momeni/ddlwork/pkg/adapter/config/comment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const doc = `# database settings
database:
  # sqlite or postgres
  driver: sqlite
  path: ddlwork.db
tags:
  # first tag
  - a
  - b
`

type config struct {
	Database struct {
		Driver string
		Path   string
		Port   int
	}
	Tags []string
}

func TestCommentsSurviveReencoding(t *testing.T) {
	n := &yaml.Node{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), n))
	tree, err := comment.Load(n)
	require.NoError(t, err)

	c := &config{}
	require.NoError(t, n.Decode(c))
	c.Database.Port = 5432

	out := &yaml.Node{}
	require.NoError(t, out.Encode(c))
	require.NoError(t, tree.Apply(out))
	root := out
	require.Equal(t, yaml.MappingNode, root.Kind)
	assert.Equal(t, "database", root.Content[0].Value)
	assert.Equal(t, "# database settings", root.Content[0].HeadComment)

	db := root.Content[1]
	assert.Equal(t, "driver", db.Content[0].Value)
	assert.Equal(t, "# sqlite or postgres", db.Content[0].HeadComment)
	assert.Equal(t, "port", db.Content[4].Value)
	assert.Empty(t, db.Content[4].HeadComment)

	tags := root.Content[3]
	require.Equal(t, yaml.SequenceNode, tags.Kind)
	assert.Equal(t, "# first tag", tags.Content[0].HeadComment)
	assert.Empty(t, tags.Content[1].HeadComment)
}

func TestNilTreeIsNoOp(t *testing.T) {
	var tree *comment.Tree
	assert.NoError(t, tree.Apply(&yaml.Node{Kind: yaml.ScalarNode}))
}

func TestLoadScalar(t *testing.T) {
	_, err := comment.Load(&yaml.Node{Kind: yaml.ScalarNode, Value: "x"})
	assert.Error(t, err)
}
