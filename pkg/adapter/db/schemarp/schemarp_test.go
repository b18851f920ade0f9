// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/momeni/ddlwork/internal/test/repomock"
	"github.com/momeni/ddlwork/pkg/adapter/db/schemarp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExecStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	tx := repomock.NewMockManagedTx(ctrl)
	boom := errors.New("boom")
	gomock.InOrder(
		tx.EXPECT().Exec(ctx, "CREATE TABLE a (x INTEGER)").Return(int64(0), nil),
		tx.EXPECT().Exec(ctx, "broken").Return(int64(0), boom),
	)

	err := schemarp.New(tx).Exec(
		ctx, "CREATE TABLE a (x INTEGER)", "broken", "never executed",
	)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "statement #1 (broken)")
}
