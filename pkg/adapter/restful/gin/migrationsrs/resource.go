// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationsrs realizes the migrations resource, allowing the
// schema status, plan, and migration REST APIs to be accepted and
// delegated to the migration use case.
package migrationsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
)

type resource struct {
	uc *migrationuc.UseCase
}

// Register instantiates a resource adapting the uc use case instance
// with the relevant REST APIs including:
//  1. GET request to migrations
//     in order to list the registered and applied migrations.
//  2. GET request to migrations/plan?direction=up&target=1.1.0
//     in order to fetch the statements which would be executed.
//  3. POST request to migrations/up?target=1.1.0
//     in order to apply the pending migrations up to the target.
//  4. POST request to migrations/down?target=1.0.0
//     in order to revert the applied migrations down to the target.
//
// An omitted target stands for the latest version (for up) and for an
// empty schema (for down).
func Register(r *gin.RouterGroup, uc *migrationuc.UseCase) {
	rs := &resource{uc: uc}
	r.GET("migrations", rs.Status)
	r.GET("migrations/plan", rs.Plan)
	r.POST("migrations/up", rs.Migrate(model.Up))
	r.POST("migrations/down", rs.Migrate(model.Down))
}

func (rs *resource) Status(c *gin.Context) {
	sts, err := rs.uc.Status(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrations": sts})
}

func (rs *resource) Plan(c *gin.Context) {
	req, ok := DserPlanReq(c)
	if !ok {
		return
	}
	steps, err := rs.uc.Plan(c, req.Direction, req.Target)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": nonNil(steps)})
}

func (rs *resource) Migrate(dir model.Direction) gin.HandlerFunc {
	f := rs.uc.Up
	if dir == model.Down {
		f = rs.uc.Down
	}
	return func(c *gin.Context) {
		target, ok := DserTargetReq(c)
		if !ok {
			return
		}
		steps, err := f(c, target)
		if err != nil {
			c.JSON(serdser.StatusCode(err), gin.H{
				"detail": err.Error(),
				"steps":  nonNil(steps),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"steps": nonNil(steps)})
	}
}

func nonNil(steps []migrationuc.Step) []migrationuc.Step {
	if steps == nil {
		return []migrationuc.Step{}
	}
	return steps
}
