// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/ddlwork/pkg/core/model"
)

type rawTargetReq struct {
	Target string `form:"target" binding:"omitempty,max=32"`
}

type rawPlanReq struct {
	Direction string `form:"direction" binding:"required,oneof=up down"`
	rawTargetReq
}

type planReq struct {
	Direction model.Direction
	Target    model.SemVer
}

// DserTargetReq deserializes the optional target query parameter.
// The zero version is returned if it is omitted.
func DserTargetReq(c *gin.Context) (model.SemVer, bool) {
	req := &rawTargetReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return model.SemVer{}, false
	}
	return parseTarget(c, req.Target)
}

// DserPlanReq deserializes the direction and target query parameters.
func DserPlanReq(c *gin.Context) (*planReq, bool) {
	req := &rawPlanReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil, false
	}
	val := &planReq{}
	var err error
	val.Direction, err = model.ParseDirection(req.Direction)
	if err != nil {
		// unreachable after the oneof validation
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return nil, false
	}
	var ok bool
	val.Target, ok = parseTarget(c, req.Target)
	return val, ok
}

func parseTarget(c *gin.Context, s string) (model.SemVer, bool) {
	if s == "" {
		return model.SemVer{}, true
	}
	v, err := model.ParseSemVer(s)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "target", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return model.SemVer{}, false
	}
	return v, true
}
