// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/momeni/ddlwork/pkg/adapter/config/cfg1"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin/migrationsrs"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// BasePath is the common path prefix of all REST APIs.
const BasePath = "/api/ddlwork/v1"

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the units of work provider, so use cases may acquire connections and
// transactions on demand. Register instantiates a series of "resource"
// structs, from packages which are named like migrationsrs, in order
// to adapt the use cases interfaces with the REST APIs. These resources
// are registered as request handlers using the e gin-gonic engine.
// The l logger is passed to the use cases.
func Register(
	e *gin.Engine, p repo.Pool, c *cfg1.Config, l *slog.Logger,
) error {
	migrationUseCase, err := c.NewMigrationUseCase(p, l)
	if err != nil {
		return fmt.Errorf("creating migration use case: %w", err)
	}
	r := e.Group(BasePath)
	migrationsrs.Register(r, migrationUseCase)
	return nil
}
