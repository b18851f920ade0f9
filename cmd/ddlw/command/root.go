// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the ddlw
// schema migration tool. Commands are organized using the cobra library.
// The root command starts the REST API server itself while the "db"
// sub-command can be used for the schema migration actions.
//
//	./ddlw [-c /path/of/config.yaml]                   # start server
//	./ddlw db status [--json] [-c /path/of/config.yaml]
//	./ddlw db plan up|down [version] [-c /path/of/config.yaml]
//	./ddlw db migrate up [version] [-c /path/of/config.yaml]
//	./ddlw db migrate down <version> [-c /path/of/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/momeni/ddlwork/pkg/adapter/config"
	"github.com/momeni/ddlwork/pkg/adapter/config/cfg1"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin/routes"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ddlw",
	Short: "A dialect-neutral database schema migration tool",
	Long: `A dialect-neutral database schema migration tool which
builds the schema changes of each migration as a series of expressions,
renders them for the SQL dialect of the target database, and executes
them (together with their migrations history record) in one unit of
work, so a migration is applied or reverted completely or not at all.
PostgreSQL and SQLite databases can be migrated, while the migration
plans can be rendered for the SQL Server dialects too.
Without a sub-command, the REST API server is started which allows
the schema status, plan, and migrations to be managed remotely.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, l, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var e *gin.Engine = c.Gin.NewEngine(l)
	if err = routes.Register(e, p, c, l); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(
		ctx, "starting REST API server",
		slog.String("address", c.Gin.Address),
	)
	if err = e.Run(c.Gin.Address); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// loadConfig loads the configuration file and makes its logger the
// default slog logger.
func loadConfig(ctx context.Context) (*cfg1.Config, *slog.Logger, error) {
	c, err := config.Load(ctx, cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	l, err := c.Logger.NewLogger(os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(l)
	return c, l, nil
}

// withUseCase loads the configuration file, connects to its database,
// and passes the migration use case to the f function. The connections
// pool is closed when f returns.
func withUseCase(
	f func(ctx context.Context, uc *migrationuc.UseCase) error,
) error {
	ctx := context.Background()
	c, l, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	uc, err := c.NewMigrationUseCase(p, l)
	if err != nil {
		return fmt.Errorf("creating migration use case: %w", err)
	}
	return f(ctx, uc)
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
