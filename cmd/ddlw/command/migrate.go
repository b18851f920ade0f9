// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate up [version] | migrate down <version>",
	Short: "Apply or revert the schema migrations",
	Long: `Apply or revert the schema migrations of the configured
database. The up direction applies the pending migrations, by their
version order, up to the given version (or the latest version if it is
omitted). The down direction reverts the applied migrations, by their
reverse order, while their versions are greater than the given version.
Pass 0.0.0 in order to revert all of them.

Each migration is rendered completely before any of its statements are
executed. Its statements and its history record are executed in one
unit of work, so a failing migration leaves no trace and aborts the run.
The migrations which were applied or reverted are printed.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
			return err
		}
		if args[0] == "down" && len(args) != 2 {
			return fmt.Errorf("migrate down requires a target version")
		}
		return nil
	},
	ValidArgs: []string{"up", "down"},
	RunE:      migrate,
}

func migrate(cmd *cobra.Command, args []string) error {
	dir, target, err := parseArgs(args)
	if err != nil {
		return err
	}
	return withUseCase(func(ctx context.Context, uc *migrationuc.UseCase) error {
		run := uc.Up
		if dir == model.Down {
			run = uc.Down
		}
		steps, err := run(ctx, target)
		printSteps(cmd.OutOrStdout(), steps, false)
		if err != nil {
			return fmt.Errorf("migrating %s: %w", dir, err)
		}
		if len(steps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
		}
		return nil
	})
}

// printSteps prints one line per step, followed by its statements if
// stmts is true.
func printSteps(w io.Writer, steps []migrationuc.Step, stmts bool) {
	for _, s := range steps {
		fmt.Fprintf(w, "-- %s v%s: %s\n", s.Direction, s.Version, s.Name)
		if !stmts {
			continue
		}
		for _, stmt := range s.Statements {
			stmt = strings.TrimRight(stmt, "; \n")
			fmt.Fprintf(w, "%s;\n", stmt)
		}
	}
}

func init() {
	dbCmd.AddCommand(migrateCmd)
}
