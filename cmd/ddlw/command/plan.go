// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var planAsJSON bool

var planCmd = &cobra.Command{
	Use:   "plan up|down [version]",
	Short: "Print the statements of a migration run without executing",
	Long: `Print the statements which would be executed by a migration
run with the same arguments, without changing the database. The plan
is rendered by the plan-dialect of the configuration file, or by the
database dialect if it is omitted. So the scripts of another DBMS can
be reviewed (or executed manually) too.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"up", "down"},
	RunE:      plan,
}

func plan(cmd *cobra.Command, args []string) error {
	dir, target, err := parseArgs(args)
	if err != nil {
		return err
	}
	return withUseCase(func(ctx context.Context, uc *migrationuc.UseCase) error {
		steps, err := uc.Plan(ctx, dir, target)
		if err != nil {
			return fmt.Errorf("planning %s: %w", dir, err)
		}
		w := cmd.OutOrStdout()
		if planAsJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(steps)
		}
		printSteps(w, steps, true)
		return nil
	})
}

func init() {
	planCmd.Flags().BoolVar(
		&planAsJSON, "json", false, "print the plan in JSON format",
	)
	dbCmd.AddCommand(planCmd)
}
