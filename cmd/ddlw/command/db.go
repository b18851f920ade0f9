// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database schema management actions",
	Long: `Database schema management actions can be chosen by
sub-commands. The status lists the known migrations and whether they
are applied, the plan prints the statements which a migration run would
execute, and the migrate applies or reverts the migrations.`,
}

// parseArgs parses the direction and the optional target version.
func parseArgs(args []string) (model.Direction, model.SemVer, error) {
	dir, err := model.ParseDirection(args[0])
	if err != nil {
		return dir, model.SemVer{}, err
	}
	var target model.SemVer
	if len(args) > 1 {
		target, err = model.ParseSemVer(args[1])
		if err != nil {
			return dir, target, fmt.Errorf("parsing version: %w", err)
		}
	}
	return dir, target, nil
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
