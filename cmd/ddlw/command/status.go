// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var statusAsJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the migrations and their applied time",
	Long: `List the registered migrations, and the applied migrations which
are not registered anymore, by their version order. Pending migrations
are marked as such.`,
	Args: cobra.NoArgs,
	RunE: status,
}

func status(cmd *cobra.Command, _ []string) error {
	return withUseCase(func(ctx context.Context, uc *migrationuc.UseCase) error {
		sts, err := uc.Status(ctx)
		if err != nil {
			return fmt.Errorf("listing migrations: %w", err)
		}
		if statusAsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sts)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
		for _, st := range sts {
			at := "pending"
			if st.AppliedAt != nil {
				at = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", st.Version, st.Name, at)
		}
		return w.Flush()
	})
}

func init() {
	statusCmd.Flags().BoolVar(
		&statusAsJSON, "json", false, "print the status in JSON format",
	)
	dbCmd.AddCommand(statusCmd)
}
