package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookclub-backend/internal/infrastructure/database"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openMigrator()
		if err != nil {
			return err
		}
		defer m.Close()

		applied, err := m.Up(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(applied) == 0 {
			fmt.Fprintln(out, "Database is up to date")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(out, "applied %s\n", v)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openMigrator()
		if err != nil {
			return err
		}
		defer m.Close()

		return printStatus(cmd, m)
	},
}

func printStatus(cmd *cobra.Command, m *database.Migrator) error {
	ctx := cmd.Context()

	all, err := database.LoadMigrations()
	if err != nil {
		return err
	}
	applied, err := m.Applied(ctx)
	if err != nil {
		return err
	}

	appliedAt := make(map[string]string, len(applied))
	for _, a := range applied {
		appliedAt[a.Version] = a.AppliedAt.Format("2006-01-02 15:04:05")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATUS\tAPPLIED AT")
	for _, mg := range all {
		if at, ok := appliedAt[mg.Version]; ok {
			fmt.Fprintf(w, "%s\tapplied\t%s\n", mg.Version, at)
		} else {
			fmt.Fprintf(w, "%s\tpending\t-\n", mg.Version)
		}
	}
	return w.Flush()
}
