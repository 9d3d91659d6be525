package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/db"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := a.cfg.Database.DSN()
			if err := db.RunMigrations(cmd.Context(), dsn); err != nil {
				return err
			}
			version, err := db.SchemaVersion(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}
}
