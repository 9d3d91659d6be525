package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/db"
)

func importCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a YAML catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := readSource(dir)
			if err != nil {
				return err
			}
			// Reject a broken catalog before touching the database
			if _, err := src.Resolve(); err != nil {
				return fmt.Errorf("resolving catalog: %w", err)
			}

			dsn := a.cfg.Database.DSN()
			if err := db.RunMigrations(ctx, dsn); err != nil {
				return err
			}
			database, err := db.New(ctx, dsn)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.NewCatalogService(database.Pool()).Import(ctx, src); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d bases, %d races, %d summon types\n",
				len(src.Bases), len(src.Races), len(src.Summons))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Catalog directory (default: built-in catalog)")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the database catalog as YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSourceFromDB(cmd.Context(), a.cfg.Database.DSN())
			if err != nil {
				return err
			}
			files, err := src.Marshal()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			for name, raw := range files {
				path := filepath.Join(dir, name)
				if err := os.WriteFile(path, raw, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported catalog to %s\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "catalog", "Output directory")
	return cmd
}
