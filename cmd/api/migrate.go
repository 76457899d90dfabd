package main

import (
	"animal-training/internal/adapters/storage/postgres"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage Postgres schema migrations",
	}
	cmd.PersistentFlags().String("dsn", "", "Postgres DSN (or DB_DSN)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := requireDSN(cmd)
			if err != nil {
				return err
			}
			if err := migrateUp(dsn); err != nil {
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration (drops all data)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := requireDSN(cmd)
			if err != nil {
				return err
			}
			m, err := postgres.NewMigrator(dsn)
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			if err := m.Down(); err != nil {
				return err
			}
			cmd.Println("Migrations rolled back")
			return nil
		},
	})

	return cmd
}

func requireDSN(cmd *cobra.Command) (string, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return "", err
	}
	if cfg.Store.DSN == "" {
		return "", oops.Code("CONFIG_INVALID").Errorf("a DSN is required (--dsn or DB_DSN)")
	}
	return cfg.Store.DSN, nil
}

func migrateUp(dsn string) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return m.Up()
}
