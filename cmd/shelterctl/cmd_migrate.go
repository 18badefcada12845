package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pg "shelter-dogs/internal/adapters/storage/postgres"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply (or roll back) the database migrations",
	Long: `Apply the embedded SQL migrations to DB_DSN.

With --down the last applied migration is rolled back.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the last migration")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := pg.Migrate(db, migrateDown)
	if err != nil {
		return err
	}
	log.Info("migrations done", map[string]any{"applied": n, "down": migrateDown})
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
	return nil
}
