package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/migration"
)

// migratable is satisfied by both SQL-backed stores.
type migratable interface {
	GetDB() *sql.DB
	MigrationFS() (fs.FS, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	// Init rather than Load: Load refuses to open a database whose schema
	// lags behind, which is exactly the state migrate exists to fix. Init is
	// idempotent and applies any pending migrations on the way up.
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	store, ok := ctx.Store.(migratable)
	if !ok {
		fmt.Println("Migrations applied.")
		return nil
	}

	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	migrationFS, err := store.MigrationFS()
	if err != nil {
		return err
	}

	runner := migration.NewRunner(db, migrationFS)
	version, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Printf("Database is up to date at schema version %d.\n", version)
	return nil
}
