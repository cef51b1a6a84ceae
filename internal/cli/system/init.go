package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete any existing database before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if !storage.IsPostgresConnString(dbPath) && dbPath != "postgresql" {
			if abs, err := filepath.Abs(dbPath); err == nil {
				dbPath = abs
			}
			if _, err := os.Stat(dbPath); err == nil {
				if err := ctx.Store.Close(); err != nil {
					return fmt.Errorf("failed to close existing database: %w", err)
				}
				if err := os.Remove(dbPath); err != nil {
					return fmt.Errorf("failed to delete existing database: %w", err)
				}
				fmt.Printf("Deleted existing database at: %s\n", dbPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to access existing database: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized hearth storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Next: add a member with 'hearth member add <name> --default', then 'hearth habit add'.")
	return nil
}
