package storage

import (
	"errors"
	"strings"

	"github.com/hearthhq/hearth/internal/storage/postgres"
	"github.com/hearthhq/hearth/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite database file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a shared PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether the config value names a PostgreSQL
// database rather than a SQLite file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries an
// inline password, which we refuse on the command line (flags leak into
// shell history and process listings).
func HasEmbeddedCredentials(connStr string) bool {
	_, err := postgres.ValidateConnString(connStr)
	return errors.Is(err, postgres.ErrEmbeddedCredentials)
}
