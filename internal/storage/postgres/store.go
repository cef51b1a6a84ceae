package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/hearthhq/hearth/internal/constants"
	"github.com/hearthhq/hearth/internal/logger"
	"github.com/hearthhq/hearth/internal/migration"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

// withSearchPath pins the session to the hearth schema so the tables stay
// isolated on shared servers. An explicit search_path in connStr wins.
func withSearchPath(connStr string) string {
	if isURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("could not parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") != "" {
			return connStr
		}
		q.Set("search_path", constants.AppName)
		u.RawQuery = q.Encode()
		return u.String()
	}

	if dsnHasParam(connStr, "search_path") {
		return connStr
	}
	return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
}

func isURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// dsnHasParam reports whether a DSN-style connection string (space-separated
// key=value pairs) contains the given key, case-insensitively.
func dsnHasParam(connStr, key string) bool {
	for _, field := range strings.Fields(connStr) {
		kv := strings.SplitN(field, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), key) {
			return true
		}
	}
	return false
}

// hasSSLMode checks both URL and DSN forms for an explicit sslmode setting.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return dsnHasParam(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a well-formed PostgreSQL
// connection string (URI or DSN) and carries no embedded password.
// Passwords belong in the OS keyring, not on disk or in shell history.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if isURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
	} else if dsnHasParam(connStr, "password") {
		return false, ErrEmbeddedCredentials
	}

	return true, nil
}

// open establishes the connection pool and verifies the server is reachable.
func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return nil, fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Init connects, creates the hearth schema if needed, applies pending
// migrations, and seeds default settings on a fresh database.
func (s *Store) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{Timezone: constants.DefaultTimezone}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load connects to an already-initialized database. Unlike Init it refuses
// to proceed when the schema version does not match the binary.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := s.MigrationFS()
	if err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := s.MigrationFS()
	if err != nil {
		return err
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *Store) GetConfigPath() string {
	// Never echo the connection string; it identifies infrastructure.
	return "postgresql"
}

func (s *Store) GetDB() *sql.DB {
	return s.db
}

// MigrationFS exposes the driver's migration set so the migrate and doctor
// commands can run the same versioned files the store itself applies.
func (s *Store) MigrationFS() (fs.FS, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return subFS, nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`SELECT timezone, default_member FROM settings WHERE id = 1`)

	var settings models.Settings
	if err := row.Scan(&settings.Timezone, &settings.DefaultMember); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, default_member)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			default_member = EXCLUDED.default_member`,
		settings.Timezone, settings.DefaultMember)
	return err
}
