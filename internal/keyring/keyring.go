package keyring

import (
	"errors"
	"fmt"

	"github.com/hearthhq/hearth/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound means no connection string has been stored yet.
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable means the OS keyring backend could not be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString reads the stored database connection string.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return connStr, nil
	case err == keyring.ErrNotFound:
		return "", ErrNotFound
	default:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
}

// SetConnectionString stores connStr in the OS keyring, replacing any
// previously stored value.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the stored connection string.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return nil
	case err == keyring.ErrNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
}

// IsAvailable reports whether the OS keyring backend is reachable.
// Best effort: a read that fails with anything other than "not found" counts
// as unavailable.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	return err == nil || err == keyring.ErrNotFound
}
