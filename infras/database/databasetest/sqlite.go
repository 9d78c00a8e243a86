// Package databasetest opens migrated in-memory SQLite stores for tests.
package databasetest

import (
	"tasktracker/config"
	"tasktracker/helper"
	"tasktracker/infras/database"
	"testing"

	"github.com/stretchr/testify/require"
)

const migrationTable = "schema_migrations"

// NewSQLite returns a connection to a fresh in-memory database with every
// migration applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *database.Connection {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, helper.UpWithDB(db.DB, config.DriverSQLite, migrationTable))

	conn := database.NewFromDB(db)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}
