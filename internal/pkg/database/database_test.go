package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", name))
	assert.NoError(t, err)
	return string(data)
}

// The repositories address columns by name through sqlx struct tags, so
// the DDL has to define exactly those names.
func TestMigrationsDefineRepositoryColumns(t *testing.T) {
	t.Run("users table", func(t *testing.T) {
		ddl := readMigration(t, "000001_create_users_table.up.sql")

		assert.Contains(t, ddl, "password_hash VARCHAR")
		assert.Contains(t, ddl, "phone VARCHAR")
		assert.NotContains(t, ddl, "phone_number")
	})

	t.Run("packages tables", func(t *testing.T) {
		ddl := readMigration(t, "000002_create_packages_tables.up.sql")

		assert.Contains(t, ddl, "total_seats INT")
		assert.Contains(t, ddl, "available_seats INT")
		assert.Contains(t, ddl, "duration_days INT")
		assert.Contains(t, ddl, "template JSONB")
		assert.NotContains(t, ddl, "seat_quota")
	})
}
