// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"parkwash/internal/database"
)

// NewDB opens a private in-memory SQLite database and migrates models.
func NewDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := database.ConnectWithOptions(":memory:", database.Options{Silent: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models...), "migrate")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
