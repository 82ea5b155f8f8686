package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type uniqueThing struct {
	ID   int64   `gorm:"primaryKey"`
	Slot *string `gorm:"uniqueIndex"`
}

func TestIsUniqueViolationSQLite(t *testing.T) {
	db, err := ConnectWithOptions(":memory:", Options{Silent: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&uniqueThing{}))

	slot := "A"
	require.NoError(t, db.Create(&uniqueThing{Slot: &slot}).Error)

	err = db.Create(&uniqueThing{Slot: &slot}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// NULLs never collide, which is what the open-session and active-shift
	// indexes rely on.
	require.NoError(t, db.Create(&uniqueThing{}).Error)
	require.NoError(t, db.Create(&uniqueThing{}).Error)
}

func TestIsUniqueViolationClassifies(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/db"))
	assert.False(t, IsPostgresDSN("parkwash.db"))
}

func TestSQLXSharesThePool(t *testing.T) {
	db, err := ConnectWithOptions(":memory:", Options{Silent: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&uniqueThing{}))

	slot := "B"
	require.NoError(t, db.Create(&uniqueThing{Slot: &slot}).Error)

	x, err := SQLX(db)
	require.NoError(t, err)

	query := x.Rebind("SELECT COUNT(*) FROM unique_things WHERE slot = ?")
	assert.Equal(t, "SELECT COUNT(*) FROM unique_things WHERE slot = ?", query)

	var n int64
	require.NoError(t, x.Get(&n, query, "B"))
	assert.Equal(t, int64(1), n)
}
