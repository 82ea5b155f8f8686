package database

import (
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type Options struct {
	// Silent disables gorm's SQL logger, used by tests.
	Silent bool
}

func Connect(dsn string) (*gorm.DB, error) {
	return ConnectWithOptions(dsn, Options{})
}

func ConnectWithOptions(dsn string, opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{}
	if opts.Silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	if IsPostgresDSN(dsn) {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if !opts.Silent {
		log.Println("Using SQLite for local development:", dsn)
	}

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer; one connection serialises every
	// transaction and keeps ":memory:" databases shared across queries.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// SQLX wraps the pool behind db for hand-written read queries. Both share
// one *sql.DB, so the SQLite single-connection limit still holds.
func SQLX(db *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, db.Dialector.Name()), nil
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsUniqueViolation reports whether err came from a unique index, for both
// the Postgres and the SQLite drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
