package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/vibast-solutions/ms-go-authn/app/repository/migrations"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

func (d Dialect) gooseDialect() string {
	switch d {
	case DialectSQLite:
		return "sqlite3"
	case DialectPostgres:
		return "pgx"
	default:
		return "mysql"
	}
}

// Migrate applies every pending migration for the dialect.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	return withGoose(d, func() error {
		return goose.UpContext(ctx, db, string(d))
	})
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, db *sql.DB, d Dialect) error {
	return withGoose(d, func() error {
		return goose.DownContext(ctx, db, string(d))
	})
}

func MigrationStatus(ctx context.Context, db *sql.DB, d Dialect) error {
	return withGoose(d, func() error {
		return goose.StatusContext(ctx, db, string(d))
	})
}

func withGoose(d Dialect, fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(d.gooseDialect()); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := fn(); err != nil {
		return fmt.Errorf("%s migrations: %w", d, err)
	}
	return nil
}
