package db

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant-menu/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is the store handle shared by the repository. It is constructed once per
// process and passed explicitly to whoever needs it.
type DB struct {
	*sql.DB
	Dialect Dialect

	pool *pgxpool.Pool
}

// Open connects using the configured driver. "pgx" goes through a pgxpool and
// is exposed as *sql.DB; "postgres" uses lib/pq; "sqlite3" opens a local file.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		pool, err := pgxpool.New(ctx, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open pgx pool: %w", err)
		}
		d := &DB{DB: stdlib.OpenDBFromPool(pool), Dialect: DialectPostgres, pool: pool}
		if err := d.PingContext(ctx); err != nil {
			d.Close()
			return nil, fmt.Errorf("ping: %w", err)
		}
		return d, nil
	case "postgres":
		sqlDB, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("ping: %w", err)
		}
		sqlDB.SetMaxOpenConns(10)
		return &DB{DB: sqlDB, Dialect: DialectPostgres}, nil
	case "sqlite3", "":
		return OpenSQLite(ctx, cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	// SQLite has a single writer; one connection keeps writes serialized
	// and pragmas applied to every statement.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("execute %q: %w", p, err)
		}
	}
	return &DB{DB: sqlDB, Dialect: DialectSQLite}, nil
}

func (d *DB) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including on panic.
func (d *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LockClause returns the row-lock suffix for a SELECT that precedes an update.
// SQLite already serializes writers and has no FOR UPDATE.
func (d *DB) LockClause() string {
	if d.Dialect == DialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}
