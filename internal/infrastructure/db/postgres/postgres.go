package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

const defaultTimeout = 10 * time.Second

// Connect opens a Postgres connection through bun, verifies connectivity
// with a ping, and returns the handle. The caller owns its lifecycle and
// closes it at shutdown.
func Connect(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the users and farmers tables when they do not exist.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*userRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*farmerRow)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("id")`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create farmers table: %w", err)
	}

	return nil
}
