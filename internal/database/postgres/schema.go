package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables names the relations used by the store, all in one schema.
type Tables struct {
	Schema   string
	Orders   string
	Products string
	Users    string
	Coupons  string
}

func (t Tables) qt(tbl string) string {
	if t.Schema == "" {
		return fmt.Sprintf(`"%s"`, tbl)
	}
	return fmt.Sprintf(`"%s"."%s"`, t.Schema, tbl)
}

// Migrate creates the schema and tables when they are missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool, t Tables) error {
	var stmts []string
	if t.Schema != "" {
		stmts = append(stmts, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, t.Schema))
	}
	stmts = append(stmts,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			photo       TEXT NOT NULL DEFAULT '',
			price       DOUBLE PRECISION NOT NULL,
			stock       INTEGER NOT NULL DEFAULT 1,
			category    TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.qt(t.Products)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_created_idx ON %s (created_at)`, t.Products, t.qt(t.Products)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL UNIQUE,
			photo       TEXT NOT NULL DEFAULT '',
			role        TEXT NOT NULL DEFAULT 'user',
			gender      TEXT NOT NULL,
			dob         TIMESTAMPTZ NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.qt(t.Users)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id                TEXT PRIMARY KEY,
			user_id           TEXT NOT NULL,
			shipping_info     JSONB NOT NULL,
			subtotal          DOUBLE PRECISION,
			tax               DOUBLE PRECISION,
			shipping_charges  DOUBLE PRECISION,
			discount          DOUBLE PRECISION,
			total             DOUBLE PRECISION,
			status            TEXT NOT NULL DEFAULT 'Processing',
			order_items       JSONB NOT NULL DEFAULT '[]',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.qt(t.Orders)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_created_idx ON %s (created_at)`, t.Orders, t.qt(t.Orders)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_user_idx ON %s (user_id)`, t.Orders, t.qt(t.Orders)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id      TEXT PRIMARY KEY,
			code    TEXT NOT NULL UNIQUE,
			amount  DOUBLE PRECISION NOT NULL
		)`, t.qt(t.Coupons)),
	)

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
