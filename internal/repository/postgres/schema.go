package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupSchema creates all marketplace tables and indexes if they do not
// exist. Used by cmd/seed; the server assumes the schema is in place.
func SetupSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL,
				role TEXT NOT NULL,
				verified BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Users),
		// Email is the unique identity key; duplicate registration maps to 409.
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_email_key ON %s (email)`,
			tables.Users, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL
			)`, tables.Categories),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				category_id UUID NOT NULL REFERENCES %s(id),
				seller_email TEXT NOT NULL,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				price DOUBLE PRECISION NOT NULL,
				original_price DOUBLE PRECISION NOT NULL DEFAULT 0,
				years_used INTEGER NOT NULL DEFAULT 0,
				condition TEXT NOT NULL DEFAULT '',
				phone TEXT NOT NULL DEFAULT '',
				image_url TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'available',
				advertise BOOLEAN NOT NULL DEFAULT false,
				reported BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Products, tables.Categories),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_seller_email_idx ON %s (seller_email)`,
			tables.Products, tables.Products),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				user_email TEXT NOT NULL,
				item_id UUID NOT NULL REFERENCES %s(id),
				item_name TEXT NOT NULL DEFAULT '',
				price DOUBLE PRECISION NOT NULL,
				meeting_location TEXT NOT NULL DEFAULT '',
				phone TEXT NOT NULL DEFAULT '',
				paid BOOLEAN NOT NULL DEFAULT false,
				transaction_id TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Orders, tables.Products),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_user_email_idx ON %s (user_email)`,
			tables.Orders, tables.Orders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				order_id UUID NOT NULL REFERENCES %s(id),
				item_id UUID NOT NULL REFERENCES %s(id),
				transaction_id TEXT NOT NULL,
				amount DOUBLE PRECISION NOT NULL DEFAULT 0,
				user_email TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Payments, tables.Orders, tables.Products),
		// One payment per order, enforced at the store as well as in the cascade.
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_order_id_key ON %s (order_id)`,
			tables.Payments, tables.Payments),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("setup schema: %w", err)
		}
	}

	return nil
}

// DropTables removes all marketplace tables. Destructive; cmd/seed
// refuses to call this in the prod environment.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	// Reverse dependency order
	for _, table := range []string{tables.Payments, tables.Orders, tables.Products, tables.Categories, tables.Users} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
