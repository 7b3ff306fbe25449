package database

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema is the reference PostgreSQL schema: tables, referential actions and
// the two reporting views.
//
//go:embed schema.sql
var Schema string

// ApplySchema executes Schema on pool. Every statement is idempotent.
func ApplySchema(ctx context.Context, pool Pool) error {
	// No arguments, so pgx sends it over the simple protocol and the
	// multi-statement script runs as one batch.
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("database.ApplySchema: %w", err)
	}
	return nil
}
