package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitpicker55555/phenodb/pkg/config"
)

// Operator defines the interface for basic database management
// operations against one observation schema. It provides connection
// lifecycle management and exposes the pgxpool.Pool for lifecycle
// components (SchemaManager, Importer) to execute their specialized
// SQL operations internally.
//
// The online reconciliation layer does not use the Operator: per the
// acquire-use-release policy each API request opens its own
// single-shot connections (see internal/ioquery).
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions, bulk inserts (CopyFrom), and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the connected schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the connected schema has any tables. Used to
	// decide whether schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the connected schema. Used
	// during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error

	// DropMaterializedViews drops the statistics views so migrations
	// can run ALTER TABLE on the tables they depend on.
	DropMaterializedViews(ctx context.Context) error

	// CreateMaterializedViews creates the per-station observation
	// statistics views read by the listing queries.
	CreateMaterializedViews(ctx context.Context) error
}
