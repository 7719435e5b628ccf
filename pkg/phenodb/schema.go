package phenodb

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent.
type SchemaManager interface {
	// Create creates the initial schema using GORM AutoMigrate and
	// seeds the phase and quality vocabularies. If tables already
	// exist, behavior depends on user confirmation via DropAllTables.
	Create(ctx context.Context) error

	// Migrate updates the schema to the latest version. Materialized
	// views are dropped before migration (required for ALTER TABLE)
	// and optionally recreated afterwards.
	Migrate(ctx context.Context, recreateViews bool) error
}
