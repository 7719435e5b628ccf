// Package ioschema implements the SchemaManager interface for
// database schema management. This is an impure I/O package that
// wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nitpicker55555/phenodb/pkg/db"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements phenodb.SchemaManager using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager bound to a connected
// operator.
func NewManager(op db.Operator) phenodb.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM AutoMigrate
// and seeds the phase and quality vocabularies.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.seedVocabularies(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest version. The
// statistics views are dropped first because AutoMigrate may run
// ALTER TABLE on tables they depend on.
func (m *manager) Migrate(ctx context.Context, recreateViews bool) error {
	if err := m.operator.DropMaterializedViews(ctx); err != nil {
		return err
	}

	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	if recreateViews {
		return m.operator.CreateMaterializedViews(ctx)
	}

	return nil
}

// gorm opens a GORM session on top of the operator's pgx pool.
func (m *manager) gorm() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	return gormDB, nil
}
