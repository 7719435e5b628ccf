// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/db"
)

// pgxOperator implements db.Operator using pgxpool for connection
// pooling. One operator manages one source database.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL. Pool settings
// are hardcoded; the lifecycle commands never need more than a handful
// of connections.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the public schema.
func (p *pgxOperator) HasTables(
	ctx context.Context,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := p.pool.QueryRow(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops all tables in the public schema.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return QueryTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return ScanTableError(err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return ScanTableError(err)
	}

	for _, table := range tables {
		dropSQL := fmt.Sprintf(
			"DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}

// DropMaterializedViews drops all materialized views in the public
// schema.
func (p *pgxOperator) DropMaterializedViews(
	ctx context.Context,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	query := `
		SELECT matviewname
		FROM pg_matviews
		WHERE schemaname = 'public'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return ViewError("list", err)
	}
	defer rows.Close()

	var views []string
	for rows.Next() {
		var viewName string
		if err := rows.Scan(&viewName); err != nil {
			return ViewError("scan", err)
		}
		views = append(views, viewName)
	}

	if err := rows.Err(); err != nil {
		return ViewError("scan", err)
	}

	for _, view := range views {
		dropSQL := fmt.Sprintf(
			"DROP MATERIALIZED VIEW IF EXISTS %s CASCADE", view)
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return ViewError(view, err)
		}
	}

	return nil
}

// CreateMaterializedViews creates the per-station observation
// statistics view read by the station listing queries.
func (p *pgxOperator) CreateMaterializedViews(
	ctx context.Context,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	viewSQL := `CREATE MATERIALIZED VIEW station_observation_stats AS
SELECT o.station_id,
	COUNT(o.observation_id) AS observation_count,
	COUNT(DISTINCT o.species_id) AS species_count,
	MIN(o.reference_year) AS year_min,
	MAX(o.reference_year) AS year_max
FROM dwd_observation o
GROUP BY o.station_id`

	if _, err := p.pool.Exec(ctx, viewSQL); err != nil {
		return ViewError("station_observation_stats", err)
	}

	indexSQL := `CREATE UNIQUE INDEX IF NOT EXISTS
		idx_station_observation_stats
		ON station_observation_stats (station_id)`
	if _, err := p.pool.Exec(ctx, indexSQL); err != nil {
		return ViewError("station_observation_stats", err)
	}

	return nil
}
