// Package ioquery implements the schema reconciliation layer. Each
// request opens its own single-shot connections with a strict
// acquire-use-release policy; nothing is pooled or shared between
// concurrent requests. In combined mode both sources are queried
// concurrently and a failure of either fails the whole request,
// naming the source that failed.
package ioquery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/query"
	"golang.org/x/sync/errgroup"
)

type reconciler struct {
	cfg *config.Config
}

// New creates a Reconciler over the configured sources.
func New(cfg *config.Config) phenodb.Reconciler {
	return &reconciler{cfg: cfg}
}

// connect opens a dedicated connection for one request and one source.
// The caller releases it on every exit path.
func (r *reconciler) connect(
	ctx context.Context,
	d query.Descriptor,
) (*pgx.Conn, error) {
	dbc := r.dbConfig(d)
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbc.User, dbc.Password, dbc.Host, dbc.Port,
		dbc.Database, dbc.SSLMode,
	)
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, SourceError(d.Name, err)
	}
	return conn, nil
}

func (r *reconciler) dbConfig(d query.Descriptor) *config.DatabaseConfig {
	if d.Name == string(query.SourceSecondary) {
		return &r.cfg.Secondary
	}
	return &r.cfg.Primary
}

// fetch runs one per-source fetcher with its own connection.
func fetch[T any](
	ctx context.Context,
	r *reconciler,
	d query.Descriptor,
	fn func(context.Context, *pgx.Conn, query.Descriptor) (T, error),
) (T, error) {
	var zero T
	conn, err := r.connect(ctx, d)
	if err != nil {
		return zero, err
	}
	defer conn.Close(ctx)

	res, err := fn(ctx, conn, d)
	if err != nil {
		return zero, SourceError(d.Name, err)
	}
	return res, nil
}

// fanOut resolves a source selector: one fetch for a single source,
// two concurrent fetches plus a merge for the combined mode.
func fanOut[T any](
	ctx context.Context,
	r *reconciler,
	src query.Source,
	fn func(context.Context, *pgx.Conn, query.Descriptor) (T, error),
	merge func(a, b T) T,
) (T, error) {
	descs := query.Descriptors(src)
	if len(descs) == 1 {
		return fetch(ctx, r, descs[0], fn)
	}

	var a, b T
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = fetch(gctx, r, descs[0], fn)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = fetch(gctx, r, descs[1], fn)
		return err
	})
	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return merge(a, b), nil
}
