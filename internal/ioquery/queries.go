package ioquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nitpicker55555/phenodb/pkg/query"
	"github.com/nitpicker55555/phenodb/pkg/xref"
	"golang.org/x/sync/errgroup"
)

func (r *reconciler) Overview(
	ctx context.Context,
	src query.Source,
) (query.Overview, error) {
	return fanOut(ctx, r, src, fetchOverview, query.MergeOverviews)
}

func (r *reconciler) Stations(
	ctx context.Context,
	src query.Source,
) ([]query.StationRow, error) {
	return fanOut(ctx, r, src, fetchStations, query.MergeStations)
}

func (r *reconciler) Species(
	ctx context.Context,
	src query.Source,
) ([]query.SpeciesRow, error) {
	return fanOut(ctx, r, src, fetchSpecies, query.MergeSpecies)
}

func (r *reconciler) Phases(
	ctx context.Context,
	src query.Source,
) ([]query.PhaseRow, error) {
	return fanOut(ctx, r, src, fetchPhases, query.MergePhases)
}

func (r *reconciler) Observations(
	ctx context.Context,
	src query.Source,
	f query.Filter,
) ([]query.ObservationRow, error) {
	fn := func(
		ctx context.Context, conn *pgx.Conn, d query.Descriptor,
	) ([]query.ObservationRow, error) {
		return fetchObservations(ctx, conn, d, f)
	}
	merge := func(a, b []query.ObservationRow) []query.ObservationRow {
		return query.MergeObservations(a, b, f.Limit)
	}
	res, err := fanOut(ctx, r, src, fn, merge)
	if err != nil {
		return nil, err
	}
	// Single-source rows are already sorted and limited by SQL; the
	// merge handles the combined truncation.
	return res, nil
}

func (r *reconciler) Trends(
	ctx context.Context,
	src query.Source,
	f query.Filter,
) ([]query.TrendRow, error) {
	fn := func(
		ctx context.Context, conn *pgx.Conn, d query.Descriptor,
	) ([]query.TrendRow, error) {
		return fetchTrends(ctx, conn, d, f)
	}
	return fanOut(ctx, r, src, fn, query.MergeTrends)
}

func (r *reconciler) Quality(
	ctx context.Context,
) ([]query.QualityRow, error) {
	return fetch(ctx, r, query.Primary(), fetchQuality)
}

func (r *reconciler) SpeciesByPhase(
	ctx context.Context,
	src query.Source,
	phaseID int,
) ([]query.SpeciesRow, error) {
	fn := func(
		ctx context.Context, conn *pgx.Conn, d query.Descriptor,
	) ([]query.SpeciesRow, error) {
		sql, args := d.SpeciesByPhaseSQL(phaseID)
		return scanSpecies(ctx, conn, sql, args)
	}
	return fanOut(ctx, r, src, fn, query.MergeSpecies)
}

func (r *reconciler) PhasesBySpecies(
	ctx context.Context,
	src query.Source,
	speciesID int,
) ([]query.PhaseRow, error) {
	fn := func(
		ctx context.Context, conn *pgx.Conn, d query.Descriptor,
	) ([]query.PhaseRow, error) {
		sql, args := d.PhasesBySpeciesSQL(speciesID)
		return scanPhases(ctx, conn, sql, args)
	}
	return fanOut(ctx, r, src, fn, query.MergePhases)
}

// CompareSpecies cross-references the transcription vocabulary against
// the reference one: membership is exact name equality on any of the
// three name fields, computed per request, never cached.
func (r *reconciler) CompareSpecies(
	ctx context.Context,
) ([]xref.Comparison, error) {
	var primary, secondary []xref.Species

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = fetch(gctx, r, query.Primary(), fetchAllSpecies)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = fetch(gctx, r, query.Secondary(), fetchAllSpecies)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return xref.Compare(xref.NewNameSet(primary), secondary), nil
}

// ComparePhases collects phase statistics for one species name from
// both schemas, matching the name against any of the three localized
// name fields.
func (r *reconciler) ComparePhases(
	ctx context.Context,
	name string,
) (query.PhaseComparison, error) {
	res := query.PhaseComparison{Name: name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fn := func(
			ctx context.Context, conn *pgx.Conn, d query.Descriptor,
		) (query.PhaseComparison, error) {
			var part query.PhaseComparison
			sql, args := d.SpeciesMatchesSQL(name)
			rows, err := conn.Query(ctx, sql, args...)
			if err != nil {
				return part, err
			}
			defer rows.Close()
			for rows.Next() {
				var sp xref.Species
				err = rows.Scan(&sp.ID, &sp.NameDe, &sp.NameEn, &sp.NameLa)
				if err != nil {
					return part, err
				}
				part.PrimaryMatches = append(part.PrimaryMatches, sp)
			}
			if err = rows.Err(); err != nil {
				return part, err
			}

			sql, args = d.PhasesBySpeciesNameSQL(name)
			part.PrimaryPhases, err = scanPhases(ctx, conn, sql, args)
			return part, err
		}
		part, err := fetch(gctx, r, query.Primary(), fn)
		if err != nil {
			return err
		}
		res.PrimaryMatches = part.PrimaryMatches
		res.PrimaryPhases = part.PrimaryPhases
		return nil
	})
	g.Go(func() error {
		fn := func(
			ctx context.Context, conn *pgx.Conn, d query.Descriptor,
		) ([]query.PhaseRow, error) {
			sql, args := d.PhasesBySpeciesNameSQL(name)
			return scanPhases(ctx, conn, sql, args)
		}
		phases, err := fetch(gctx, r, query.Secondary(), fn)
		if err != nil {
			return err
		}
		res.SecondaryPhases = phases
		return nil
	})
	if err := g.Wait(); err != nil {
		return query.PhaseComparison{}, err
	}
	return res, nil
}

func (r *reconciler) Distribution(
	ctx context.Context,
) (query.Distribution, error) {
	var res query.Distribution

	stations, err := r.Stations(ctx, query.SourceBoth)
	if err != nil {
		return res, err
	}
	years, err := r.Trends(ctx, query.SourceBoth, query.Filter{})
	if err != nil {
		return res, err
	}

	res.Stations = stations
	res.Years = years
	return res, nil
}
