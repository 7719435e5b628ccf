package ioquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nitpicker55555/phenodb/pkg/query"
	"github.com/nitpicker55555/phenodb/pkg/xref"
)

func fetchOverview(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) (query.Overview, error) {
	res := query.Overview{Source: d.Name}
	err := conn.QueryRow(ctx, d.OverviewSQL()).Scan(
		&res.SpeciesCount, &res.StationCount, &res.ObservationCount,
		&res.YearMin, &res.YearMax,
	)
	return res, err
}

func fetchStations(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) ([]query.StationRow, error) {
	rows, err := conn.Query(ctx, d.StationsSQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.StationRow
	for rows.Next() {
		var r query.StationRow
		if err := rows.Scan(&r.Name, &r.Lat, &r.Lon, &r.Count); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchSpecies(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) ([]query.SpeciesRow, error) {
	return scanSpecies(ctx, conn, d.SpeciesSQL(), nil)
}

func scanSpecies(
	ctx context.Context,
	conn *pgx.Conn,
	sql string,
	args []any,
) ([]query.SpeciesRow, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.SpeciesRow
	for rows.Next() {
		var r query.SpeciesRow
		err := rows.Scan(&r.ID, &r.NameDe, &r.NameEn, &r.NameLa,
			&r.GroupName, &r.Count)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchPhases(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) ([]query.PhaseRow, error) {
	return scanPhases(ctx, conn, d.PhasesSQL(), nil)
}

func scanPhases(
	ctx context.Context,
	conn *pgx.Conn,
	sql string,
	args []any,
) ([]query.PhaseRow, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.PhaseRow
	for rows.Next() {
		var r query.PhaseRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Count); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchObservations(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
	f query.Filter,
) ([]query.ObservationRow, error) {
	sql, args := d.ObservationsSQL(f)
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.ObservationRow
	for rows.Next() {
		r := query.ObservationRow{Source: d.Name}
		err := rows.Scan(&r.Year, &r.DayOfYear, &r.SpeciesID,
			&r.PhaseID, &r.Station)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchTrends(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
	f query.Filter,
) ([]query.TrendRow, error) {
	sql, args := d.TrendsSQL(f)
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.TrendRow
	for rows.Next() {
		var r query.TrendRow
		if err := rows.Scan(&r.Year, &r.AvgDOY, &r.Count); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchQuality(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) ([]query.QualityRow, error) {
	rows, err := conn.Query(ctx, d.QualitySQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []query.QualityRow
	for rows.Next() {
		var r query.QualityRow
		if err := rows.Scan(&r.ID, &r.Description, &r.Count); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func fetchAllSpecies(
	ctx context.Context,
	conn *pgx.Conn,
	d query.Descriptor,
) ([]xref.Species, error) {
	rows, err := conn.Query(ctx, d.AllSpeciesSQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []xref.Species
	for rows.Next() {
		var sp xref.Species
		err := rows.Scan(&sp.ID, &sp.NameDe, &sp.NameEn, &sp.NameLa)
		if err != nil {
			return nil, err
		}
		res = append(res, sp)
	}
	return res, rows.Err()
}
