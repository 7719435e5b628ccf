package query

import "sort"

// MergeStations combines station listings from both sources. Rows are
// grouped by station name (the natural key shared across schemas),
// observation counts are summed, and the result is re-sorted by the
// summed count descending. Coordinates come from whichever source has
// them; ties break by name so output order is deterministic.
func MergeStations(a, b []StationRow) []StationRow {
	byName := make(map[string]*StationRow)
	var order []string
	for _, row := range append(append([]StationRow{}, a...), b...) {
		got, ok := byName[row.Name]
		if !ok {
			cp := row
			byName[row.Name] = &cp
			order = append(order, row.Name)
			continue
		}
		got.Count += row.Count
		if got.Lat == 0 && got.Lon == 0 {
			got.Lat, got.Lon = row.Lat, row.Lon
		}
	}
	res := make([]StationRow, 0, len(order))
	for _, name := range order {
		res = append(res, *byName[name])
	}
	sortByCountDesc(res, func(r StationRow) (int64, string) {
		return r.Count, r.Name
	})
	return res
}

// MergeSpecies combines species listings from both sources, grouped by
// species id. Name fields missing in one source are filled from the
// other.
func MergeSpecies(a, b []SpeciesRow) []SpeciesRow {
	byID := make(map[int]*SpeciesRow)
	var order []int
	for _, row := range append(append([]SpeciesRow{}, a...), b...) {
		got, ok := byID[row.ID]
		if !ok {
			cp := row
			byID[row.ID] = &cp
			order = append(order, row.ID)
			continue
		}
		got.Count += row.Count
		if got.NameDe == "" {
			got.NameDe = row.NameDe
		}
		if got.NameEn == "" {
			got.NameEn = row.NameEn
		}
		if got.NameLa == "" {
			got.NameLa = row.NameLa
		}
		if got.GroupName == "" {
			got.GroupName = row.GroupName
		}
	}
	res := make([]SpeciesRow, 0, len(order))
	for _, id := range order {
		res = append(res, *byID[id])
	}
	sortByCountDesc(res, func(r SpeciesRow) (int64, string) {
		return r.Count, r.NameLa
	})
	return res
}

// MergePhases combines phase listings from both sources, grouped by
// phase id.
func MergePhases(a, b []PhaseRow) []PhaseRow {
	byID := make(map[int]*PhaseRow)
	var order []int
	for _, row := range append(append([]PhaseRow{}, a...), b...) {
		got, ok := byID[row.ID]
		if !ok {
			cp := row
			byID[row.ID] = &cp
			order = append(order, row.ID)
			continue
		}
		got.Count += row.Count
		if got.Name == "" {
			got.Name = row.Name
		}
	}
	res := make([]PhaseRow, 0, len(order))
	for _, id := range order {
		res = append(res, *byID[id])
	}
	sortByCountDesc(res, func(r PhaseRow) (int64, string) {
		return r.Count, r.Name
	})
	return res
}

// MergeTrends combines yearly aggregates from both sources. Rows are
// grouped by year and the day-of-year average is recomputed as a
// count-weighted mean. A naive average of the two per-source averages
// would skew years where one source has far more samples.
func MergeTrends(a, b []TrendRow) []TrendRow {
	type acc struct {
		weighted float64
		count    int64
	}
	byYear := make(map[int]*acc)
	for _, row := range append(append([]TrendRow{}, a...), b...) {
		got, ok := byYear[row.Year]
		if !ok {
			got = &acc{}
			byYear[row.Year] = got
		}
		got.weighted += row.AvgDOY * float64(row.Count)
		got.count += row.Count
	}
	res := make([]TrendRow, 0, len(byYear))
	for year, ac := range byYear {
		row := TrendRow{Year: year, Count: ac.count}
		if ac.count > 0 {
			row.AvgDOY = ac.weighted / float64(ac.count)
		}
		res = append(res, row)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Year < res[j].Year })
	return res
}

// MergeObservations concatenates raw observations from both sources,
// sorts by year descending then day-of-year ascending, and truncates
// to the combined limit. Each source was queried with the full limit,
// so one source can crowd out the other near the boundary; this
// under-fetch is a documented trait of the combined mode, kept rather
// than papered over.
func MergeObservations(a, b []ObservationRow, limit int) []ObservationRow {
	res := append(append([]ObservationRow{}, a...), b...)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Year != res[j].Year {
			return res[i].Year > res[j].Year
		}
		return res[i].DayOfYear < res[j].DayOfYear
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// sortByCountDesc sorts rows by count descending with a name tie-break.
func sortByCountDesc[T any](rows []T, key func(T) (int64, string)) {
	sort.SliceStable(rows, func(i, j int) bool {
		ci, ni := key(rows[i])
		cj, nj := key(rows[j])
		if ci != cj {
			return ci > cj
		}
		return ni < nj
	})
}
