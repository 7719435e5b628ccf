package query

// Overview is the dataset summary returned by the API root listing.
type Overview struct {
	Source           string `json:"source"`
	SpeciesCount     int64  `json:"species_count"`
	StationCount     int64  `json:"station_count"`
	ObservationCount int64  `json:"observation_count"`
	YearMin          int    `json:"year_min"`
	YearMax          int    `json:"year_max"`
}

// QualityRow is one quality level with its observation count.
type QualityRow struct {
	ID          int    `json:"quality_level_id"`
	Description string `json:"description"`
	Count       int64  `json:"observation_count"`
}

// Distribution is the spatial and temporal summary served by the
// cached distribution endpoint.
type Distribution struct {
	Stations []StationRow `json:"stations"`
	Years    []TrendRow   `json:"years"`
}

// MergeOverviews combines the per-source summaries of the combined
// mode. Counts are summed; the year range is the union. Station and
// species counts can overlap between sources, so the sum is an upper
// bound, consistent with how the dimension listings sum counts before
// deduplication collapses shared keys.
func MergeOverviews(a, b Overview) Overview {
	res := Overview{
		Source:           string(SourceBoth),
		SpeciesCount:     a.SpeciesCount + b.SpeciesCount,
		StationCount:     a.StationCount + b.StationCount,
		ObservationCount: a.ObservationCount + b.ObservationCount,
		YearMin:          a.YearMin,
		YearMax:          a.YearMax,
	}
	if b.YearMin != 0 && (res.YearMin == 0 || b.YearMin < res.YearMin) {
		res.YearMin = b.YearMin
	}
	if b.YearMax > res.YearMax {
		res.YearMax = b.YearMax
	}
	return res
}
