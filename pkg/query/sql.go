package query

import (
	"fmt"
	"strings"
)

// Each source is its own database connection, so generated SQL never
// qualifies table names; the descriptor drives the structural
// differences between the two variants instead.

// StationsSQL returns the station listing query for one source. The
// curated schema reads pre-aggregated counts from its materialized
// view; the transcription schema stores duplicate station rows under
// several identifiers and aggregates by station name instead.
func (d Descriptor) StationsSQL() string {
	if d.HasStatsView {
		return `
SELECT s.station_name, s.lat, s.lon, v.observation_count
  FROM dwd_station s
  JOIN station_observation_stats v
    ON v.station_id = s.station_id
 ORDER BY v.observation_count DESC`
	}
	return `
SELECT s.station_name, MIN(s.lat), MIN(s.lon), COUNT(o.observation_id)
  FROM dwd_station s
  LEFT JOIN dwd_observation o
    ON o.station_id = s.station_id
 GROUP BY s.station_name
 ORDER BY COUNT(o.observation_id) DESC`
}

// SpeciesSQL returns the species listing query for one source.
func (d Descriptor) SpeciesSQL() string {
	speciesSrc := "dwd_species"
	if d.DedupDimensions {
		// Duplicate vocabulary rows share a species_id; collapse them
		// before joining observations so counts are not multiplied.
		speciesSrc = `(
    SELECT DISTINCT ON (species_id)
           species_id, species_name_de, species_name_en, species_name_la
      FROM dwd_species
     ORDER BY species_id
  )`
	}
	groupCol := "''"
	groupJoin := ""
	groupBy := ""
	if d.HasGroupNames {
		groupCol = "COALESCE(g.group_name, '')"
		groupJoin = `
  LEFT JOIN dwd_species_group g
    ON g.species_group_id = sp.species_group_id`
		groupBy = ", g.group_name"
	}
	return fmt.Sprintf(`
SELECT sp.species_id, sp.species_name_de, sp.species_name_en,
       sp.species_name_la, %s, COUNT(o.observation_id)
  FROM %s sp%s
  LEFT JOIN dwd_observation o
    ON o.species_id = sp.species_id
 GROUP BY sp.species_id, sp.species_name_de, sp.species_name_en,
          sp.species_name_la%s
 ORDER BY COUNT(o.observation_id) DESC`,
		groupCol, speciesSrc, groupJoin, groupBy)
}

// PhasesSQL returns the phase listing query for one source.
func (d Descriptor) PhasesSQL() string {
	phaseSrc := "dwd_phase"
	if d.DedupDimensions {
		phaseSrc = `(
    SELECT DISTINCT ON (phase_id) phase_id, phase_name
      FROM dwd_phase
     ORDER BY phase_id
  )`
	}
	return fmt.Sprintf(`
SELECT p.phase_id, p.phase_name, COUNT(o.observation_id)
  FROM %s p
  LEFT JOIN dwd_observation o
    ON o.phase_id = p.phase_id
 GROUP BY p.phase_id, p.phase_name
 ORDER BY COUNT(o.observation_id) DESC`, phaseSrc)
}

// ObservationsSQL returns the raw observation listing query plus its
// positional arguments. Each source is queried with the full limit;
// truncation to the combined limit happens after the merge.
func (d Descriptor) ObservationsSQL(f Filter) (string, []any) {
	where, args := filterClauses(f, "o", "s")
	sql := `
SELECT o.reference_year, o.day_of_year, o.species_id, o.phase_id,
       s.station_name
  FROM dwd_observation o
  JOIN dwd_station s
    ON s.station_id = o.station_id` + where + `
 ORDER BY o.reference_year DESC, o.day_of_year`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sql += fmt.Sprintf("\n LIMIT $%d", len(args))
	}
	return sql, args
}

// TrendsSQL returns the yearly aggregation query plus its positional
// arguments.
func (d Descriptor) TrendsSQL(f Filter) (string, []any) {
	where, args := filterClauses(f, "o", "s")
	sql := `
SELECT o.reference_year, AVG(o.day_of_year), COUNT(o.observation_id)
  FROM dwd_observation o
  JOIN dwd_station s
    ON s.station_id = o.station_id` + where + `
 GROUP BY o.reference_year
 ORDER BY o.reference_year`
	return sql, args
}

// QualitySQL returns per-quality-level observation counts. Only valid
// for sources with HasQualityData.
func (d Descriptor) QualitySQL() string {
	return `
SELECT q.quality_level_id, q.description, COUNT(o.observation_id)
  FROM dwd_quality_level q
  LEFT JOIN dwd_observation o
    ON o.quality_level_id = q.quality_level_id
 GROUP BY q.quality_level_id, q.description
 ORDER BY q.quality_level_id`
}

// OverviewSQL returns the dataset summary query: distinct species,
// distinct station names, total observations, and the year range.
func (d Descriptor) OverviewSQL() string {
	return `
SELECT (SELECT COUNT(DISTINCT species_id) FROM dwd_species),
       (SELECT COUNT(DISTINCT station_name) FROM dwd_station),
       (SELECT COUNT(*) FROM dwd_observation),
       (SELECT COALESCE(MIN(reference_year), 0) FROM dwd_observation),
       (SELECT COALESCE(MAX(reference_year), 0) FROM dwd_observation)`
}

// SpeciesByPhaseSQL lists the species observed in a given phase.
func (d Descriptor) SpeciesByPhaseSQL(phaseID int) (string, []any) {
	return `
SELECT sp.species_id, sp.species_name_de, sp.species_name_en,
       sp.species_name_la, '', COUNT(o.observation_id)
  FROM dwd_species sp
  JOIN dwd_observation o
    ON o.species_id = sp.species_id
 WHERE o.phase_id = $1
 GROUP BY sp.species_id, sp.species_name_de, sp.species_name_en,
          sp.species_name_la
 ORDER BY COUNT(o.observation_id) DESC`, []any{phaseID}
}

// PhasesBySpeciesSQL lists the phases recorded for a given species.
func (d Descriptor) PhasesBySpeciesSQL(speciesID int) (string, []any) {
	return `
SELECT p.phase_id, p.phase_name, COUNT(o.observation_id)
  FROM dwd_phase p
  JOIN dwd_observation o
    ON o.phase_id = p.phase_id
 WHERE o.species_id = $1
 GROUP BY p.phase_id, p.phase_name
 ORDER BY COUNT(o.observation_id) DESC`, []any{speciesID}
}

// AllSpeciesSQL returns the full species vocabulary without counts,
// used by the cross-reference endpoints.
func (d Descriptor) AllSpeciesSQL() string {
	sql := `
SELECT species_id, species_name_de, species_name_en, species_name_la
  FROM dwd_species`
	if d.DedupDimensions {
		sql = `
SELECT DISTINCT ON (species_id)
       species_id, species_name_de, species_name_en, species_name_la
  FROM dwd_species
 ORDER BY species_id`
	}
	return sql
}

// SpeciesMatchesSQL finds the species rows whose German, English or
// Latin name equals the given string exactly.
func (d Descriptor) SpeciesMatchesSQL(name string) (string, []any) {
	return `
SELECT species_id, species_name_de, species_name_en, species_name_la
  FROM dwd_species
 WHERE species_name_de = $1
    OR species_name_en = $1
    OR species_name_la = $1`, []any{name}
}

// PhasesBySpeciesNameSQL lists the phases recorded for every species
// whose name matches the given string on any of the three name fields.
func (d Descriptor) PhasesBySpeciesNameSQL(name string) (string, []any) {
	phaseSrc := "dwd_phase"
	if d.DedupDimensions {
		phaseSrc = `(
    SELECT DISTINCT ON (phase_id) phase_id, phase_name
      FROM dwd_phase
     ORDER BY phase_id
  )`
	}
	sql := fmt.Sprintf(`
SELECT p.phase_id, p.phase_name, COUNT(o.observation_id)
  FROM %s p
  JOIN dwd_observation o
    ON o.phase_id = p.phase_id
  JOIN dwd_species sp
    ON sp.species_id = o.species_id
 WHERE sp.species_name_de = $1
    OR sp.species_name_en = $1
    OR sp.species_name_la = $1
 GROUP BY p.phase_id, p.phase_name
 ORDER BY COUNT(o.observation_id) DESC`, phaseSrc)
	return sql, []any{name}
}

// filterClauses renders WHERE conditions for the non-zero fields of f.
// obs and sta are the aliases of the observation and station tables.
func filterClauses(f Filter, obs, sta string) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.SpeciesID != 0 {
		add(obs+".species_id = $%d", f.SpeciesID)
	}
	if f.PhaseID != 0 {
		add(obs+".phase_id = $%d", f.PhaseID)
	}
	if f.Station != "" {
		add(sta+".station_name = $%d", f.Station)
	}
	if f.YearFrom != 0 {
		add(obs+".reference_year >= $%d", f.YearFrom)
	}
	if f.YearTo != 0 {
		add(obs+".reference_year <= $%d", f.YearTo)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n WHERE " + strings.Join(conds, "\n   AND "), args
}
