package ioimport

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"encoding/csv"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

var errMissingHeader = errors.New("file has no header row")

// speciesMapping links the raw species cell of the merged CSV to a
// species identifier of the reference vocabulary.
type speciesMapping map[string]int

// loadMapping reads the species mapping file with columns csv_name and
// db_species_id.
func loadMapping(path string) (speciesMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, MappingError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, MappingError(path, err)
	}
	if len(records) == 0 {
		return nil, MappingError(path, errMissingHeader)
	}

	res := make(speciesMapping)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		id, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || name == "" {
			continue
		}
		res[name] = id
	}
	return res, nil
}

// splitName separates the scientific part of a raw species cell from
// the vernacular remainder. Historical cells mix both, for example
// "Quercus robur, Eiche". The botanical parser finds the scientific
// name; whatever it did not consume counts as the German name.
func splitName(gnp gnparser.GNparser, raw string) (la, de string) {
	raw = strings.TrimSpace(raw)
	parsed := gnp.ParseName(raw)
	if !parsed.Parsed || parsed.Canonical == nil {
		return "", raw
	}
	la = parsed.Canonical.Simple

	// The unparsed tail is the vernacular remainder.
	de = strings.Trim(parsed.Tail, " ,;-")
	return la, de
}

// insertSpecies upserts one vocabulary row per mapped species so the
// observation foreign keys resolve. Species IDs come from the mapping
// and stay aligned with the reference vocabulary.
func (imp *importer) insertSpecies(
	ctx context.Context,
	mapping speciesMapping,
) error {
	pool := imp.operator.Pool()
	if pool == nil {
		return SpeciesError(errors.New("database is not connected"))
	}

	cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	gnp := gnparser.New(cfg)

	sql := `
		INSERT INTO dwd_species
			(species_id, species_name_de, species_name_en, species_name_la)
		VALUES ($1, $2, '', $3)
		ON CONFLICT (species_id) DO NOTHING
	`
	for name, id := range mapping {
		la, de := splitName(gnp, name)
		if _, err := pool.Exec(ctx, sql, id, de, la); err != nil {
			return SpeciesError(err)
		}
	}
	return nil
}
