package ioschema

import (
	"context"
)

// Phases used by the historical imports, a subset of the reference
// phase vocabulary so IDs stay comparable across sources.
var phaseSeed = map[int]string{
	3:  "beginning of bud break",
	4:  "first leaves unfolded",
	5:  "beginning of flowering",
	6:  "general flowering",
	7:  "end of flowering",
	16: "general leaf unfolding",
	29: "fruit ripening",
	30: "fruit fall",
	31: "autumn colouring of leaves",
	32: "leaf fall",
}

var qualityLevelSeed = map[int]string{
	1:  "formal inspection only",
	7:  "inspected and corrected",
	10: "not inspected",
}

// seedVocabularies upserts the phase and quality vocabularies. Seeding
// is idempotent so Create can run repeatedly.
func (m *manager) seedVocabularies(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	phaseSQL := `
		INSERT INTO dwd_phase (phase_id, phase_name)
		VALUES ($1, $2)
		ON CONFLICT (phase_id) DO NOTHING
	`
	for id, name := range phaseSeed {
		if _, err := pool.Exec(ctx, phaseSQL, id, name); err != nil {
			return SeedError("dwd_phase", err)
		}
	}

	qualitySQL := `
		INSERT INTO dwd_quality_level (quality_level_id, description)
		VALUES ($1, $2)
		ON CONFLICT (quality_level_id) DO NOTHING
	`
	for id, desc := range qualityLevelSeed {
		if _, err := pool.Exec(ctx, qualitySQL, id, desc); err != nil {
			return SeedError("dwd_quality_level", err)
		}
	}

	return nil
}
