package refdata

// Warning represents a non-fatal reference data issue.
type Warning struct {
	Field   string
	Message string
}

// Validate checks loaded reference data and fills gaps from the
// defaults. Missing sections are not fatal: a user-supplied
// refdata.yaml may override only part of the built-in data.
func (rd *RefData) Validate() []Warning {
	var res []Warning
	def := New()

	if len(rd.Places) == 0 {
		rd.Places = def.Places
		res = append(res, Warning{
			Field:   "places",
			Message: "no place names configured, using built-in list",
		})
	}
	if len(rd.PhaseMapping) == 0 {
		rd.PhaseMapping = def.PhaseMapping
		res = append(res, Warning{
			Field:   "phase_mapping",
			Message: "no phase mapping configured, using built-in mapping",
		})
	}
	if rd.DefaultYear == 0 {
		rd.DefaultYear = def.DefaultYear
		res = append(res, Warning{
			Field:   "default_year",
			Message: "no default year configured, using built-in value",
		})
	}
	return res
}
