// Package infer derives observation metadata (date, location, folder
// index) from the display names of transcription folders.
//
// Folder names follow loose conventions like
// "6 Tabelle - Freihöls 25.22.1856 - Gigglberger": a numeric index, the
// word "Tabelle", an optional place name, an optional date and a
// transcriber surname, separated by dashes. The conventions are not
// applied consistently, so extraction is an ordered chain of heuristic
// rules evaluated top-down, first match wins. Ambiguity resolves to
// documented defaults (empty date, "Unknown" location) - it is data,
// never an error.
package infer

import (
	"regexp"
	"strings"
)

// Metadata holds what could be inferred from one folder name.
type Metadata struct {
	// Index is the leading digits of the folder name; empty when the
	// name carries none.
	Index string

	// Date is in "D.M.YYYY" form, or empty when no pattern matched.
	Date string

	// Location is a place name, "Unknown" when none could be found.
	Location string
}

// UnknownLocation is the documented default for folders without a
// recognizable place name.
const UnknownLocation = "Unknown"

var (
	rxIndex = regexp.MustCompile(`^(\d+)`)

	// Date patterns in priority order. The second tolerates 3-digit
	// years produced by transcription typos.
	rxFullDate  = regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{4})`)
	rxShortDate = regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{3,4})`)
	rxBareYear  = regexp.MustCompile(`(\d{4})`)

	// Known digitization artifact: month "11" misread as "22".
	rxMonth22 = regexp.MustCompile(`(\d{1,2})\.22\.(\d{4})`)

	// Location no-value patterns: an empty location slot, a date in the
	// location slot, or a bare year in the location slot.
	rxEmptySlot  = regexp.MustCompile(`^\d+\s+Tabelle\s*-\s*-\s*\w+`)
	rxDateSlot   = regexp.MustCompile(`^\d+\s+Tabelle\s*-\s*\d+\.\d+\.\d+\s*-\s*\w+`)
	rxYearSlot   = regexp.MustCompile(`^\d+\s+Tabelle\s*-\s*\d{4}\s*-\s*\w+$`)
	rxFileExt    = regexp.MustCompile(`(?i)\.(odt|csv|pdf)$`)
	rxTabelle    = regexp.MustCompile(`(?i)\bTabelle\b`)
	rxLeadingIdx = regexp.MustCompile(`^\d+\s*[-\s]*`)
	rxAnyDate    = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)
	rxAnyYear    = regexp.MustCompile(`\b\d{4}\b`)
	rxDotOnly    = regexp.MustCompile(`^\s*\.?\s*$`)
	rxFRPrefix   = regexp.MustCompile(`^FR\s+`)
)

// FolderIndex returns the leading digits of the folder name, or empty.
func FolderIndex(folderName string) string {
	m := rxIndex.FindStringSubmatch(folderName)
	if m == nil {
		return ""
	}
	return m[1]
}

// Date extracts a date string from a folder name. Patterns are tried in
// priority order: full D.M.YYYY, then D.M.YYY with typo-tolerant year,
// then a bare 4-digit year. Known literal typos are corrected after the
// match: year 2856 becomes 1856, month 22 becomes 11. Returns empty
// when nothing matches.
func Date(folderName string) string {
	for _, rx := range []*regexp.Regexp{rxFullDate, rxShortDate, rxBareYear} {
		m := rx.FindStringSubmatch(folderName)
		if m == nil {
			continue
		}
		date := m[1]
		date = strings.ReplaceAll(date, "2856", "1856")
		date = rxMonth22.ReplaceAllString(date, "$1.11.$2")
		return date
	}
	return ""
}

// Location extracts a place name from a folder name using the ordered
// rule chain. The place allow-list is authoritative when surname
// heuristics would conflict; pass the set from refdata.PlaceSet().
func Location(folderName string, knownPlaces map[string]struct{}) string {
	if strings.Contains(strings.ToLower(folderName), "unbestimmt") {
		return UnknownLocation
	}

	// Names whose location slot is structurally empty.
	if rxEmptySlot.MatchString(folderName) ||
		rxDateSlot.MatchString(folderName) ||
		rxYearSlot.MatchString(folderName) {
		return UnknownLocation
	}

	cleaned := rxFileExt.ReplaceAllString(folderName, "")
	cleaned = rxTabelle.ReplaceAllString(cleaned, "")
	cleaned = rxLeadingIdx.ReplaceAllString(cleaned, "")
	cleaned = rxAnyDate.ReplaceAllString(cleaned, "")
	cleaned = rxAnyYear.ReplaceAllString(cleaned, "")

	if loc := locationFromSegments(cleaned, knownPlaces); loc != "" {
		return loc
	}
	if loc := locationFromWords(cleaned); loc != "" {
		return loc
	}
	return UnknownLocation
}

// locationFromSegments scans dash-delimited segments before the last
// one (the last segment is conventionally the transcriber surname) for
// either an allow-listed place or a short capitalized token run.
func locationFromSegments(cleaned string, knownPlaces map[string]struct{}) string {
	parts := strings.Split(cleaned, "-")
	if len(parts) < 2 {
		return ""
	}
	for _, part := range parts[:len(parts)-1] {
		part = strings.TrimSpace(part)
		if part == "" || rxDotOnly.MatchString(part) {
			continue
		}
		words := strings.Fields(part)
		if len(words) == 0 {
			continue
		}
		_, known := knownPlaces[words[0]]
		if known || (isCapitalized(words[0]) && len(words) <= 2) {
			loc := rxFRPrefix.ReplaceAllString(part, "")
			return strings.TrimSpace(loc)
		}
	}
	return ""
}

// locationFromWords is the last-resort scan: collect up to two
// consecutive capitalized words left to right, skipping a bare "FR"
// token unless it would be the first word collected, stopping at the
// first lowercase word after collection starts.
func locationFromWords(cleaned string) string {
	var collected []string
	for _, word := range strings.Fields(cleaned) {
		if word != "" && isCapitalized(word) && len(word) > 1 {
			if word == "FR" && len(collected) > 0 {
				continue
			}
			collected = append(collected, word)
			if len(collected) >= 2 {
				break
			}
		} else if len(collected) > 0 {
			break
		}
	}
	return strings.Join(collected, " ")
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return r >= 'A' && r <= 'Z' || r >= 'À' && r <= 'Þ' && r != '×'
	}
	return false
}

// Infer combines index, date and location extraction for one folder.
func Infer(folderName string, knownPlaces map[string]struct{}) Metadata {
	return Metadata{
		Index:    FolderIndex(folderName),
		Date:     Date(folderName),
		Location: Location(folderName, knownPlaces),
	}
}
