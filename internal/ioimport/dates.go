package ioimport

import (
	"regexp"
	"strconv"
	"time"
)

var (
	rxDayMonth = regexp.MustCompile(`^(\d{1,2})\.\s*(\d{1,2})\.?$`)
	rxRowYear  = regexp.MustCompile(`(\d{4})`)
)

// parseDayMonth reads a phase cell of the form "D.M." or "D.M". The
// historical tables leave the year implicit; it comes from the row
// date or the reference default. Empty cells, dashes and free text
// all report ok=false.
func parseDayMonth(cell string) (day, month int, ok bool) {
	m := rxDayMonth.FindStringSubmatch(cell)
	if m == nil {
		return 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return day, month, true
}

// rowYear extracts the 4-digit year of a row's inferred date string,
// falling back to the configured default for undated rows.
func rowYear(date string, defaultYear int) int {
	if m := rxRowYear.FindStringSubmatch(date); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year
	}
	return defaultYear
}

// dayOfYear returns the 1-based ordinal day. Invalid combinations
// such as 30 February normalize forward into the next month.
func dayOfYear(year, month, day int) int {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.YearDay()
}
