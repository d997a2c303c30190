// Package dateutils provides the date parsing and formatting used by the
// expense-report importer.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the canonical date format used on the wire.
const DateLayoutISO = "2006-01-02"

// ParseMDY parses a date in the M/D/YY form used by expense report
// spreadsheets. The string must split into exactly three numeric fields.
// Two-digit years are assumed to fall in the 2000s.
func ParseMDY(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad date format: %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("bad date format: %q", s)
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("bad date format: %q", s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
