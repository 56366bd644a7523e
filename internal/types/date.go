package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Placeholders rendered for zero dates instead of an error, matching the
// behavior expected by the CSV export and the UI collaborators.
const (
	InvalidDatePlaceholder  = "Ungültiges Datum"
	InvalidMonthPlaceholder = "Ungültiger Monat"
)

var germanMonthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatDate formats a date in long German form, e.g. "15. Januar 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDatePlaceholder
	}

	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonthNames[t.Month()-1], t.Year())
}

// FormatMonth formats a month in long German form, e.g. "Januar 2024".
func FormatMonth(m Month) string {
	if m.IsZero() {
		return InvalidMonthPlaceholder
	}

	return fmt.Sprintf("%s %d", germanMonthNames[m.Month()-1], m.Year())
}

// ParseDate parses a date in long German form ("15. Januar 2024").
func ParseDate(s string) (time.Time, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%q is not a valid date", s)
	}

	day, err := strconv.Atoi(strings.TrimSuffix(parts[0], "."))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid day of month", parts[0])
	}

	month := 0
	for i, name := range germanMonthNames {
		if strings.EqualFold(parts[1], name) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return time.Time{}, fmt.Errorf("%q is not a valid month name", parts[1])
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid year", parts[2])
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range values, e.g. "31. Februar" becomes
	// a date in March. Those inputs are rejected.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("%q is not an existing calendar date", s)
	}

	return date, nil
}
