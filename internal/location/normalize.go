package location

import (
	"fmt"
	"strings"
	"time"
)

// The calendar authority consumes a literal wall-clock date/time and applies
// any solar-time correction itself. The normalizer therefore encodes the
// birth moment as "this exact wall clock, tagged as UTC" in one explicit
// step. Applying the resolved zone's offset here as well would shift the
// wall clock and corrupt every pillar downstream; that is the one mistake
// this package exists to prevent.

var clientLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseClientDateTime splits a client-submitted ISO datetime into its date
// and time components, read literally. Any offset suffix on the input is
// deliberately ignored: the components are what the user stated as their
// local birth date and time.
func ParseClientDateTime(raw string) (date string, clock string, err error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range clientLayouts {
		t, parseErr := time.Parse(layout, trimmed)
		if parseErr != nil {
			continue
		}
		return t.Format("2006-01-02"), t.Format("15:04"), nil
	}
	return "", "", fmt.Errorf("unrecognized birth datetime %q", raw)
}

// ReferenceInstant combines a local date, local wall-clock time and the
// resolved zone into the single reference instant the pillar deriver
// consumes. The zone is resolved for the record (and validated) but its
// offset is not applied; see the package contract above.
func ReferenceInstant(date, clock, zone string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date/time %q %q: %w", date, clock, err)
	}

	if !Validate(zone) {
		return time.Time{}, fmt.Errorf("unknown timezone %q", zone)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
