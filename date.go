package autorace

import (
	"strings"
	"time"
)

// raceDateLayout is the canonical form used in race page URLs.
const raceDateLayout = "20060102"

var raceDateInputLayouts = []string{
	raceDateLayout,
	"2006-01-02",
	"2006/01/02",
}

// FormatRaceDate normalizes a date given as YYYYMMDD, YYYY-MM-DD or
// YYYY/MM/DD to YYYYMMDD. Dates that do not exist on the calendar are
// rejected.
func FormatRaceDate(date string) (string, error) {
	s := strings.TrimSpace(date)
	for _, layout := range raceDateInputLayouts {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(raceDateLayout), nil
		}
	}
	return "", Errorf(EINVALID, "invalid race date %q: expected YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD", date)
}
