package service

import "time"

// normalizeDate renders t as a calendar date in YYYY-MM-DD form using
// UTC-anchored components exclusively. Formatting with local-timezone
// components would shift a midnight-UTC timestamp to the previous day
// for processes running west of UTC.
func normalizeDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
