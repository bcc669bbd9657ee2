package schedule

import "time"

// NextYear returns t advanced by one calendar year.
//
// Inside a leap year exactly 365 days are added, so Feb 29 lands on Feb 28 of
// the following year. Any other year keeps month, day and clock time and
// increments the year.
func NextYear(t time.Time) time.Time {
	if isLeap(t.Year()) {
		return t.AddDate(0, 0, 365)
	}
	return time.Date(t.Year()+1, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
