package models

// Hit records whether a target dish was found on a day
type Hit struct {
	Target string
	Found  bool
}

// DayMatch is the outcome of scanning a single day's dishes
type DayMatch struct {
	Day    Weekday
	Dishes []string
	Hits   []Hit
}

// AllFound reports whether every target was found on the day
func (d DayMatch) AllFound() bool {
	if len(d.Hits) == 0 {
		return false
	}
	for _, hit := range d.Hits {
		if !hit.Found {
			return false
		}
	}
	return true
}

// MatchResult is the outcome of scanning a weekly menu. Scanned only holds
// the days that were examined before the first matching day.
type MatchResult struct {
	Matched bool
	Day     Weekday
	Scanned []DayMatch
}
