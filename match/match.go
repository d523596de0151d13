// Package match decides whether target dishes are served on the same day.
package match

import (
	"strings"

	"github.com/samber/lo"

	"storadag/models"
)

// Contains reports whether any dish contains target, ignoring case. The
// whole dish string is searched, so one dish can satisfy several targets.
func Contains(dishes []string, target string) bool {
	needle := strings.ToLower(target)
	return lo.ContainsBy(dishes, func(dish string) bool {
		return strings.Contains(strings.ToLower(dish), needle)
	})
}

// Day checks every target against a single day's dishes
func Day(day models.Weekday, dishes []string, targets []string) models.DayMatch {
	return models.DayMatch{
		Day:    day,
		Dishes: dishes,
		Hits: lo.Map(targets, func(target string, _ int) models.Hit {
			return models.Hit{Target: target, Found: Contains(dishes, target)}
		}),
	}
}

// Check scans the menu from monday to friday and stops at the first day
// that has every target.
func Check(menu models.WeeklyMenu, targets []string) models.MatchResult {
	var result models.MatchResult
	for _, day := range models.Weekdays {
		dm := Day(day, menu.Dishes(day), targets)
		result.Scanned = append(result.Scanned, dm)

		if dm.AllFound() {
			result.Matched = true
			result.Day = day
			return result
		}
	}
	return result
}
