package match_test

import (
	"testing"

	"storadag/match"
	"storadag/models"

	"github.com/stretchr/testify/assert"
)

var targets = []string{"pannkakor", "stuvade makaroner"}

func TestContains(t *testing.T) {
	tests := []struct {
		text             string
		pannkakor        bool
		stuvadeMakaroner bool
	}{
		{"Idag serverar vi pannkakor med sylt", true, false},
		{"Stuvade makaroner med korv", false, true},
		{"Pannkakor och stuvade makaroner", true, true},
		{"PANNKAKOR med grädde", true, false},
		{"PanNkaKor", true, false},
		{"Stuvade MAKARONER serveras", false, true},
		{"Pasta och kött", false, false},
		{"Vi har pannkakor idag samt stuvade makaroner", true, true},
		{"Pannkakor. Stuvade makaroner.", true, true},
		{"Stuvade  makaroner", false, false},
		{"Pannkaka", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.pannkakor, match.Contains([]string{tt.text}, "pannkakor"))
			assert.Equal(t, tt.stuvadeMakaroner, match.Contains([]string{tt.text}, "stuvade makaroner"))
		})
	}
}

func TestContainsAnyDish(t *testing.T) {
	dishes := []string{"Ärtsoppa", "Raggmunk med fläsk", "Pannkakor med sylt"}

	assert.True(t, match.Contains(dishes, "pannkakor"))
	assert.True(t, match.Contains(dishes, "PANNKAKOR"))
	assert.False(t, match.Contains(dishes, "stuvade makaroner"))
	assert.False(t, match.Contains(nil, "pannkakor"))
	assert.False(t, match.Contains([]string{}, "pannkakor"))
}

func TestDay(t *testing.T) {
	dm := match.Day(models.Tuesday, []string{"Pannkakor", "Fisk"}, targets)

	assert.Equal(t, models.Tuesday, dm.Day)
	assert.Equal(t, []models.Hit{
		{Target: "pannkakor", Found: true},
		{Target: "stuvade makaroner", Found: false},
	}, dm.Hits)
	assert.False(t, dm.AllFound())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		menu    map[models.Weekday][]string
		matched bool
		day     models.Weekday
		scanned int
	}{
		{
			name:    "empty menu",
			menu:    nil,
			matched: false,
			scanned: 5,
		},
		{
			name: "same day in separate dishes",
			menu: map[models.Weekday][]string{
				models.Thursday: {"Ärtsoppa", "Pannkakor", "Stuvade makaroner med korv"},
			},
			matched: true,
			day:     models.Thursday,
			scanned: 4,
		},
		{
			name: "same dish",
			menu: map[models.Weekday][]string{
				models.Monday: {"Pannkakor och stuvade makaroner"},
			},
			matched: true,
			day:     models.Monday,
			scanned: 1,
		},
		{
			name: "different days",
			menu: map[models.Weekday][]string{
				models.Monday: {"Pannkakor"},
				models.Friday: {"Stuvade makaroner"},
			},
			matched: false,
			scanned: 5,
		},
		{
			name: "first matching day wins",
			menu: map[models.Weekday][]string{
				models.Tuesday: {"pannkakor", "stuvade makaroner"},
				models.Friday:  {"PANNKAKOR", "STUVADE MAKARONER"},
			},
			matched: true,
			day:     models.Tuesday,
			scanned: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := models.NewWeeklyMenu()
			for day, dishes := range tt.menu {
				for _, dish := range dishes {
					menu.Add(day, dish)
				}
			}

			res := match.Check(menu, targets)
			assert.Equal(t, tt.matched, res.Matched)
			assert.Equal(t, tt.day, res.Day)
			assert.Len(t, res.Scanned, tt.scanned)

			for i, dm := range res.Scanned {
				assert.Equal(t, models.Weekdays[i], dm.Day)
			}
		})
	}
}

func TestCheckStopsAtFirstMatch(t *testing.T) {
	menu := models.NewWeeklyMenu()
	menu.Add(models.Wednesday, "Pannkakor med stuvade makaroner")
	menu.Add(models.Thursday, "Pannkakor")
	menu.Add(models.Thursday, "Stuvade makaroner")

	res := match.Check(menu, targets)
	assert.True(t, res.Matched)
	assert.Equal(t, models.Wednesday, res.Day)
	assert.Len(t, res.Scanned, 3)
	assert.True(t, res.Scanned[2].AllFound())
}
