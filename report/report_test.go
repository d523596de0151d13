package report_test

import (
	"bytes"
	"errors"
	"testing"

	"storadag/config"
	"storadag/models"
	"storadag/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerse(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(false, &buf)

	r.Start(nil)
	r.Day(models.DayMatch{Day: models.Monday, Dishes: []string{"Pannkakor"}})
	r.Failure(errors.New("network down"))
	r.Finish(models.MatchResult{Matched: false})
	assert.Equal(t, "false\n", buf.String())

	buf.Reset()
	r.Finish(models.MatchResult{Matched: true, Day: models.Friday})
	assert.Equal(t, "true\n", buf.String())
}

func TestVerboseMatch(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	r := report.New(true, &buf)

	r.Start(cfg)
	r.Day(models.DayMatch{
		Day:    models.Monday,
		Dishes: []string{"Köttbullar"},
		Hits: []models.Hit{
			{Target: "pannkakor"},
			{Target: "stuvade makaroner"},
		},
	})
	r.Day(models.DayMatch{
		Day:    models.Tuesday,
		Dishes: []string{"Pannkakor", "Stuvade makaroner med korv"},
		Hits: []models.Hit{
			{Target: "pannkakor", Found: true},
			{Target: "stuvade makaroner", Found: true},
		},
	})
	r.Finish(models.MatchResult{Matched: true, Day: models.Tuesday})

	expected := `=== HEAT RESTAURANG MENY KONTROLL ===
Söker efter: ['pannkakor', 'stuvade makaroner']
På veckodagar: ['måndag', 'tisdag', 'onsdag', 'torsdag', 'fredag']

Hämtar menydata från XML-källa...

Måndag:
  Rätter hittade:
    - Köttbullar
  Har pannkakor: false
  Har stuvade makaroner: false

Tisdag:
  Rätter hittade:
    - Pannkakor
    - Stuvade makaroner med korv
  Har pannkakor: true
  Har stuvade makaroner: true
  ✓ BÅDA RÄTTERNA HITTADE PÅ TISDAG!

Resultat: Båda rätterna hittades samma dag!
`
	assert.Equal(t, expected, buf.String())
}

func TestVerboseNoMatch(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewVerbose(&buf)

	r.Failure(errors.New("feed fetch failed: connection refused"))
	r.Day(models.DayMatch{
		Day:  models.Wednesday,
		Hits: []models.Hit{{Target: "pannkakor"}, {Target: "stuvade makaroner"}},
	})
	r.Finish(models.MatchResult{})

	out := buf.String()
	assert.Contains(t, out, "Fel: feed fetch failed: connection refused\n")
	assert.Contains(t, out, "\nOnsdag:\n  Rätter hittade:\n  Har pannkakor: false\n")
	assert.Contains(t, out, "\n❌ Båda rätterna hittades inte samma dag\n")
	assert.Contains(t, out, "\nResultat: Rätterna inte samma dag\n")
	assert.NotContains(t, out, "\x1b[")
}
