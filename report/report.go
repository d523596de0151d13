// Package report prints the outcome of a menu check. Reporters only format
// values computed elsewhere; they never decide the result themselves.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/samber/lo"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"storadag/config"
	"storadag/models"
)

// Reporter receives the stages of a menu check as they happen
type Reporter interface {
	Start(cfg *config.Config)
	Day(day models.DayMatch)
	Failure(err error)
	Finish(result models.MatchResult)
}

// New returns a verbose reporter when verbose is set, otherwise a terse one
func New(verbose bool, out io.Writer) Reporter {
	if verbose {
		return NewVerbose(out)
	}
	return NewTerse(out)
}

// Terse prints nothing but the final boolean
type Terse struct {
	out io.Writer
}

func NewTerse(out io.Writer) *Terse {
	return &Terse{out: out}
}

func (t *Terse) Start(*config.Config) {}

func (t *Terse) Day(models.DayMatch) {}

func (t *Terse) Failure(error) {}

func (t *Terse) Finish(result models.MatchResult) {
	fmt.Fprintln(t.out, result.Matched)
}

// Verbose prints every scanned day in Swedish
type Verbose struct {
	out   io.Writer
	color *color.Color
	title cases.Caser
	upper cases.Caser
}

// NewVerbose creates a verbose reporter. The final sentence is colored only
// when out is a terminal.
func NewVerbose(out io.Writer) *Verbose {
	c := color.New()
	c.Disable()
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.Enable()
	}

	return &Verbose{
		out:   out,
		color: c,
		title: cases.Title(language.Swedish),
		upper: cases.Upper(language.Swedish),
	}
}

func (v *Verbose) Start(cfg *config.Config) {
	labels := lo.Map(cfg.Days, func(day config.Day, _ int) string {
		return day.Weekday.Label()
	})

	fmt.Fprintln(v.out, "=== HEAT RESTAURANG MENY KONTROLL ===")
	fmt.Fprintf(v.out, "Söker efter: %s\n", quoteList(cfg.Targets))
	fmt.Fprintf(v.out, "På veckodagar: %s\n", quoteList(labels))
	fmt.Fprintln(v.out, "\nHämtar menydata från XML-källa...")
}

func (v *Verbose) Day(day models.DayMatch) {
	fmt.Fprintf(v.out, "\n%s:\n", v.title.String(day.Day.Label()))
	fmt.Fprintln(v.out, "  Rätter hittade:")
	for _, dish := range day.Dishes {
		fmt.Fprintf(v.out, "    - %s\n", dish)
	}
	for _, hit := range day.Hits {
		fmt.Fprintf(v.out, "  Har %s: %t\n", hit.Target, hit.Found)
	}
	if day.AllFound() {
		fmt.Fprintf(v.out, "  ✓ BÅDA RÄTTERNA HITTADE PÅ %s!\n", v.upper.String(day.Day.Label()))
	}
}

func (v *Verbose) Failure(err error) {
	fmt.Fprintf(v.out, "Fel: %v\n", err)
}

func (v *Verbose) Finish(result models.MatchResult) {
	if result.Matched {
		fmt.Fprintf(v.out, "\nResultat: %s\n", v.color.Green("Båda rätterna hittades samma dag!"))
		return
	}

	fmt.Fprintln(v.out, "\n❌ Båda rätterna hittades inte samma dag")
	fmt.Fprintf(v.out, "\nResultat: %s\n", v.color.Red("Rätterna inte samma dag"))
}

func quoteList(items []string) string {
	quoted := lo.Map(items, func(item string, _ int) string {
		return "'" + item + "'"
	})
	return "[" + strings.Join(quoted, ", ") + "]"
}

var (
	_ Reporter = (*Terse)(nil)
	_ Reporter = (*Verbose)(nil)
)
