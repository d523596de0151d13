/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"storadag/checker"
	"storadag/config"
	"storadag/models"
	"storadag/report"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "storadag",
		Usage: "Min Stora Dag - väntar på dagen då Heat serverar pannkakor och stuvade makaroner",
		Description: `Hämtar veckans lunchmeny från Heat och svarar på en enda fråga:
		serveras pannkakor och stuvade makaroner samma dag?

		Utan flaggor skrivs bara true eller false ut. Med --verbose visas
		rätterna för varje dag som undersökts.

		Fel vid hämtning eller tolkning av menyn ger svaret false.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Visa detaljerad information om meny parsing",
			},
		},
		Action: func(ctx *cli.Context) error {
			verbose := ctx.Bool("verbose")
			Check(ctx.Context, verbose, ctx.App.Writer, newLogger(verbose))
			return nil
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// Check runs the menu check with the built-in configuration and reports
// whether both dishes are served on the same day.
func Check(ctx context.Context, verbose bool, out io.Writer, logger log.FieldLogger) bool {
	cfg, err := config.Default()
	if err != nil {
		logger.WithError(err).Error("Could not load built-in config")
		fail(verbose, out, err)
		return false
	}
	return CheckWithConfig(ctx, cfg, verbose, out, logger)
}

func CheckWithConfig(ctx context.Context, cfg *config.Config, verbose bool, out io.Writer, logger log.FieldLogger) bool {
	c, err := checker.New(cfg, verbose, out, logger)
	if err != nil {
		logger.WithError(err).Error("Could not set up menu check")
		fail(verbose, out, err)
		return false
	}
	return c.Run(ctx)
}

func fail(verbose bool, out io.Writer, err error) {
	r := report.New(verbose, out)
	r.Failure(err)
	r.Finish(models.MatchResult{})
}

// newLogger logs to stderr in verbose mode and discards everything otherwise
func newLogger(verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	if verbose {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
