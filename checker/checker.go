// Package checker runs the whole menu check and turns every failure into a
// negative answer.
package checker

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"storadag/config"
	"storadag/feeds"
	"storadag/match"
	"storadag/models"
	"storadag/report"
)

type Checker struct {
	Config   *config.Config
	Resolver feeds.Resolver
	Fetcher  feeds.Fetcher
	Reporter report.Reporter
	Logger   log.FieldLogger
}

// New wires the production pipeline: discover the feed URL on the landing
// page, falling back to the configured last known URL, then fetch over HTTP.
func New(cfg *config.Config, verbose bool, out io.Writer, logger log.FieldLogger) (*Checker, error) {
	pattern, err := cfg.FeedRegexp()
	if err != nil {
		return nil, err
	}

	return &Checker{
		Config: cfg,
		Resolver: feeds.FallbackResolver{
			Primary:  feeds.NewPageResolver(nil, cfg.PageURL, pattern, cfg.UserAgent),
			Fallback: feeds.StaticResolver(cfg.FallbackFeedURL),
			Logger:   logger,
		},
		Fetcher:  feeds.NewHTTPFetcher(nil, cfg.UserAgent),
		Reporter: report.New(verbose, out),
		Logger:   logger,
	}, nil
}

// Run reports whether both target dishes are served on the same weekday.
// It never panics; anything unexpected is logged and answered with false.
func (c *Checker) Run(ctx context.Context) (found bool) {
	finished := false
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected failure: %v", r)
			c.logger().WithError(err).Error("Menu check failed")
			c.Reporter.Failure(err)
			if !finished {
				c.Reporter.Finish(models.MatchResult{})
			}
			found = false
		}
	}()

	c.Reporter.Start(c.Config)

	res := feeds.Load(ctx, c.Resolver, c.Fetcher, c.Config, c.logger())
	if res.Failed() {
		c.Reporter.Failure(res.Err)
	}

	result := match.Check(res.Menu, c.Config.Targets)
	for _, day := range result.Scanned {
		c.Reporter.Day(day)
	}

	c.logger().WithFields(log.Fields{
		"url":     res.URL,
		"matched": result.Matched,
		"day":     result.Day,
	}).Debug("Menu check done")

	finished = true
	c.Reporter.Finish(result)
	return result.Matched
}

func (c *Checker) logger() log.FieldLogger {
	if c.Logger == nil {
		return log.StandardLogger()
	}
	return c.Logger
}
