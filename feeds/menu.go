package feeds

import (
	"context"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"storadag/config"
	"storadag/models"
)

// Load resolves, fetches and extracts the weekly menu. It never returns an
// error: failures are carried in the result next to an empty menu.
func Load(ctx context.Context, resolver Resolver, fetcher Fetcher, cfg *config.Config, logger log.FieldLogger) models.MenuResult {
	url, err := resolver.Resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("Could not resolve feed url")
		return models.MenuFailure("", err)
	}

	logger.WithField("url", url).Debug("Fetching menu feed")
	data, err := fetcher.Fetch(ctx, url)
	if err != nil {
		logger.WithError(err).WithField("url", url).Error("Could not fetch menu feed")
		return models.MenuFailure(url, err)
	}

	menu, err := Extract(data, cfg)
	if err != nil {
		logger.WithError(err).WithField("url", url).Error("Could not parse menu feed")
		return models.MenuFailure(url, err)
	}

	if menu.IsEmpty() {
		logger.WithField("url", url).Warn("No dishes found in menu feed")
	} else {
		logger.WithFields(log.Fields{
			"url":    url,
			"dishes": lo.SumBy(lo.Values(menu), func(dishes []string) int { return len(dishes) }),
		}).Debug("Menu feed parsed")
	}

	return models.MenuResult{Menu: menu, URL: url}
}
