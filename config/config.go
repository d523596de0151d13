package config

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"

	"storadag/models"
)

//go:embed defaults.toml
var defaults []byte

// Day describes where a weekday's dishes live in the feed record
type Day struct {
	Weekday  models.Weekday `toml:"weekday"`
	Prefix   string         `toml:"prefix"`
	MaxIndex int            `toml:"max_index"`
}

// Config holds everything the menu check needs to know about the outside world
type Config struct {
	PageURL         string   `toml:"page_url"`
	FallbackFeedURL string   `toml:"fallback_feed_url"`
	FeedPattern     string   `toml:"feed_pattern"`
	UserAgent       string   `toml:"user_agent"`
	RecordElement   string   `toml:"record_element"`
	FieldSuffixes   []string `toml:"field_suffixes"`
	Targets         []string `toml:"targets"`
	Days            []Day    `toml:"days"`
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	return Parse(defaults)
}

func Parse(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.PageURL == "" {
		errs = append(errs, errors.New("page_url is empty"))
	}
	if c.FallbackFeedURL == "" {
		errs = append(errs, errors.New("fallback_feed_url is empty"))
	}
	if c.RecordElement == "" {
		errs = append(errs, errors.New("record_element is empty"))
	}
	if len(c.FieldSuffixes) == 0 {
		errs = append(errs, errors.New("field_suffixes is empty"))
	}
	if len(c.Targets) < 2 {
		errs = append(errs, fmt.Errorf("need at least two targets, got %d", len(c.Targets)))
	}
	if _, err := c.FeedRegexp(); err != nil {
		errs = append(errs, err)
	}

	// Days must cover every weekday once, in scanning order
	if len(c.Days) != len(models.Weekdays) {
		errs = append(errs, fmt.Errorf("expected %d days, got %d", len(models.Weekdays), len(c.Days)))
	} else {
		for i, day := range c.Days {
			if day.Weekday != models.Weekdays[i] {
				errs = append(errs, fmt.Errorf("day %d is %q, expected %q", i+1, day.Weekday, models.Weekdays[i]))
			}
			if day.Prefix == "" {
				errs = append(errs, fmt.Errorf("day %q has no prefix", day.Weekday))
			}
			if day.MaxIndex < 1 {
				errs = append(errs, fmt.Errorf("day %q has max_index %d", day.Weekday, day.MaxIndex))
			}
		}
	}

	return errors.Join(errs...)
}

// FeedRegexp compiles the feed pattern. The first capture group is the feed URL.
func (c *Config) FeedRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.FeedPattern)
	if err != nil {
		return nil, fmt.Errorf("feed_pattern does not compile: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("feed_pattern %q has no capture group", c.FeedPattern)
	}
	return re, nil
}

