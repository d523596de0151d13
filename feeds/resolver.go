package feeds

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Resolver produces the URL of the current menu feed
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// PageResolver discovers the feed URL by scanning the scripts embedded in
// the restaurant's landing page.
type PageResolver struct {
	client    *http.Client
	pageURL   string
	pattern   *regexp.Regexp
	userAgent string
}

// NewPageResolver creates a resolver. The first capture group of pattern
// must be the feed URL. A nil client means http.DefaultClient.
func NewPageResolver(client *http.Client, pageURL string, pattern *regexp.Regexp, userAgent string) *PageResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &PageResolver{
		client:    client,
		pageURL:   pageURL,
		pattern:   pattern,
		userAgent: userAgent,
	}
}

func (r *PageResolver) Resolve(ctx context.Context) (string, error) {
	body, err := get(ctx, r.client, r.pageURL, r.userAgent)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	url, ok := r.FindURL(body)
	if !ok {
		return "", fmt.Errorf("%w: no feed url on %s", ErrUnresolved, r.pageURL)
	}
	return url, nil
}

// FindURL looks for the feed URL in the page's <script> elements first and
// falls back to scanning the raw page.
func (r *PageResolver) FindURL(page []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err == nil {
		var url string
		doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			url = r.match([]byte(s.Text()))
			return url == ""
		})
		if url != "" {
			return url, true
		}
	}

	url := r.match(page)
	return url, url != ""
}

func (r *PageResolver) match(text []byte) string {
	m := r.pattern.FindSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return html.UnescapeString(string(m[1]))
}

// StaticResolver always resolves to the same URL
type StaticResolver string

func (s StaticResolver) Resolve(_ context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: no static url", ErrUnresolved)
	}
	return string(s), nil
}

// FallbackResolver tries Primary and resolves through Fallback when it fails.
// The fallback is typically a hardcoded last-known feed URL which is never
// refreshed, so it can go stale without anything noticing.
type FallbackResolver struct {
	Primary  Resolver
	Fallback Resolver
	Logger   log.FieldLogger
}

func (r FallbackResolver) Resolve(ctx context.Context) (string, error) {
	url, err := r.Primary.Resolve(ctx)
	if err == nil {
		return url, nil
	}

	logger := r.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.WithError(err).Warn("Could not discover feed url, using last known url")

	return r.Fallback.Resolve(ctx)
}

var (
	_ Resolver = (*PageResolver)(nil)
	_ Resolver = StaticResolver("")
	_ Resolver = FallbackResolver{}
)
