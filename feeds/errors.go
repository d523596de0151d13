package feeds

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved is returned when the feed URL could not be discovered
	ErrUnresolved = errors.New("feed url unresolved")
	// ErrFetch is returned when the feed could not be downloaded
	ErrFetch = errors.New("feed fetch failed")
	// ErrParse is returned when the feed is not well-formed XML
	ErrParse = errors.New("feed parse failed")
)

// StatusError reports a response outside the 2xx range
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}
