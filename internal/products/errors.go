package products

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL means the input could not be parsed as an absolute
	// URL even after prefixing the default scheme.
	ErrInvalidURL = errors.New("invalid url")

	// ErrFetchTimeout means the bounded network call exceeded its deadline.
	ErrFetchTimeout = errors.New("request timed out")

	// ErrRobotsDisallowed means robots.txt forbids fetching the page for
	// our user agent. Only returned when robots checking is enabled.
	ErrRobotsDisallowed = errors.New("disallowed by robots.txt")
)

// StatusError reports a non-2xx response from the target site on the
// primary page fetch.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch: %d", e.Status)
}
