package catalog

import (
	"errors"
	"fmt"
)

// ErrUpstream marks every failure that came from talking to the catalog.
var ErrUpstream = errors.New("catalog: upstream request failed")

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog: upstream %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("catalog: upstream %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}
