package extract

import (
	"errors"
	"fmt"
)

// FetchError reports that the source page could not be retrieved, either
// because of a transport failure or a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFoundError reports that the page holds no assignment to the expected
// variable. It usually means the source changed its format.
type NotFoundError struct {
	Variable string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s variable in the page source", e.Variable)
}

// ParseError reports a literal that was located but could not be turned
// into a links listing.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// Outcome classifies an Extract result for metrics and logs.
func Outcome(err error) string {
	var fetchErr *FetchError
	var notFoundErr *NotFoundError
	var parseErr *ParseError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &fetchErr):
		return "fetch_error"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &parseErr):
		return "parse_error"
	default:
		return "error"
	}
}
