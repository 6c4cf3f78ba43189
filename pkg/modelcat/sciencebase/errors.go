package sciencebase

import (
	"errors"
	"fmt"
)

// ErrNoMyItems indicates the session's personal container could not be found.
var ErrNoMyItems = errors.New("my items container not found")

// APIError represents a non-2xx response from the catalog service.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
