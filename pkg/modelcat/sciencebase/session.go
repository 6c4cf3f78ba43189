// Package sciencebase implements the catalog service REST client.
package sciencebase

import (
	"net/http"
	"time"
)

// Session carries the authenticated connection state for catalog calls.
// It is passed explicitly to the client rather than held as process-wide
// state; callers create one session per credential set.
type Session struct {
	// BaseURL is the catalog root, e.g. "https://www.sciencebase.gov/catalog".
	BaseURL string
	// Token is the bearer token attached to every request; empty means
	// anonymous access (read-only endpoints only).
	Token string
	// HTTP is the underlying client. A default with a 30s timeout is used
	// when nil.
	HTTP *http.Client
}

// NewSession creates a session for the given catalog root and token.
func NewSession(baseURL, token string) *Session {
	return &Session{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *Session) httpClient() *http.Client {
	if s.HTTP != nil {
		return s.HTTP
	}
	return http.DefaultClient
}
