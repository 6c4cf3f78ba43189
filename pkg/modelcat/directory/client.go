// Package directory implements the people-search client for the contact
// directory service.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Person is one directory record with nested extension attributes.
type Person struct {
	ID          int64      `json:"id"`
	DisplayName string     `json:"displayName"`
	Type        string     `json:"type"`
	Email       string     `json:"email"`
	Active      bool       `json:"active"`
	Extensions  Extensions `json:"extensions"`
	// OrcID is the external researcher identifier; empty when the
	// directory record carries none.
	OrcID string `json:"orcId,omitempty"`
}

// Extensions holds the nested extension block of a person record.
type Extensions struct {
	PersonExtension PersonExtension `json:"personExtension"`
}

// PersonExtension carries job and name details of a person record.
type PersonExtension struct {
	JobTitle  string `json:"jobTitle"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SearchResult is the directory response for a keyed search.
type SearchResult struct {
	Total  int      `json:"total"`
	People []Person `json:"people"`
}

// Client queries the directory service. All calls are blocking round trips
// issued serially; the client holds no mutable state.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a directory client for the given base URL,
// e.g. "https://www.sciencebase.gov/directory".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchPeople issues a free-text search for q, requesting at most max
// candidate matches.
func (c *Client) SearchPeople(ctx context.Context, q string, max int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("max", fmt.Sprintf("%d", max))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/people?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("directory returned status %d: %s", resp.StatusCode, string(body))
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
