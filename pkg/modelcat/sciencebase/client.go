package sciencebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"modelcat/pkg/modelcat/models"
)

// Client issues catalog service calls over one session. Calls are blocking
// round trips with no retry; a failed call returns an *APIError or a
// transport error.
type Client struct {
	session *Session
}

// NewClient creates a catalog client bound to the given session.
func NewClient(session *Session) *Client {
	return &Client{session: session}
}

// CreateItem creates a single catalog item and returns the stored form,
// including the service-assigned ID and canonical link.
func (c *Client) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	var created models.Item
	if err := c.do(ctx, http.MethodPost, c.session.BaseURL+"/item", item, &created); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &created, nil
}

// CreateItems creates a batch of catalog items in one request and returns
// the stored forms in submission order.
func (c *Client) CreateItems(ctx context.Context, items []models.Item) ([]models.Item, error) {
	var created []models.Item
	if err := c.do(ctx, http.MethodPost, c.session.BaseURL+"/items", items, &created); err != nil {
		return nil, fmt.Errorf("create items: %w", err)
	}
	return created, nil
}

// DeleteItem deletes one catalog item by ID.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.session.BaseURL+"/item/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

// DeleteItems deletes a set of catalog items by ID in one request.
func (c *Client) DeleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	params := url.Values{}
	params.Set("itemIds", strings.Join(ids, ","))
	if err := c.do(ctx, http.MethodDelete, c.session.BaseURL+"/items?"+params.Encode(), nil, nil); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	return nil
}

// ItemsPage is one page of a child-item listing.
type ItemsPage struct {
	Items    []models.Item `json:"items"`
	NextLink *PageLink     `json:"nextlink,omitempty"`
}

// PageLink carries the continuation URL for the next listing page.
type PageLink struct {
	URL string `json:"url"`
}

// FindItemsByParent returns a paginator over the children of parentID,
// projecting only the given fields. The paginator is forward-only;
// restarting requires a new call.
func (c *Client) FindItemsByParent(parentID string, fields []string, pageSize int) *Paginator {
	params := url.Values{}
	params.Set("parentId", parentID)
	params.Set("format", "json")
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	if pageSize > 0 {
		params.Set("max", fmt.Sprintf("%d", pageSize))
	}
	return &Paginator{
		client:  c,
		nextURL: c.session.BaseURL + "/items?" + params.Encode(),
	}
}

// MyItemsID resolves the session user's personal container identifier.
func (c *Client) MyItemsID(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("q", "")
	params.Set("lq", `title:"My Items"`)
	params.Set("format", "json")
	params.Set("max", "1")

	var page ItemsPage
	if err := c.do(ctx, http.MethodGet, c.session.BaseURL+"/items?"+params.Encode(), nil, &page); err != nil {
		return "", fmt.Errorf("resolve my items: %w", err)
	}
	if len(page.Items) == 0 {
		return "", ErrNoMyItems
	}
	return page.Items[0].ID, nil
}

// do issues one request with the session credentials, decoding a JSON
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.session.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
