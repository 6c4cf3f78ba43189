package sciencebase

import (
	"context"
	"net/http"
)

// Paginator walks a child-item listing page by page, following the
// continuation URL returned with each page. It is a lazy, finite,
// forward-only sequence: once exhausted it cannot be rewound, and
// restarting requires re-issuing the initial query.
type Paginator struct {
	client  *Client
	nextURL string
}

// HasMorePages reports whether another page can be fetched.
func (p *Paginator) HasMorePages() bool {
	return p.nextURL != ""
}

// NextPage fetches the next listing page. Calling it after the listing is
// exhausted returns an empty page.
func (p *Paginator) NextPage(ctx context.Context) (*ItemsPage, error) {
	if p.nextURL == "" {
		return &ItemsPage{}, nil
	}

	var page ItemsPage
	if err := p.client.do(ctx, http.MethodGet, p.nextURL, nil, &page); err != nil {
		return nil, err
	}

	if page.NextLink != nil && page.NextLink.URL != "" {
		p.nextURL = page.NextLink.URL
	} else {
		p.nextURL = ""
	}
	return &page, nil
}
