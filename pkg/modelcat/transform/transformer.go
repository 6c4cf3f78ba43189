package transform

import (
	"context"
	"fmt"
	"strings"

	"modelcat/pkg/modelcat/models"
)

// ContactResolver resolves one contact token to a contact document.
type ContactResolver interface {
	Resolve(ctx context.Context, token string) (models.Contact, error)
}

// Transformer assembles exactly one catalog item per source row.
type Transformer struct {
	resolver ContactResolver
}

// NewTransformer creates a transformer using the given contact resolver.
func NewTransformer(resolver ContactResolver) *Transformer {
	return &Transformer{resolver: resolver}
}

// Transform converts one spreadsheet row into a catalog item under
// parentID. The title is copied verbatim. A resolver error aborts the
// whole transformation for the row.
func (t *Transformer) Transform(ctx context.Context, row models.SourceRow, parentID string) (models.Item, error) {
	item := models.Item{
		ParentID: parentID,
		Title:    row.ModelName,
	}

	// Splitting a non-empty string always yields at least one token, so
	// the guard below is never false in practice; an all-empty split
	// leaves contacts empty and the attribute is dropped on marshal.
	tokens := strings.Split(row.Contacts, ";")
	if len(tokens) > 0 {
		contacts := make([]models.Contact, 0, len(tokens))
		for _, token := range tokens {
			if token == "" {
				continue
			}
			contact, err := t.resolver.Resolve(ctx, token)
			if err != nil {
				return models.Item{}, fmt.Errorf("resolve contact: %w", err)
			}
			contacts = append(contacts, contact)
		}
		item.Contacts = contacts
	}

	// Every split token becomes a reference link, so a blank link cell
	// yields one link with an empty URI. The source column is populated
	// in well-formed inputs; the token is not filtered.
	for _, ref := range strings.Split(row.Link, ";") {
		item.WebLinks = append(item.WebLinks, NewWebLink(ref, models.TitleReferenceLink))
	}

	for _, output := range row.Outputs {
		if strings.TrimSpace(output) == "" {
			continue
		}
		// The containment check uses the raw cell value, so a
		// whitespace-padded duplicate of a reference link is kept.
		if hasURI(item.WebLinks, output) {
			continue
		}
		item.WebLinks = append(item.WebLinks, NewWebLink(output, models.TitleOutputData))
	}

	return item, nil
}

func hasURI(links []models.WebLink, uri string) bool {
	for _, link := range links {
		if link.URI == uri {
			return true
		}
	}
	return false
}
