// Package transform converts source spreadsheet rows into catalog item
// documents, resolving contact tokens against the directory service.
package transform

import "modelcat/pkg/modelcat/models"

// NewWebLink builds one web-link document for a catalog item. An empty
// title defaults to the reference-link label. Pure function.
func NewWebLink(uri, title string) models.WebLink {
	if title == "" {
		title = models.TitleReferenceLink
	}
	return models.WebLink{
		Type:      "webLink",
		TypeLabel: "Web Link",
		URI:       uri,
		Rel:       "related",
		Title:     title,
		Hidden:    false,
	}
}
