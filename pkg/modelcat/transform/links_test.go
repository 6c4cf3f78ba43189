package transform

import (
	"testing"

	"modelcat/pkg/modelcat/models"
)

func TestNewWebLink(t *testing.T) {
	link := NewWebLink("https://example.org/model", models.TitleOutputData)

	if link.Type != "webLink" {
		t.Errorf("Expected type webLink, got %q", link.Type)
	}
	if link.TypeLabel != "Web Link" {
		t.Errorf("Expected typeLabel 'Web Link', got %q", link.TypeLabel)
	}
	if link.Rel != "related" {
		t.Errorf("Expected rel related, got %q", link.Rel)
	}
	if link.Hidden {
		t.Error("Expected hidden=false")
	}
	if link.URI != "https://example.org/model" {
		t.Errorf("Unexpected URI %q", link.URI)
	}
	if link.Title != models.TitleOutputData {
		t.Errorf("Unexpected title %q", link.Title)
	}
}

func TestNewWebLinkDefaultTitle(t *testing.T) {
	link := NewWebLink("https://example.org", "")
	if link.Title != models.TitleReferenceLink {
		t.Errorf("Expected default title %q, got %q", models.TitleReferenceLink, link.Title)
	}
}

func TestNewWebLinkIdempotent(t *testing.T) {
	a := NewWebLink("https://example.org", "Custom")
	b := NewWebLink("https://example.org", "Custom")
	if a != b {
		t.Errorf("Expected identical documents, got %+v and %+v", a, b)
	}
}
