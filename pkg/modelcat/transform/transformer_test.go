package transform

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"modelcat/pkg/modelcat/models"
)

// stubResolver returns a stub contact for every token without touching the
// directory.
type stubResolver struct {
	tokens []string
	err    error
}

func (r *stubResolver) Resolve(ctx context.Context, token string) (models.Contact, error) {
	if r.err != nil {
		return models.Contact{}, r.err
	}
	r.tokens = append(r.tokens, token)
	return models.NewStubContact(token), nil
}

func TestTransformContactOrder(t *testing.T) {
	resolver := &stubResolver{}
	tr := NewTransformer(resolver)

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "https://example.org",
		Contacts:  "a@usgs.gov;b@usgs.gov;c@usgs.gov",
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if len(item.Contacts) != 3 {
		t.Fatalf("Expected 3 contacts, got %d", len(item.Contacts))
	}
	for i, want := range []string{"a@usgs.gov", "b@usgs.gov", "c@usgs.gov"} {
		if item.Contacts[i].Email != want {
			t.Errorf("Contact %d: expected %q, got %q", i, want, item.Contacts[i].Email)
		}
	}
	if strings.Join(resolver.tokens, ",") != "a@usgs.gov,b@usgs.gov,c@usgs.gov" {
		t.Errorf("Resolver saw tokens out of order: %v", resolver.tokens)
	}
}

func TestTransformEmptyContactTokensSkipped(t *testing.T) {
	tr := NewTransformer(&stubResolver{})

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "https://example.org",
		Contacts:  "a@usgs.gov;;b@usgs.gov",
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(item.Contacts) != 2 {
		t.Errorf("Expected 2 contacts, got %d", len(item.Contacts))
	}
}

func TestTransformEmptyContactsOmittedOnMarshal(t *testing.T) {
	tr := NewTransformer(&stubResolver{})

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "https://example.org",
		Contacts:  "",
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(item.Contacts) != 0 {
		t.Fatalf("Expected no contacts, got %d", len(item.Contacts))
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"contacts"`) {
		t.Errorf("Expected contacts attribute omitted, got %s", data)
	}
}

func TestTransformReferenceLinks(t *testing.T) {
	tr := NewTransformer(&stubResolver{})

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "https://a.example.org;https://b.example.org",
		Contacts:  "a@usgs.gov",
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(item.WebLinks) != 2 {
		t.Fatalf("Expected 2 web links, got %d", len(item.WebLinks))
	}
	for i, want := range []string{"https://a.example.org", "https://b.example.org"} {
		if item.WebLinks[i].URI != want {
			t.Errorf("Link %d: expected %q, got %q", i, want, item.WebLinks[i].URI)
		}
		if item.WebLinks[i].Title != models.TitleReferenceLink {
			t.Errorf("Link %d: expected reference title, got %q", i, item.WebLinks[i].Title)
		}
	}
}

func TestTransformBlankLinkYieldsEmptyURILink(t *testing.T) {
	tr := NewTransformer(&stubResolver{})

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "",
		Contacts:  "a@usgs.gov",
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	// Splitting a blank cell still yields one token.
	if len(item.WebLinks) != 1 {
		t.Fatalf("Expected 1 web link, got %d", len(item.WebLinks))
	}
	if item.WebLinks[0].URI != "" || item.WebLinks[0].Title != models.TitleReferenceLink {
		t.Errorf("Unexpected link %+v", item.WebLinks[0])
	}
}

func TestTransformOutputLinkDedup(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		outputs []string
		want    []string // URIs after the reference link
	}{
		{
			name:    "exact duplicate of reference excluded",
			link:    "https://ref.example.org",
			outputs: []string{"https://ref.example.org", "https://out.example.org"},
			want:    []string{"https://out.example.org"},
		},
		{
			name:    "whitespace-padded duplicate kept",
			link:    "https://ref.example.org",
			outputs: []string{" https://ref.example.org "},
			want:    []string{" https://ref.example.org "},
		},
		{
			name:    "blank and absent slots skipped",
			link:    "https://ref.example.org",
			outputs: []string{"", "  ", "https://out.example.org"},
			want:    []string{"https://out.example.org"},
		},
		{
			name:    "repeated output excluded once added",
			link:    "https://ref.example.org",
			outputs: []string{"https://out.example.org", "https://out.example.org"},
			want:    []string{"https://out.example.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformer(&stubResolver{})
			row := models.SourceRow{
				ModelName: "Test Model",
				Link:      tt.link,
				Contacts:  "a@usgs.gov",
				Outputs:   tt.outputs,
			}

			item, err := tr.Transform(context.Background(), row, "parent-1")
			if err != nil {
				t.Fatalf("Transform failed: %v", err)
			}

			outputs := item.WebLinks[1:]
			if len(outputs) != len(tt.want) {
				t.Fatalf("Expected %d output links, got %d", len(tt.want), len(outputs))
			}
			for i, want := range tt.want {
				if outputs[i].URI != want {
					t.Errorf("Output %d: expected %q, got %q", i, want, outputs[i].URI)
				}
				if outputs[i].Title != models.TitleOutputData {
					t.Errorf("Output %d: expected output title, got %q", i, outputs[i].Title)
				}
			}
		})
	}
}

func TestTransformResolverErrorAborts(t *testing.T) {
	wantErr := errors.New("directory unreachable")
	tr := NewTransformer(&stubResolver{err: wantErr})

	row := models.SourceRow{
		ModelName: "Test Model",
		Link:      "https://example.org",
		Contacts:  "a@usgs.gov",
	}

	_, err := tr.Transform(context.Background(), row, "parent-1")
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected resolver error to propagate, got %v", err)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransformer(&stubResolver{})

	row := models.SourceRow{
		ModelName: "BBS",
		Link:      "https://www.mbr-pwrc.usgs.gov/bbs/",
		Contacts:  "sbeliew@usgs.gov",
		Outputs:   []string{"https://doi.org/10.5066/F7JS9NHH", ""},
	}

	item, err := tr.Transform(context.Background(), row, "parent-1")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if item.Title != "BBS" {
		t.Errorf("Expected title BBS, got %q", item.Title)
	}
	if item.ParentID != "parent-1" {
		t.Errorf("Expected parent-1, got %q", item.ParentID)
	}
	if len(item.WebLinks) != 2 {
		t.Fatalf("Expected 2 web links, got %d", len(item.WebLinks))
	}
	if item.WebLinks[0].URI != "https://www.mbr-pwrc.usgs.gov/bbs/" || item.WebLinks[0].Title != models.TitleReferenceLink {
		t.Errorf("Unexpected reference link %+v", item.WebLinks[0])
	}
	if item.WebLinks[1].URI != "https://doi.org/10.5066/F7JS9NHH" || item.WebLinks[1].Title != models.TitleOutputData {
		t.Errorf("Unexpected output link %+v", item.WebLinks[1])
	}
	if len(item.Contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(item.Contacts))
	}
	if item.Contacts[0].Email != "sbeliew@usgs.gov" {
		t.Errorf("Unexpected contact %+v", item.Contacts[0])
	}
}
