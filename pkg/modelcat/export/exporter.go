// Package export flattens a catalog subtree into tabular listing rows.
package export

import (
	"context"

	"go.uber.org/zap"

	"modelcat/pkg/modelcat/models"
	"modelcat/pkg/modelcat/sciencebase"
	"modelcat/pkg/modelcat/sheet"
)

// defaultPageSize is used when Options.PageSize is unset.
const defaultPageSize = 20

// listingFields is the field projection requested for every listing page.
var listingFields = []string{"title", "webLinks", "contacts"}

// Options control which listing columns are populated and the page size
// used while walking the listing.
type Options struct {
	IncludeContact       bool
	IncludeReferenceLink bool
	IncludeCatalogLink   bool
	PageSize             int
}

// DefaultOptions returns options with every column included.
func DefaultOptions() Options {
	return Options{
		IncludeContact:       true,
		IncludeReferenceLink: true,
		IncludeCatalogLink:   true,
		PageSize:             defaultPageSize,
	}
}

// Columns returns the listing headers implied by the option flags, in
// fixed order with the model name always first.
func (o Options) Columns() []string {
	columns := []string{sheet.ColModelName}
	if o.IncludeContact {
		columns = append(columns, sheet.ColContact)
	}
	if o.IncludeReferenceLink {
		columns = append(columns, sheet.ColReferenceLink)
	}
	if o.IncludeCatalogLink {
		columns = append(columns, sheet.ColCatalogLink)
	}
	return columns
}

// Exporter projects every child of a parent item to a flat listing row.
type Exporter struct {
	client *sciencebase.Client
	log    *zap.Logger
}

// New creates an exporter over the given catalog client. A nil logger
// disables logging.
func New(client *sciencebase.Client, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{client: client, log: log}
}

// Rows pages through the children of parentID and flattens each item,
// preserving first-seen order per page. The listing service is eventually
// consistent: items created moments earlier may be missing, and callers
// re-invoke the export rather than relying on any internal retry.
func (e *Exporter) Rows(ctx context.Context, parentID string, opts Options) ([]models.ListingRow, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	paginator := e.client.FindItemsByParent(parentID, listingFields, pageSize)

	var rows []models.ListingRow
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		pages++
		for _, item := range page.Items {
			rows = append(rows, flatten(item, opts))
		}
	}

	e.log.Debug("export listing walked",
		zap.String("parent", parentID),
		zap.Int("pages", pages),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// WriteFile serializes the flattened listing to an xlsx file and returns
// the number of rows written.
func (e *Exporter) WriteFile(ctx context.Context, parentID, path string, opts Options) (int, error) {
	rows, err := e.Rows(ctx, parentID, opts)
	if err != nil {
		return 0, err
	}
	if err := sheet.WriteListing(path, opts.Columns(), rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// flatten projects one item: the title, the first contact's name, the
// first web link titled as a reference link, and the canonical self-URL.
func flatten(item models.Item, opts Options) models.ListingRow {
	row := models.ListingRow{ModelName: item.Title}

	if opts.IncludeContact && len(item.Contacts) > 0 {
		row.Contact = item.Contacts[0].Name
	}
	if opts.IncludeReferenceLink {
		for _, link := range item.WebLinks {
			if link.Title == models.TitleReferenceLink {
				row.ReferenceLink = link.URI
				break
			}
		}
	}
	if opts.IncludeCatalogLink && item.Link != nil {
		row.CatalogURL = item.Link.URL
	}
	return row
}
