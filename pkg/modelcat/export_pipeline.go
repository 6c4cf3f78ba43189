package modelcat

import (
	"context"

	"modelcat/pkg/modelcat/export"
	"modelcat/pkg/modelcat/models"
)

// ExportRows flattens every child of parentID into listing rows.
func (p *Pipeline) ExportRows(ctx context.Context, parentID string, opts export.Options) ([]models.ListingRow, error) {
	return export.New(p.catalog, p.log).Rows(ctx, parentID, opts)
}

// ExportFile flattens every child of parentID and writes the listing to an
// xlsx file, returning the number of rows written. The listing index is
// eventually consistent, so a run issued immediately after Load may miss
// rows; re-running the export is the caller's responsibility.
func (p *Pipeline) ExportFile(ctx context.Context, parentID, outputPath string, opts export.Options) (int, error) {
	return export.New(p.catalog, p.log).WriteFile(ctx, parentID, outputPath, opts)
}
