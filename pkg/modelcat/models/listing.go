package models

// ListingRow is the flattened projection of one catalog item for export.
// Optional fields are empty when the source item lacks them or the caller
// excluded the column.
type ListingRow struct {
	ModelName     string
	Contact       string
	ReferenceLink string
	CatalogURL    string
}
