// Package models defines data structures for the model catalog pipeline.
package models

// OutputSlots is the number of positional output-link columns in a source
// spreadsheet.
const OutputSlots = 5

// SourceRow represents one record of the input spreadsheet.
// Rows are read once and immutable thereafter.
type SourceRow struct {
	// ModelName is copied verbatim into the catalog item title.
	ModelName string
	// Link holds the reference link, possibly a semicolon-delimited list.
	Link string
	// Contacts holds semicolon-delimited contact tokens (email-like).
	Contacts string
	// Outputs holds up to OutputSlots positional output-link cells.
	// A slot absent from the spreadsheet is absent from the slice; a blank
	// cell is present as an empty string.
	Outputs []string
}
