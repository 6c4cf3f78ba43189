package modelcat

import "fmt"

// RowError reports a failure while transforming one spreadsheet row.
type RowError struct {
	// Row is the 1-based spreadsheet row number (header is row 1).
	Row int
	// Title is the row's model name, when known.
	Title string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Title, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
