// Package sheet reads source spreadsheets and writes catalog listings.
package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"modelcat/pkg/modelcat/models"
)

// Required source columns.
const (
	colModelName = "Model Name"
	colLink      = "Link"
	colContacts  = "Contact(s)"
)

// ErrMissingColumn indicates a required header is absent from the input.
var ErrMissingColumn = errors.New("missing column")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadRows loads source rows from the first sheet of an xlsx workbook.
// Columns with blank headers are dropped before processing. Columns whose
// header starts with "Output" are kept in positional order, up to
// models.OutputSlots of them. Row contents are not validated.
func ReadRows(path string) ([]models.SourceRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int)
	var outputCols []int
	for i, header := range rows[0] {
		if header == "" {
			continue
		}
		if strings.HasPrefix(header, "Output") {
			if len(outputCols) < models.OutputSlots {
				outputCols = append(outputCols, i)
			}
			continue
		}
		columns[header] = i
	}

	for _, required := range []string{colModelName, colLink, colContacts} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	result := make([]models.SourceRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := models.SourceRow{
			ModelName: cell(cells, columns[colModelName]),
			Link:      cell(cells, columns[colLink]),
			Contacts:  cell(cells, columns[colContacts]),
		}
		for _, ci := range outputCols {
			if ci >= len(cells) {
				// Trailing cells never written are absent, not blank.
				break
			}
			row.Outputs = append(row.Outputs, cells[ci])
		}
		result = append(result, row)
	}

	return result, nil
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
