package sheet

import (
	"github.com/xuri/excelize/v2"

	"modelcat/pkg/modelcat/models"
)

// Listing column headers available for export.
const (
	ColModelName     = "Model Name"
	ColContact       = "Contact"
	ColReferenceLink = "Model Reference Link"
	ColCatalogLink   = "ScienceBase Link"
)

// WriteListing writes rows to a new xlsx file using the given column
// headers in order. Unknown headers produce empty cells.
func WriteListing(path string, columns []string, rows []models.ListingRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetList()[0]

	for ci, column := range columns {
		name, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, name, column); err != nil {
			return err
		}
	}

	for ri, row := range rows {
		for ci, column := range columns {
			name, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, name, columnValue(row, column)); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func columnValue(row models.ListingRow, column string) string {
	switch column {
	case ColModelName:
		return row.ModelName
	case ColContact:
		return row.Contact
	case ColReferenceLink:
		return row.ReferenceLink
	case ColCatalogLink:
		return row.CatalogURL
	}
	return ""
}
