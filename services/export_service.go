package services

import (
	"fmt"
	"io"
	"strings"

	"lumber-inventory/fraction"
	"lumber-inventory/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Inventory"

var exportHeader = []interface{}{
	"ID", "Species", "Length", "Width", "Thickness",
	"Length (in)", "Width (in)", "Thickness (in)",
	"Surface", "Location", "Tags", "Date Added",
}

type ExportService interface {
	WriteWorkbook(w io.Writer, items []models.Lumber) error
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// WriteWorkbook writes items as a single-sheet xlsx workbook, one row per
// record, in the order given.
func (s *exportService) WriteWorkbook(w io.Writer, items []models.Lumber) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	for i, l := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		surface := "Rough"
		if l.Planed {
			surface = "Planed"
		}
		row := []interface{}{
			l.ID,
			l.Species,
			fraction.Format(l.Length),
			fraction.Format(l.Width),
			fraction.Format(l.Thickness),
			l.Length,
			l.Width,
			l.Thickness,
			surface,
			l.LocationName(),
			strings.Join(l.TagNames(), ", "),
			l.DateAdded.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}
