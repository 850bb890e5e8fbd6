package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"dropicat/internal/model"
)

const SheetName = "Products"

// Headers is the fixed column order of the report.
var Headers = []string{
	"Category", "ID", "Name", "Sale Price", "Suggested Price", "Stock", "Store Name", "Product URL",
}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 15}, // Category
	{"B", "B", 10}, // ID
	{"C", "C", 40}, // Name
	{"D", "E", 15}, // Prices
	{"F", "F", 10}, // Stock
	{"G", "G", 20}, // Store Name
	{"H", "H", 50}, // Product URL
}

const (
	urlColumn  = 8
	rowHeight  = 30.0
	headerFill = "#D7E4BC"
)

// WriteWorkbook renders rows, in the given order, to a one-sheet xlsx file at
// path, overwriting any existing file.
func WriteWorkbook(path string, rows []model.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	urlStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#0000FF", Underline: "single"},
	})
	if err != nil {
		return fmt.Errorf("failed to create url style: %w", err)
	}

	for _, c := range columnWidths {
		if err := f.SetColWidth(SheetName, c.from, c.to, c.width); err != nil {
			return fmt.Errorf("failed to set width %s:%s: %w", c.from, c.to, err)
		}
	}

	height, custom := rowHeight, true
	if err := f.SetSheetProps(SheetName, &excelize.SheetPropsOptions{
		DefaultRowHeight: &height,
		CustomHeight:     &custom,
	}); err != nil {
		return fmt.Errorf("failed to set row height: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		rowNum := i + 2
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		values := []interface{}{
			r.Category,
			r.ID,
			r.Name,
			r.SalePrice.InexactFloat64(),
			r.SuggestedPrice.InexactFloat64(),
			r.Stock,
			r.StoreName,
			r.ProductURL,
		}
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		cell, _ := excelize.CoordinatesToCellName(urlColumn, rowNum)
		display := r.ProductURL
		if err := f.SetCellHyperLink(SheetName, cell, "https://"+r.ProductURL, "External",
			excelize.HyperlinkOpts{Display: &display}); err != nil {
			return fmt.Errorf("failed to link %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, urlStyle); err != nil {
			return fmt.Errorf("failed to style %s: %w", cell, err)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
