// Package report turns classified products into the spreadsheet and the
// console summary.
package report

import "dropicat/internal/model"

// Result is what one export run produced.
type Result struct {
	Rows   []model.ExportRow
	Counts []model.CategoryCount
	Flags  []model.MiscategorizationFlag
}

// Build classifies products and returns sorted rows, the category histogram
// and the flags. It does not touch the filesystem.
func Build(products []model.Product) *Result {
	rows, flags := BuildRows(products)
	SortRows(rows)
	return &Result{
		Rows:   rows,
		Counts: CountByCategory(rows),
		Flags:  flags,
	}
}

// Export runs Build and writes the workbook to path.
func Export(products []model.Product, path string) (*Result, error) {
	res := Build(products)
	if err := WriteWorkbook(path, res.Rows); err != nil {
		return nil, err
	}
	return res, nil
}
