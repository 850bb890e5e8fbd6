package report

import (
	"sort"

	"dropicat/internal/model"
)

// SortRows orders rows by category, then name, comparing bytes. Equal rows
// keep their input order.
func SortRows(rows []model.ExportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Name < rows[j].Name
	})
}

// CountByCategory returns the histogram of row categories, largest first.
// Equal counts are ordered by label.
func CountByCategory(rows []model.ExportRow) []model.CategoryCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Category]++
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, model.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
