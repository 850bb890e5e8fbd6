package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dropicat/internal/model"
)

// PrintSummary writes the operator report: category histogram, flagged
// products and the completion line.
func PrintSummary(w io.Writer, counts []model.CategoryCount, flags []model.MiscategorizationFlag, reportPath string) {
	rule := strings.Repeat("-", 30)

	fmt.Fprintln(w, "\nProduct Categorization Statistics:")
	fmt.Fprintln(w, rule)
	for _, c := range counts {
		fmt.Fprintf(w, "%s: %d products\n", c.Category, c.Count)
	}

	if len(flags) > 0 {
		fmt.Fprintln(w, "\nPotential Miscategorized Items:")
		fmt.Fprintln(w, rule)
		for _, f := range flags {
			fmt.Fprintf(w, "Product: %s\n", f.Name)
			fmt.Fprintf(w, "Current Category: %s\n", f.CurrentCategory)
			fmt.Fprintf(w, "Suggested Category: %s\n", f.SuggestedCategory)
			fmt.Fprintln(w, strings.Repeat("-", 20))
		}
	}

	fmt.Fprintf(w, "\nExcel file '%s' has been created successfully!\n", filepath.Base(reportPath))
}
