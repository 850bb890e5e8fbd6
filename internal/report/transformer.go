package report

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dropicat/internal/classifier"
	"dropicat/internal/model"
	"dropicat/internal/stock"
)

const productDetailsBase = "app.dropi.co/dashboard/product-details"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug renders name as lowercase ASCII words joined by single hyphens.
// Accents are decomposed and dropped, other non-ASCII runes are removed.
func Slug(name string) string {
	ascii := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	s, _, err := transform.String(ascii, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ProductURL is the scheme-less product detail path shown in the report.
func ProductURL(id int64, name string) string {
	return fmt.Sprintf("%s/%d/%s", productDetailsBase, id, Slug(name))
}

// ProductToRow classifies p and flattens it into a report row. The second
// result is non-nil when the name suggests a missed MASCOTAS label.
func ProductToRow(p *model.Product) (model.ExportRow, *model.MiscategorizationFlag) {
	category := classifier.Classify(p)

	row := model.ExportRow{
		Category:       category,
		ID:             p.ID,
		Name:           p.Name,
		SalePrice:      p.SalePrice.Decimal,
		SuggestedPrice: p.SuggestedPrice.Decimal,
		Stock:          stock.Total(p),
		StoreName:      p.StoreName(),
		ProductURL:     ProductURL(p.ID, p.Name),
	}
	return row, classifier.Flag(p, category)
}

// BuildRows projects every product, keeping snapshot order, and collects the
// miscategorization flags in the same order.
func BuildRows(products []model.Product) ([]model.ExportRow, []model.MiscategorizationFlag) {
	rows := make([]model.ExportRow, 0, len(products))
	var flags []model.MiscategorizationFlag
	for i := range products {
		row, flag := ProductToRow(&products[i])
		rows = append(rows, row)
		if flag != nil {
			flags = append(flags, *flag)
		}
	}
	return rows, flags
}
