// Package classifier assigns one fixed category to each product using the pet
// patterns first and the keyword table second, with OTROS as fallback.
package classifier

import (
	"strings"

	"dropicat/internal/model"
)

// Corpus is the normalized name followed by each normalized tag name,
// space separated.
func Corpus(p *model.Product) string {
	var sb strings.Builder
	sb.WriteString(Normalize(p.Name))
	for _, c := range p.Categories {
		sb.WriteString(" ")
		sb.WriteString(Normalize(c.Name))
	}
	return sb.String()
}

// Classify returns exactly one category label for p.
func Classify(p *model.Product) string {
	return ClassifyText(Corpus(p))
}

// ClassifyText applies the rules to an already built corpus.
func ClassifyText(corpus string) string {
	for _, re := range petPatterns {
		if re.MatchString(corpus) {
			return model.CategoryMascotas
		}
	}

	for _, rule := range keywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(corpus, kw) {
				return rule.Category
			}
		}
	}

	return model.CategoryOtros
}

// IsMiscategorized reports whether p was not labelled MASCOTAS although its
// normalized name (tags excluded) contains a pet word.
func IsMiscategorized(p *model.Product, label string) bool {
	if label == model.CategoryMascotas {
		return false
	}
	name := Normalize(p.Name)
	for _, w := range flagWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

// Flag builds the advisory record for a miscategorized product, or nil.
func Flag(p *model.Product, label string) *model.MiscategorizationFlag {
	if !IsMiscategorized(p, label) {
		return nil
	}
	return &model.MiscategorizationFlag{
		Name:              p.Name,
		CurrentCategory:   label,
		SuggestedCategory: model.CategoryMascotas,
	}
}
