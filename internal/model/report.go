package model

import "github.com/shopspring/decimal"

// Category labels. Every product gets exactly one.
const (
	CategoryMascotas = "MASCOTAS"
	CategoryHogar    = "HOGAR"
	CategorySalud    = "SALUD"
	CategoryViaje    = "VIAJE"
	CategoryCocina   = "COCINA"
	CategoryOtros    = "OTROS"
)

// ExportRow is the flat spreadsheet projection of a classified product.
type ExportRow struct {
	Category       string
	ID             int64
	Name           string
	SalePrice      decimal.Decimal
	SuggestedPrice decimal.Decimal
	Stock          int
	StoreName      string
	ProductURL     string
}

// MiscategorizationFlag marks a product that mentions a pet word in its name
// but was not labelled MASCOTAS. Advisory only.
type MiscategorizationFlag struct {
	Name              string `json:"name"`
	CurrentCategory   string `json:"current_category"`
	SuggestedCategory string `json:"suggested_category"`
}

// CategoryCount is one line of the category histogram.
type CategoryCount struct {
	Category string
	Count    int
}
