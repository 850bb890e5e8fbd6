package model

// Product is one element of the snapshot "objects" array. Only the fields
// the categorizer reads are mapped; the snapshot itself keeps everything.
type Product struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Categories       []ProductCategory  `json:"categories"`
	WarehouseProduct []WarehouseProduct `json:"warehouse_product"`
	Variations       []Variation        `json:"variations"`
	SalePrice        Price              `json:"sale_price"`
	SuggestedPrice   Price              `json:"suggested_price"`
	User             *Store             `json:"user"`
	Gallery          []GalleryImage     `json:"gallery"`
}

type ProductCategory struct {
	Name string `json:"name"`
}

type WarehouseProduct struct {
	WarehouseID int64    `json:"warehouse_id"`
	Stock       Quantity `json:"stock"`
}

type Variation struct {
	ID    int64    `json:"id"`
	Stock Quantity `json:"stock"`
}

type Store struct {
	StoreName *string `json:"store_name"`
}

type GalleryImage struct {
	URLS3 string `json:"urlS3"`
}

// StoreName returns the owning store name, or "N/A" when the product has no
// user reference or the reference carries no store_name.
func (p *Product) StoreName() string {
	if p.User == nil || p.User.StoreName == nil {
		return "N/A"
	}
	return *p.User.StoreName
}
