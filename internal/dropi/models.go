package dropi

// IndexRequest is the body of the products index query.
type IndexRequest struct {
	PageSize        int    `json:"pageSize"`
	StartData       int    `json:"startData"`
	PrivatedProduct bool   `json:"privated_product"`
	UserVerified    bool   `json:"userVerified"`
	OrderBy         string `json:"order_by"`
	OrderType       string `json:"order_type"`
	Favorite        bool   `json:"favorite"`
	WithCollection  bool   `json:"with_collection"`
	GetStock        bool   `json:"get_stock"`
	NoCount         bool   `json:"no_count"`
}

// FavoritesRequest asks for the newest favorited products, one page only.
func FavoritesRequest(pageSize int) IndexRequest {
	return IndexRequest{
		PageSize:        pageSize,
		StartData:       0,
		PrivatedProduct: false,
		UserVerified:    false,
		OrderBy:         "created_at",
		OrderType:       "desc",
		Favorite:        true,
		WithCollection:  true,
		GetStock:        false,
		NoCount:         true,
	}
}

var defaultHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Connection":         "keep-alive",
	"Content-Type":       "application/json",
	"Origin":             "https://app.dropi.co",
	"Referer":            "https://app.dropi.co/",
	"Sec-Fetch-Dest":     "empty",
	"Sec-Fetch-Mode":     "cors",
	"Sec-Fetch-Site":     "same-site",
	"User-Agent":         "Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Mobile Safari/537.36 Edg/137.0.0.0",
	"sec-ch-ua":          `"Microsoft Edge";v="137", "Chromium";v="137", "Not/A)Brand";v="24"`,
	"sec-ch-ua-mobile":   "?1",
	"sec-ch-ua-platform": `"Android"`,
}
