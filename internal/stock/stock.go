package stock

import "dropicat/internal/model"

// Total returns the stock of the first warehouse entry with positive stock.
// When no warehouse entry is positive it falls back to the sum of all
// variation stocks, which is 0 when there are none.
func Total(p *model.Product) int {
	for _, w := range p.WarehouseProduct {
		if w.Stock > 0 {
			return int(w.Stock)
		}
	}

	total := 0
	for _, v := range p.Variations {
		total += int(v.Stock)
	}
	return total
}
