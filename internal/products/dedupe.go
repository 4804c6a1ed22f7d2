package products

import "studio/internal/model"

// Deduplicate drops candidates whose image URL was already seen. First
// occurrence wins, so callers must append higher-confidence sources
// first. The operation is idempotent.
func Deduplicate(products []model.ScrapedProduct) []model.ScrapedProduct {
	seen := make(map[string]struct{}, len(products))
	out := make([]model.ScrapedProduct, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.ImageURL]; dup {
			continue
		}
		seen[p.ImageURL] = struct{}{}
		out = append(out, p)
	}
	return out
}

func capProducts(products []model.ScrapedProduct, max int) []model.ScrapedProduct {
	if max > 0 && len(products) > max {
		return products[:max]
	}
	return products
}
