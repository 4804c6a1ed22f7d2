package products

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
)

// extractFromJSONLD collects Product nodes out of every embedded
// ld+json block. Three container shapes are recognized: a bare Product,
// an ItemList whose elements wrap Products, and a @graph node list.
// Blocks that fail to parse are skipped; malformed JSON-LD is routine
// on real sites and must never abort the scrape.
func extractFromJSONLD(doc *goquery.Document, base *url.URL) []model.ScrapedProduct {
	var products []model.ScrapedProduct

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}

		items, ok := data.([]any)
		if !ok {
			items = []any{data}
		}

		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}

			if isProductNode(item) {
				if p, ok := productFromNode(item, base); ok {
					products = append(products, p)
				}
			}

			if item["@type"] == "ItemList" {
				elems, _ := item["itemListElement"].([]any)
				for _, le := range elems {
					node, ok := le.(map[string]any)
					if !ok {
						continue
					}
					if wrapped, ok := node["item"].(map[string]any); ok {
						node = wrapped
					}
					if isProductNode(node) {
						if p, ok := productFromNode(node, base); ok {
							products = append(products, p)
						}
					}
				}
			}

			if graph, ok := item["@graph"].([]any); ok {
				for _, ge := range graph {
					node, ok := ge.(map[string]any)
					if !ok {
						continue
					}
					if isProductNode(node) {
						if p, ok := productFromNode(node, base); ok {
							products = append(products, p)
						}
					}
				}
			}
		}
	})

	return products
}

func isProductNode(item map[string]any) bool {
	t, ok := item["@type"].(string)
	return ok && t == "Product"
}

// productFromNode normalizes one Product node. A node without a
// resolvable image is dropped; a bad detail URL only drops that field.
func productFromNode(item map[string]any, base *url.URL) (model.ScrapedProduct, bool) {
	raw := firstImageRef(item["image"])
	if raw == "" {
		return model.ScrapedProduct{}, false
	}
	imageURL, ok := resolveURL(base, raw)
	if !ok {
		return model.ScrapedProduct{}, false
	}

	p := model.ScrapedProduct{
		Name:     strings.TrimSpace(displayString(item["name"])),
		ImageURL: imageURL,
	}
	if p.Name == "" {
		p.Name = fallbackName
	}

	if offer := firstOffer(item["offers"]); offer != nil {
		if price := displayString(offer["price"]); price != "" {
			currency := displayString(offer["priceCurrency"])
			if currency == "" {
				currency = "$"
			}
			p.Price = currency + " " + price
		}
	}

	if ref := displayString(item["url"]); ref != "" {
		if resolved, ok := resolveURL(base, ref); ok {
			p.ProductURL = resolved
		}
	}

	return p, true
}

// firstImageRef handles the three shapes the image field takes in the
// wild: a URL string, an array of URLs, or an object with a url field.
func firstImageRef(v any) string {
	switch img := v.(type) {
	case string:
		return img
	case []any:
		if len(img) > 0 {
			if s, ok := img[0].(string); ok {
				return s
			}
		}
	case map[string]any:
		if s, ok := img["url"].(string); ok {
			return s
		}
	}
	return ""
}

// firstOffer unwraps offers given as a single object or an array.
func firstOffer(v any) map[string]any {
	switch o := v.(type) {
	case map[string]any:
		return o
	case []any:
		if len(o) > 0 {
			if m, ok := o[0].(map[string]any); ok {
				return m
			}
		}
	}
	return nil
}

// displayString renders a decoded JSON scalar for display. Numbers keep
// their shortest representation; everything else is dropped.
func displayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
