package products

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
)

// selectorSet names, per role, the ordered CSS selectors a platform's
// themes conventionally use for product tiles. Within a container the
// first selector that matches wins for each role.
type selectorSet struct {
	Container []string
	Image     []string
	Name      []string
	Price     []string
	Link      []string
}

// platformSelectors is the per-platform lookup table. Generic has no
// entry on purpose: the missing-key case is handled as "no results" so
// the caller moves on to the heuristic extractor.
var platformSelectors = map[model.Platform]selectorSet{
	model.PlatformShopify: {
		Container: []string{
			".product-card", ".grid-product", ".product-item",
			"[data-product-id]", ".grid__item .grid-product__content", ".product-grid-item",
		},
		Image: []string{"img"},
		Name: []string{
			".product-card__title", ".product-card__name", "h2 a", "h3 a",
			".grid-product__title", ".product-grid-item__title",
		},
		Price: []string{
			".product-price", ".money", "[data-product-price]", ".price", ".grid-product__price",
		},
		Link: []string{`a[href*="/products/"]`},
	},
	model.PlatformTiendanube: {
		Container: []string{
			".js-item-product", ".item-product", ".product-block", ".js-product-container",
		},
		Image: []string{".item-image img", ".product-image img", "img"},
		Name:  []string{".item-name", ".item-title", ".js-item-name", "h2 a", "h3 a"},
		Price: []string{".item-price", ".js-price-display", ".price"},
		Link:  []string{"a[href]"},
	},
	model.PlatformWooCommerce: {
		Container: []string{
			"li.product", ".wc-block-grid__product", ".product-item", ".product",
		},
		Image: []string{
			".woocommerce-LoopProduct-link img", ".attachment-woocommerce_thumbnail", "img",
		},
		Name: []string{
			".woocommerce-loop-product__title", "h2.wc-block-grid__product-title", "h2 a", ".product-title",
		},
		Price: []string{".price", ".woocommerce-Price-amount"},
		Link:  []string{".woocommerce-LoopProduct-link", "a[href]"},
	},
}

// extractFromSelectors walks the platform's container selectors in
// priority order and pulls one candidate per tile. Returns nil for
// platforms without a selector set.
func (s *Scraper) extractFromSelectors(doc *goquery.Document, base *url.URL, platform model.Platform) []model.ScrapedProduct {
	set, ok := platformSelectors[platform]
	if !ok {
		return nil
	}

	var products []model.ScrapedProduct
	for _, containerSel := range set.Container {
		if len(products) >= s.opts.MaxProducts {
			break
		}
		doc.Find(containerSel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if len(products) >= s.opts.MaxProducts {
				return false
			}

			img := firstMatch(el, set.Image)
			if img == nil {
				return true
			}
			src := imageSource(img)
			if src == "" {
				return true
			}
			imageURL, ok := resolveURL(base, src)
			if !ok {
				return true
			}
			if isPlaceholderImage(imageURL) {
				return true
			}

			var name string
			if nameEl := firstMatch(el, set.Name); nameEl != nil {
				name = strings.TrimSpace(nameEl.Text())
			}
			if name == "" {
				name = strings.TrimSpace(img.AttrOr("alt", ""))
			}
			if name == "" {
				name = fallbackName
			}

			var price string
			if priceEl := firstMatch(el, set.Price); priceEl != nil {
				price = strings.TrimSpace(priceEl.Text())
			}

			var productURL string
			if link := firstMatch(el, set.Link); link != nil {
				if href := link.AttrOr("href", ""); href != "" {
					if resolved, ok := resolveURL(base, href); ok {
						productURL = resolved
					}
				}
			}

			products = append(products, model.ScrapedProduct{
				Name:       name,
				ImageURL:   imageURL,
				Price:      price,
				ProductURL: productURL,
			})
			return true
		})
	}

	return products
}

// firstMatch returns the first element matched by the first selector
// that matches anything under root, or nil.
func firstMatch(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if m := root.Find(sel).First(); m.Length() > 0 {
			return m
		}
	}
	return nil
}

// imageSource reads the tile image URL, trying src, then the lazy-load
// attributes themes use: data-src, the first data-srcset candidate,
// and data-original.
func imageSource(img *goquery.Selection) string {
	src := img.AttrOr("src", "")
	if src == "" {
		src = img.AttrOr("data-src", "")
	}
	if src == "" {
		src = firstSrcsetURL(img.AttrOr("data-srcset", ""))
	}
	if src == "" {
		src = img.AttrOr("data-original", "")
	}
	return strings.TrimSpace(src)
}

// firstSrcsetURL takes the URL token of the first candidate in a
// srcset-style attribute ("url1 1x, url2 2x").
func firstSrcsetURL(srcset string) string {
	srcset = strings.TrimSpace(srcset)
	if srcset == "" {
		return ""
	}
	first := strings.TrimSpace(strings.Split(srcset, ",")[0])
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isPlaceholderImage flags lazy-load placeholders and 1x1 tracking
// pixels by their URL text.
func isPlaceholderImage(u string) bool {
	return strings.Contains(u, "placeholder") || strings.Contains(u, "1x1")
}
