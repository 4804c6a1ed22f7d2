package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"studio/internal/model"
)

// flexString decodes a JSON value that storefronts serve sometimes as a
// string and sometimes as a bare number (prices, notably).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

type feedImage struct {
	Src string `json:"src"`
}

type feedVariant struct {
	Price flexString `json:"price"`
}

type feedProduct struct {
	Title    string        `json:"title"`
	Handle   string        `json:"handle"`
	Images   []feedImage   `json:"images"`
	Variants []feedVariant `json:"variants"`
}

type feedPayload struct {
	Products []feedProduct `json:"products"`
}

// extractFromFeed tries the Shopify public product listing at
// /products.json. Any failure (timeout, non-2xx, malformed JSON, no
// products array) yields (nil, false) so the caller falls through to
// HTML-based extraction; this path never fails the scrape.
func (s *Scraper) extractFromFeed(ctx context.Context, base *url.URL) ([]model.ScrapedProduct, bool) {
	feedURL := fmt.Sprintf("%s://%s/products.json?limit=%d", base.Scheme, base.Host, s.opts.MaxProducts)

	body, err := s.fetch(ctx, feedURL, s.opts.FeedTimeout, "application/json")
	if err != nil {
		return nil, false
	}

	var payload feedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	if len(payload.Products) == 0 {
		return nil, false
	}

	origin := base.Scheme + "://" + base.Host
	out := make([]model.ScrapedProduct, 0, len(payload.Products))
	for _, p := range payload.Products {
		if len(out) >= s.opts.MaxProducts {
			break
		}
		if len(p.Images) == 0 || strings.TrimSpace(p.Images[0].Src) == "" {
			continue
		}

		prod := model.ScrapedProduct{
			Name:     strings.TrimSpace(p.Title),
			ImageURL: strings.TrimSpace(p.Images[0].Src),
		}
		if prod.Name == "" {
			prod.Name = fallbackName
		}
		if len(p.Variants) > 0 && p.Variants[0].Price != "" {
			prod.Price = "$" + string(p.Variants[0].Price)
		}
		if p.Handle != "" {
			prod.ProductURL = origin + "/products/" + p.Handle
		}
		out = append(out, prod)
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// looksLikeShopifyHost reports whether the hostname alone justifies an
// opportunistic feed attempt before fetching any HTML.
func looksLikeShopifyHost(host string) bool {
	return strings.Contains(host, "myshopify.com") || strings.Contains(host, "shopify")
}
