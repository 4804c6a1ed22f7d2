package products

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
)

// priceText matches currency-amount or amount-currency display prices.
// The trailing class accepts a bare currency-code letter run adjacent
// to digits, which can false-positive on unrelated numbers; the lax
// pattern is kept deliberately since tightening it loses real prices.
var priceText = regexp.MustCompile(`[$€£]\s*[0-9]+[.,]?[0-9]*|[0-9]+[.,]?[0-9]*\s*[$€£ARS]`)

// extractGeneric is the last-resort extractor for pages without any
// platform signal: it scans elements whose class or data attributes
// suggest a product card and keeps those with a plausible image and
// name. Anything inside nav, header, or footer is site chrome, not a
// product, and is skipped outright.
func (s *Scraper) extractGeneric(doc *goquery.Document, base *url.URL) []model.ScrapedProduct {
	var products []model.ScrapedProduct

	doc.Find(`[class*="product"], [class*="item"], [data-product], [class*="card"]`).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if len(products) >= s.opts.MaxProducts {
			return false
		}

		if el.Closest("nav, header, footer").Length() > 0 {
			return true
		}

		img := el.Find("img").First()
		if img.Length() == 0 {
			return true
		}
		src := img.AttrOr("src", "")
		if src == "" {
			src = img.AttrOr("data-src", "")
		}
		imageURL, ok := resolveURL(base, src)
		if !ok {
			return true
		}

		// A declared width below the icon threshold disqualifies the image.
		if w, ok := attrInt(img.AttrOr("width", "")); ok && w > 0 && w < minImageWidth {
			return true
		}
		if isPlaceholderImage(imageURL) {
			return true
		}

		name := strings.TrimSpace(el.Find("h2, h3, h4, a").First().Text())
		if name == "" {
			name = strings.TrimSpace(img.AttrOr("alt", ""))
		}
		// No placeholder fallback here: a nameless card is not a product.
		if utf8.RuneCountInString(name) < 2 {
			return true
		}

		price := strings.TrimSpace(priceText.FindString(el.Text()))

		var productURL string
		if href := el.Find("a").First().AttrOr("href", ""); href != "" {
			if resolved, ok := resolveURL(base, href); ok {
				productURL = resolved
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

	return products
}

// attrInt reads the leading digit run of a dimension attribute, the way
// browsers do, so values like "30px" still parse as 30.
func attrInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
