package products

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
)

// DetectPlatform classifies the storefront behind a fetched page. It is
// a pure function of the parsed document, the raw markup, and the
// target URL; the first matching signal wins.
func DetectPlatform(doc *goquery.Document, html string, u *url.URL) model.Platform {
	host := u.Hostname()

	if strings.Contains(html, "cdn.shopify.com") ||
		strings.Contains(html, "Shopify.theme") ||
		strings.Contains(host, "myshopify.com") {
		return model.PlatformShopify
	}

	if strings.Contains(html, "tiendanube") ||
		strings.Contains(html, "nuvemshop") ||
		strings.Contains(host, "mitienda.") ||
		strings.Contains(host, "tiendanube.com") {
		return model.PlatformTiendanube
	}

	if strings.Contains(html, "woocommerce") ||
		doc.Find(".woocommerce").Length() > 0 ||
		doc.Find(`[class*="wc-block"]`).Length() > 0 {
		return model.PlatformWooCommerce
	}

	return model.PlatformGeneric
}

var titleSeparators = regexp.MustCompile(`[|\x2D\x{2013}]`)

// StoreName picks a best-effort display name for the site: og:site_name,
// then application-name, then the first segment of the page title, then
// the leading hostname label.
func StoreName(doc *goquery.Document, u *url.URL) string {
	if v := strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", "")); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find(`meta[name="application-name"]`).AttrOr("content", "")); v != "" {
		return v
	}
	if title := doc.Find("title").First().Text(); title != "" {
		parts := titleSeparators.Split(title, 2)
		if v := strings.TrimSpace(parts[0]); v != "" {
			return v
		}
	}
	return hostLabel(u.Hostname())
}

// hostLabel reduces "www.acme-store.com" to "acme-store".
func hostLabel(host string) string {
	host = strings.TrimPrefix(host, "www.")
	if i := strings.Index(host, "."); i > 0 {
		return host[:i]
	}
	return host
}
