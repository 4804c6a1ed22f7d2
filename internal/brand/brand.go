package brand

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	htmlmd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
	"studio/internal/products"
)

const (
	DefaultTimeout = 10 * time.Second

	maxTaglineLen = 200
	maxColors     = 3
)

// Scraper extracts a lightweight brand profile (name, tagline, dominant
// colors, logo) from a storefront's landing page. It reuses the product
// scraper's fetch layer so timeout and status classification behave the
// same across both endpoints.
type Scraper struct {
	fetcher *products.Scraper
	timeout time.Duration
}

func New(opts products.Options, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{fetcher: products.New(opts), timeout: timeout}
}

// Scrape fetches the page and assembles a BrandProfile. Content is the
// page body converted to Markdown so downstream prompt builders can
// feed it to a model without their own HTML handling.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*model.BrandProfile, error) {
	body, pageURL, err := s.fetcher.FetchPage(ctx, rawURL, s.timeout)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	profile := &model.BrandProfile{
		BrandName: brandName(doc, pageURL),
		Tagline:   tagline(doc),
	}

	colors := extractColors(doc)
	profile.Colors = model.BrandColors{
		Primary:   pick(colors, 0, "#000000"),
		Secondary: pick(colors, 1, "#ffffff"),
		Accent:    pick(colors, 2, "#666666"),
	}

	if href := logoHref(doc); href != "" {
		if u, err := url.Parse(strings.TrimSpace(href)); err == nil {
			if !u.IsAbs() {
				u = pageURL.ResolveReference(u)
			}
			if u.Scheme == "http" || u.Scheme == "https" {
				profile.LogoURL = u.String()
			}
		}
	}

	converter := htmlmd.NewConverter(pageURL.Hostname(), true, nil)
	if md, err := converter.ConvertString(string(body)); err == nil {
		profile.Content = md
	}

	return profile, nil
}

var titleSeparators = regexp.MustCompile(`[|\x2D\x{2013}]`)

// brandName prefers site metadata and falls back to the last segment of
// the page title, which usually carries the site name on listing pages.
func brandName(doc *goquery.Document, u *url.URL) string {
	if v := strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", "")); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find(`meta[name="application-name"]`).AttrOr("content", "")); v != "" {
		return v
	}
	if title := doc.Find("title").First().Text(); title != "" {
		parts := titleSeparators.Split(title, -1)
		if v := strings.TrimSpace(parts[len(parts)-1]); v != "" {
			return v
		}
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if i := strings.Index(host, "."); i > 0 {
		return host[:i]
	}
	return host
}

func tagline(doc *goquery.Document) string {
	v := doc.Find(`meta[property="og:description"]`).AttrOr("content", "")
	if v == "" {
		v = doc.Find(`meta[name="description"]`).AttrOr("content", "")
	}
	if v == "" {
		v = doc.Find(`meta[name="twitter:description"]`).AttrOr("content", "")
	}
	v = strings.TrimSpace(v)
	if len(v) > maxTaglineLen {
		v = v[:maxTaglineLen]
	}
	return v
}

func logoHref(doc *goquery.Document) string {
	if v := doc.Find(`link[rel="icon"][type="image/svg+xml"]`).AttrOr("href", ""); v != "" {
		return v
	}
	if v := doc.Find(`link[rel="apple-touch-icon"]`).AttrOr("href", ""); v != "" {
		return v
	}
	return doc.Find(`meta[property="og:image"]`).AttrOr("content", "")
}

var hexColor = regexp.MustCompile(`#([0-9a-fA-F]{3,8})\b`)

// extractColors collects candidate brand colors: explicit theme-color
// metadata first, then the most frequent hex values in inline styles,
// skipping plain black and white.
func extractColors(doc *goquery.Document) []string {
	var colors []string

	for _, sel := range []string{`meta[name="theme-color"]`, `meta[name="msapplication-TileColor"]`} {
		if v := strings.TrimSpace(doc.Find(sel).AttrOr("content", "")); isValidHex(v) {
			colors = append(colors, normalizeHex(v))
		}
	}

	var styleText strings.Builder
	styleText.WriteString(doc.Find("style").Text())
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		styleText.WriteString(" ")
		styleText.WriteString(sel.AttrOr("style", ""))
	})

	counts := make(map[string]int)
	var order []string
	for _, m := range hexColor.FindAllString(styleText.String(), -1) {
		hex := normalizeHex(m)
		if hex == "#ffffff" || hex == "#000000" {
			continue
		}
		if counts[hex] == 0 {
			order = append(order, hex)
		}
		counts[hex]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	for _, hex := range order {
		if len(colors) >= maxColors {
			break
		}
		if !contains(colors, hex) {
			colors = append(colors, hex)
		}
	}

	return colors
}

var validHex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

func isValidHex(s string) bool {
	return validHex.MatchString(strings.TrimSpace(s))
}

// normalizeHex lowercases and expands short form, dropping any alpha
// channel so all colors are comparable as #rrggbb.
func normalizeHex(hex string) string {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if len(hex) == 4 {
		return "#" + strings.Repeat(string(hex[1]), 2) + strings.Repeat(string(hex[2]), 2) + strings.Repeat(string(hex[3]), 2)
	}
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}

func pick(colors []string, i int, fallback string) string {
	if i < len(colors) {
		return colors[i]
	}
	return fallback
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
