package brand

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestBrandName(t *testing.T) {
	u, _ := url.Parse("https://www.luna-store.com")

	cases := []struct {
		name string
		html string
		want string
	}{
		{"og site name", `<html><head><meta property="og:site_name" content="Luna"></head></html>`, "Luna"},
		{"title last segment", `<html><head><title>Summer Collection | Luna Store</title></head></html>`, "Luna Store"},
		{"title with dash", `<html><head><title>Shop - Luna</title></head></html>`, "Luna"},
		{"hostname fallback", `<html></html>`, "luna-store"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := brandName(parseDoc(t, tc.html), u); got != tc.want {
				t.Fatalf("brandName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTaglineTruncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	doc := parseDoc(t, `<html><head><meta name="description" content="`+long+`"></head></html>`)
	got := tagline(doc)
	if len(got) != maxTaglineLen {
		t.Fatalf("expected tagline truncated to %d, got %d", maxTaglineLen, len(got))
	}

	doc = parseDoc(t, `<html><head>
<meta property="og:description" content="  First choice  ">
<meta name="description" content="Second choice">
</head></html>`)
	if got := tagline(doc); got != "First choice" {
		t.Fatalf("expected og:description to win, got %q", got)
	}
}

func TestExtractColors(t *testing.T) {
	doc := parseDoc(t, `<html><head>
<meta name="theme-color" content="#1A2B3C">
<style>
.hero { background: #ff9900; }
.cta { color: #ff9900; border-color: #ffffff; }
.badge { color: #00cc66; }
</style>
</head><body>
<div style="background:#ff9900;color:#000"></div>
</body></html>`)

	got := extractColors(doc)
	want := []string{"#1a2b3c", "#ff9900", "#00cc66"}
	if len(got) != len(want) {
		t.Fatalf("expected %d colors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("colors[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := []struct{ in, want string }{
		{"#FFF", "#ffffff"},
		{"#a1B", "#aa11bb"},
		{"#A1B2C3", "#a1b2c3"},
		{"#a1b2c3ff", "#a1b2c3"},
	}
	for _, tc := range cases {
		if got := normalizeHex(tc.in); got != tc.want {
			t.Fatalf("normalizeHex(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidHex(t *testing.T) {
	valid := []string{"#fff", "#1a2b3c", "#1a2b3cff"}
	invalid := []string{"", "fff", "#ggg", "#12345", "red"}
	for _, v := range valid {
		if !isValidHex(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if isValidHex(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestLogoHref(t *testing.T) {
	doc := parseDoc(t, `<html><head>
<link rel="icon" type="image/svg+xml" href="/logo.svg">
<link rel="apple-touch-icon" href="/touch.png">
<meta property="og:image" content="/og.png">
</head></html>`)
	if got := logoHref(doc); got != "/logo.svg" {
		t.Fatalf("expected svg icon first, got %q", got)
	}

	doc = parseDoc(t, `<html><head><meta property="og:image" content="https://cdn/og.png"></head></html>`)
	if got := logoHref(doc); got != "https://cdn/og.png" {
		t.Fatalf("expected og:image fallback, got %q", got)
	}
}
