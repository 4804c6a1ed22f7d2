package products

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"

	"studio/internal/model"
)

// Scrape discovers products listed on a storefront page. Strategies run
// in priority order: the Shopify feed fast path (tried before fetching
// HTML when the hostname already looks like Shopify, and again after
// platform detection confirms it), then JSON-LD, then platform-tuned
// selectors, then the generic heuristic when the combined yield is
// below the top-up threshold. The result is deduplicated by image URL
// and capped; zero products is a valid result, not an error.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*model.ScrapeResult, error) {
	pageURL, err := normalizeTarget(rawURL)
	if err != nil {
		return nil, err
	}

	if s.opts.RespectRobots && !s.robotsAllowed(ctx, pageURL) {
		return nil, ErrRobotsDisallowed
	}

	if looksLikeShopifyHost(pageURL.Hostname()) {
		if feed, ok := s.extractFromFeed(ctx, pageURL); ok {
			return &model.ScrapeResult{
				Products:  capProducts(Deduplicate(feed), s.opts.MaxProducts),
				StoreName: hostLabel(pageURL.Hostname()),
				Platform:  model.PlatformShopify,
			}, nil
		}
	}

	body, err := s.fetch(ctx, pageURL.String(), s.opts.PageTimeout, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	html := string(body)

	platform := DetectPlatform(doc, html, pageURL)
	storeName := StoreName(doc, pageURL)

	// The opportunistic pre-check only looks at the hostname; a Shopify
	// store on a custom domain is only recognized here.
	if platform == model.PlatformShopify {
		if feed, ok := s.extractFromFeed(ctx, pageURL); ok {
			return &model.ScrapeResult{
				Products:  capProducts(Deduplicate(feed), s.opts.MaxProducts),
				StoreName: storeName,
				Platform:  platform,
			}, nil
		}
	}

	candidates := extractFromJSONLD(doc, pageURL)
	if platform != model.PlatformGeneric {
		candidates = append(candidates, s.extractFromSelectors(doc, pageURL, platform)...)
	}
	if len(candidates) < s.opts.MinCandidates {
		candidates = append(candidates, s.extractGeneric(doc, pageURL)...)
	}

	return &model.ScrapeResult{
		Products:  capProducts(Deduplicate(candidates), s.opts.MaxProducts),
		StoreName: storeName,
		Platform:  platform,
	}, nil
}
