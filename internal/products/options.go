package products

import (
	"net/http"
	"time"
)

// Defaults for scrape tuning. Callers normally take these from the
// server config; tests override individual fields via Options.
const (
	DefaultMaxProducts   = 30
	DefaultMinCandidates = 5
	DefaultPageTimeout   = 15 * time.Second
	DefaultFeedTimeout   = 8 * time.Second
	DefaultUserAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

const (
	// Images narrower than this are treated as icons by the generic extractor.
	minImageWidth = 50

	// Upper bound on any response body we are willing to parse.
	maxBodyBytes = 10 << 20

	fallbackName = "Unknown Product"
)

// Options tunes one Scraper instance. The zero value of any field
// falls back to the package default in New.
type Options struct {
	// MaxProducts caps the final deduplicated product list.
	MaxProducts int

	// MinCandidates is the combined JSON-LD + pattern result size below
	// which the generic heuristic extractor runs as a top-up pass.
	MinCandidates int

	PageTimeout time.Duration
	FeedTimeout time.Duration
	UserAgent   string

	// RespectRobots gates the page fetch on the site's robots.txt.
	RespectRobots bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxProducts:   DefaultMaxProducts,
		MinCandidates: DefaultMinCandidates,
		PageTimeout:   DefaultPageTimeout,
		FeedTimeout:   DefaultFeedTimeout,
		UserAgent:     DefaultUserAgent,
	}
}

// Scraper discovers products on arbitrary storefront pages. It holds
// no per-call state, so one instance can serve concurrent scrapes.
type Scraper struct {
	opts   Options
	client *http.Client
}

// New constructs a Scraper, filling unset options with defaults.
// Timeouts are applied per request via context, not on the client.
func New(opts Options) *Scraper {
	if opts.MaxProducts <= 0 {
		opts.MaxProducts = DefaultMaxProducts
	}
	if opts.MinCandidates <= 0 {
		opts.MinCandidates = DefaultMinCandidates
	}
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultPageTimeout
	}
	if opts.FeedTimeout <= 0 {
		opts.FeedTimeout = DefaultFeedTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Scraper{opts: opts, client: &http.Client{}}
}
