package products

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

// robotsAllowed checks the site's robots.txt for our user agent. The
// check is advisory: any failure to fetch or parse robots.txt allows
// the scrape, only an explicit disallow blocks it.
func (s *Scraper) robotsAllowed(ctx context.Context, page *url.URL) bool {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FeedTimeout)
	defer cancel()

	robotsURL := url.URL{Scheme: page.Scheme, Host: page.Host, Path: "/robots.txt"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return true
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return true
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return true
	}

	path := page.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, s.opts.UserAgent)
}
