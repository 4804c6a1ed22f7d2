package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// normalizeTarget parses user input into an absolute URL, prefixing
// https:// when no scheme is present.
func normalizeTarget(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidURL
	}
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}

// fetch performs one time-bounded GET and returns the body. Non-2xx
// responses become a *StatusError; deadline and network timeouts are
// classified as ErrFetchTimeout so callers can distinguish them from
// ordinary network failures.
func (s *Scraper) fetch(ctx context.Context, target string, timeout time.Duration, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classifyFetchErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyFetchErr(err)
	}
	return body, nil
}

func classifyFetchErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrFetchTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrFetchTimeout, err)
	}
	return err
}

// resolveURL turns a possibly-relative reference into an absolute
// http(s) URL against base. The bool is false when the reference is
// empty, malformed, or resolves to a non-web scheme.
func resolveURL(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if !u.IsAbs() {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

// FetchPage fetches a page's HTML under the given timeout (or the
// configured page timeout when zero) and returns the body together
// with the normalized URL. Shared with the brand scraper so both
// endpoints classify timeouts and upstream statuses identically.
func (s *Scraper) FetchPage(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, *url.URL, error) {
	u, err := normalizeTarget(rawURL)
	if err != nil {
		return nil, nil, err
	}
	if timeout <= 0 {
		timeout = s.opts.PageTimeout
	}
	body, err := s.fetch(ctx, u.String(), timeout, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, nil, err
	}
	return body, u, nil
}
