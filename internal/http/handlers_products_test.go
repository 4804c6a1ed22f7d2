package http

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"

	"studio/internal/products"
)

func TestMapScrapeError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid url", products.ErrInvalidURL, fiber.StatusBadRequest, "BAD_REQUEST_INVALID_URL"},
		{"wrapped timeout", errors.Join(errors.New("ctx"), products.ErrFetchTimeout), fiber.StatusGatewayTimeout, "SCRAPE_TIMEOUT"},
		{"robots", products.ErrRobotsDisallowed, fiber.StatusForbidden, "ROBOTS_DISALLOWED"},
		{"upstream status", &products.StatusError{Status: 404}, fiber.StatusBadGateway, "UPSTREAM_STATUS"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "SCRAPE_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, msg := mapScrapeError(tc.err)
			if status != tc.wantStatus || code != tc.wantCode {
				t.Fatalf("mapScrapeError(%v) = (%d, %q), want (%d, %q)", tc.err, status, code, tc.wantStatus, tc.wantCode)
			}
			if msg == "" {
				t.Fatal("expected a user-facing message")
			}
		})
	}

	if _, _, msg := mapScrapeError(&products.StatusError{Status: 451}); msg != "Failed to fetch: 451" {
		t.Fatalf("unexpected upstream message: %q", msg)
	}
}
