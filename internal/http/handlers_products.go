package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"studio/internal/metrics"
	"studio/internal/products"
)

// scrapeProductsHandler runs the product scraper against a storefront
// URL and maps its outcomes onto transport statuses: bad input to 400,
// robots refusal to 403, an empty result to 404, upstream non-2xx to
// 502, and timeouts to 504.
func scrapeProductsHandler(c *fiber.Ctx) error {
	var req ScrapeProductsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_JSON",
			Error:   "Bad request, malformed JSON",
		})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST",
			Error:   "Missing required field 'url'",
		})
	}

	scraper := c.Locals("scraper").(*products.Scraper)

	res, err := scraper.Scrape(c.Context(), req.URL)
	if err != nil {
		metrics.RecordScrape("unknown", "error", 0)
		status, code, msg := mapScrapeError(err)
		return c.Status(status).JSON(ErrorResponse{
			Success: false,
			Code:    code,
			Error:   msg,
		})
	}

	if len(res.Products) == 0 {
		metrics.RecordScrape(string(res.Platform), "empty", 0)
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Success: false,
			Code:    "NO_PRODUCTS_FOUND",
			Error:   "No products found on this page. Try a product listing or collection page.",
		})
	}

	metrics.RecordScrape(string(res.Platform), "ok", len(res.Products))
	return c.JSON(ScrapeProductsResponse{Success: true, Data: res})
}

// mapScrapeError translates scraper errors into an HTTP status, a
// stable error code, and a short user-facing message.
func mapScrapeError(err error) (int, string, string) {
	switch {
	case errors.Is(err, products.ErrInvalidURL):
		return fiber.StatusBadRequest, "BAD_REQUEST_INVALID_URL", "Invalid URL"
	case errors.Is(err, products.ErrFetchTimeout), errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "SCRAPE_TIMEOUT", "Request timed out"
	case errors.Is(err, products.ErrRobotsDisallowed):
		return fiber.StatusForbidden, "ROBOTS_DISALLOWED", "Fetching this page is disallowed by its robots.txt"
	}

	var statusErr *products.StatusError
	if errors.As(err, &statusErr) {
		return fiber.StatusBadGateway, "UPSTREAM_STATUS", fmt.Sprintf("Failed to fetch: %d", statusErr.Status)
	}

	return fiber.StatusInternalServerError, "SCRAPE_FAILED", "Failed to scrape website"
}
