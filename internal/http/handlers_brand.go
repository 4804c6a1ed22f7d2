package http

import (
	"github.com/gofiber/fiber/v2"

	"studio/internal/brand"
)

// scrapeBrandHandler extracts a brand profile (name, tagline, colors,
// logo, page content as Markdown) from a storefront landing page.
func scrapeBrandHandler(c *fiber.Ctx) error {
	var req BrandScrapeRequest
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

	scraper := c.Locals("brand").(*brand.Scraper)

	profile, err := scraper.Scrape(c.Context(), req.URL)
	if err != nil {
		status, code, msg := mapScrapeError(err)
		return c.Status(status).JSON(ErrorResponse{
			Success: false,
			Code:    code,
			Error:   msg,
		})
	}

	return c.JSON(BrandScrapeResponse{Success: true, Data: profile})
}
