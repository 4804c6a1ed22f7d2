package http

import (
	"github.com/gofiber/fiber/v2"

	"studio/internal/urlutil"
)

// detectURLHandler pulls http(s) URLs out of free-form text, so chat
// clients can spot pasted storefront links before starting a scrape.
func detectURLHandler(c *fiber.Ctx) error {
	var req DetectURLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_JSON",
			Error:   "Bad request, malformed JSON",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST",
			Error:   "Missing required field 'text'",
		})
	}

	urls := urlutil.ExtractURLs(req.Text)
	if urls == nil {
		urls = []string{}
	}
	return c.JSON(DetectURLResponse{Success: true, URLs: urls})
}
