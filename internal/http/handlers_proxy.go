package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"studio/internal/config"
	"studio/internal/products"
)

const (
	defaultProxyTimeoutMs = 15000
	defaultProxyMaxBytes  = 10 << 20
)

var proxyClient = &http.Client{}

// proxyImageHandler fetches a remote product image and relays it, so
// the browser can render scraped images without cross-origin issues.
// Only http(s) URLs with an image content type are served, bodies are
// capped, and upstream failures map to 502/504.
func proxyImageHandler(c *fiber.Ctx) error {
	raw := c.Query("url")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST",
			Error:   "url parameter is required",
		})
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_URL",
			Error:   "Only HTTP(S) URLs are supported",
		})
	}

	cfg := c.Locals("config").(*config.Config)
	timeoutMs := cfg.Proxy.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultProxyTimeoutMs
	}
	maxBytes := cfg.Proxy.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultProxyMaxBytes
	}

	ctx, cancel := context.WithTimeout(c.Context(), time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_URL",
			Error:   "Invalid URL",
		})
	}
	req.Header.Set("User-Agent", products.DefaultUserAgent)

	resp, err := proxyClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(ErrorResponse{
				Success: false,
				Code:    "PROXY_TIMEOUT",
				Error:   "Request timed out",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Success: false,
			Code:    "PROXY_FAILED",
			Error:   "Failed to fetch image",
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Success: false,
			Code:    "UPSTREAM_STATUS",
			Error:   "Failed to fetch image",
		})
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "NOT_AN_IMAGE",
			Error:   "URL does not point to an image",
		})
	}

	if resp.ContentLength > maxBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Success: false,
			Code:    "IMAGE_TOO_LARGE",
			Error:   "Image too large",
		})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Success: false,
			Code:    "PROXY_FAILED",
			Error:   "Failed to fetch image",
		})
	}
	if int64(len(body)) > maxBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Success: false,
			Code:    "IMAGE_TOO_LARGE",
			Error:   "Image too large",
		})
	}

	c.Set("Content-Type", contentType)
	c.Set("Cache-Control", "public, max-age=86400")
	return c.Send(body)
}
