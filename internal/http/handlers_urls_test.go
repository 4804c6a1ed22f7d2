package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDetectURLHandler(t *testing.T) {
	app := fiber.New()
	app.Post("/v1/detect-url", detectURLHandler)

	t.Run("finds urls in order", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/v1/detect-url",
			strings.NewReader(`{"text":"try https://shop.example.com/collections/all or http://other.example.com today"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var out DetectURLResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		want := []string{"https://shop.example.com/collections/all", "http://other.example.com"}
		if len(out.URLs) != len(want) {
			t.Fatalf("urls = %v, want %v", out.URLs, want)
		}
		for i := range want {
			if out.URLs[i] != want[i] {
				t.Fatalf("urls[%d] = %q, want %q", i, out.URLs[i], want[i])
			}
		}
	})

	t.Run("no urls yields empty list", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/v1/detect-url",
			strings.NewReader(`{"text":"nothing to see here"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		var out DetectURLResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !out.Success || out.URLs == nil || len(out.URLs) != 0 {
			t.Fatalf("expected empty url list, got %+v", out)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/v1/detect-url", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
	})
}
