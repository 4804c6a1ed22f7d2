package http

import (
	"encoding/json"

	"studio/internal/model"
)

// ScrapeProductsRequest is the payload for POST /v1/scrape-products.
type ScrapeProductsRequest struct {
	URL string `json:"url"`
}

// ScrapeProductsResponse wraps a product scrape result.
type ScrapeProductsResponse struct {
	Success bool                `json:"success"`
	Data    *model.ScrapeResult `json:"data,omitempty"`
}

// BrandScrapeRequest is the payload for POST /v1/scrape.
type BrandScrapeRequest struct {
	URL string `json:"url"`
}

type BrandScrapeResponse struct {
	Success bool                `json:"success"`
	Data    *model.BrandProfile `json:"data,omitempty"`
}

// DetectURLRequest is the payload for POST /v1/detect-url.
type DetectURLRequest struct {
	Text string `json:"text"`
}

type DetectURLResponse struct {
	Success bool     `json:"success"`
	URLs    []string `json:"urls"`
}

// CreateSessionRequest creates a session; both fields are optional.
type CreateSessionRequest struct {
	Name        string          `json:"name,omitempty"`
	BrandConfig json.RawMessage `json:"brandConfig,omitempty"`
}

// AddGenerationRequest records one generated asset under a session.
type AddGenerationRequest struct {
	Type               string          `json:"type,omitempty"`
	CloudinaryURL      string          `json:"cloudinaryUrl"`
	CloudinaryPublicID string          `json:"cloudinaryPublicId"`
	OriginalURL        string          `json:"originalUrl"`
	Width              *int32          `json:"width,omitempty"`
	Height             *int32          `json:"height,omitempty"`
	Model              string          `json:"model"`
	Prompt             string          `json:"prompt,omitempty"`
	Options            json.RawMessage `json:"options,omitempty"`
}

type SessionResponse struct {
	Success bool                          `json:"success"`
	Session *model.SessionWithGenerations `json:"session,omitempty"`
}

type SessionsResponse struct {
	Success  bool                           `json:"success"`
	Sessions []model.SessionWithGenerations `json:"sessions"`
}

type GenerationResponse struct {
	Success    bool              `json:"success"`
	Generation *model.Generation `json:"generation,omitempty"`
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error"`
}
