package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Platform identifies the storefront software a page was served by.
type Platform string

const (
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
	PlatformTiendanube  Platform = "tiendanube"
	PlatformGeneric     Platform = "generic"
)

// ScrapedProduct is one product candidate discovered on a storefront page.
// ImageURL is always an absolute http(s) URL; Price keeps the source's
// display formatting and is never normalized to a number.
type ScrapedProduct struct {
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	Price      string `json:"price,omitempty"`
	ProductURL string `json:"productUrl,omitempty"`
}

// ScrapeResult is the output of one product scrape: a deduplicated,
// capped product list plus best-effort store metadata.
type ScrapeResult struct {
	Products  []ScrapedProduct `json:"products"`
	StoreName string           `json:"storeName,omitempty"`
	Platform  Platform         `json:"platform,omitempty"`
}

// BrandColors holds the three dominant colors picked from a page.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// BrandProfile is the output of a brand scrape.
type BrandProfile struct {
	BrandName string      `json:"brandName"`
	Tagline   string      `json:"tagline"`
	Colors    BrandColors `json:"colors"`
	LogoURL   string      `json:"logoUrl,omitempty"`
	Content   string      `json:"content,omitempty"`
}

// Session groups generations produced for one storefront/brand.
type Session struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	BrandConfig json.RawMessage `json:"brandConfig,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Generation is one stored image or video produced by the external
// generation pipeline and uploaded to asset storage.
type Generation struct {
	ID                 uuid.UUID       `json:"id"`
	SessionID          uuid.UUID       `json:"sessionId"`
	Type               string          `json:"type"`
	CloudinaryURL      string          `json:"cloudinaryUrl"`
	CloudinaryPublicID string          `json:"cloudinaryPublicId"`
	OriginalURL        string          `json:"originalUrl"`
	Width              *int32          `json:"width,omitempty"`
	Height             *int32          `json:"height,omitempty"`
	Model              string          `json:"model"`
	Prompt             string          `json:"prompt,omitempty"`
	Options            json.RawMessage `json:"options,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// SessionWithGenerations is a session plus its generation history,
// newest first.
type SessionWithGenerations struct {
	Session
	Generations []Generation `json:"generations"`
}
