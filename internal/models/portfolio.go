// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AspectRatio controls how a portfolio item is laid out in the feed grid.
type AspectRatio string

const (
	AspectSquare AspectRatio = "square"
	AspectWide   AspectRatio = "wide"
	AspectTall   AspectRatio = "tall"
)

// PortfolioItem represents a single entry in the portfolio feed.
// The category field joins against PortfolioCategory.Name by value,
// not by foreign key — renames must cascade (see CategoryStore.Rename).
type PortfolioItem struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Caption      string      `json:"caption"`
	Category     string      `json:"category"`
	ImageURL     string      `json:"image_url"`
	VideoURL     *string     `json:"video_url,omitempty"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	WebsiteURL   *string     `json:"website_url,omitempty"`
	AspectRatio  AspectRatio `json:"aspect_ratio"`
	Tags         []string    `json:"tags"`
	IsFeatured   bool        `json:"is_featured"`
	DisplayOrder int         `json:"display_order"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
