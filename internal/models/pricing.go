// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingPackage represents a photography package on the public pricing
// section. Price is free-form text ("from $450", "custom quote") rather
// than a numeric amount. IsVisible hides a package from the public page
// without deactivating it; IsActive retires it entirely.
type PricingPackage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        string    `json:"price"`
	Features     []string  `json:"features"`
	IsPopular    bool      `json:"is_popular"`
	IsVisible    bool      `json:"is_visible"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
