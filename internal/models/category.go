// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioCategory represents a named portfolio category. Categories are
// ordered by DisplayOrder in the public filter bar; inactive categories
// never appear there. Protected categories require a password before the
// feed will switch to them.
//
// PasswordHash is a reversible base64 encoding of the plaintext, preserved
// from the original site. It is not a security boundary — it hides content
// from casual visitors only and is compared server-side exclusively.
type PortfolioCategory struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	DisplayOrder        int       `json:"display_order"`
	IsActive            bool      `json:"is_active"`
	IsPasswordProtected bool      `json:"is_password_protected"`
	PasswordHash        *string   `json:"-"` // Never serialize the verifier
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// ItemCount is populated by list queries for the admin panel.
	ItemCount int `json:"item_count"`
}
