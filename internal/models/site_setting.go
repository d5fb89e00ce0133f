// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// WebsiteSetting represents a single configuration document keyed by name.
// Value holds raw JSON; known documents have typed accessors below.
type WebsiteSetting struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteConfigKey is the settings key for the main site configuration document.
const SiteConfigKey = "site_config"

// SiteConfig is the site_config settings document: branding and contact
// details shown in the public navigation, footer, and contact section.
type SiteConfig struct {
	Name    string      `json:"name"`
	Tagline string      `json:"tagline"`
	Contact SiteContact `json:"contact"`
}

// SiteContact holds the business contact details inside SiteConfig.
type SiteContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
