// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"framelight/internal/models"
)

// SettingStore handles website-settings documents (JSONB keyed by name).
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore creates a new SettingStore with the given database connection.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get retrieves a raw settings document by key. Returns nil if not found.
func (s *SettingStore) Get(key string) (*models.WebsiteSetting, error) {
	setting := &models.WebsiteSetting{}
	err := s.db.QueryRow(`
		SELECT key, value, updated_at FROM website_settings WHERE key = $1
	`, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get setting %q: %w", key, err)
	}
	return setting, nil
}

// Set upserts a raw settings document.
func (s *SettingStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO website_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// SiteConfig retrieves the main site configuration document. Returns a
// zero-value config when the document does not exist yet.
func (s *SettingStore) SiteConfig() (*models.SiteConfig, error) {
	setting, err := s.Get(models.SiteConfigKey)
	if err != nil {
		return nil, err
	}
	cfg := &models.SiteConfig{}
	if setting == nil {
		return cfg, nil
	}
	if err := json.Unmarshal(setting.Value, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal site config: %w", err)
	}
	return cfg, nil
}

// SaveSiteConfig upserts the main site configuration document.
func (s *SettingStore) SaveSiteConfig(cfg *models.SiteConfig) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal site config: %w", err)
	}
	return s.Set(models.SiteConfigKey, value)
}
