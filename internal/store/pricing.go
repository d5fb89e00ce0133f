// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"framelight/internal/models"
)

// PricingStore handles all pricing-package database operations.
type PricingStore struct {
	db *sql.DB
}

// NewPricingStore creates a new PricingStore with the given database connection.
func NewPricingStore(db *sql.DB) *PricingStore {
	return &PricingStore{db: db}
}

// Features are a text[] column; joined with a pipe because feature lines
// routinely contain commas ("2 photographers, full day").
const pricingColumns = `id, name, price, array_to_string(features, '|'), is_popular, is_visible,
	is_active, display_order, created_at, updated_at`

const featureSep = "|"

func scanPricingPackage(scanner interface{ Scan(...any) error }) (*models.PricingPackage, error) {
	p := &models.PricingPackage{}
	var features string
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Price, &features, &p.IsPopular, &p.IsVisible,
		&p.IsActive, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if features != "" {
		p.Features = strings.Split(features, featureSep)
	}
	return p, nil
}

// List returns all pricing packages ordered by display order (admin panel).
func (s *PricingStore) List() ([]models.PricingPackage, error) {
	return s.list(`SELECT ` + pricingColumns + ` FROM pricing_packages ORDER BY display_order ASC, created_at ASC`)
}

// ListVisible returns the packages shown on the public pricing section:
// active and not hidden.
func (s *PricingStore) ListVisible() ([]models.PricingPackage, error) {
	return s.list(`
		SELECT ` + pricingColumns + `
		FROM pricing_packages
		WHERE is_active = TRUE AND is_visible = TRUE
		ORDER BY display_order ASC, created_at ASC`)
}

func (s *PricingStore) list(query string) ([]models.PricingPackage, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list pricing packages: %w", err)
	}
	defer rows.Close()

	var packages []models.PricingPackage
	for rows.Next() {
		p, err := scanPricingPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pricing package: %w", err)
		}
		packages = append(packages, *p)
	}
	return packages, rows.Err()
}

// FindByID retrieves a pricing package by UUID. Returns nil if not found.
func (s *PricingStore) FindByID(id uuid.UUID) (*models.PricingPackage, error) {
	row := s.db.QueryRow(`SELECT `+pricingColumns+` FROM pricing_packages WHERE id = $1`, id)
	p, err := scanPricingPackage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find pricing package: %w", err)
	}
	return p, nil
}

// Create inserts a new pricing package at the end of the display order.
func (s *PricingStore) Create(p *models.PricingPackage) (*models.PricingPackage, error) {
	row := s.db.QueryRow(`
		INSERT INTO pricing_packages (name, price, features, is_popular, is_visible, is_active, display_order)
		VALUES ($1, $2, string_to_array($3, '|'), $4, $5, $6,
		        (SELECT COALESCE(MAX(display_order), 0) + 1 FROM pricing_packages))
		RETURNING `+pricingColumns,
		p.Name, p.Price, strings.Join(p.Features, featureSep), p.IsPopular, p.IsVisible, p.IsActive,
	)
	created, err := scanPricingPackage(row)
	if err != nil {
		return nil, fmt.Errorf("create pricing package: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of a pricing package.
func (s *PricingStore) Update(p *models.PricingPackage) error {
	_, err := s.db.Exec(`
		UPDATE pricing_packages
		SET name = $1, price = $2, features = string_to_array($3, '|'),
		    is_popular = $4, is_visible = $5, is_active = $6,
		    display_order = $7, updated_at = NOW()
		WHERE id = $8
	`, p.Name, p.Price, strings.Join(p.Features, featureSep), p.IsPopular,
		p.IsVisible, p.IsActive, p.DisplayOrder, p.ID)
	if err != nil {
		return fmt.Errorf("update pricing package: %w", err)
	}
	return nil
}

// Delete removes a pricing package by ID.
func (s *PricingStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pricing_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pricing package: %w", err)
	}
	return nil
}
