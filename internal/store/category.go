// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"framelight/internal/models"
)

// CategoryStore handles all portfolio-category database operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, display_order, is_active, is_password_protected, password_hash, created_at, updated_at`

func scanCategory(scanner interface{ Scan(...any) error }) (*models.PortfolioCategory, error) {
	c := &models.PortfolioCategory{}
	err := scanner.Scan(
		&c.ID, &c.Name, &c.DisplayOrder, &c.IsActive,
		&c.IsPasswordProtected, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all categories ordered by display order, with item counts
// for the admin panel.
func (s *CategoryStore) List() ([]models.PortfolioCategory, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.display_order, c.is_active, c.is_password_protected,
		       c.password_hash, c.created_at, c.updated_at,
		       COUNT(i.id) AS item_count
		FROM portfolio_categories c
		LEFT JOIN portfolio_items i ON i.category = c.name
		GROUP BY c.id
		ORDER BY c.display_order ASC, c.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.PortfolioCategory
	for rows.Next() {
		c := models.PortfolioCategory{}
		err := rows.Scan(
			&c.ID, &c.Name, &c.DisplayOrder, &c.IsActive, &c.IsPasswordProtected,
			&c.PasswordHash, &c.CreatedAt, &c.UpdatedAt, &c.ItemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListActive returns active categories ordered by display order. This is
// the set shown in the public filter bar (protected ones included; the
// gate applies when a visitor selects them).
func (s *CategoryStore) ListActive() ([]models.PortfolioCategory, error) {
	rows, err := s.db.Query(`
		SELECT ` + categoryColumns + `
		FROM portfolio_categories
		WHERE is_active = TRUE
		ORDER BY display_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	defer rows.Close()

	var categories []models.PortfolioCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// FindByID retrieves a category by UUID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.PortfolioCategory, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM portfolio_categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindByName retrieves a category by its exact name. Returns nil if not found.
func (s *CategoryStore) FindByName(name string) (*models.PortfolioCategory, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM portfolio_categories WHERE name = $1`, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// Create inserts a new category at the end of the display order.
func (s *CategoryStore) Create(name string) (*models.PortfolioCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO portfolio_categories (name, display_order)
		VALUES ($1, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM portfolio_categories))
		RETURNING `+categoryColumns,
		name,
	)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Rename changes a category's name and cascades the rename to every
// portfolio item joined by the old name. Runs in a transaction so the
// name join never dangles.
func (s *CategoryStore) Rename(id uuid.UUID, newName string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("rename category: begin: %w", err)
	}
	defer tx.Rollback()

	var oldName string
	err = tx.QueryRow(`SELECT name FROM portfolio_categories WHERE id = $1 FOR UPDATE`, id).Scan(&oldName)
	if err == sql.ErrNoRows {
		return fmt.Errorf("rename category: not found")
	}
	if err != nil {
		return fmt.Errorf("rename category: lookup: %w", err)
	}

	if oldName == newName {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
		UPDATE portfolio_categories SET name = $1, updated_at = NOW() WHERE id = $2
	`, newName, id); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE portfolio_items SET category = $1, updated_at = NOW() WHERE category = $2
	`, newName, oldName); err != nil {
		return fmt.Errorf("rename category: cascade items: %w", err)
	}

	return tx.Commit()
}

// SetActive toggles a category's visibility in the public filter bar.
func (s *CategoryStore) SetActive(id uuid.UUID, active bool) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_categories SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return fmt.Errorf("set category active: %w", err)
	}
	return nil
}

// SetProtection enables or disables password protection on a category.
// verifier is the encoded password and must be non-nil when protecting;
// it is cleared when protection is removed.
func (s *CategoryStore) SetProtection(id uuid.UUID, protected bool, verifier *string) error {
	if !protected {
		verifier = nil
	}
	_, err := s.db.Exec(`
		UPDATE portfolio_categories
		SET is_password_protected = $1, password_hash = $2, updated_at = NOW()
		WHERE id = $3
	`, protected, verifier, id)
	if err != nil {
		return fmt.Errorf("set category protection: %w", err)
	}
	return nil
}

// Reorder updates display_order for all categories based on the given
// ordered list of IDs. Runs in a transaction for atomicity.
func (s *CategoryStore) Reorder(orderedIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder categories: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE portfolio_categories SET display_order = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		return fmt.Errorf("reorder categories: prepare: %w", err)
	}
	defer stmt.Close()

	for i, id := range orderedIDs {
		if _, err := stmt.Exec(i+1, id); err != nil {
			return fmt.Errorf("reorder categories: update %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Delete removes a category. Items joined by name are left untouched and
// simply fall out of the public filter bar.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM portfolio_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
