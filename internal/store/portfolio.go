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

// PortfolioStore handles all portfolio-item database operations, including
// the paged feed query used by the public infinite-scroll feed.
type PortfolioStore struct {
	db *sql.DB
}

// NewPortfolioStore creates a new PortfolioStore with the given database connection.
func NewPortfolioStore(db *sql.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// Tags are stored as a PostgreSQL text[] but travel through the store as a
// comma-joined string so the stdlib driver interface stays array-free.
const portfolioColumns = `id, title, caption, category, image_url, video_url, thumbnail_url,
	website_url, aspect_ratio, array_to_string(tags, ','), is_featured, display_order,
	created_at, updated_at`

func scanPortfolioItem(scanner interface{ Scan(...any) error }) (*models.PortfolioItem, error) {
	i := &models.PortfolioItem{}
	var tags string
	err := scanner.Scan(
		&i.ID, &i.Title, &i.Caption, &i.Category, &i.ImageURL, &i.VideoURL,
		&i.ThumbnailURL, &i.WebsiteURL, &i.AspectRatio, &tags, &i.IsFeatured,
		&i.DisplayOrder, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tags != "" {
		i.Tags = strings.Split(tags, ",")
	}
	return i, nil
}

func (s *PortfolioStore) queryItems(query string, args ...any) ([]models.PortfolioItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		i, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

// feedOrder is the public feed ordering: featured first, then newest, with
// the UUID as a stable tie-break so pagination never skips or repeats rows.
const feedOrder = `ORDER BY is_featured DESC, created_at DESC, id DESC`

// FeedPage returns one page of items from a single named category, in feed
// order. limit+1 probing is the caller's concern; this returns exactly what
// the limit asks for.
func (s *PortfolioStore) FeedPage(category string, limit, offset int) ([]models.PortfolioItem, error) {
	items, err := s.queryItems(`
		SELECT `+portfolioColumns+`
		FROM portfolio_items
		WHERE category = $1
		`+feedOrder+`
		LIMIT $2 OFFSET $3
	`, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("feed page: %w", err)
	}
	return items, nil
}

// FeedPageIn returns one page of items drawn from any of the given
// categories, in feed order. An empty category set yields an empty page
// without touching the database.
func (s *PortfolioStore) FeedPageIn(categories []string, limit, offset int) ([]models.PortfolioItem, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(categories))
	args := make([]any, 0, len(categories)+2)
	for i, c := range categories {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, c)
	}
	args = append(args, limit, offset)

	items, err := s.queryItems(fmt.Sprintf(`
		SELECT %s
		FROM portfolio_items
		WHERE category IN (%s)
		%s
		LIMIT $%d OFFSET $%d
	`, portfolioColumns, strings.Join(placeholders, ", "), feedOrder, len(categories)+1, len(categories)+2), args...)
	if err != nil {
		return nil, fmt.Errorf("feed page in: %w", err)
	}
	return items, nil
}

// List returns all portfolio items for the admin panel, in feed order.
func (s *PortfolioStore) List() ([]models.PortfolioItem, error) {
	items, err := s.queryItems(`
		SELECT ` + portfolioColumns + `
		FROM portfolio_items
		` + feedOrder)
	if err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	return items, nil
}

// FindByID retrieves a portfolio item by UUID. Returns nil if not found.
func (s *PortfolioStore) FindByID(id uuid.UUID) (*models.PortfolioItem, error) {
	row := s.db.QueryRow(`SELECT `+portfolioColumns+` FROM portfolio_items WHERE id = $1`, id)
	i, err := scanPortfolioItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}
	return i, nil
}

// Create inserts a new portfolio item.
func (s *PortfolioStore) Create(item *models.PortfolioItem) (*models.PortfolioItem, error) {
	row := s.db.QueryRow(`
		INSERT INTO portfolio_items
			(title, caption, category, image_url, video_url, thumbnail_url,
			 website_url, aspect_ratio, tags, is_featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, string_to_array($9, ','), $10, $11)
		RETURNING `+portfolioColumns,
		item.Title, item.Caption, item.Category, item.ImageURL, item.VideoURL,
		item.ThumbnailURL, item.WebsiteURL, item.AspectRatio,
		strings.Join(item.Tags, ","), item.IsFeatured, item.DisplayOrder,
	)
	created, err := scanPortfolioItem(row)
	if err != nil {
		return nil, fmt.Errorf("create portfolio item: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of a portfolio item.
func (s *PortfolioStore) Update(item *models.PortfolioItem) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_items
		SET title = $1, caption = $2, category = $3, image_url = $4,
		    video_url = $5, thumbnail_url = $6, website_url = $7,
		    aspect_ratio = $8, tags = string_to_array($9, ','),
		    is_featured = $10, display_order = $11, updated_at = NOW()
		WHERE id = $12
	`, item.Title, item.Caption, item.Category, item.ImageURL, item.VideoURL,
		item.ThumbnailURL, item.WebsiteURL, item.AspectRatio,
		strings.Join(item.Tags, ","), item.IsFeatured, item.DisplayOrder, item.ID)
	if err != nil {
		return fmt.Errorf("update portfolio item: %w", err)
	}
	return nil
}

// SetFeatured toggles the featured flag, which floats the item to the top
// of the public feed.
func (s *PortfolioStore) SetFeatured(id uuid.UUID, featured bool) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_items SET is_featured = $1, updated_at = NOW() WHERE id = $2
	`, featured, id)
	if err != nil {
		return fmt.Errorf("set portfolio item featured: %w", err)
	}
	return nil
}

// Delete removes a portfolio item by ID.
func (s *PortfolioStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	return nil
}

// Count returns the total number of portfolio items (dashboard stat).
func (s *PortfolioStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM portfolio_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count portfolio items: %w", err)
	}
	return n, nil
}
