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

// MediaStore handles media library metadata. Files themselves live in
// S3-compatible object storage (see internal/storage).
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, filename, original_name, content_type, size_bytes, bucket, s3_key, thumb_s3_key, uploader_id, created_at`

func scanMedia(scanner interface{ Scan(...any) error }) (*models.Media, error) {
	m := &models.Media{}
	err := scanner.Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.ContentType, &m.SizeBytes,
		&m.Bucket, &m.S3Key, &m.ThumbS3Key, &m.UploaderID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns media records newest first, paginated.
func (s *MediaStore) List(limit, offset int) ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT `+mediaColumns+`
		FROM media
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media record by UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	row := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id)
	m, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	return m, nil
}

// Create inserts a new media record after a successful upload.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	row := s.db.QueryRow(`
		INSERT INTO media (filename, original_name, content_type, size_bytes, bucket, s3_key, thumb_s3_key, uploader_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.Filename, m.OriginalName, m.ContentType, m.SizeBytes,
		m.Bucket, m.S3Key, m.ThumbS3Key, m.UploaderID,
	)
	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// Delete removes a media record by ID. The caller deletes the object from
// the bucket first.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// Count returns the total number of media records (pagination + dashboard).
func (s *MediaStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return n, nil
}
