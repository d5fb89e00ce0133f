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

// InquiryStore handles all contact-inquiry database operations.
type InquiryStore struct {
	db *sql.DB
}

// NewInquiryStore creates a new InquiryStore with the given database connection.
func NewInquiryStore(db *sql.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

const inquiryColumns = `id, name, email, project_type, message, status, admin_notes, created_at, updated_at`

func scanInquiry(scanner interface{ Scan(...any) error }) (*models.ContactInquiry, error) {
	q := &models.ContactInquiry{}
	err := scanner.Scan(
		&q.ID, &q.Name, &q.Email, &q.ProjectType, &q.Message,
		&q.Status, &q.AdminNotes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// List returns inquiries newest first, optionally filtered by status
// (empty status means all).
func (s *InquiryStore) List(status models.InquiryStatus) ([]models.ContactInquiry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = s.db.Query(`SELECT ` + inquiryColumns + ` FROM contact_inquiries ORDER BY created_at DESC`)
	} else {
		rows, err = s.db.Query(`SELECT `+inquiryColumns+` FROM contact_inquiries WHERE status = $1 ORDER BY created_at DESC`, status)
	}
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.ContactInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *q)
	}
	return inquiries, rows.Err()
}

// FindByID retrieves an inquiry by UUID. Returns nil if not found.
func (s *InquiryStore) FindByID(id uuid.UUID) (*models.ContactInquiry, error) {
	row := s.db.QueryRow(`SELECT `+inquiryColumns+` FROM contact_inquiries WHERE id = $1`, id)
	q, err := scanInquiry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return q, nil
}

// Create inserts a new inquiry from the public contact form. Status
// defaults to "new".
func (s *InquiryStore) Create(name, email string, projectType *string, message string) (*models.ContactInquiry, error) {
	row := s.db.QueryRow(`
		INSERT INTO contact_inquiries (name, email, project_type, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+inquiryColumns,
		name, email, projectType, message,
	)
	q, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return q, nil
}

// UpdateStatus moves an inquiry through the triage workflow.
func (s *InquiryStore) UpdateStatus(id uuid.UUID, status models.InquiryStatus) error {
	_, err := s.db.Exec(`
		UPDATE contact_inquiries SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	return nil
}

// UpdateNotes saves the admin's free-form notes on an inquiry.
func (s *InquiryStore) UpdateNotes(id uuid.UUID, notes string) error {
	_, err := s.db.Exec(`
		UPDATE contact_inquiries SET admin_notes = $1, updated_at = NOW() WHERE id = $2
	`, notes, id)
	if err != nil {
		return fmt.Errorf("update inquiry notes: %w", err)
	}
	return nil
}

// Delete removes an inquiry by ID.
func (s *InquiryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	return nil
}

// CountNew returns the number of untriaged inquiries (dashboard stat).
func (s *InquiryStore) CountNew() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_inquiries WHERE status = 'new'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count new inquiries: %w", err)
	}
	return n, nil
}
