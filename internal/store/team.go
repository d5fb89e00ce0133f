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

// TeamStore handles all team-member database operations.
type TeamStore struct {
	db *sql.DB
}

// NewTeamStore creates a new TeamStore with the given database connection.
func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

const teamColumns = `id, name, role, experience, bio, image_url, is_active, display_order, created_at, updated_at`

func scanTeamMember(scanner interface{ Scan(...any) error }) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Role, &m.Experience, &m.Bio, &m.ImageURL,
		&m.IsActive, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all team members ordered by display order (admin panel).
func (s *TeamStore) List() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamColumns + ` FROM team_members ORDER BY display_order ASC, created_at ASC`)
}

// ListActive returns active team members for the public team section.
func (s *TeamStore) ListActive() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamColumns + ` FROM team_members WHERE is_active = TRUE ORDER BY display_order ASC, created_at ASC`)
}

func (s *TeamStore) list(query string) ([]models.TeamMember, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// FindByID retrieves a team member by UUID. Returns nil if not found.
func (s *TeamStore) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	row := s.db.QueryRow(`SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)
	m, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team member: %w", err)
	}
	return m, nil
}

// Create inserts a new team member at the end of the display order.
func (s *TeamStore) Create(m *models.TeamMember) (*models.TeamMember, error) {
	row := s.db.QueryRow(`
		INSERT INTO team_members (name, role, experience, bio, image_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6,
		        (SELECT COALESCE(MAX(display_order), 0) + 1 FROM team_members))
		RETURNING `+teamColumns,
		m.Name, m.Role, m.Experience, m.Bio, m.ImageURL, m.IsActive,
	)
	created, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of a team member.
func (s *TeamStore) Update(m *models.TeamMember) error {
	_, err := s.db.Exec(`
		UPDATE team_members
		SET name = $1, role = $2, experience = $3, bio = $4, image_url = $5,
		    is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $8
	`, m.Name, m.Role, m.Experience, m.Bio, m.ImageURL, m.IsActive, m.DisplayOrder, m.ID)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes a team member by ID.
func (s *TeamStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
