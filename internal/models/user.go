// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an admin user's permission level.
type Role string

const (
	// RoleSuperAdmin can manage everything, including other admin users
	// and site-wide settings.
	RoleSuperAdmin Role = "super_admin"

	// RolePortfolioAdmin can manage portfolio items and categories only.
	RolePortfolioAdmin Role = "portfolio_admin"
)

// AdminUser represents a panel user with authentication and 2FA fields.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	TOTPSecret   *string   `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsSuperAdmin returns true if the user has the super_admin role.
func (u *AdminUser) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// Needs2FASetup returns true if the user has not completed 2FA enrollment.
// All admin users must set up 2FA on their first login.
func (u *AdminUser) Needs2FASetup() bool {
	return !u.TOTPEnabled
}
