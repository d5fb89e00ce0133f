package database

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// super admin, the standard portfolio categories, a starter site_config
// document, and a couple of pricing packages. It is a no-op when data
// already exists.
func Seed(db *sql.DB) error {
	// Check if any admin users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return fmt.Errorf("seed check admin users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default super admin. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO admin_users (email, password_hash, full_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@framelight.local", string(hash), "Admin", "super_admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Standard categories. "Medical" ships protected to exercise the gate
	// in development; the verifier is the reversible encoding of "abc123".
	categories := []struct {
		name      string
		order     int
		protected bool
		password  string
	}{
		{"Real Estate", 1, false, ""},
		{"Medical", 2, true, "abc123"},
		{"Clothing", 3, false, ""},
		{"Food", 4, false, ""},
		{"Construction", 5, false, ""},
	}
	for _, c := range categories {
		var verifier *string
		if c.protected {
			v := base64.StdEncoding.EncodeToString([]byte(c.password))
			verifier = &v
		}
		_, err = db.Exec(`
			INSERT INTO portfolio_categories (name, display_order, is_password_protected, password_hash)
			VALUES ($1, $2, $3, $4)
		`, c.name, c.order, c.protected, verifier)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.name, err)
		}
	}

	// Starter site configuration document.
	_, err = db.Exec(`
		INSERT INTO website_settings (key, value)
		VALUES ('site_config', $1)
	`, `{"name":"Framelight Studio","tagline":"Professional photography for every industry","contact":{"phone":"","email":"hello@framelight.local","address":""}}`)
	if err != nil {
		return fmt.Errorf("seed insert site config: %w", err)
	}

	// Two starter pricing packages.
	_, err = db.Exec(`
		INSERT INTO pricing_packages (name, price, features, is_popular, display_order)
		VALUES
			('Essential', 'from $450', ARRAY['Half-day shoot', '25 edited photos', 'Online gallery'], FALSE, 1),
			('Signature', 'from $950', ARRAY['Full-day shoot', '75 edited photos', 'Online gallery', 'Drone footage'], TRUE, 2)
	`)
	if err != nil {
		return fmt.Errorf("seed insert pricing: %w", err)
	}

	slog.Info("database seeded with default data",
		"email", "admin@framelight.local",
		"password", "admin",
	)

	return nil
}
