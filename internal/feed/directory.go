// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"encoding/base64"
	"fmt"
)

// FilterOption is one entry in the public category filter bar.
type FilterOption struct {
	Name        string
	IsProtected bool
}

// Directory answers category questions for the public feed: which filter
// options exist, which are protected, and what verifier protects them.
type Directory struct {
	categories CategorySource
}

// NewDirectory creates a directory over the given category source.
func NewDirectory(categories CategorySource) *Directory {
	return &Directory{categories: categories}
}

// Options returns the filter bar entries: the synthetic AllCategory first,
// then every active category in display order. Inactive categories never
// appear regardless of protection.
func (d *Directory) Options() ([]FilterOption, error) {
	active, err := d.categories.ListActive()
	if err != nil {
		return nil, fmt.Errorf("filter options: %w", err)
	}

	options := make([]FilterOption, 0, len(active)+1)
	options = append(options, FilterOption{Name: AllCategory})
	for _, c := range active {
		options = append(options, FilterOption{Name: c.Name, IsProtected: c.IsPasswordProtected})
	}
	return options, nil
}

// IsSelectable reports whether a name is a valid feed selection right now:
// AllCategory or an active category. Unknown and inactive names are not
// selectable.
func (d *Directory) IsSelectable(name string) (bool, error) {
	if name == AllCategory {
		return true, nil
	}
	c, err := d.categories.FindByName(name)
	if err != nil {
		return false, fmt.Errorf("selectable %q: %w", name, err)
	}
	return c != nil && c.IsActive, nil
}

// IsProtected reports whether a category requires a password before it can
// become the active feed selection. AllCategory is never protected.
func (d *Directory) IsProtected(name string) (bool, error) {
	if name == AllCategory {
		return false, nil
	}
	c, err := d.categories.FindByName(name)
	if err != nil {
		return false, fmt.Errorf("protection of %q: %w", name, err)
	}
	if c == nil {
		return false, nil
	}
	return c.IsPasswordProtected, nil
}

// Verifier returns the stored password verifier for a protected category,
// or "" when the category is not protected or does not exist.
func (d *Directory) Verifier(name string) (string, error) {
	c, err := d.categories.FindByName(name)
	if err != nil {
		return "", fmt.Errorf("verifier of %q: %w", name, err)
	}
	if c == nil || !c.IsPasswordProtected || c.PasswordHash == nil {
		return "", nil
	}
	return *c.PasswordHash, nil
}

// EncodeVerifier derives the stored verifier from a plaintext password.
// The encoding is reversible base64, kept for compatibility with existing
// category rows. It hides content from casual visitors; it is not a
// security boundary, and the verifier is only ever compared server-side.
func EncodeVerifier(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}
