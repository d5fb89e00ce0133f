// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus tracks how far along a contact inquiry is.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

// ContactInquiry represents a message submitted through the public
// contact form, managed from the admin panel.
type ContactInquiry struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	ProjectType *string       `json:"project_type,omitempty"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	AdminNotes  *string       `json:"admin_notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
