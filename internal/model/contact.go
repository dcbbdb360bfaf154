// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including CMS content, the server-equipment catalog, and user records.
package model

import "time"

// Contact represents a general sales inquiry submitted through the public
// contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Country   string    `json:"country,omitempty"` // ISO code from GeoIP, best effort
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// DomainContact represents an inquiry submitted through the domain/hosting
// services form. It is kept separate from Contact because the two funnels are
// triaged by different teams.
type DomainContact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Domain    string    `json:"domain"`
	Message   string    `json:"message"`
	Country   string    `json:"country,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// EmailPopupLead represents an email address captured by the newsletter popup.
type EmailPopupLead struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Source      string    `json:"source"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
}
