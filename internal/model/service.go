// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ServicePricing holds the three pricing tiers displayed on the pricing page.
// Values are display strings ("$499/mo", "Contact us"), not amounts.
type ServicePricing struct {
	Basic      string `json:"basic"`
	Pro        string `json:"pro"`
	Enterprise string `json:"enterprise"`
}

// Service represents a managed-infrastructure service offering.
type Service struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Features    []string       `json:"features"`
	Pricing     ServicePricing `json:"pricing"`
	IsActive    bool           `json:"is_active"`
	Order       int            `json:"order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Testimonial represents a client testimonial shown on the public site.
type Testimonial struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientTitle string    `json:"client_title"`
	Company     string    `json:"company"`
	Rating      int       `json:"rating"` // 1-5
	Content     string    `json:"content"`
	IsActive    bool      `json:"is_active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
