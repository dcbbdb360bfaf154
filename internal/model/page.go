// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// PageContent represents an editable content block on a public page,
// addressed by page name and section ("home"/"hero", "pricing"/"faq").
// The (page, section) pair is a filter key, not a uniqueness constraint:
// a section may hold several ordered blocks.
type PageContent struct {
	ID        int64     `json:"id"`
	PageName  string    `json:"page_name"`
	Section   string    `json:"section"`
	ElementID string    `json:"element_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSetting represents a keyed site-wide setting (phone number, social
// links, analytics IDs). Keys are unique; values are free-form strings.
type SiteSetting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
