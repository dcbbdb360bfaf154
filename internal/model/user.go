// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// User roles, in decreasing order of privilege.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleWriter = "writer"
	RoleViewer = "viewer"
)

// ValidRole returns true if role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleWriter, RoleViewer:
		return true
	}
	return false
}

// User represents a site user provisioned through the external identity
// provider. The ID is issued by the provider, not by the store; the same
// person may authenticate through sessions that issue different IDs but
// share an email, which the store reconciles on upsert.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	Role            string    `json:"role"`
	IsAdmin         bool      `json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AdminUser represents a CMS back-office account authenticated with a
// username and password. Passwords are hashed at the handler boundary;
// the store never sees plaintext.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdminRole returns true if the account has the admin role.
func (u *AdminUser) IsAdminRole() bool {
	return u.Role == RoleAdmin
}
