// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateAdminUserParams holds input for CreateAdminUser. PasswordHash must
// already be hashed; the store never handles plaintext credentials.
type CreateAdminUserParams struct {
	Username     string
	PasswordHash string
	Role         string
}

// CreateAdminUser creates a back-office account. Usernames are unique; a
// duplicate returns ErrConflict.
func (s *Store) CreateAdminUser(params CreateAdminUserParams) (model.AdminUser, error) {
	return s.adminUsers.insert(
		func(u model.AdminUser) bool { return u.Username == params.Username },
		func(id int64) model.AdminUser {
			now := s.now()
			return model.AdminUser{
				ID:           id,
				Username:     params.Username,
				PasswordHash: params.PasswordHash,
				Role:         params.Role,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		},
	)
}

// ListAdminUsers returns every back-office account.
func (s *Store) ListAdminUsers() []model.AdminUser {
	return s.adminUsers.list()
}

// GetAdminUser returns the account with the given ID.
func (s *Store) GetAdminUser(id int64) (model.AdminUser, error) {
	return s.adminUsers.get(func(u model.AdminUser) bool { return u.ID == id })
}

// GetAdminUserByUsername returns the account with the given username.
func (s *Store) GetAdminUserByUsername(username string) (model.AdminUser, error) {
	return s.adminUsers.get(func(u model.AdminUser) bool { return u.Username == username })
}

// UpdateAdminUserParams holds the partial update for UpdateAdminUser.
type UpdateAdminUserParams struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// UpdateAdminUser shallow-merges the partial over the stored account.
// Changing the username to one held by another account returns ErrConflict.
func (s *Store) UpdateAdminUser(id int64, params UpdateAdminUserParams) (model.AdminUser, error) {
	var conflicts func(model.AdminUser) bool
	if params.Username != nil {
		conflicts = func(u model.AdminUser) bool { return u.ID != id && u.Username == *params.Username }
	}

	return s.adminUsers.modify(
		func(u model.AdminUser) bool { return u.ID == id },
		conflicts,
		func(u *model.AdminUser) {
			if params.Username != nil {
				u.Username = *params.Username
			}
			if params.PasswordHash != nil {
				u.PasswordHash = *params.PasswordHash
			}
			if params.Role != nil {
				u.Role = *params.Role
			}
			u.UpdatedAt = s.now()
		},
	)
}

// DeleteAdminUser permanently removes a back-office account.
func (s *Store) DeleteAdminUser(id int64) error {
	return s.adminUsers.remove(func(u model.AdminUser) bool { return u.ID == id })
}
