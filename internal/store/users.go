// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// UpsertUserParams holds input for UpsertUser. ID is the identity provider's
// subject and is required. Nil optional fields leave existing values
// untouched on update.
type UpsertUserParams struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// UpsertUser reconciles an identity-provider payload with the user
// collection: match by ID first, then by email, so the same person signing in
// through sessions that issue different IDs but share an email ends up with
// one record. The very first user ever created is promoted to admin; every
// later new user starts as viewer. On update, fields merge last-non-nil-wins.
func (s *Store) UpsertUser(params UpsertUserParams) model.User {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	idx := -1
	for i, u := range s.users.items {
		if u.ID == params.ID {
			idx = i
			break
		}
	}
	if idx == -1 && params.Email != nil && *params.Email != "" {
		for i, u := range s.users.items {
			if u.Email == *params.Email {
				idx = i
				break
			}
		}
	}

	now := s.now()

	if idx >= 0 {
		u := &s.users.items[idx]
		if params.Email != nil {
			u.Email = *params.Email
		}
		if params.FirstName != nil {
			u.FirstName = *params.FirstName
		}
		if params.LastName != nil {
			u.LastName = *params.LastName
		}
		if params.ProfileImageURL != nil {
			u.ProfileImageURL = *params.ProfileImageURL
		}
		u.UpdatedAt = now
		return *u
	}

	user := model.User{
		ID:        params.ID,
		Role:      model.RoleViewer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}
	if params.ProfileImageURL != nil {
		user.ProfileImageURL = *params.ProfileImageURL
	}

	// Bootstrap policy: the first person to sign in administers the system.
	if len(s.users.items) == 0 {
		user.Role = model.RoleAdmin
		user.IsAdmin = true
	}

	s.users.items = append(s.users.items, user)
	return user
}

// GetUser returns the user with the given provider ID.
func (s *Store) GetUser(id string) (model.User, error) {
	return s.users.get(func(u model.User) bool { return u.ID == id })
}

// GetUserByEmail returns the user with the given email.
func (s *Store) GetUserByEmail(email string) (model.User, error) {
	return s.users.get(func(u model.User) bool { return u.Email == email })
}

// ListUsers returns every user in creation order.
func (s *Store) ListUsers() []model.User {
	return s.users.list()
}

// UpdateUserRole changes a user's role and keeps the IsAdmin flag in sync.
func (s *Store) UpdateUserRole(id, role string) (model.User, error) {
	return s.users.modify(
		func(u model.User) bool { return u.ID == id },
		nil,
		func(u *model.User) {
			u.Role = role
			u.IsAdmin = role == model.RoleAdmin
			u.UpdatedAt = s.now()
		},
	)
}
