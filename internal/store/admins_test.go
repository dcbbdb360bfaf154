// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"testing"

	"github.com/rackline/rackline-go/internal/model"
)

func TestCreateAdminUserUsernameConflict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateAdminUser(CreateAdminUserParams{Username: "ops", PasswordHash: "h", Role: model.RoleAdmin}); err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}
	if _, err := s.CreateAdminUser(CreateAdminUserParams{Username: "ops", PasswordHash: "h2", Role: model.RoleEditor}); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestUpdateAdminUserPartial(t *testing.T) {
	s := newTestStore(t)

	u, _ := s.CreateAdminUser(CreateAdminUserParams{Username: "ops", PasswordHash: "h", Role: model.RoleEditor})

	role := model.RoleAdmin
	updated, err := s.UpdateAdminUser(u.ID, UpdateAdminUserParams{Role: &role})
	if err != nil {
		t.Fatalf("UpdateAdminUser: %v", err)
	}
	if updated.Role != model.RoleAdmin || updated.Username != "ops" || updated.PasswordHash != "h" {
		t.Fatalf("partial merge wrong: %+v", updated)
	}
}

func TestUpdateAdminUserUsernameConflict(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.CreateAdminUser(CreateAdminUserParams{Username: "a", PasswordHash: "h"})
	if _, err := s.CreateAdminUser(CreateAdminUserParams{Username: "b", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}

	taken := "b"
	if _, err := s.UpdateAdminUser(a.ID, UpdateAdminUserParams{Username: &taken}); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestGetAdminUserByUsername(t *testing.T) {
	s := newTestStore(t)
	s.CreateAdminUser(CreateAdminUserParams{Username: "ops", PasswordHash: "h", Role: model.RoleAdmin})

	u, err := s.GetAdminUserByUsername("ops")
	if err != nil {
		t.Fatalf("GetAdminUserByUsername: %v", err)
	}
	if !u.IsAdminRole() {
		t.Fatalf("role = %q", u.Role)
	}

	if _, err := s.GetAdminUserByUsername("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteAdminUser(t *testing.T) {
	s := newTestStore(t)
	u, _ := s.CreateAdminUser(CreateAdminUserParams{Username: "ops", PasswordHash: "h"})

	if err := s.DeleteAdminUser(u.ID); err != nil {
		t.Fatalf("DeleteAdminUser: %v", err)
	}
	if err := s.DeleteAdminUser(u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
