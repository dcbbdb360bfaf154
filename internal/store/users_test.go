// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"testing"

	"github.com/rackline/rackline-go/internal/model"
)

func strPtr(s string) *string { return &s }

func TestFirstUserBecomesAdmin(t *testing.T) {
	s := newTestStore(t)

	first := s.UpsertUser(UpsertUserParams{ID: "a", Email: strPtr("x@x.com")})
	if first.Role != model.RoleAdmin || !first.IsAdmin {
		t.Fatalf("first user = %+v, want admin", first)
	}

	second := s.UpsertUser(UpsertUserParams{ID: "b", Email: strPtr("y@y.com")})
	if second.Role != model.RoleViewer || second.IsAdmin {
		t.Fatalf("second user = %+v, want viewer", second)
	}
}

func TestUpsertUserDeduplicatesByEmail(t *testing.T) {
	s := newTestStore(t)

	s.UpsertUser(UpsertUserParams{ID: "a", Email: strPtr("x@x.com")})
	merged := s.UpsertUser(UpsertUserParams{ID: "b", Email: strPtr("x@x.com"), FirstName: strPtr("New")})

	users := s.ListUsers()
	if len(users) != 1 {
		t.Fatalf("expected one reconciled record, got %d", len(users))
	}
	if merged.FirstName != "New" {
		t.Fatalf("FirstName = %q", merged.FirstName)
	}
	// The original provider ID is the record's identity.
	if merged.ID != "a" {
		t.Fatalf("ID = %q, want %q", merged.ID, "a")
	}
	// Role survives the merge: the first user stays admin.
	if merged.Role != model.RoleAdmin {
		t.Fatalf("Role = %q", merged.Role)
	}
}

func TestUpsertUserNilFieldsLeaveValues(t *testing.T) {
	s := newTestStore(t)

	s.UpsertUser(UpsertUserParams{ID: "a", Email: strPtr("x@x.com"), FirstName: strPtr("Ada"), LastName: strPtr("L")})
	merged := s.UpsertUser(UpsertUserParams{ID: "a", LastName: strPtr("Lovelace")})

	if merged.FirstName != "Ada" {
		t.Fatalf("nil field overwrote FirstName: %q", merged.FirstName)
	}
	if merged.LastName != "Lovelace" {
		t.Fatalf("LastName = %q", merged.LastName)
	}
	if merged.Email != "x@x.com" {
		t.Fatalf("Email = %q", merged.Email)
	}
}

func TestUpdateUserRole(t *testing.T) {
	s := newTestStore(t)
	s.UpsertUser(UpsertUserParams{ID: "a", Email: strPtr("x@x.com")})
	s.UpsertUser(UpsertUserParams{ID: "b", Email: strPtr("y@y.com")})

	u, err := s.UpdateUserRole("b", model.RoleEditor)
	if err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	if u.Role != model.RoleEditor || u.IsAdmin {
		t.Fatalf("got %+v", u)
	}

	u, err = s.UpdateUserRole("b", model.RoleAdmin)
	if err != nil || !u.IsAdmin {
		t.Fatalf("admin promotion: %+v, %v", u, err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	s.UpsertUser(UpsertUserParams{ID: "a", Email: strPtr("x@x.com")})

	if _, err := s.GetUserByEmail("x@x.com"); err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if _, err := s.GetUserByEmail("missing@x.com"); err == nil {
		t.Fatal("want error for missing email")
	}
}
