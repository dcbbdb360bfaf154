// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

// UpsertUserRequest is the identity-provider payload for user sync. The ID
// is the provider's subject claim.
type UpsertUserRequest struct {
	ID              string  `json:"id"`
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// UpsertUser handles POST /api/admin/site-users. Repeated syncs for the same
// person converge on one record; the first user ever synced becomes admin.
func (h *Handler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var req UpsertUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		WriteBadRequest(w, "id is required", nil)
		return
	}

	user := h.store.UpsertUser(store.UpsertUserParams{
		ID:              req.ID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	})
	WriteSuccess(w, user, nil)
}

// ListUsers handles GET /api/admin/site-users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListUsers())
	WriteSuccess(w, pageItems, meta)
}

// GetUser handles GET /api/admin/site-users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.store.GetUser(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, user, nil)
}

// UpdateUserRoleRequest is the request body for a role change.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole handles PUT /api/admin/site-users/{id}/role.
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateUserRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if !model.ValidRole(req.Role) {
		WriteBadRequest(w, "unknown role", map[string]string{"role": req.Role})
		return
	}

	user, err := h.store.UpdateUserRole(id, req.Role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, user, nil)
}
