// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/rackline/rackline-go/internal/auth"
	"github.com/rackline/rackline-go/internal/middleware"
	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUserResponse is an admin account in API responses.
type AdminUserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func adminToResponse(u model.AdminUser) AdminUserResponse {
	return AdminUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(timeFormat),
		UpdatedAt: u.UpdatedAt.Format(timeFormat),
	}
}

// Login handles POST /api/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	username := strings.TrimSpace(req.Username)
	admin, err := h.store.GetAdminUserByUsername(username)
	if err != nil {
		// Same response as a bad password so usernames can't be probed.
		WriteUnauthorized(w, "invalid credentials")
		return
	}
	if ok, err := auth.CheckPassword(req.Password, admin.PasswordHash); err != nil || !ok {
		h.logger.Warn("failed admin login", "username", username, "ip", middleware.ClientIP(r))
		WriteUnauthorized(w, "invalid credentials")
		return
	}

	if auth.NeedsRehash(admin.PasswordHash) {
		if hash, err := auth.HashPassword(req.Password); err == nil {
			_, _ = h.store.UpdateAdminUser(admin.ID, store.UpdateAdminUserParams{PasswordHash: &hash})
		}
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		WriteInternalError(w, "session error")
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyAdminID, admin.ID)

	h.logger.Info("admin login", "username", admin.Username, "ip", middleware.ClientIP(r))
	WriteSuccess(w, adminToResponse(admin), nil)
}

// Logout handles POST /api/admin/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "session error")
		return
	}
	WriteSuccess(w, map[string]bool{"logged_out": true}, nil)
}

// Me handles GET /api/admin/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		WriteUnauthorized(w, "authentication required")
		return
	}
	WriteSuccess(w, adminToResponse(admin), nil)
}

// ListAdminUsers handles GET /api/admin/users.
func (h *Handler) ListAdminUsers(w http.ResponseWriter, r *http.Request) {
	admins := h.store.ListAdminUsers()
	out := make([]AdminUserResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, adminToResponse(a))
	}
	WriteSuccess(w, out, nil)
}

// CreateAdminUserRequest is the request body for creating an admin account.
type CreateAdminUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAdminUser handles POST /api/admin/users.
func (h *Handler) CreateAdminUser(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		WriteBadRequest(w, "username and password are required", nil)
		return
	}
	role := req.Role
	if role == "" {
		role = model.RoleEditor
	}
	if !model.ValidRole(role) {
		WriteBadRequest(w, "unknown role", map[string]string{"role": role})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteInternalError(w, "hashing password")
		return
	}
	admin, err := h.store.CreateAdminUser(store.CreateAdminUserParams{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteCreated(w, adminToResponse(admin))
}

// UpdateAdminUserRequest is the request body for updating an admin account.
type UpdateAdminUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UpdateAdminUser handles PUT /api/admin/users/{id}.
func (h *Handler) UpdateAdminUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateAdminUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if req.Role != nil && !model.ValidRole(*req.Role) {
		WriteBadRequest(w, "unknown role", map[string]string{"role": *req.Role})
		return
	}

	params := store.UpdateAdminUserParams{Username: req.Username, Role: req.Role}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			WriteInternalError(w, "hashing password")
			return
		}
		params.PasswordHash = &hash
	}

	admin, err := h.store.UpdateAdminUser(id, params)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, adminToResponse(admin), nil)
}

// DeleteAdminUser handles DELETE /api/admin/users/{id}. The last remaining
// account cannot be deleted; that would lock the CMS shut.
func (h *Handler) DeleteAdminUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if len(h.store.ListAdminUsers()) <= 1 {
		WriteConflict(w, "cannot delete the last admin account")
		return
	}
	if admin, ok := middleware.AdminFromContext(r.Context()); ok && admin.ID == id {
		WriteConflict(w, "cannot delete your own account")
		return
	}
	if err := h.store.DeleteAdminUser(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
