// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/rackline/rackline-go/internal/middleware"
	"github.com/rackline/rackline-go/internal/model"
)

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /api/version.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.version, nil)
}

// BackupListEntry is a backup in list responses. The payload itself is
// omitted; listing megabytes of JSON per row helps nobody.
type BackupListEntry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// AdminListBackups handles GET /api/admin/backups.
func (h *Handler) AdminListBackups(w http.ResponseWriter, r *http.Request) {
	backups := h.store.ListWebsiteBackups()
	out := make([]BackupListEntry, 0, len(backups))
	for _, b := range backups {
		out = append(out, BackupListEntry{
			ID:        b.ID,
			Name:      b.Name,
			Size:      b.Size,
			CreatedBy: b.CreatedBy,
			CreatedAt: b.CreatedAt.Format(timeFormat),
		})
	}
	WriteSuccess(w, out, nil)
}

// AdminCreateBackup handles POST /api/admin/backups, running an on-demand
// snapshot through the same path the scheduler uses.
func (h *Handler) AdminCreateBackup(w http.ResponseWriter, r *http.Request) {
	if h.sched == nil {
		WriteError(w, http.StatusServiceUnavailable, "scheduler_disabled", "backups are not configured", nil)
		return
	}

	createdBy := "admin"
	if admin, ok := middleware.AdminFromContext(r.Context()); ok {
		createdBy = admin.Username
	}
	if err := h.sched.RunBackup(createdBy); err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	backups := h.store.ListWebsiteBackups()
	if len(backups) == 0 {
		WriteInternalError(w, "backup not recorded")
		return
	}
	latest := backups[len(backups)-1]
	WriteCreated(w, BackupListEntry{
		ID:        latest.ID,
		Name:      latest.Name,
		Size:      latest.Size,
		CreatedBy: latest.CreatedBy,
		CreatedAt: latest.CreatedAt.Format(timeFormat),
	})
}

// AdminDeleteBackup handles DELETE /api/admin/backups/{id}.
func (h *Handler) AdminDeleteBackup(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteWebsiteBackup(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// AdminListActivity handles GET /api/admin/activity. The optional user query
// parameter narrows to one actor.
func (h *Handler) AdminListActivity(w http.ResponseWriter, r *http.Request) {
	var logs []model.ActivityLog
	if userID := r.URL.Query().Get("user"); userID != "" {
		logs = h.store.ListActivityLogsByUser(userID)
	} else {
		logs = h.store.ListActivityLogs()
	}
	pageItems, meta := paginate(r, logs)
	WriteSuccess(w, pageItems, meta)
}
