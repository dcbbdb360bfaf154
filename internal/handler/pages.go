// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/store"
)

// GetPageContents handles GET /api/pages/{page}. The optional section query
// parameter narrows to the active blocks of one section.
func (h *Handler) GetPageContents(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if section := r.URL.Query().Get("section"); section != "" {
		WriteSuccess(w, h.store.ListPageContentsBySection(pageName, section), nil)
		return
	}
	WriteSuccess(w, h.store.ListPageContentsByPage(pageName), nil)
}

// GetPublicSettings handles GET /api/settings/{category}. Only settings in
// the requested category are exposed; the public site reads categories like
// "contact" and "social".
func (h *Handler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	settings := h.store.ListSiteSettingsByCategory(category)

	// Flattened to a key→value map: the frontend treats settings as a bag.
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	WriteSuccess(w, out, nil)
}

// ----- Admin surface -----

// PageContentRequest is the request body for creating a content block.
type PageContentRequest struct {
	PageName  string `json:"page_name"`
	Section   string `json:"section"`
	ElementID string `json:"element_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsActive  bool   `json:"is_active"`
	Order     int    `json:"order"`
}

// AdminListPageContents handles GET /api/admin/page-contents. The optional
// page query parameter narrows to one page.
func (h *Handler) AdminListPageContents(w http.ResponseWriter, r *http.Request) {
	if pageName := r.URL.Query().Get("page"); pageName != "" {
		WriteSuccess(w, h.store.ListPageContentsByPage(pageName), nil)
		return
	}
	WriteSuccess(w, h.store.ListPageContents(), nil)
}

// AdminCreatePageContent handles POST /api/admin/page-contents.
func (h *Handler) AdminCreatePageContent(w http.ResponseWriter, r *http.Request) {
	var req PageContentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.PageName) == "" || strings.TrimSpace(req.Section) == "" {
		WriteBadRequest(w, "page_name and section are required", nil)
		return
	}
	pc := h.store.CreatePageContent(store.CreatePageContentParams{
		PageName:  req.PageName,
		Section:   req.Section,
		ElementID: req.ElementID,
		Title:     req.Title,
		Content:   req.Content,
		IsActive:  req.IsActive,
		Order:     req.Order,
	})
	WriteCreated(w, pc)
}

// UpdatePageContentRequest is the request body for a partial block update.
type UpdatePageContentRequest struct {
	PageName  *string `json:"page_name,omitempty"`
	Section   *string `json:"section,omitempty"`
	ElementID *string `json:"element_id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

// AdminUpdatePageContent handles PUT /api/admin/page-contents/{id}.
func (h *Handler) AdminUpdatePageContent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdatePageContentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	pc, err := h.store.UpdatePageContent(id, store.UpdatePageContentParams{
		PageName:  req.PageName,
		Section:   req.Section,
		ElementID: req.ElementID,
		Title:     req.Title,
		Content:   req.Content,
		IsActive:  req.IsActive,
		Order:     req.Order,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, pc, nil)
}

// AdminDeletePageContent handles DELETE /api/admin/page-contents/{id}.
func (h *Handler) AdminDeletePageContent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeletePageContent(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// SiteSettingRequest is the request body for creating a setting.
type SiteSettingRequest struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

// AdminListSettings handles GET /api/admin/settings. The optional category
// query parameter narrows the list.
func (h *Handler) AdminListSettings(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		WriteSuccess(w, h.store.ListSiteSettingsByCategory(category), nil)
		return
	}
	WriteSuccess(w, h.store.ListSiteSettings(), nil)
}

// AdminCreateSetting handles POST /api/admin/settings.
func (h *Handler) AdminCreateSetting(w http.ResponseWriter, r *http.Request) {
	var req SiteSettingRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		WriteBadRequest(w, "key is required", nil)
		return
	}
	setting, err := h.store.CreateSiteSetting(store.CreateSiteSettingParams{
		Key:      req.Key,
		Value:    req.Value,
		Category: req.Category,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteCreated(w, setting)
}

// UpdateSettingRequest is the request body for updating a setting's value.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// AdminUpdateSetting handles PUT /api/admin/settings/{key}. This is an
// update, not an upsert: an unknown key is a 404.
func (h *Handler) AdminUpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req UpdateSettingRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	setting, err := h.store.UpdateSiteSettingValue(key, req.Value)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, setting, nil)
}

// AdminDeleteSetting handles DELETE /api/admin/settings/{key}.
func (h *Handler) AdminDeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	setting, err := h.store.GetSiteSettingByKey(key)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := h.store.DeleteSiteSetting(setting.ID); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
