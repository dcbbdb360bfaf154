// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/service"
	"github.com/rackline/rackline-go/internal/store"
)

// ListCatalog handles GET /api/catalog. Supports q (search), category,
// sub_category and featured query parameters; without filters it returns the
// active catalog. Search, featured and category listings go through the
// catalog cache.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	var items []model.ServerEquipment

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("category")
	subCategory := r.URL.Query().Get("sub_category")
	featured := r.URL.Query().Get("featured") == "true"

	switch {
	case q != "":
		if h.catalog != nil {
			items = h.catalog.Search(r.Context(), q, func() []model.ServerEquipment {
				return h.store.SearchServerEquipment(q)
			})
		} else {
			items = h.store.SearchServerEquipment(q)
		}
	case featured:
		if h.catalog != nil {
			items = h.catalog.Featured(r.Context(), h.store.ListFeaturedServerEquipment)
		} else {
			items = h.store.ListFeaturedServerEquipment()
		}
	case category != "" && subCategory != "":
		items = h.store.ListServerEquipmentBySubCategory(category, subCategory)
	case category != "":
		if h.catalog != nil {
			items = h.catalog.Category(r.Context(), category, func() []model.ServerEquipment {
				return h.store.ListServerEquipmentByCategory(category)
			})
		} else {
			items = h.store.ListServerEquipmentByCategory(category)
		}
	default:
		items = h.store.ListActiveServerEquipment()
	}

	pageItems, meta := paginate(r, items)
	WriteSuccess(w, pageItems, meta)
}

// GetCatalogItem handles GET /api/catalog/{id}. Inactive items are hidden
// from the public surface.
func (h *Handler) GetCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	item, err := h.store.GetServerEquipment(id)
	if err != nil || !item.IsActive {
		WriteNotFound(w, "equipment not found")
		return
	}
	WriteSuccess(w, item, nil)
}

// ListCategories handles GET /api/catalog/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListActiveEquipmentCategories(), nil)
}

// GetCategoryBySlug handles GET /api/catalog/categories/{slug}.
func (h *Handler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat, err := h.store.GetEquipmentCategoryBySlug(slug)
	if err != nil || !cat.IsActive {
		WriteNotFound(w, "category not found")
		return
	}
	WriteSuccess(w, cat, nil)
}

// CalculateQuote handles POST /api/quote.
func (h *Handler) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	var params service.QuoteParams
	if err := decodeJSON(r, &params); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	quote, err := h.quotes.Calculate(params)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	WriteSuccess(w, quote, nil)
}

// ----- Admin surface -----

// AdminListEquipment handles GET /api/admin/equipment. Unlike the public
// listing it includes inactive items.
func (h *Handler) AdminListEquipment(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListServerEquipment())
	WriteSuccess(w, pageItems, meta)
}

// AdminGetEquipment handles GET /api/admin/equipment/{id}.
func (h *Handler) AdminGetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	item, err := h.store.GetServerEquipment(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, item, nil)
}

// EquipmentRequest is the request body for creating a catalog item, and the
// element type of the bulk import payload.
type EquipmentRequest struct {
	Name           string            `json:"name"`
	PartNumber     string            `json:"part_number"`
	Category       string            `json:"category"`
	SubCategory    string            `json:"sub_category"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Description    string            `json:"description"`
	Specs          map[string]string `json:"specs"`
	Condition      string            `json:"condition"`
	PriceCents     int64             `json:"price_cents"`
	ListPriceCents int64             `json:"list_price_cents"`
	BulkPriceCents int64             `json:"bulk_price_cents"`
	StockCount     int               `json:"stock_count"`
	IsActive       bool              `json:"is_active"`
	IsFeatured     bool              `json:"is_featured"`
	Tags           []string          `json:"tags"`
}

func (req *EquipmentRequest) validate() map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		details["name"] = "required"
	}
	if req.PriceCents < 0 {
		details["price_cents"] = "must not be negative"
	}
	if req.Condition != "" && req.Condition != model.ConditionNew &&
		req.Condition != model.ConditionRefurbished && req.Condition != model.ConditionUsed {
		details["condition"] = "must be new, refurbished or used"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func (req *EquipmentRequest) toParams() store.CreateServerEquipmentParams {
	return store.CreateServerEquipmentParams{
		Name:           req.Name,
		PartNumber:     req.PartNumber,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Specs:          req.Specs,
		Condition:      req.Condition,
		PriceCents:     req.PriceCents,
		ListPriceCents: req.ListPriceCents,
		BulkPriceCents: req.BulkPriceCents,
		StockCount:     req.StockCount,
		IsActive:       req.IsActive,
		IsFeatured:     req.IsFeatured,
		Tags:           req.Tags,
	}
}

// AdminCreateEquipment handles POST /api/admin/equipment.
func (h *Handler) AdminCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req EquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if details := req.validate(); details != nil {
		WriteBadRequest(w, "invalid equipment", details)
		return
	}
	item := h.store.CreateServerEquipment(req.toParams())
	h.invalidateCatalog(r)
	WriteCreated(w, item)
}

// BulkCreateEquipmentRequest is the request body for the bulk import.
type BulkCreateEquipmentRequest struct {
	Items []EquipmentRequest `json:"items"`
}

// AdminBulkCreateEquipment handles POST /api/admin/equipment/bulk. Items are
// created independently in input order; validation failures reject the whole
// payload before anything is written.
func (h *Handler) AdminBulkCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if len(req.Items) == 0 {
		WriteBadRequest(w, "no items to import", nil)
		return
	}

	params := make([]store.CreateServerEquipmentParams, 0, len(req.Items))
	for i, item := range req.Items {
		if details := item.validate(); details != nil {
			details["index"] = strconv.Itoa(i)
			WriteBadRequest(w, "invalid equipment in bulk payload", details)
			return
		}
		params = append(params, item.toParams())
	}

	created := h.store.BulkCreateServerEquipment(params)
	h.invalidateCatalog(r)
	WriteCreated(w, created)
}

// UpdateEquipmentRequest is the request body for a partial equipment update.
type UpdateEquipmentRequest struct {
	Name           *string           `json:"name,omitempty"`
	PartNumber     *string           `json:"part_number,omitempty"`
	Category       *string           `json:"category,omitempty"`
	SubCategory    *string           `json:"sub_category,omitempty"`
	Brand          *string           `json:"brand,omitempty"`
	Model          *string           `json:"model,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Specs          map[string]string `json:"specs,omitempty"`
	Condition      *string           `json:"condition,omitempty"`
	PriceCents     *int64            `json:"price_cents,omitempty"`
	ListPriceCents *int64            `json:"list_price_cents,omitempty"`
	BulkPriceCents *int64            `json:"bulk_price_cents,omitempty"`
	StockCount     *int              `json:"stock_count,omitempty"`
	IsActive       *bool             `json:"is_active,omitempty"`
	IsFeatured     *bool             `json:"is_featured,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
}

// AdminUpdateEquipment handles PUT /api/admin/equipment/{id}.
func (h *Handler) AdminUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	item, err := h.store.UpdateServerEquipment(id, store.UpdateServerEquipmentParams{
		Name:           req.Name,
		PartNumber:     req.PartNumber,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Specs:          req.Specs,
		Condition:      req.Condition,
		PriceCents:     req.PriceCents,
		ListPriceCents: req.ListPriceCents,
		BulkPriceCents: req.BulkPriceCents,
		StockCount:     req.StockCount,
		IsActive:       req.IsActive,
		IsFeatured:     req.IsFeatured,
		Tags:           req.Tags,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.invalidateCatalog(r)
	WriteSuccess(w, item, nil)
}

// AdminDeleteEquipment handles DELETE /api/admin/equipment/{id}.
func (h *Handler) AdminDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteServerEquipment(id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.invalidateCatalog(r)
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// CategoryRequest is the request body for creating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// AdminListCategories handles GET /api/admin/categories.
func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListEquipmentCategories(), nil)
}

// AdminCreateCategory handles POST /api/admin/categories.
func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Slug) == "" {
		WriteBadRequest(w, "name and slug are required", nil)
		return
	}
	cat, err := h.store.CreateEquipmentCategory(store.CreateEquipmentCategoryParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.invalidateCatalog(r)
	WriteCreated(w, cat)
}

// UpdateCategoryRequest is the request body for a partial category update.
// A present-but-null parent_id detaches the category from its parent, so the
// raw message is needed to tell "absent" from "null".
type UpdateCategoryRequest struct {
	Name        *string          `json:"name,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Description *string          `json:"description,omitempty"`
	ParentID    *json.RawMessage `json:"parent_id,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	Order       *int             `json:"order,omitempty"`
}

// AdminUpdateCategory handles PUT /api/admin/categories/{id}.
func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	params := store.UpdateEquipmentCategoryParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    req.IsActive,
		Order:       req.Order,
	}
	if req.ParentID != nil {
		params.SetParent = true
		if string(*req.ParentID) != "null" {
			var parent int64
			if err := json.Unmarshal(*req.ParentID, &parent); err != nil {
				WriteBadRequest(w, "parent_id must be a number or null", nil)
				return
			}
			params.ParentID = &parent
		}
	}

	cat, err := h.store.UpdateEquipmentCategory(id, params)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.invalidateCatalog(r)
	WriteSuccess(w, cat, nil)
}

// AdminDeleteCategory handles DELETE /api/admin/categories/{id}.
func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteEquipmentCategory(id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.invalidateCatalog(r)
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// invalidateCatalog drops cached catalog listings after an admin write.
func (h *Handler) invalidateCatalog(r *http.Request) {
	if h.catalog != nil {
		h.catalog.Invalidate(r.Context())
	}
}
