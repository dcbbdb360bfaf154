// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

// ListServices handles GET /api/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListActiveServices(), nil)
}

// ListTestimonials handles GET /api/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListActiveTestimonials(), nil)
}

// ----- Admin surface -----

// ServiceRequest is the request body for creating a service offering.
type ServiceRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Features    []string             `json:"features"`
	Pricing     model.ServicePricing `json:"pricing"`
	IsActive    bool                 `json:"is_active"`
	Order       int                  `json:"order"`
}

// AdminListServices handles GET /api/admin/services.
func (h *Handler) AdminListServices(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListServices(), nil)
}

// AdminCreateService handles POST /api/admin/services.
func (h *Handler) AdminCreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteBadRequest(w, "name is required", nil)
		return
	}
	svc := h.store.CreateService(store.CreateServiceParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Features:    req.Features,
		Pricing:     req.Pricing,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	WriteCreated(w, svc)
}

// UpdateServiceRequest is the request body for a partial service update.
type UpdateServiceRequest struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Category    *string               `json:"category,omitempty"`
	Features    []string              `json:"features,omitempty"`
	Pricing     *model.ServicePricing `json:"pricing,omitempty"`
	IsActive    *bool                 `json:"is_active,omitempty"`
	Order       *int                  `json:"order,omitempty"`
}

// AdminUpdateService handles PUT /api/admin/services/{id}.
func (h *Handler) AdminUpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	svc, err := h.store.UpdateService(id, store.UpdateServiceParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Features:    req.Features,
		Pricing:     req.Pricing,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, svc, nil)
}

// AdminDeleteService handles DELETE /api/admin/services/{id}.
func (h *Handler) AdminDeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteService(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// TestimonialRequest is the request body for creating a testimonial.
type TestimonialRequest struct {
	ClientName  string `json:"client_name"`
	ClientTitle string `json:"client_title"`
	Company     string `json:"company"`
	Rating      int    `json:"rating"`
	Content     string `json:"content"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// AdminListTestimonials handles GET /api/admin/testimonials.
func (h *Handler) AdminListTestimonials(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.store.ListTestimonials(), nil)
}

// AdminCreateTestimonial handles POST /api/admin/testimonials.
func (h *Handler) AdminCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.ClientName) == "" {
		WriteBadRequest(w, "client_name is required", nil)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		WriteBadRequest(w, "rating must be between 1 and 5", nil)
		return
	}
	t := h.store.CreateTestimonial(store.CreateTestimonialParams{
		ClientName:  req.ClientName,
		ClientTitle: req.ClientTitle,
		Company:     req.Company,
		Rating:      req.Rating,
		Content:     req.Content,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	WriteCreated(w, t)
}

// UpdateTestimonialRequest is the request body for a partial testimonial update.
type UpdateTestimonialRequest struct {
	ClientName  *string `json:"client_name,omitempty"`
	ClientTitle *string `json:"client_title,omitempty"`
	Company     *string `json:"company,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// AdminUpdateTestimonial handles PUT /api/admin/testimonials/{id}.
func (h *Handler) AdminUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateTestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		WriteBadRequest(w, "rating must be between 1 and 5", nil)
		return
	}
	t, err := h.store.UpdateTestimonial(id, store.UpdateTestimonialParams{
		ClientName:  req.ClientName,
		ClientTitle: req.ClientTitle,
		Company:     req.Company,
		Rating:      req.Rating,
		Content:     req.Content,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, t, nil)
}

// AdminDeleteTestimonial handles DELETE /api/admin/testimonials/{id}.
func (h *Handler) AdminDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteTestimonial(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
